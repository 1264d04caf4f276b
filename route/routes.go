package route

import (
	"log"
	"time"

	"cafewifi/config"
	"cafewifi/controller"
	"cafewifi/templates"
	"cafewifi/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with templates, CORS and every route.
func NewRouter(cfg *config.Config, ctl *controller.CafeController, csrf *utils.CSRF) (*gin.Engine, error) {
	router := gin.Default()

	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	log.Println("CORS configured")

	CafeRoutes(router, ctl, csrf)
	log.Println("Routes configured successfully")

	return router, nil
}

func CafeRoutes(router *gin.Engine, ctl *controller.CafeController, csrf *utils.CSRF) {
	router.GET("/", ctl.ListCafes)
	router.GET("/delete", ctl.DeleteCafe)
	router.GET("/export", ctl.ExportCafes)
	router.GET("/healthz", ctl.Health)

	addGroup := router.Group("/add")
	addGroup.Use(utils.CSRFMiddleware(csrf))
	{
		addGroup.GET("", ctl.ShowAddForm)
		addGroup.POST("", ctl.AddCafe)
		addGroup.POST("/excel", ctl.ImportCafes)
	}

	router.GET("/api/cafes", ctl.GetCafes)
}
