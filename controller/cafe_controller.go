package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"cafewifi/database"
	"cafewifi/form"
	"cafewifi/model"
	"cafewifi/utils"

	"github.com/gin-gonic/gin"
)

// CafeRepository is the storage the handlers need.
type CafeRepository interface {
	List(ctx context.Context) ([]model.Cafe, error)
	Create(ctx context.Context, cafe *model.Cafe) error
	CreateMany(ctx context.Context, cafes []model.Cafe) error
	Delete(ctx context.Context, id uint) error
	Ping(ctx context.Context) error
}

type CafeController struct {
	Cafes CafeRepository
}

func NewCafeController(cafes CafeRepository) *CafeController {
	return &CafeController{Cafes: cafes}
}

// ListCafes renders every cafe.
func (ctl *CafeController) ListCafes(c *gin.Context) {
	ctl.renderList(c, http.StatusOK, c.Query("notice"))
}

func (ctl *CafeController) renderList(c *gin.Context, status int, notice string) {
	cafes, err := ctl.Cafes.List(c.Request.Context())
	if err != nil {
		log.Printf("List cafes: %v", err)
		renderError(c, http.StatusInternalServerError, "Failed to fetch cafes")
		return
	}

	c.HTML(status, "index.html", gin.H{
		"cafes":  cafes,
		"notice": notice,
	})
}

// GetCafes is the JSON variant of ListCafes.
func (ctl *CafeController) GetCafes(c *gin.Context) {
	cafes, err := ctl.Cafes.List(c.Request.Context())
	if err != nil {
		log.Printf("List cafes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch cafes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Fetched cafes successfully",
		"data":    cafes,
	})
}

func (ctl *CafeController) ShowAddForm(c *gin.Context) {
	renderForm(c, http.StatusOK, form.Blank(), nil, "")
}

func (ctl *CafeController) AddCafe(c *gin.Context) {
	var f form.CafeForm
	if err := c.ShouldBind(&f); err != nil {
		renderForm(c, http.StatusBadRequest, &f, nil, "Could not read the submitted form")
		return
	}

	if errs := f.Validate(); len(errs) > 0 {
		renderForm(c, http.StatusBadRequest, &f, errs, "")
		return
	}

	cafe, err := f.Cafe()
	if err != nil {
		renderForm(c, http.StatusBadRequest, &f, nil, err.Error())
		return
	}

	if err := ctl.Cafes.Create(c.Request.Context(), &cafe); err != nil {
		if errors.Is(err, database.ErrDuplicateName) {
			renderForm(c, http.StatusConflict, &f, map[string]string{"name": "A cafe with this name already exists."}, "")
			return
		}
		log.Printf("Create cafe: %v", err)
		renderError(c, http.StatusInternalServerError, "Failed to save the cafe")
		return
	}

	log.Printf("Added cafe %d (%s)", cafe.ID, cafe.Name)
	c.Redirect(http.StatusSeeOther, "/")
}

func (ctl *CafeController) DeleteCafe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil || id == 0 {
		renderError(c, http.StatusBadRequest, "Invalid cafe ID")
		return
	}

	if err := ctl.Cafes.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, database.ErrCafeNotFound) {
			ctl.renderList(c, http.StatusNotFound, fmt.Sprintf("There is no cafe with ID %d, nothing to delete.", id))
			return
		}
		log.Printf("Delete cafe %d: %v", id, err)
		renderError(c, http.StatusInternalServerError, "Failed to delete the cafe")
		return
	}

	log.Printf("Deleted cafe %d", id)
	c.Redirect(http.StatusSeeOther, "/")
}

func (ctl *CafeController) Health(c *gin.Context) {
	if err := ctl.Cafes.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func renderForm(c *gin.Context, status int, f *form.CafeForm, errs map[string]string, message string) {
	c.HTML(status, "add.html", gin.H{
		"fields":     f.Fields(errs),
		"error":      message,
		"csrf_token": c.GetString(utils.CSRFContextKey),
	})
}

func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"status":  status,
		"message": message,
	})
}
