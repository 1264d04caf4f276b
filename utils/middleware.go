package utils

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CSRFCookie     = "csrf_nonce"
	CSRFField      = "csrf_token"
	CSRFContextKey = "csrf_token"
)

// CSRFMiddleware rejects POST requests without a valid token and makes a fresh
// token available to the handler under CSRFContextKey.
func CSRFMiddleware(p *CSRF) gin.HandlerFunc {
	return func(c *gin.Context) {
		nonce, _ := c.Cookie(CSRFCookie)

		if c.Request.Method == http.MethodPost {
			if err := p.ValidateToken(c.PostForm(CSRFField), nonce); err != nil {
				log.Printf("Rejected %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
				c.HTML(http.StatusBadRequest, "error.html", gin.H{
					"status":  http.StatusBadRequest,
					"message": "The CSRF token is missing or invalid. Reload the form and try again.",
				})
				c.Abort()
				return
			}
		}

		if nonce == "" {
			nonce = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CSRFCookie, nonce, 0, "/", "", false, true)
		}

		token, err := p.GenerateToken(nonce)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{
				"status":  http.StatusInternalServerError,
				"message": "Failed to prepare the form",
			})
			c.Abort()
			return
		}
		c.Set(CSRFContextKey, token)

		c.Next()
	}
}
