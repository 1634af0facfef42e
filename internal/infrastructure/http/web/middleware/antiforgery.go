package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"customerweb/pkg/logger"
)

const (
	// AntiForgeryCookie stores the token issued to the browser.
	AntiForgeryCookie = "__RequestVerificationToken"

	// AntiForgeryField is the hidden form field echoing the token.
	AntiForgeryField = "__RequestVerificationToken"

	// ContextKeyAntiForgery is the gin context key holding the token for views.
	ContextKeyAntiForgery = "antiforgery_token"
)

// AntiForgery implements a double-submit token check.
// Safe methods get a token cookie (issued once) exposed to views; POST
// requests must echo the cookie value in AntiForgeryField or are rejected
// with 400 before reaching the handler.
func AntiForgery(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(AntiForgeryCookie)

		if c.Request.Method == http.MethodPost {
			posted := c.PostForm(AntiForgeryField)
			if token == "" || posted == "" || subtle.ConstantTimeCompare([]byte(token), []byte(posted)) != 1 {
				logger.Warn(c.Request.Context(), "anti-forgery token missing or invalid",
					"path", c.Request.URL.Path,
				)
				c.AbortWithStatus(http.StatusBadRequest)
				return
			}
		}

		if token == "" {
			token = uuid.New().String()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     AntiForgeryCookie,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteStrictMode,
			})
		}

		c.Set(ContextKeyAntiForgery, token)
		c.Next()
	}
}
