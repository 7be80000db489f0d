package handlers

import (
	"net/http"
	"strings"
	"time"

	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SubjectKey holds the authenticated subject in the gin context.
const SubjectKey = "auth.subject"

const slowRequestThreshold = 2 * time.Second

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
			appErr := mapAuthError(usecase.ErrInvalidToken)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		subject, err := auth.Authenticate(c.Request.Context(), header[7:])
		if err != nil {
			appErr := mapAuthError(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(SubjectKey, subject)
		c.Next()
	}
}

// RequestLogger logs one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		entry := logger.Get().WithFields(logrus.Fields{
			"status":  c.Writer.Status(),
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"latency": latency.String(),
			"subject": c.GetString(SubjectKey),
		})
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			entry.Error("request")
		case latency > slowRequestThreshold:
			entry.Warn("slow request")
		default:
			entry.Info("request")
		}
	}
}

// Recovery answers 500 with the standard error body after a panic.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Get().WithField("panic", recovered).WithField("path", c.Request.URL.Path).Error("recovered from panic")
		c.AbortWithStatusJSON(errInternal.HTTPStatus, errInternal.ToHTTPError())
	})
}
