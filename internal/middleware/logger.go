package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sitekit-io/sitekit/internal/modules/model"
)

// ZapLogger logs one line per request. /api paths log at info, anything
// else (health, swagger) at debug. Requests that resolved a project carry
// its id.
func ZapLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		fields := []interface{}{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"clientIP", c.ClientIP(),
		}
		if p, ok := c.Get(CtxProject); ok {
			if id := projectID(p); id != "" {
				fields = append(fields, "projectID", id)
			}
		}

		if !strings.HasPrefix(path, "/api/") {
			log.Sugar().Debugw("HTTP", fields...)
			return
		}
		if c.Writer.Status() >= 500 {
			log.Sugar().Warnw("HTTP", fields...)
			return
		}
		log.Sugar().Infow("HTTP", fields...)
	}
}

func projectID(v interface{}) string {
	if p, ok := v.(*model.Project); ok && p != nil {
		return p.ID.String()
	}
	return ""
}
