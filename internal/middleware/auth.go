package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sitekit-io/sitekit/internal/config"
	"github.com/sitekit-io/sitekit/internal/modules/serializer"
	"github.com/sitekit-io/sitekit/internal/modules/service"
)

const (
	CtxProject = "project"
	CtxUserID  = "userID"
)

// ProjectToken resolves the :project_token path segment through the tenant
// gate and sets the project in the context. The token is the only credential
// on the public surface.
func ProjectToken(gate service.TenantGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("project_token")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("API token is required."))
			return
		}

		project, err := gate.ResolveProjectByToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Invalid API token."))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("Server error during API token validation.", err))
			return
		}

		tagSpan(c, project.ID)
		c.Set(CtxProject, project)
		c.Next()
	}
}

// OwnerAuth verifies the identity provider's HS256 bearer JWT and stores the
// subject (claim userId, falling back to sub) under CtxUserID.
func OwnerAuth(cfg *config.Config) gin.HandlerFunc {
	secret := []byte(cfg.Auth.JWTSecret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))

	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Access denied. No token provided."))
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

		claims := jwt.MapClaims{}
		_, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Token expired."))
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Invalid token."))
			return
		}

		userID := subject(claims)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Invalid token."))
			return
		}

		c.Set(CtxUserID, userID)
		c.Next()
	}
}

func subject(claims jwt.MapClaims) string {
	switch v := claims["userId"].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	}
	sub, _ := claims.GetSubject()
	return sub
}

// ProjectOwner loads :project_id and checks it belongs to the authenticated
// owner. Must run after OwnerAuth.
func ProjectOwner(projects service.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("project_id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, serializer.Fail("Project not found."))
			return
		}

		project, err := projects.GetOwned(c.Request.Context(), c.GetString(CtxUserID), projectID)
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, serializer.Fail("Project not found."))
			return
		case errors.Is(err, service.ErrNotProjectOwner):
			c.AbortWithStatusJSON(http.StatusForbidden, serializer.Fail("Access denied. You do not own this project."))
			return
		case err != nil:
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("Server error during authorization.", err))
			return
		}

		tagSpan(c, project.ID)
		c.Set(CtxProject, project)
		c.Next()
	}
}

// tagSpan sets project_id on the current span for telemetry filtering.
func tagSpan(c *gin.Context, projectID uuid.UUID) {
	span := trace.SpanFromContext(c.Request.Context())
	if span.SpanContext().IsValid() {
		span.SetAttributes(attribute.String("project_id", projectID.String()))
	}
}
