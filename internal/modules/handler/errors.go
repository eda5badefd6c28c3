package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/sitekit-io/sitekit/internal/modules/serializer"
	"github.com/sitekit-io/sitekit/internal/modules/service"
)

type errStatus struct {
	code int
	msg  string
}

var defaultErrStatus = map[error]errStatus{
	service.ErrInvalidToken:         {http.StatusUnauthorized, "Invalid API token."},
	service.ErrProjectNotFound:      {http.StatusNotFound, "Project not found."},
	service.ErrNotProjectOwner:      {http.StatusForbidden, "Access denied. You do not own this project."},
	service.ErrProjectNameRequired:  {http.StatusBadRequest, "Project name is required."},
	service.ErrModuleNotFound:       {http.StatusNotFound, "Module not found."},
	service.ErrModuleNotEnabled:     {http.StatusForbidden, "Module is not enabled for this project."},
	service.ErrModuleAlreadyEnabled: {http.StatusBadRequest, "Module is already enabled for this project."},
	service.ErrModuleNotAttached:    {http.StatusNotFound, "Module not found for this project."},
	service.ErrRecordNotFound:       {http.StatusNotFound, "Record not found."},
	service.ErrDataTypeRequired:     {http.StatusBadRequest, "Data type is required."},
	service.ErrFileRequired:         {http.StatusBadRequest, "No file uploaded."},
	service.ErrFileTooLarge:         {http.StatusRequestEntityTooLarge, "File too large."},
	service.ErrUnsupportedMedia:     {http.StatusBadRequest, "Only image files are allowed (jpeg, jpg, png, gif, webp)."},
	service.ErrBlobDisabled:         {http.StatusServiceUnavailable, "File storage is not configured."},
	service.ErrUnsupportedFormat:    {http.StatusBadRequest, "Unsupported export format. Use csv or xlsx."},
}

// writeError maps service errors onto status codes and client messages.
// msgs overrides the default message per sentinel; anything unknown is a 500
// reported with fallback.
func writeError(c *gin.Context, err error, fallback string, msgs map[error]string) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, serializer.Invalid("Validation failed.", verr.Errors))
		return
	}

	for target, st := range defaultErrStatus {
		if !errors.Is(err, target) {
			continue
		}
		msg := st.msg
		if m, ok := msgs[target]; ok {
			msg = m
		}
		c.JSON(st.code, serializer.Fail(msg))
		return
	}

	c.JSON(http.StatusInternalServerError, serializer.DBErr(fallback, err))
}

// bindPayload reads a JSON object body. An empty body is an empty object.
func bindPayload(c *gin.Context) (map[string]any, error) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	payload := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return payload, nil
	}
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("request body must be a JSON object: %w", err)
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return payload, nil
}
