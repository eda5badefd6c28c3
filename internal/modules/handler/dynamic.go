package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitekit-io/sitekit/internal/middleware"
	"github.com/sitekit-io/sitekit/internal/modules/model"
	"github.com/sitekit-io/sitekit/internal/modules/serializer"
	"github.com/sitekit-io/sitekit/internal/modules/service"
)

// DynamicHandler serves the public, token-addressed record API.
type DynamicHandler struct {
	svc service.DynamicService
}

func NewDynamicHandler(s service.DynamicService) *DynamicHandler {
	return &DynamicHandler{svc: s}
}

func moduleMsgs(slug string) map[error]string {
	return map[error]string{
		service.ErrModuleNotFound:   fmt.Sprintf("Module '%s' not found.", slug),
		service.ErrModuleNotEnabled: fmt.Sprintf("Module '%s' is not enabled for this project.", slug),
	}
}

// GetManifest godoc
//
//	@Summary		Site manifest
//	@Description	Project name, base URL, enabled module slugs and content revision for a project token
//	@Tags			public
//	@Produce		json
//	@Param			project_token	path		string	true	"Project API token"
//	@Success		200				{object}	serializer.Response{data=service.SiteManifest}
//	@Failure		401				{object}	serializer.Response
//	@Router			/v1/{project_token} [get]
func (h *DynamicHandler) GetManifest(c *gin.Context) {
	project := c.MustGet(middleware.CtxProject).(*model.Project)

	out, err := h.svc.Manifest(c.Request.Context(), project)
	if err != nil {
		writeError(c, err, "Error fetching site manifest.", nil)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", out))
}

// ListRecords godoc
//
//	@Summary		List records
//	@Description	All records of an enabled module, newest first, flattened
//	@Tags			public
//	@Produce		json
//	@Param			project_token	path		string	true	"Project API token"
//	@Param			module_slug		path		string	true	"Module slug"	example(products)
//	@Success		200				{object}	serializer.Response{data=[]serializer.Record}
//	@Failure		401				{object}	serializer.Response
//	@Failure		403				{object}	serializer.Response
//	@Failure		404				{object}	serializer.Response
//	@Router			/v1/{project_token}/{module_slug} [get]
func (h *DynamicHandler) ListRecords(c *gin.Context) {
	project := c.MustGet(middleware.CtxProject).(*model.Project)
	slug := c.Param("module_slug")

	items, err := h.svc.List(c.Request.Context(), project, slug)
	if err != nil {
		writeError(c, err, "Error fetching records.", moduleMsgs(slug))
		return
	}
	c.JSON(http.StatusOK, serializer.List(len(items), serializer.FlattenRecords(items)))
}

// CreateRecord godoc
//
//	@Summary		Create record
//	@Description	Validate the body against the module schema and store it
//	@Tags			public
//	@Accept			json
//	@Produce		json
//	@Param			project_token	path		string					true	"Project API token"
//	@Param			module_slug		path		string					true	"Module slug"	example(products)
//	@Param			payload			body		map[string]interface{}	true	"Record fields"
//	@Success		201				{object}	serializer.Response{data=serializer.Record}
//	@Failure		400				{object}	serializer.Response
//	@Failure		403				{object}	serializer.Response
//	@Failure		404				{object}	serializer.Response
//	@Router			/v1/{project_token}/{module_slug} [post]
func (h *DynamicHandler) CreateRecord(c *gin.Context) {
	project := c.MustGet(middleware.CtxProject).(*model.Project)
	slug := c.Param("module_slug")

	payload, err := bindPayload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	d, err := h.svc.Create(c.Request.Context(), project, slug, payload)
	if err != nil {
		writeError(c, err, "Error creating record.", moduleMsgs(slug))
		return
	}
	c.JSON(http.StatusCreated, serializer.OK("Record created successfully.", serializer.FlattenRecord(d)))
}

// GetRecord godoc
//
//	@Summary		Get record
//	@Tags			public
//	@Produce		json
//	@Param			project_token	path		string	true	"Project API token"
//	@Param			module_slug		path		string	true	"Module slug"	example(products)
//	@Param			id				path		string	true	"Record ID"		Format(uuid)
//	@Success		200				{object}	serializer.Response{data=serializer.Record}
//	@Failure		404				{object}	serializer.Response
//	@Router			/v1/{project_token}/{module_slug}/{id} [get]
func (h *DynamicHandler) GetRecord(c *gin.Context) {
	project := c.MustGet(middleware.CtxProject).(*model.Project)
	slug := c.Param("module_slug")

	d, err := h.svc.Get(c.Request.Context(), project, slug, c.Param("id"))
	if err != nil {
		writeError(c, err, "Error fetching record.", moduleMsgs(slug))
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", serializer.FlattenRecord(d)))
}

// ReplaceRecord godoc
//
//	@Summary		Replace record
//	@Description	Validate the body and overwrite the stored fields wholesale
//	@Tags			public
//	@Accept			json
//	@Produce		json
//	@Param			project_token	path		string					true	"Project API token"
//	@Param			module_slug		path		string					true	"Module slug"	example(products)
//	@Param			id				path		string					true	"Record ID"		Format(uuid)
//	@Param			payload			body		map[string]interface{}	true	"Record fields"
//	@Success		200				{object}	serializer.Response{data=serializer.Record}
//	@Failure		400				{object}	serializer.Response
//	@Failure		404				{object}	serializer.Response
//	@Router			/v1/{project_token}/{module_slug}/{id} [put]
func (h *DynamicHandler) ReplaceRecord(c *gin.Context) {
	project := c.MustGet(middleware.CtxProject).(*model.Project)
	slug := c.Param("module_slug")

	payload, err := bindPayload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	d, err := h.svc.Replace(c.Request.Context(), project, slug, c.Param("id"), payload)
	if err != nil {
		writeError(c, err, "Error updating record.", moduleMsgs(slug))
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Record updated successfully.", serializer.FlattenRecord(d)))
}

// DeleteRecord godoc
//
//	@Summary		Delete record
//	@Tags			public
//	@Produce		json
//	@Param			project_token	path		string	true	"Project API token"
//	@Param			module_slug		path		string	true	"Module slug"	example(products)
//	@Param			id				path		string	true	"Record ID"		Format(uuid)
//	@Success		200				{object}	serializer.Response
//	@Failure		404				{object}	serializer.Response
//	@Router			/v1/{project_token}/{module_slug}/{id} [delete]
func (h *DynamicHandler) DeleteRecord(c *gin.Context) {
	project := c.MustGet(middleware.CtxProject).(*model.Project)
	slug := c.Param("module_slug")

	if err := h.svc.Delete(c.Request.Context(), project, slug, c.Param("id")); err != nil {
		writeError(c, err, "Error deleting record.", moduleMsgs(slug))
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Record deleted successfully.", nil))
}
