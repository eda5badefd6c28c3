package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitekit-io/sitekit/internal/middleware"
	"github.com/sitekit-io/sitekit/internal/modules/model"
	"github.com/sitekit-io/sitekit/internal/modules/serializer"
	"github.com/sitekit-io/sitekit/internal/modules/service"
)

// AdminDataHandler is the owner's view of a project's content: free-form
// items keyed by data type, image uploads and per-module exports.
type AdminDataHandler struct {
	svc     service.AdminDataService
	uploads service.UploadService
	exports service.ExportService
}

func NewAdminDataHandler(s service.AdminDataService, u service.UploadService, e service.ExportService) *AdminDataHandler {
	return &AdminDataHandler{svc: s, uploads: u, exports: e}
}

var itemMsgs = map[error]string{
	service.ErrRecordNotFound: "Item not found.",
}

// ListItems godoc
//
//	@Summary		List items
//	@Description	Owner items of one data type, newest first
//	@Tags			admin
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			data_type	path	string	true	"Data type"		example(settings)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=map[string][]serializer.Record}
//	@Router			/projects/{project_id}/admin/data/{data_type} [get]
func (h *AdminDataHandler) ListItems(c *gin.Context) {
	project := c.MustGet(middleware.CtxProject).(*model.Project)

	items, err := h.svc.List(c.Request.Context(), project.ID, c.Param("data_type"))
	if err != nil {
		writeError(c, err, "Error fetching data.", itemMsgs)
		return
	}
	c.JSON(http.StatusOK, serializer.List(len(items), gin.H{"items": serializer.FlattenRecords(items)}))
}

// GetItem godoc
//
//	@Summary		Get item
//	@Tags			admin
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			data_type	path	string	true	"Data type"		example(settings)
//	@Param			item_id		path	string	true	"Item ID"		Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=map[string]serializer.Record}
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id}/admin/data/{data_type}/{item_id} [get]
func (h *AdminDataHandler) GetItem(c *gin.Context) {
	project := c.MustGet(middleware.CtxProject).(*model.Project)

	item, err := h.svc.Get(c.Request.Context(), project.ID, c.Param("item_id"))
	if err != nil {
		writeError(c, err, "Error fetching item.", itemMsgs)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", gin.H{"item": serializer.FlattenRecord(item)}))
}

// CreateItem godoc
//
//	@Summary		Create item
//	@Description	Store the body as-is, tagged with the data type
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string					true	"Project ID"	Format(uuid)
//	@Param			data_type	path	string					true	"Data type"		example(settings)
//	@Param			payload		body	map[string]interface{}	true	"Item fields"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=map[string]serializer.Record}
//	@Router			/projects/{project_id}/admin/data/{data_type} [post]
func (h *AdminDataHandler) CreateItem(c *gin.Context) {
	project := c.MustGet(middleware.CtxProject).(*model.Project)

	payload, err := bindPayload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	item, err := h.svc.Create(c.Request.Context(), project.ID, c.Param("data_type"), payload)
	if err != nil {
		writeError(c, err, "Error creating item.", itemMsgs)
		return
	}
	c.JSON(http.StatusCreated, serializer.OK("Item created successfully.", gin.H{"item": serializer.FlattenRecord(item)}))
}

// UpdateItem godoc
//
//	@Summary		Replace item
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string					true	"Project ID"	Format(uuid)
//	@Param			data_type	path	string					true	"Data type"		example(settings)
//	@Param			item_id		path	string					true	"Item ID"		Format(uuid)
//	@Param			payload		body	map[string]interface{}	true	"Item fields"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=map[string]serializer.Record}
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id}/admin/data/{data_type}/{item_id} [put]
func (h *AdminDataHandler) UpdateItem(c *gin.Context) {
	project := c.MustGet(middleware.CtxProject).(*model.Project)

	payload, err := bindPayload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	item, err := h.svc.Replace(c.Request.Context(), project.ID, c.Param("data_type"), c.Param("item_id"), payload)
	if err != nil {
		writeError(c, err, "Error updating item.", itemMsgs)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Item updated successfully.", gin.H{"item": serializer.FlattenRecord(item)}))
}

// DeleteItem godoc
//
//	@Summary		Delete item
//	@Tags			admin
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			data_type	path	string	true	"Data type"		example(settings)
//	@Param			item_id		path	string	true	"Item ID"		Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id}/admin/data/{data_type}/{item_id} [delete]
func (h *AdminDataHandler) DeleteItem(c *gin.Context) {
	project := c.MustGet(middleware.CtxProject).(*model.Project)

	if err := h.svc.Delete(c.Request.Context(), project.ID, c.Param("item_id")); err != nil {
		writeError(c, err, "Error deleting item.", itemMsgs)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Item deleted successfully.", nil))
}

// UploadImage godoc
//
//	@Summary		Upload image
//	@Description	Store a jpeg, png, gif or webp image and return its public URL
//	@Tags			admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			project_id	path		string	true	"Project ID"	Format(uuid)
//	@Param			image		formData	file	true	"Image file"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.UploadResult}
//	@Failure		400	{object}	serializer.Response
//	@Router			/projects/{project_id}/admin/upload [post]
func (h *AdminDataHandler) UploadImage(c *gin.Context) {
	project := c.MustGet(middleware.CtxProject).(*model.Project)

	fh, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			c.JSON(http.StatusBadRequest, serializer.Fail("No file uploaded."))
			return
		}
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.uploads.UploadImage(c.Request.Context(), project.ID, fh)
	if err != nil {
		writeError(c, err, "Error uploading image.", nil)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Image uploaded successfully.", out))
}

// ExportModule godoc
//
//	@Summary		Export module records
//	@Description	Download a module's records as csv (default) or xlsx
//	@Tags			admin
//	@Produce		text/csv
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			module_slug	path	string	true	"Module slug"	example(products)
//	@Param			format		query	string	false	"csv or xlsx"	Enums(csv, xlsx)
//	@Security		BearerAuth
//	@Success		200	{file}		file
//	@Failure		400	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id}/export/{module_slug} [get]
func (h *AdminDataHandler) ExportModule(c *gin.Context) {
	project := c.MustGet(middleware.CtxProject).(*model.Project)
	slug := c.Param("module_slug")

	f, err := h.exports.Export(c.Request.Context(), project.ID, slug, c.Query("format"))
	if err != nil {
		writeError(c, err, "Error exporting records.", moduleMsgs(slug))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, f.Filename))
	c.Data(http.StatusOK, f.ContentType, f.Body)
}
