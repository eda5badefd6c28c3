package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sitekit-io/sitekit/internal/modules/serializer"
	"github.com/sitekit-io/sitekit/internal/modules/service"
)

type ModuleHandler struct {
	svc service.ModuleService
}

func NewModuleHandler(s service.ModuleService) *ModuleHandler {
	return &ModuleHandler{svc: s}
}

// ListModules godoc
//
//	@Summary		List modules
//	@Description	Catalog of modules a project can enable, by name
//	@Tags			module
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=map[string][]model.Module}
//	@Router			/modules [get]
func (h *ModuleHandler) ListModules(c *gin.Context) {
	modules, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "Error fetching modules.", nil)
		return
	}
	c.JSON(http.StatusOK, serializer.List(len(modules), gin.H{"modules": modules}))
}

// GetModule godoc
//
//	@Summary		Get module
//	@Tags			module
//	@Produce		json
//	@Param			module_id	path	string	true	"Module ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=map[string]model.Module}
//	@Failure		404	{object}	serializer.Response
//	@Router			/modules/{module_id} [get]
func (h *ModuleHandler) GetModule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("module_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, serializer.Fail("Module not found."))
		return
	}

	m, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Error fetching module.", nil)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", gin.H{"module": m}))
}
