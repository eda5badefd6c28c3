package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sitekit-io/sitekit/internal/middleware"
	"github.com/sitekit-io/sitekit/internal/modules/model"
	"github.com/sitekit-io/sitekit/internal/modules/serializer"
	"github.com/sitekit-io/sitekit/internal/modules/service"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

type ProjectReq struct {
	Name        *string `json:"name" example:"My Shop"`
	Description *string `json:"description" example:"Handmade goods"`
}

type EnableModuleReq struct {
	ModuleID      string                 `json:"moduleId" example:"5f0c6a8e-3b1f-4c1e-9d7a-2e2b1a7c9f10"`
	Configuration map[string]interface{} `json:"configuration"`
}

// ListProjects godoc
//
//	@Summary		List projects
//	@Description	Projects owned by the caller, newest first
//	@Tags			project
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=map[string][]model.Project}
//	@Router			/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.svc.List(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		writeError(c, err, "Error fetching projects.", nil)
		return
	}
	c.JSON(http.StatusOK, serializer.List(len(projects), gin.H{"projects": projects}))
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Description	Create a project with a fresh API token
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.ProjectReq	true	"CreateProject payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=map[string]model.Project}
//	@Failure		400	{object}	serializer.Response
//	@Router			/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req := ProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	project, err := h.svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserID), service.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, err, "Error creating project.", nil)
		return
	}
	c.JSON(http.StatusCreated, serializer.OK("Project created successfully.", gin.H{"project": project}))
}

// GetProject godoc
//
//	@Summary		Get project
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=map[string]model.Project}
//	@Failure		403	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project := c.MustGet(middleware.CtxProject).(*model.Project)
	c.JSON(http.StatusOK, serializer.OK("", gin.H{"project": project}))
}

// UpdateProject godoc
//
//	@Summary		Update project
//	@Description	Change name and description. Omitted or blank fields keep their value.
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string				true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.ProjectReq	true	"UpdateProject payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=map[string]model.Project}
//	@Router			/projects/{project_id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	project := c.MustGet(middleware.CtxProject).(*model.Project)

	req := ProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), project, service.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, err, "Error updating project.", nil)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Project updated successfully.", gin.H{"project": updated}))
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Delete the project with its module enablements and records
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	project := c.MustGet(middleware.CtxProject).(*model.Project)

	if err := h.svc.Delete(c.Request.Context(), project.ID); err != nil {
		writeError(c, err, "Error deleting project.", nil)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Project deleted successfully.", nil))
}

// RegenerateToken godoc
//
//	@Summary		Regenerate API token
//	@Description	Issue a new API token. The old token stops working immediately.
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=map[string]model.Project}
//	@Router			/projects/{project_id}/regenerate-token [post]
func (h *ProjectHandler) RegenerateToken(c *gin.Context) {
	project := c.MustGet(middleware.CtxProject).(*model.Project)

	updated, err := h.svc.RegenerateToken(c.Request.Context(), project)
	if err != nil {
		writeError(c, err, "Error regenerating API token.", nil)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("API token regenerated successfully.", gin.H{"project": updated}))
}

// ListProjectModules godoc
//
//	@Summary		List enabled modules
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=map[string][]model.ProjectModule}
//	@Router			/projects/{project_id}/modules [get]
func (h *ProjectHandler) ListProjectModules(c *gin.Context) {
	project := c.MustGet(middleware.CtxProject).(*model.Project)

	pms, err := h.svc.ListModules(c.Request.Context(), project.ID)
	if err != nil {
		writeError(c, err, "Error fetching project modules.", nil)
		return
	}
	c.JSON(http.StatusOK, serializer.List(len(pms), gin.H{"modules": pms}))
}

// EnableModule godoc
//
//	@Summary		Enable module
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string					true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.EnableModuleReq	true	"EnableModule payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=map[string]model.ProjectModule}
//	@Failure		400	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id}/modules [post]
func (h *ProjectHandler) EnableModule(c *gin.Context) {
	project := c.MustGet(middleware.CtxProject).(*model.Project)

	req := EnableModuleReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if req.ModuleID == "" {
		c.JSON(http.StatusBadRequest, serializer.Fail("Module ID is required."))
		return
	}
	moduleID, err := uuid.Parse(req.ModuleID)
	if err != nil {
		c.JSON(http.StatusNotFound, serializer.Fail("Module not found."))
		return
	}

	pm, err := h.svc.EnableModule(c.Request.Context(), project.ID, moduleID, req.Configuration)
	if err != nil {
		writeError(c, err, "Error enabling module.", nil)
		return
	}
	c.JSON(http.StatusCreated, serializer.OK("Module enabled successfully.", gin.H{"projectModule": pm}))
}

// DisableModule godoc
//
//	@Summary		Disable module
//	@Description	Detach a module. Stored records are kept.
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			module_id	path	string	true	"Module ID"		Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id}/modules/{module_id} [delete]
func (h *ProjectHandler) DisableModule(c *gin.Context) {
	project := c.MustGet(middleware.CtxProject).(*model.Project)

	moduleID, err := uuid.Parse(c.Param("module_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, serializer.Fail("Module not found for this project."))
		return
	}

	if err := h.svc.DisableModule(c.Request.Context(), project.ID, moduleID); err != nil {
		writeError(c, err, "Error disabling module.", nil)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Module disabled successfully.", nil))
}
