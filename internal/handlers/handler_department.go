package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/employee_directory_app/internal/core/ports/services"
	"github.com/SscSPs/employee_directory_app/internal/dto"
	"github.com/SscSPs/employee_directory_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// departmentHandler handles the department catalog and department records.
type departmentHandler struct {
	catalog     portssvc.DepartmentCatalogSvc
	departments portssvc.DepartmentSvcFacade
}

func registerDepartmentRoutes(rg *gin.RouterGroup, catalog portssvc.DepartmentCatalogSvc, departments portssvc.DepartmentSvcFacade) {
	h := &departmentHandler{catalog: catalog, departments: departments}

	deps := rg.Group("/departments")
	{
		deps.GET("", h.listCatalog)
		deps.GET("/suggest", h.suggest)
		deps.GET("/records", h.listRecords)
		deps.GET("/label/:key", h.resolveLabel)
		deps.POST("", h.createDepartment)
		deps.PUT("/:id", h.updateDepartment)
		deps.DELETE("/:id", h.deleteDepartment)
	}
}

// listCatalog godoc
// @Summary Department catalog
// @Description Catalog entries with the sentinel "All Departments" first. Never fails; an unreachable store yields the sentinel alone.
// @Tags departments
// @Produce json
// @Param lang query string false "Label language" Enums(en, ar)
// @Success 200 {array} dto.CatalogEntryResponse
// @Router /departments [get]
func (h *departmentHandler) listCatalog(c *gin.Context) {
	entries := h.catalog.ListDepartments(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToCatalogResponse(entries, preferredLanguage(c)))
}

// suggest godoc
// @Summary Suggest departments
// @Description Fuzzy-ranks catalog entries against free text in either language
// @Tags departments
// @Produce json
// @Param q query string true "Partial department name"
// @Param lang query string false "Label language" Enums(en, ar)
// @Success 200 {array} dto.CatalogEntryResponse
// @Router /departments/suggest [get]
func (h *departmentHandler) suggest(c *gin.Context) {
	entries := h.catalog.Suggest(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, dto.ToCatalogResponse(entries, preferredLanguage(c)))
}

// resolveLabel godoc
// @Summary Resolve a department label
// @Description Returns the label of key in the preferred language, or the key itself when it is not in the catalog
// @Tags departments
// @Produce json
// @Param key path string true "Department key"
// @Param lang query string false "Label language" Enums(en, ar)
// @Success 200 {object} dto.ResolvedLabelResponse
// @Router /departments/label/{key} [get]
func (h *departmentHandler) resolveLabel(c *gin.Context) {
	key := c.Param("key")
	lang := preferredLanguage(c)
	c.JSON(http.StatusOK, dto.ResolvedLabelResponse{
		Key:      key,
		Language: lang,
		Label:    h.catalog.ResolveLabel(c.Request.Context(), key, lang),
	})
}

// listRecords godoc
// @Summary List department records
// @Tags departments
// @Produce json
// @Success 200 {array} dto.DepartmentResponse
// @Failure 503 {object} map[string]string "Record store unavailable"
// @Router /departments/records [get]
func (h *departmentHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	departments, err := h.departments.ListDepartmentRecords(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list departments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDepartmentResponse(departments))
}

// createDepartment godoc
// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Param department body dto.CreateDepartmentRequest true "Bilingual labels"
// @Success 201 {object} dto.DepartmentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 502 {object} map[string]string "Record store rejected the write"
// @Router /departments [post]
func (h *departmentHandler) createDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDepartment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	department, err := h.departments.CreateDepartment(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create department")
		return
	}
	logger.Info("Department created", slog.String("department_id", department.ID), slog.String("en", department.EN))
	c.JSON(http.StatusCreated, dto.ToDepartmentResponse(department))
}

// updateDepartment godoc
// @Summary Update a department
// @Tags departments
// @Accept json
// @Param id path string true "Department ID"
// @Param department body dto.UpdateDepartmentRequest true "Bilingual labels"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Department not found"
// @Router /departments/{id} [put]
func (h *departmentHandler) updateDepartment(c *gin.Context) {
	departmentID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("department_id", departmentID))
	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDepartment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.departments.UpdateDepartment(c.Request.Context(), departmentID, req); err != nil {
		respondError(c, logger, err, "Failed to update department")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteDepartment godoc
// @Summary Delete a department
// @Description Requires confirm=true. Employees keep their department key.
// @Tags departments
// @Param id path string true "Department ID"
// @Param confirm query bool true "Explicit confirmation"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string "Confirmation required"
// @Router /departments/{id} [delete]
func (h *departmentHandler) deleteDepartment(c *gin.Context) {
	departmentID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("department_id", departmentID))
	if err := h.departments.DeleteDepartment(c.Request.Context(), departmentID, confirmed(c)); err != nil {
		respondError(c, logger, err, "Failed to delete department")
		return
	}
	c.Status(http.StatusNoContent)
}
