package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/SscSPs/employee_directory_app/internal/apperrors"
	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	portssvc "github.com/SscSPs/employee_directory_app/internal/core/ports/services"
	"github.com/SscSPs/employee_directory_app/internal/dto"
	"github.com/SscSPs/employee_directory_app/internal/middleware"
	"github.com/SscSPs/employee_directory_app/internal/utils/attachment"
	"github.com/SscSPs/employee_directory_app/internal/utils/export"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employees      portssvc.EmployeeCollectionSvcFacade
	catalog        portssvc.DepartmentCatalogSvc
	drafts         portssvc.DraftRegistrySvc
	maxUploadBytes int64
}

func newEmployeeHandler(services *portssvc.ServiceContainer, maxUploadBytes int64) *employeeHandler {
	return &employeeHandler{
		employees:      services.Employees,
		catalog:        services.Catalog,
		drafts:         services.Drafts,
		maxUploadBytes: maxUploadBytes,
	}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, maxUploadBytes int64) {
	h := newEmployeeHandler(services, maxUploadBytes)

	employees := rg.Group("/employees", limitBody(maxRequestBytes(maxUploadBytes)))
	{
		employees.GET("", h.listEmployees)
		employees.POST("", h.createEmployee)
		employees.GET("/stats", h.getStats)
		employees.POST("/refresh", h.refreshEmployees)
		employees.GET("/export", h.exportEmployees)
		employees.GET("/:id", h.getEmployee)
		employees.PUT("/:id", h.updateEmployee)
		employees.DELETE("/:id", h.deleteEmployee)
		employees.GET("/:id/photo", h.getPhoto)
		employees.GET("/:id/cv", h.downloadCV)
		employees.GET("/:id/cv/view", h.viewCV)
	}
}

// queryFrom overlays the request's query parameters on the current view state.
func (h *employeeHandler) queryFrom(c *gin.Context, params dto.ListEmployeesParams) domain.EmployeeQuery {
	q := h.employees.CurrentQuery()
	values := c.Request.URL.Query()
	if values.Has("department") {
		q.Department = params.Department
	}
	if values.Has("search") {
		q.Search = params.Search
	}
	if values.Has("sort") {
		q.Sort = domain.SortKey(params.Sort)
	}
	return q
}

func (h *employeeHandler) toResponses(c *gin.Context, employees []domain.Employee, lang domain.Language) []dto.EmployeeResponse {
	ctx := c.Request.Context()
	res := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		label := h.catalog.ResolveLabel(ctx, employees[i].Department, lang)
		res[i] = dto.ToEmployeeResponse(&employees[i], label)
	}
	return res
}

// listEmployees godoc
// @Summary List employees
// @Description Returns the filtered, searched and sorted employee list together with statistics over all employees
// @Tags employees
// @Produce json
// @Param department query string false "Department key, or 'All Departments'"
// @Param search query string false "Case-insensitive name substring"
// @Param sort query string false "Sort key" Enums(name, age, experience, department)
// @Param lang query string false "Label language" Enums(en, ar)
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 503 {object} map[string]string "Record store unavailable"
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListEmployees", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	q := h.queryFrom(c, params)
	visible, err := h.employees.Query(q)
	if err != nil {
		respondError(c, logger, err, "Failed to list employees")
		return
	}
	stats, err := h.employees.Stats()
	if err != nil {
		respondError(c, logger, err, "Failed to list employees")
		return
	}

	c.JSON(http.StatusOK, dto.ListEmployeesResponse{
		Employees: h.toResponses(c, visible, preferredLanguage(c)),
		Visible:   len(visible),
		Query:     q,
		Stats:     stats,
	})
}

// getStats godoc
// @Summary Employee statistics
// @Description Count and one-decimal averages of age and experience over all employees
// @Tags employees
// @Produce json
// @Success 200 {object} domain.EmployeeStats
// @Failure 503 {object} map[string]string "Record store unavailable"
// @Router /employees/stats [get]
func (h *employeeHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stats, err := h.employees.Stats()
	if err != nil {
		respondError(c, logger, err, "Failed to compute statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// refreshEmployees godoc
// @Summary Re-fetch employees
// @Description Replaces the employee snapshot from the record store. This is the retry path after a failed load.
// @Tags employees
// @Produce json
// @Success 200 {object} domain.EmployeeStats
// @Failure 503 {object} map[string]string "Record store unavailable"
// @Router /employees/refresh [post]
func (h *employeeHandler) refreshEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.employees.Refresh(c.Request.Context()); err != nil {
		respondError(c, logger, err, "Failed to refresh employees")
		return
	}
	stats, err := h.employees.Stats()
	if err != nil {
		respondError(c, logger, err, "Failed to refresh employees")
		return
	}
	logger.Info("Employee snapshot refreshed on request", slog.Int("count", stats.Count))
	c.JSON(http.StatusOK, stats)
}

// exportEmployees godoc
// @Summary Export employees
// @Description Exports the visible employee list with bilingual department labels and seniority
// @Tags employees
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "Export format" Enums(csv, xlsx) default(csv)
// @Param department query string false "Department key"
// @Param search query string false "Name substring"
// @Param sort query string false "Sort key" Enums(name, age, experience, department)
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 503 {object} map[string]string "Record store unavailable"
// @Router /employees/export [get]
func (h *employeeHandler) exportEmployees(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	var params dto.ExportEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ExportEmployees", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	visible, err := h.employees.Query(h.queryFrom(c, params.ListEmployeesParams))
	if err != nil {
		respondError(c, logger, err, "Failed to export employees")
		return
	}

	format := export.Format(params.Format)
	rows := export.Rows(visible, func(key string, lang domain.Language) string {
		return h.catalog.ResolveLabel(ctx, key, lang)
	})

	c.Header("Content-Type", format.ContentType())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "employees."+string(format)))
	c.Status(http.StatusOK)

	write := export.WriteCSV
	if format == export.FormatXLSX {
		write = export.WriteXLSX
	}
	if err := write(c.Writer, rows); err != nil {
		// Headers are already sent; all that is left is to record the failure.
		logger.Error("Failed to write export", slog.String("format", string(format)), slog.String("error", err.Error()))
		_ = c.Error(err)
		return
	}
	logger.Info("Employees exported", slog.String("format", string(format)), slog.Int("rows", len(rows)))
}

// getEmployee godoc
// @Summary Get an employee
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Param lang query string false "Label language" Enums(en, ar)
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Router /employees/{id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("employee_id", c.Param("id")))

	emp, err := h.employees.Find(ctx, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve employee")
		return
	}
	label := h.catalog.ResolveLabel(ctx, emp.Department, preferredLanguage(c))
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(emp, label))
}

// createEmployee godoc
// @Summary Create an employee
// @Description One-shot create through a fresh draft. Accepts multipart (files "photo" and "cv") or JSON (data URIs).
// @Tags employees
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param name formData string true "Name"
// @Param age formData string false "Age, 18 to 70"
// @Param experience formData string false "Years of experience"
// @Param department formData string false "Department key or label"
// @Param photo formData file false "Photo"
// @Param cv formData file false "CV"
// @Success 201 {object} domain.SubmitResult
// @Failure 400 {object} map[string]string "Validation failed"
// @Failure 502 {object} map[string]string "Record store rejected the write"
// @Failure 413 {object} map[string]string "Attachment or body too large"
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	draft := h.drafts.NewDraft()

	if err := h.fillDraft(c, draft); err != nil {
		respondError(c, logger, err, "Failed to read employee form")
		return
	}
	result, err := draft.Submit(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to create employee")
		return
	}

	logger.Info("Employee created", slog.String("employee_id", result.EmployeeID))
	c.JSON(http.StatusCreated, result)
}

// updateEmployee godoc
// @Summary Update an employee
// @Description One-shot edit through a draft loaded with the stored record. Every scalar field is replaced; attachments not sent are kept.
// @Tags employees
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param name formData string true "Name"
// @Param age formData string false "Age, 18 to 70"
// @Param experience formData string false "Years of experience"
// @Param department formData string false "Department key or label"
// @Param photo formData file false "Photo"
// @Param cv formData file false "CV"
// @Success 200 {object} domain.SubmitResult
// @Failure 400 {object} map[string]string "Validation failed"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 502 {object} map[string]string "Record store rejected the write"
// @Failure 413 {object} map[string]string "Attachment or body too large"
// @Router /employees/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	ctx := c.Request.Context()
	employeeID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("employee_id", employeeID))

	emp, err := h.employees.Find(ctx, employeeID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve employee")
		return
	}

	draft := h.drafts.NewDraft()
	if err := draft.LoadForEdit(*emp); err != nil {
		respondError(c, logger, err, "Failed to load employee into draft")
		return
	}
	if err := h.fillDraft(c, draft); err != nil {
		respondError(c, logger, err, "Failed to read employee form")
		return
	}
	result, err := draft.Submit(ctx)
	if err != nil {
		respondError(c, logger, err, "Failed to update employee")
		return
	}

	logger.Info("Employee updated")
	c.JSON(http.StatusOK, result)
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Description Requires confirm=true. The list is re-fetched after a successful delete.
// @Tags employees
// @Param id path string true "Employee ID"
// @Param confirm query bool true "Explicit confirmation"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string "Confirmation required"
// @Failure 502 {object} map[string]string "Record store rejected the delete"
// @Router /employees/{id} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	employeeID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("employee_id", employeeID))

	if err := h.employees.RequestDelete(c.Request.Context(), employeeID, confirmed(c)); err != nil {
		respondError(c, logger, err, "Failed to delete employee")
		return
	}
	c.Status(http.StatusNoContent)
}

// getPhoto godoc
// @Summary Employee photo
// @Description Serves the stored photo, or an SVG initial placeholder when there is none
// @Tags employees
// @Produce image/png
// @Produce image/jpeg
// @Produce image/svg+xml
// @Param id path string true "Employee ID"
// @Param size query int false "Placeholder size in pixels" default(150)
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Employee not found"
// @Router /employees/{id}/photo [get]
func (h *employeeHandler) getPhoto(c *gin.Context) {
	ctx := c.Request.Context()
	employeeID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("employee_id", employeeID))

	emp, err := h.employees.Find(ctx, employeeID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve employee")
		return
	}

	if !emp.Photo.IsEmpty() {
		err := attachment.WriteDownload(c.Writer, emp.Photo, "", attachment.Inline)
		if err == nil {
			return
		}
		logger.Warn("Stored photo is unreadable, serving placeholder", slog.String("error", err.Error()))
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(attachment.DefaultPlaceholderSize)))
	if err != nil || size <= 0 {
		size = attachment.DefaultPlaceholderSize
	}
	c.Data(http.StatusOK, "image/svg+xml", attachment.PlaceholderSVG(emp.Name, size))
}

// downloadCV godoc
// @Summary Download an employee's CV
// @Tags employees
// @Produce application/pdf
// @Produce application/msword
// @Param id path string true "Employee ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Employee or CV not found"
// @Router /employees/{id}/cv [get]
func (h *employeeHandler) downloadCV(c *gin.Context) {
	h.serveCV(c, attachment.Attachment)
}

// viewCV godoc
// @Summary View an employee's CV inline
// @Tags employees
// @Produce application/pdf
// @Param id path string true "Employee ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Employee or CV not found"
// @Router /employees/{id}/cv/view [get]
func (h *employeeHandler) viewCV(c *gin.Context) {
	h.serveCV(c, attachment.Inline)
}

func (h *employeeHandler) serveCV(c *gin.Context, disposition attachment.Disposition) {
	ctx := c.Request.Context()
	employeeID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("employee_id", employeeID))

	emp, err := h.employees.Find(ctx, employeeID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve employee")
		return
	}
	if emp.CV.IsEmpty() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee has no CV"})
		return
	}

	mimeType, err := attachment.MIMEType(emp.CV)
	if err != nil {
		logger.Error("Stored CV is malformed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored CV is unreadable"})
		return
	}
	filename := attachment.DownloadFilename(emp.Name, attachment.ExtensionFor(mimeType))
	if err := attachment.WriteDownload(c.Writer, emp.CV, filename, disposition); err != nil {
		logger.Error("Failed to serve CV", slog.String("error", err.Error()))
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored CV is unreadable"})
		}
	}
}

// fillDraft copies the request's fields and attachments into draft.
func (h *employeeHandler) fillDraft(c *gin.Context, draft portssvc.EmployeeDraftSvc) error {
	var form dto.EmployeeForm
	if err := c.ShouldBind(&form); err != nil {
		return fmt.Errorf("%w: invalid employee form: %w", apperrors.ErrValidation, err)
	}

	fields := map[domain.DraftField]string{
		domain.FieldName:       form.Name,
		domain.FieldAge:        form.Age,
		domain.FieldExperience: form.Experience,
		domain.FieldDepartment: form.Department,
	}
	for field, value := range fields {
		if err := draft.SetField(field, value); err != nil {
			return err
		}
	}

	encoded := map[domain.AttachmentSlot]string{domain.SlotPhoto: form.Photo, domain.SlotCV: form.CV}
	for slot, uri := range encoded {
		if uri == "" {
			continue
		}
		if err := draft.AttachEncoded(slot, string(slot), domain.DataURI(uri)); err != nil {
			return err
		}
	}

	for _, slot := range []domain.AttachmentSlot{domain.SlotPhoto, domain.SlotCV} {
		fh, err := c.FormFile(string(slot))
		if err != nil {
			continue
		}
		if err := h.attachUpload(draft, slot, fh); err != nil {
			return err
		}
	}
	return nil
}

// attachUpload buffers the upload before handing it to the draft, which
// converts in the background after the request body is gone.
func (h *employeeHandler) attachUpload(draft portssvc.EmployeeDraftSvc, slot domain.AttachmentSlot, fh *multipart.FileHeader) error {
	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded %s: %w", slot, err)
	}
	defer f.Close()

	limit := h.maxUploadBytes
	if limit <= 0 {
		limit = fh.Size
	}
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return fmt.Errorf("failed to read uploaded %s: %w", slot, err)
	}
	if int64(len(data)) > limit {
		return apperrors.NewAppError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("uploaded %s exceeds %d bytes", slot, limit), apperrors.ErrTooLarge)
	}
	return draft.AttachFile(slot, fh.Filename, fh.Header.Get("Content-Type"), bytes.NewReader(data))
}
