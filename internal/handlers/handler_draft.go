package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/employee_directory_app/internal/apperrors"
	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	portssvc "github.com/SscSPs/employee_directory_app/internal/core/ports/services"
	"github.com/SscSPs/employee_directory_app/internal/dto"
	"github.com/SscSPs/employee_directory_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// draftHandler exposes draft sessions: a create or edit form kept open across requests.
type draftHandler struct {
	*employeeHandler
}

func registerDraftRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, maxUploadBytes int64) {
	h := &draftHandler{employeeHandler: newEmployeeHandler(services, maxUploadBytes)}

	drafts := rg.Group("/drafts", limitBody(maxRequestBytes(maxUploadBytes)))
	{
		drafts.POST("", h.openDraft)
		drafts.GET("/:draftID", h.getDraft)
		drafts.PATCH("/:draftID", h.setFields)
		drafts.DELETE("/:draftID", h.closeDraft)
		drafts.POST("/:draftID/edit/:employeeID", h.loadForEdit)
		drafts.PUT("/:draftID/attachments/:slot", h.attach)
		drafts.POST("/:draftID/submit", h.submit)
		drafts.POST("/:draftID/cancel", h.cancel)
	}
}

// draftFor resolves the draft named in the path, writing the error response if there is none.
func (h *draftHandler) draftFor(c *gin.Context, logger *slog.Logger) (portssvc.EmployeeDraftSvc, bool) {
	draft, err := h.drafts.Get(c.Param("draftID"))
	if err != nil {
		respondError(c, logger, err, "Failed to find draft")
		return nil, false
	}
	return draft, true
}

// openDraft godoc
// @Summary Open a draft
// @Description Opens a draft in Creating mode, or in Editing mode when employeeID is given
// @Tags drafts
// @Accept json
// @Produce json
// @Param draft body dto.OpenDraftRequest false "Employee to edit"
// @Success 201 {object} dto.OpenDraftResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Router /drafts [post]
func (h *draftHandler) openDraft(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.OpenDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Failed to bind JSON for OpenDraft", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	var emp *domain.Employee
	if req.EmployeeID != "" {
		var err error
		if emp, err = h.employees.Find(ctx, req.EmployeeID); err != nil {
			respondError(c, logger, err, "Failed to retrieve employee")
			return
		}
	}

	draftID, draft := h.drafts.Open()
	if emp != nil {
		if err := draft.LoadForEdit(*emp); err != nil {
			h.drafts.Close(draftID)
			respondError(c, logger, err, "Failed to open draft")
			return
		}
	}
	logger.Info("Draft opened", slog.String("draft_id", draftID), slog.String("employee_id", req.EmployeeID))
	c.JSON(http.StatusCreated, dto.OpenDraftResponse{DraftID: draftID, Draft: draft.Snapshot()})
}

// getDraft godoc
// @Summary Get a draft
// @Tags drafts
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 200 {object} domain.DraftSnapshot
// @Failure 404 {object} map[string]string "Draft not found or expired"
// @Router /drafts/{draftID} [get]
func (h *draftHandler) getDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	draft, ok := h.draftFor(c, logger)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, draft.Snapshot())
}

// setFields godoc
// @Summary Set draft fields
// @Description Sets raw field values; nothing is validated until submit
// @Tags drafts
// @Accept json
// @Produce json
// @Param draftID path string true "Draft ID"
// @Param fields body dto.SetDraftFieldsRequest true "Field values"
// @Success 200 {object} domain.DraftSnapshot
// @Failure 400 {object} map[string]string "Unknown field"
// @Failure 409 {object} map[string]string "Submit in progress"
// @Router /drafts/{draftID} [patch]
func (h *draftHandler) setFields(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	draft, ok := h.draftFor(c, logger)
	if !ok {
		return
	}

	var req dto.SetDraftFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetDraftFields", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	for field, value := range req.Fields {
		if err := draft.SetField(domain.DraftField(field), value); err != nil {
			respondError(c, logger, err, "Failed to set draft field")
			return
		}
	}
	c.JSON(http.StatusOK, draft.Snapshot())
}

// loadForEdit godoc
// @Summary Load an employee into a draft
// @Description Discards the draft's content and switches it to Editing mode for the employee
// @Tags drafts
// @Produce json
// @Param draftID path string true "Draft ID"
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} domain.DraftSnapshot
// @Failure 404 {object} map[string]string "Draft or employee not found"
// @Failure 409 {object} map[string]string "Submit in progress"
// @Router /drafts/{draftID}/edit/{employeeID} [post]
func (h *draftHandler) loadForEdit(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	draft, ok := h.draftFor(c, logger)
	if !ok {
		return
	}

	emp, err := h.employees.Find(ctx, c.Param("employeeID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve employee")
		return
	}
	if err := draft.LoadForEdit(*emp); err != nil {
		respondError(c, logger, err, "Failed to load employee into draft")
		return
	}
	c.JSON(http.StatusOK, draft.Snapshot())
}

// attach godoc
// @Summary Attach a file to a draft
// @Description Multipart "file" part, or JSON with an encoded data URI. Multipart uploads are converted in the background.
// @Tags drafts
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param draftID path string true "Draft ID"
// @Param slot path string true "Attachment slot" Enums(photo, cv)
// @Param file formData file false "File"
// @Success 202 {object} domain.DraftSnapshot
// @Failure 400 {object} map[string]string "Invalid attachment"
// @Failure 409 {object} map[string]string "Submit in progress"
// @Failure 413 {object} map[string]string "Attachment or body too large"
// @Router /drafts/{draftID}/attachments/{slot} [put]
func (h *draftHandler) attach(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	draft, ok := h.draftFor(c, logger)
	if !ok {
		return
	}
	slot := domain.AttachmentSlot(c.Param("slot"))

	fh, err := c.FormFile("file")
	if errors.As(err, new(*http.MaxBytesError)) {
		respondError(c, logger, err, "Failed to attach file")
		return
	}
	if err == nil {
		if err := h.attachUpload(draft, slot, fh); err != nil {
			respondError(c, logger, err, "Failed to attach file")
			return
		}
		c.JSON(http.StatusAccepted, draft.Snapshot())
		return
	}

	var req dto.AttachEncodedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, logger, fmt.Errorf("%w: expected a multipart \"file\" part or a JSON data URI: %w", apperrors.ErrValidation, err), "Failed to attach file")
		return
	}
	if err := draft.AttachEncoded(slot, req.FileName, domain.DataURI(req.DataURI)); err != nil {
		respondError(c, logger, err, "Failed to attach file")
		return
	}
	c.JSON(http.StatusAccepted, draft.Snapshot())
}

// submit godoc
// @Summary Submit a draft
// @Description Validates, waits for pending conversions, then creates or updates the employee
// @Tags drafts
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 200 {object} domain.SubmitResult
// @Failure 400 {object} map[string]string "Validation failed"
// @Failure 409 {object} map[string]string "Submit already in progress"
// @Failure 502 {object} map[string]string "Record store rejected the write"
// @Router /drafts/{draftID}/submit [post]
func (h *draftHandler) submit(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("draft_id", c.Param("draftID")))
	draft, ok := h.draftFor(c, logger)
	if !ok {
		return
	}

	result, err := draft.Submit(ctx)
	if err != nil {
		respondError(c, logger, err, "Failed to submit draft")
		return
	}
	logger.Info("Draft submitted", slog.String("employee_id", result.EmployeeID), slog.String("mode", string(result.Mode)))
	c.JSON(http.StatusOK, result)
}

// cancel godoc
// @Summary Cancel a draft
// @Description Discards the draft's content. Editing drafts with unsaved changes need confirm=true.
// @Tags drafts
// @Produce json
// @Param draftID path string true "Draft ID"
// @Param confirm query bool false "Discard unsaved changes"
// @Success 200 {object} domain.CancelOutcome
// @Failure 409 {object} map[string]string "Confirmation required or submit in progress"
// @Router /drafts/{draftID}/cancel [post]
func (h *draftHandler) cancel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	draft, ok := h.draftFor(c, logger)
	if !ok {
		return
	}

	outcome, err := draft.Cancel(confirmed(c))
	if err != nil {
		respondError(c, logger, err, "Failed to cancel draft")
		return
	}
	if outcome.ConfirmationRequired {
		respondError(c, logger, fmt.Errorf("%w: draft has unsaved changes", apperrors.ErrConfirmationRequired), "Failed to cancel draft")
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// closeDraft godoc
// @Summary Close a draft
// @Tags drafts
// @Param draftID path string true "Draft ID"
// @Success 204 "No Content"
// @Router /drafts/{draftID} [delete]
func (h *draftHandler) closeDraft(c *gin.Context) {
	h.drafts.Close(c.Param("draftID"))
	c.Status(http.StatusNoContent)
}
