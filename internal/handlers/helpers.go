package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/employee_directory_app/internal/apperrors"
	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

var languageMatcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

// statusForError maps a service error onto an HTTP status code.
func statusForError(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr) && appErr.Code != 0:
		return appErr.Code
	case errors.Is(err, apperrors.ErrTooLarge), errors.As(err, new(*http.MaxBytesError)):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConfirmationRequired), errors.Is(err, apperrors.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, apperrors.ErrSave), errors.Is(err, apperrors.ErrDelete):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": ...} for err. Unclassified errors are not
// echoed to the client; fallback is sent instead.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	} else {
		logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = fallback
	}
	c.JSON(status, gin.H{"error": msg})
}

// preferredLanguage reads the lang query parameter, then Accept-Language.
func preferredLanguage(c *gin.Context) domain.Language {
	if lang := c.Query("lang"); lang != "" {
		return domain.ParseLanguage(lang)
	}
	tags, _, err := language.ParseAcceptLanguage(c.GetHeader("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return domain.LanguageEnglish
	}
	_, index, confidence := languageMatcher.Match(tags...)
	if confidence == language.No || index != 1 {
		return domain.LanguageEnglish
	}
	return domain.LanguageArabic
}

// confirmed reports whether the request carries confirm=true.
func confirmed(c *gin.Context) bool {
	ok, err := strconv.ParseBool(c.DefaultQuery("confirm", "false"))
	return err == nil && ok
}

// maxRequestBytes bounds a whole request body: two base64 encoded
// attachments plus room for the form fields. Zero disables the cap.
func maxRequestBytes(maxUploadBytes int64) int64 {
	if maxUploadBytes <= 0 {
		return 0
	}
	encoded := (maxUploadBytes + 2) / 3 * 4
	return 2*encoded + 64<<10
}

// limitBody caps the request body at n bytes. Reads past the cap fail with
// *http.MaxBytesError, which respondError reports as 413.
func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if n > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}
