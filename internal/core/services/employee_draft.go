package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/SscSPs/employee_directory_app/internal/apperrors"
	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/employee_directory_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/employee_directory_app/internal/core/ports/services"
	"github.com/SscSPs/employee_directory_app/internal/utils/attachment"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxAttachmentBytes bounds a single attachment when no limit is configured.
const DefaultMaxAttachmentBytes int64 = 5 << 20

// DraftOption is a function that configures an employeeDraft
type DraftOption func(*employeeDraft)

// WithDraftCatalog canonicalizes the department through catalog before writing.
func WithDraftCatalog(catalog portssvc.DepartmentCatalogSvc) DraftOption {
	return func(d *employeeDraft) {
		d.catalog = catalog
	}
}

// WithSavedNotifier sets who receives the invalidate-and-reload message after a successful submit.
func WithSavedNotifier(notifier portssvc.SavedNotifier) DraftOption {
	return func(d *employeeDraft) {
		d.notifier = notifier
	}
}

// WithDraftClock sets the clock used for CreatedAt and UpdatedAt.
func WithDraftClock(clock Clock) DraftOption {
	return func(d *employeeDraft) {
		d.BaseService = newBaseService(clock)
	}
}

// WithMaxAttachmentBytes bounds the size of an attached file.
func WithMaxAttachmentBytes(n int64) DraftOption {
	return func(d *employeeDraft) {
		if n > 0 {
			d.maxBytes = n
		}
	}
}

// draftFields holds the raw, unvalidated form values.
type draftFields struct {
	name       string
	age        string
	experience string
	department string
}

// conversion is one file being turned into a data URI. uri and err are
// written once, before done is closed.
type conversion struct {
	fileName string
	done     chan struct{}
	uri      domain.DataURI
	err      error
}

func (c *conversion) finished() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// employeeInput is what gets validated on submit.
type employeeInput struct {
	Name       string `validate:"required"`
	Age        *int   `validate:"omitempty,min=18,max=70"`
	Experience *int   `validate:"omitempty,min=0"`
}

var draftValidator = validator.New(validator.WithRequiredStructEnabled())

type employeeDraft struct {
	BaseService
	repo     portsrepo.EmployeeWriter
	catalog  portssvc.DepartmentCatalogSvc
	notifier portssvc.SavedNotifier
	maxBytes int64

	mu       sync.Mutex
	mode     domain.DraftMode
	targetID string
	fields   draftFields
	baseline draftFields
	stored   map[domain.AttachmentSlot]domain.DataURI
	attached map[domain.AttachmentSlot]*conversion
	busy     bool
}

// NewEmployeeDraft creates a blank draft in Creating mode.
func NewEmployeeDraft(repo portsrepo.EmployeeWriter, opts ...DraftOption) portssvc.EmployeeDraftSvc {
	d := &employeeDraft{
		BaseService: newBaseService(nil),
		repo:        repo,
		maxBytes:    DefaultMaxAttachmentBytes,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.resetLocked()
	return d
}

var _ portssvc.EmployeeDraftSvc = (*employeeDraft)(nil)

func (d *employeeDraft) resetLocked() {
	d.mode = domain.DraftCreating
	d.targetID = ""
	d.fields = draftFields{}
	d.baseline = draftFields{}
	d.stored = map[domain.AttachmentSlot]domain.DataURI{}
	d.attached = map[domain.AttachmentSlot]*conversion{}
}

func (d *employeeDraft) LoadForEdit(employee domain.Employee) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.busy {
		return apperrors.ErrBusy
	}

	d.resetLocked()
	d.mode = domain.DraftEditing
	d.targetID = employee.ID
	d.fields = draftFields{
		name:       employee.Name,
		age:        formatOptionalInt(employee.Age),
		experience: formatOptionalInt(employee.Experience),
		department: employee.Department,
	}
	d.baseline = d.fields
	d.stored[domain.SlotPhoto] = employee.Photo
	d.stored[domain.SlotCV] = employee.CV
	return nil
}

func (d *employeeDraft) SetField(field domain.DraftField, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.busy {
		return apperrors.ErrBusy
	}

	switch field {
	case domain.FieldName:
		d.fields.name = value
	case domain.FieldAge:
		d.fields.age = value
	case domain.FieldExperience:
		d.fields.experience = value
	case domain.FieldDepartment:
		d.fields.department = value
	default:
		return fmt.Errorf("%w: unknown field %q", apperrors.ErrValidation, field)
	}
	return nil
}

// AttachFile converts r in the background. r must stay readable until the
// conversion finishes; callers holding request bodies should buffer first.
func (d *employeeDraft) AttachFile(slot domain.AttachmentSlot, fileName, contentType string, r io.Reader) error {
	if err := validSlot(slot); err != nil {
		return err
	}

	conv := &conversion{fileName: fileName, done: make(chan struct{})}
	d.mu.Lock()
	if d.busy {
		d.mu.Unlock()
		return apperrors.ErrBusy
	}
	d.attached[slot] = conv
	d.mu.Unlock()

	go func() {
		defer close(conv.done)
		conv.uri, conv.err = d.encode(slot, contentType, r)
	}()
	return nil
}

func (d *employeeDraft) encode(slot domain.AttachmentSlot, contentType string, r io.Reader) (domain.DataURI, error) {
	data, err := io.ReadAll(io.LimitReader(r, d.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", slot, err)
	}
	if err := d.checkSize(slot, len(data)); err != nil {
		return "", err
	}
	uri := attachment.Encode(data, contentType)
	if err := checkSlotType(slot, uri); err != nil {
		return "", err
	}
	return uri, nil
}

func (d *employeeDraft) AttachEncoded(slot domain.AttachmentSlot, fileName string, uri domain.DataURI) error {
	if err := validSlot(slot); err != nil {
		return err
	}
	decoded, err := attachment.Decode(uri)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", apperrors.ErrValidation, slot, err)
	}
	if err := d.checkSize(slot, len(decoded.Bytes)); err != nil {
		return err
	}
	if err := checkSlotType(slot, uri); err != nil {
		return err
	}

	conv := &conversion{fileName: fileName, done: make(chan struct{}), uri: uri}
	close(conv.done)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.busy {
		return apperrors.ErrBusy
	}
	d.attached[slot] = conv
	return nil
}

func (d *employeeDraft) checkSize(slot domain.AttachmentSlot, n int) error {
	if int64(n) > d.maxBytes {
		return fmt.Errorf("%w: %w: %s exceeds %d bytes", apperrors.ErrValidation, apperrors.ErrTooLarge, slot, d.maxBytes)
	}
	return nil
}

func (d *employeeDraft) Snapshot() domain.DraftSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := domain.DraftSnapshot{
		Mode:         d.mode,
		TargetID:     d.targetID,
		Name:         d.fields.name,
		Age:          d.fields.age,
		Experience:   d.fields.experience,
		Department:   d.fields.department,
		PhotoPreview: d.stored[domain.SlotPhoto],
		HasStoredCV:  !d.stored[domain.SlotCV].IsEmpty(),
		Dirty:        d.dirtyLocked(),
		Busy:         d.busy,
	}
	if conv := d.attached[domain.SlotPhoto]; conv != nil {
		snap.PhotoFileName = conv.fileName
		if conv.finished() && conv.err == nil {
			snap.PhotoPreview = conv.uri
		}
	}
	if conv := d.attached[domain.SlotCV]; conv != nil {
		snap.CVFileName = conv.fileName
	}
	for _, conv := range d.attached {
		if !conv.finished() {
			snap.PendingConversions++
		}
	}
	return snap
}

func (d *employeeDraft) dirtyLocked() bool {
	return d.fields != d.baseline || len(d.attached) > 0
}

func (d *employeeDraft) Submit(ctx context.Context) (*domain.SubmitResult, error) {
	d.mu.Lock()
	if d.busy {
		d.mu.Unlock()
		return nil, apperrors.ErrBusy
	}
	d.busy = true
	mode, targetID, fields := d.mode, d.targetID, d.fields
	stored := map[domain.AttachmentSlot]domain.DataURI{
		domain.SlotPhoto: d.stored[domain.SlotPhoto],
		domain.SlotCV:    d.stored[domain.SlotCV],
	}
	attached := map[domain.AttachmentSlot]*conversion{}
	for slot, conv := range d.attached {
		attached[slot] = conv
	}
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.busy = false
		d.mu.Unlock()
	}()

	input, err := parseInput(fields)
	if err != nil {
		return nil, err
	}

	if err := awaitConversions(ctx, attached); err != nil {
		return nil, err
	}

	photo, cv := stored[domain.SlotPhoto], stored[domain.SlotCV]
	if conv := attached[domain.SlotPhoto]; conv != nil {
		photo = conv.uri
	}
	if conv := attached[domain.SlotCV]; conv != nil {
		cv = conv.uri
	}

	department := strings.TrimSpace(fields.department)
	if d.catalog != nil {
		department = d.catalog.CanonicalKey(ctx, department)
	}

	now := d.Clock.Now()
	result := &domain.SubmitResult{Mode: mode}
	switch mode {
	case domain.DraftEditing:
		err = d.repo.UpdateEmployee(ctx, targetID, domain.EmployeeUpdate{
			Name:       input.Name,
			Age:        input.Age,
			Experience: input.Experience,
			Department: department,
			Photo:      photo,
			CV:         cv,
			UpdatedAt:  now,
		})
		result.EmployeeID = targetID
	default:
		result.EmployeeID, err = d.repo.CreateEmployee(ctx, domain.Employee{
			Name:       input.Name,
			Age:        input.Age,
			Experience: input.Experience,
			Department: department,
			Photo:      photo,
			CV:         cv,
			Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
		})
	}
	if err != nil {
		d.LogError(ctx, err, "Failed to save employee draft", slog.String("mode", string(mode)), slog.String("employee_id", targetID))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrSave, err)
	}

	d.mu.Lock()
	d.resetLocked()
	d.mu.Unlock()

	d.LogInfo(ctx, "Employee saved", slog.String("mode", string(mode)), slog.String("employee_id", result.EmployeeID))
	if d.notifier != nil {
		if err := d.notifier.OnSaved(ctx); err != nil {
			d.LogWarn(ctx, err, "Collection reload after save failed", slog.String("employee_id", result.EmployeeID))
		}
	}
	return result, nil
}

func (d *employeeDraft) Cancel(confirmed bool) (domain.CancelOutcome, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.busy {
		return domain.CancelOutcome{}, apperrors.ErrBusy
	}

	if d.mode == domain.DraftEditing && d.dirtyLocked() && !confirmed {
		return domain.CancelOutcome{ConfirmationRequired: true}, nil
	}
	d.resetLocked()
	return domain.CancelOutcome{Discarded: true}, nil
}

// parseInput converts raw form values and validates them.
func parseInput(fields draftFields) (employeeInput, error) {
	input := employeeInput{Name: strings.TrimSpace(fields.name)}

	var err error
	if input.Age, err = parseOptionalInt(fields.age); err != nil {
		return input, fmt.Errorf("%w: age must be a whole number", apperrors.ErrValidation)
	}
	if input.Experience, err = parseOptionalInt(fields.experience); err != nil {
		return input, fmt.Errorf("%w: experience must be a whole number", apperrors.ErrValidation)
	}

	if err := draftValidator.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return input, fmt.Errorf("%w: %s", apperrors.ErrValidation, describeValidation(verrs))
		}
		return input, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return input, nil
}

func describeValidation(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}

// awaitConversions blocks until every pending conversion finished. The first
// failed conversion fails the submit.
func awaitConversions(ctx context.Context, attached map[domain.AttachmentSlot]*conversion) error {
	g, gctx := errgroup.WithContext(ctx)
	for slot, conv := range attached {
		g.Go(func() error {
			select {
			case <-conv.done:
				if conv.err != nil {
					if errors.Is(conv.err, apperrors.ErrValidation) {
						return conv.err
					}
					return fmt.Errorf("%w: %s conversion failed: %w", apperrors.ErrValidation, slot, conv.err)
				}
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	return g.Wait()
}

func validSlot(slot domain.AttachmentSlot) error {
	if slot != domain.SlotPhoto && slot != domain.SlotCV {
		return fmt.Errorf("%w: unknown attachment slot %q", apperrors.ErrValidation, slot)
	}
	return nil
}

func checkSlotType(slot domain.AttachmentSlot, uri domain.DataURI) error {
	if slot != domain.SlotPhoto {
		return nil
	}
	mimeType, err := attachment.MIMEType(uri)
	if err != nil {
		return fmt.Errorf("%w: photo: %w", apperrors.ErrValidation, err)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return fmt.Errorf("%w: photo must be an image, got %s", apperrors.ErrValidation, mimeType)
	}
	return nil
}

func parseOptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
