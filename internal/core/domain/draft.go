package domain

// DraftMode is the state of an employee draft.
type DraftMode string

const (
	DraftCreating DraftMode = "CREATING"
	DraftEditing  DraftMode = "EDITING"
)

// DraftField names an editable scalar field of the draft.
type DraftField string

const (
	FieldName       DraftField = "name"
	FieldAge        DraftField = "age"
	FieldExperience DraftField = "experience"
	FieldDepartment DraftField = "department"
)

// AttachmentSlot names one of the two file attachments of an employee.
type AttachmentSlot string

const (
	SlotPhoto AttachmentSlot = "photo"
	SlotCV    AttachmentSlot = "cv"
)

// DraftSnapshot is a read-only view of a draft's state.
type DraftSnapshot struct {
	Mode               DraftMode `json:"mode"`
	TargetID           string    `json:"targetID,omitempty"`
	Name               string    `json:"name"`
	Age                string    `json:"age"`
	Experience         string    `json:"experience"`
	Department         string    `json:"department"`
	PhotoPreview       DataURI   `json:"photoPreview,omitempty"`
	PhotoFileName      string    `json:"photoFileName,omitempty"`
	CVFileName         string    `json:"cvFileName,omitempty"`
	HasStoredCV        bool      `json:"hasStoredCV"`
	PendingConversions int       `json:"pendingConversions"`
	Dirty              bool      `json:"dirty"`
	Busy               bool      `json:"busy"`
}

// SubmitResult describes a successful draft submission.
type SubmitResult struct {
	EmployeeID string    `json:"employeeID"`
	Mode       DraftMode `json:"mode"` // Mode the draft was in when submitted
}

// CancelOutcome is the result of a cancel request.
type CancelOutcome struct {
	Discarded            bool `json:"discarded"`
	ConfirmationRequired bool `json:"confirmationRequired"`
}
