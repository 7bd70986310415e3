// Package dashboard holds the canonical client-side view of the
// veteran's claims data and the features built on it. Wire responses
// are normalized into these types at the adapter boundary; nothing
// else in the process touches raw backend shapes.
package dashboard

import "time"

// ClaimStatus is the VA processing stage of a claim.
type ClaimStatus string

const (
	ClaimPending           ClaimStatus = "pending"
	ClaimInProgress        ClaimStatus = "in_progress"
	ClaimEvidenceGathering ClaimStatus = "evidence_gathering"
	ClaimReview            ClaimStatus = "review"
	ClaimDecided           ClaimStatus = "decided"
)

// ClaimFilter selects a claim subset for display.
type ClaimFilter string

const (
	FilterAll       ClaimFilter = "all"
	FilterActive    ClaimFilter = "active"
	FilterCompleted ClaimFilter = "completed"
	FilterAppeals   ClaimFilter = "appeals"
)

// Priority orders action items for display.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Veteran is the profile with combined rating and sync info.
type Veteran struct {
	ID             string
	CombinedRating int
	MonthlyAward   float64
	LastSyncedAt   *time.Time
}

// Claim is a disability claim synced from VA.gov.
type Claim struct {
	ID          string
	Type        string
	Status      ClaimStatus
	FiledDate   time.Time
	DecidedDate *time.Time
	Conditions  []ClaimCondition
}

// Active reports whether the claim is still being processed.
func (c Claim) Active() bool {
	return c.Status != ClaimDecided
}

// ClaimCondition is a medical condition as it appears in a specific
// claim.
type ClaimCondition struct {
	ConditionID string
	ClaimID     string
	Status      string
	Rating      *int
}

// Condition is a medical condition tracked across claims.
type Condition struct {
	ID             string
	Name           string
	DiagnosticCode string
	Status         string
	Rating         *int
	MonthlyAmount  *float64
	DenialReason   string
}

// ActionItem is a generated next step the veteran can complete.
type ActionItem struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	Completed   bool
	PackageID   string
	ClaimID     string
	ConditionID string
}

// Package is veteran-initiated work to appeal or file.
type Package struct {
	ID               string
	Name             string
	Goal             string
	Status           string
	TargetConditions []string
	Progress         int
}

// Checklist is an evidence checklist attached to a package.
type Checklist struct {
	ID        string
	Name      string
	PackageID string
	Items     []ChecklistItem
}

// ChecklistItem is one evidence task within a checklist.
type ChecklistItem struct {
	ID         string
	Label      string
	Completed  bool
	DocumentID string
}

// FormStatus is the fill-out progress of a package form.
type FormStatus string

const (
	FormNotStarted FormStatus = "not_started"
	FormInProgress FormStatus = "in_progress"
	FormComplete   FormStatus = "complete"
)

// Form is a VA form definition, identified by its official number
// (e.g. "20-0995").
type Form struct {
	ID          string
	Number      string
	Name        string
	Description string
}

// PackageForm is a form being filled out for a package. Form is
// populated when fetched through an adapter.
type PackageForm struct {
	ID          string
	PackageID   string
	FormID      string
	Form        *Form
	Status      FormStatus
	Data        map[string]any
	CompletedAt *time.Time
}

// Document is a decision letter, piece of evidence, or filled form.
type Document struct {
	ID         string
	Type       string
	Name       string
	Source     string
	UploadedAt time.Time
	ClaimID    string
	PackageID  string
}
