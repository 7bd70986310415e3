package dashboard

import "context"

// Adapters abstract the data source so every feature works unchanged
// against the REST backend or the in-memory mock used for local
// development.

// VeteranAdapter serves the veteran's profile.
type VeteranAdapter interface {
	Profile(ctx context.Context) (*Veteran, error)
}

// ClaimsAdapter serves claims and the condition catalog.
type ClaimsAdapter interface {
	Claims(ctx context.Context) ([]Claim, error)
	ClaimByID(ctx context.Context, id string) (*Claim, error)
	Conditions(ctx context.Context) ([]Condition, error)
}

// ActionsAdapter serves action items and persists completion toggles.
type ActionsAdapter interface {
	Actions(ctx context.Context) ([]ActionItem, error)
	// SetCompleted persists a completion change and returns the
	// server's canonical version of the item.
	SetCompleted(ctx context.Context, id string, completed bool) (*ActionItem, error)
}

// PackagesAdapter serves claim packages and their checklists.
type PackagesAdapter interface {
	Packages(ctx context.Context) ([]Package, error)
	Checklists(ctx context.Context, packageID string) ([]Checklist, error)
	// SetChecklistItem persists a checklist item completion change and
	// returns the canonical checklist.
	SetChecklistItem(ctx context.Context, packageID, checklistID, itemID string, completed bool) (*Checklist, error)
}

// DocumentsAdapter serves uploaded and synced documents.
type DocumentsAdapter interface {
	Documents(ctx context.Context) ([]Document, error)
}

// FormsAdapter serves VA form definitions and the forms being filled
// out for a package. The backend has no forms endpoints yet, so only
// the mock implements this.
type FormsAdapter interface {
	Forms(ctx context.Context) ([]Form, error)
	FormByNumber(ctx context.Context, number string) (*Form, error)
	// RecommendedForms returns the forms a package goal usually needs.
	RecommendedForms(ctx context.Context, goal string) ([]Form, error)
	PackageForm(ctx context.Context, id string) (*PackageForm, error)
	// UpdatePackageForm merges data into the filled form. A form that
	// was not started moves to in progress.
	UpdatePackageForm(ctx context.Context, id string, data map[string]any) (*PackageForm, error)
	SetPackageFormStatus(ctx context.Context, id string, status FormStatus) (*PackageForm, error)
}

// Adapter is the full data source backing the dashboard.
type Adapter interface {
	VeteranAdapter
	ClaimsAdapter
	ActionsAdapter
	PackagesAdapter
	DocumentsAdapter
}
