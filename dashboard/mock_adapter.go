package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/claimready/claimready/client"
)

// MockAdapter serves seeded fixture data from memory. It backs local
// development and tests; mutations are applied in place so optimistic
// flows behave exactly as they do against the real backend.
type MockAdapter struct {
	mu           sync.Mutex
	veteran      Veteran
	claims       []Claim
	conditions   []Condition
	actions      []ActionItem
	packages     []Package
	checklists   map[string][]Checklist
	documents    []Document
	forms        []Form
	packageForms []PackageForm

	// failMutations, when non-nil, is returned by every mutating call
	// instead of applying the change.
	failMutations error
}

var (
	_ Adapter      = (*MockAdapter)(nil)
	_ FormsAdapter = (*MockAdapter)(nil)
)

// NewMockAdapter creates an adapter seeded with a representative
// veteran: two claims, a filing package with one checklist, and a
// handful of open action items.
func NewMockAdapter() *MockAdapter {
	synced := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	rating70 := 70
	rating30 := 30
	amount := 524.31

	return &MockAdapter{
		veteran: Veteran{
			ID:             "vet-1",
			CombinedRating: 70,
			MonthlyAward:   1759.19,
			LastSyncedAt:   &synced,
		},
		claims: []Claim{
			{
				ID:        "claim-1",
				Type:      "disability compensation",
				Status:    ClaimEvidenceGathering,
				FiledDate: time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC),
				Conditions: []ClaimCondition{
					{ConditionID: "cond-1", ClaimID: "claim-1", Status: "pending"},
					{ConditionID: "cond-2", ClaimID: "claim-1", Status: "pending"},
				},
			},
			{
				ID:          "claim-2",
				Type:        "increase",
				Status:      ClaimDecided,
				FiledDate:   time.Date(2024, time.June, 18, 0, 0, 0, 0, time.UTC),
				DecidedDate: ptrTime(time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC)),
				Conditions: []ClaimCondition{
					{ConditionID: "cond-3", ClaimID: "claim-2", Status: "granted", Rating: &rating70},
				},
			},
		},
		conditions: []Condition{
			{ID: "cond-1", Name: "Tinnitus", DiagnosticCode: "6260", Status: "pending"},
			{ID: "cond-2", Name: "Lumbar strain", DiagnosticCode: "5237", Status: "pending"},
			{ID: "cond-3", Name: "PTSD", DiagnosticCode: "9411", Status: "granted", Rating: &rating30, MonthlyAmount: &amount},
		},
		actions: []ActionItem{
			{ID: "act-1", Title: "Upload buddy statement", Priority: PriorityHigh, PackageID: "pkg-1"},
			{ID: "act-2", Title: "Schedule C&P exam", Priority: PriorityHigh, ClaimID: "claim-1"},
			{ID: "act-3", Title: "Request service treatment records", Priority: PriorityMedium, ConditionID: "cond-2"},
			{ID: "act-4", Title: "Review decision letter", Priority: PriorityLow, ClaimID: "claim-2", Completed: true},
		},
		packages: []Package{
			{ID: "pkg-1", Name: "Tinnitus filing", Goal: "file", Status: "in_progress", TargetConditions: []string{"cond-1"}, Progress: 40},
		},
		checklists: map[string][]Checklist{
			"pkg-1": {
				{
					ID:        "chk-1",
					Name:      "Evidence",
					PackageID: "pkg-1",
					Items: []ChecklistItem{
						{ID: "item-1", Label: "Buddy statement"},
						{ID: "item-2", Label: "Audiology report", Completed: true, DocumentID: "doc-1"},
					},
				},
			},
		},
		documents: []Document{
			{ID: "doc-1", Type: "evidence", Name: "audiology-report.pdf", Source: "upload", UploadedAt: time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC), PackageID: "pkg-1"},
			{ID: "doc-2", Type: "decision_letter", Name: "decision-2025-02-03.pdf", Source: "va_sync", UploadedAt: time.Date(2025, time.February, 4, 0, 0, 0, 0, time.UTC), ClaimID: "claim-2"},
		},
		forms: []Form{
			{ID: "form-1", Number: "20-0995", Name: "Decision Review Request: Supplemental Claim", Description: "File a supplemental claim with new and relevant evidence"},
			{ID: "form-2", Number: "21-4138", Name: "Statement in Support of Claim", Description: "Personal statement describing the condition and its link to service"},
			{ID: "form-3", Number: "21-10210", Name: "Lay/Witness Statement", Description: "Statement from someone with firsthand knowledge of the condition"},
			{ID: "form-4", Number: "21-526EZ", Name: "Application for Disability Compensation", Description: "Original claims, claims for increase, or secondary conditions"},
			{ID: "form-5", Number: "21-0966", Name: "Intent to File a Claim", Description: "Establishes an effective date while evidence is gathered"},
		},
		packageForms: []PackageForm{
			{ID: "pkgform-1", PackageID: "pkg-1", FormID: "form-4", Status: FormInProgress, Data: map[string]any{"veteranName": "Sam Reyes"}},
			{ID: "pkgform-2", PackageID: "pkg-1", FormID: "form-2", Status: FormNotStarted, Data: map[string]any{}},
		},
	}
}

// goalForms maps a package goal to the form numbers it usually needs.
var goalForms = map[string][]string{
	"supplemental": {"20-0995", "21-4138", "21-10210"},
	"appeal":       {"20-0995", "21-4138"},
	"increase":     {"21-526EZ", "21-4138"},
	"file":         {"21-526EZ", "21-0966", "21-4138"},
	"secondary":    {"21-526EZ", "21-4138", "21-10210"},
}

func ptrTime(t time.Time) *time.Time { return &t }

// FailMutations makes every mutating call return err until cleared
// with a nil argument. Reads are unaffected.
func (m *MockAdapter) FailMutations(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failMutations = err
}

// RejectMutations is shorthand for failing mutations with a mutation
// rejection.
func (m *MockAdapter) RejectMutations() {
	m.FailMutations(client.ErrMutationFailed)
}

func (m *MockAdapter) Profile(ctx context.Context) (*Veteran, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.veteran
	return &v, nil
}

func (m *MockAdapter) Claims(ctx context.Context) ([]Claim, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Claim(nil), m.claims...), nil
}

func (m *MockAdapter) ClaimByID(ctx context.Context, id string) (*Claim, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.claims {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, client.ErrMutationFailed
}

func (m *MockAdapter) Conditions(ctx context.Context) ([]Condition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Condition(nil), m.conditions...), nil
}

func (m *MockAdapter) Actions(ctx context.Context) ([]ActionItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ActionItem(nil), m.actions...), nil
}

func (m *MockAdapter) SetCompleted(ctx context.Context, id string, completed bool) (*ActionItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failMutations != nil {
		return nil, m.failMutations
	}
	for i := range m.actions {
		if m.actions[i].ID == id {
			m.actions[i].Completed = completed
			item := m.actions[i]
			return &item, nil
		}
	}
	return nil, client.ErrMutationFailed
}

func (m *MockAdapter) Packages(ctx context.Context) ([]Package, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Package(nil), m.packages...), nil
}

func (m *MockAdapter) Checklists(ctx context.Context, packageID string) ([]Checklist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Checklist(nil), m.checklists[packageID]...), nil
}

func (m *MockAdapter) SetChecklistItem(ctx context.Context, packageID, checklistID, itemID string, completed bool) (*Checklist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failMutations != nil {
		return nil, m.failMutations
	}
	lists := m.checklists[packageID]
	for li := range lists {
		if lists[li].ID != checklistID {
			continue
		}
		for ii := range lists[li].Items {
			if lists[li].Items[ii].ID == itemID {
				lists[li].Items[ii].Completed = completed
				out := lists[li]
				out.Items = append([]ChecklistItem(nil), lists[li].Items...)
				return &out, nil
			}
		}
	}
	return nil, client.ErrMutationFailed
}

func (m *MockAdapter) Documents(ctx context.Context) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Document(nil), m.documents...), nil
}

func (m *MockAdapter) Forms(ctx context.Context) ([]Form, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Form(nil), m.forms...), nil
}

func (m *MockAdapter) FormByNumber(ctx context.Context, number string) (*Form, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.forms {
		if f.Number == number {
			return &f, nil
		}
	}
	return nil, client.ErrMutationFailed
}

func (m *MockAdapter) RecommendedForms(ctx context.Context, goal string) ([]Form, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	numbers, ok := goalForms[goal]
	if !ok {
		numbers = []string{"21-526EZ"}
	}
	var out []Form
	for _, f := range m.forms {
		for _, n := range numbers {
			if f.Number == n {
				out = append(out, f)
				break
			}
		}
	}
	return out, nil
}

// findForm returns the form definition for an id. Caller holds m.mu.
func (m *MockAdapter) findForm(id string) *Form {
	for _, f := range m.forms {
		if f.ID == id {
			return &f
		}
	}
	return nil
}

// packageFormCopy snapshots a filled form with its definition
// attached. Caller holds m.mu.
func packageFormCopy(pf PackageForm, form *Form) *PackageForm {
	out := pf
	out.Form = form
	out.Data = make(map[string]any, len(pf.Data))
	for k, v := range pf.Data {
		out.Data[k] = v
	}
	return &out
}

func (m *MockAdapter) PackageForm(ctx context.Context, id string) (*PackageForm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, pf := range m.packageForms {
		if pf.ID == id {
			return packageFormCopy(pf, m.findForm(pf.FormID)), nil
		}
	}
	return nil, client.ErrMutationFailed
}

func (m *MockAdapter) UpdatePackageForm(ctx context.Context, id string, data map[string]any) (*PackageForm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failMutations != nil {
		return nil, m.failMutations
	}
	for i := range m.packageForms {
		pf := &m.packageForms[i]
		if pf.ID != id {
			continue
		}
		for k, v := range data {
			pf.Data[k] = v
		}
		if pf.Status == FormNotStarted {
			pf.Status = FormInProgress
		}
		return packageFormCopy(*pf, m.findForm(pf.FormID)), nil
	}
	return nil, client.ErrMutationFailed
}

func (m *MockAdapter) SetPackageFormStatus(ctx context.Context, id string, status FormStatus) (*PackageForm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failMutations != nil {
		return nil, m.failMutations
	}
	for i := range m.packageForms {
		pf := &m.packageForms[i]
		if pf.ID != id {
			continue
		}
		pf.Status = status
		if status == FormComplete {
			now := time.Now().UTC()
			pf.CompletedAt = &now
		}
		return packageFormCopy(*pf, m.findForm(pf.FormID)), nil
	}
	return nil, client.ErrMutationFailed
}
