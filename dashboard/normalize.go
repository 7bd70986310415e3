package dashboard

import "time"

// The backend has shipped two identifier spellings over time: "_id"
// from the document store and "id" from newer endpoints. Each wire
// type accepts both and the normalize functions below map them into
// the canonical shape exactly once, at the boundary.

type wireID struct {
	ID       string `json:"id"`
	LegacyID string `json:"_id"`
}

func (w wireID) canonical() string {
	if w.ID != "" {
		return w.ID
	}
	return w.LegacyID
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseDatePtr(s string) *time.Time {
	if t, ok := parseDate(s); ok {
		return &t
	}
	return nil
}

type wireVeteran struct {
	wireID
	CombinedRating int     `json:"combinedRating"`
	MonthlyAward   float64 `json:"monthlyAward"`
	LastSyncedAt   string  `json:"lastSyncedAt"`
}

func normalizeVeteran(w wireVeteran) Veteran {
	return Veteran{
		ID:             w.canonical(),
		CombinedRating: w.CombinedRating,
		MonthlyAward:   w.MonthlyAward,
		LastSyncedAt:   parseDatePtr(w.LastSyncedAt),
	}
}

type wireClaimCondition struct {
	ConditionID string `json:"conditionId"`
	ClaimID     string `json:"claimId"`
	Status      string `json:"status"`
	Rating      *int   `json:"rating"`
}

func normalizeClaimCondition(w wireClaimCondition) ClaimCondition {
	return ClaimCondition(w)
}

type wireClaim struct {
	wireID
	Type        string               `json:"type"`
	Status      string               `json:"status"`
	FiledDate   string               `json:"filedDate"`
	DecidedDate string               `json:"decidedDate"`
	Conditions  []wireClaimCondition `json:"conditions"`
}

func normalizeClaim(w wireClaim) Claim {
	filed, _ := parseDate(w.FiledDate)
	c := Claim{
		ID:          w.canonical(),
		Type:        w.Type,
		Status:      ClaimStatus(w.Status),
		FiledDate:   filed,
		DecidedDate: parseDatePtr(w.DecidedDate),
	}
	for _, wc := range w.Conditions {
		c.Conditions = append(c.Conditions, normalizeClaimCondition(wc))
	}
	return c
}

type wireCondition struct {
	wireID
	Name           string   `json:"name"`
	DiagnosticCode string   `json:"diagnosticCode"`
	Status         string   `json:"status"`
	Rating         *int     `json:"rating"`
	MonthlyAmount  *float64 `json:"monthlyAmount"`
	DenialReason   string   `json:"denialReason"`
}

func normalizeCondition(w wireCondition) Condition {
	return Condition{
		ID:             w.canonical(),
		Name:           w.Name,
		DiagnosticCode: w.DiagnosticCode,
		Status:         w.Status,
		Rating:         w.Rating,
		MonthlyAmount:  w.MonthlyAmount,
		DenialReason:   w.DenialReason,
	}
}

type wireActionItem struct {
	wireID
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
	PackageID   string `json:"packageId"`
	ClaimID     string `json:"claimId"`
	ConditionID string `json:"conditionId"`
}

func normalizeActionItem(w wireActionItem) ActionItem {
	return ActionItem{
		ID:          w.canonical(),
		Title:       w.Title,
		Description: w.Description,
		Priority:    Priority(w.Priority),
		Completed:   w.Completed,
		PackageID:   w.PackageID,
		ClaimID:     w.ClaimID,
		ConditionID: w.ConditionID,
	}
}

type wirePackage struct {
	wireID
	Name             string   `json:"name"`
	Goal             string   `json:"goal"`
	Status           string   `json:"status"`
	TargetConditions []string `json:"targetConditions"`
	Progress         int      `json:"progress"`
}

func normalizePackage(w wirePackage) Package {
	return Package{
		ID:               w.canonical(),
		Name:             w.Name,
		Goal:             w.Goal,
		Status:           w.Status,
		TargetConditions: w.TargetConditions,
		Progress:         w.Progress,
	}
}

type wireChecklistItem struct {
	wireID
	Label      string `json:"label"`
	Completed  bool   `json:"completed"`
	DocumentID string `json:"documentId"`
}

type wireChecklist struct {
	wireID
	Name      string              `json:"name"`
	PackageID string              `json:"packageId"`
	Items     []wireChecklistItem `json:"items"`
}

func normalizeChecklist(w wireChecklist) Checklist {
	c := Checklist{
		ID:        w.canonical(),
		Name:      w.Name,
		PackageID: w.PackageID,
	}
	for _, wi := range w.Items {
		c.Items = append(c.Items, ChecklistItem{
			ID:         wi.canonical(),
			Label:      wi.Label,
			Completed:  wi.Completed,
			DocumentID: wi.DocumentID,
		})
	}
	return c
}

type wireDocument struct {
	wireID
	Type       string `json:"type"`
	Name       string `json:"name"`
	Source     string `json:"source"`
	UploadedAt string `json:"uploadedAt"`
	ClaimID    string `json:"claimId"`
	PackageID  string `json:"packageId"`
}

func normalizeDocument(w wireDocument) Document {
	uploaded, _ := parseDate(w.UploadedAt)
	return Document{
		ID:         w.canonical(),
		Type:       w.Type,
		Name:       w.Name,
		Source:     w.Source,
		UploadedAt: uploaded,
		ClaimID:    w.ClaimID,
		PackageID:  w.PackageID,
	}
}
