package mockapi

// Wire shapes. Entities that came out of the document store carry the
// legacy "_id" spelling; newer endpoints use "id". The mock preserves
// both so clients keep handling the mix.

type userDoc struct {
	ID        string   `json:"id,omitempty"`
	LegacyID  string   `json:"_id,omitempty"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	IsPremium bool     `json:"isPremium"`
	Roles     []string `json:"roles,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User      userDoc `json:"user"`
	Token     string  `json:"token"`
	ExpiresIn int64   `json:"expiresIn"`
}

// profileResponse carries a rotated token only when the presented one
// was close to expiry.
type profileResponse struct {
	User      userDoc `json:"user"`
	Token     string  `json:"token,omitempty"`
	ExpiresIn int64   `json:"expiresIn,omitempty"`
}

type veteranDoc struct {
	ID             string  `json:"_id"`
	CombinedRating int     `json:"combinedRating"`
	MonthlyAward   float64 `json:"monthlyAward"`
	LastSyncedAt   string  `json:"lastSyncedAt,omitempty"`
}

type claimConditionDoc struct {
	ConditionID string `json:"conditionId"`
	ClaimID     string `json:"claimId"`
	Status      string `json:"status"`
	Rating      *int   `json:"rating,omitempty"`
}

type claimDoc struct {
	ID          string              `json:"_id"`
	Type        string              `json:"type"`
	Status      string              `json:"status"`
	FiledDate   string              `json:"filedDate"`
	DecidedDate string              `json:"decidedDate,omitempty"`
	Conditions  []claimConditionDoc `json:"conditions,omitempty"`
}

type conditionDoc struct {
	ID             string   `json:"_id"`
	Name           string   `json:"name"`
	DiagnosticCode string   `json:"diagnosticCode"`
	Status         string   `json:"status"`
	Rating         *int     `json:"rating,omitempty"`
	MonthlyAmount  *float64 `json:"monthlyAmount,omitempty"`
	DenialReason   string   `json:"denialReason,omitempty"`
}

type actionDoc struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
	PackageID   string `json:"packageId,omitempty"`
	ClaimID     string `json:"claimId,omitempty"`
	ConditionID string `json:"conditionId,omitempty"`
}

type packageDoc struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Goal             string   `json:"goal"`
	Status           string   `json:"status"`
	TargetConditions []string `json:"targetConditions,omitempty"`
	Progress         int      `json:"progress"`
}

type checklistItemDoc struct {
	ID         string `json:"_id"`
	Label      string `json:"label"`
	Completed  bool   `json:"completed"`
	DocumentID string `json:"documentId,omitempty"`
}

type checklistDoc struct {
	ID        string             `json:"_id"`
	Name      string             `json:"name"`
	PackageID string             `json:"packageId"`
	Items     []checklistItemDoc `json:"items"`
}

type documentDoc struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Name       string `json:"name"`
	Source     string `json:"source"`
	UploadedAt string `json:"uploadedAt"`
	ClaimID    string `json:"claimId,omitempty"`
	PackageID  string `json:"packageId,omitempty"`
}

type setCompletedRequest struct {
	Completed bool `json:"completed"`
}
