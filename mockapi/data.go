package mockapi

import "sync"

// dataset holds the fixture entities. A single veteran's data is
// enough: the session and optimistic flows don't care about volume.
type dataset struct {
	mu         sync.Mutex
	veteran    veteranDoc
	claims     []claimDoc
	conditions []conditionDoc
	actions    []actionDoc
	packages   []packageDoc
	checklists []checklistDoc
	documents  []documentDoc
}

func seedDataset() *dataset {
	rating70 := 70
	rating30 := 30
	amount := 524.31

	return &dataset{
		veteran: veteranDoc{
			ID:             "vet-1",
			CombinedRating: 70,
			MonthlyAward:   1759.19,
			LastSyncedAt:   "2026-03-14T09:30:00Z",
		},
		claims: []claimDoc{
			{
				ID:        "claim-1",
				Type:      "disability compensation",
				Status:    "evidence_gathering",
				FiledDate: "2025-11-02",
				Conditions: []claimConditionDoc{
					{ConditionID: "cond-1", ClaimID: "claim-1", Status: "pending"},
					{ConditionID: "cond-2", ClaimID: "claim-1", Status: "pending"},
				},
			},
			{
				ID:          "claim-2",
				Type:        "increase",
				Status:      "decided",
				FiledDate:   "2024-06-18",
				DecidedDate: "2025-02-03",
				Conditions: []claimConditionDoc{
					{ConditionID: "cond-3", ClaimID: "claim-2", Status: "granted", Rating: &rating70},
				},
			},
		},
		conditions: []conditionDoc{
			{ID: "cond-1", Name: "Tinnitus", DiagnosticCode: "6260", Status: "pending"},
			{ID: "cond-2", Name: "Lumbar strain", DiagnosticCode: "5237", Status: "pending"},
			{ID: "cond-3", Name: "PTSD", DiagnosticCode: "9411", Status: "granted", Rating: &rating30, MonthlyAmount: &amount},
		},
		actions: []actionDoc{
			{ID: "act-1", Title: "Upload buddy statement", Priority: "high", PackageID: "pkg-1"},
			{ID: "act-2", Title: "Schedule C&P exam", Priority: "high", ClaimID: "claim-1"},
			{ID: "act-3", Title: "Request service treatment records", Priority: "medium", ConditionID: "cond-2"},
			{ID: "act-4", Title: "Review decision letter", Priority: "low", ClaimID: "claim-2", Completed: true},
		},
		packages: []packageDoc{
			{ID: "pkg-1", Name: "Tinnitus filing", Goal: "file", Status: "in_progress", TargetConditions: []string{"cond-1"}, Progress: 40},
		},
		checklists: []checklistDoc{
			{
				ID:        "chk-1",
				Name:      "Evidence",
				PackageID: "pkg-1",
				Items: []checklistItemDoc{
					{ID: "item-1", Label: "Buddy statement"},
					{ID: "item-2", Label: "Audiology report", Completed: true, DocumentID: "doc-1"},
				},
			},
		},
		documents: []documentDoc{
			{ID: "doc-1", Type: "evidence", Name: "audiology-report.pdf", Source: "upload", UploadedAt: "2026-01-20T00:00:00Z", PackageID: "pkg-1"},
			{ID: "doc-2", Type: "decision_letter", Name: "decision-2025-02-03.pdf", Source: "va_sync", UploadedAt: "2025-02-04T00:00:00Z", ClaimID: "claim-2"},
		},
	}
}
