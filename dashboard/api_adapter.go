package dashboard

import (
	"context"
	"fmt"

	"github.com/claimready/claimready/client"
)

// APIAdapter serves dashboard data from the ClaimReady REST backend.
// It implements every adapter interface so a single value can back the
// whole dashboard.
type APIAdapter struct {
	c *client.Client
}

// NewAPIAdapter creates an adapter over the given authenticated client.
func NewAPIAdapter(c *client.Client) *APIAdapter {
	return &APIAdapter{c: c}
}

var _ Adapter = (*APIAdapter)(nil)

// Profile fetches the veteran profile.
func (a *APIAdapter) Profile(ctx context.Context) (*Veteran, error) {
	var w wireVeteran
	if err := a.c.Get(ctx, "/api/v1/veteran", &w); err != nil {
		return nil, err
	}
	v := normalizeVeteran(w)
	return &v, nil
}

// Claims fetches every claim for the current veteran.
func (a *APIAdapter) Claims(ctx context.Context) ([]Claim, error) {
	var ws []wireClaim
	if err := a.c.Get(ctx, "/api/v1/claims", &ws); err != nil {
		return nil, err
	}
	claims := make([]Claim, 0, len(ws))
	for _, w := range ws {
		claims = append(claims, normalizeClaim(w))
	}
	return claims, nil
}

// ClaimByID fetches a single claim.
func (a *APIAdapter) ClaimByID(ctx context.Context, id string) (*Claim, error) {
	var w wireClaim
	if err := a.c.Get(ctx, "/api/v1/claims/"+id, &w); err != nil {
		return nil, err
	}
	c := normalizeClaim(w)
	return &c, nil
}

// Conditions fetches the condition catalog.
func (a *APIAdapter) Conditions(ctx context.Context) ([]Condition, error) {
	var ws []wireCondition
	if err := a.c.Get(ctx, "/api/v1/conditions", &ws); err != nil {
		return nil, err
	}
	conds := make([]Condition, 0, len(ws))
	for _, w := range ws {
		conds = append(conds, normalizeCondition(w))
	}
	return conds, nil
}

// Actions fetches every action item.
func (a *APIAdapter) Actions(ctx context.Context) ([]ActionItem, error) {
	var ws []wireActionItem
	if err := a.c.Get(ctx, "/api/v1/action-items", &ws); err != nil {
		return nil, err
	}
	items := make([]ActionItem, 0, len(ws))
	for _, w := range ws {
		items = append(items, normalizeActionItem(w))
	}
	return items, nil
}

// SetCompleted persists an action item completion toggle and returns
// the server's canonical item.
func (a *APIAdapter) SetCompleted(ctx context.Context, id string, completed bool) (*ActionItem, error) {
	body := map[string]bool{"completed": completed}
	var w wireActionItem
	if err := a.c.Put(ctx, "/api/v1/action-items/"+id, body, &w); err != nil {
		return nil, err
	}
	item := normalizeActionItem(w)
	return &item, nil
}

// Packages fetches every claim package.
func (a *APIAdapter) Packages(ctx context.Context) ([]Package, error) {
	var ws []wirePackage
	if err := a.c.Get(ctx, "/api/v1/packages", &ws); err != nil {
		return nil, err
	}
	pkgs := make([]Package, 0, len(ws))
	for _, w := range ws {
		pkgs = append(pkgs, normalizePackage(w))
	}
	return pkgs, nil
}

// Checklists fetches the checklists for one package.
func (a *APIAdapter) Checklists(ctx context.Context, packageID string) ([]Checklist, error) {
	var ws []wireChecklist
	path := fmt.Sprintf("/api/v1/packages/%s/checklists", packageID)
	if err := a.c.Get(ctx, path, &ws); err != nil {
		return nil, err
	}
	lists := make([]Checklist, 0, len(ws))
	for _, w := range ws {
		lists = append(lists, normalizeChecklist(w))
	}
	return lists, nil
}

// SetChecklistItem persists a checklist item completion toggle and
// returns the canonical checklist.
func (a *APIAdapter) SetChecklistItem(ctx context.Context, packageID, checklistID, itemID string, completed bool) (*Checklist, error) {
	body := map[string]bool{"completed": completed}
	path := fmt.Sprintf("/api/v1/packages/%s/checklists/%s/items/%s", packageID, checklistID, itemID)
	var w wireChecklist
	if err := a.c.Put(ctx, path, body, &w); err != nil {
		return nil, err
	}
	list := normalizeChecklist(w)
	return &list, nil
}

// Documents fetches every document.
func (a *APIAdapter) Documents(ctx context.Context) ([]Document, error) {
	var ws []wireDocument
	if err := a.c.Get(ctx, "/api/v1/documents", &ws); err != nil {
		return nil, err
	}
	docs := make([]Document, 0, len(ws))
	for _, w := range ws {
		docs = append(docs, normalizeDocument(w))
	}
	return docs, nil
}
