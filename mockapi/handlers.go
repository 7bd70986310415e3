package mockapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetVeteran handles GET /veteran.
func (a *API) GetVeteran(w http.ResponseWriter, r *http.Request) {
	a.data.mu.Lock()
	v := a.data.veteran
	a.data.mu.Unlock()
	writeJSON(w, http.StatusOK, v)
}

// ListClaims handles GET /claims.
func (a *API) ListClaims(w http.ResponseWriter, r *http.Request) {
	a.data.mu.Lock()
	claims := append([]claimDoc(nil), a.data.claims...)
	a.data.mu.Unlock()
	writeJSON(w, http.StatusOK, claims)
}

// GetClaim handles GET /claims/{claimID}.
func (a *API) GetClaim(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "claimID")
	a.data.mu.Lock()
	defer a.data.mu.Unlock()
	for _, c := range a.data.claims {
		if c.ID == id {
			writeJSON(w, http.StatusOK, c)
			return
		}
	}
	writeError(w, http.StatusNotFound, "not_found", "claim not found")
}

// ListConditions handles GET /conditions.
func (a *API) ListConditions(w http.ResponseWriter, r *http.Request) {
	a.data.mu.Lock()
	conds := append([]conditionDoc(nil), a.data.conditions...)
	a.data.mu.Unlock()
	writeJSON(w, http.StatusOK, conds)
}

// ListActionItems handles GET /action-items.
func (a *API) ListActionItems(w http.ResponseWriter, r *http.Request) {
	a.data.mu.Lock()
	items := append([]actionDoc(nil), a.data.actions...)
	a.data.mu.Unlock()
	writeJSON(w, http.StatusOK, items)
}

// SetActionItem handles PUT /action-items/{itemID}.
func (a *API) SetActionItem(w http.ResponseWriter, r *http.Request) {
	if status, code, ok := a.takeMutationFailure(); ok {
		writeError(w, status, code, "injected failure")
		return
	}
	req, ok := decodeJSON[setCompletedRequest](w, r, maxBodySize)
	if !ok {
		return
	}

	id := chi.URLParam(r, "itemID")
	a.data.mu.Lock()
	defer a.data.mu.Unlock()
	for i := range a.data.actions {
		if a.data.actions[i].ID == id {
			a.data.actions[i].Completed = req.Completed
			writeJSON(w, http.StatusOK, a.data.actions[i])
			return
		}
	}
	writeError(w, http.StatusNotFound, "not_found", "action item not found")
}

// ListPackages handles GET /packages.
func (a *API) ListPackages(w http.ResponseWriter, r *http.Request) {
	a.data.mu.Lock()
	pkgs := append([]packageDoc(nil), a.data.packages...)
	a.data.mu.Unlock()
	writeJSON(w, http.StatusOK, pkgs)
}

// ListChecklists handles GET /packages/{packageID}/checklists.
func (a *API) ListChecklists(w http.ResponseWriter, r *http.Request) {
	pkgID := chi.URLParam(r, "packageID")
	a.data.mu.Lock()
	defer a.data.mu.Unlock()
	lists := make([]checklistDoc, 0)
	for _, l := range a.data.checklists {
		if l.PackageID == pkgID {
			lists = append(lists, l)
		}
	}
	writeJSON(w, http.StatusOK, lists)
}

// SetChecklistItem handles
// PUT /packages/{packageID}/checklists/{checklistID}/items/{checkItemID}.
func (a *API) SetChecklistItem(w http.ResponseWriter, r *http.Request) {
	if status, code, ok := a.takeMutationFailure(); ok {
		writeError(w, status, code, "injected failure")
		return
	}
	req, ok := decodeJSON[setCompletedRequest](w, r, maxBodySize)
	if !ok {
		return
	}

	pkgID := chi.URLParam(r, "packageID")
	listID := chi.URLParam(r, "checklistID")
	itemID := chi.URLParam(r, "checkItemID")

	a.data.mu.Lock()
	defer a.data.mu.Unlock()
	for li := range a.data.checklists {
		list := &a.data.checklists[li]
		if list.PackageID != pkgID || list.ID != listID {
			continue
		}
		for ii := range list.Items {
			if list.Items[ii].ID == itemID {
				list.Items[ii].Completed = req.Completed
				writeJSON(w, http.StatusOK, *list)
				return
			}
		}
	}
	writeError(w, http.StatusNotFound, "not_found", "checklist item not found")
}

// ListDocuments handles GET /documents.
func (a *API) ListDocuments(w http.ResponseWriter, r *http.Request) {
	a.data.mu.Lock()
	docs := append([]documentDoc(nil), a.data.documents...)
	a.data.mu.Unlock()
	writeJSON(w, http.StatusOK, docs)
}

// DownloadDocument handles GET /documents/{documentID}/download.
// Downloads are a premium feature.
func (a *API) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	acct := accountFrom(r)
	if !acct.user.IsPremium {
		writePremiumRequired(w)
		return
	}

	id := chi.URLParam(r, "documentID")
	a.data.mu.Lock()
	defer a.data.mu.Unlock()
	for _, d := range a.data.documents {
		if d.ID == id {
			w.Header().Set("Content-Type", "application/pdf")
			w.Header().Set("Content-Disposition", `attachment; filename="`+d.Name+`"`)
			w.Write([]byte("%PDF-1.4\n% mock document: " + d.Name + "\n"))
			return
		}
	}
	writeError(w, http.StatusNotFound, "not_found", "document not found")
}
