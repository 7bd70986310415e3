package dashboard

// FilterClaims selects the subset of claims a dashboard tab shows.
// Appeals are identified by claim type; everything else splits on
// whether the claim has been decided.
func FilterClaims(claims []Claim, filter ClaimFilter) []Claim {
	if filter == FilterAll || filter == "" {
		return claims
	}
	var out []Claim
	for _, c := range claims {
		switch filter {
		case FilterActive:
			if c.Active() {
				out = append(out, c)
			}
		case FilterCompleted:
			if !c.Active() {
				out = append(out, c)
			}
		case FilterAppeals:
			if c.Type == "appeal" || c.Type == "higher_level_review" || c.Type == "supplemental" {
				out = append(out, c)
			}
		}
	}
	return out
}

// ClaimSummary aggregates counts for the dashboard header.
type ClaimSummary struct {
	Total   int
	Active  int
	Decided int
}

// Summarize computes header counts from a claim list.
func Summarize(claims []Claim) ClaimSummary {
	s := ClaimSummary{Total: len(claims)}
	for _, c := range claims {
		if c.Active() {
			s.Active++
		} else {
			s.Decided++
		}
	}
	return s
}
