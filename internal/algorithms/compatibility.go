package algorithms

import (
	"strings"

	"doulink_backend/internal/models"
)

// CompatibilityReasons lists which filters a candidate passed; used for
// debug logging, never for ranking.
type CompatibilityReasons []string

// DoulaMatchesParent reports whether a doula is a valid match for a parent.
// All filters must hold:
//   - same state, case-insensitive (drive-distance radius matching is a
//     known future refinement; same-state equality is the current rule)
//   - service category overlap
//   - financing/payment preference overlap
//   - language overlap, skipped when the parent lists no preferred languages
//
// Callers are responsible for restricting the candidate pool to doulas
// with an active subscription.
func DoulaMatchesParent(parent *models.ParentProfile, doula *models.DoulaProfile) (bool, CompatibilityReasons) {
	reasons := CompatibilityReasons{}

	if !SameState(parent.State, doula.State) {
		return false, nil
	}
	reasons = append(reasons, "same state")

	if !HasOverlap(parent.GetServiceCategories(), doula.GetServiceCategories()) {
		return false, nil
	}
	reasons = append(reasons, "service categories overlap")

	if !HasOverlap(parent.GetFinancingType(), doula.GetPaymentPreferences()) {
		return false, nil
	}
	reasons = append(reasons, "financing accepted")

	preferred := parent.GetPreferredLanguages()
	if len(preferred) > 0 {
		if !HasOverlap(preferred, doula.GetSpokenLanguages()) {
			return false, nil
		}
		reasons = append(reasons, "languages overlap")
	}

	return true, reasons
}

// SameState compares US state fields case-insensitively.
func SameState(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// HasOverlap reports whether the two sets share at least one element.
func HasOverlap(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
