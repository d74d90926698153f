package reimbursement

import "slices"

// Resolver picks the rule that pays a booking.
type Resolver struct {
	fallback Rule
}

func NewResolver(fallback Rule) *Resolver {
	return &Resolver{fallback: fallback}
}

// Resolve prefers offer rules over offerer rules, then the most recent start.
// Stored rules never overlap within a scope, so the tie-break only matters
// for data written before the overlap check existed.
func (r *Resolver) Resolve(candidates []*CustomRule, b Booking) Rule {
	var best *CustomRule
	for _, c := range candidates {
		if !Matches(c, b) {
			continue
		}
		if best == nil || wins(c, best) {
			best = c
		}
	}
	if best == nil {
		return r.fallback
	}
	return best
}

func wins(a, b *CustomRule) bool {
	if a.scope.IsOfferScope() != b.scope.IsOfferScope() {
		return a.scope.IsOfferScope()
	}
	return a.timespan.from.After(b.timespan.from)
}

// ValidateNoOverlap checks candidate against the rules already stored for
// its offer or offerer.
func ValidateNoOverlap(existing []*CustomRule, candidate *CustomRule) error {
	if slices.ContainsFunc(existing, func(e *CustomRule) bool {
		return e.id != candidate.id && e.Overlaps(candidate)
	}) {
		return ErrRuleOverlap
	}
	return nil
}
