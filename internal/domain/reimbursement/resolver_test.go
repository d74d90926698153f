//go:build unit

package reimbursement_test

import (
	"testing"

	"pcapi/internal/domain/reimbursement"
	"pcapi/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	resolver := reimbursement.NewResolver(reimbursement.NewFullReimbursementRule())

	offerRule := builder.NewRuleBuilder().ForOffer(offer).WithRate("0.9").Between(jan1, nil).BuildDomain()
	offererRule := builder.NewRuleBuilder().ForOfferer(pro).WithRate("0.8").Between(jan1, nil).BuildDomain()
	newerOffererRule := builder.NewRuleBuilder().ForOfferer(pro, "LIVRE_PAPIER").WithRate("0.7").Between(feb1, nil).BuildDomain()
	otherOffer := builder.NewRuleBuilder().ForOffer(uuid.New()).Between(jan1, nil).BuildDomain()

	cases := []struct {
		name       string
		candidates []*reimbursement.CustomRule
		booking    reimbursement.Booking
		want       reimbursement.Rule
	}{
		{name: "no candidates falls back", booking: usedBooking(feb1)},
		{name: "no match falls back", candidates: []*reimbursement.CustomRule{otherOffer}, booking: usedBooking(feb1)},
		{name: "offer rule beats offerer rule", candidates: []*reimbursement.CustomRule{offererRule, offerRule, newerOffererRule}, booking: usedBooking(mar1), want: offerRule},
		{name: "latest start wins within offerer scope", candidates: []*reimbursement.CustomRule{offererRule, newerOffererRule}, booking: usedBooking(mar1), want: newerOffererRule},
		{name: "newer rule not yet active", candidates: []*reimbursement.CustomRule{offererRule, newerOffererRule}, booking: usedBooking(jan1), want: offererRule},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := resolver.Resolve(c.candidates, c.booking)
			if c.want == nil {
				assert.Equal(t, uuid.Nil, got.ID())
				return
			}
			assert.Equal(t, c.want.ID(), got.ID())
		})
	}
}

func TestValidateNoOverlap(t *testing.T) {
	existing := []*reimbursement.CustomRule{
		builder.NewRuleBuilder().ForOfferer(pro, "CINE_SALLE").Between(jan1, &feb1).BuildDomain(),
		builder.NewRuleBuilder().ForOffer(offer).Between(jan1, nil).BuildDomain(),
	}

	cases := []struct {
		name      string
		candidate *reimbursement.CustomRule
		overlaps  bool
	}{
		{name: "same offer open ended", candidate: builder.NewRuleBuilder().ForOffer(offer).Between(mar1, nil).BuildDomain(), overlaps: true},
		{name: "other offer", candidate: builder.NewRuleBuilder().ForOffer(uuid.New()).Between(jan1, nil).BuildDomain()},
		{name: "offerer rule starting at previous end", candidate: builder.NewRuleBuilder().ForOfferer(pro).Between(feb1, nil).BuildDomain()},
		{name: "offerer rule without subcategories", candidate: builder.NewRuleBuilder().ForOfferer(pro).Between(jan1, nil).BuildDomain(), overlaps: true},
		{name: "disjoint subcategories", candidate: builder.NewRuleBuilder().ForOfferer(pro, "LIVRE_PAPIER").Between(jan1, nil).BuildDomain()},
		{name: "offer scope never clashes with offerer scope", candidate: builder.NewRuleBuilder().ForOffer(uuid.New()).Between(jan1, nil).BuildDomain()},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := reimbursement.ValidateNoOverlap(existing, c.candidate)
			if c.overlaps {
				assert.ErrorIs(t, err, reimbursement.ErrRuleOverlap)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
