package ledger

import (
	"time"

	"github.com/RFATeixeira/tex-dashboard/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCreditLimit is used when a user has not configured a credit limit.
var DefaultCreditLimit = decimal.NewFromInt(1000)

// Window holds the credit usage for the current billing window.
type Window struct {
	Limit     decimal.Decimal `json:"limit" example:"1000"`    // Configured credit ceiling
	Used      decimal.Decimal `json:"used" example:"400"`      // Outstanding installment amounts for the window
	Remaining decimal.Decimal `json:"remaining" example:"600"` // Limit minus used
	Dropped   int             `json:"dropped" example:"0"`     // Credit entries excluded because their date could not be resolved
}

// CreditWindow computes the credit usage window at the reference instant.
// A zero limit falls back to DefaultCreditLimit.
func CreditWindow(entries []Entry, limit decimal.Decimal, now time.Time) Window {
	if limit.IsZero() {
		limit = DefaultCreditLimit
	}

	used, dropped := UsedCredit(entries, now)

	return Window{
		Limit:     limit,
		Used:      used,
		Remaining: limit.Sub(used),
		Dropped:   dropped,
	}
}

// UsedCredit sums the installment amounts that count against the credit
// limit at the reference instant.
//
// Installments are grouped by purchase. A purchase is considered for the
// window when at least one of its installments falls in the current or the
// immediately following month; for such purchases every installment dated
// in the current month or later contributes its per-installment value.
// Purchases whose installments all lie in the past or start more than one
// month out do not count.
//
// All months are read with UTC calendar fields, unlike Aggregate.
func UsedCredit(entries []Entry, now time.Time) (decimal.Decimal, int) {
	current := types.MonthOfUTC(now)
	next := current.Next()

	type group struct {
		value  decimal.Decimal
		months []types.Month
	}

	groups := make(map[uuid.UUID]*group)
	dropped := 0

	for _, e := range entries {
		if e.Date.IsZero() {
			dropped++
			continue
		}

		// Entries that are not part of a multi-installment purchase
		// form a group of their own.
		key := e.ParcelGroupID
		if key == uuid.Nil {
			key = e.ID
		}

		g, ok := groups[key]
		if !ok {
			g = &group{value: e.Value}
			groups[key] = g
		}

		g.months = append(g.months, types.MonthOfUTC(e.Date))
	}

	total := decimal.Zero

	for _, g := range groups {
		active := false
		outstanding := int64(0)

		for _, m := range g.months {
			if m.Equal(current) || m.Equal(next) {
				active = true
			}

			if !m.Before(current) {
				outstanding++
			}
		}

		if active {
			total = total.Add(g.value.Mul(decimal.NewFromInt(outstanding)))
		}
	}

	return total, dropped
}
