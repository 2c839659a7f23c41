// Package ledger implements the derived computations of the dashboard:
// monthly income/expense aggregation, credit installment accounting and
// the grouped presentation of entries.
//
// All functions are pure: they operate on an entry snapshot passed by the
// caller and never reach into the database. Entries whose date could not
// be resolved are skipped and counted, never raised as errors.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind determines which aggregation bucket an entry feeds.
type Kind string

const (
	KindGanho        Kind = "ganho"        // plain income
	KindGasto        Kind = "gasto"        // plain expense
	KindGastoCredito Kind = "gastoCredito" // credit card expense, possibly one installment of a purchase
	KindGanhoVale    Kind = "ganhoVale"    // meal voucher income
	KindGastoVale    Kind = "gastoVale"    // meal voucher expense
)

// Kinds contains all valid entry kinds.
var Kinds = []Kind{KindGanho, KindGasto, KindGastoCredito, KindGanhoVale, KindGastoVale}

// Valid reports whether k is a known entry kind.
func (k Kind) Valid() bool {
	for _, kind := range Kinds {
		if k == kind {
			return true
		}
	}

	return false
}

// IsIncome reports whether entries of this kind add to a balance.
func (k Kind) IsIncome() bool {
	return k == KindGanho || k == KindGanhoVale
}

// IsVoucher reports whether the kind belongs to the meal voucher ledger.
func (k Kind) IsVoucher() bool {
	return k == KindGanhoVale || k == KindGastoVale
}

// Entry is one income or expense record in a snapshot.
//
// Value is always non-negative, the kind decides whether it adds to or
// subtracts from a balance. A zero Date marks an entry whose stored date
// could not be normalized; such entries are excluded from all sums.
type Entry struct {
	ID            uuid.UUID
	Name          string
	Kind          Kind
	Value         decimal.Decimal
	Date          time.Time
	CreatedAt     time.Time
	ParcelGroupID uuid.UUID // shared by all installments of one purchase, Nil otherwise
	ParcelNumber  int       // 1-based index within the purchase
	TotalParcelas int       // total installment count of the purchase
}

// General returns the entries feeding the general ledger: plain income,
// plain expense and credit card expense.
func General(entries []Entry) []Entry {
	return filter(entries, func(e Entry) bool { return !e.Kind.IsVoucher() })
}

// Voucher returns the entries feeding the meal voucher ledger.
func Voucher(entries []Entry) []Entry {
	return filter(entries, func(e Entry) bool { return e.Kind.IsVoucher() })
}

// Credit returns the credit card expense entries.
func Credit(entries []Entry) []Entry {
	return filter(entries, func(e Entry) bool { return e.Kind == KindGastoCredito })
}

func filter(entries []Entry, keep func(Entry) bool) []Entry {
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if keep(e) {
			filtered = append(filtered, e)
		}
	}

	return filtered
}
