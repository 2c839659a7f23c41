package ledger

import (
	"github.com/RFATeixeira/tex-dashboard/internal/types"
	"github.com/shopspring/decimal"
)

// Summary holds the derived totals of one ledger for one month.
type Summary struct {
	Month   types.Month     `json:"month" example:"2024-02-01T00:00:00Z"`
	Income  decimal.Decimal `json:"income" example:"1300"`  // Income of the month including the carried-in balance
	Expense decimal.Decimal `json:"expense" example:"100"`  // Expenses of the month
	CarryIn decimal.Decimal `json:"carryIn" example:"800"`  // Net balance of the immediately preceding month
	Balance decimal.Decimal `json:"balance" example:"1200"` // Income minus expenses
	Dropped int             `json:"dropped" example:"0"`    // Entries excluded because their date could not be resolved
}

// Aggregate computes the Summary of a ledger for the selected month.
//
// The carried-in balance looks back exactly one calendar month: income minus
// expenses of the immediately preceding month, not a cumulative balance over
// all history. Entries dated in other months do not contribute.
//
// Dates are read in their own calendar (no UTC conversion); see UsedCredit
// for the credit accounting path, which differs deliberately.
func Aggregate(entries []Entry, month types.Month) Summary {
	previous := month.Previous()

	var income, expense, previousIncome, previousExpense decimal.Decimal
	dropped := 0

	for _, e := range entries {
		if e.Date.IsZero() {
			dropped++
			continue
		}

		switch {
		case month.Contains(e.Date):
			if e.Kind.IsIncome() {
				income = income.Add(e.Value)
			} else {
				expense = expense.Add(e.Value)
			}

		case previous.Contains(e.Date):
			if e.Kind.IsIncome() {
				previousIncome = previousIncome.Add(e.Value)
			} else {
				previousExpense = previousExpense.Add(e.Value)
			}
		}
	}

	carryIn := previousIncome.Sub(previousExpense)
	income = income.Add(carryIn)

	return Summary{
		Month:   month,
		Income:  income,
		Expense: expense,
		CarryIn: carryIn,
		Balance: income.Sub(expense),
		Dropped: dropped,
	}
}
