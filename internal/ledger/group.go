package ledger

import (
	"errors"

	"github.com/RFATeixeira/tex-dashboard/internal/types"
	"golang.org/x/exp/slices"
)

// Order selects how grouped entries are arranged.
type Order string

const (
	OrderAscending  Order = "asc"       // oldest month first
	OrderDescending Order = "desc"      // newest month first
	OrderInsertion  Order = "insertion" // one flat group, sorted by date ascending
)

// ErrOrderInvalid is returned when an unknown ordering is requested.
var ErrOrderInvalid = errors.New("the requested order is invalid, allowed values are: asc, desc, insertion")

// MonthGroup is one display bucket of entries sharing a calendar month.
type MonthGroup struct {
	Label   string  `json:"label" example:"01/2024"` // MM/YYYY, empty for the insertion ordering
	Entries []Entry `json:"entries"`
}

// GroupSorted buckets entries by calendar month and orders both the buckets
// and the entries within each bucket chronologically per the requested
// order. With OrderInsertion a single unlabeled bucket is returned instead,
// containing all entries sorted by date ascending.
//
// Entries without a resolvable date appear in no bucket.
func GroupSorted(entries []Entry, order Order) ([]MonthGroup, error) {
	if !slices.Contains([]Order{OrderAscending, OrderDescending, OrderInsertion}, order) {
		return nil, ErrOrderInvalid
	}

	dated := filter(entries, func(e Entry) bool { return !e.Date.IsZero() })

	byDate := func(a, b Entry) int {
		c := a.Date.Compare(b.Date)
		if order == OrderDescending {
			return -c
		}
		return c
	}

	if order == OrderInsertion {
		slices.SortStableFunc(dated, func(a, b Entry) int { return a.Date.Compare(b.Date) })
		return []MonthGroup{{Entries: dated}}, nil
	}

	months := make([]types.Month, 0)
	buckets := make(map[string][]Entry)

	for _, e := range dated {
		month := types.MonthOf(e.Date)
		label := month.Label()

		if _, ok := buckets[label]; !ok {
			months = append(months, month)
		}
		buckets[label] = append(buckets[label], e)
	}

	slices.SortFunc(months, func(a, b types.Month) int {
		if a.Equal(b) {
			return 0
		}
		if a.Before(b) != (order == OrderDescending) {
			return -1
		}
		return 1
	})

	groups := make([]MonthGroup, 0, len(months))
	for _, month := range months {
		entries := buckets[month.Label()]
		slices.SortStableFunc(entries, byDate)

		groups = append(groups, MonthGroup{
			Label:   month.Label(),
			Entries: entries,
		})
	}

	return groups, nil
}
