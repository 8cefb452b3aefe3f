package order

import (
	"fmt"
	"slices"

	"courierapi/internal/pkg/errs"
)

// Ordering selects the sequence in which candidate orders are returned and therefore the
// sequence in which a courier takes them.
type Ordering int

const (
	// ByID returns candidates by ascending order id.
	ByID Ordering = iota
	// ByWeight returns lighter orders first, ties broken by ascending id.
	ByWeight
)

// ParseOrdering maps a configuration value ("id", "weight" or empty) to an Ordering.
func ParseOrdering(value string) (Ordering, error) {
	switch value {
	case "", "id":
		return ByID, nil
	case "weight":
		return ByWeight, nil
	default:
		return ByID, errs.NewValueIsInvalidErrorWithCause(
			"ordering",
			fmt.Errorf("%q is not one of id, weight", value),
		)
	}
}

func (o Ordering) String() string {
	if o == ByWeight {
		return "weight"
	}
	return "id"
}

// CandidateCriteria describes the orders a courier may take, before the time window check:
// unassigned, not heavier than MaxWeight and located in one of Regions.
type CandidateCriteria struct {
	MaxWeight float64
	Regions   []int
	Ordering  Ordering
}

// Matches applies the criteria to a single order. Storage implementations express the same
// predicate in their query language.
func (c CandidateCriteria) Matches(o *Order) bool {
	return o != nil &&
		o.Status() == Created &&
		!o.IsAssigned() &&
		o.Weight() <= c.MaxWeight &&
		slices.Contains(c.Regions, o.Region())
}

// Sort orders candidates in place according to c.Ordering.
func (c CandidateCriteria) Sort(orders []*Order) {
	slices.SortStableFunc(orders, func(a, b *Order) int {
		if c.Ordering == ByWeight && a.Weight() != b.Weight() {
			if a.Weight() < b.Weight() {
				return -1
			}
			return 1
		}
		switch {
		case a.ID() < b.ID():
			return -1
		case a.ID() > b.ID():
			return 1
		default:
			return 0
		}
	})
}
