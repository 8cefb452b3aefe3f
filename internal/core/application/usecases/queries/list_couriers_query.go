package queries

import (
	"errors"
	"fmt"

	"courierapi/internal/pkg/errs"
	"courierapi/internal/pkg/guard"
)

const (
	DefaultListLimit = 1
	MaxListLimit     = 1000
)

var ErrListCouriersQueryIsNotConstructed = errors.New(
	"ListCouriersQuery must be created via NewListCouriersQuery constructor",
)

// ListCouriersQuery pages through couriers in id order.
//
// Example:
//
//	query, err := NewListCouriersQuery(0, 10)
//	if err != nil {
//	    return fmt.Errorf("invalid page: %w", err)
//	}
//	couriers, err := handler.Handle(ctx, query)
type ListCouriersQuery struct {
	offset int
	limit  int

	guard guard.ConstructorGuard
}

// NewListCouriersQuery creates a page request. offset must be non-negative and limit
// within [1, MaxListLimit].
func NewListCouriersQuery(offset, limit int) (ListCouriersQuery, error) {
	var pageErrs []error
	if offset < 0 {
		pageErrs = append(pageErrs, errs.NewValueIsInvalidErrorWithCause(
			"offset", fmt.Errorf("%d is negative", offset),
		))
	}
	if limit < 1 || limit > MaxListLimit {
		pageErrs = append(pageErrs, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit))
	}
	if err := errors.Join(pageErrs...); err != nil {
		return ListCouriersQuery{}, err
	}

	return ListCouriersQuery{offset: offset, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCouriersQuery) Validate() error {
	return q.guard.Validate(ErrListCouriersQueryIsNotConstructed)
}

// Offset returns the number of couriers to skip.
func (q ListCouriersQuery) Offset() int {
	return q.offset
}

// Limit returns the page size.
func (q ListCouriersQuery) Limit() int {
	return q.limit
}
