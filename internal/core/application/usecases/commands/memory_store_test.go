package commands_test

import (
	"context"
	"slices"
	"sync"
	"time"

	"courierapi/internal/core/application/usecases/commands"
	"courierapi/internal/core/domain/model/courier"
	"courierapi/internal/core/domain/model/kernel"
	"courierapi/internal/core/domain/model/order"
	"courierapi/internal/core/ports"
	"courierapi/internal/pkg/errs"
)

// memoryStore keeps aggregates as plain snapshots so that every Get returns a fresh
// aggregate, the way a database does. Writes apply immediately; Rollback is a no-op.
type memoryStore struct {
	mu       sync.Mutex
	couriers map[int64]courierSnapshot
	orders   map[int64]orderSnapshot
}

type courierSnapshot struct {
	vehicleType  courier.VehicleType
	regions      []int
	workingHours []kernel.TimeWindow
	orderIDs     []int64
}

type orderSnapshot struct {
	weight        float64
	region        int
	deliveryHours []kernel.TimeWindow
	status        order.Status
	courierID     *int64
	completedAt   *time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		couriers: make(map[int64]courierSnapshot),
		orders:   make(map[int64]orderSnapshot),
	}
}

func (s *memoryStore) Create() commands.UoW {
	return &memoryUoW{store: s}
}

type memoryUoW struct {
	store *memoryStore
}

func (u *memoryUoW) Begin(context.Context) error    { return nil }
func (u *memoryUoW) Commit(context.Context) error   { return nil }
func (u *memoryUoW) Rollback(context.Context) error { return nil }

func (u *memoryUoW) CourierRepository() ports.CourierRepository {
	return memoryCourierRepository{store: u.store}
}

func (u *memoryUoW) OrderRepository() ports.OrderRepository {
	return memoryOrderRepository{store: u.store}
}

type memoryCourierRepository struct {
	store *memoryStore
}

func (r memoryCourierRepository) Add(_ context.Context, c *courier.Courier) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.couriers[c.ID()]; ok {
		return errs.NewValueIsInvalidError("courier_id")
	}
	r.store.couriers[c.ID()] = snapshotCourier(c)
	return nil
}

func (r memoryCourierRepository) Update(_ context.Context, c *courier.Courier) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.couriers[c.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("courier", c.ID())
	}
	next := snapshotCourier(c)
	next.orderIDs = slices.Clone(stored.orderIDs)
	for _, id := range c.OrderIDs() {
		if !slices.Contains(next.orderIDs, id) {
			next.orderIDs = append(next.orderIDs, id)
		}
	}
	r.store.couriers[c.ID()] = next
	return nil
}

func (r memoryCourierRepository) AppendOrder(_ context.Context, courierID, orderID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.couriers[courierID]
	if !ok {
		return errs.NewObjectNotFoundError("courier", courierID)
	}
	if !slices.Contains(stored.orderIDs, orderID) {
		stored.orderIDs = append(slices.Clone(stored.orderIDs), orderID)
	}
	r.store.couriers[courierID] = stored
	return nil
}

func (r memoryCourierRepository) Get(_ context.Context, id int64) (*courier.Courier, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.couriers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("courier", id)
	}
	return courier.RestoreCourier(id, s.vehicleType, s.regions, s.workingHours, s.orderIDs)
}

func (r memoryCourierRepository) ListIDs(context.Context) ([]int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ids := make([]int64, 0, len(r.store.couriers))
	for id := range r.store.couriers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

type memoryOrderRepository struct {
	store *memoryStore
}

func (r memoryOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return r.AddMany(ctx, []*order.Order{o})
}

func (r memoryOrderRepository) AddMany(_ context.Context, orders []*order.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, o := range orders {
		if _, ok := r.store.orders[o.ID()]; ok {
			return errs.NewValueIsInvalidError("order_id")
		}
	}
	for _, o := range orders {
		r.store.orders[o.ID()] = snapshotOrder(o)
	}
	return nil
}

func (r memoryOrderRepository) Update(_ context.Context, o *order.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.orders[o.ID()]; !ok {
		return errs.NewObjectNotFoundError("order", o.ID())
	}
	r.store.orders[o.ID()] = snapshotOrder(o)
	return nil
}

func (r memoryOrderRepository) Get(_ context.Context, id int64) (*order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return restoreOrder(id, s)
}

func (r memoryOrderRepository) Assign(_ context.Context, o *order.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.orders[o.ID()]
	if !ok || s.courierID != nil || s.status != order.Created {
		return order.ErrOrderAlreadyAssigned
	}
	r.store.orders[o.ID()] = snapshotOrder(o)
	return nil
}

func (r memoryOrderRepository) FindCandidates(
	_ context.Context,
	criteria order.CandidateCriteria,
) ([]*order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	candidates := make([]*order.Order, 0)
	for id, s := range r.store.orders {
		o, err := restoreOrder(id, s)
		if err != nil {
			return nil, err
		}
		if criteria.Matches(o) {
			candidates = append(candidates, o)
		}
	}
	criteria.Sort(candidates)
	return candidates, nil
}

func snapshotCourier(c *courier.Courier) courierSnapshot {
	return courierSnapshot{
		vehicleType:  c.VehicleType(),
		regions:      c.Regions(),
		workingHours: c.WorkingHours(),
		orderIDs:     c.OrderIDs(),
	}
}

func snapshotOrder(o *order.Order) orderSnapshot {
	return orderSnapshot{
		weight:        o.Weight(),
		region:        o.Region(),
		deliveryHours: o.DeliveryHours(),
		status:        o.Status(),
		courierID:     o.Courier(),
		completedAt:   o.CompletedAt(),
	}
}

func restoreOrder(id int64, s orderSnapshot) (*order.Order, error) {
	return order.RestoreOrder(id, s.weight, s.region, s.deliveryHours, s.status, s.courierID, s.completedAt)
}
