package queries

import (
	"time"

	"courierapi/internal/core/domain/model/order"

	"github.com/lib/pq"
)

// CourierResponse is the read model of a courier.
type CourierResponse struct {
	ID           int64
	VehicleType  string
	Regions      []int
	WorkingHours []string
	OrderIDs     []int64
}

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID            int64
	Weight        float64
	Region        int
	DeliveryHours []string
	Status        string
	CourierID     *int64
	CompletedAt   *time.Time
}

const courierColumns = `
	c.id,
	c.courier_type,
	c.regions,
	c.working_hours,
	ARRAY(
		SELECT co.order_id FROM courier_orders co
		WHERE co.courier_id = c.id
		ORDER BY co.id
	) AS order_ids`

const orderColumns = `
	o.id,
	o.weight,
	o.region,
	o.delivery_hours,
	o.status,
	o.courier_id,
	o.completed_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourier(row rowScanner) (CourierResponse, error) {
	var (
		resp         CourierResponse
		regions      pq.Int64Array
		workingHours pq.StringArray
		orderIDs     pq.Int64Array
	)

	if err := row.Scan(&resp.ID, &resp.VehicleType, &regions, &workingHours, &orderIDs); err != nil {
		return CourierResponse{}, err
	}

	resp.Regions = make([]int, 0, len(regions))
	for _, r := range regions {
		resp.Regions = append(resp.Regions, int(r))
	}
	resp.WorkingHours = append(make([]string, 0, len(workingHours)), workingHours...)
	resp.OrderIDs = append(make([]int64, 0, len(orderIDs)), orderIDs...)

	return resp, nil
}

func scanOrder(row rowScanner) (OrderResponse, error) {
	var (
		resp          OrderResponse
		deliveryHours pq.StringArray
		status        order.Status
	)

	err := row.Scan(
		&resp.ID,
		&resp.Weight,
		&resp.Region,
		&deliveryHours,
		&status,
		&resp.CourierID,
		&resp.CompletedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	resp.DeliveryHours = append(make([]string, 0, len(deliveryHours)), deliveryHours...)
	resp.Status = status.String()

	return resp, nil
}
