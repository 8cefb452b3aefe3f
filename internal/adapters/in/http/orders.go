package http

import (
	"errors"
	"net/http"

	"courierapi/internal/core/application/usecases/commands"
	"courierapi/internal/core/application/usecases/queries"
	"courierapi/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrders godoc
//
//	@Summary		Import orders
//	@Description	All-or-nothing: any invalid item rejects the batch and its id is reported.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateOrdersRequest	true	"Orders"
//	@Success		201		{object}	CreateOrdersResponse
//	@Failure		400		{object}	ValidationError
//	@Router			/orders [post]
func (s *Server) CreateOrders(c echo.Context) error {
	var req CreateOrdersRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	items := make([]commands.OrderItem, 0, len(req.Data))
	invalid := make([]int64, 0)
	var causes []error
	for _, item := range req.Data {
		if err := c.Validate(item); err != nil {
			invalid = append(invalid, item.OrderID)
			causes = append(causes, err)
			continue
		}
		items = append(items, commands.OrderItem{
			ID:            item.OrderID,
			Weight:        item.Weight,
			Region:        *item.Region,
			DeliveryHours: item.DeliveryHours,
		})
	}
	if len(invalid) > 0 {
		return errs.NewInvalidItemsError("orders", invalid, errors.Join(causes...))
	}

	cmd, err := commands.NewCreateOrdersCommand(items)
	if err != nil {
		return err
	}

	ids, err := s.handlers.CreateOrders.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreateOrdersResponse{Orders: toItemIDs(ids)})
}

// GetActiveOrders godoc
//
//	@Summary	List orders that are not delivered yet
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}	Order
//	@Router		/orders/active [get]
func (s *Server) GetActiveOrders(c echo.Context) error {
	orders, err := s.handlers.GetUncompletedOrders.Handle(c.Request().Context(), queries.NewGetUncompletedOrdersQuery())
	if err != nil {
		return err
	}

	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrder(o))
	}

	return c.JSON(http.StatusOK, response)
}

// GetOrder godoc
//
//	@Summary	Get an order
//	@Tags		orders
//	@Produce	json
//	@Param		order_id	path		int	true	"Order id"
//	@Success	200			{object}	Order
//	@Failure	400			{object}	Error
//	@Router		/orders/{order_id} [get]
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := pathID(c, "order_id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}

	o, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrder(o))
}

// AssignOrders godoc
//
//	@Summary		Assign orders to a courier
//	@Description	Assigns every free order the courier can carry, in one of its regions and
//	@Description	inside its working hours. Returns all orders assigned to the courier so far.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		AssignOrdersRequest	true	"Courier"
//	@Success		200		{object}	AssignOrdersResponse
//	@Failure		400		{object}	Error
//	@Router			/orders/assign [post]
func (s *Server) AssignOrders(c echo.Context) error {
	var req AssignOrdersRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	cmd, err := commands.NewAssignOrdersCommand(req.CourierID)
	if err != nil {
		return err
	}

	ids, err := s.handlers.AssignOrders.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, AssignOrdersResponse{Orders: toItemIDs(ids)})
}

// CompleteOrder godoc
//
//	@Summary	Report a delivered order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		CompleteOrderRequest	true	"Courier and order"
//	@Success	200		{object}	CompleteOrderResponse
//	@Failure	400		{object}	Error
//	@Router		/orders/complete [post]
func (s *Server) CompleteOrder(c echo.Context) error {
	var req CompleteOrderRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	cmd, err := commands.NewCompleteOrderCommand(req.CourierID, req.OrderID)
	if err != nil {
		return err
	}

	result, err := s.handlers.CompleteOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CompleteOrderResponse{OrderID: result.CourierID})
}
