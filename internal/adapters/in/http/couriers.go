package http

import (
	"errors"
	"net/http"

	"courierapi/internal/core/application/usecases/commands"
	"courierapi/internal/core/application/usecases/queries"
	"courierapi/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateCouriers godoc
//
//	@Summary		Import couriers
//	@Description	All-or-nothing: any invalid item rejects the batch and its id is reported.
//	@Tags			couriers
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateCouriersRequest	true	"Couriers"
//	@Success		201		{object}	CreateCouriersResponse
//	@Failure		400		{object}	ValidationError
//	@Router			/couriers [post]
func (s *Server) CreateCouriers(c echo.Context) error {
	var req CreateCouriersRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	items := make([]commands.CourierItem, 0, len(req.Data))
	invalid := make([]int64, 0)
	var causes []error
	for _, item := range req.Data {
		if err := c.Validate(item); err != nil {
			invalid = append(invalid, item.CourierID)
			causes = append(causes, err)
			continue
		}
		items = append(items, commands.CourierItem{
			ID:           item.CourierID,
			VehicleType:  item.CourierType,
			Regions:      item.Regions,
			WorkingHours: item.WorkingHours,
		})
	}
	if len(invalid) > 0 {
		return errs.NewInvalidItemsError("couriers", invalid, errors.Join(causes...))
	}

	cmd, err := commands.NewCreateCouriersCommand(items)
	if err != nil {
		return err
	}

	ids, err := s.handlers.CreateCouriers.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreateCouriersResponse{Couriers: toItemIDs(ids)})
}

// ListCouriers godoc
//
//	@Summary	List couriers
//	@Tags		couriers
//	@Produce	json
//	@Param		offset	query		int	false	"Page offset"	default(0)
//	@Param		limit	query		int	false	"Page size"		default(1)
//	@Success	200		{object}	CouriersPage
//	@Failure	400		{object}	Error
//	@Router		/couriers [get]
func (s *Server) ListCouriers(c echo.Context) error {
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", queries.DefaultListLimit)
	if err != nil {
		return err
	}

	query, err := queries.NewListCouriersQuery(offset, limit)
	if err != nil {
		return err
	}

	couriers, err := s.handlers.ListCouriers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	page := CouriersPage{
		Couriers: make([]Courier, 0, len(couriers)),
		Offset:   offset,
		Limit:    limit,
	}
	for _, courier := range couriers {
		page.Couriers = append(page.Couriers, toCourier(courier))
	}

	return c.JSON(http.StatusOK, page)
}

// GetCourier godoc
//
//	@Summary	Get a courier
//	@Tags		couriers
//	@Produce	json
//	@Param		courier_id	path		int	true	"Courier id"
//	@Success	200			{object}	Courier
//	@Failure	400			{object}	Error
//	@Router		/couriers/{courier_id} [get]
func (s *Server) GetCourier(c echo.Context) error {
	courierID, err := pathID(c, "courier_id")
	if err != nil {
		return err
	}

	return s.writeCourier(c, courierID)
}

// UpdateCourier godoc
//
//	@Summary		Update a courier
//	@Description	Replaces the fields present in the payload. Orders already assigned are kept.
//	@Tags			couriers
//	@Accept			json
//	@Produce		json
//	@Param			courier_id	path		int						true	"Courier id"
//	@Param			payload		body		UpdateCourierRequest	true	"Changed fields"
//	@Success		200			{object}	Courier
//	@Failure		400			{object}	Error
//	@Router			/couriers/{courier_id} [patch]
func (s *Server) UpdateCourier(c echo.Context) error {
	courierID, err := pathID(c, "courier_id")
	if err != nil {
		return err
	}

	var req UpdateCourierRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	if err = c.Validate(req); err != nil {
		return err
	}

	var regions []int
	if req.Regions != nil {
		regions = nonNil(*req.Regions)
	}
	var workingHours []string
	if req.WorkingHours != nil {
		workingHours = nonNil(*req.WorkingHours)
	}

	cmd, err := commands.NewUpdateCourierCommand(courierID, req.CourierType, regions, workingHours)
	if err != nil {
		return err
	}

	if err = s.handlers.UpdateCourier.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.writeCourier(c, courierID)
}

func (s *Server) writeCourier(c echo.Context, courierID int64) error {
	query, err := queries.NewGetCourierQuery(courierID)
	if err != nil {
		return err
	}

	courier, err := s.handlers.GetCourier.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCourier(courier))
}
