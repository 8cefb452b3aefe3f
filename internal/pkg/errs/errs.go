package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every typed error below unwraps to exactly one of them, so callers
// can classify failures with errors.Is without knowing the concrete type.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrAssignmentMismatch = errors.New("assignment mismatch")
	ErrUnknownVehicleType = errors.New("unknown vehicle type")
	ErrMalformedInterval  = errors.New("malformed interval")
	ErrInvalidItems       = errors.New("invalid items")
)

// ObjectNotFoundError reports a lookup miss for the object identified by ID.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s %v", ErrObjectNotFound, e.ParamName, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that is present but unusable.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// AssignmentMismatchError is returned when a courier acts on an order it does not own.
// AssignedTo is nil for an order nobody owns yet.
type AssignmentMismatchError struct {
	OrderID    int64
	CourierID  int64
	AssignedTo *int64
}

func NewAssignmentMismatchError(orderID, courierID int64, assignedTo *int64) *AssignmentMismatchError {
	return &AssignmentMismatchError{
		OrderID:    orderID,
		CourierID:  courierID,
		AssignedTo: assignedTo,
	}
}

func (e *AssignmentMismatchError) Error() string {
	if e.AssignedTo == nil {
		return fmt.Sprintf("%s: order %d is not assigned, requested by courier %d",
			ErrAssignmentMismatch, e.OrderID, e.CourierID)
	}
	return fmt.Sprintf("%s: order %d is assigned to courier %d, requested by courier %d",
		ErrAssignmentMismatch, e.OrderID, *e.AssignedTo, e.CourierID)
}

func (e *AssignmentMismatchError) Unwrap() error {
	return ErrAssignmentMismatch
}

// UnknownVehicleTypeError is returned by capacity lookups for unsupported vehicle types.
type UnknownVehicleTypeError struct {
	Type string
}

func NewUnknownVehicleTypeError(vehicleType string) *UnknownVehicleTypeError {
	return &UnknownVehicleTypeError{Type: vehicleType}
}

func (e *UnknownVehicleTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownVehicleType, sanitize(e.Type))
}

func (e *UnknownVehicleTypeError) Unwrap() error {
	return ErrUnknownVehicleType
}

// MalformedIntervalError is returned when a "HH:MM-HH:MM" value cannot be parsed.
type MalformedIntervalError struct {
	Value string
	Cause error
}

func NewMalformedIntervalError(value string) *MalformedIntervalError {
	return &MalformedIntervalError{Value: value}
}

func NewMalformedIntervalErrorWithCause(value string, cause error) *MalformedIntervalError {
	return &MalformedIntervalError{
		Value: value,
		Cause: cause,
	}
}

func (e *MalformedIntervalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %q (cause: %v)", ErrMalformedInterval, sanitize(e.Value), e.Cause)
	}
	return fmt.Sprintf("%s: %q", ErrMalformedInterval, sanitize(e.Value))
}

func (e *MalformedIntervalError) Unwrap() error {
	return ErrMalformedInterval
}

// InvalidItemsError collects the identifiers of the rejected items of a batch payload.
// Collection names the batch ("couriers", "orders") and is echoed back to API clients.
type InvalidItemsError struct {
	Collection string
	IDs        []int64
	Cause      error
}

func NewInvalidItemsError(collection string, ids []int64, cause error) *InvalidItemsError {
	return &InvalidItemsError{
		Collection: collection,
		IDs:        ids,
		Cause:      cause,
	}
}

func (e *InvalidItemsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %v (cause: %v)", ErrInvalidItems, e.Collection, e.IDs, e.Cause)
	}
	return fmt.Sprintf("%s: %s %v", ErrInvalidItems, e.Collection, e.IDs)
}

func (e *InvalidItemsError) Unwrap() error {
	return ErrInvalidItems
}

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprint(v), "\n", " ")
}
