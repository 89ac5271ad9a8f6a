package v1

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/errors"
)

const (
	ReasonInvalidRequest      = "INVALID_REQUEST"
	ReasonNoEnoughSeat        = "NO_ENOUGH_SEAT"
	ReasonTrainNotFound       = "TRAIN_NOT_FOUND"
	ReasonReservationNotFound = "RESERVATION_NOT_FOUND"
)

func IsInvalidRequest(err error) bool {
	return is(err, 400, ReasonInvalidRequest)
}

func ErrorInvalidRequest(format string, args ...interface{}) *errors.Error {
	return errors.New(400, ReasonInvalidRequest, fmt.Sprintf(format, args...))
}

// IsNoEnoughSeat reports whether err means the train cannot accommodate a
// reservation without breaching a carriage cap.
func IsNoEnoughSeat(err error) bool {
	return is(err, 409, ReasonNoEnoughSeat)
}

func ErrorNoEnoughSeat(format string, args ...interface{}) *errors.Error {
	return errors.New(409, ReasonNoEnoughSeat, fmt.Sprintf(format, args...))
}

func IsTrainNotFound(err error) bool {
	return is(err, 404, ReasonTrainNotFound)
}

func ErrorTrainNotFound(format string, args ...interface{}) *errors.Error {
	return errors.New(404, ReasonTrainNotFound, fmt.Sprintf(format, args...))
}

func IsReservationNotFound(err error) bool {
	return is(err, 404, ReasonReservationNotFound)
}

func ErrorReservationNotFound(format string, args ...interface{}) *errors.Error {
	return errors.New(404, ReasonReservationNotFound, fmt.Sprintf(format, args...))
}

func is(err error, code int32, reason string) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == reason && e.Code == code
}
