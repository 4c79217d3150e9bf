package httperr

import (
	"net/http"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/facility"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// Violation is one entry of a 422 detail list. Capacity accompanies OverCapacity.
type Violation struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Capacity int    `json:"capacity,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a usecase error onto its HTTP status. Unknown errors become 500
// with fallback as the message.
func Abort(c *gin.Context, err error, fallback string) {
	status, msg, detail := Classify(err)
	if status == http.StatusInternalServerError {
		msg = fallback
	}
	AbortWithError(c, status, err, msg, detail)
}

func Classify(err error) (status int, msg string, detail any) {
	var verrs booking.ValidationErrors
	if errs.As(err, &verrs) {
		msg := "Booking validation failed"
		if verrs.Has(booking.CodeFacilityUnavailable) {
			msg += ": time slot unavailable"
		}
		return http.StatusUnprocessableEntity, msg, violations(verrs)
	}

	switch {
	case errs.Is(err, errs.ErrBookingNotFound):
		return http.StatusNotFound, "Booking not found", nil
	case errs.Is(err, errs.ErrFacilityNotFound):
		return http.StatusNotFound, "Facility not found", nil
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden, "Forbidden", nil
	case errs.Is(err, booking.ErrInvalidTransition):
		return http.StatusConflict, "Invalid status transition", nil
	case errs.Is(err, errs.ErrSlotConflict):
		return http.StatusConflict, "Time slot already confirmed", nil
	case errs.Is(err, queries.ErrInvalidCursor):
		return http.StatusBadRequest, "Invalid cursor", nil
	case isFacilityInputError(err):
		return http.StatusBadRequest, "Invalid facility", err.Error()
	}
	return http.StatusInternalServerError, "Internal server error", nil
}

func violations(verrs booking.ValidationErrors) []Violation {
	out := make([]Violation, len(verrs))
	for i, v := range verrs {
		out[i] = Violation{Code: string(v.Code), Message: v.Error(), Capacity: v.Capacity}
	}
	return out
}

func isFacilityInputError(err error) bool {
	for _, target := range []error{
		facility.ErrInvalidName,
		facility.ErrInvalidLocation,
		facility.ErrInvalidCapacity,
		facility.ErrInvalidTimeOfDay,
		facility.ErrInvalidOpeningHours,
	} {
		if errs.Is(err, target) {
			return true
		}
	}
	return false
}
