package api

import (
	"context"
	"iter"
	"net/http"
	"strconv"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/user"
	reqdto "facility-booking/internal/handler/dto/request"
	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/handler/httperr"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Request a facility for a time slot. The booking starts as pending.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err, "Create booking failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, result.BookingID)
	if err != nil {
		httperr.Abort(c, err, "Failed to load booking")
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.Abort(c, err, "Failed to render booking")
		return
	}
	c.Header("Location", "/api/bookings/"+result.BookingID.String())
	c.JSON(http.StatusCreated, res)
}

// @Summary Get booking
// @Description Owner or staff only; anyone else gets 404
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actor, _ := middleware.GetActor(c)
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load booking")
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.Abort(c, err, "Failed to render booking")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List bookings
// @Description Newest start first with keyset pagination. Members see only their own bookings; userId is honoured for staff.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param facilityId query string false "Facility ID"
// @Param status query string false "pending, confirmed or cancelled"
// @Param dateFrom query string false "First start date, YYYY-MM-DD"
// @Param dateTo query string false "Last start date, YYYY-MM-DD"
// @Param userId query string false "Owner (staff only)"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	filters, err := bookingFiltersFromQuery(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}

	limit := filters.Limit
	// One extra row tells whether another page exists.
	filters.Limit = limit + 1
	items, next, err := collectPage(h.q.ListForUser(c.Request.Context(), actor, filters), limit)
	if err != nil {
		httperr.Abort(c, err, "Failed to list bookings")
		return
	}
	res, err := resdto.FromBookingViews(items, next)
	if err != nil {
		httperr.Abort(c, err, "Failed to render bookings")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update booking
// @Description Owner only, while not cancelled. The result is validated again without counting itself as a conflict.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Update booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/{id} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err = h.cmds.Update(c.Request.Context(), actor, id, req.ToCommand()); err != nil {
		httperr.Abort(c, err, "Update booking failed")
		return
	}
	h.respondWithBooking(c, http.StatusOK, id)
}

// @Summary Confirm booking
// @Description Staff only. Confirming an already confirmed booking keeps it confirmed and notifies again.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.cmds.Confirm, "Confirm booking failed")
}

// @Summary Cancel booking
// @Description Owner or staff. Staff may cancel an already cancelled booking; it stays cancelled and is notified again.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.Cancel, "Cancel booking failed")
}

// @Summary Delete booking
// @Description Staff only
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err, "Delete booking failed")
		return
	}
	c.Status(http.StatusNoContent)
}

type transitionFunc func(ctx context.Context, actor user.Actor, bookingID uuid.UUID) error

func (h *BookingHandler) transition(c *gin.Context, apply transitionFunc, failMsg string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	if err := apply(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err, failMsg)
		return
	}
	h.respondWithBooking(c, http.StatusOK, id)
}

func (h *BookingHandler) respondWithBooking(c *gin.Context, status int, id uuid.UUID) {
	actor, _ := middleware.GetActor(c)
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load booking")
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.Abort(c, err, "Failed to render booking")
		return
	}
	c.JSON(status, res)
}

func bookingFiltersFromQuery(c *gin.Context) (queries.BookingFilters, error) {
	filters := queries.BookingFilters{Limit: queries.DefaultListLimit}

	if v := c.Query("facilityId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filters, errs.Wrap(err, "invalid facilityId")
		}
		filters.FacilityID = &id
	}
	if v := c.Query("userId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filters, errs.Wrap(err, "invalid userId")
		}
		filters.OwnerID = &id
	}
	if v := c.Query("status"); v != "" {
		status, err := booking.ParseStatus(v)
		if err != nil {
			return filters, errs.Wrap(err, "invalid status")
		}
		filters.Status = &status
	}
	if v := c.Query("dateFrom"); v != "" {
		d, err := time.Parse(dateLayout, v)
		if err != nil {
			return filters, errs.Wrap(err, "invalid dateFrom")
		}
		filters.DateFrom = &d
	}
	if v := c.Query("dateTo"); v != "" {
		d, err := time.Parse(dateLayout, v)
		if err != nil {
			return filters, errs.Wrap(err, "invalid dateTo")
		}
		filters.DateTo = &d
	}
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			filters.Limit = queries.ValidateLimit(iv)
		}
	}
	if after := c.Query("after"); after != "" {
		filters.Cursor = &queries.Cursor{After: after}
	}
	return filters, nil
}

// collectPage reads at most limit views and stops the stream early. next is set
// when a further row exists.
func collectPage(seq iter.Seq2[*queries.BookingView, error], limit int) ([]*queries.BookingView, *string, error) {
	page := make([]*queries.BookingView, 0, limit)
	for view, err := range seq {
		if err != nil {
			return nil, nil, err
		}
		if len(page) == limit {
			last := page[len(page)-1]
			next := queries.EncodeAfterCursor(last.StartTime, last.ID)
			return page, &next, nil
		}
		page = append(page, view)
	}
	return page, nil, nil
}
