package api

import (
	"net/http"
	"strconv"
	"time"

	"facility-booking/internal/domain/user"
	reqdto "facility-booking/internal/handler/dto/request"
	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/handler/httperr"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FacilityHandler struct {
	cmds commands.FacilityCommands
	q    queries.FacilityQueries
}

func NewFacilityHandler(cmds commands.FacilityCommands, q queries.FacilityQueries) *FacilityHandler {
	return &FacilityHandler{cmds: cmds, q: q}
}

// @Summary List facilities
// @Description Inactive facilities are listed for staff only
// @Tags facilities
// @Produce json
// @Param name query string false "Name contains"
// @Param location query string false "Location contains"
// @Param minCapacity query int false "Minimum capacity"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.FacilityListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/facilities [get]
func (h *FacilityHandler) List(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var filters queries.FacilityFilters
	if v := c.Query("name"); v != "" {
		filters.NameContains = &v
	}
	if v := c.Query("location"); v != "" {
		filters.LocationContains = &v
	}
	if v := c.Query("minCapacity"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid minCapacity", nil)
			return
		}
		filters.MinCapacity = &iv
	}
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			filters.Limit = iv
		}
	}

	views, err := h.q.List(c.Request.Context(), actor, filters)
	if err != nil {
		httperr.Abort(c, err, "Failed to list facilities")
		return
	}
	res, err := resdto.FromFacilityViews(views)
	if err != nil {
		httperr.Abort(c, err, "Failed to render facilities")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get facility
// @Description Inactive facilities are visible to staff only
// @Tags facilities
// @Produce json
// @Param id path string true "Facility ID"
// @Success 200 {object} resdto.FacilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/facilities/{id} [get]
func (h *FacilityHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actor, _ := middleware.GetActor(c)
	h.respondWithFacility(c, http.StatusOK, actor, id)
}

// @Summary Facility availability
// @Description Whether [start, end) overlaps no confirmed booking. Pending bookings do not count.
// @Tags facilities
// @Produce json
// @Param id path string true "Facility ID"
// @Param start query string true "Start, RFC 3339"
// @Param end query string true "End, RFC 3339"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/facilities/{id}/availability [get]
func (h *FacilityHandler) Availability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start", nil)
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid end", nil)
		return
	}

	view, err := h.q.Availability(c.Request.Context(), id, start, end)
	if err != nil {
		httperr.Abort(c, err, "Availability check failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Create facility
// @Description Staff only
// @Tags facilities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFacilityRequest true "Create facility request"
// @Success 201 {object} resdto.FacilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/facilities [post]
func (h *FacilityHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err, "Invalid request")
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), actor, cmd)
	if err != nil {
		httperr.Abort(c, err, "Create facility failed")
		return
	}
	c.Header("Location", "/api/facilities/"+result.FacilityID.String())
	h.respondWithFacility(c, http.StatusCreated, actor, result.FacilityID)
}

// @Summary Update facility
// @Description Staff only. Existing bookings are not re-checked against a reduced capacity.
// @Tags facilities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Facility ID"
// @Param request body reqdto.UpdateFacilityRequest true "Update facility request"
// @Success 200 {object} resdto.FacilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/facilities/{id} [put]
func (h *FacilityHandler) Update(c *gin.Context) {
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
	var req reqdto.UpdateFacilityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err, "Invalid request")
		return
	}
	if err = h.cmds.Update(c.Request.Context(), actor, id, cmd); err != nil {
		httperr.Abort(c, err, "Update facility failed")
		return
	}
	h.respondWithFacility(c, http.StatusOK, actor, id)
}

// @Summary Delete facility
// @Description Staff only. The facility's bookings are deleted with it.
// @Tags facilities
// @Security BearerAuth
// @Param id path string true "Facility ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/facilities/{id} [delete]
func (h *FacilityHandler) Delete(c *gin.Context) {
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
		httperr.Abort(c, err, "Delete facility failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FacilityHandler) respondWithFacility(c *gin.Context, status int, actor user.Actor, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load facility")
		return
	}
	res, err := resdto.FromFacilityView(view)
	if err != nil {
		httperr.Abort(c, err, "Failed to render facility")
		return
	}
	c.JSON(status, res)
}
