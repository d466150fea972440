// Trip HTTP handlers.
//
// This file exposes REST endpoints for trip resources:
//   - POST /trips           (create; requires the nomadland-user header)
//   - GET  /trips           (list own trips; requires the nomadland-user header)
//   - GET  /trips/{trip_id} (detail with overlapping members and housing)
//
// The response envelopes, including the "user" key on creation and the
// "reccomended" spelling on the detail view, are part of the recorded wire
// contract and must not be corrected.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nomadland/go-trips-backend/internal/domain"
	"github.com/nomadland/go-trips-backend/internal/services"
)

//
// DTOs
//

// CreateTripRequest is the JSON payload for creating a trip. Dates are
// accepted as "2006-01-02" or RFC 3339 and truncated to their UTC day.
type CreateTripRequest struct {
	Start   string `json:"start" binding:"required" example:"2026-01-10"`
	End     string `json:"end" binding:"required" example:"2026-01-14"`
	City    string `json:"city" binding:"required" example:"Paris"`
	Country string `json:"country" binding:"required" example:"France"`
}

// TripEnvelope wraps a created trip. The envelope key is "user", a recorded
// quirk of the wire contract.
type TripEnvelope struct {
	User *domain.Trip `json:"user"`
}

// TripListResult carries the caller's trip listings.
type TripListResult struct {
	Trips []domain.TripView `json:"trips"`
}

// ListTripsResponse wraps a trip listing.
type ListTripsResponse struct {
	Result TripListResult `json:"result"`
}

// TripDetailResult is the detail view: the trip, the members whose trips
// overlap it in place and time, and the housing recommended for its
// location.
type TripDetailResult struct {
	Trip        domain.Trip             `json:"trip"`
	Members     []domain.Member         `json:"members"`
	Reccomended []domain.Recommendation `json:"reccomended"`
}

// TripDetailResponse wraps a trip detail view.
type TripDetailResponse struct {
	Result TripDetailResult `json:"result"`
}

//
// Handlers
//

// CreateTrip godoc
// @ID          createTrip
// @Summary     Create a trip
// @Description Creates a trip for the calling user. Start and end must be today or later, with start not after end.
// @Tags        Trips
// @Accept      json
// @Produce     json
//
// @Param       nomadland-user  header  string  true  "Caller user ID"  example(US141add05)
// @Param       body            body    handlers.CreateTripRequest  true  "Create trip payload"
//
// @Success     201  {object}  handlers.TripEnvelope
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /trips [post]
func (h *Handlers) CreateTrip(c *gin.Context) {
	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	trip, err := h.tripSvc.Create(c.Request.Context(), userID(c), services.CreateTripInput{
		Start:   req.Start,
		End:     req.End,
		City:    req.City,
		Country: req.Country,
	})
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, http.StatusCreated, TripEnvelope{User: trip})
}

// ListTrips godoc
// @ID          listTrips
// @Summary     List own trips
// @Description Returns every trip owned by the calling user, dates rendered as human-readable days.
// @Tags        Trips
// @Produce     json
//
// @Param       nomadland-user  header  string  true  "Caller user ID"  example(US141add05)
//
// @Success     200  {object}  handlers.ListTripsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing user header"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /trips [get]
func (h *Handlers) ListTrips(c *gin.Context) {
	uid := userID(c)
	if uid == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "user required")
		return
	}

	trips, err := h.tripSvc.List(c.Request.Context(), uid)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListTripsResponse{Result: TripListResult{Trips: trips}})
}

// GetTrip godoc
// @ID          getTrip
// @Summary     Trip detail
// @Description Returns a trip with the users whose trips overlap it in both location and time, and the housing recommended for its location.
// @Tags        Trips
// @Produce     json
//
// @Param       trip_id  path  string  true  "Trip ID"  example(TR141add05)
//
// @Success     200  {object}  handlers.TripDetailResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Trip not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /trips/{trip_id} [get]
func (h *Handlers) GetTrip(c *gin.Context) {
	detail, err := h.tripSvc.Detail(c.Request.Context(), c.Param("trip_id"))
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, http.StatusOK, TripDetailResponse{Result: TripDetailResult{
		Trip:        detail.Trip,
		Members:     detail.Members,
		Reccomended: detail.Recommended,
	}})
}
