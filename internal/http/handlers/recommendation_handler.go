// Recommendation HTTP handlers.
//
// This file exposes the housing recommendation endpoint:
//   - POST /reccomendations (create)
//
// The route path and the "reccomendation" envelope key carry the recorded
// spelling of the wire contract.
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

// CreateRecommendationRequest is the JSON payload for submitting housing.
// Location must be the canonical lowercase "city,country" pair trips use.
type CreateRecommendationRequest struct {
	Location string  `json:"location" example:"paris,france"`
	URL      string  `json:"url" example:"https://stay.example/paris-loft"`
	Capacity int     `json:"capacity" example:"4"`
	Bedrooms int     `json:"bedrooms" example:"2"`
	Price    float64 `json:"price" example:"120.5"`
	Speed    int     `json:"speed" example:"100"`
}

// RecommendationResult carries a created recommendation.
type RecommendationResult struct {
	Reccomendation *domain.Recommendation `json:"reccomendation"`
}

// RecommendationResponse wraps a created recommendation.
type RecommendationResponse struct {
	Success bool                 `json:"success"`
	Result  RecommendationResult `json:"result"`
}

// CreateRecommendation godoc
// @ID          createRecommendation
// @Summary     Submit housing
// @Description Registers a housing recommendation for a location; trips at that location surface it in their detail view.
// @Tags        Recommendations
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateRecommendationRequest  true  "Recommendation payload"
//
// @Success     201  {object}  handlers.RecommendationResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /reccomendations [post]
func (h *Handlers) CreateRecommendation(c *gin.Context) {
	var req CreateRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	rec, err := h.recSvc.Create(c.Request.Context(), services.CreateRecommendationInput{
		Location: req.Location,
		URL:      req.URL,
		Capacity: req.Capacity,
		Bedrooms: req.Bedrooms,
		Price:    req.Price,
		Speed:    req.Speed,
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, RecommendationResponse{
		Success: true,
		Result:  RecommendationResult{Reccomendation: rec},
	})
}
