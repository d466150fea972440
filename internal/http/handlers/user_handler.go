// User HTTP handlers.
//
// This file exposes REST endpoints for account resources:
//   - POST /users   (sign up)
//   - POST /signin  (resolve an email to a user id)
//
// It also hosts the service contracts and the Handlers wiring shared by the
// trip and recommendation endpoints. Handlers are transport-thin: they
// validate input, call application services, and translate results into
// HTTP responses.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nomadland/go-trips-backend/internal/domain"
	"github.com/nomadland/go-trips-backend/internal/services"
)

// UserHeader is the request header carrying the caller's user id. It is the
// only authentication the API performs.
const UserHeader = "nomadland-user"

//
// Service contracts (context-aware)
//

// UserService defines account operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type UserService interface {
	// Create registers a new user; fields are stored as provided.
	Create(ctx context.Context, firstName, lastName, email string) (*domain.User, error)
	// SignIn resolves an email to the owning user's id.
	SignIn(ctx context.Context, email string) (string, error)
}

// TripService defines trip lifecycle and lookup operations.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type TripService interface {
	// Create validates and persists a trip owned by userID.
	Create(ctx context.Context, userID string, in services.CreateTripInput) (*domain.Trip, error)
	// List returns the display projections of userID's trips.
	List(ctx context.Context, userID string) ([]domain.TripView, error)
	// Detail returns a trip with its overlapping members and housing.
	Detail(ctx context.Context, tripID string) (*services.TripDetail, error)
}

// RecommendationService defines housing recommendation submission.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type RecommendationService interface {
	// Create persists a housing recommendation for a location.
	Create(ctx context.Context, in services.CreateRecommendationInput) (*domain.Recommendation, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for users, trips, and recommendations.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	userSvc UserService
	tripSvc TripService
	recSvc  RecommendationService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(userSvc UserService, tripSvc TripService, recSvc RecommendationService) *Handlers {
	return &Handlers{userSvc: userSvc, tripSvc: tripSvc, recSvc: recSvc}
}

// userID extracts the caller's user id from the nomadland-user header.
// It never touches c.Request if it's nil.
func userID(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return ""
	}
	return strings.TrimSpace(c.GetHeader(UserHeader))
}

//
// DTOs
//

// CreateUserRequest is the JSON payload for signing up.
type CreateUserRequest struct {
	// FirstName is the given name; may be empty.
	FirstName string `json:"first_name" example:"Ada"`
	// LastName is the family name; may be empty.
	LastName string `json:"last_name" example:"Lovelace"`
	// Email is the sign-in key; stored exactly as provided.
	Email string `json:"email" example:"ada@example.com"`
}

// SignInRequest is the JSON payload for signing in.
type SignInRequest struct {
	// Email is normalized (lowercased, trimmed) before the lookup.
	Email string `json:"email" binding:"required" example:"ada@example.com"`
}

// UserEnvelope wraps a created user.
type UserEnvelope struct {
	User *domain.User `json:"user"`
}

// SignInResult carries the id resolved by sign-in.
type SignInResult struct {
	UserID string `json:"user_id" example:"US141add05-4415-4938-b5a1-17e0d3171aff"`
}

// SignInResponse wraps the sign-in result.
type SignInResponse struct {
	Result SignInResult `json:"result"`
}

//
// Handlers
//

// CreateUser godoc
// @ID          createUser
// @Summary     Sign up
// @Description Registers a new user and returns the created resource.
// @Tags        Users
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateUserRequest  true  "Sign-up payload"
//
// @Success     201  {object}  handlers.UserEnvelope
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     409  {object}  handlers.ErrorResponse  "Email already registered"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users [post]
func (h *Handlers) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	u, err := h.userSvc.Create(c.Request.Context(), req.FirstName, req.LastName, req.Email)
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, http.StatusCreated, UserEnvelope{User: u})
}

// SignIn godoc
// @ID          signIn
// @Summary     Sign in
// @Description Resolves an email address to the owning user's id.
// @Tags        Users
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SignInRequest  true  "Sign-in payload"
//
// @Success     200  {object}  handlers.SignInResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /signin [post]
func (h *Handlers) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "email required")
		return
	}

	id, err := h.userSvc.SignIn(c.Request.Context(), req.Email)
	if err != nil {
		failFromErr(c, err)
		return
	}
	ok(c, http.StatusOK, SignInResponse{Result: SignInResult{UserID: id}})
}
