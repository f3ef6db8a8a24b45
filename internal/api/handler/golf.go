package handler

import (
	"context"
	"net/http"

	"github.com/jkmfoundation/site-api/internal/api/middleware"
	"github.com/jkmfoundation/site-api/internal/api/response"
	"github.com/jkmfoundation/site-api/internal/api/validation"
	"github.com/jkmfoundation/site-api/internal/golf"
)

// GolfRegistrar registers golf teams.
type GolfRegistrar interface {
	Register(ctx context.Context, reg golf.Registration) (*golf.Result, error)
}

type golfPersonRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

type golfRegistrationRequest struct {
	LeaderFirstName   string              `json:"leaderFirstName"`
	LeaderLastName    string              `json:"leaderLastName"`
	LeaderPhoneNumber string              `json:"leaderPhoneNumber"`
	LeaderEmail       string              `json:"leaderEmail"`
	TeamName          string              `json:"teamName"`
	Teammates         []golfPersonRequest `json:"teammates"`
	PaymentOption     string              `json:"paymentOption"`
	InitialPayment    amount              `json:"initialPayment"`
}

type golfRegistrationResponse struct {
	Message          string  `json:"message"`
	TeamID           string  `json:"teamId"`
	BalanceRemaining float64 `json:"balanceRemaining"`
}

// GolfHandler handles golf foursome registration.
type GolfHandler struct {
	registrar GolfRegistrar
}

// NewGolfHandler creates a new GolfHandler.
func NewGolfHandler(registrar GolfRegistrar) *GolfHandler {
	return &GolfHandler{registrar: registrar}
}

// Register handles POST /submit-golf-4some-form.
func (h *GolfHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req golfRegistrationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.Err(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	fieldErrors := validation.ValidateGolfRegistration(validation.GolfRegistrationRequest{
		LeaderFirstName:   req.LeaderFirstName,
		LeaderLastName:    req.LeaderLastName,
		LeaderPhoneNumber: req.LeaderPhoneNumber,
		LeaderEmail:       req.LeaderEmail,
		TeamName:          req.TeamName,
		InitialPayment:    float64(req.InitialPayment),
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "Input validation failed", fieldErrors)
		return
	}

	reg := golf.Registration{
		LeaderFirstName:   req.LeaderFirstName,
		LeaderLastName:    req.LeaderLastName,
		LeaderPhoneNumber: req.LeaderPhoneNumber,
		LeaderEmail:       req.LeaderEmail,
		TeamName:          req.TeamName,
		PaymentOption:     req.PaymentOption,
		InitialPayment:    float64(req.InitialPayment),
	}
	for _, m := range req.Teammates {
		reg.Teammates = append(reg.Teammates, golf.Person{
			FirstName:   m.FirstName,
			LastName:    m.LastName,
			PhoneNumber: m.PhoneNumber,
			Email:       m.Email,
		})
	}

	result, err := h.registrar.Register(r.Context(), reg)
	if err != nil {
		middleware.Logger(r.Context()).Error("failed to register golf team", "error", err, "teamName", req.TeamName)
		response.Err(w, http.StatusInternalServerError, msgGenericFailed)
		return
	}

	response.JSON(w, http.StatusOK, golfRegistrationResponse{
		Message:          "Team registered successfully",
		TeamID:           result.TeamID.String(),
		BalanceRemaining: result.BalanceRemaining,
	})
}
