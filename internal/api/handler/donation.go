package handler

import (
	"context"
	"net/http"

	"github.com/jkmfoundation/site-api/internal/api/middleware"
	"github.com/jkmfoundation/site-api/internal/api/response"
)

// DonationTotaler reports the running donation total in minor currency units.
type DonationTotaler interface {
	Total(ctx context.Context) (int64, error)
}

type donationTotalResponse struct {
	TotalDonations int64 `json:"totalDonations"`
}

// DonationHandler handles the donation progress endpoint.
type DonationHandler struct {
	totaler DonationTotaler
}

// NewDonationHandler creates a new DonationHandler.
func NewDonationHandler(totaler DonationTotaler) *DonationHandler {
	return &DonationHandler{totaler: totaler}
}

// Total handles GET /api/donations/total.
func (h *DonationHandler) Total(w http.ResponseWriter, r *http.Request) {
	total, err := h.totaler.Total(r.Context())
	if err != nil {
		middleware.Logger(r.Context()).Error("failed to compute donation total", "error", err)
		response.Err(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.Logger(r.Context()).Debug("donation total computed", "totalDonations", total)
	response.JSON(w, http.StatusOK, donationTotalResponse{TotalDonations: total})
}
