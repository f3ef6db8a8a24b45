package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/jkmfoundation/site-api/internal/api/middleware"
	"github.com/jkmfoundation/site-api/internal/api/response"
	"github.com/jkmfoundation/site-api/internal/api/validation"
	"github.com/jkmfoundation/site-api/internal/contact"
	"github.com/jkmfoundation/site-api/internal/marathon"
	"github.com/jkmfoundation/site-api/internal/newsletter"
)

const (
	msgInvalidJSON   = "Request body must be valid JSON"
	msgGenericFailed = "Error processing your request"
)

// ContactSubmitter stores contact-form submissions.
type ContactSubmitter interface {
	Submit(ctx context.Context, s *contact.Submission) error
}

// NewsletterSubscriber adds addresses to the newsletter list.
type NewsletterSubscriber interface {
	Subscribe(ctx context.Context, email string) error
}

// MarathonSubmitter stores marathon inquiries.
type MarathonSubmitter interface {
	Submit(ctx context.Context, inq *marathon.Inquiry) error
}

type contactRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
}

type newsletterRequest struct {
	Email string `json:"email"`
}

type marathonRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	PhoneNumber     string `json:"phoneNumber"`
	Email           string `json:"email"`
	FundraisingGoal flag   `json:"fundraisingGoal"`
	MarathonReason  string `json:"marathonReason"`
	AdditionalNames string `json:"additionalNames"`
}

// FormHandler handles the plain-text form endpoints.
type FormHandler struct {
	contact    ContactSubmitter
	newsletter NewsletterSubscriber
	marathon   MarathonSubmitter
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(c ContactSubmitter, n NewsletterSubscriber, m MarathonSubmitter) *FormHandler {
	return &FormHandler{contact: c, newsletter: n, marathon: m}
}

// Contact handles POST /submit-form.
func (h *FormHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.Text(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if errs := validation.ValidateContactRequest(validation.ContactRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}); len(errs) > 0 {
		response.Text(w, http.StatusBadRequest, validation.Summary(errs))
		return
	}

	err := h.contact.Submit(r.Context(), &contact.Submission{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Subject:     req.Subject,
		Message:     req.Message,
	})
	if err != nil {
		middleware.Logger(r.Context()).Error("failed to process contact form", "error", err)
		response.Text(w, http.StatusInternalServerError, msgGenericFailed)
		return
	}

	response.Text(w, http.StatusOK, "Emails sent and form data processed successfully")
}

// Newsletter handles POST /newsletter-subscribe.
func (h *FormHandler) Newsletter(w http.ResponseWriter, r *http.Request) {
	var req newsletterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.Text(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if errs := validation.ValidateNewsletterEmail(req.Email); len(errs) > 0 {
		response.Text(w, http.StatusBadRequest, validation.Summary(errs))
		return
	}

	if err := h.newsletter.Subscribe(r.Context(), req.Email); err != nil {
		if errors.Is(err, newsletter.ErrAlreadySubscribed) {
			response.Text(w, http.StatusOK, "Email already registered for newsletter")
			return
		}
		middleware.Logger(r.Context()).Error("failed to subscribe to newsletter", "error", err)
		response.Text(w, http.StatusInternalServerError, msgGenericFailed)
		return
	}

	response.Text(w, http.StatusOK, "Subscription successful and email added to the newsletter")
}

// Marathon handles POST /submit-marathon-form.
func (h *FormHandler) Marathon(w http.ResponseWriter, r *http.Request) {
	var req marathonRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.Text(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if errs := validation.ValidateMarathonRequest(validation.MarathonRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}); len(errs) > 0 {
		response.Text(w, http.StatusBadRequest, validation.Summary(errs))
		return
	}

	err := h.marathon.Submit(r.Context(), &marathon.Inquiry{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		PhoneNumber:     req.PhoneNumber,
		Email:           req.Email,
		FundraisingGoal: bool(req.FundraisingGoal),
		MarathonReason:  req.MarathonReason,
		AdditionalNames: req.AdditionalNames,
	})
	if err != nil {
		middleware.Logger(r.Context()).Error("failed to process marathon inquiry", "error", err)
		response.Text(w, http.StatusInternalServerError, "Error processing your marathon registration")
		return
	}

	response.Text(w, http.StatusOK, "Marathon registration emails sent and data processed successfully")
}
