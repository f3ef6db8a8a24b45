package validation

// ContactRequest mirrors the fields needed for contact-form validation.
type ContactRequest struct {
	FirstName string
	LastName  string
	Email     string
}

// ValidateContactRequest validates a contact-form submission.
func ValidateContactRequest(req ContactRequest) []FieldError {
	var errs []FieldError
	errs = required(errs, "firstName", req.FirstName)
	errs = required(errs, "lastName", req.LastName)
	errs = required(errs, "email", req.Email)
	return errs
}

// ValidateNewsletterEmail validates a newsletter signup.
func ValidateNewsletterEmail(email string) []FieldError {
	return required(nil, "email", email)
}

// MarathonRequest mirrors the fields needed for marathon inquiry validation.
type MarathonRequest struct {
	FirstName string
	LastName  string
	Email     string
}

// ValidateMarathonRequest validates a marathon inquiry.
func ValidateMarathonRequest(req MarathonRequest) []FieldError {
	var errs []FieldError
	errs = required(errs, "firstName", req.FirstName)
	errs = required(errs, "lastName", req.LastName)
	errs = required(errs, "email", req.Email)
	return errs
}
