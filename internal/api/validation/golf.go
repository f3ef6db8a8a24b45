package validation

import "math"

// MaxInitialPayment is the largest amount the golf_teams balance column can hold.
const MaxInitialPayment = 99999999.99

// GolfRegistrationRequest mirrors the fields needed for golf registration validation.
type GolfRegistrationRequest struct {
	LeaderFirstName   string
	LeaderLastName    string
	LeaderPhoneNumber string
	LeaderEmail       string
	TeamName          string
	InitialPayment    float64
}

// ValidateGolfRegistration validates a golf foursome registration. Email
// syntax and the payment option are not checked; unknown options are billed
// as a team.
func ValidateGolfRegistration(req GolfRegistrationRequest) []FieldError {
	var errs []FieldError

	errs = required(errs, "leaderFirstName", req.LeaderFirstName)
	errs = required(errs, "leaderLastName", req.LeaderLastName)
	errs = required(errs, "leaderPhoneNumber", req.LeaderPhoneNumber)
	errs = required(errs, "leaderEmail", req.LeaderEmail)
	errs = required(errs, "teamName", req.TeamName)

	switch {
	case req.InitialPayment < 0:
		errs = append(errs, FieldError{Field: "initialPayment", Message: "initialPayment must not be negative"})
	case req.InitialPayment > MaxInitialPayment:
		errs = append(errs, FieldError{Field: "initialPayment", Message: "initialPayment is too large"})
	case !wholeCents(req.InitialPayment):
		errs = append(errs, FieldError{Field: "initialPayment", Message: "initialPayment must have at most two decimal places"})
	}

	return errs
}

// wholeCents reports whether v has no more than two decimal places, allowing
// for binary floating-point error.
func wholeCents(v float64) bool {
	cents := v * 100
	return math.Abs(cents-math.Round(cents)) < 1e-3
}
