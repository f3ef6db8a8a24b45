package golf

import (
	"time"

	"github.com/google/uuid"
)

// TeamRegistrationFee is the flat fee owed by every golf foursome.
const TeamRegistrationFee = 400.0

// Payment options. Anything other than PaymentOptionIndividual is billed as a team.
const (
	PaymentOptionTeam       = "team"
	PaymentOptionIndividual = "individual"
)

// Person is a team member as submitted on the registration form.
type Person struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
}

// Teammate is the summary of a teammate embedded in the team record.
type Teammate struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	IsPaid      bool   `json:"isPaid"`
}

// Team represents a row in the golf_teams table.
type Team struct {
	ID                uuid.UUID
	LeaderFirstName   string
	LeaderLastName    string
	LeaderPhoneNumber string
	LeaderEmail       string
	TeamName          string
	PaymentOption     string
	BalanceRemaining  float64
	TeamIsPaid        bool
	Teammates         []Teammate
	CreatedAt         time.Time
}

// Participant represents a row in the golf_participants table. TeamID and
// TeamName are copied from the owning team and are informational only.
type Participant struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
	TeamID      uuid.UUID
	TeamName    string
	IsPaid      bool
	IsLeader    bool
	CreatedAt   time.Time
}

// Registration is the input to Service.Register.
type Registration struct {
	LeaderFirstName   string
	LeaderLastName    string
	LeaderPhoneNumber string
	LeaderEmail       string
	TeamName          string
	Teammates         []Person
	PaymentOption     string
	InitialPayment    float64
}

// Result summarizes a completed registration.
type Result struct {
	TeamID           uuid.UUID
	BalanceRemaining float64
}

// Balance returns the amount still owed after initialPayment and whether the
// team is paid in full. Overpayment yields a negative balance.
func Balance(initialPayment float64) (remaining float64, paidInFull bool) {
	return TeamRegistrationFee - initialPayment, initialPayment >= TeamRegistrationFee
}

// Roster is a stored team with its participant rows, leader first.
type Roster struct {
	Team         *Team
	Participants []Participant
}

// Outstanding returns the participants whose own payment is not recorded.
func (r *Roster) Outstanding() []Participant {
	var out []Participant
	for _, p := range r.Participants {
		if !p.IsPaid {
			out = append(out, p)
		}
	}
	return out
}
