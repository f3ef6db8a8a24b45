package notify

// Payment link kinds understood by PaymentLinks.Resolve.
const (
	KindTeam       = "team"
	KindIndividual = "individual"
)

// PaymentLinks holds the static checkout URLs for golf registrations.
type PaymentLinks struct {
	Team       string
	Individual string
}

// Resolve maps a registration kind to its checkout URL. Unknown kinds have no link.
func (l PaymentLinks) Resolve(kind string) string {
	switch kind {
	case KindTeam:
		return l.Team
	case KindIndividual:
		return l.Individual
	default:
		return ""
	}
}
