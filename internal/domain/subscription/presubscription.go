package subscription

import (
	"strings"
	"time"
)

type Source string

const (
	SourceDMS        Source = "dms"
	SourceEduconnect Source = "educonnect"
	SourceUbble      Source = "ubble"
)

// PreSubscription is the identity an external check vouched for. It is never
// stored as such: a user and a deposit are created from it.
type PreSubscription struct {
	Email         string
	FirstName     string
	LastName      string
	Civility      string
	DateOfBirth   time.Time
	PostalCode    string
	Address       string
	City          string
	PhoneNumber   string
	Activity      string
	IDPieceNumber string
	Source        Source
	SourceID      string
}

func (p PreSubscription) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(p.Email))
}

func (p PreSubscription) DepartmentCode() string {
	return DepartmentCode(p.PostalCode)
}
