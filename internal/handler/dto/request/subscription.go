package request

import (
	"time"

	"pcapi/internal/domain/subscription"
	"pcapi/internal/domain/user"
)

const birthDateLayout = "2006-01-02"

// SubscribeRequest is posted by the identity check callback.
type SubscribeRequest struct {
	Email                    string `json:"email" binding:"required,email"`
	FirstName                string `json:"firstName" binding:"required"`
	LastName                 string `json:"lastName" binding:"required"`
	Civility                 string `json:"civility"`
	DateOfBirth              string `json:"dateOfBirth" binding:"required,datetime=2006-01-02"`
	PostalCode               string `json:"postalCode" binding:"required,min=5,max=5"`
	Address                  string `json:"address"`
	City                     string `json:"city"`
	PhoneNumber              string `json:"phoneNumber"`
	Activity                 string `json:"activity"`
	IDPieceNumber            string `json:"idPieceNumber"`
	Source                   string `json:"source" binding:"required,oneof=dms educonnect ubble"`
	SourceID                 string `json:"sourceId"`
	Eligibility              string `json:"eligibility" binding:"required,oneof=AGE18 UNDERAGE"`
	IgnoreIDPieceNumberField bool   `json:"ignoreIdPieceNumberField"`
}

func (r SubscribeRequest) ToDomain() (subscription.PreSubscription, user.Eligibility, error) {
	dob, err := time.Parse(birthDateLayout, r.DateOfBirth)
	if err != nil {
		return subscription.PreSubscription{}, "", err
	}
	eligibility, err := user.NewEligibility(r.Eligibility)
	if err != nil {
		return subscription.PreSubscription{}, "", err
	}

	return subscription.PreSubscription{
		Email:         r.Email,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Civility:      r.Civility,
		DateOfBirth:   dob,
		PostalCode:    r.PostalCode,
		Address:       r.Address,
		City:          r.City,
		PhoneNumber:   r.PhoneNumber,
		Activity:      r.Activity,
		IDPieceNumber: r.IDPieceNumber,
		Source:        subscription.Source(r.Source),
		SourceID:      r.SourceID,
	}, eligibility, nil
}
