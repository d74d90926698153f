package response

import (
	"time"

	"pcapi/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID                  uuid.UUID        `json:"id"`
	UserID              uuid.UUID        `json:"userId"`
	StockID             uuid.UUID        `json:"stockId"`
	OfferID             uuid.UUID        `json:"offerId"`
	OfferName           string           `json:"offerName"`
	VenueID             uuid.UUID        `json:"venueId"`
	VenueName           string           `json:"venueName"`
	OffererID           uuid.UUID        `json:"offererId"`
	Quantity            int              `json:"quantity"`
	Amount              decimal.Decimal  `json:"amount"`
	TotalAmount         decimal.Decimal  `json:"totalAmount"`
	Status              string           `json:"status"`
	Token               string           `json:"token"`
	Individual          bool             `json:"individual"`
	DateCreated         time.Time        `json:"dateCreated"`
	DateUsed            *time.Time       `json:"dateUsed,omitempty"`
	CancellationDate    *time.Time       `json:"cancellationDate,omitempty"`
	CancellationReason  *string          `json:"cancellationReason,omitempty"`
	ReimbursementDate   *time.Time       `json:"reimbursementDate,omitempty"`
	ReimbursedAmount    *decimal.Decimal `json:"reimbursedAmount,omitempty"`
	ReimbursementRuleID *uuid.UUID       `json:"reimbursementRuleId,omitempty"`
}

type BookingListItemResponse struct {
	ID               uuid.UUID       `json:"id"`
	OfferID          uuid.UUID       `json:"offerId"`
	OfferName        string          `json:"offerName"`
	VenueName        string          `json:"venueName"`
	Quantity         int             `json:"quantity"`
	Amount           decimal.Decimal `json:"amount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	Status           string          `json:"status"`
	Token            string          `json:"token"`
	DateCreated      time.Time       `json:"dateCreated"`
	DateUsed         *time.Time      `json:"dateUsed,omitempty"`
	CancellationDate *time.Time      `json:"cancellationDate,omitempty"`
}

type BookingListResponse struct {
	Items      []BookingListItemResponse `json:"items"`
	NextCursor *string                   `json:"nextCursor,omitempty"`
}

type WalletResponse struct {
	UserID         uuid.UUID       `json:"userId"`
	DepositType    *string         `json:"depositType,omitempty"`
	Initial        decimal.Decimal `json:"initial"`
	Spent          decimal.Decimal `json:"spent"`
	Balance        decimal.Decimal `json:"balance"`
	ExpirationDate *time.Time      `json:"expirationDate,omitempty"`
	IsExpired      bool            `json:"isExpired"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) *BookingListResponse {
	res := &BookingListResponse{Items: make([]BookingListItemResponse, 0, len(items))}
	_ = copier.Copy(&res.Items, items)
	if next != nil {
		res.NextCursor = &next.After
	}
	return res
}

func FromWalletView(v *queries.WalletView) *WalletResponse {
	res := &WalletResponse{}
	_ = copier.Copy(res, v)
	return res
}
