package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateSpendRecordDTO carries the caller-supplied fields of a new spend record.
// A nil Date means "now".
type CreateSpendRecordDTO struct {
	Amount      decimal.Decimal
	Description *string
	Category    *string
	Date        *time.Time
}

// SpendRecordDTO is the external representation of a stored spend record.
type SpendRecordDTO struct {
	ID          uuid.UUID
	Date        time.Time
	Amount      decimal.Decimal
	Description *string
	Category    *string
}

// CreateInfluencerDTO carries the caller-supplied fields of a new influencer.
type CreateInfluencerDTO struct {
	Name     string
	Handle   *string
	Platform *string
	Niche    *string
}

// InfluencerDTO is the external representation of a stored influencer.
type InfluencerDTO struct {
	ID       uuid.UUID
	Name     string
	Handle   *string
	Platform *string
	Niche    *string
}
