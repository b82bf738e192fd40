package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reading is one metering event: cold and hot water volumes for a billing
// period plus the amount derived from them.
type Reading struct {
	ID              string
	ApartmentNumber string
	UserID          string
	UserName        string
	Date            time.Time
	ColdWater       float64
	HotWater        float64
	Amount          decimal.Decimal
	IsPaid          bool
	CreatedAt       time.Time
}

// ReadingPatch is a partial update. Amount travels with the patch so that
// repositories persist the value the service computed.
type ReadingPatch struct {
	ColdWater *float64
	HotWater  *float64
	Amount    *decimal.Decimal
	IsPaid    *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p ReadingPatch) IsEmpty() bool {
	return p.ColdWater == nil && p.HotWater == nil && p.Amount == nil && p.IsPaid == nil
}

// ReadingFilter selects readings. Zero values mean "no constraint".
type ReadingFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
	IsPaid *bool
}

// SortOrder is the ordering applied to the reading date.
type SortOrder int

const (
	DateDesc SortOrder = iota
	DateAsc
)
