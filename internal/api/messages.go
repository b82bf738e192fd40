// Package api holds the JSON bodies of the REST API.
package api

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/common"
)

type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	ApartmentNumber string    `json:"apartmentNumber,omitempty"`
	Role            string    `json:"role"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Reading struct {
	ID              string    `json:"id"`
	ApartmentNumber string    `json:"apartmentNumber"`
	UserID          string    `json:"userId"`
	UserName        string    `json:"userName"`
	Date            time.Time `json:"date"`
	ColdWater       float64   `json:"coldWater"`
	HotWater        float64   `json:"hotWater"`
	Amount          float64   `json:"amount"`
	IsPaid          bool      `json:"isPaid"`
	CreatedAt       time.Time `json:"createdAt"`
}

type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	Name            string `json:"name"`
	ApartmentNumber string `json:"apartmentNumber"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	User    User   `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateProfileRequest struct {
	Name            *string `json:"name,omitempty"`
	ApartmentNumber *string `json:"apartmentNumber,omitempty"`
	Email           *string `json:"email,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ListReadingsRequest bounds are optional dates accepted by ParseDate.
type ListReadingsRequest struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

type CreateReadingRequest struct {
	ApartmentNumber string  `json:"apartmentNumber"`
	Date            string  `json:"date"`
	ColdWater       float64 `json:"coldWater"`
	HotWater        float64 `json:"hotWater"`
}

type UpdateReadingRequest struct {
	ID        string   `json:"id,omitempty"`
	ColdWater *float64 `json:"coldWater,omitempty"`
	HotWater  *float64 `json:"hotWater,omitempty"`
	IsPaid    *bool    `json:"isPaid,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ReadingResponse answers pay/unpay.
type ReadingResponse struct {
	Message string  `json:"message"`
	Reading Reading `json:"reading"`
}

type UnpaidBillsResponse struct {
	Count       int       `json:"count"`
	TotalAmount string    `json:"totalAmount"`
	Bills       []Reading `json:"bills"`
}

type AnnualSummary struct {
	TotalReadings  int    `json:"totalReadings"`
	TotalColdWater string `json:"totalColdWater"`
	TotalHotWater  string `json:"totalHotWater"`
	TotalAmount    string `json:"totalAmount"`
	PaidAmount     string `json:"paidAmount"`
	UnpaidAmount   string `json:"unpaidAmount"`
}

type AnnualReport struct {
	Year     int           `json:"year"`
	Summary  AnnualSummary `json:"summary"`
	Readings []Reading     `json:"readings"`
}

type ExportResponse struct {
	Year int    `json:"year"`
	Key  string `json:"key"`
	URL  string `json:"url"`
}

type ReminderResponse struct {
	EmailSent bool   `json:"emailSent"`
	Message   string `json:"message"`
	Recipient string `json:"recipient"`
}

type ReminderDetail struct {
	ReadingID       string `json:"readingId"`
	ApartmentNumber string `json:"apartmentNumber"`
	Email           string `json:"email"`
	Status          string `json:"status"`
	Reason          string `json:"reason,omitempty"`
}

type BulkReminderResponse struct {
	Message          string           `json:"message"`
	TotalUnpaidBills int              `json:"totalUnpaidBills"`
	EmailsSent       int              `json:"emailsSent"`
	EmailsFailed     int              `json:"emailsFailed"`
	Details          []ReminderDetail `json:"details"`
}

type PingResponse struct {
	Status string `json:"status"`
}

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp
// and returns it in UTC. An empty string yields nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{common.DateLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: invalid date %q", common.ErrorValidation, s)
}
