// Package services contains server-side business logic: the reading ledger,
// billing reports, reminder dispatch and account management. Every entry
// point that touches a reading takes an access.Scope resolved by the
// transport layer.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/logging"
	"github.com/dmitrijs2005/waterbill/internal/server/access"
	"github.com/dmitrijs2005/waterbill/internal/server/models"
	"github.com/dmitrijs2005/waterbill/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/waterbill/internal/server/tariff"
)

// DateRange restricts List. Nil bounds are open; set bounds are inclusive.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// CreateReading is the input of ReadingService.Create.
type CreateReading struct {
	ApartmentNumber string    `validate:"required,max=32"`
	Date            time.Time `validate:"required"`
	ColdWater       float64   `validate:"gte=0,lte=1000000"`
	HotWater        float64   `validate:"gte=0,lte=1000000"`
}

// UpdateReading is a partial update; nil fields are left untouched.
type UpdateReading struct {
	ColdWater *float64 `validate:"omitempty,gte=0,lte=1000000"`
	HotWater  *float64 `validate:"omitempty,gte=0,lte=1000000"`
	IsPaid    *bool
}

// ReadingService is the reading ledger.
type ReadingService struct {
	repos repomanager.RepositoryManager
	log   logging.Logger
}

func NewReadingService(repos repomanager.RepositoryManager, log logging.Logger) *ReadingService {
	return &ReadingService{repos: repos, log: log.With("module", "readings")}
}

// List returns readings newest first. Non-admins only see their own.
func (s *ReadingService) List(ctx context.Context, scope access.Scope, r DateRange) ([]models.Reading, error) {
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return nil, fmt.Errorf("%w: start date is after end date", common.ErrorValidation)
	}
	filter := models.ReadingFilter{UserID: scope.OwnerFilter(), From: r.From, To: r.To}
	out, err := s.repos.Readings().Find(ctx, filter, models.DateDesc)
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}
	return out, nil
}

// Get returns one reading. Absent readings yield common.ErrorNotFound; a
// reading owned by someone else yields common.ErrorForbidden.
func (s *ReadingService) Get(ctx context.Context, id string, scope access.Scope) (*models.Reading, error) {
	rd, err := s.repos.Readings().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(scope, rd.UserID); err != nil {
		s.log.Warn(ctx, "reading access denied", "reading_id", id, "user_id", scope.UserID)
		return nil, err
	}
	return rd, nil
}

// Create records a reading owned by the caller. The amount is derived from
// the tariff and the user's current name is snapshotted into the reading.
func (s *ReadingService) Create(ctx context.Context, scope access.Scope, in CreateReading) (*models.Reading, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	owner, err := s.repos.Users().GetByID(ctx, scope.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: account no longer exists", common.ErrorUnauthorized)
		}
		return nil, fmt.Errorf("load owner: %w", err)
	}
	name := owner.Name
	if name == "" {
		name = scope.Email
	}

	rd := &models.Reading{
		ApartmentNumber: in.ApartmentNumber,
		UserID:          scope.UserID,
		UserName:        name,
		Date:            in.Date.UTC(),
		ColdWater:       in.ColdWater,
		HotWater:        in.HotWater,
		Amount:          tariff.Amount(in.ColdWater, in.HotWater),
		IsPaid:          false,
	}
	created, err := s.repos.Readings().Create(ctx, rd)
	if err != nil {
		return nil, fmt.Errorf("create reading: %w", err)
	}

	s.log.Info(ctx, "reading created", "reading_id", created.ID, "user_id", scope.UserID,
		"amount", tariff.Format(created.Amount))
	return created, nil
}

// Update applies the supplied fields. When a volume changes the amount is
// recomputed, taking the other volume from the stored reading. An empty
// update returns the stored reading unchanged.
func (s *ReadingService) Update(ctx context.Context, id string, scope access.Scope, in UpdateReading) (*models.Reading, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, id, scope)
	if err != nil {
		return nil, err
	}

	patch := models.ReadingPatch{ColdWater: in.ColdWater, HotWater: in.HotWater, IsPaid: in.IsPaid}
	if patch.IsEmpty() {
		return current, nil
	}
	if in.ColdWater != nil || in.HotWater != nil {
		cold, hot := current.ColdWater, current.HotWater
		if in.ColdWater != nil {
			cold = *in.ColdWater
		}
		if in.HotWater != nil {
			hot = *in.HotWater
		}
		amount := tariff.Amount(cold, hot)
		patch.Amount = &amount
	}

	updated, err := s.repos.Readings().Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update reading: %w", err)
	}
	return updated, nil
}

// Delete removes a reading after the same checks as Get.
func (s *ReadingService) Delete(ctx context.Context, id string, scope access.Scope) error {
	if _, err := s.Get(ctx, id, scope); err != nil {
		return err
	}
	if err := s.repos.Readings().Delete(ctx, id); err != nil {
		return fmt.Errorf("delete reading: %w", err)
	}
	s.log.Info(ctx, "reading deleted", "reading_id", id, "user_id", scope.UserID)
	return nil
}
