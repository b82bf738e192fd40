package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/logging"
	"github.com/dmitrijs2005/waterbill/internal/server/mailer"
	"github.com/dmitrijs2005/waterbill/internal/server/models"
	"github.com/dmitrijs2005/waterbill/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/waterbill/internal/server/tariff"
	"golang.org/x/sync/errgroup"
)

// DefaultReminderConcurrency bounds SendAll when no limit is configured.
const DefaultReminderConcurrency = 4

// Reasons recorded on failed outcomes.
const (
	ReasonUserNotFound   = "user not found"
	ReasonTransportError = "transport error"
	ReasonRenderError    = "render error"
)

// OutcomeStatus is the result of one reminder in a batch.
type OutcomeStatus string

const (
	StatusSent   OutcomeStatus = "sent"
	StatusFailed OutcomeStatus = "failed"
)

// Outcome describes what happened to one unpaid reading during SendAll.
type Outcome struct {
	ReadingID       string
	ApartmentNumber string
	Email           string
	Status          OutcomeStatus
	Reason          string
}

// BatchResult is the itemized outcome of SendAll plus counters derived from
// the items. Build it with NewBatchResult.
type BatchResult struct {
	Total  int
	Sent   int
	Failed int
	Items  []Outcome
}

// NewBatchResult derives the counters from items, keeping their order.
func NewBatchResult(items []Outcome) BatchResult {
	r := BatchResult{Total: len(items), Items: items}
	if r.Items == nil {
		r.Items = []Outcome{}
	}
	for _, it := range items {
		if it.Status == StatusSent {
			r.Sent++
		} else {
			r.Failed++
		}
	}
	return r
}

// Message is the human-readable batch summary.
func (r BatchResult) Message() string {
	if r.Total == 0 {
		return "No unpaid bills found"
	}
	return fmt.Sprintf("Sent %d emails successfully, %d failed", r.Sent, r.Failed)
}

// Reminder is the result of SendOne.
type Reminder struct {
	Sent      bool
	Recipient string
	Message   string
}

// ReminderService sends payment reminders for unpaid readings.
type ReminderService struct {
	repos       repomanager.RepositoryManager
	transport   mailer.Transport
	log         logging.Logger
	concurrency int
}

func NewReminderService(repos repomanager.RepositoryManager, transport mailer.Transport, log logging.Logger, concurrency int) *ReminderService {
	if concurrency <= 0 {
		concurrency = DefaultReminderConcurrency
	}
	return &ReminderService{
		repos:       repos,
		transport:   transport,
		log:         log.With("module", "reminders"),
		concurrency: concurrency,
	}
}

// SendOne mails a reminder for one bill. A paid bill yields
// common.ErrorConflict and nothing is sent. Delivery failures are reported
// through Reminder.Sent, not as an error.
func (s *ReminderService) SendOne(ctx context.Context, billID string) (*Reminder, error) {
	rd, err := s.repos.Readings().GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if rd.IsPaid {
		return nil, fmt.Errorf("%w: bill is already paid", common.ErrorConflict)
	}

	user, err := s.repos.Users().GetByID(ctx, rd.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: bill owner", common.ErrorNotFound)
		}
		return nil, err
	}

	subject, body, err := renderReminder(rd, user)
	if err != nil {
		return nil, err
	}

	if err := s.transport.Send(ctx, user.Email, subject, body); err != nil {
		s.log.Error(ctx, "reminder delivery failed", "reading_id", rd.ID, "to", user.Email, "error", err)
		return &Reminder{Sent: false, Recipient: user.Email, Message: "Failed to send email"}, nil
	}

	s.log.Info(ctx, "reminder sent", "reading_id", rd.ID, "to", user.Email)
	return &Reminder{Sent: true, Recipient: user.Email, Message: "Reminder email sent successfully"}, nil
}

// SendAll mails a reminder for every unpaid reading. Failures are recorded
// per item and never abort the batch; only loading the unpaid list can fail.
// Items keep the order of the unpaid query (newest first).
func (s *ReminderService) SendAll(ctx context.Context) (BatchResult, error) {
	unpaid := false
	bills, err := s.repos.Readings().Find(ctx, models.ReadingFilter{IsPaid: &unpaid}, models.DateDesc)
	if err != nil {
		return BatchResult{}, fmt.Errorf("find unpaid: %w", err)
	}

	items := make([]Outcome, len(bills))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i := range bills {
		g.Go(func() error {
			items[i] = s.dispatch(ctx, &bills[i])
			return nil
		})
	}
	_ = g.Wait()

	res := NewBatchResult(items)
	s.log.Info(ctx, "reminder batch finished", "total", res.Total, "sent", res.Sent, "failed", res.Failed)
	return res, nil
}

func (s *ReminderService) dispatch(ctx context.Context, rd *models.Reading) Outcome {
	out := Outcome{ReadingID: rd.ID, ApartmentNumber: rd.ApartmentNumber, Email: "N/A", Status: StatusFailed}

	user, err := s.repos.Users().GetByID(ctx, rd.UserID)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.log.Warn(ctx, "owner lookup failed", "reading_id", rd.ID, "error", err)
		}
		out.Reason = ReasonUserNotFound
		return out
	}
	out.Email = user.Email

	subject, body, err := renderReminder(rd, user)
	if err != nil {
		out.Reason = ReasonRenderError
		return out
	}

	if err := s.transport.Send(ctx, user.Email, subject, body); err != nil {
		s.log.Warn(ctx, "reminder delivery failed", "reading_id", rd.ID, "to", user.Email, "error", err)
		out.Reason = ReasonTransportError
		return out
	}

	out.Status = StatusSent
	return out
}

func renderReminder(rd *models.Reading, user *models.User) (string, string, error) {
	body, err := mailer.RenderReminder(mailer.ReminderData{
		Name:            user.Name,
		ApartmentNumber: rd.ApartmentNumber,
		Date:            rd.Date,
		ColdWater:       tariff.FormatFloat(rd.ColdWater),
		HotWater:        tariff.FormatFloat(rd.HotWater),
		Amount:          tariff.Format(rd.Amount),
	})
	if err != nil {
		return "", "", err
	}
	return mailer.ReminderSubject(rd.ApartmentNumber), body, nil
}
