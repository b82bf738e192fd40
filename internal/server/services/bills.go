package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/logging"
	"github.com/dmitrijs2005/waterbill/internal/server/access"
	"github.com/dmitrijs2005/waterbill/internal/server/archive"
	"github.com/dmitrijs2005/waterbill/internal/server/models"
	"github.com/dmitrijs2005/waterbill/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/waterbill/internal/server/tariff"
	"github.com/shopspring/decimal"
)

// UnpaidBills is the unpaid query result.
type UnpaidBills struct {
	Count       int
	TotalAmount string
	Bills       []models.Reading
}

// AnnualSummary holds the totals of an annual report, each formatted with
// two decimals.
type AnnualSummary struct {
	TotalReadings  int
	TotalColdWater string
	TotalHotWater  string
	TotalAmount    string
	PaidAmount     string
	UnpaidAmount   string
}

// AnnualReport is a year's readings (oldest first) and their summary.
type AnnualReport struct {
	Year     int
	Summary  AnnualSummary
	Readings []models.Reading
}

// ExportedReport points at an archived annual report.
type ExportedReport struct {
	Year int
	Key  string
	URL  string
}

// ReportArchive stores an object and returns a download URL for it.
type ReportArchive interface {
	Store(ctx context.Context, key, contentType string, body []byte) (string, error)
}

// BillService computes billing reports and toggles payment state.
type BillService struct {
	repos   repomanager.RepositoryManager
	archive ReportArchive
	log     logging.Logger
	now     func() time.Time
}

// NewBillService builds the service. archive may be nil, in which case
// ExportAnnualReport fails with common.ErrorValidation.
func NewBillService(repos repomanager.RepositoryManager, archive ReportArchive, log logging.Logger) *BillService {
	return &BillService{
		repos:   repos,
		archive: archive,
		log:     log.With("module", "bills"),
		now:     time.Now,
	}
}

// Unpaid lists unpaid readings, newest first, with their total.
func (s *BillService) Unpaid(ctx context.Context, scope access.Scope) (*UnpaidBills, error) {
	unpaid := false
	bills, err := s.repos.Readings().Find(ctx,
		models.ReadingFilter{UserID: scope.OwnerFilter(), IsPaid: &unpaid}, models.DateDesc)
	if err != nil {
		return nil, fmt.Errorf("find unpaid: %w", err)
	}

	total := decimal.Zero
	for _, b := range bills {
		total = total.Add(tariff.Cents(b.Amount))
	}
	return &UnpaidBills{Count: len(bills), TotalAmount: tariff.Format(total), Bills: bills}, nil
}

// YearRange returns the inclusive UTC bounds of year.
func YearRange(year int) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	return from, to
}

// AnnualReport summarises a calendar year. A nil year means the current UTC
// year. Amounts are summed in whole cents so PaidAmount+UnpaidAmount equals
// TotalAmount exactly.
func (s *BillService) AnnualReport(ctx context.Context, scope access.Scope, year *int) (*AnnualReport, error) {
	y := s.now().UTC().Year()
	if year != nil {
		y = *year
	}
	if y < 1 || y > 9999 {
		return nil, fmt.Errorf("%w: year %d out of range", common.ErrorValidation, y)
	}

	from, to := YearRange(y)
	readings, err := s.repos.Readings().Find(ctx,
		models.ReadingFilter{UserID: scope.OwnerFilter(), From: &from, To: &to}, models.DateAsc)
	if err != nil {
		return nil, fmt.Errorf("find readings for %d: %w", y, err)
	}

	return &AnnualReport{Year: y, Summary: summarize(readings), Readings: readings}, nil
}

func summarize(readings []models.Reading) AnnualSummary {
	cold, hot, total, paid := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, r := range readings {
		cold = cold.Add(decimal.NewFromFloat(r.ColdWater))
		hot = hot.Add(decimal.NewFromFloat(r.HotWater))
		amount := tariff.Cents(r.Amount)
		total = total.Add(amount)
		if r.IsPaid {
			paid = paid.Add(amount)
		}
	}
	return AnnualSummary{
		TotalReadings:  len(readings),
		TotalColdWater: tariff.Format(cold),
		TotalHotWater:  tariff.Format(hot),
		TotalAmount:    tariff.Format(total),
		PaidAmount:     tariff.Format(paid),
		UnpaidAmount:   tariff.Format(total.Sub(paid)),
	}
}

// ExportAnnualReport renders the caller's annual report as CSV, uploads it to
// the archive and returns a presigned link.
func (s *BillService) ExportAnnualReport(ctx context.Context, scope access.Scope, year *int) (*ExportedReport, error) {
	if s.archive == nil {
		return nil, fmt.Errorf("%w: report archive is not configured", common.ErrorValidation)
	}

	report, err := s.AnnualReport(ctx, scope, year)
	if err != nil {
		return nil, err
	}
	body, err := ReportCSV(report)
	if err != nil {
		return nil, err
	}

	key := archive.ReportKey(report.Year, scope.UserID)
	url, err := s.archive.Store(ctx, key, "text/csv", body)
	if err != nil {
		return nil, fmt.Errorf("archive report: %w", err)
	}

	s.log.Info(ctx, "annual report exported", "year", report.Year, "key", key, "readings", len(report.Readings))
	return &ExportedReport{Year: report.Year, Key: key, URL: url}, nil
}

// ReportCSV renders one row per reading followed by a summary block.
func ReportCSV(report *AnnualReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{{"date", "apartmentNumber", "userName", "coldWater", "hotWater", "amount", "isPaid"}}
	for _, r := range report.Readings {
		rows = append(rows, []string{
			r.Date.UTC().Format(common.DateLayout),
			r.ApartmentNumber,
			r.UserName,
			tariff.FormatFloat(r.ColdWater),
			tariff.FormatFloat(r.HotWater),
			tariff.Format(r.Amount),
			strconv.FormatBool(r.IsPaid),
		})
	}
	sum := report.Summary
	rows = append(rows,
		[]string{},
		[]string{"year", strconv.Itoa(report.Year)},
		[]string{"totalReadings", strconv.Itoa(sum.TotalReadings)},
		[]string{"totalColdWater", sum.TotalColdWater},
		[]string{"totalHotWater", sum.TotalHotWater},
		[]string{"totalAmount", sum.TotalAmount},
		[]string{"paidAmount", sum.PaidAmount},
		[]string{"unpaidAmount", sum.UnpaidAmount},
	)

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}

// MarkPaid sets isPaid=true. Repeating it is a no-op that still succeeds.
func (s *BillService) MarkPaid(ctx context.Context, id string) (*models.Reading, error) {
	return s.setPaid(ctx, id, true)
}

// MarkUnpaid sets isPaid=false.
func (s *BillService) MarkUnpaid(ctx context.Context, id string) (*models.Reading, error) {
	return s.setPaid(ctx, id, false)
}

// SetPaid is MarkPaid/MarkUnpaid for callers holding a scope; only admins
// may use it.
func (s *BillService) SetPaid(ctx context.Context, scope access.Scope, id string, paid bool) (*models.Reading, error) {
	if err := access.RequireAdmin(scope); err != nil {
		return nil, err
	}
	return s.setPaid(ctx, id, paid)
}

func (s *BillService) setPaid(ctx context.Context, id string, paid bool) (*models.Reading, error) {
	rd, err := s.repos.Readings().Update(ctx, id, models.ReadingPatch{IsPaid: &paid})
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "payment state changed", "reading_id", id, "is_paid", paid)
	return rd, nil
}
