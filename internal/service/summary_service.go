package service

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/matiascayunao/pvsa-p/internal/domain"
	"github.com/matiascayunao/pvsa-p/internal/repository"
)

// SummaryRow is one report row: summed quantities plus the share of each
// status in the row total, as percentages rounded to one decimal.
type SummaryRow struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	SectorName  string  `json:"sector_name,omitempty"`
	Total       int     `json:"total"`
	Good        int     `json:"good"`
	Pending     int     `json:"pending"`
	Bad         int     `json:"bad"`
	GoodPct     float64 `json:"good_pct"`
	PendingPct  float64 `json:"pending_pct"`
	BadPct      float64 `json:"bad_pct"`
}

// ObjectRow is a SummaryRow for one object kind plus the bad-condition
// items of that kind with their location path.
type ObjectRow struct {
	SummaryRow
	BadItems []repository.BadItem `json:"bad_items,omitempty"`
}

// SummaryReport is the full aggregate report. Items without a room count
// only in ByObject.
type SummaryReport struct {
	BySector   []SummaryRow `json:"by_sector"`
	ByLocation []SummaryRow `json:"by_location"`
	ByObject   []ObjectRow  `json:"by_object"`
}

// SummaryService builds the aggregate condition report and the export tree.
type SummaryService interface {
	BuildSummary(ctx context.Context, f repository.SummaryFilter) (*SummaryReport, error)
	ExportTree(ctx context.Context) ([]*repository.ExportLocation, error)
}

type summaryService struct {
	repo   repository.SummaryRepo
	logger *zap.Logger
}

func NewSummaryService(repo repository.SummaryRepo, logger *zap.Logger) SummaryService {
	return &summaryService{repo: repo, logger: logger}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// percentages derives the three status shares. A zero total yields all
// zeros rather than NaN.
func percentages(g repository.GroupTotals) (good, pending, bad float64) {
	if g.Total == 0 {
		return 0, 0, 0
	}
	t := float64(g.Total)
	return round1(float64(g.Good) * 100 / t),
		round1(float64(g.Pending) * 100 / t),
		round1(float64(g.Bad) * 100 / t)
}

func toRow(g repository.GroupTotals) SummaryRow {
	row := SummaryRow{
		ID:         g.ID,
		Name:       g.Name,
		SectorName: g.SectorName,
		Total:      g.Total,
		Good:       g.Good,
		Pending:    g.Pending,
		Bad:        g.Bad,
	}
	row.GoodPct, row.PendingPct, row.BadPct = percentages(g)
	return row
}

func (s *summaryService) BuildSummary(ctx context.Context, f repository.SummaryFilter) (*SummaryReport, error) {
	if f.Status != "" && !domain.ValidStatus(f.Status) {
		return nil, fmt.Errorf("unknown status %q", f.Status)
	}
	data, err := s.repo.Aggregate(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate summary: %w", err)
	}

	report := &SummaryReport{}
	for _, g := range data.BySector {
		report.BySector = append(report.BySector, toRow(g))
	}
	for _, g := range data.ByLocation {
		report.ByLocation = append(report.ByLocation, toRow(g))
	}

	badByKind := map[string][]repository.BadItem{}
	for _, b := range data.Bad {
		badByKind[b.KindID] = append(badByKind[b.KindID], b)
	}
	for _, g := range data.ByObject {
		report.ByObject = append(report.ByObject, ObjectRow{
			SummaryRow: toRow(g),
			BadItems:   badByKind[g.ID],
		})
	}
	return report, nil
}

func (s *summaryService) ExportTree(ctx context.Context) ([]*repository.ExportLocation, error) {
	return s.repo.ExportTree(ctx)
}
