package reporting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/orcafacil/orcafacil/internal/domain/models"
	repo "github.com/orcafacil/orcafacil/internal/repository/sheets"
	"github.com/orcafacil/orcafacil/internal/service/quotes"
)

const (
	dateLayout      = "2006-01-02"
	quotesDataRange = "Orcamentos!A:F"
)

// QuoteSource lists the persisted quotes to be summarized.
type QuoteSource interface {
	ListQuotes(ctx context.Context) ([]models.Quote, error)
}

// Service exports daily quote summaries to the spreadsheet.
type Service struct {
	sheets repo.Repository
	source QuoteSource
	logger *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(sheets repo.Repository, source QuoteSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{sheets: sheets, source: source, logger: logger}
}

// ExportDailySummary appends one row per quote created on the given day plus
// a totals row. Days without quotes append nothing.
func (s *Service) ExportDailySummary(ctx context.Context, day time.Time) error {
	all, err := s.source.ListQuotes(ctx)
	if err != nil {
		return fmt.Errorf("load quotes: %w", err)
	}

	rows := DailySummaryRows(all, day)
	if len(rows) == 0 {
		s.logger.Info("no quotes to export", zap.String("day", day.Format(dateLayout)))
		return nil
	}

	if err := s.sheets.AppendRows(ctx, quotesDataRange, rows); err != nil {
		return fmt.Errorf("export daily summary: %w", err)
	}

	s.logger.Info("daily quote summary exported",
		zap.String("day", day.Format(dateLayout)),
		zap.Int("quotes", len(rows)-1))
	return nil
}

// DailySummaryRows builds the export rows for the quotes created on day, in
// day's location: one row per quote (created, customer, phone, delivery date,
// items, total) followed by a totals row.
func DailySummaryRows(all []models.Quote, day time.Time) [][]interface{} {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var rows [][]interface{}
	var dayTotal float64
	for _, q := range all {
		created := q.CriadoEm.In(day.Location())
		if created.Before(start) || !created.Before(end) {
			continue
		}

		total := quotes.GrandTotal(q.Itens)
		dayTotal += total
		rows = append(rows, []interface{}{
			created.Format(dateLayout),
			q.Cliente,
			q.Telefone,
			q.Data,
			len(q.Itens),
			total,
		})
	}

	if len(rows) == 0 {
		return nil
	}

	rows = append(rows, []interface{}{
		start.Format(dateLayout), "TOTAL", "", "", "", dayTotal,
	})
	return rows
}
