package reporting

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/orcafacil/orcafacil/internal/domain/models"
)

type fakeQuoteSource struct {
	quotes []models.Quote
}

func (f *fakeQuoteSource) ListQuotes(ctx context.Context) ([]models.Quote, error) {
	return f.quotes, nil
}

type fakeSheets struct {
	appended [][]interface{}
	calls    int
}

func (f *fakeSheets) AppendRows(ctx context.Context, sheetRange string, rows [][]interface{}) error {
	f.calls++
	f.appended = append(f.appended, rows...)
	return nil
}

func quoteOn(day time.Time, cliente string, items ...models.QuoteItem) models.Quote {
	return models.Quote{
		Cliente:  cliente,
		Telefone: "11 99999-0000",
		Data:     day.Format("2006-01-02"),
		Endereco: "Rua A, 1",
		Itens:    items,
		CriadoEm: day.Add(10 * time.Hour),
	}
}

func TestDailySummaryRows(t *testing.T) {
	day := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	item := models.QuoteItem{Quantidade: 3, Produto: "Areia", PrecoUnitario: 12.50, PrecoTotal: 37.50}
	other := models.QuoteItem{Quantidade: 1, Produto: "Cimento", PrecoUnitario: 5, PrecoTotal: 5}

	all := []models.Quote{
		quoteOn(day, "Maria", item),
		quoteOn(day, "João", item, other),
		quoteOn(day.AddDate(0, 0, -1), "Ontem", item),
		quoteOn(day.AddDate(0, 0, 1), "Amanhã", item),
	}

	rows := DailySummaryRows(all, day)

	// Two quote rows plus the totals row.
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0][1] != "Maria" || rows[1][1] != "João" {
		t.Fatalf("unexpected quote rows: %v", rows)
	}
	if rows[0][5] != 37.50 {
		t.Fatalf("first quote total = %v, want 37.50", rows[0][5])
	}

	totals := rows[2]
	if totals[1] != "TOTAL" || totals[5] != 80.0 {
		t.Fatalf("totals row = %v, want TOTAL / 80", totals)
	}
}

func TestDailySummaryRowsEmptyDay(t *testing.T) {
	day := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	all := []models.Quote{quoteOn(day.AddDate(0, 0, -3), "Antiga")}

	if rows := DailySummaryRows(all, day); rows != nil {
		t.Fatalf("rows = %v, want nil for a day without quotes", rows)
	}
}

func TestExportDailySummarySkipsEmptyDay(t *testing.T) {
	sheets := &fakeSheets{}
	svc := NewService(sheets, &fakeQuoteSource{}, zap.NewNop())

	day := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	if err := svc.ExportDailySummary(context.Background(), day); err != nil {
		t.Fatalf("ExportDailySummary: %v", err)
	}
	if sheets.calls != 0 {
		t.Fatal("empty day must not touch the spreadsheet")
	}
}

func TestExportDailySummaryAppendsRows(t *testing.T) {
	day := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	item := models.QuoteItem{Quantidade: 2, Produto: "Brita", PrecoUnitario: 40, PrecoTotal: 80}
	source := &fakeQuoteSource{quotes: []models.Quote{quoteOn(day, "Maria", item)}}
	sheets := &fakeSheets{}
	svc := NewService(sheets, source, zap.NewNop())

	if err := svc.ExportDailySummary(context.Background(), day); err != nil {
		t.Fatalf("ExportDailySummary: %v", err)
	}
	if sheets.calls != 1 {
		t.Fatalf("sheet calls = %d, want 1", sheets.calls)
	}
	if len(sheets.appended) != 2 {
		t.Fatalf("appended rows = %d, want quote row + totals row", len(sheets.appended))
	}
}
