package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"

	"github.com/polkiloo/storefront/internal/domain/model"
)

func lowStockProducts() []model.Product {
	updated := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	return []model.Product{
		{ID: "phone-iphone-001", Name: "iPhone 12", CategorySlug: "phones", Brand: "Apple", SKU: "PHOabc",
			Price: decimal.NewFromInt(4200), Stock: 2, UpdatedAt: updated},
		{ID: "desktop-dell-001", Name: "Dell OptiPlex Desktop", CategorySlug: "computers", Brand: "Dell", SKU: "COMdef",
			Price: decimal.RequireFromString("2800.50"), Stock: 3, UpdatedAt: updated},
	}
}

func TestWriteLowStockProducesReadableWorkbook(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLowStock(&buf, lowStockProducts(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	file, err := xlsx.OpenBinary(buf.Bytes())
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	if len(file.Sheets) != 1 || file.Sheets[0].Name != lowStockSheet {
		t.Fatalf("unexpected sheets: %+v", file.Sheets)
	}

	rows := file.Sheets[0].Rows
	if len(rows) != 4 {
		t.Fatalf("expected title, header and two products, got %d rows", len(rows))
	}
	if got := rows[0].Cells[0].Value; got != "Products with stock <= 5" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := rows[1].Cells[6].Value; got != "Stock" {
		t.Fatalf("unexpected header %q", got)
	}
	if got := rows[2].Cells[0].Value; got != "phone-iphone-001" {
		t.Fatalf("unexpected first product %q", got)
	}
	if got := rows[2].Cells[6].Value; got != "2" {
		t.Fatalf("unexpected stock %q", got)
	}
	if got := rows[3].Cells[7].Value; got != "2024-05-01 09:30:00" {
		t.Fatalf("unexpected timestamp %q", got)
	}
}

func TestLowStockWorkbookWithoutProducts(t *testing.T) {
	file, err := LowStockWorkbook(nil, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows := file.Sheets[0].Rows; len(rows) != 2 {
		t.Fatalf("expected only title and header, got %d rows", len(rows))
	}
}
