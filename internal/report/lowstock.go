// Package report renders spreadsheet exports for shop staff.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/tealeg/xlsx"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// ContentTypeXLSX is the media type of generated workbooks.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const lowStockSheet = "Low stock"

var lowStockHeaders = []string{"ID", "Name", "Category", "Brand", "SKU", "Price", "Stock", "Updated"}

// LowStockWorkbook lists products at or below threshold, one row each.
func LowStockWorkbook(products []model.Product, threshold int) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(lowStockSheet)
	if err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}

	title := sheet.AddRow()
	title.AddCell().SetString(fmt.Sprintf("Products with stock <= %d", threshold))

	header := sheet.AddRow()
	for _, h := range lowStockHeaders {
		header.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID)
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.CategorySlug)
		row.AddCell().SetString(p.Brand)
		row.AddCell().SetString(p.SKU)
		row.AddCell().SetFloat(p.Price.InexactFloat64())
		row.AddCell().SetInt(p.Stock)
		row.AddCell().SetString(p.UpdatedAt.Format(time.DateTime))
	}
	return file, nil
}

// WriteLowStock renders the low stock workbook to w.
func WriteLowStock(w io.Writer, products []model.Product, threshold int) error {
	file, err := LowStockWorkbook(products, threshold)
	if err != nil {
		return err
	}
	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
