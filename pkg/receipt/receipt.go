// Package receipt renders a fixed-layout invoice PDF. Pure rendering: a View
// in, bytes out, no side effects.
package receipt

import (
	"bytes"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

type Line struct {
	Name      string
	Qty       int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

type View struct {
	InvoiceNo    string
	IssuedAt     time.Time
	TableName    string
	CustomerName string

	Lines []Line

	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal

	PaymentMethod string
	PaidAmount    decimal.Decimal
}

func Render(v View) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, "RECEIPT", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, v.InvoiceNo, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, v.IssuedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	if v.TableName != "" {
		pdf.CellFormat(0, 6, "Table: "+v.TableName, "", 1, "C", false, 0, "")
	}
	if v.CustomerName != "" {
		pdf.CellFormat(0, 6, "Customer: "+v.CustomerName, "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)

	// line items
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(60, 6, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(15, 6, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, "Total", "B", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, ln := range v.Lines {
		pdf.CellFormat(60, 6, ln.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(15, 6, decimal.NewFromInt(int64(ln.Qty)).String(), "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, ln.UnitPrice.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, ln.Total.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// totals
	writeTotal := func(label string, amount decimal.Decimal, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(100, 6, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, amount.StringFixed(2), "", 1, "R", false, 0, "")
	}
	writeTotal("Subtotal", v.Subtotal, false)
	writeTotal("Discount", v.Discount.Neg(), false)
	writeTotal("Total", v.Total, true)

	if v.PaymentMethod != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(100, 6, "Paid ("+v.PaymentMethod+")", "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, v.PaidAmount.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "Thank you, see you again!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
