// Package report generates PDF summaries and QR-coded assembly labels
// from a completed placement Result.
package report

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/demetriusdemiurge/placer/internal/model"
)

type componentColor struct {
	R, G, B int
}

var componentColors = []componentColor{
	{R: 76, G: 175, B: 80},
	{R: 33, G: 150, B: 243},
	{R: 255, G: 152, B: 0},
	{R: 156, G: 39, B: 176},
	{R: 0, G: 188, B: 212},
	{R: 244, G: 67, B: 54},
	{R: 255, G: 235, B: 59},
	{R: 121, G: 85, B: 72},
}

const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF renders a single-page layout diagram of the placed board
// followed by a metrics summary table.
func ExportPDF(path string, d model.Design, result model.Result) error {
	if len(result.Placement) == 0 {
		return fmt.Errorf("no placement to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderBoardPage(pdf, d, result)

	pdf.AddPage()
	renderSummaryPage(pdf, d, result)

	return pdf.OutputFileAndClose(path)
}

func renderBoardPage(pdf *fpdf.Fpdf, d model.Design, result model.Result) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Board %s (%.0f x %.0f mm)", d.ID, d.Board.W, d.Board.H)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Components: %d | Score: %.4f | Longest run: %.1f mm", len(result.Placement), result.Metrics.Score, result.Metrics.Longest)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom

	scale := math.Min(drawWidth/d.Board.W, drawHeight/d.Board.H)
	canvasW := d.Board.W * scale
	canvasH := d.Board.H * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	pdf.SetFillColor(240, 240, 240)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	names := d.ComponentOrder()
	for i, name := range names {
		pos, ok := result.Placement[name]
		if !ok {
			continue
		}
		comp := d.Components[name]
		col := componentColors[i%len(componentColors)]

		w := comp.W * scale
		h := comp.H * scale
		x := offsetX + pos.X*scale - w/2
		y := offsetY + pos.Y*scale - h/2

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(x, y, w, h, "FD")

		if w > 8 && h > 5 {
			pdf.SetFont("Helvetica", "", labelFontSize(w, h))
			pdf.SetTextColor(0, 0, 0)
			labelW := pdf.GetStringWidth(name)
			if labelW < w-1 {
				pdf.SetXY(x+(w-labelW)/2, y+h/2-2)
				pdf.CellFormat(labelW, 4, name, "", 0, "C", false, 0, "")
			}
		}
	}

	drawNetLines(pdf, d, result, scale, offsetX, offsetY)
}

func drawNetLines(pdf *fpdf.Fpdf, d model.Design, result model.Result, scale, offsetX, offsetY float64) {
	pdf.SetDrawColor(120, 120, 120)
	pdf.SetLineWidth(0.15)
	for _, link := range d.Links {
		a, okA := result.Placement[link.A]
		b, okB := result.Placement[link.B]
		if !okA || !okB {
			continue
		}
		pdf.Line(offsetX+a.X*scale, offsetY+a.Y*scale, offsetX+b.X*scale, offsetY+b.Y*scale)
	}
}

func renderSummaryPage(pdf *fpdf.Fpdf, d model.Design, result model.Result) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Placement Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Metrics", "", 0, "L", false, 0, "")
	y += 9

	items := []struct {
		label string
		value string
	}{
		{"Pair Sum", fmt.Sprintf("%.2f mm", result.Metrics.PairSum)},
		{"Longest Interconnect", fmt.Sprintf("%.2f mm", result.Metrics.Longest)},
		{"Pair Sum (normalized)", fmt.Sprintf("%.4f", result.Metrics.PairNorm)},
		{"Longest (normalized)", fmt.Sprintf("%.4f", result.Metrics.LongestNorm)},
		{"Score", fmt.Sprintf("%.4f", result.Metrics.Score)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 8
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Component Placements", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{40, 60, 60}
	headers := []string{"Component", "Position (mm)", "Footprint (mm)"}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	x := marginLeft
	for i, h := range headers {
		pdf.SetXY(x, y)
		pdf.CellFormat(colWidths[i], 6, h, "1", 0, "C", true, 0, "")
		x += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, name := range d.ComponentOrder() {
		pos, ok := result.Placement[name]
		if !ok {
			continue
		}
		comp := d.Components[name]
		row := []string{
			name,
			fmt.Sprintf("(%.1f, %.1f)", pos.X, pos.Y),
			fmt.Sprintf("%.1f x %.1f", comp.W, comp.H),
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		x = marginLeft
		for j, cell := range row {
			pdf.SetXY(x, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			x += colWidths[j]
		}
		y += 6
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by the board placer", "", 0, "C", false, 0, "")
}

func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 30:
		return 8
	case minDim > 15:
		return 7
	default:
		return 6
	}
}
