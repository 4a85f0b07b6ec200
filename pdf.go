package main

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth  = 210 // A4 width in mm
	pdfMargin     = 12
	pdfLineHeight = 6
	pdfFontSize   = 10
)

// generatePDF renders the report into a PDF with the same sections as
// the terminal output: overview, git pulse, language composition, top
// files and debt indicators.
func generatePDF(model *ReportModel, gitInfo GitInfo, topN int, outputPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	width := float64(pdfPageWidth - 2*pdfMargin)

	pdf.SetFont("Helvetica", "B", pdfFontSize+4)
	pdf.MultiCell(width, pdfLineHeight+2, fmt.Sprintf("Project Pulse: %s", rootName(model.RootDir)), "", "L", false)
	pdf.Ln(pdfLineHeight / 2)

	writePDFSection(pdf, "Overview")
	pdf.SetFont("Helvetica", "", pdfFontSize)
	overview := fmt.Sprintf(
		"Files: %s\nLines: %s\nCharacters: %s\nEstimated tokens: %s\nBinary files skipped: %s\nScan time: %.2fs",
		formatNumber(model.Totals.Files), formatNumber(model.Totals.Lines),
		formatNumber(model.Totals.Chars), formatNumber(model.Totals.Tokens),
		formatNumber(model.Totals.BinaryFiles), model.Elapsed.Seconds())
	pdf.MultiCell(width, pdfLineHeight, overview, "", "L", false)
	pdf.Ln(pdfLineHeight / 2)

	if gitInfo.IsRepo {
		writePDFSection(pdf, "Git Pulse")
		pdf.SetFont("Helvetica", "", pdfFontSize)
		pulse := fmt.Sprintf("Commits: %s\nContributors: %s",
			formatNumber(gitInfo.TotalCommits), formatNumber(gitInfo.ContributorsCount))
		for _, c := range gitInfo.TopContributors {
			pulse += "\n  " + c
		}
		pdf.MultiCell(width, pdfLineHeight, pulse, "", "L", false)
		pdf.Ln(pdfLineHeight / 2)
	}

	writePDFSection(pdf, "Language Composition")
	pdf.SetFont("Courier", "", pdfFontSize-1)
	pdf.MultiCell(width, pdfLineHeight, fmt.Sprintf("%-22s %8s %10s %12s", "Language", "Files", "Lines", "Tokens"), "", "L", false)
	for _, lang := range languagesByLines(model) {
		tally := model.ByLang[lang]
		pdf.MultiCell(width, pdfLineHeight,
			fmt.Sprintf("%-22s %8s %10s %12s", lang,
				formatNumber(tally.Files), formatNumber(tally.Lines), formatNumber(tally.Tokens)),
			"", "L", false)
	}
	pdf.Ln(pdfLineHeight / 2)

	writePDFSection(pdf, fmt.Sprintf("Top %d Largest Files", topN))
	pdf.SetFont("Courier", "", pdfFontSize-1)
	for _, f := range model.TopFiles("lines", topN) {
		pdf.MultiCell(width, pdfLineHeight, fmt.Sprintf("%8s  %s", formatNumber(f.Lines), f.Path), "", "L", false)
	}
	pdf.Ln(pdfLineHeight / 2)

	writePDFSection(pdf, "Technical Debt Indicators")
	pdf.SetFont("Courier", "", pdfFontSize-1)
	for _, marker := range markersByCount(model.TodoCounts) {
		pdf.MultiCell(width, pdfLineHeight, fmt.Sprintf("%-8s %6s", marker, formatNumber(model.TodoCounts[marker])), "", "L", false)
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("save PDF to %s: %w", outputPath, err)
	}
	return nil
}

// writePDFSection writes a bold section heading.
func writePDFSection(pdf *gofpdf.Fpdf, name string) {
	pdf.SetFont("Helvetica", "B", pdfFontSize+1)
	pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight, name, "", "L", false)
}
