package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"innotools-backend/internal/catalog"
	"innotools-backend/internal/recommend"
)

// PDF renders a tool, plus optional customized guidance, into a PDF byte
// buffer. Deterministic for identical inputs except for the footer
// timestamp.
func PDF(tool catalog.Tool, guidance *recommend.ImplementationResponse) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.AddPage()

	doc.SetFont(fontFamily, "B", titleSize)
	doc.CellFormat(0, 12, tool.Name, "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont(fontFamily, "", bodySize)
	doc.MultiCell(0, 6, tool.Description, "", "L", false)
	doc.Ln(4)

	pdfSection(doc, headingGeneralInfo)
	pdfLabelValue(doc, "Category", tool.Category)
	pdfLabelValue(doc, "Difficulty", tool.Difficulty)
	pdfLabelValue(doc, "Time Required", tool.TimeRequired)
	pdfLabelValue(doc, "Team Size", tool.TeamSize)
	doc.Ln(4)

	pdfSection(doc, headingSteps)
	for i, step := range tool.Steps {
		doc.SetFont(fontFamily, "", bodySize)
		doc.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, step), "", "L", false)
		doc.Ln(1)
	}
	doc.Ln(3)

	pdfSection(doc, headingMaterials)
	pdfBullets(doc, tool.Materials)
	doc.Ln(4)

	if len(tool.Tips) > 0 {
		pdfSection(doc, headingTips)
		pdfBullets(doc, tool.Tips)
		doc.Ln(4)
	}

	if guidance != nil {
		doc.AddPage()
		doc.SetFont(fontFamily, "B", 20)
		doc.CellFormat(0, 10, headingGuidance, "", 1, "C", false, 0, "")
		doc.Ln(4)

		pdfSection(doc, headingOverview)
		doc.SetFont(fontFamily, "", bodySize)
		doc.MultiCell(0, 6, stripMarkdown(guidance.Guide), "", "L", false)
		doc.Ln(4)

		pdfSection(doc, headingCustomSteps)
		for i, step := range guidance.CustomSteps {
			doc.SetFont(fontFamily, "", bodySize)
			doc.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, stripMarkdown(step)), "", "L", false)
			doc.Ln(1)
		}
		doc.Ln(3)

		pdfSection(doc, headingGuideMaterials)
		pdfBullets(doc, stripAll(guidance.Materials))
		doc.Ln(4)

		pdfSection(doc, headingTimeAlloc)
		prep, exec, debrief := tool.Duration.Allocation()
		pdfLabelValue(doc, "Preparation", fmt.Sprintf("%d minutes", prep))
		pdfLabelValue(doc, "Execution", fmt.Sprintf("%d minutes", exec))
		pdfLabelValue(doc, "Debrief", fmt.Sprintf("%d minutes", debrief))
		pdfLabelValue(doc, "Total", fmt.Sprintf("%d minutes", prep+exec+debrief))
		doc.Ln(4)

		pdfSection(doc, headingTimeline)
		doc.SetFont(fontFamily, "", bodySize)
		doc.MultiCell(0, 6, stripMarkdown(guidance.Timeline), "", "L", false)
		doc.Ln(4)

		pdfSection(doc, headingOutcomes)
		pdfBullets(doc, stripAll(guidance.ExpectedOutcomes))
		doc.Ln(4)
	}

	if len(tool.References) > 0 {
		pdfSection(doc, headingReferences)
		pdfBullets(doc, tool.References)
		doc.Ln(4)
	}

	doc.SetFont(fontFamily, "I", 10)
	doc.CellFormat(0, 8, footerText(time.Now()), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func pdfSection(doc *fpdf.Fpdf, title string) {
	doc.SetFont(fontFamily, "B", sectionSize)
	doc.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	doc.Ln(1)
}

func pdfLabelValue(doc *fpdf.Fpdf, label, value string) {
	doc.SetFont(fontFamily, "B", bodySize)
	doc.CellFormat(40, 6, label+":", "", 0, "L", false, 0, "")
	doc.SetFont(fontFamily, "", bodySize)
	doc.MultiCell(0, 6, value, "", "L", false)
}

func pdfBullets(doc *fpdf.Fpdf, items []string) {
	doc.SetFont(fontFamily, "", bodySize)
	for _, item := range items {
		doc.MultiCell(0, 6, "- "+item, "", "L", false)
	}
}

func stripAll(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = stripMarkdown(item)
	}
	return out
}
