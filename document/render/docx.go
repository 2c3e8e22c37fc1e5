package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"innotools-backend/internal/catalog"
	"innotools-backend/internal/recommend"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// DOCX renders a tool, plus optional customized guidance, into a minimal
// WordprocessingML package. The part layout mirrors what a DOCX consumer
// needs to open the file: content types, package rels, and the document
// body itself.
func DOCX(tool catalog.Tool, guidance *recommend.ImplementationResponse) ([]byte, error) {
	var body docxBody

	body.title(tool.Name)
	body.paragraph(tool.Description)

	body.heading(headingGeneralInfo)
	body.labelValue("Category", tool.Category)
	body.labelValue("Difficulty", tool.Difficulty)
	body.labelValue("Time Required", tool.TimeRequired)
	body.labelValue("Team Size", tool.TeamSize)

	body.heading(headingSteps)
	for i, step := range tool.Steps {
		body.paragraph(fmt.Sprintf("%d. %s", i+1, step))
	}

	body.heading(headingMaterials)
	body.bullets(tool.Materials)

	if len(tool.Tips) > 0 {
		body.heading(headingTips)
		body.bullets(tool.Tips)
	}

	if guidance != nil {
		body.pageBreak()
		body.title(headingGuidance)

		body.heading(headingOverview)
		body.paragraph(stripMarkdown(guidance.Guide))

		body.heading(headingCustomSteps)
		for i, step := range guidance.CustomSteps {
			body.paragraph(fmt.Sprintf("%d. %s", i+1, stripMarkdown(step)))
		}

		body.heading(headingGuideMaterials)
		body.bullets(stripAll(guidance.Materials))

		body.heading(headingTimeAlloc)
		prep, exec, debrief := tool.Duration.Allocation()
		body.labelValue("Preparation", fmt.Sprintf("%d minutes", prep))
		body.labelValue("Execution", fmt.Sprintf("%d minutes", exec))
		body.labelValue("Debrief", fmt.Sprintf("%d minutes", debrief))
		body.labelValue("Total", fmt.Sprintf("%d minutes", prep+exec+debrief))

		body.heading(headingTimeline)
		body.paragraph(stripMarkdown(guidance.Timeline))

		body.heading(headingOutcomes)
		body.bullets(stripAll(guidance.ExpectedOutcomes))
	}

	if len(tool.References) > 0 {
		body.heading(headingReferences)
		body.bullets(tool.References)
	}

	body.paragraph(footerText(time.Now()))

	return packDocx(body.documentXML())
}

func packDocx(documentXML string) ([]byte, error) {
	var output bytes.Buffer
	writer := zip.NewWriter(&output)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", documentXML},
	}
	for _, part := range parts {
		f, err := writer.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("render docx: %w", err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("render docx: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}
	return output.Bytes(), nil
}

// docxBody accumulates WordprocessingML paragraphs.
type docxBody struct {
	b strings.Builder
}

func (d *docxBody) title(text string) {
	d.run(text, `<w:rPr><w:b/><w:sz w:val="48"/></w:rPr>`, `<w:pPr><w:jc w:val="center"/></w:pPr>`)
}

func (d *docxBody) heading(text string) {
	d.run(text, `<w:rPr><w:b/><w:sz w:val="32"/></w:rPr>`, "")
}

func (d *docxBody) paragraph(text string) {
	// Hard line breaks inside a value become separate paragraphs; Word
	// renders literal newlines inside <w:t> inconsistently.
	for _, line := range strings.Split(text, "\n") {
		d.run(line, `<w:rPr><w:sz w:val="24"/></w:rPr>`, "")
	}
}

func (d *docxBody) labelValue(label, value string) {
	d.b.WriteString(`<w:p><w:r><w:rPr><w:b/><w:sz w:val="24"/></w:rPr><w:t xml:space="preserve">`)
	d.b.WriteString(escapeXML(label + ": "))
	d.b.WriteString(`</w:t></w:r><w:r><w:rPr><w:sz w:val="24"/></w:rPr><w:t xml:space="preserve">`)
	d.b.WriteString(escapeXML(value))
	d.b.WriteString(`</w:t></w:r></w:p>`)
}

func (d *docxBody) bullets(items []string) {
	for _, item := range items {
		d.run("- "+item, `<w:rPr><w:sz w:val="24"/></w:rPr>`, "")
	}
}

func (d *docxBody) pageBreak() {
	d.b.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
}

func (d *docxBody) run(text, runProps, paraProps string) {
	d.b.WriteString("<w:p>")
	d.b.WriteString(paraProps)
	d.b.WriteString("<w:r>")
	d.b.WriteString(runProps)
	d.b.WriteString(`<w:t xml:space="preserve">`)
	d.b.WriteString(escapeXML(text))
	d.b.WriteString(`</w:t></w:r></w:p>`)
}

func (d *docxBody) documentXML() string {
	var out strings.Builder
	out.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	out.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	out.WriteString(d.b.String())
	out.WriteString(`<w:sectPr/></w:body></w:document>`)
	return out.String()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
