package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"Espuma/internal/calc/foam"
	"Espuma/internal/formulation"

	"github.com/phpdave11/gofpdf"
)

const defaultTitle = "Relatório de Formulação"

type Input struct {
	foam.Input
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
}

// Render writes a one-page PDF with the request, the inputs and the result.
func Render(w io.Writer, in Input, def formulation.Definition, res foam.Result, now time.Time) error {
	if in.Title == "" {
		in.Title = defaultTitle
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	// core fonts are cp1252; translate accents and "³"
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(in.Title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Formulação: %s", def.Name)))
	pdf.Ln(6)
	if in.Project != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Projeto: %s", in.Project)))
		pdf.Ln(6)
	}
	if in.Author != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Autor: %s", in.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Data: %s", now.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Variáveis"))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, v := range def.Variables {
		pdf.CellFormat(70, 7, tr(def.Label(v)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, tr(in.Inputs[v]), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	if !res.OK {
		pdf.Cell(0, 8, "Resultado")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(res.Message), "", "L", false)
		return pdf.Output(w)
	}

	pdf.Cell(0, 8, tr(strings.TrimSuffix(formulation.ResultHeader, ":")))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for i, line := range formulation.Lines(*res.Masses) {
		pdf.CellFormat(10, 7, fmt.Sprintf("%d.", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(70, 7, tr(line.Label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, line.Value, "1", 1, "R", false, 0, "")
	}
	return pdf.Output(w)
}
