package pdf

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"clientapi/internal/dto"
	"clientapi/internal/models"
)

// Generator renders client listings; an interface so handlers can be tested without gofpdf.
type Generator interface {
	WriteClientReport(w io.Writer, data ClientReportData) error
}

type ClientReportData struct {
	Page        models.Page[dto.ClientDTO]
	Filter      string // human readable description of the query, may be empty
	GeneratedAt time.Time
}

type ReportGenerator struct {
	Title    string
	FontPath string // UTF-8 TTF; when empty the core Helvetica font is used
	fontName string
}

func NewReportGenerator(title, fontPath string) *ReportGenerator {
	g := &ReportGenerator{Title: title, FontPath: fontPath, fontName: "Helvetica"}
	if fontPath != "" {
		g.fontName = "Report"
	}
	return g
}

var columns = []struct {
	title string
	width float64
	align string
}{
	{"ID", 14, "R"},
	{"Name", 62, "L"},
	{"CPF", 30, "L"},
	{"Income", 28, "R"},
	{"Birth date", 26, "C"},
	{"Status", 14, "C"},
}

func (g *ReportGenerator) WriteClientReport(w io.Writer, data ClientReportData) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(g.Title, true)
	pdf.SetAuthor("clientapi", false)
	pdf.SetMargins(13, 20, 13)
	pdf.SetAutoPageBreak(true, 20)

	tr := g.setupFont(pdf)

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 9)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, tr(g.Title), "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, "Generated "+data.GeneratedAt.UTC().Format("02.01.2006 15:04 MST"), "", 1, "C", false, 0, "")
	g.hr(pdf)

	g.kvLine(pdf, tr, "Filter", orDash(data.Filter))
	g.kvLine(pdf, tr, "Page", fmt.Sprintf("%d of %d", data.Page.Number+1, max(data.Page.TotalPages, 1)))
	g.kvLine(pdf, tr, "Total clients", strconv.FormatInt(data.Page.TotalElements, 10))
	pdf.Ln(3)

	g.header(pdf)
	pdf.SetFont(g.fontName, "", 10)
	for i, c := range data.Page.Content {
		fill := i%2 == 1
		pdf.SetFillColor(242, 242, 242)
		pdf.CellFormat(columns[0].width, 7, strconv.FormatInt(c.ID, 10), "", 0, columns[0].align, fill, 0, "")
		pdf.CellFormat(columns[1].width, 7, tr(c.Name), "", 0, columns[1].align, fill, 0, "")
		pdf.CellFormat(columns[2].width, 7, c.CPF, "", 0, columns[2].align, fill, 0, "")
		pdf.CellFormat(columns[3].width, 7, strconv.FormatFloat(c.Income, 'f', 2, 64), "", 0, columns[3].align, fill, 0, "")
		pdf.CellFormat(columns[4].width, 7, c.BirthDate.UTC().Format("02.01.2006"), "", 0, columns[4].align, fill, 0, "")
		pdf.CellFormat(columns[5].width, 7, strconv.Itoa(c.Status), "", 1, columns[5].align, fill, 0, "")
	}
	if data.Page.IsEmpty() {
		pdf.SetFont(g.fontName, "I", 10)
		pdf.CellFormat(0, 8, "No clients match this query.", "", 1, "C", false, 0, "")
	}

	return pdf.Output(w)
}

func (g *ReportGenerator) setupFont(pdf *gofpdf.Fpdf) func(string) string {
	if g.FontPath == "" {
		return pdf.UnicodeTranslatorFromDescriptor("")
	}
	pdf.AddUTF8Font(g.fontName, "", g.FontPath)
	pdf.AddUTF8Font(g.fontName, "B", g.FontPath)
	pdf.AddUTF8Font(g.fontName, "I", g.FontPath)
	return func(s string) string { return s }
}

func (g *ReportGenerator) header(pdf *gofpdf.Fpdf) {
	pdf.SetFont(g.fontName, "B", 10)
	pdf.SetFillColor(220, 220, 220)
	for i, col := range columns {
		ln := 0
		if i == len(columns)-1 {
			ln = 1
		}
		pdf.CellFormat(col.width, 8, col.title, "B", ln, col.align, true, 0, "")
	}
}

func (g *ReportGenerator) kvLine(pdf *gofpdf.Fpdf, tr func(string) string, key, val string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(40, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, tr(val), "", 1, "L", false, 0, "")
}

func (g *ReportGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(13, y, 197, y)
	pdf.SetY(y + 3)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
