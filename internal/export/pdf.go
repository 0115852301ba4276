// Package export renders a sketch document to PDF.
package export

import (
	"fmt"
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"

	"sketchpad/internal/geom"
	"sketchpad/internal/state"
)

// Canvas units to millimeters on an A4 page.
const scale = 3.0

// pdfRenderer adapts a gofpdf page to the document's renderer boundary.
type pdfRenderer struct {
	pdf *gofpdf.Fpdf
}

func (r *pdfRenderer) setPen(c color.Color, width float32) {
	cr, cg, cb, _ := c.RGBA()
	r.pdf.SetDrawColor(int(cr>>8), int(cg>>8), int(cb>>8))
	r.pdf.SetLineWidth(float64(width) / scale)
}

func (r *pdfRenderer) Polyline(pts []geom.Point, c color.Color, width float32) {
	if len(pts) < 2 {
		return
	}
	r.setPen(c, width)
	for i := 1; i < len(pts); i++ {
		r.pdf.Line(
			float64(pts[i-1].X)/scale, float64(pts[i-1].Y)/scale,
			float64(pts[i].X)/scale, float64(pts[i].Y)/scale,
		)
	}
}

func (r *pdfRenderer) Line(a, b geom.Point, c color.Color, width float32) {
	r.setPen(c, width)
	r.pdf.Line(
		float64(a.X)/scale, float64(a.Y)/scale,
		float64(b.X)/scale, float64(b.Y)/scale,
	)
}

func (r *pdfRenderer) Ellipse(e geom.Ellipse, c color.Color, width float32) {
	r.setPen(c, width)
	r.pdf.Ellipse(
		float64(e.Center.X)/scale, float64(e.Center.Y)/scale,
		float64(e.RadiusX)/scale, float64(e.RadiusY)/scale,
		0, "D",
	)
}

func render(doc *state.Document) *gofpdf.Fpdf {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()
	doc.Draw(&pdfRenderer{pdf: p})
	return p
}

// PDF writes the document to a PDF file at path.
func PDF(path string, doc *state.Document) error {
	if err := render(doc).OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	return nil
}

// Write streams the document as PDF to w.
func Write(w io.Writer, doc *state.Document) error {
	if err := render(doc).Output(w); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	return nil
}
