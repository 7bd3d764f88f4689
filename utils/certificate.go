package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"yogveda/config"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

// Certificate layout variants
const (
	LayoutDesktop = "desktop"
	LayoutMobile  = "mobile"
)

type textStyle struct {
	size  float64
	style string // "", "B", "I"
	r     int
	g     int
	b     int
}

// certLayout fixes page geometry and the vertical position of each text block
type certLayout struct {
	pageW        float64
	pageH        float64
	contentWidth float64
	titleY       float64
	bodyY        float64
	nameY        float64
	workshopY    float64
	dateY        float64
	signatureY   float64
}

// Six fixed styles: title, body, name, workshop, date, signature
var (
	styleTitle     = textStyle{size: 34, style: "B", r: 46, g: 74, b: 61}
	styleBody      = textStyle{size: 14, style: "", r: 90, g: 90, b: 90}
	styleName      = textStyle{size: 28, style: "B", r: 201, g: 162, b: 39}
	styleWorkshop  = textStyle{size: 20, style: "I", r: 46, g: 74, b: 61}
	styleDate      = textStyle{size: 12, style: "", r: 120, g: 120, b: 120}
	styleSignature = textStyle{size: 16, style: "I", r: 46, g: 74, b: 61}
)

var layouts = map[string]certLayout{
	LayoutDesktop: {
		pageW: 1123, pageH: 794, contentWidth: 700,
		titleY: 180, bodyY: 280, nameY: 340, workshopY: 430, dateY: 510, signatureY: 640,
	},
	LayoutMobile: {
		pageW: 595, pageH: 842, contentWidth: 440,
		titleY: 200, bodyY: 300, nameY: 360, workshopY: 450, dateY: 530, signatureY: 680,
	},
}

// NewCertificateSerial mints a short human-readable serial printed on the
// certificate and echoed to the caller.
func NewCertificateSerial() string {
	return "YV-" + strings.ToUpper(uuid.NewString()[:8])
}

// CertificateFileName derives the deterministic output file name for a
// certificate. Two enrollments sharing a recipient name are told apart only
// by the enrollment id suffix.
func CertificateFileName(name string, enrollmentID uint, layout string) string {
	sanitized := strings.Join(strings.Fields(strings.TrimSpace(name)), "_")
	if sanitized == "" {
		sanitized = "certificate"
	}
	return fmt.Sprintf("%s_%d_%s.pdf", sanitized, enrollmentID, layout)
}

// GenerateCertificate renders a single-page completion certificate on top of
// the layout's background template and returns the path of the written PDF.
func GenerateCertificate(name, workshopTitle string, enrollmentID uint, serial, layout string) (string, error) {
	l, ok := layouts[layout]
	if !ok {
		return "", fmt.Errorf("unknown certificate layout: %s", layout)
	}

	template := config.AppConfig.CertTemplateDesktop
	if layout == LayoutMobile {
		template = config.AppConfig.CertTemplateMobile
	}
	if _, err := os.Stat(template); err != nil {
		return "", fmt.Errorf("certificate template not accessible: %w", err)
	}

	if err := os.MkdirAll(config.AppConfig.CertificateDir, 0755); err != nil {
		return "", fmt.Errorf("create certificate directory: %w", err)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: l.pageW, Ht: l.pageH},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Background image fills the page
	pdf.ImageOptions(template, 0, 0, l.pageW, l.pageH, false,
		gofpdf.ImageOptions{ImageType: "", ReadDpi: true}, 0, "")

	writeLine := func(text string, y float64, s textStyle) {
		pdf.SetFont("Helvetica", s.style, s.size)
		pdf.SetTextColor(s.r, s.g, s.b)
		pdf.SetXY((l.pageW-l.contentWidth)/2, y)
		pdf.CellFormat(l.contentWidth, s.size+6, text, "", 0, "C", false, 0, "")
	}

	writeLine("Certificate of Completion", l.titleY, styleTitle)
	writeLine("This certificate is proudly presented to", l.bodyY, styleBody)
	writeLine(name, l.nameY, styleName)
	writeLine(fmt.Sprintf("for completing \"%s\"", workshopTitle), l.workshopY, styleWorkshop)
	writeLine(time.Now().Format("02 January 2006"), l.dateY, styleDate)
	writeLine("Yogveda Studio", l.signatureY, styleSignature)
	if serial != "" {
		writeLine("Certificate No. "+serial, l.signatureY+40, styleDate)
	}

	outPath := filepath.Join(config.AppConfig.CertificateDir, CertificateFileName(name, enrollmentID, layout))
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return "", fmt.Errorf("write certificate: %w", err)
	}

	return outPath, nil
}
