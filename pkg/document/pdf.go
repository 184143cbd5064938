package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/nextlevelsbs/sopbuilder/pkg/brand"
	"github.com/nextlevelsbs/sopbuilder/pkg/generator"
)

// A4 portrait layout constants, points from the top-left corner
const (
	pageWidth  = 595.0
	pageHeight = 842.0

	marginX = 56.0
	topY    = 64.0
	bottomY = 780.0

	bodySize    = 10
	lineHeight  = 14.0
	maxLineLen  = 88
	footerY     = 812.0
	footerColor = "#95A5A6"
)

// Renderer lays out a generation result as a PDF via pdfcpu's create API.
// Output depends only on the result and the brand configuration, so the same
// input renders the same document.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the PDF bytes for a generation result
func (r *Renderer) Render(title string, result *generator.Result, config brand.Config) ([]byte, error) {
	spec, err := json.Marshal(r.buildSpec(title, result, config))

	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	if err := api.Create(nil, bytes.NewReader(spec), &buf, nil); err != nil {
		return nil, fmt.Errorf("create pdf: %w", err)
	}

	return buf.Bytes(), nil
}

type createSpec struct {
	Paper  string `json:"paper"`
	Origin string `json:"origin"`

	Pages map[string]createPage `json:"pages"`
}

type createPage struct {
	Content createContent `json:"content"`
}

type createContent struct {
	Text []textBox `json:"text"`
}

type textBox struct {
	Value string `json:"value"`

	Position [2]float64 `json:"position"`

	Font fontSpec `json:"font"`
}

type fontSpec struct {
	Name string `json:"name"`
	Size int    `json:"size"`

	Color string `json:"color,omitempty"`
}

// pager accumulates text boxes and breaks pages when the cursor runs off
// the content area.
type pager struct {
	config brand.Config

	pages []createPage

	cursor float64
}

func (p *pager) newPage() {
	p.pages = append(p.pages, createPage{})
	p.cursor = topY
}

func (p *pager) advance(height float64) {
	if p.cursor+height > bottomY {
		p.newPage()
	}
}

func (p *pager) add(box textBox) {
	current := &p.pages[len(p.pages)-1]
	current.Content.Text = append(current.Content.Text, box)
}

func (p *pager) text(val string, size int, color, font string) {
	for _, line := range wrapText(val, maxLineLen) {
		height := float64(size) + 4

		p.advance(height)

		p.add(textBox{
			Value: line,

			Position: [2]float64{marginX, p.cursor},

			Font: fontSpec{
				Name:  font,
				Size:  size,
				Color: color,
			},
		})

		p.cursor += height
	}
}

func (p *pager) gap(height float64) {
	p.cursor += height
}

func (r *Renderer) buildSpec(title string, result *generator.Result, config brand.Config) createSpec {
	p := &pager{config: config}

	r.coverPage(p, title, result, config)

	for _, name := range orderedSections(result) {
		section := result.Sections[name]

		p.newPage()

		p.text(name, 18, config.PrimaryColor, "Helvetica-Bold")
		p.gap(10)

		r.sectionBody(p, section.Content, config)
	}

	r.compliancePage(p, result, config)

	spec := createSpec{
		Paper:  "A4",
		Origin: "upperLeft",

		Pages: map[string]createPage{},
	}

	for i, page := range p.pages {
		if config.FooterText != "" {
			page.Content.Text = append(page.Content.Text, textBox{
				Value: config.FooterText,

				Position: [2]float64{marginX, footerY},

				Font: fontSpec{
					Name:  config.FontFamily,
					Size:  8,
					Color: footerColor,
				},
			})
		}

		spec.Pages[fmt.Sprintf("%d", i+1)] = page
	}

	return spec
}

func (r *Renderer) coverPage(p *pager, title string, result *generator.Result, config brand.Config) {
	p.newPage()

	p.gap(160)

	p.text(config.CompanyName, 28, config.PrimaryColor, "Helvetica-Bold")
	p.gap(8)

	if config.Tagline != "" {
		p.text(config.Tagline, 12, config.SecondaryColor, config.FontFamily)
	}

	p.gap(60)

	p.text(title, 22, config.PrimaryColor, "Helvetica-Bold")
	p.gap(20)

	p.text("Standard Operating Procedure", 14, config.SecondaryColor, config.FontFamily)
	p.gap(40)

	meta := result.Metadata

	p.text("Version: "+meta.Version, bodySize, "#000000", config.FontFamily)
	p.text("Generated: "+meta.GeneratedAt.Format("January 2, 2006"), bodySize, "#000000", config.FontFamily)

	if len(meta.ComplianceStandards) > 0 {
		p.text("Compliance: "+strings.Join(meta.ComplianceStandards, ", "), bodySize, "#000000", config.FontFamily)
	}
}

func (r *Renderer) sectionBody(p *pager, content string, config brand.Config) {
	numbered := 0

	for _, b := range parseMarkdown(content) {
		switch b.kind {
		case blockHeading:
			numbered = 0

			size := 16 - 2*b.level

			if size < bodySize {
				size = bodySize
			}

			p.gap(8)
			p.text(b.text, size, config.SecondaryColor, "Helvetica-Bold")
			p.gap(4)

		case blockBullet:
			numbered = 0

			p.text("• "+b.text, bodySize, "#000000", config.FontFamily)

		case blockNumbered:
			numbered++

			p.text(fmt.Sprintf("%d. %s", numbered, b.text), bodySize, "#000000", config.FontFamily)

		default:
			numbered = 0

			p.text(b.text, bodySize, "#000000", config.FontFamily)
			p.gap(6)
		}
	}
}

func (r *Renderer) compliancePage(p *pager, result *generator.Result, config brand.Config) {
	links := result.ComplianceFeatures.RegulatoryLinks

	if len(links) == 0 && len(result.InteractiveElements) == 0 {
		return
	}

	p.newPage()

	p.text("Compliance & Regulatory Features", 18, config.PrimaryColor, "Helvetica-Bold")
	p.gap(16)

	if result.ComplianceFeatures.AuditTrail.Enabled {
		p.text("Audit Trail", 13, config.SecondaryColor, "Helvetica-Bold")
		p.text("Tracked fields: "+strings.Join(result.ComplianceFeatures.AuditTrail.Fields, ", "), bodySize, "#000000", config.FontFamily)
		p.gap(10)
	}

	if len(links) > 0 {
		p.text("Regulatory Resources", 13, config.SecondaryColor, "Helvetica-Bold")

		names := make([]string, 0, len(links))

		for name := range links {
			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			p.text(name+": "+links[name], bodySize, "#000000", config.FontFamily)
		}
	}
}

func orderedSections(result *generator.Result) []string {
	names := make([]string, 0, len(result.Sections))

	for name := range result.Sections {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		a, b := result.Sections[names[i]], result.Sections[names[j]]

		if a.Order != b.Order {
			return a.Order < b.Order
		}

		return names[i] < names[j]
	})

	return names
}

// wrapText breaks a line on word boundaries at a character budget. Core PDF
// fonts are not metric-measured here, the budget is sized for 10pt Helvetica
// on A4.
func wrapText(val string, limit int) []string {
	words := strings.Fields(val)

	if len(words) == 0 {
		return nil
	}

	var lines []string
	var current strings.Builder

	for _, word := range words {
		if current.Len() > 0 && current.Len()+1+len(word) > limit {
			lines = append(lines, current.String())
			current.Reset()
		}

		if current.Len() > 0 {
			current.WriteByte(' ')
		}

		current.WriteString(word)
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	return lines
}
