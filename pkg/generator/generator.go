// Package generator produces SOP templates section by section, driving an
// LLM completer with compliance-aware prompts. Failed or invalid sections
// fall back to deterministic content so a generation run always yields a
// usable document.
package generator

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nextlevelsbs/sopbuilder/pkg/brand"
	"github.com/nextlevelsbs/sopbuilder/pkg/compliance"
	"github.com/nextlevelsbs/sopbuilder/pkg/provider"
)

// Request describes one SOP to generate. TemplateType selects the compliance
// data (restaurant, healthcare, ...), TemplateID the catalog entry it came
// from.
type Request struct {
	TemplateID   string
	TemplateType string

	CompanyName string
	Location    string
	Industry    string

	Options []string

	Brand *brand.Config
}

type Result struct {
	Metadata Metadata `json:"metadata"`

	Sections map[string]Section `json:"sections"`

	Stats Stats `json:"generation_stats"`

	ComplianceFeatures  ComplianceFeatures   `json:"compliance_features"`
	InteractiveElements []InteractiveElement `json:"interactive_elements"`
}

type Metadata struct {
	Type    string `json:"type"`
	Version string `json:"version"`

	GeneratedAt time.Time `json:"generated_date"`

	ComplianceStandards []string `json:"compliance_standards"`

	CompanyName string `json:"company_name,omitempty"`
	Location    string `json:"location,omitempty"`

	GenerationMethod string `json:"generation_method"`

	Brand *brand.Config `json:"brand_config,omitempty"`
}

type Section struct {
	Content string `json:"content"`

	Order    int  `json:"order"`
	Required bool `json:"required"`

	GeneratedAt time.Time `json:"generated_at"`

	Cached bool   `json:"cached"`
	Error  string `json:"error,omitempty"`
}

type Stats struct {
	TotalSections      int `json:"total_sections"`
	SuccessfulSections int `json:"successful_sections"`
	FailedSections     int `json:"failed_sections"`
	CachedSections     int `json:"cached_sections"`

	GenerationTimeSeconds float64 `json:"generation_time_seconds"`
}

type ComplianceFeatures struct {
	AuditTrail          AuditTrail          `json:"audit_trail"`
	VersionControl      VersionControl      `json:"version_control"`
	RegulatoryLinks     map[string]string   `json:"regulatory_links"`
	UpdateNotifications UpdateNotifications `json:"update_notifications"`
}

type AuditTrail struct {
	Enabled bool     `json:"enabled"`
	Fields  []string `json:"fields"`
}

type VersionControl struct {
	Enabled       bool `json:"enabled"`
	AutoIncrement bool `json:"auto_increment"`
}

type UpdateNotifications struct {
	Enabled   bool   `json:"enabled"`
	Frequency string `json:"frequency"`
}

type InteractiveElement struct {
	Type string `json:"type"`

	Data  string `json:"data,omitempty"`
	Label string `json:"label,omitempty"`

	Section string   `json:"section,omitempty"`
	Items   []string `json:"items,omitempty"`
}

type Generator struct {
	completer  provider.Completer
	compliance *compliance.Set

	cache *Cache

	maxTokens   int
	temperature float32

	concurrency int
}

type Option func(*Generator)

func WithCache(cache *Cache) Option {
	return func(g *Generator) {
		g.cache = cache
	}
}

func WithMaxTokens(val int) Option {
	return func(g *Generator) {
		g.maxTokens = val
	}
}

func WithTemperature(val float32) Option {
	return func(g *Generator) {
		g.temperature = val
	}
}

func WithConcurrency(val int) Option {
	return func(g *Generator) {
		g.concurrency = val
	}
}

// New creates a generator. A nil completer switches to deterministic built-in
// content, so the service stays usable without any provider configured.
func New(completer provider.Completer, set *compliance.Set, options ...Option) *Generator {
	g := &Generator{
		completer:  completer,
		compliance: set,

		maxTokens:   2000,
		temperature: 0.7,

		concurrency: 2,
	}

	for _, option := range options {
		option(g)
	}

	return g
}

// WithCompleter returns a copy of the generator bound to a different
// completer, for requests that pin a specific provider.
func (g *Generator) WithCompleter(completer provider.Completer) *Generator {
	clone := *g
	clone.completer = completer

	return &clone
}

// Generate produces the full template. Sections run concurrently; a section
// that fails falls back to placeholder content and is counted in the stats
// rather than failing the run. Only context cancellation aborts.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	sections := g.sections(req.TemplateType)
	data, _ := g.compliance.Industry(req.TemplateType)

	results := make([]sectionResult, len(sections))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency)

	for i, section := range sections {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = g.generateSection(ctx, req, data, section)

			return results[i].ctxErr
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		Metadata: Metadata{
			Type:    req.TemplateType,
			Version: "1.0",

			GeneratedAt: time.Now().UTC(),

			ComplianceStandards: data.Standards,

			CompanyName: req.CompanyName,
			Location:    req.Location,

			GenerationMethod: g.method(),

			Brand: req.Brand,
		},

		Sections: make(map[string]Section, len(sections)),

		Stats: Stats{
			TotalSections: len(sections),
		},

		ComplianceFeatures:  complianceFeatures(data),
		InteractiveElements: interactiveElements(data),
	}

	for i, section := range sections {
		r := results[i]

		result.Sections[section.Name] = Section{
			Content: r.content,

			Order:    section.Order,
			Required: section.Required,

			GeneratedAt: time.Now().UTC(),

			Cached: r.cached,
			Error:  r.errText,
		}

		if r.errText != "" {
			result.Stats.FailedSections++
		} else {
			result.Stats.SuccessfulSections++
		}

		if r.cached {
			result.Stats.CachedSections++
		}
	}

	result.Stats.GenerationTimeSeconds = time.Since(start).Seconds()

	return result, nil
}

type sectionResult struct {
	content string

	cached  bool
	errText string

	ctxErr error
}

func (g *Generator) generateSection(ctx context.Context, req Request, data compliance.IndustryData, section compliance.Section) sectionResult {
	prompt := sectionPrompt(section.Name, req, data)

	if content, ok := g.cache.Get(req.TemplateType, section.Name, prompt); ok {
		return sectionResult{content: content, cached: true}
	}

	if g.completer == nil {
		content := hardcodedContent(section.Name, req.TemplateType)
		g.cache.Set(req.TemplateType, section.Name, prompt, content)

		return sectionResult{content: content}
	}

	content, err := g.complete(ctx, prompt)

	if err != nil {
		if ctx.Err() != nil {
			return sectionResult{ctxErr: ctx.Err()}
		}

		fallback := fallbackContent(section.Name, req.TemplateType)
		g.cache.Set(req.TemplateType, section.Name, prompt, fallback)

		return sectionResult{content: fallback, errText: err.Error()}
	}

	if !validContent(section.Name, content) {
		content = fallbackContent(section.Name, req.TemplateType)
	}

	g.cache.Set(req.TemplateType, section.Name, prompt, content)

	return sectionResult{content: content}
}

func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	completion, err := g.completer.Complete(ctx,
		[]provider.Message{
			provider.SystemMessage(systemPrompt),
			provider.UserMessage(prompt),
		},
		&provider.CompleteOptions{
			MaxTokens:   &g.maxTokens,
			Temperature: &g.temperature,
		})

	if err != nil {
		return "", err
	}

	return completion.Message.Text(), nil
}

func (g *Generator) method() string {
	if g.completer == nil {
		return "hardcoded"
	}

	return "ai_generated"
}

// sections returns the ordered section list for a template type, falling
// back to the standard four-section layout when the compliance data has none.
func (g *Generator) sections(templateType string) []compliance.Section {
	data, err := g.compliance.Industry(templateType)

	sections := data.Sections

	if err != nil || len(sections) == 0 {
		sections = []compliance.Section{
			{Name: "Introduction", Order: 1, Required: true},
			{Name: "Procedures", Order: 2, Required: true},
			{Name: "Compliance Requirements", Order: 3, Required: true},
			{Name: "Documentation", Order: 4, Required: true},
		}
	}

	sections = append([]compliance.Section(nil), sections...)

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})

	return sections
}

func complianceFeatures(data compliance.IndustryData) ComplianceFeatures {
	links := data.RegulatoryLinks

	if links == nil {
		links = map[string]string{}
	}

	return ComplianceFeatures{
		AuditTrail: AuditTrail{
			Enabled: true,
			Fields:  []string{"user", "timestamp", "action", "section"},
		},

		VersionControl: VersionControl{
			Enabled:       true,
			AutoIncrement: true,
		},

		RegulatoryLinks: links,

		UpdateNotifications: UpdateNotifications{
			Enabled:   true,
			Frequency: "monthly",
		},
	}
}

func interactiveElements(data compliance.IndustryData) []InteractiveElement {
	elements := []InteractiveElement{}

	names := make([]string, 0, len(data.RegulatoryLinks))

	for name := range data.RegulatoryLinks {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		elements = append(elements, InteractiveElement{
			Type:  "qr_code",
			Data:  data.RegulatoryLinks[name],
			Label: "Scan for latest " + name + " requirements",
		})
	}

	return elements
}
