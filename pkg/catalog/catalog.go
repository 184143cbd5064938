// Package catalog holds the SOP template definitions the API serves.
// Templates are data records (sections, compliance standards, customization
// options), not executable templates: the generator turns them into prompts.
package catalog

import (
	"errors"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

var ErrNotFound = errors.New("template not found")

type Option struct {
	ID       string `json:"id" yaml:"id"`
	Label    string `json:"label" yaml:"label"`
	Default  bool   `json:"default" yaml:"default"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
}

type Template struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`

	Industry string `json:"industry" yaml:"industry"`
	Icon     string `json:"icon" yaml:"icon"`

	EstimatedTime string   `json:"estimated_time" yaml:"estimated_time"`
	Compliance    []string `json:"compliance" yaml:"compliance"`

	CustomOptions []Option `json:"custom_options" yaml:"custom_options"`

	ContentSections        []string          `json:"content_sections,omitempty" yaml:"content_sections,omitempty"`
	RegulatoryRequirements map[string]string `json:"regulatory_requirements,omitempty" yaml:"regulatory_requirements,omitempty"`
}

type Industry struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`

	TemplateCount       int      `json:"template_count" yaml:"template_count"`
	ComplianceStandards []string `json:"compliance_standards" yaml:"compliance_standards"`
}

type Catalog struct {
	templates  map[string]Template
	industries map[string]Industry
}

// New returns a catalog with the built-in templates and industries
func New() *Catalog {
	c := &Catalog{
		templates:  map[string]Template{},
		industries: map[string]Industry{},
	}

	for _, t := range defaultTemplates() {
		c.templates[t.ID] = t
	}

	for _, i := range defaultIndustries() {
		c.industries[i.ID] = i
	}

	return c
}

// Parse loads a catalog overlay from a YAML file. Templates and industries in
// the file replace built-ins with the same id; the file may also add new ones.
// Environment variables in the file are expanded before decoding.
func Parse(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var file struct {
		Templates  []Template `yaml:"templates"`
		Industries []Industry `yaml:"industries"`
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	c := New()

	for _, t := range file.Templates {
		if t.ID == "" {
			return nil, errors.New("template without id")
		}

		c.templates[t.ID] = t
	}

	for _, i := range file.Industries {
		if i.ID == "" {
			return nil, errors.New("industry without id")
		}

		c.industries[i.ID] = i
	}

	return c, nil
}

// Templates lists templates sorted by id, optionally filtered by industry
func (c *Catalog) Templates(industry string) []Template {
	var result []Template

	for _, t := range c.templates {
		if industry != "" && t.Industry != industry {
			continue
		}

		result = append(result, t)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Template returns the template with the given id
func (c *Catalog) Template(id string) (Template, error) {
	t, ok := c.templates[id]

	if !ok {
		return Template{}, ErrNotFound
	}

	return t, nil
}

// Industries lists industries sorted by id
func (c *Catalog) Industries() []Industry {
	var result []Industry

	for _, i := range c.industries {
		result = append(result, i)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Industry returns the industry with the given id
func (c *Catalog) Industry(id string) (Industry, bool) {
	i, ok := c.industries[id]
	return i, ok
}
