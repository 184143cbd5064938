// Package compliance holds per-industry regulatory data and validates SOP
// content against it. Matching is keyword-based: good enough to flag missing
// topics, not a substitute for legal review.
package compliance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnknownIndustry = errors.New("unknown industry")

type IndustryData struct {
	Standards       []string            `json:"standards" yaml:"standards"`
	RegulatoryLinks map[string]string   `json:"regulatory_links" yaml:"regulatory_links"`
	Requirements    map[string][]string `json:"requirements" yaml:"requirements"`

	Sections []Section `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// Section describes one SOP section the generator should produce for
// templates of this industry.
type Section struct {
	Name     string `json:"name" yaml:"name"`
	Order    int    `json:"order" yaml:"order"`
	Required bool   `json:"required" yaml:"required"`
}

type Standard struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Industry    string `json:"industry"`

	Requirements []string `json:"requirements"`
}

type Citation struct {
	Regulation  string `json:"regulation"`
	Section     string `json:"section"`
	Requirement string `json:"requirement"`
	CitationURL string `json:"citation_url,omitempty"`
}

type ValidationResult struct {
	Compliant bool `json:"compliant"`

	MissingRequirements []string   `json:"missing_requirements"`
	Recommendations     []string   `json:"recommendations"`
	RegulatoryCitations []Citation `json:"regulatory_citations"`

	ComplianceScore float64 `json:"compliance_score"`
}

type Set struct {
	industries map[string]IndustryData
}

// New returns a set with the built-in compliance data
func New() *Set {
	s := &Set{
		industries: map[string]IndustryData{},
	}

	for industry, data := range defaultData() {
		s.industries[industry] = data
	}

	return s
}

// ParseDir loads per-industry YAML files from dir, overlaying built-ins. The
// file stem names the industry (restaurant.yaml, healthcare.yaml, ...).
func ParseDir(dir string) (*Set, error) {
	s := New()

	entries, err := os.ReadDir(dir)

	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := filepath.Ext(entry.Name())

		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))

		if err != nil {
			return nil, err
		}

		data = []byte(os.ExpandEnv(string(data)))

		var industry IndustryData

		if err := yaml.Unmarshal(data, &industry); err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name(), err)
		}

		s.industries[strings.TrimSuffix(entry.Name(), ext)] = industry
	}

	return s, nil
}

// Industries lists industry ids sorted alphabetically
func (s *Set) Industries() []string {
	var result []string

	for industry := range s.industries {
		result = append(result, industry)
	}

	sort.Strings(result)

	return result
}

// Industry returns the compliance data for an industry
func (s *Set) Industry(id string) (IndustryData, error) {
	data, ok := s.industries[id]

	if !ok {
		return IndustryData{}, ErrUnknownIndustry
	}

	return data, nil
}

// Standards lists standards, optionally filtered by industry
func (s *Set) Standards(industry string) []Standard {
	var result []Standard

	for id, data := range s.industries {
		if industry != "" && id != industry {
			continue
		}

		for _, name := range data.Standards {
			result = append(result, Standard{
				ID:          strings.ToLower(strings.ReplaceAll(name, " ", "_")),
				Name:        name,
				Description: fmt.Sprintf("%s compliance requirements for %s", name, id),
				Industry:    id,

				Requirements: data.Requirements[requirementKey(name)],
			})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Industry != result[j].Industry {
			return result[i].Industry < result[j].Industry
		}

		return result[i].ID < result[j].ID
	})

	return result
}

// Supports reports whether a regulation has requirement data for an industry
func (s *Set) Supports(industry, regulation string) (bool, []string, error) {
	data, err := s.Industry(industry)

	if err != nil {
		return false, nil, err
	}

	requirements, ok := data.Requirements[requirementKey(regulation)]

	return ok, requirements, nil
}

func requirementKey(regulation string) string {
	return strings.ToUpper(strings.ReplaceAll(regulation, " ", "_"))
}
