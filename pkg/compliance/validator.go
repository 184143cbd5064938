package compliance

import (
	"encoding/json"
	"math"
	"strings"
)

// Validate checks template content against the requested regulations for an
// industry. Met requirements produce citations, unmet ones land in
// MissingRequirements; the score is met/total across all industry
// requirements.
func (s *Set) Validate(templateData map[string]any, industry string, regulations []string) (*ValidationResult, error) {
	data, err := s.Industry(industry)

	if err != nil {
		return nil, err
	}

	text := flatten(templateData)

	var missing []string
	var citations []Citation

	for _, regulation := range regulations {
		requirements, ok := data.Requirements[requirementKey(regulation)]

		if !ok {
			continue
		}

		for _, requirement := range requirements {
			if !requirementMet(requirement, text) {
				missing = append(missing, regulation+": "+requirement)
				continue
			}

			citations = append(citations, Citation{
				Regulation:  regulation,
				Section:     citationSection(requirement),
				Requirement: strings.TrimSpace(strings.SplitN(requirement, "(", 2)[0]),
				CitationURL: data.RegulatoryLinks[strings.Fields(regulation)[0]],
			})
		}
	}

	var recommendations []string

	if len(missing) > 0 {
		recommendations = []string{
			"Consider adding missing regulatory requirements",
			"Review industry-specific compliance standards",
			"Consult with compliance experts for validation",
		}
	}

	total := 0

	for _, requirements := range data.Requirements {
		total += len(requirements)
	}

	score := 100.0

	if total > 0 {
		score = float64(total-len(missing)) / float64(total) * 100
	}

	return &ValidationResult{
		Compliant: len(missing) == 0,

		MissingRequirements: missing,
		Recommendations:     recommendations,
		RegulatoryCitations: citations,

		ComplianceScore: math.Round(score*100) / 100,
	}, nil
}

// citationSection extracts the parenthesized citation from a requirement
// like "Hand washing procedures (2-301.11)".
func citationSection(requirement string) string {
	open := strings.LastIndex(requirement, "(")

	if open < 0 {
		return "General"
	}

	return strings.TrimSuffix(requirement[open+1:], ")")
}

// requirementMet does keyword matching of a requirement against the
// flattened template text.
func requirementMet(requirement, text string) bool {
	lower := strings.ToLower(requirement)

	var terms []string

	switch {
	case strings.Contains(lower, "hand washing"), strings.Contains(lower, "hand hygiene"):
		terms = []string{"hand", "wash", "hygiene"}

	case strings.Contains(lower, "temperature"):
		terms = []string{"temperature", "monitoring", "thermometer"}

	case strings.Contains(lower, "allergen"):
		terms = []string{"allergen", "allergy", "food safety"}

	case strings.Contains(lower, "cleaning"):
		terms = []string{"clean", "sanitiz", "disinfect"}

	case strings.Contains(lower, "privacy"):
		terms = []string{"privacy", "confidential", "protected"}

	case strings.Contains(lower, "security"):
		terms = []string{"security", "access", "password"}

	default:
		fields := strings.Fields(lower)

		if len(fields) > 3 {
			fields = fields[:3]
		}

		terms = fields
	}

	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}

	return false
}

// flatten renders arbitrary template data to lowercase text for matching
func flatten(data map[string]any) string {
	raw, _ := json.Marshal(data)
	return strings.ToLower(string(raw))
}
