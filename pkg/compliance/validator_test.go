package compliance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateUnknownIndustry(t *testing.T) {
	s := New()

	_, err := s.Validate(map[string]any{}, "aviation", []string{"FAA"})
	require.ErrorIs(t, err, ErrUnknownIndustry)
}

func TestValidateScoresMissingRequirements(t *testing.T) {
	s := New()

	template := map[string]any{
		"sections": map[string]any{
			"Procedures": "Wash hands before handling food. Monitor temperature of all walk-in coolers with a calibrated thermometer. Clean and sanitize all surfaces.",
		},
	}

	result, err := s.Validate(template, "restaurant", []string{"FDA Food Code"})
	require.NoError(t, err)

	// allergen management is not mentioned
	require.False(t, result.Compliant)
	require.Len(t, result.MissingRequirements, 1)
	require.Contains(t, result.MissingRequirements[0], "Allergen")
	require.NotEmpty(t, result.Recommendations)

	// 11 requirements total for restaurant, one missing
	require.InDelta(t, float64(10)/float64(11)*100, result.ComplianceScore, 0.01)
}

func TestValidateCitations(t *testing.T) {
	s := New()

	template := map[string]any{
		"content": "Hand washing and hygiene protocols are enforced at every shift change.",
	}

	result, err := s.Validate(template, "restaurant", []string{"FDA Food Code"})
	require.NoError(t, err)
	require.NotEmpty(t, result.RegulatoryCitations)

	citation := result.RegulatoryCitations[0]
	require.Equal(t, "FDA Food Code", citation.Regulation)
	require.Equal(t, "2-301.11", citation.Section)
	require.Equal(t, "Hand washing procedures", citation.Requirement)
	require.Equal(t, "https://www.fda.gov/food/fda-food-code", citation.CitationURL)
}

func TestValidateIgnoresUnknownRegulation(t *testing.T) {
	s := New()

	result, err := s.Validate(map[string]any{}, "technology", []string{"PCI-DSS"})
	require.NoError(t, err)
	require.True(t, result.Compliant)
	require.Empty(t, result.MissingRequirements)
}

func TestSupports(t *testing.T) {
	s := New()

	ok, requirements, err := s.Supports("healthcare", "hipaa")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, requirements, 4)

	ok, _, err = s.Supports("healthcare", "SOX")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStandards(t *testing.T) {
	s := New()

	all := s.Standards("")
	require.NotEmpty(t, all)

	restaurant := s.Standards("restaurant")
	require.Len(t, restaurant, 4)

	for _, standard := range restaurant {
		require.Equal(t, "restaurant", standard.Industry)
	}
}
