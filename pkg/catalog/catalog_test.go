package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := New()

	templates := c.Templates("")
	require.Len(t, templates, 5)

	template, err := c.Template("restaurant-opening")
	require.NoError(t, err)
	require.Equal(t, "restaurant", template.Industry)
	require.NotEmpty(t, template.CustomOptions)
	require.NotEmpty(t, template.ContentSections)

	_, err = c.Template("unknown")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestIndustryFilter(t *testing.T) {
	c := New()

	healthcare := c.Templates("healthcare")
	require.Len(t, healthcare, 2)

	for _, template := range healthcare {
		require.Equal(t, "healthcare", template.Industry)
	}

	require.Empty(t, c.Templates("aviation"))
	require.Len(t, c.Industries(), 3)
}

func TestParseOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")

	data := `
templates:
  - id: restaurant-opening
    title: Custom Opening
    industry: restaurant
  - id: warehouse-receiving
    title: Warehouse Receiving
    industry: logistics
`

	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	c, err := Parse(path)
	require.NoError(t, err)

	// overlay replaces the built-in record
	template, err := c.Template("restaurant-opening")
	require.NoError(t, err)
	require.Equal(t, "Custom Opening", template.Title)

	// and adds new ones without dropping other built-ins
	_, err = c.Template("warehouse-receiving")
	require.NoError(t, err)

	_, err = c.Template("it-onboarding")
	require.NoError(t, err)
}

func TestParseRejectsMissingID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")

	require.NoError(t, os.WriteFile(path, []byte("templates:\n  - title: No ID\n"), 0600))

	_, err := Parse(path)
	require.Error(t, err)
}
