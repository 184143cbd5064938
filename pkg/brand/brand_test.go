package brand

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dir := t.TempDir()

	store, err := NewStore(filepath.Join(dir, "config"), filepath.Join(dir, "uploads"))
	require.NoError(t, err)

	return store
}

func TestConfigDefaults(t *testing.T) {
	store := newTestStore(t)

	config := store.Config()
	require.Equal(t, DefaultConfig(), config)
}

func TestUpdatePersists(t *testing.T) {
	store := newTestStore(t)

	config := DefaultConfig()
	config.CompanyName = "Acme Diner"
	config.PrimaryColor = "#112233"

	require.NoError(t, store.Update(config))

	loaded := store.Config()
	require.Equal(t, "Acme Diner", loaded.CompanyName)
	require.Equal(t, "#112233", loaded.PrimaryColor)
}

func TestUpdateValidation(t *testing.T) {
	store := newTestStore(t)

	config := DefaultConfig()
	config.PrimaryColor = "2C3E50"

	err := store.Update(config)
	require.ErrorContains(t, err, "primary_color")

	config = DefaultConfig()
	config.CompanyName = " x "

	err = store.Update(config)
	require.ErrorContains(t, err, "at least 2 characters")
}

func TestSaveLogo(t *testing.T) {
	store := newTestStore(t)

	name, err := store.SaveLogo("logo.PNG", "acme", strings.NewReader("not really a png"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(name, "acme_"))
	require.True(t, strings.HasSuffix(name, ".png"))

	require.Equal(t, name, store.Config().LogoPath)

	path, contentType, err := store.Logo(name)
	require.NoError(t, err)
	require.Equal(t, "image/png", contentType)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "not really a png", string(data))
}

func TestSaveLogoRejectsType(t *testing.T) {
	store := newTestStore(t)

	_, err := store.SaveLogo("logo.gif", "", strings.NewReader("gif"))
	require.ErrorIs(t, err, ErrUnsupportedLogoType)
}

func TestSaveLogoRejectsOversize(t *testing.T) {
	store := newTestStore(t)

	_, err := store.SaveLogo("logo.png", "", strings.NewReader(strings.Repeat("x", MaxLogoSize+1)))
	require.ErrorIs(t, err, ErrLogoTooLarge)
}

func TestDeleteLogo(t *testing.T) {
	store := newTestStore(t)

	name, err := store.SaveLogo("logo.svg", "", strings.NewReader("<svg/>"))
	require.NoError(t, err)

	require.NoError(t, store.DeleteLogo())
	require.Empty(t, store.Config().LogoPath)

	_, _, err = store.Logo(name)
	require.ErrorIs(t, err, ErrLogoNotFound)

	// deleting again is a no-op
	require.NoError(t, store.DeleteLogo())
}

func TestPreview(t *testing.T) {
	store := newTestStore(t)

	preview := store.Preview()
	require.Equal(t, "#2C3E50", preview.Elements.Header.BackgroundColor)
	require.Equal(t, "#FFFFFF", preview.Elements.Button.TextColor)
	require.Equal(t, "#E74C3C", preview.Elements.Accent.Color)
}

func TestReset(t *testing.T) {
	store := newTestStore(t)

	config := DefaultConfig()
	config.CompanyName = "Acme"
	require.NoError(t, store.Update(config))

	reset, err := store.Reset()
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), reset)
	require.Equal(t, DefaultConfig(), store.Config())
}
