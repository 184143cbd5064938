package document

import (
	"encoding/base64"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreLifecycle(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	doc, err := store.Create("Acme Diner SOP", "restaurant-opening", []byte("%PDF-1.7 fake"))
	require.NoError(t, err)
	require.NotEmpty(t, doc.ID)
	require.Equal(t, "completed", doc.Status)
	require.EqualValues(t, 13, doc.FileSize)
	require.FileExists(t, doc.FilePath)

	loaded, err := store.Get(doc.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme Diner SOP", loaded.Title)
	require.Zero(t, loaded.DownloadCount)

	downloaded, err := store.Download(doc.ID)
	require.NoError(t, err)
	require.Equal(t, 1, downloaded.DownloadCount)

	preview, err := store.Preview(doc.ID)
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(preview)
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.7 fake", string(decoded))

	require.NoError(t, store.Delete(doc.ID))
	require.NoFileExists(t, doc.FilePath)

	_, err = store.Get(doc.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, store.Delete(doc.ID), ErrNotFound)
}

func TestStoreDownloadMissingFile(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	doc, err := store.Create("SOP", "it-onboarding", []byte("pdf"))
	require.NoError(t, err)

	require.NoError(t, os.Remove(doc.FilePath))

	_, err = store.Download(doc.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStoreList(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	for range 5 {
		_, err := store.Create("SOP", "restaurant-opening", []byte("pdf"))
		require.NoError(t, err)
	}

	docs, pagination := store.List(1, 2)
	require.Len(t, docs, 2)
	require.Equal(t, 5, pagination.Total)
	require.Equal(t, 3, pagination.TotalPages)

	docs, _ = store.List(3, 2)
	require.Len(t, docs, 1)

	docs, _ = store.List(4, 2)
	require.Empty(t, docs)
}

func TestParseMarkdown(t *testing.T) {
	blocks := parseMarkdown(`# Introduction

## Purpose
This SOP establishes **opening procedures** for the kitchen.

- Unlock doors
- Check temperatures
  - Walk-in cooler
  - Freezer

1. Turn on equipment
2. Review checklist
`)

	require.NotEmpty(t, blocks)

	require.Equal(t, blockHeading, blocks[0].kind)
	require.Equal(t, 1, blocks[0].level)
	require.Equal(t, "Introduction", blocks[0].text)

	require.Equal(t, blockHeading, blocks[1].kind)
	require.Equal(t, 2, blocks[1].level)

	require.Equal(t, blockParagraph, blocks[2].kind)
	require.Equal(t, "This SOP establishes opening procedures for the kitchen.", blocks[2].text)

	var bullets, numbered []string

	for _, b := range blocks {
		switch b.kind {
		case blockBullet:
			bullets = append(bullets, b.text)
		case blockNumbered:
			numbered = append(numbered, b.text)
		}
	}

	require.Contains(t, bullets, "Unlock doors")
	require.Contains(t, bullets, "Walk-in cooler")
	require.Equal(t, []string{"Turn on equipment", "Review checklist"}, numbered)
}

func TestWrapText(t *testing.T) {
	require.Nil(t, wrapText("   ", 10))
	require.Equal(t, []string{"short"}, wrapText("short", 10))

	lines := wrapText("one two three four five", 9)
	require.Equal(t, []string{"one two", "three", "four five"}, lines)
}
