// Package document stores rendered SOP documents and turns generation
// results into branded PDFs.
package document

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("document not found")

type Document struct {
	ID string `json:"id"`

	Title      string `json:"title"`
	TemplateID string `json:"template_id"`

	CreatedAt time.Time `json:"created_at"`

	Status string `json:"status"`

	FileSize      int64 `json:"file_size"`
	DownloadCount int   `json:"download_count"`

	FilePath string `json:"-"`
}

type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`

	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Store keeps document records in memory and their PDF files on disk under a
// single output directory.
type Store struct {
	mu sync.RWMutex

	dir string

	docs map[string]*Document
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &Store{
		dir: dir,

		docs: map[string]*Document{},
	}, nil
}

// Create writes the PDF to disk and records the document
func (s *Store) Create(title, templateID string, pdf []byte) (*Document, error) {
	id := uuid.NewString()

	name := unsafeChars.ReplaceAllString(title, "_")

	if name == "" {
		name = "SOP"
	}

	path := filepath.Join(s.dir, fmt.Sprintf("%s_%s.pdf", name, id[:8]))

	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return nil, err
	}

	doc := &Document{
		ID: id,

		Title:      title,
		TemplateID: templateID,

		CreatedAt: time.Now().UTC(),

		Status: "completed",

		FileSize: int64(len(pdf)),

		FilePath: path,
	}

	s.mu.Lock()
	s.docs[id] = doc
	s.mu.Unlock()

	clone := *doc

	return &clone, nil
}

func (s *Store) Get(id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]

	if !ok {
		return nil, ErrNotFound
	}

	clone := *doc

	return &clone, nil
}

// List returns one page of documents, newest last
func (s *Store) List(page, perPage int) ([]*Document, Pagination) {
	if page < 1 {
		page = 1
	}

	if perPage < 1 {
		perPage = 20
	}

	s.mu.RLock()

	docs := make([]*Document, 0, len(s.docs))

	for _, doc := range s.docs {
		clone := *doc
		docs = append(docs, &clone)
	}

	s.mu.RUnlock()

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.Before(docs[j].CreatedAt)
	})

	total := len(docs)

	start := (page - 1) * perPage

	if start > total {
		start = total
	}

	end := start + perPage

	if end > total {
		end = total
	}

	return docs[start:end], Pagination{
		Page:    page,
		PerPage: perPage,

		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	}
}

// Download increments the download counter and returns the file path
func (s *Store) Download(id string) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]

	if !ok {
		return nil, ErrNotFound
	}

	if _, err := os.Stat(doc.FilePath); err != nil {
		return nil, ErrNotFound
	}

	doc.DownloadCount++

	clone := *doc

	return &clone, nil
}

// Preview returns the stored PDF base64 encoded
func (s *Store) Preview(id string) (string, error) {
	doc, err := s.Get(id)

	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(doc.FilePath)

	if err != nil {
		return "", ErrNotFound
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

// Delete removes the record and its file
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]

	if !ok {
		return ErrNotFound
	}

	delete(s.docs, id)

	if err := os.Remove(doc.FilePath); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
