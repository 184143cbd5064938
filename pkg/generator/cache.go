package generator

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Cache is a file-based content cache keyed by template type, section, and
// prompt. Entries expire by file age. A nil *Cache disables caching.
type Cache struct {
	dir string
	ttl time.Duration
}

type cacheEntry struct {
	Content string `json:"content"`

	TemplateType string `json:"template_type"`
	Section      string `json:"section"`

	Timestamp time.Time `json:"timestamp"`
}

func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &Cache{
		dir: dir,
		ttl: ttl,
	}, nil
}

func (c *Cache) Get(templateType, section, prompt string) (string, bool) {
	if c == nil {
		return "", false
	}

	path := c.path(templateType, section, prompt)

	info, err := os.Stat(path)

	if err != nil {
		return "", false
	}

	if time.Since(info.ModTime()) > c.ttl {
		os.Remove(path)
		return "", false
	}

	data, err := os.ReadFile(path)

	if err != nil {
		return "", false
	}

	var entry cacheEntry

	if err := json.Unmarshal(data, &entry); err != nil {
		return "", false
	}

	return entry.Content, true
}

func (c *Cache) Set(templateType, section, prompt, content string) {
	if c == nil {
		return
	}

	entry := cacheEntry{
		Content: content,

		TemplateType: templateType,
		Section:      section,

		Timestamp: time.Now().UTC(),
	}

	data, err := json.Marshal(entry)

	if err != nil {
		return
	}

	// best effort, a failed write just means a cache miss later
	_ = os.WriteFile(c.path(templateType, section, prompt), data, 0o644)
}

// Clear removes every cached entry
func (c *Cache) Clear() error {
	if c == nil {
		return nil
	}

	entries, err := os.ReadDir(c.dir)

	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil {
			return err
		}
	}

	return nil
}

func (c *Cache) path(templateType, section, prompt string) string {
	sum := sha256.Sum256([]byte(templateType + "\x00" + section + "\x00" + prompt))

	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".json")
}
