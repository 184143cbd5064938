// Package brand manages the branding applied to rendered documents: colors,
// company identity, and an optional uploaded logo. The configuration persists
// as a JSON file so it survives restarts without a database.
package brand

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const MaxLogoSize = 5 << 20

var (
	ErrLogoNotFound        = errors.New("logo not found")
	ErrLogoTooLarge        = fmt.Errorf("logo exceeds %d bytes", MaxLogoSize)
	ErrUnsupportedLogoType = errors.New("unsupported logo type")
)

var logoTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".svg":  "image/svg+xml",
}

type Config struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	AccentColor    string `json:"accent_color"`
	SuccessColor   string `json:"success_color"`
	WarningColor   string `json:"warning_color"`

	CompanyName string `json:"company_name"`
	Tagline     string `json:"tagline"`
	LogoPath    string `json:"logo_path,omitempty"`

	FontFamily string `json:"font_family"`
	FooterText string `json:"footer_text"`
}

func DefaultConfig() Config {
	return Config{
		PrimaryColor:   "#2C3E50",
		SecondaryColor: "#3498DB",
		AccentColor:    "#E74C3C",
		SuccessColor:   "#27AE60",
		WarningColor:   "#F39C12",

		CompanyName: "Your Company",
		Tagline:     "Professional SOP Solutions",

		FontFamily: "Helvetica",
		FooterText: "Generated with AI-Enhanced SOP Builder",
	}
}

func (c Config) Validate() error {
	colors := map[string]string{
		"primary_color":   c.PrimaryColor,
		"secondary_color": c.SecondaryColor,
		"accent_color":    c.AccentColor,
		"success_color":   c.SuccessColor,
		"warning_color":   c.WarningColor,
	}

	for field, color := range colors {
		if !validColor(color) {
			return fmt.Errorf("invalid color format for %s. Use hex format like #2C3E50", field)
		}
	}

	if len(strings.TrimSpace(c.CompanyName)) < 2 {
		return errors.New("company name must be at least 2 characters")
	}

	return nil
}

func validColor(val string) bool {
	if len(val) != 7 || val[0] != '#' {
		return false
	}

	for _, r := range val[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':

		default:
			return false
		}
	}

	return true
}

type Preview struct {
	Config Config `json:"config"`

	Elements PreviewElements `json:"preview_elements"`
}

type PreviewElements struct {
	Header HeaderStyle `json:"header_style"`
	Button ButtonStyle `json:"button_style"`
	Accent AccentStyle `json:"accent_elements"`
}

type HeaderStyle struct {
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	CompanyName     string `json:"company_name"`
	Tagline         string `json:"tagline"`
}

type ButtonStyle struct {
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
}

type AccentStyle struct {
	Color string `json:"color"`
}

// Store persists the brand configuration and uploaded logos on disk.
type Store struct {
	mu sync.Mutex

	configPath string
	uploadDir  string
}

func NewStore(configDir, uploadDir string) (*Store, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, err
	}

	return &Store{
		configPath: filepath.Join(configDir, "brand_config.json"),
		uploadDir:  uploadDir,
	}, nil
}

// Config returns the persisted configuration, falling back to defaults when
// the file is missing or unreadable.
func (s *Store) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *Store) load() Config {
	data, err := os.ReadFile(s.configPath)

	if err != nil {
		return DefaultConfig()
	}

	config := DefaultConfig()

	if err := json.Unmarshal(data, &config); err != nil {
		return DefaultConfig()
	}

	return config
}

func (s *Store) Update(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(config)
}

func (s *Store) save(config Config) error {
	data, err := json.MarshalIndent(config, "", "  ")

	if err != nil {
		return err
	}

	return os.WriteFile(s.configPath, data, 0o644)
}

// Reset restores the default configuration, keeping no trace of the old one
func (s *Store) Reset() (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	config := DefaultConfig()

	return config, s.save(config)
}

// SaveLogo stores an uploaded logo under a unique name and points the brand
// configuration at it. The returned path is relative to the store.
func (s *Store) SaveLogo(filename, companyID string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	if _, ok := logoTypes[ext]; !ok {
		return "", ErrUnsupportedLogoType
	}

	if companyID == "" {
		companyID = "default"
	}

	name := fmt.Sprintf("%s_%s%s", companyID, uuid.NewString()[:8], ext)
	path := filepath.Join(s.uploadDir, name)

	f, err := os.Create(path)

	if err != nil {
		return "", err
	}

	defer f.Close()

	n, err := io.Copy(f, io.LimitReader(r, MaxLogoSize+1))

	if err != nil {
		os.Remove(path)
		return "", err
	}

	if n > MaxLogoSize {
		os.Remove(path)
		return "", ErrLogoTooLarge
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	config := s.load()
	config.LogoPath = name

	if err := s.save(config); err != nil {
		os.Remove(path)
		return "", err
	}

	return name, nil
}

// Logo resolves a logo filename to its path and content type
func (s *Store) Logo(filename string) (string, string, error) {
	name := filepath.Base(filename)
	path := filepath.Join(s.uploadDir, name)

	if _, err := os.Stat(path); err != nil {
		return "", "", ErrLogoNotFound
	}

	contentType, ok := logoTypes[strings.ToLower(filepath.Ext(name))]

	if !ok {
		contentType = "application/octet-stream"
	}

	return path, contentType, nil
}

// DeleteLogo removes the configured logo file and clears the reference
func (s *Store) DeleteLogo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	config := s.load()

	if config.LogoPath == "" {
		return nil
	}

	path := filepath.Join(s.uploadDir, filepath.Base(config.LogoPath))

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}

	config.LogoPath = ""

	return s.save(config)
}

// Preview derives the style elements a frontend would render from the
// current configuration.
func (s *Store) Preview() Preview {
	config := s.Config()

	return Preview{
		Config: config,

		Elements: PreviewElements{
			Header: HeaderStyle{
				BackgroundColor: config.PrimaryColor,
				TextColor:       "#FFFFFF",
				CompanyName:     config.CompanyName,
				Tagline:         config.Tagline,
			},

			Button: ButtonStyle{
				BackgroundColor: config.SecondaryColor,
				TextColor:       "#FFFFFF",
			},

			Accent: AccentStyle{
				Color: config.AccentColor,
			},
		},
	}
}
