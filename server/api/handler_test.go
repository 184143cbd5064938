package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nextlevelsbs/sopbuilder/config"
	"github.com/nextlevelsbs/sopbuilder/pkg/brand"
	"github.com/nextlevelsbs/sopbuilder/pkg/catalog"
	"github.com/nextlevelsbs/sopbuilder/pkg/compliance"
	"github.com/nextlevelsbs/sopbuilder/pkg/document"
	"github.com/nextlevelsbs/sopbuilder/pkg/generator"
	"github.com/nextlevelsbs/sopbuilder/pkg/job"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) (*httptest.Server, *config.Config) {
	t.Helper()

	documents, err := document.NewStore(t.TempDir())
	require.NoError(t, err)

	brands, err := brand.NewStore(t.TempDir(), t.TempDir())
	require.NoError(t, err)

	set := compliance.New()

	g := generator.New(nil, set)

	store := job.NewMemoryStore()

	cfg := &config.Config{
		Catalog:    catalog.New(),
		Compliance: set,

		Generator: g,

		Jobs:       store,
		Dispatcher: job.NewDispatcher(store, g),

		Documents: documents,
		Renderer:  document.NewRenderer(),

		Brand: brands,
	}

	h, err := New(cfg)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		h.Attach(r)
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return server, cfg
}

func getJSON(t *testing.T, server *httptest.Server, path string, status int, v any) {
	t.Helper()

	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, status, resp.StatusCode)

	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
}

func postJSON(t *testing.T, server *httptest.Server, path string, body any, status int, v any) {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(server.URL+path, "application/json", bytes.NewReader(data))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, status, resp.StatusCode)

	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
}

func TestTemplates(t *testing.T) {
	server, _ := testServer(t)

	var result TemplateList

	getJSON(t, server, "/api/v1/templates", http.StatusOK, &result)
	require.NotEmpty(t, result.Templates)

	getJSON(t, server, "/api/v1/templates?industry=restaurant", http.StatusOK, &result)
	require.NotEmpty(t, result.Templates)

	for _, template := range result.Templates {
		require.Equal(t, "restaurant", template.Industry)
	}
}

func TestTemplateNotFound(t *testing.T) {
	server, _ := testServer(t)

	var result map[string]string

	getJSON(t, server, "/api/v1/templates/no-such-template", http.StatusNotFound, &result)
	require.Equal(t, "Template not found", result["error"])
}

func TestIndustries(t *testing.T) {
	server, _ := testServer(t)

	var result IndustryList

	getJSON(t, server, "/api/v1/industries", http.StatusOK, &result)
	require.NotEmpty(t, result.Industries)

	var templates TemplateList

	getJSON(t, server, "/api/v1/industries/restaurant/templates", http.StatusOK, &templates)
	require.NotEmpty(t, templates.Templates)

	getJSON(t, server, "/api/v1/industries/no-such-industry/templates", http.StatusNotFound, nil)
}

func TestGenerateValidation(t *testing.T) {
	server, _ := testServer(t)

	var result map[string]string

	postJSON(t, server, "/api/v1/generate", GenerationRequest{
		TemplateID:  "no-such-template",
		CompanyInfo: CompanyInfo{Name: "Mario's"},
	}, http.StatusBadRequest, &result)

	require.Equal(t, "Invalid template ID", result["error"])

	postJSON(t, server, "/api/v1/generate", GenerationRequest{
		TemplateID:  "restaurant-opening",
		CompanyInfo: CompanyInfo{Name: " M "},
	}, http.StatusBadRequest, &result)

	require.Equal(t, "Company name is required", result["error"])
}

func TestGenerateUnknownProvider(t *testing.T) {
	server, _ := testServer(t)

	postJSON(t, server, "/api/v1/generate", GenerationRequest{
		TemplateID:  "restaurant-opening",
		CompanyInfo: CompanyInfo{Name: "Mario's Pizzeria"},
		Provider:    "no-such-provider",
	}, http.StatusBadRequest, nil)
}

func TestGenerateAndPoll(t *testing.T) {
	server, cfg := testServer(t)

	var result GenerationResponse

	postJSON(t, server, "/api/v1/generate", GenerationRequest{
		TemplateID: "restaurant-opening",

		CompanyInfo: CompanyInfo{
			Name:     "Mario's Pizzeria",
			Location: "Austin, TX",
		},

		Customization: &Customization{
			SelectedOptions: []string{"food-safety"},
		},
	}, http.StatusOK, &result)

	require.NotEmpty(t, result.GenerationID)
	require.Equal(t, "/api/v1/generate/"+result.GenerationID+"/status", result.StatusURL)

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	require.NoError(t, cfg.Dispatcher.Wait(ctx))

	var status job.Job

	getJSON(t, server, result.StatusURL, http.StatusOK, &status)

	require.Equal(t, job.StatusCompleted, status.Status)
	require.Equal(t, 100, status.Progress)
	require.NotNil(t, status.Result)
	require.NotNil(t, status.Result.TemplateData)
	require.Equal(t, "restaurant-opening", status.Result.Metadata.TemplateID)
	require.Equal(t, "Mario's Pizzeria", status.Result.Metadata.CompanyName)

	var jobs JobList

	getJSON(t, server, "/api/v1/generate/jobs", http.StatusOK, &jobs)
	require.Len(t, jobs.Jobs, 1)
}

func TestGenerationStatusNotFound(t *testing.T) {
	server, _ := testServer(t)

	var result map[string]string

	getJSON(t, server, "/api/v1/generate/no-such-id/status", http.StatusNotFound, &result)
	require.Equal(t, "Generation job not found", result["error"])
}

func TestGenerationCancelNotFound(t *testing.T) {
	server, _ := testServer(t)

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/v1/generate/no-such-id", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDocumentsEmpty(t *testing.T) {
	server, _ := testServer(t)

	var result DocumentList

	getJSON(t, server, "/api/v1/documents", http.StatusOK, &result)

	require.Empty(t, result.Documents)
	require.Equal(t, 0, result.Pagination.Total)
	require.Equal(t, 1, result.Pagination.Page)
	require.Equal(t, 20, result.Pagination.PerPage)
}

func TestDocumentCreateRequiresData(t *testing.T) {
	server, _ := testServer(t)

	postJSON(t, server, "/api/v1/documents/generate-pdf", PDFGenerationRequest{}, http.StatusBadRequest, nil)
	postJSON(t, server, "/api/v1/documents/preview", PDFGenerationRequest{}, http.StatusBadRequest, nil)
}

func TestDocumentNotFound(t *testing.T) {
	server, _ := testServer(t)

	getJSON(t, server, "/api/v1/documents/no-such-id", http.StatusNotFound, nil)
	getJSON(t, server, "/api/v1/documents/no-such-id/download", http.StatusNotFound, nil)
	getJSON(t, server, "/api/v1/documents/no-such-id/preview", http.StatusNotFound, nil)
}

func TestBrandConfig(t *testing.T) {
	server, _ := testServer(t)

	var result brand.Config

	getJSON(t, server, "/api/v1/brand/config", http.StatusOK, &result)
	require.Equal(t, "Your Company", result.CompanyName)

	update := brand.DefaultConfig()
	update.CompanyName = "Mario's Pizzeria"
	update.PrimaryColor = "#111111"

	req, err := http.NewRequest(http.MethodPut, server.URL+"/api/v1/brand/config", jsonBody(t, update))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	getJSON(t, server, "/api/v1/brand/config", http.StatusOK, &result)
	require.Equal(t, "Mario's Pizzeria", result.CompanyName)
	require.Equal(t, "#111111", result.PrimaryColor)

	update.PrimaryColor = "not-a-color"

	req, err = http.NewRequest(http.MethodPut, server.URL+"/api/v1/brand/config", jsonBody(t, update))
	require.NoError(t, err)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)

	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBrandReset(t *testing.T) {
	server, _ := testServer(t)

	var result BrandResetResponse

	postJSON(t, server, "/api/v1/brand/reset", nil, http.StatusOK, &result)

	require.Equal(t, "Brand configuration reset to defaults", result.Message)
	require.Equal(t, "Your Company", result.Config.CompanyName)
}

func TestBrandLogoUpload(t *testing.T) {
	server, _ := testServer(t)

	var result LogoUploadResponse

	resp := uploadLogo(t, server, "logo.png", "fake png bytes")

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	require.Equal(t, "Logo uploaded successfully", result.Message)
	require.True(t, strings.HasPrefix(result.LogoURL, "/api/v1/brand/logo/"))

	logo, err := http.Get(server.URL + result.LogoURL)
	require.NoError(t, err)

	data, err := io.ReadAll(logo.Body)
	logo.Body.Close()

	require.NoError(t, err)
	require.Equal(t, http.StatusOK, logo.StatusCode)
	require.Equal(t, "fake png bytes", string(data))
}

func TestBrandLogoUploadRejectsType(t *testing.T) {
	server, _ := testServer(t)

	resp := uploadLogo(t, server, "logo.gif", "gif bytes")

	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBrandPreview(t *testing.T) {
	server, _ := testServer(t)

	var result brand.Preview

	getJSON(t, server, "/api/v1/brand/preview", http.StatusOK, &result)

	require.Equal(t, "#2C3E50", result.Elements.Header.BackgroundColor)
	require.Equal(t, "#FFFFFF", result.Elements.Header.TextColor)
}

func TestComplianceValidate(t *testing.T) {
	server, _ := testServer(t)

	var result compliance.ValidationResult

	postJSON(t, server, "/api/v1/compliance/validate", ComplianceValidationRequest{
		TemplateData: map[string]any{
			"content": "hand washing, temperature monitoring, allergen management, cleaning and sanitizing",
		},

		Industry:    "restaurant",
		Regulations: []string{"FDA Food Code"},
	}, http.StatusOK, &result)

	require.True(t, result.Compliant)

	var failure map[string]string

	postJSON(t, server, "/api/v1/compliance/validate", ComplianceValidationRequest{
		TemplateData: map[string]any{},
		Industry:     "aviation",
	}, http.StatusBadRequest, &failure)

	require.Equal(t, "Unsupported industry: aviation", failure["error"])
}

func TestComplianceStandards(t *testing.T) {
	server, _ := testServer(t)

	var result map[string][]compliance.Standard

	getJSON(t, server, "/api/v1/compliance/standards?industry=restaurant", http.StatusOK, &result)
	require.NotEmpty(t, result["standards"])

	for _, standard := range result["standards"] {
		require.Equal(t, "restaurant", standard.Industry)
	}
}

func TestComplianceCheck(t *testing.T) {
	server, _ := testServer(t)

	var result RegulationCheck

	getJSON(t, server, "/api/v1/compliance/check/restaurant/haccp", http.StatusOK, &result)

	require.True(t, result.Supported)
	require.NotEmpty(t, result.Requirements)

	getJSON(t, server, "/api/v1/compliance/check/restaurant/unknown", http.StatusOK, &result)

	require.False(t, result.Supported)
	require.Empty(t, result.Requirements)

	getJSON(t, server, "/api/v1/compliance/check/aviation/haccp", http.StatusNotFound, nil)
}

func TestComplianceRequirements(t *testing.T) {
	server, _ := testServer(t)

	var result compliance.IndustryData

	getJSON(t, server, "/api/v1/compliance/requirements/healthcare", http.StatusOK, &result)
	require.Contains(t, result.Standards, "HIPAA")

	getJSON(t, server, "/api/v1/compliance/requirements/aviation", http.StatusNotFound, nil)
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(data)
}

func uploadLogo(t *testing.T, server *httptest.Server, filename, content string) *http.Response {
	t.Helper()

	var body bytes.Buffer

	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("logo_file", filename)
	require.NoError(t, err)

	_, err = part.Write([]byte(content))
	require.NoError(t, err)

	require.NoError(t, form.WriteField("company_id", "acme"))
	require.NoError(t, form.Close())

	resp, err := http.Post(server.URL+"/api/v1/brand/upload-logo", form.FormDataContentType(), &body)
	require.NoError(t, err)

	return resp
}
