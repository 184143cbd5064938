package api

import (
	"github.com/nextlevelsbs/sopbuilder/pkg/brand"
	"github.com/nextlevelsbs/sopbuilder/pkg/catalog"
	"github.com/nextlevelsbs/sopbuilder/pkg/document"
	"github.com/nextlevelsbs/sopbuilder/pkg/generator"
	"github.com/nextlevelsbs/sopbuilder/pkg/job"
)

type CompanyInfo struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`

	IndustrySpecific map[string]any `json:"industry_specific,omitempty"`
}

type Customization struct {
	SelectedOptions []string `json:"selected_options,omitempty"`

	BrandConfig *brand.Config `json:"brand_config,omitempty"`
}

type GenerationRequest struct {
	TemplateID string `json:"template_id"`

	CompanyInfo CompanyInfo `json:"company_info"`

	Customization *Customization `json:"customization,omitempty"`

	Provider string `json:"llm_provider,omitempty"`

	OutputFormat string `json:"output_format,omitempty"`
}

type GenerationResponse struct {
	GenerationID string `json:"generation_id"`

	Status job.Status `json:"status"`

	StatusURL string `json:"status_url"`
}

type JobList struct {
	Jobs []*job.Job `json:"jobs"`
}

type PDFGenerationRequest struct {
	Title      string `json:"title,omitempty"`
	TemplateID string `json:"template_id,omitempty"`

	TemplateData *generator.Result `json:"template_data"`

	BrandConfig *brand.Config `json:"brand_config,omitempty"`
}

type PDFGenerationResponse struct {
	DocumentID string `json:"document_id"`

	DownloadURL string `json:"download_url"`
	PreviewURL  string `json:"preview_url"`

	FileSize int64 `json:"file_size"`
}

type PDFPreviewResponse struct {
	PreviewBase64 string `json:"preview_base64"`
	ContentType   string `json:"content_type"`
}

type DocumentList struct {
	Documents []*document.Document `json:"documents"`

	Pagination document.Pagination `json:"pagination"`
}

type TemplateList struct {
	Templates []catalog.Template `json:"templates"`
}

type IndustryList struct {
	Industries []catalog.Industry `json:"industries"`
}

type LogoUploadResponse struct {
	LogoURL  string `json:"logo_url"`
	LogoPath string `json:"logo_path"`

	Message string `json:"message"`
}

type BrandResetResponse struct {
	Message string `json:"message"`

	Config brand.Config `json:"config"`
}

type ComplianceValidationRequest struct {
	TemplateData map[string]any `json:"template_data"`

	Industry    string   `json:"industry"`
	Regulations []string `json:"regulations"`
}

type RegulationCheck struct {
	Industry   string `json:"industry"`
	Regulation string `json:"regulation"`

	Supported bool `json:"supported"`

	Requirements []string `json:"requirements"`
}
