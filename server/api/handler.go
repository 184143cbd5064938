// Package api exposes the SOP builder over REST: template catalog browsing,
// asynchronous generation jobs, document rendering and delivery, brand
// configuration, and compliance validation.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/nextlevelsbs/sopbuilder/config"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Get("/templates", h.handleTemplates)
	r.Get("/templates/{template_id}", h.handleTemplate)

	r.Get("/industries", h.handleIndustries)
	r.Get("/industries/{industry_id}/templates", h.handleIndustryTemplates)

	r.Post("/generate", h.handleGenerate)
	r.Get("/generate/jobs", h.handleGenerationJobs)
	r.Get("/generate/{generation_id}/status", h.handleGenerationStatus)
	r.Delete("/generate/{generation_id}", h.handleGenerationCancel)

	r.Post("/documents/generate-pdf", h.handleDocumentCreate)
	r.Post("/documents/preview", h.handleDocumentRenderPreview)
	r.Get("/documents", h.handleDocuments)
	r.Get("/documents/{document_id}", h.handleDocument)
	r.Get("/documents/{document_id}/download", h.handleDocumentDownload)
	r.Get("/documents/{document_id}/preview", h.handleDocumentPreview)
	r.Delete("/documents/{document_id}", h.handleDocumentDelete)

	r.Get("/brand/config", h.handleBrandConfig)
	r.Put("/brand/config", h.handleBrandConfigUpdate)
	r.Post("/brand/upload-logo", h.handleBrandLogoUpload)
	r.Get("/brand/logo/{filename}", h.handleBrandLogo)
	r.Delete("/brand/logo", h.handleBrandLogoDelete)
	r.Get("/brand/preview", h.handleBrandPreview)
	r.Post("/brand/reset", h.handleBrandReset)

	r.Post("/compliance/validate", h.handleComplianceValidate)
	r.Get("/compliance/standards", h.handleComplianceStandards)
	r.Get("/compliance/requirements/{industry}", h.handleComplianceRequirements)
	r.Get("/compliance/check/{industry}/{regulation}", h.handleComplianceCheck)
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(map[string]string{"error": text})
}

func writeMessage(w http.ResponseWriter, text string) {
	writeJson(w, map[string]string{"message": text})
}
