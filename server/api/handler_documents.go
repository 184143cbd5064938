package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/nextlevelsbs/sopbuilder/pkg/document"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleDocumentCreate(w http.ResponseWriter, r *http.Request) {
	var req PDFGenerationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if req.TemplateData == nil {
		writeError(w, http.StatusBadRequest, errors.New("template_data is required"))
		return
	}

	title := req.Title

	if title == "" {
		title = "SOP Document"
	}

	templateID := req.TemplateID

	if templateID == "" {
		templateID = "unknown"
	}

	config := h.Brand.Config()

	if req.BrandConfig != nil {
		config = *req.BrandConfig
	}

	pdf, err := h.Renderer.Render(title, req.TemplateData, config)

	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("PDF generation failed: %w", err))
		return
	}

	doc, err := h.Documents.Create(title, templateID, pdf)

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJson(w, PDFGenerationResponse{
		DocumentID: doc.ID,

		DownloadURL: "/api/v1/documents/" + doc.ID + "/download",
		PreviewURL:  "/api/v1/documents/" + doc.ID + "/preview",

		FileSize: doc.FileSize,
	})
}

func (h *Handler) handleDocumentRenderPreview(w http.ResponseWriter, r *http.Request) {
	var req PDFGenerationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if req.TemplateData == nil {
		writeError(w, http.StatusBadRequest, errors.New("template_data is required"))
		return
	}

	title := req.Title

	if title == "" {
		title = "SOP Document"
	}

	config := h.Brand.Config()

	if req.BrandConfig != nil {
		config = *req.BrandConfig
	}

	pdf, err := h.Renderer.Render(title, req.TemplateData, config)

	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("Preview generation failed: %w", err))
		return
	}

	writeJson(w, PDFPreviewResponse{
		PreviewBase64: base64.StdEncoding.EncodeToString(pdf),
		ContentType:   "application/pdf",
	})
}

func (h *Handler) handleDocuments(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "per_page", 20)

	documents, pagination := h.Documents.List(page, perPage)

	writeJson(w, DocumentList{
		Documents: documents,

		Pagination: pagination,
	})
}

func (h *Handler) handleDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "document_id")

	doc, err := h.Documents.Get(id)

	if err != nil {
		writeError(w, http.StatusNotFound, errors.New("Document not found"))
		return
	}

	writeJson(w, doc)
}

func (h *Handler) handleDocumentDownload(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "document_id")

	doc, err := h.Documents.Download(id)

	if err != nil {
		writeError(w, http.StatusNotFound, errors.New("Document not found"))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Title+`.pdf"`)

	http.ServeFile(w, r, doc.FilePath)
}

func (h *Handler) handleDocumentPreview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "document_id")

	preview, err := h.Documents.Preview(id)

	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			writeError(w, http.StatusNotFound, errors.New("Document not found"))
			return
		}

		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJson(w, PDFPreviewResponse{
		PreviewBase64: preview,
		ContentType:   "application/pdf",
	})
}

func (h *Handler) handleDocumentDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "document_id")

	if err := h.Documents.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, errors.New("Document not found"))
		return
	}

	writeMessage(w, "Document deleted successfully")
}

func queryInt(r *http.Request, name string, fallback int) int {
	val := r.URL.Query().Get(name)

	if val == "" {
		return fallback
	}

	result, err := strconv.Atoi(val)

	if err != nil || result < 1 {
		return fallback
	}

	return result
}
