package api

import (
	"errors"
	"net/http"

	"github.com/nextlevelsbs/sopbuilder/pkg/catalog"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleTemplates(w http.ResponseWriter, r *http.Request) {
	industry := r.URL.Query().Get("industry")

	templates := h.Catalog.Templates(industry)

	if templates == nil {
		templates = []catalog.Template{}
	}

	writeJson(w, TemplateList{
		Templates: templates,
	})
}

func (h *Handler) handleTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "template_id")

	template, err := h.Catalog.Template(id)

	if err != nil {
		writeError(w, http.StatusNotFound, errors.New("Template not found"))
		return
	}

	writeJson(w, template)
}

func (h *Handler) handleIndustries(w http.ResponseWriter, r *http.Request) {
	writeJson(w, IndustryList{
		Industries: h.Catalog.Industries(),
	})
}

func (h *Handler) handleIndustryTemplates(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "industry_id")

	if _, ok := h.Catalog.Industry(id); !ok {
		writeError(w, http.StatusNotFound, errors.New("Industry not found"))
		return
	}

	templates := h.Catalog.Templates(id)

	if templates == nil {
		templates = []catalog.Template{}
	}

	writeJson(w, TemplateList{
		Templates: templates,
	})
}
