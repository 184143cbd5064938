package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/nextlevelsbs/sopbuilder/pkg/compliance"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleComplianceValidate(w http.ResponseWriter, r *http.Request) {
	var req ComplianceValidationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Compliance.Validate(req.TemplateData, req.Industry, req.Regulations)

	if err != nil {
		if errors.Is(err, compliance.ErrUnknownIndustry) {
			writeError(w, http.StatusBadRequest, fmt.Errorf("Unsupported industry: %s", req.Industry))
			return
		}

		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJson(w, result)
}

func (h *Handler) handleComplianceStandards(w http.ResponseWriter, r *http.Request) {
	industry := r.URL.Query().Get("industry")

	standards := h.Compliance.Standards(industry)

	if standards == nil {
		standards = []compliance.Standard{}
	}

	writeJson(w, map[string][]compliance.Standard{
		"standards": standards,
	})
}

func (h *Handler) handleComplianceRequirements(w http.ResponseWriter, r *http.Request) {
	industry := chi.URLParam(r, "industry")

	data, err := h.Compliance.Industry(industry)

	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("Industry '%s' not found", industry))
		return
	}

	writeJson(w, data)
}

func (h *Handler) handleComplianceCheck(w http.ResponseWriter, r *http.Request) {
	industry := chi.URLParam(r, "industry")
	regulation := chi.URLParam(r, "regulation")

	supported, requirements, err := h.Compliance.Supports(industry, regulation)

	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("Industry '%s' not found", industry))
		return
	}

	if requirements == nil {
		requirements = []string{}
	}

	writeJson(w, RegulationCheck{
		Industry:   industry,
		Regulation: regulation,

		Supported: supported,

		Requirements: requirements,
	})
}
