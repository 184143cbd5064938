package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/nextlevelsbs/sopbuilder/pkg/generator"
	"github.com/nextlevelsbs/sopbuilder/pkg/job"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	template, err := h.Catalog.Template(req.TemplateID)

	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("Invalid template ID"))
		return
	}

	if len(strings.TrimSpace(req.CompanyInfo.Name)) < 2 {
		writeError(w, http.StatusBadRequest, errors.New("Company name is required"))
		return
	}

	industry := template.Industry

	if data, ok := h.Catalog.Industry(template.Industry); ok {
		industry = data.Name
	}

	request := generator.Request{
		TemplateID:   template.ID,
		TemplateType: template.Industry,

		CompanyName: strings.TrimSpace(req.CompanyInfo.Name),
		Location:    req.CompanyInfo.Location,
		Industry:    industry,
	}

	if req.Customization != nil {
		request.Options = req.Customization.SelectedOptions
		request.Brand = req.Customization.BrandConfig
	}

	result, err := h.Dispatcher.Submit(r.Context(), request, req.Provider)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJson(w, GenerationResponse{
		GenerationID: result.ID,

		Status: result.Status,

		StatusURL: "/api/v1/generate/" + result.ID + "/status",
	})
}

func (h *Handler) handleGenerationStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "generation_id")

	result, err := h.Jobs.Get(r.Context(), id)

	if err != nil {
		writeError(w, http.StatusNotFound, errors.New("Generation job not found"))
		return
	}

	writeJson(w, result)
}

func (h *Handler) handleGenerationJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Jobs.List(r.Context())

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if jobs == nil {
		jobs = []*job.Job{}
	}

	writeJson(w, JobList{
		Jobs: jobs,
	})
}

func (h *Handler) handleGenerationCancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "generation_id")

	if _, err := h.Dispatcher.Cancel(r.Context(), id); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			writeError(w, http.StatusNotFound, errors.New("Generation job not found"))
			return
		}

		if errors.Is(err, job.ErrFinished) {
			writeError(w, http.StatusBadRequest, errors.New("Cannot cancel completed or failed job"))
			return
		}

		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeMessage(w, "Generation cancelled successfully")
}
