package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/nextlevelsbs/sopbuilder/pkg/brand"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleBrandConfig(w http.ResponseWriter, r *http.Request) {
	writeJson(w, h.Brand.Config())
}

func (h *Handler) handleBrandConfigUpdate(w http.ResponseWriter, r *http.Request) {
	config := brand.DefaultConfig()

	if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := config.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Brand.Update(config); err != nil {
		writeError(w, http.StatusInternalServerError, errors.New("Failed to save brand configuration"))
		return
	}

	writeJson(w, config)
}

func (h *Handler) handleBrandLogoUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, brand.MaxLogoSize+1<<20)

	file, header, err := r.FormFile("logo_file")

	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("logo_file is required"))
		return
	}

	defer file.Close()

	companyID := r.FormValue("company_id")

	name, err := h.Brand.SaveLogo(header.Filename, companyID, file)

	if err != nil {
		if errors.Is(err, brand.ErrUnsupportedLogoType) {
			writeError(w, http.StatusBadRequest, errors.New("Invalid file type. Allowed: .png, .jpg, .jpeg, .svg"))
			return
		}

		if errors.Is(err, brand.ErrLogoTooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, errors.New("File too large. Maximum size: 5MB"))
			return
		}

		writeError(w, http.StatusInternalServerError, errors.New("Failed to save logo"))
		return
	}

	writeJson(w, LogoUploadResponse{
		LogoURL:  "/api/v1/brand/logo/" + filepath.Base(name),
		LogoPath: name,

		Message: "Logo uploaded successfully",
	})
}

func (h *Handler) handleBrandLogo(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	path, contentType, err := h.Brand.Logo(filename)

	if err != nil {
		writeError(w, http.StatusNotFound, errors.New("Logo file not found"))
		return
	}

	w.Header().Set("Content-Type", contentType)

	http.ServeFile(w, r, path)
}

func (h *Handler) handleBrandLogoDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Brand.DeleteLogo(); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeMessage(w, "Logo removed successfully")
}

func (h *Handler) handleBrandPreview(w http.ResponseWriter, r *http.Request) {
	writeJson(w, h.Brand.Preview())
}

func (h *Handler) handleBrandReset(w http.ResponseWriter, r *http.Request) {
	config, err := h.Brand.Reset()

	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.New("Failed to reset brand configuration"))
		return
	}

	writeJson(w, BrandResetResponse{
		Message: "Brand configuration reset to defaults",

		Config: config,
	})
}
