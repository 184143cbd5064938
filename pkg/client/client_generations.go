package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/nextlevelsbs/sopbuilder/pkg/job"
	api "github.com/nextlevelsbs/sopbuilder/server/api"
)

type Generation = job.Job
type GenerationResult = job.Result

type GenerationRequest = api.GenerationRequest
type GenerationResponse = api.GenerationResponse

type CompanyInfo = api.CompanyInfo
type Customization = api.Customization

var ErrGenerationFailed = errors.New("generation failed")

type GenerationService struct {
	Options []RequestOption
}

func NewGenerationService(opts ...RequestOption) GenerationService {
	return GenerationService{
		Options: opts,
	}
}

func (r *GenerationService) Submit(ctx context.Context, input GenerationRequest, opts ...RequestOption) (*GenerationResponse, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var result GenerationResponse

	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/generate", input, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *GenerationService) Status(ctx context.Context, id string, opts ...RequestOption) (*Generation, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var result Generation

	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/generate/"+url.PathEscape(id)+"/status", nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *GenerationService) List(ctx context.Context, opts ...RequestOption) ([]*Generation, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var result api.JobList

	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/generate/jobs", nil, &result); err != nil {
		return nil, err
	}

	return result.Jobs, nil
}

func (r *GenerationService) Cancel(ctx context.Context, id string, opts ...RequestOption) error {
	c := newRequestConfig(append(r.Options, opts...)...)

	return c.doJSON(ctx, http.MethodDelete, "/api/v1/generate/"+url.PathEscape(id), nil, nil)
}

// Wait polls the generation until it reaches a terminal status. A failed or
// cancelled generation returns ErrGenerationFailed wrapped with the server
// error text.
func (r *GenerationService) Wait(ctx context.Context, id string, opts ...RequestOption) (*Generation, error) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		result, err := r.Status(ctx, id, opts...)

		if err != nil {
			return nil, err
		}

		if result.Status.Terminal() {
			if result.Status != job.StatusCompleted {
				text := result.Error

				if text == "" {
					text = string(result.Status)
				}

				return result, errors.Join(ErrGenerationFailed, errors.New(text))
			}

			return result, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case <-ticker.C:
		}
	}
}
