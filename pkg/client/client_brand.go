package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/nextlevelsbs/sopbuilder/pkg/brand"
	api "github.com/nextlevelsbs/sopbuilder/server/api"
)

type BrandConfig = brand.Config
type BrandPreview = brand.Preview

type LogoUploadResponse = api.LogoUploadResponse

type BrandService struct {
	Options []RequestOption
}

func NewBrandService(opts ...RequestOption) BrandService {
	return BrandService{
		Options: opts,
	}
}

func (r *BrandService) Config(ctx context.Context, opts ...RequestOption) (*BrandConfig, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var result BrandConfig

	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/brand/config", nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *BrandService) Update(ctx context.Context, input BrandConfig, opts ...RequestOption) (*BrandConfig, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var result BrandConfig

	if err := c.doJSON(ctx, http.MethodPut, "/api/v1/brand/config", input, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *BrandService) Reset(ctx context.Context, opts ...RequestOption) (*BrandConfig, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var result api.BrandResetResponse

	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/brand/reset", nil, &result); err != nil {
		return nil, err
	}

	return &result.Config, nil
}

func (r *BrandService) Preview(ctx context.Context, opts ...RequestOption) (*BrandPreview, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var result BrandPreview

	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/brand/preview", nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *BrandService) UploadLogo(ctx context.Context, filename, companyID string, logo io.Reader, opts ...RequestOption) (*LogoUploadResponse, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var body bytes.Buffer

	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("logo_file", filename)

	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(part, logo); err != nil {
		return nil, err
	}

	if companyID != "" {
		if err := form.WriteField("company_id", companyID); err != nil {
			return nil, err
		}
	}

	if err := form.Close(); err != nil {
		return nil, err
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+"/api/v1/brand/upload-logo", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}

	var result LogoUploadResponse

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *BrandService) DeleteLogo(ctx context.Context, opts ...RequestOption) error {
	c := newRequestConfig(append(r.Options, opts...)...)

	return c.doJSON(ctx, http.MethodDelete, "/api/v1/brand/logo", nil, nil)
}
