package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/nextlevelsbs/sopbuilder/pkg/document"
	api "github.com/nextlevelsbs/sopbuilder/server/api"
)

type Document = document.Document
type DocumentPagination = document.Pagination

type PDFGenerationRequest = api.PDFGenerationRequest
type PDFGenerationResponse = api.PDFGenerationResponse
type PDFPreviewResponse = api.PDFPreviewResponse

type DocumentService struct {
	Options []RequestOption
}

func NewDocumentService(opts ...RequestOption) DocumentService {
	return DocumentService{
		Options: opts,
	}
}

func (r *DocumentService) Create(ctx context.Context, input PDFGenerationRequest, opts ...RequestOption) (*PDFGenerationResponse, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var result PDFGenerationResponse

	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/documents/generate-pdf", input, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *DocumentService) Preview(ctx context.Context, input PDFGenerationRequest, opts ...RequestOption) (*PDFPreviewResponse, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var result PDFPreviewResponse

	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/documents/preview", input, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *DocumentService) List(ctx context.Context, page, perPage int, opts ...RequestOption) ([]*Document, *DocumentPagination, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	path := fmt.Sprintf("/api/v1/documents?page=%d&per_page=%d", page, perPage)

	var result api.DocumentList

	if err := c.doJSON(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, nil, err
	}

	return result.Documents, &result.Pagination, nil
}

func (r *DocumentService) Get(ctx context.Context, id string, opts ...RequestOption) (*Document, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var result Document

	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/documents/"+url.PathEscape(id), nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *DocumentService) Download(ctx context.Context, id string, opts ...RequestOption) ([]byte, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	resp, err := c.do(ctx, http.MethodGet, "/api/v1/documents/"+url.PathEscape(id)+"/download", nil)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

func (r *DocumentService) Delete(ctx context.Context, id string, opts ...RequestOption) error {
	c := newRequestConfig(append(r.Options, opts...)...)

	return c.doJSON(ctx, http.MethodDelete, "/api/v1/documents/"+url.PathEscape(id), nil, nil)
}
