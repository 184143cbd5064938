package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nextlevelsbs/sopbuilder/pkg/catalog"
	api "github.com/nextlevelsbs/sopbuilder/server/api"
)

type Template = catalog.Template
type Industry = catalog.Industry

type TemplateService struct {
	Options []RequestOption
}

func NewTemplateService(opts ...RequestOption) TemplateService {
	return TemplateService{
		Options: opts,
	}
}

func (r *TemplateService) List(ctx context.Context, industry string, opts ...RequestOption) ([]Template, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	path := "/api/v1/templates"

	if industry != "" {
		path += "?industry=" + url.QueryEscape(industry)
	}

	var result api.TemplateList

	if err := c.doJSON(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}

	return result.Templates, nil
}

func (r *TemplateService) Get(ctx context.Context, id string, opts ...RequestOption) (*Template, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var result Template

	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/templates/"+url.PathEscape(id), nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *TemplateService) Industries(ctx context.Context, opts ...RequestOption) ([]Industry, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var result api.IndustryList

	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/industries", nil, &result); err != nil {
		return nil, err
	}

	return result.Industries, nil
}
