package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nextlevelsbs/sopbuilder/pkg/compliance"
	api "github.com/nextlevelsbs/sopbuilder/server/api"
)

type ComplianceStandard = compliance.Standard
type ComplianceValidationResult = compliance.ValidationResult

type ComplianceValidationRequest = api.ComplianceValidationRequest
type RegulationCheck = api.RegulationCheck

type ComplianceService struct {
	Options []RequestOption
}

func NewComplianceService(opts ...RequestOption) ComplianceService {
	return ComplianceService{
		Options: opts,
	}
}

func (r *ComplianceService) Validate(ctx context.Context, input ComplianceValidationRequest, opts ...RequestOption) (*ComplianceValidationResult, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var result ComplianceValidationResult

	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/compliance/validate", input, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *ComplianceService) Standards(ctx context.Context, industry string, opts ...RequestOption) ([]ComplianceStandard, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	path := "/api/v1/compliance/standards"

	if industry != "" {
		path += "?industry=" + url.QueryEscape(industry)
	}

	var result map[string][]ComplianceStandard

	if err := c.doJSON(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}

	return result["standards"], nil
}

func (r *ComplianceService) Requirements(ctx context.Context, industry string, opts ...RequestOption) (*compliance.IndustryData, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var result compliance.IndustryData

	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/compliance/requirements/"+url.PathEscape(industry), nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *ComplianceService) Check(ctx context.Context, industry, regulation string, opts ...RequestOption) (*RegulationCheck, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var result RegulationCheck

	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/compliance/check/"+url.PathEscape(industry)+"/"+url.PathEscape(regulation), nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
