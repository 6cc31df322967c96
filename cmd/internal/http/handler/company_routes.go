package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"comparution/cmd/internal/contract"
	"comparution/cmd/internal/utils"
	"comparution/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type CompanyService interface {
	GetCompanyBySIREN(ctx context.Context, siren string) (*contract.CompanyResponse, apierror.ErrorResponse)
}

type ParagraphService interface {
	GetParagraph(ctx context.Context, siren, lang string, templateID int64) (*contract.ParagraphResponse, apierror.ErrorResponse)
	GetMarkdown(ctx context.Context, siren, lang string) (*contract.ParagraphResponse, apierror.ErrorResponse)
}

type DefaultCompanyRoute struct {
	CompanyService   CompanyService
	ParagraphService ParagraphService
}

func NewCompanyDefault(companyService CompanyService, paragraphService ParagraphService) *DefaultCompanyRoute {
	return &DefaultCompanyRoute{
		CompanyService:   companyService,
		ParagraphService: paragraphService,
	}
}

func (h *DefaultCompanyRoute) GetCompany(c echo.Context) error {
	siren, apierr := sirenParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	company, apierr := h.CompanyService.GetCompanyBySIREN(c.Request().Context(), siren)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, company)
}

// GetParagraph renders the full paragraph, holding-chain resolution included.
func (h *DefaultCompanyRoute) GetParagraph(c echo.Context) error {
	siren, apierr := sirenParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	lang, apierr := langParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var templateID int64
	if raw := strings.TrimSpace(c.QueryParam("template_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
		}
		templateID = id
	}

	paragraph, apierr := h.ParagraphService.GetParagraph(c.Request().Context(), siren, lang, templateID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, paragraph)
}

// GetMarkdown renders without walking holding chains: a corporate
// representative stays a holding, no extra registry calls are made.
func (h *DefaultCompanyRoute) GetMarkdown(c echo.Context) error {
	siren, apierr := sirenParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	lang, apierr := langParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	paragraph, apierr := h.ParagraphService.GetMarkdown(c.Request().Context(), siren, lang)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, paragraph)
}

func sirenParam(c echo.Context) (string, apierror.ErrorResponse) {
	siren := strings.TrimSpace(c.Param("siren"))
	if !utils.IsSIRENValid(siren) {
		return "", apierror.InvalidSIRENError
	}
	return siren, nil
}

func langParam(c echo.Context) (string, apierror.ErrorResponse) {
	lang := strings.TrimSpace(c.QueryParam("lang"))
	if lang == "" {
		return "fr", nil
	}
	if lang != "fr" && lang != "en" {
		return "", apierror.InvalidLangError
	}
	return lang, nil
}
