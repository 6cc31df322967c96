package handler

import (
	"net/http"
	"strconv"

	"comparution/cmd/internal/contract"
	"comparution/cmd/internal/utils"
	"comparution/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type TemplateService interface {
	GetAllTemplates() ([]*contract.TemplateResponse, apierror.ErrorResponse)
	GetTemplateByID(id int64) (*contract.TemplateResponse, apierror.ErrorResponse)
	CreateTemplate(sub string, req *contract.TemplateRequest) (*contract.TemplateResponse, apierror.ErrorResponse)
	UpdateTemplate(id int64, req *contract.UpdateTemplateRequest) (*contract.TemplateResponse, apierror.ErrorResponse)
	DeleteTemplate(id int64) apierror.ErrorResponse
}

type DefaultTemplateRoute struct {
	TemplateService TemplateService
}

func NewTemplateDefault(templateService TemplateService) *DefaultTemplateRoute {
	return &DefaultTemplateRoute{TemplateService: templateService}
}

func (t *DefaultTemplateRoute) GetTemplates(c echo.Context) error {
	templates, err := t.TemplateService.GetAllTemplates()
	if err != nil {
		return c.JSON(err.Code(), err)
	}

	resp := echo.Map{"templates": templates}
	return c.JSON(http.StatusOK, &resp)
}

func (t *DefaultTemplateRoute) GetTemplate(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	template, apierr := t.TemplateService.GetTemplateByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, template)
}

func (t *DefaultTemplateRoute) CreateTemplate(c echo.Context) error {
	sub, cerr := utils.GetSubFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.TemplateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	template, apierr := t.TemplateService.CreateTemplate(sub, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &template)
}

func (t *DefaultTemplateRoute) UpdateTemplate(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	var req contract.UpdateTemplateRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	template, apierr := t.TemplateService.UpdateTemplate(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &template)
}

func (t *DefaultTemplateRoute) DeleteTemplate(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	serr := t.TemplateService.DeleteTemplate(id)
	if serr != nil {
		return c.JSON(serr.Code(), serr)
	}
	return c.NoContent(http.StatusOK)
}
