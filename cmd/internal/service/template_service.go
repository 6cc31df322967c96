package service

import (
	"comparution/cmd/internal/contract"
	"comparution/cmd/internal/domain/entity"
	"comparution/cmd/internal/utils"
	"comparution/cmd/internal/utils/apierror"
	"comparution/cmd/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type TemplateRepository interface {
	FindAll() ([]*entity.Template, error)
	FindByID(id int64) (*entity.Template, error)
	Save(template *entity.Template) error
	Delete(template *entity.Template) error
}

type DefaultTemplateService struct {
	TemplateRepo TemplateRepository
	Validate     *validator.Validate
}

func NewTemplateService(templateRepo TemplateRepository, validate *validator.Validate) *DefaultTemplateService {
	return &DefaultTemplateService{
		TemplateRepo: templateRepo,
		Validate:     validate,
	}
}

func (t *DefaultTemplateService) GetAllTemplates() ([]*contract.TemplateResponse, apierror.ErrorResponse) {
	templates, err := t.TemplateRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch templates: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.TemplateResponse, len(templates))
	for i, template := range templates {
		resp[i] = toTemplateResponse(template)
	}
	return resp, nil
}

func (t *DefaultTemplateService) GetTemplateByID(id int64) (*contract.TemplateResponse, apierror.ErrorResponse) {
	template, err := t.TemplateRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch template: %v", err)
		return nil, apierror.InternalServerError
	}

	if template == nil {
		return nil, apierror.NotFoundError
	}
	return toTemplateResponse(template), nil
}

func (t *DefaultTemplateService) CreateTemplate(sub string, req *contract.TemplateRequest) (*contract.TemplateResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := t.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	now := utils.NowUTC()
	template := &entity.Template{
		ID:        uid.Generate(),
		Name:      req.Name,
		Lang:      req.Lang,
		Kind:      req.Kind,
		Content:   req.Content,
		CreatedBy: sub,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := t.TemplateRepo.Save(template); err != nil {
		log.Errorf("failed to save template: %v", err)
		return nil, apierror.InternalServerError
	}
	return toTemplateResponse(template), nil
}

func (t *DefaultTemplateService) UpdateTemplate(id int64, req *contract.UpdateTemplateRequest) (*contract.TemplateResponse, apierror.ErrorResponse) {
	if valerr := t.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	template, err := t.TemplateRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch template: %v", err)
		return nil, apierror.InternalServerError
	}

	if template == nil {
		return nil, apierror.NotFoundError
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Lang != nil {
		template.Lang = *req.Lang
	}
	if req.Kind != nil {
		template.Kind = *req.Kind
	}
	if req.Content != nil {
		template.Content = *req.Content
	}

	template.UpdatedAt = utils.NowUTC()
	if err = t.TemplateRepo.Save(template); err != nil {
		log.Errorf("failed to update template: %v", err)
		return nil, apierror.InternalServerError
	}
	return toTemplateResponse(template), nil
}

func (t *DefaultTemplateService) DeleteTemplate(id int64) apierror.ErrorResponse {
	template, err := t.TemplateRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch template: %v", err)
		return apierror.InternalServerError
	}

	if template == nil {
		return apierror.NotFoundError
	}

	if err = t.TemplateRepo.Delete(template); err != nil {
		log.Errorf("failed to delete template: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func toTemplateResponse(template *entity.Template) *contract.TemplateResponse {
	return &contract.TemplateResponse{
		ID:        template.ID,
		Name:      template.Name,
		Lang:      template.Lang,
		Kind:      template.Kind,
		Content:   template.Content,
		CreatedAt: utils.FormatEpoch(template.CreatedAt),
		UpdatedAt: utils.FormatEpoch(template.UpdatedAt),
	}
}
