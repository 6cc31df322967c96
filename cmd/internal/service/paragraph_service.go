package service

import (
	"context"

	"comparution/cmd/internal/contract"
	"comparution/cmd/internal/domain/entity"
	"comparution/cmd/internal/domain/resolve"
	"comparution/cmd/internal/render"
	"comparution/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type TemplateFinder interface {
	FindByID(id int64) (*entity.Template, error)
}

type ParagraphService struct {
	Companies    *CompanyService
	Chain        *resolve.ChainResolver
	TemplateRepo TemplateFinder
}

func NewParagraphService(companies *CompanyService, templateRepo TemplateFinder) *ParagraphService {
	return &ParagraphService{
		Companies:    companies,
		Chain:        resolve.NewChainResolver(companies),
		TemplateRepo: templateRepo,
	}
}

// GetParagraph fetches the company, resolves the acting representative with
// the full holding-chain walk, and renders the paragraph. Chain-resolution
// problems never surface here: the walk degrades to holding-only output.
func (s *ParagraphService) GetParagraph(ctx context.Context, siren, lang string, templateID int64) (*contract.ParagraphResponse, apierror.ErrorResponse) {
	return s.buildParagraph(ctx, siren, lang, templateID, true)
}

// GetMarkdown is the synchronous form: it selects the representative from
// the composition as-is, with no recursive holding resolution.
func (s *ParagraphService) GetMarkdown(ctx context.Context, siren, lang string) (*contract.ParagraphResponse, apierror.ErrorResponse) {
	return s.buildParagraph(ctx, siren, lang, 0, false)
}

func (s *ParagraphService) buildParagraph(ctx context.Context, siren, lang string, templateID int64, walkChain bool) (*contract.ParagraphResponse, apierror.ErrorResponse) {
	company, _, apierr := s.Companies.findCompany(ctx, siren)
	if apierr != nil {
		return nil, apierr
	}

	template, apierr := s.userTemplate(templateID, company)
	if apierr != nil {
		return nil, apierr
	}

	rep := resolve.Select(company.Composition)
	if walkChain && rep.IsHolding && rep.HoldingSIREN != "" {
		rep = s.Chain.ResolveChain(ctx, rep)
	}

	markdown := render.BuildMarkdown(company, rep, render.Options{
		Lang:     render.Norm(lang),
		Template: template,
	})

	return &contract.ParagraphResponse{
		SIREN:    siren,
		Lang:     string(render.Norm(lang)),
		Markdown: markdown,
		HTML:     render.ToHTML(markdown),
		Text:     render.ToPlain(markdown),
	}, nil
}

// userTemplate loads the requested override template, if any. A template
// authored for the other entity kind is rejected rather than rendered with
// blank variables.
func (s *ParagraphService) userTemplate(templateID int64, company *entity.Company) (string, apierror.ErrorResponse) {
	if templateID == 0 {
		return "", nil
	}

	template, err := s.TemplateRepo.FindByID(templateID)
	if err != nil {
		log.Errorf("failed to fetch template %d: %v", templateID, err)
		return "", apierror.InternalServerError
	}

	if template == nil {
		return "", apierror.NotFoundError
	}

	if company.HasData() && template.Kind != string(company.Kind) {
		return "", apierror.TemplateKindMismatch
	}
	return template.Content, nil
}
