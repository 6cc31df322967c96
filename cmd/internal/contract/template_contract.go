package contract

type TemplateResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Lang      string `json:"lang"`
	Kind      string `json:"kind"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type TemplateRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=80"`
	Lang    string `json:"lang" validate:"required,oneof=fr en"`
	Kind    string `json:"kind" validate:"required,oneof=CORPORATE INDIVIDUAL"`
	Content string `json:"content" validate:"required,max=10000"`
}

type UpdateTemplateRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=80"`
	Lang    *string `json:"lang" validate:"omitempty,oneof=fr en"`
	Kind    *string `json:"kind" validate:"omitempty,oneof=CORPORATE INDIVIDUAL"`
	Content *string `json:"content" validate:"omitempty,max=10000"`
}
