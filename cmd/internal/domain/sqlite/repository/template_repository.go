package repository

import (
	"errors"

	"comparution/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultTemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *DefaultTemplateRepository {
	return &DefaultTemplateRepository{db: db}
}

func (r *DefaultTemplateRepository) FindAll() ([]*entity.Template, error) {
	var templates []*entity.Template
	err := r.db.Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *DefaultTemplateRepository) FindByID(id int64) (*entity.Template, error) {
	var template entity.Template
	err := r.db.
		Where("id = ?", id).
		First(&template).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *DefaultTemplateRepository) Save(template *entity.Template) error {
	return r.db.Save(template).Error
}

func (r *DefaultTemplateRepository) Delete(template *entity.Template) error {
	return r.db.Delete(template).Error
}
