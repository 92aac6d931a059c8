package repository

import (
	"sitera-backend/internal/model"

	"gorm.io/gorm"
)

type PermohonanRepository interface {
	Create(permohonan *model.PermohonanTera) error
	GetAll(status string) ([]model.PermohonanTera, error)
	GetByID(id uint) (*model.PermohonanTera, error)
	Update(permohonan *model.PermohonanTera) error
	CountByStatus(status string) (int64, error)
}

type permohonanRepository struct {
	db *gorm.DB
}

func NewPermohonanRepository(db *gorm.DB) PermohonanRepository {
	return &permohonanRepository{db}
}

func (r *permohonanRepository) Create(permohonan *model.PermohonanTera) error {
	return r.db.Create(permohonan).Error
}

func (r *permohonanRepository) GetAll(status string) ([]model.PermohonanTera, error) {
	q := r.db.Order("created_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var list []model.PermohonanTera
	err := q.Find(&list).Error
	return list, err
}

func (r *permohonanRepository) GetByID(id uint) (*model.PermohonanTera, error) {
	var permohonan model.PermohonanTera
	err := r.db.First(&permohonan, id).Error
	return &permohonan, err
}

func (r *permohonanRepository) Update(permohonan *model.PermohonanTera) error {
	return r.db.Save(permohonan).Error
}

func (r *permohonanRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.PermohonanTera{}).Where("status = ?", status).
		Count(&count).Error
	return count, err
}
