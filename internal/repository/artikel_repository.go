package repository

import (
	"sitera-backend/internal/model"

	"gorm.io/gorm"
)

type ArtikelRepository interface {
	GetPublished() ([]model.Artikel, error)
	GetBySlug(slug string) (*model.Artikel, error)
}

type artikelRepository struct {
	db *gorm.DB
}

func NewArtikelRepository(db *gorm.DB) ArtikelRepository {
	return &artikelRepository{db}
}

func (r *artikelRepository) GetPublished() ([]model.Artikel, error) {
	var list []model.Artikel
	err := r.db.Where("is_published = ?", true).
		Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *artikelRepository) GetBySlug(slug string) (*model.Artikel, error) {
	var artikel model.Artikel
	err := r.db.Where("slug = ? AND is_published = ?", slug, true).
		First(&artikel).Error
	if err != nil {
		return nil, err
	}
	return &artikel, nil
}
