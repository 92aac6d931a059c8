package repository

import (
	"sitera-backend/internal/model"

	"gorm.io/gorm"
)

type RiwayatRepository interface {
	Create(riwayat *model.RiwayatTera) error
	GetAll(limit int) ([]model.RiwayatTera, error)
	GetByWajibTera(kategori string, wajibTeraID uint) ([]model.RiwayatTera, error)
}

type riwayatRepository struct {
	db *gorm.DB
}

func NewRiwayatRepository(db *gorm.DB) RiwayatRepository {
	return &riwayatRepository{db}
}

func (r *riwayatRepository) Create(riwayat *model.RiwayatTera) error {
	return r.db.Create(riwayat).Error
}

func (r *riwayatRepository) GetAll(limit int) ([]model.RiwayatTera, error) {
	var list []model.RiwayatTera
	q := r.db.Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *riwayatRepository) GetByWajibTera(kategori string, wajibTeraID uint) ([]model.RiwayatTera, error) {
	var list []model.RiwayatTera
	err := r.db.Where("kategori = ? AND wajib_tera_id = ?", kategori, wajibTeraID).
		Order("created_at desc").Find(&list).Error
	return list, err
}
