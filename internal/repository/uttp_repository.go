package repository

import (
	"sitera-backend/internal/model"

	"gorm.io/gorm"
)

type UTTPRepository interface {
	Create(uttp *model.UTTP) error
	GetAll() ([]model.UTTP, error)
	GetByPemilik(kategori string, pemilikID uint) ([]model.UTTP, error)
	// UpdateTanggalByPemilik menulis tanggal tera dan tanggal berlaku baru ke
	// seluruh UTTP milik satu wajib tera dalam satu update.
	UpdateTanggalByPemilik(kategori string, pemilikID uint, tanggalTera, tanggalBerlaku string) error
}

type uttpRepository struct {
	db *gorm.DB
}

func NewUTTPRepository(db *gorm.DB) UTTPRepository {
	return &uttpRepository{db}
}

func (r *uttpRepository) Create(uttp *model.UTTP) error {
	return r.db.Create(uttp).Error
}

func (r *uttpRepository) GetAll() ([]model.UTTP, error) {
	var list []model.UTTP
	err := r.db.Order("tanggal_berlaku asc").Find(&list).Error
	return list, err
}

func (r *uttpRepository) GetByPemilik(kategori string, pemilikID uint) ([]model.UTTP, error) {
	var list []model.UTTP
	err := r.db.Where("kategori = ? AND pemilik_id = ?", kategori, pemilikID).
		Order("nama_alat asc").Find(&list).Error
	return list, err
}

func (r *uttpRepository) UpdateTanggalByPemilik(kategori string, pemilikID uint, tanggalTera, tanggalBerlaku string) error {
	return r.db.Model(&model.UTTP{}).
		Where("kategori = ? AND pemilik_id = ?", kategori, pemilikID).
		Updates(map[string]interface{}{
			"tanggal_tera":    tanggalTera,
			"tanggal_berlaku": tanggalBerlaku,
		}).Error
}
