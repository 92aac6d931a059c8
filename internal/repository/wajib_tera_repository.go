package repository

import (
	"fmt"

	"sitera-backend/internal/model"

	"gorm.io/gorm"
)

// WajibTeraInfo adalah ringkasan lintas kategori: tiap tabel punya nama kolom
// sendiri, di sini disamakan supaya logika tera ulang tidak perlu tahu
// tabel mana yang dipakai.
type WajibTeraInfo struct {
	ID     uint   `json:"id"`
	Nama   string `json:"nama"`
	Alamat string `json:"alamat"`
	NoHP   string `json:"no_hp"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

type WajibTeraRepository interface {
	GetPasar() ([]model.PedagangPasar, error)
	GetSPBU() ([]model.SPBU, error)
	GetUmum() ([]model.WajibTeraUmum, error)
	FindInfo(kategori string, id uint) (*WajibTeraInfo, error)
	UpdateStatus(kategori string, id uint, status string) error
	CountByKategori(kategori string) (int64, error)
}

type wajibTeraRepository struct {
	db *gorm.DB
}

func NewWajibTeraRepository(db *gorm.DB) WajibTeraRepository {
	return &wajibTeraRepository{db}
}

// queryKategori memilih tabel berdasarkan kategori dan menyamakan nama kolom.
// Satu-satunya tempat yang tahu pemetaan kategori -> tabel.
func (r *wajibTeraRepository) queryKategori(kategori string) (*gorm.DB, error) {
	switch kategori {
	case model.KategoriPasar:
		return r.db.Model(&model.PedagangPasar{}).
			Select("id, nama, alamat, no_hp, email, status"), nil
	case model.KategoriSPBU:
		return r.db.Model(&model.SPBU{}).
			Select("id, nama_spbu AS nama, alamat, no_hp, email, status"), nil
	case model.KategoriUmum:
		return r.db.Model(&model.WajibTeraUmum{}).
			Select("id, nama_pemilik AS nama, alamat, no_hp, email, status"), nil
	}
	return nil, fmt.Errorf("kategori tidak dikenal: %s", kategori)
}

func (r *wajibTeraRepository) modelKategori(kategori string) (interface{}, error) {
	switch kategori {
	case model.KategoriPasar:
		return &model.PedagangPasar{}, nil
	case model.KategoriSPBU:
		return &model.SPBU{}, nil
	case model.KategoriUmum:
		return &model.WajibTeraUmum{}, nil
	}
	return nil, fmt.Errorf("kategori tidak dikenal: %s", kategori)
}

func (r *wajibTeraRepository) GetPasar() ([]model.PedagangPasar, error) {
	var list []model.PedagangPasar
	err := r.db.Preload("UTTP", "kategori = ?", model.KategoriPasar).
		Order("nama asc").Find(&list).Error
	return list, err
}

func (r *wajibTeraRepository) GetSPBU() ([]model.SPBU, error) {
	var list []model.SPBU
	err := r.db.Order("nama_spbu asc").Find(&list).Error
	return list, err
}

func (r *wajibTeraRepository) GetUmum() ([]model.WajibTeraUmum, error) {
	var list []model.WajibTeraUmum
	err := r.db.Order("nama_pemilik asc").Find(&list).Error
	return list, err
}

func (r *wajibTeraRepository) FindInfo(kategori string, id uint) (*WajibTeraInfo, error) {
	q, err := r.queryKategori(kategori)
	if err != nil {
		return nil, err
	}

	var info WajibTeraInfo
	if err := q.Where("id = ?", id).Take(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *wajibTeraRepository) UpdateStatus(kategori string, id uint, status string) error {
	m, err := r.modelKategori(kategori)
	if err != nil {
		return err
	}
	return r.db.Model(m).Where("id = ?", id).Update("status", status).Error
}

func (r *wajibTeraRepository) CountByKategori(kategori string) (int64, error) {
	m, err := r.modelKategori(kategori)
	if err != nil {
		return 0, err
	}
	var count int64
	err = r.db.Model(m).Count(&count).Error
	return count, err
}
