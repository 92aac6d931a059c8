package repository

import (
	"sitera-backend/internal/model"

	"gorm.io/gorm"
)

// NotifikasiFilter: semua field opsional, kosong berarti tidak difilter.
type NotifikasiFilter struct {
	Jenis  string
	IsRead *bool
	Teks   string // Cari di judul dan pesan
}

type NotifikasiRepository interface {
	Create(notif *model.Notifikasi) error
	GetAll(filter NotifikasiFilter) ([]model.Notifikasi, error)
	MarkRead(id uint) error
	// MarkAllRead menandai semua notifikasi terbaca dalam SATU update massal,
	// bukan satu per satu.
	MarkAllRead() error
	CountUnread() (int64, error)
	// AdaBelumDibaca dipakai watcher untuk mencegah notifikasi ganda selama
	// notifikasi sejenis untuk wajib tera yang sama belum dibaca operator.
	AdaBelumDibaca(jenis, kategori string, wajibTeraID uint) (bool, error)
}

type notifikasiRepository struct {
	db *gorm.DB
}

func NewNotifikasiRepository(db *gorm.DB) NotifikasiRepository {
	return &notifikasiRepository{db}
}

func (r *notifikasiRepository) Create(notif *model.Notifikasi) error {
	return r.db.Create(notif).Error
}

func (r *notifikasiRepository) GetAll(filter NotifikasiFilter) ([]model.Notifikasi, error) {
	q := r.db.Order("created_at desc")
	if filter.Jenis != "" {
		q = q.Where("jenis = ?", filter.Jenis)
	}
	if filter.IsRead != nil {
		q = q.Where("is_read = ?", *filter.IsRead)
	}
	if filter.Teks != "" {
		teks := "%" + filter.Teks + "%"
		q = q.Where("judul ILIKE ? OR pesan ILIKE ?", teks, teks)
	}

	var list []model.Notifikasi
	err := q.Find(&list).Error
	return list, err
}

func (r *notifikasiRepository) MarkRead(id uint) error {
	return r.db.Model(&model.Notifikasi{}).Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *notifikasiRepository) MarkAllRead() error {
	return r.db.Model(&model.Notifikasi{}).Where("is_read = ?", false).
		Update("is_read", true).Error
}

func (r *notifikasiRepository) CountUnread() (int64, error) {
	var count int64
	err := r.db.Model(&model.Notifikasi{}).Where("is_read = ?", false).
		Count(&count).Error
	return count, err
}

func (r *notifikasiRepository) AdaBelumDibaca(jenis, kategori string, wajibTeraID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Notifikasi{}).
		Where("jenis = ? AND kategori = ? AND wajib_tera_id = ? AND is_read = ?",
			jenis, kategori, wajibTeraID, false).
		Count(&count).Error
	return count > 0, err
}
