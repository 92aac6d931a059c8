package model

import "gorm.io/gorm"

// Jenis notifikasi yang muncul di panel admin.
const (
	NotifPermohonanBaru = "PERMOHONAN_BARU"
	NotifAkanBerakhir   = "AKAN_BERAKHIR"
	NotifBerakhir       = "BERAKHIR"
)

// Notifikasi adalah pesan sistem untuk operator. Hanya flag is_read yang
// boleh berubah setelah dibuat.
type Notifikasi struct {
	gorm.Model
	Jenis string `json:"jenis" gorm:"not null;index"`
	Judul string `json:"judul" gorm:"not null"`
	Pesan string `json:"pesan"`

	// Referensi opsional ke wajib tera yang memicu notifikasi
	Kategori    string `json:"kategori"`
	WajibTeraID *uint  `json:"wajib_tera_id"`

	IsRead bool `json:"is_read" gorm:"default:false;index"`
}
