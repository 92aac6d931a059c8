package model

import "gorm.io/gorm"

// UTTP adalah alat Ukur, Takar, Timbang, dan Perlengkapannya yang wajib
// ditera ulang secara berkala. Pemilik ditentukan oleh pasangan
// (kategori, pemilik_id) karena tiap kategori punya tabel sendiri.
type UTTP struct {
	gorm.Model
	Kategori  string `json:"kategori" gorm:"not null;index:idx_uttp_pemilik"` // PASAR / SPBU / UMUM
	PemilikID uint   `json:"pemilik_id" gorm:"not null;index:idx_uttp_pemilik"`

	NamaAlat  string `json:"nama_alat" gorm:"not null"`
	JenisUTTP string `json:"jenis_uttp"` // Contoh: Timbangan Meja, Pompa Ukur BBM
	Merk      string `json:"merk"`
	Kapasitas string `json:"kapasitas"`
	NomorSeri string `json:"nomor_seri"`

	TanggalTera    string `json:"tanggal_tera"`    // Format YYYY-MM-DD, tanggal tera terakhir
	TanggalBerlaku string `json:"tanggal_berlaku"` // Format YYYY-MM-DD, tanggal tera + 1 tahun
}
