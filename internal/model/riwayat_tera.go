package model

import "gorm.io/gorm"

// RiwayatTera adalah log audit tera ulang. Append-only: tidak pernah
// di-update atau dihapus oleh alur normal.
type RiwayatTera struct {
	gorm.Model
	Kategori    string `json:"kategori" gorm:"not null"`
	WajibTeraID uint   `json:"wajib_tera_id" gorm:"not null;index"`
	NamaPemilik string `json:"nama_pemilik"`
	Alamat      string `json:"alamat"`

	TanggalTeraLama    string `json:"tanggal_tera_lama"`
	TanggalBerlakuLama string `json:"tanggal_berlaku_lama"`
	TanggalTeraBaru    string `json:"tanggal_tera_baru"`
	TanggalBerlakuBaru string `json:"tanggal_berlaku_baru"`

	Petugas    string `json:"petugas"`
	Keterangan string `json:"keterangan"`
}
