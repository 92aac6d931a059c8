package model

import "gorm.io/gorm"

// Status permohonan tera/tera ulang dari halaman publik.
const (
	PermohonanPending  = "PENDING"
	PermohonanDiproses = "DIPROSES"
	PermohonanSelesai  = "SELESAI"
)

// PermohonanTera adalah pengajuan tera/tera ulang yang masuk dari landing page.
type PermohonanTera struct {
	gorm.Model
	NomorRegistrasi string `json:"nomor_registrasi" gorm:"unique;not null"`
	Kategori        string `json:"kategori"`
	NamaPemilik     string `json:"nama_pemilik" gorm:"not null"`
	NamaUsaha       string `json:"nama_usaha"`
	Alamat          string `json:"alamat"`
	NoHP            string `json:"no_hp"`
	JenisUTTP       string `json:"jenis_uttp"`
	JumlahUTTP      int    `json:"jumlah_uttp" gorm:"default:1"`
	MintaSKHP       bool   `json:"minta_skhp" gorm:"default:false"` // Surat Keterangan Hasil Pengujian
	Status          string `json:"status" gorm:"default:PENDING"`
	Keterangan      string `json:"keterangan"`
}
