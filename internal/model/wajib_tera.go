package model

import "gorm.io/gorm"

// Kategori wajib tera. Setiap kategori punya tabel sendiri, dibedakan lewat
// tag kategori di UTTP, riwayat, dan notifikasi.
const (
	KategoriPasar = "PASAR"
	KategoriSPBU  = "SPBU"
	KategoriUmum  = "UMUM"
)

// PedagangPasar adalah wajib tera kategori pasar (pedagang dengan timbangan).
type PedagangPasar struct {
	gorm.Model
	Nama      string `json:"nama" gorm:"not null"`
	NamaUsaha string `json:"nama_usaha"`
	NamaPasar string `json:"nama_pasar"`
	Alamat    string `json:"alamat"`
	NoHP      string `json:"no_hp"`
	Email     string `json:"email"`
	Foto      string `json:"foto"`
	Status    string `json:"status" gorm:"default:AKTIF"` // Cache; sumber kebenaran tetap tanggal_berlaku UTTP

	UTTP []UTTP `json:"uttp,omitempty" gorm:"foreignKey:PemilikID;references:ID"`
}

// SPBU adalah wajib tera kategori stasiun pengisian bahan bakar.
type SPBU struct {
	gorm.Model
	NamaSPBU        string `json:"nama_spbu" gorm:"not null"`
	NomorSPBU       string `json:"nomor_spbu" gorm:"unique"`
	Alamat          string `json:"alamat"`
	PenanggungJawab string `json:"penanggung_jawab"`
	NoHP            string `json:"no_hp"`
	Email           string `json:"email"`
	Foto            string `json:"foto"`
	Status          string `json:"status" gorm:"default:AKTIF"`
}

// WajibTeraUmum adalah wajib tera di luar pasar dan SPBU (toko, industri, dll).
type WajibTeraUmum struct {
	gorm.Model
	NamaPemilik string `json:"nama_pemilik" gorm:"not null"`
	NamaUsaha   string `json:"nama_usaha"`
	JenisUsaha  string `json:"jenis_usaha"`
	Alamat      string `json:"alamat"`
	NoHP        string `json:"no_hp"`
	Email       string `json:"email"`
	Foto        string `json:"foto"`
	Status      string `json:"status" gorm:"default:AKTIF"`
}
