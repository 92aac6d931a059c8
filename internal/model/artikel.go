package model

import "gorm.io/gorm"

// Artikel untuk halaman publik (berita dan edukasi kemetrologian).
type Artikel struct {
	gorm.Model
	Judul       string `json:"judul" gorm:"not null"`
	Slug        string `json:"slug" gorm:"unique;not null"`
	Ringkasan   string `json:"ringkasan"`
	Konten      string `json:"konten"`
	Foto        string `json:"foto"`
	Penulis     string `json:"penulis"`
	IsPublished bool   `json:"is_published" gorm:"default:true"`
}
