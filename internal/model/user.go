package model

import "gorm.io/gorm"

// User adalah operator/petugas yang login ke panel admin.
type User struct {
	gorm.Model
	Nama     string `json:"nama"`
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"-"`
	Jabatan  string `json:"jabatan"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}
