package database

import (
	"time"

	"sitera-backend/internal/logger"
	"sitera-backend/internal/model"
	"sitera-backend/internal/tera"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll mengisi akun operator pertama dan contoh data wajib tera,
// supaya dashboard langsung hidup saat development.
func SeedAll(db *gorm.DB) {
	// 1. Akun operator pertama
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := model.User{
		Nama:     "Administrator Metrologi",
		Username: "admin",
		Password: string(hashedPassword),
		Jabatan:  "Kepala Seksi Kemetrologian",
		IsActive: true,
	}
	if err := db.FirstOrCreate(&admin, model.User{Username: admin.Username}).Error; err == nil {
		// Paksa password sinkron dengan "admin123" walau user sudah ada
		db.Model(&admin).Update("password", string(hashedPassword))
		logger.Log.Info("Seeding akun admin berhasil")
	}

	hariIni := time.Now()
	teraBaru := hariIni.Format(tera.FormatTanggal)
	berlakuBaru := tera.TanggalBerlakuBaru(hariIni).Format(tera.FormatTanggal)
	hampirHabis := hariIni.AddDate(0, 0, 7).Format(tera.FormatTanggal)
	sudahLewat := hariIni.AddDate(0, -1, 0).Format(tera.FormatTanggal)

	// 2. Pedagang pasar dengan timbangan yang hampir habis masa teranya
	pedagang := model.PedagangPasar{
		Nama:      "Siti Aminah",
		NamaUsaha: "Kios Sembako Berkah",
		NamaPasar: "Pasar Raya",
		Alamat:    "Blok C No. 14, Pasar Raya",
		NoHP:      "081234567890",
	}
	db.FirstOrCreate(&pedagang, model.PedagangPasar{Nama: pedagang.Nama, NamaPasar: pedagang.NamaPasar})
	seedUTTP(db, model.UTTP{
		Kategori: model.KategoriPasar, PemilikID: pedagang.ID,
		NamaAlat: "Timbangan Meja 10 kg", JenisUTTP: "Timbangan Meja",
		Merk: "Camry", Kapasitas: "10 kg", NomorSeri: "TM-0931",
		TanggalTera:    hariIni.AddDate(-1, 0, 7).Format(tera.FormatTanggal),
		TanggalBerlaku: hampirHabis,
	})

	// 3. SPBU dengan pompa ukur yang sudah lewat masa berlaku
	spbu := model.SPBU{
		NamaSPBU:        "SPBU 14.201.105",
		NomorSPBU:       "14.201.105",
		Alamat:          "Jl. By Pass KM 8",
		PenanggungJawab: "Hendra Wijaya",
		NoHP:            "081398765432",
	}
	db.FirstOrCreate(&spbu, model.SPBU{NomorSPBU: spbu.NomorSPBU})
	seedUTTP(db, model.UTTP{
		Kategori: model.KategoriSPBU, PemilikID: spbu.ID,
		NamaAlat: "Pompa Ukur BBM Dispenser 1", JenisUTTP: "Pompa Ukur BBM",
		Merk: "Tatsuno", NomorSeri: "PU-4471",
		TanggalTera:    hariIni.AddDate(-1, -1, 0).Format(tera.FormatTanggal),
		TanggalBerlaku: sudahLewat,
	})

	// 4. Wajib tera umum yang baru saja ditera
	umum := model.WajibTeraUmum{
		NamaPemilik: "CV Tani Makmur",
		NamaUsaha:   "Gudang Gabah Tani Makmur",
		JenisUsaha:  "Penggilingan Padi",
		Alamat:      "Jl. Raya Indarung No. 3",
	}
	db.FirstOrCreate(&umum, model.WajibTeraUmum{NamaPemilik: umum.NamaPemilik})
	seedUTTP(db, model.UTTP{
		Kategori: model.KategoriUmum, PemilikID: umum.ID,
		NamaAlat: "Timbangan Jembatan 40 ton", JenisUTTP: "Timbangan Jembatan",
		Merk: "Avery", Kapasitas: "40 ton", NomorSeri: "TJ-1204",
		TanggalTera:    teraBaru,
		TanggalBerlaku: berlakuBaru,
	})

	// 5. Artikel landing page
	artikel := model.Artikel{
		Judul:       "Apa itu Tera dan Tera Ulang?",
		Slug:        "apa-itu-tera-dan-tera-ulang",
		Ringkasan:   "Kenali kewajiban tera bagi pemilik alat ukur, takar, timbang, dan perlengkapannya.",
		Konten:      "Setiap UTTP yang dipakai untuk transaksi wajib ditera dan ditera ulang setiap tahun...",
		Penulis:     "Bidang Kemetrologian",
		IsPublished: true,
	}
	db.FirstOrCreate(&artikel, model.Artikel{Slug: artikel.Slug})

	logger.Log.Info("Seeding data contoh selesai")
}

func seedUTTP(db *gorm.DB, uttp model.UTTP) {
	db.FirstOrCreate(&uttp, model.UTTP{
		Kategori:  uttp.Kategori,
		PemilikID: uttp.PemilikID,
		NomorSeri: uttp.NomorSeri,
	})
}
