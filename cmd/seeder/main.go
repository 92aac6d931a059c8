package main

import (
	"sitera-backend/config"
	"sitera-backend/internal/database"
	"sitera-backend/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env manual karena ini script terpisah dari server
	if err := godotenv.Load(); err != nil {
		logger.Log.Warn("File .env tidak ditemukan, menggunakan environment variables sistem")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("Konfigurasi tidak lengkap")
	}
	logger.Init(cfg)

	if err := config.ConnectDB(cfg.DatabaseURL); err != nil {
		logger.Log.WithError(err).Fatal("Gagal koneksi ke database")
	}

	logger.Log.Info("Menjalankan seeder...")
	database.SeedAll(config.DB)
	logger.Log.Info("Seeding selesai")
}
