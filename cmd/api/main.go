package main

import (
	"sitera-backend/config"
	"sitera-backend/internal/logger"
	"sitera-backend/internal/mailer"
	"sitera-backend/internal/repository"
	"sitera-backend/internal/routes"
	"sitera-backend/internal/scheduler"
	"sitera-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
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
	logger.Log.Info("Database terhubung")

	app := fiber.New()

	// Middleware global
	app.Use(cors.New())        // Panel admin dan landing page jalan di origin lain
	app.Use(fiberlogger.New()) // Log request ke terminal

	routes.SetupAuthRoutes(app, config.DB, cfg.JWTSecret)
	routes.SetupDashboardRoutes(app, config.DB, cfg.JWTSecret)
	routes.SetupWajibTeraRoutes(app, config.DB, cfg.JWTSecret)
	routes.SetupTeraUlangRoutes(app, config.DB, cfg.JWTSecret)
	routes.SetupNotifikasiRoutes(app, config.DB, cfg.JWTSecret)
	routes.SetupPermohonanRoutes(app, config.DB, cfg.JWTSecret)
	routes.SetupArtikelRoutes(app, config.DB)

	// Pengawasan masa berlaku berkala: status pemilik dan notifikasi
	// diperbarui tanpa menunggu operator membuka dashboard.
	pengawasan := usecase.NewPengawasanUsecase(
		repository.NewWajibTeraRepository(config.DB),
		repository.NewUTTPRepository(config.DB),
		repository.NewNotifikasiRepository(config.DB),
		pengirimEmail(cfg),
		logger.Log,
	)
	sched := scheduler.New(pengawasan, logger.Log, config.GetEnv("JADWAL_PENGAWASAN", scheduler.SpecDefault))
	if err := sched.Start(); err != nil {
		logger.Log.WithError(err).Fatal("Gagal menjalankan scheduler pengawasan")
	}
	defer sched.Stop()

	logger.Log.Infof("Server siap di port :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Log.WithError(err).Fatal("Server berhenti")
	}
}

// pengirimEmail mengembalikan nil ketika SMTP tidak dikonfigurasi; nilai nil
// yang diketik *mailer.Mailer tidak boleh bocor ke interface.
func pengirimEmail(cfg *config.AppConfig) usecase.PengirimEmail {
	m := mailer.New(cfg)
	if m == nil {
		return nil
	}
	return m
}
