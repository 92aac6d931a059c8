package handler

import (
	"errors"
	"time"

	"sitera-backend/internal/logger"
	"sitera-backend/internal/repository"
	"sitera-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type TeraUlangHandler struct {
	uc          *usecase.TeraUlangUsecase
	riwayatRepo repository.RiwayatRepository
}

func NewTeraUlangHandler(uc *usecase.TeraUlangUsecase, riwayatRepo repository.RiwayatRepository) *TeraUlangHandler {
	return &TeraUlangHandler{uc: uc, riwayatRepo: riwayatRepo}
}

type TeraUlangRequest struct {
	Kategori    string `json:"kategori"`
	WajibTeraID uint   `json:"wajib_tera_id"`
	Keterangan  string `json:"keterangan"`
}

func (h *TeraUlangHandler) TeraUlang(c *fiber.Ctx) error {
	var req TeraUlangRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if req.Kategori == "" || req.WajibTeraID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Kategori dan wajib_tera_id wajib diisi"})
	}

	// Nama petugas dari token, untuk kolom petugas di riwayat
	petugas, _ := c.Locals("nama").(string)

	hasil, err := h.uc.TeraUlang(req.Kategori, req.WajibTeraID, time.Now(), petugas, req.Keterangan)
	if err != nil {
		var tahapErr *usecase.TahapError
		if errors.As(err, &tahapErr) {
			// Sebagian tulisan sudah tersimpan; beri tahu operator tahap mana
			// yang gagal supaya bisa diulang atau dibereskan manual.
			logger.Log.WithError(tahapErr.Err).WithField("tahap", tahapErr.Tahap).
				Error("Tera ulang gagal di tengah jalan")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Tera ulang gagal, data mungkin belum sinkron. Silakan ulangi.",
				"tahap": tahapErr.Tahap,
			})
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Wajib tera tidak ditemukan"})
	}

	return c.JSON(fiber.Map{
		"message": "Tera ulang berhasil",
		"data":    hasil,
	})
}

func (h *TeraUlangHandler) GetRiwayat(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)

	riwayat, err := h.riwayatRepo.GetAll(limit)
	if err != nil {
		logger.Log.WithError(err).Error("Gagal mengambil riwayat tera")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat tera"})
	}

	return c.JSON(fiber.Map{"data": riwayat})
}
