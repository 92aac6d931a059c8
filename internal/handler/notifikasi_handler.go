package handler

import (
	"strconv"

	"sitera-backend/internal/logger"
	"sitera-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type NotifikasiHandler struct {
	repo repository.NotifikasiRepository
}

func NewNotifikasiHandler(repo repository.NotifikasiRepository) *NotifikasiHandler {
	return &NotifikasiHandler{repo: repo}
}

// GetAll mendukung filter ?jenis=, ?is_read=true|false, dan ?q= (cari teks).
func (h *NotifikasiHandler) GetAll(c *fiber.Ctx) error {
	filter := repository.NotifikasiFilter{
		Jenis: c.Query("jenis"),
		Teks:  c.Query("q"),
	}
	if isRead := c.Query("is_read"); isRead != "" {
		val := isRead == "true"
		filter.IsRead = &val
	}

	list, err := h.repo.GetAll(filter)
	if err != nil {
		logger.Log.WithError(err).Error("Gagal mengambil notifikasi")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil notifikasi"})
	}

	belumDibaca, err := h.repo.CountUnread()
	if err != nil {
		logger.Log.WithError(err).Error("Gagal menghitung notifikasi belum dibaca")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil notifikasi"})
	}

	return c.JSON(fiber.Map{
		"data":         list,
		"belum_dibaca": belumDibaca,
	})
}

func (h *NotifikasiHandler) MarkRead(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	if err := h.repo.MarkRead(uint(id)); err != nil {
		logger.Log.WithError(err).Error("Gagal menandai notifikasi terbaca")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menandai notifikasi"})
	}

	return c.JSON(fiber.Map{"message": "Notifikasi ditandai terbaca"})
}

func (h *NotifikasiHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.repo.MarkAllRead(); err != nil {
		logger.Log.WithError(err).Error("Gagal menandai semua notifikasi terbaca")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menandai notifikasi"})
	}

	return c.JSON(fiber.Map{"message": "Semua notifikasi ditandai terbaca"})
}
