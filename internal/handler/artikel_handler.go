package handler

import (
	"sitera-backend/internal/logger"
	"sitera-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ArtikelHandler struct {
	repo repository.ArtikelRepository
}

func NewArtikelHandler(repo repository.ArtikelRepository) *ArtikelHandler {
	return &ArtikelHandler{repo: repo}
}

func (h *ArtikelHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetPublished()
	if err != nil {
		logger.Log.WithError(err).Error("Gagal mengambil artikel")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil artikel"})
	}

	return c.JSON(fiber.Map{"data": list})
}

func (h *ArtikelHandler) GetBySlug(c *fiber.Ctx) error {
	artikel, err := h.repo.GetBySlug(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Artikel tidak ditemukan"})
	}

	return c.JSON(fiber.Map{"data": artikel})
}
