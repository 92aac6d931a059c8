package handler

import (
	"fmt"
	"strconv"
	"strings"

	"sitera-backend/internal/logger"
	"sitera-backend/internal/model"
	"sitera-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PermohonanHandler struct {
	repo      repository.PermohonanRepository
	notifRepo repository.NotifikasiRepository
}

func NewPermohonanHandler(repo repository.PermohonanRepository, notifRepo repository.NotifikasiRepository) *PermohonanHandler {
	return &PermohonanHandler{repo: repo, notifRepo: notifRepo}
}

type PermohonanRequest struct {
	Kategori    string `json:"kategori"`
	NamaPemilik string `json:"nama_pemilik"`
	NamaUsaha   string `json:"nama_usaha"`
	Alamat      string `json:"alamat"`
	NoHP        string `json:"no_hp"`
	JenisUTTP   string `json:"jenis_uttp"`
	JumlahUTTP  int    `json:"jumlah_uttp"`
	MintaSKHP   bool   `json:"minta_skhp"`
}

// Create menerima permohonan tera/tera ulang dari landing page publik dan
// menerbitkan notifikasi PERMOHONAN_BARU untuk operator.
func (h *PermohonanHandler) Create(c *fiber.Ctx) error {
	var req PermohonanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if req.NamaPemilik == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama pemilik wajib diisi"})
	}
	if req.JumlahUTTP <= 0 {
		req.JumlahUTTP = 1
	}

	permohonan := model.PermohonanTera{
		NomorRegistrasi: "REG-" + strings.ToUpper(uuid.NewString()[:8]),
		Kategori:        req.Kategori,
		NamaPemilik:     req.NamaPemilik,
		NamaUsaha:       req.NamaUsaha,
		Alamat:          req.Alamat,
		NoHP:            req.NoHP,
		JenisUTTP:       req.JenisUTTP,
		JumlahUTTP:      req.JumlahUTTP,
		MintaSKHP:       req.MintaSKHP,
		Status:          model.PermohonanPending,
	}
	if err := h.repo.Create(&permohonan); err != nil {
		logger.Log.WithError(err).Error("Gagal menyimpan permohonan")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan permohonan"})
	}

	// Notifikasi hanya pelengkap; kalau gagal cukup dicatat di log
	notif := model.Notifikasi{
		Jenis: model.NotifPermohonanBaru,
		Judul: "Permohonan tera baru",
		Pesan: fmt.Sprintf("%s mengajukan tera untuk %d unit %s (%s)",
			req.NamaPemilik, req.JumlahUTTP, req.JenisUTTP, permohonan.NomorRegistrasi),
	}
	if err := h.notifRepo.Create(&notif); err != nil {
		logger.Log.WithError(err).Warn("Gagal membuat notifikasi permohonan baru")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Permohonan berhasil dikirim",
		"data": fiber.Map{
			"nomor_registrasi": permohonan.NomorRegistrasi,
		},
	})
}

func (h *PermohonanHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll(c.Query("status"))
	if err != nil {
		logger.Log.WithError(err).Error("Gagal mengambil daftar permohonan")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil daftar permohonan"})
	}

	return c.JSON(fiber.Map{"data": list})
}

type UpdateStatusPermohonanRequest struct {
	Status     string `json:"status"`
	Keterangan string `json:"keterangan"`
}

func (h *PermohonanHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req UpdateStatusPermohonanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	switch req.Status {
	case model.PermohonanPending, model.PermohonanDiproses, model.PermohonanSelesai:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status tidak dikenal"})
	}

	permohonan, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Permohonan tidak ditemukan"})
	}

	permohonan.Status = req.Status
	if req.Keterangan != "" {
		permohonan.Keterangan = req.Keterangan
	}
	if err := h.repo.Update(permohonan); err != nil {
		logger.Log.WithError(err).Error("Gagal memperbarui permohonan")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memperbarui permohonan"})
	}

	return c.JSON(fiber.Map{
		"message": "Status permohonan diperbarui",
		"data":    permohonan,
	})
}
