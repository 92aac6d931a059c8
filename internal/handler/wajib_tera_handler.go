package handler

import (
	"strconv"
	"time"

	"sitera-backend/internal/logger"
	"sitera-backend/internal/model"
	"sitera-backend/internal/repository"
	"sitera-backend/internal/tera"

	"github.com/gofiber/fiber/v2"
)

type WajibTeraHandler struct {
	wajibRepo   repository.WajibTeraRepository
	uttpRepo    repository.UTTPRepository
	riwayatRepo repository.RiwayatRepository
}

func NewWajibTeraHandler(
	wajibRepo repository.WajibTeraRepository,
	uttpRepo repository.UTTPRepository,
	riwayatRepo repository.RiwayatRepository,
) *WajibTeraHandler {
	return &WajibTeraHandler{
		wajibRepo:   wajibRepo,
		uttpRepo:    uttpRepo,
		riwayatRepo: riwayatRepo,
	}
}

// ringkasanTera adalah status gabungan UTTP milik satu wajib tera, dihitung
// ulang dari tanggal berlaku setiap kali daftar dimuat.
type ringkasanTera struct {
	Status     string
	SisaHari   int
	AdaSisa    bool
	JumlahUTTP int
}

// petaRingkasan mengelompokkan seluruh UTTP satu kategori per pemilik.
// Pemilik tanpa UTTP tidak ada di peta; penampil memperlakukannya BERAKHIR.
func (h *WajibTeraHandler) petaRingkasan(kategori string, hariIni time.Time) (map[uint]ringkasanTera, error) {
	uttps, err := h.uttpRepo.GetAll()
	if err != nil {
		return nil, err
	}

	peta := make(map[uint]ringkasanTera)
	for _, u := range uttps {
		if u.Kategori != kategori {
			continue
		}

		r, ok := peta[u.PemilikID]
		status := tera.StatusTera(u.TanggalBerlaku, hariIni)
		sisa, adaSisa := tera.SisaHari(u.TanggalBerlaku, hariIni)
		if !ok {
			peta[u.PemilikID] = ringkasanTera{Status: status, SisaHari: sisa, AdaSisa: adaSisa, JumlahUTTP: 1}
			continue
		}

		r.Status = tera.StatusTerburuk(r.Status, status)
		if adaSisa && (!r.AdaSisa || sisa < r.SisaHari) {
			r.SisaHari = sisa
			r.AdaSisa = true
		}
		r.JumlahUTTP++
		peta[u.PemilikID] = r
	}
	return peta, nil
}

func barisPemilik(id uint, data interface{}, peta map[uint]ringkasanTera) fiber.Map {
	baris := fiber.Map{"pemilik": data}
	if r, ok := peta[id]; ok {
		baris["status_tera"] = r.Status
		baris["jumlah_uttp"] = r.JumlahUTTP
		if r.AdaSisa {
			baris["sisa_hari"] = r.SisaHari
		}
	} else {
		// Tanpa UTTP tidak ada tanggal berlaku yang bisa dihitung
		baris["status_tera"] = tera.StatusBerakhir
		baris["jumlah_uttp"] = 0
	}
	return baris
}

func (h *WajibTeraHandler) GetPasar(c *fiber.Ctx) error {
	list, err := h.wajibRepo.GetPasar()
	if err != nil {
		logger.Log.WithError(err).Error("Gagal mengambil data pedagang pasar")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data pedagang pasar"})
	}

	peta, err := h.petaRingkasan(model.KategoriPasar, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghitung status tera"})
	}

	data := make([]fiber.Map, 0, len(list))
	for i := range list {
		data = append(data, barisPemilik(list[i].ID, &list[i], peta))
	}
	return c.JSON(fiber.Map{"data": data})
}

func (h *WajibTeraHandler) GetSPBU(c *fiber.Ctx) error {
	list, err := h.wajibRepo.GetSPBU()
	if err != nil {
		logger.Log.WithError(err).Error("Gagal mengambil data SPBU")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data SPBU"})
	}

	peta, err := h.petaRingkasan(model.KategoriSPBU, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghitung status tera"})
	}

	data := make([]fiber.Map, 0, len(list))
	for i := range list {
		data = append(data, barisPemilik(list[i].ID, &list[i], peta))
	}
	return c.JSON(fiber.Map{"data": data})
}

func (h *WajibTeraHandler) GetUmum(c *fiber.Ctx) error {
	list, err := h.wajibRepo.GetUmum()
	if err != nil {
		logger.Log.WithError(err).Error("Gagal mengambil data wajib tera umum")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data wajib tera umum"})
	}

	peta, err := h.petaRingkasan(model.KategoriUmum, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghitung status tera"})
	}

	data := make([]fiber.Map, 0, len(list))
	for i := range list {
		data = append(data, barisPemilik(list[i].ID, &list[i], peta))
	}
	return c.JSON(fiber.Map{"data": data})
}

// GetDetail mengembalikan satu wajib tera beserta UTTP dan riwayat teranya.
func (h *WajibTeraHandler) GetDetail(c *fiber.Ctx) error {
	kategori := c.Params("kategori")
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	info, err := h.wajibRepo.FindInfo(kategori, uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Wajib tera tidak ditemukan"})
	}

	uttps, err := h.uttpRepo.GetByPemilik(kategori, uint(id))
	if err != nil {
		logger.Log.WithError(err).Error("Gagal mengambil daftar UTTP")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil daftar UTTP"})
	}

	hariIni := time.Now()
	dataUTTP := make([]fiber.Map, 0, len(uttps))
	for _, u := range uttps {
		baris := fiber.Map{
			"uttp":   u,
			"status": tera.StatusTera(u.TanggalBerlaku, hariIni),
		}
		if sisa, ok := tera.SisaHari(u.TanggalBerlaku, hariIni); ok {
			baris["sisa_hari"] = sisa
		}
		dataUTTP = append(dataUTTP, baris)
	}

	riwayat, err := h.riwayatRepo.GetByWajibTera(kategori, uint(id))
	if err != nil {
		logger.Log.WithError(err).Error("Gagal mengambil riwayat tera")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat tera"})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"pemilik": info,
			"uttp":    dataUTTP,
			"riwayat": riwayat,
		},
	})
}
