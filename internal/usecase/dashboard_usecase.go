package usecase

import (
	"time"

	"sitera-backend/internal/model"
	"sitera-backend/internal/repository"
	"sitera-backend/internal/tera"
)

// TitikTren adalah satu titik pada grafik pendaftaran UTTP.
type TitikTren struct {
	Periode string `json:"periode"`
	Jumlah  int    `json:"jumlah"`
}

// StatistikDashboard adalah data turunan untuk halaman dashboard. Semuanya
// dihitung ulang dari baris UTTP setiap kali dipanggil; kolom status di
// database tidak pernah dipercaya sebagai sumber kebenaran.
type StatistikDashboard struct {
	TotalWajibTera        map[string]int64 `json:"total_wajib_tera"`
	StatusUTTP            map[string]int   `json:"status_uttp"`
	JenisUTTP             map[string]int   `json:"jenis_uttp"`
	TrenBulanan           []TitikTren      `json:"tren_bulanan"`
	TrenHarian            []TitikTren      `json:"tren_harian"`
	PermohonanPending     int64            `json:"permohonan_pending"`
	NotifikasiBelumDibaca int64            `json:"notifikasi_belum_dibaca"`
}

type DashboardUsecase struct {
	wajibRepo      repository.WajibTeraRepository
	uttpRepo       repository.UTTPRepository
	permohonanRepo repository.PermohonanRepository
	notifRepo      repository.NotifikasiRepository
}

func NewDashboardUsecase(
	wajibRepo repository.WajibTeraRepository,
	uttpRepo repository.UTTPRepository,
	permohonanRepo repository.PermohonanRepository,
	notifRepo repository.NotifikasiRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		wajibRepo:      wajibRepo,
		uttpRepo:       uttpRepo,
		permohonanRepo: permohonanRepo,
		notifRepo:      notifRepo,
	}
}

func (u *DashboardUsecase) Statistik(hariIni time.Time) (*StatistikDashboard, error) {
	uttps, err := u.uttpRepo.GetAll()
	if err != nil {
		return nil, err
	}

	stats := &StatistikDashboard{
		TotalWajibTera: make(map[string]int64),
		StatusUTTP:     HitungStatusUTTP(uttps, hariIni),
		JenisUTTP:      HitungJenisUTTP(uttps),
		TrenBulanan:    TrenBulanan(uttps, hariIni, 6),
		TrenHarian:     TrenHarian(uttps, hariIni, 7),
	}

	for _, kategori := range []string{model.KategoriPasar, model.KategoriSPBU, model.KategoriUmum} {
		total, err := u.wajibRepo.CountByKategori(kategori)
		if err != nil {
			return nil, err
		}
		stats.TotalWajibTera[kategori] = total
	}

	stats.PermohonanPending, err = u.permohonanRepo.CountByStatus(model.PermohonanPending)
	if err != nil {
		return nil, err
	}

	stats.NotifikasiBelumDibaca, err = u.notifRepo.CountUnread()
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// HitungStatusUTTP menghitung jumlah UTTP per status, dihitung ulang dari
// tanggal berlaku setiap pemanggilan.
func HitungStatusUTTP(uttps []model.UTTP, hariIni time.Time) map[string]int {
	buckets := map[string]int{
		tera.StatusAktif:        0,
		tera.StatusAkanBerakhir: 0,
		tera.StatusBerakhir:     0,
	}
	for _, u := range uttps {
		buckets[tera.StatusTera(u.TanggalBerlaku, hariIni)]++
	}
	return buckets
}

// HitungJenisUTTP menghitung jumlah UTTP per jenis alat.
func HitungJenisUTTP(uttps []model.UTTP) map[string]int {
	byJenis := make(map[string]int)
	for _, u := range uttps {
		jenis := u.JenisUTTP
		if jenis == "" {
			jenis = "LAINNYA"
		}
		byJenis[jenis]++
	}
	return byJenis
}

// TrenBulanan menghitung jumlah pendaftaran UTTP per bulan untuk n bulan
// terakhir (termasuk bulan berjalan), urut dari yang paling lama.
func TrenBulanan(uttps []model.UTTP, hariIni time.Time, n int) []TitikTren {
	perBulan := make(map[string]int)
	for _, u := range uttps {
		perBulan[u.CreatedAt.Format("2006-01")]++
	}

	tren := make([]TitikTren, 0, n)
	awal := time.Date(hariIni.Year(), hariIni.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(n - 1), 0)
	for i := 0; i < n; i++ {
		periode := awal.AddDate(0, i, 0).Format("2006-01")
		tren = append(tren, TitikTren{Periode: periode, Jumlah: perBulan[periode]})
	}
	return tren
}

// TrenHarian sama seperti TrenBulanan tapi per hari untuk n hari terakhir.
func TrenHarian(uttps []model.UTTP, hariIni time.Time, n int) []TitikTren {
	perHari := make(map[string]int)
	for _, u := range uttps {
		perHari[u.CreatedAt.Format(tera.FormatTanggal)]++
	}

	tren := make([]TitikTren, 0, n)
	awal := time.Date(hariIni.Year(), hariIni.Month(), hariIni.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -(n - 1))
	for i := 0; i < n; i++ {
		periode := awal.AddDate(0, 0, i).Format(tera.FormatTanggal)
		tren = append(tren, TitikTren{Periode: periode, Jumlah: perHari[periode]})
	}
	return tren
}
