package usecase

import (
	"fmt"
	"time"

	"sitera-backend/internal/model"
	"sitera-backend/internal/repository"
	"sitera-backend/internal/tera"
)

// Tahapan tera ulang. Dipakai di TahapError agar operator tahu persis langkah
// mana yang gagal, karena ketiga tulisan di bawah bukan satu transaksi.
const (
	TahapStatusPemilik = "update_status_pemilik"
	TahapTanggalUTTP   = "update_tanggal_uttp"
	TahapCatatRiwayat  = "catat_riwayat"
)

// TahapError menandai kegagalan di tengah alur tera ulang. Tahap sebelumnya
// sudah tersimpan dan TIDAK di-rollback; data pemilik dan UTTP bisa sementara
// tidak sinkron sampai operator mengulang prosesnya.
type TahapError struct {
	Tahap string
	Err   error
}

func (e *TahapError) Error() string {
	return fmt.Sprintf("tera ulang gagal di tahap %s: %v", e.Tahap, e.Err)
}

func (e *TahapError) Unwrap() error { return e.Err }

// HasilTeraUlang dikembalikan ke handler setelah seluruh tahap sukses.
type HasilTeraUlang struct {
	Kategori       string `json:"kategori"`
	WajibTeraID    uint   `json:"wajib_tera_id"`
	NamaPemilik    string `json:"nama_pemilik"`
	TanggalTera    string `json:"tanggal_tera"`
	TanggalBerlaku string `json:"tanggal_berlaku"`
	JumlahUTTP     int    `json:"jumlah_uttp"`
}

type TeraUlangUsecase struct {
	wajibRepo   repository.WajibTeraRepository
	uttpRepo    repository.UTTPRepository
	riwayatRepo repository.RiwayatRepository
}

func NewTeraUlangUsecase(
	wajibRepo repository.WajibTeraRepository,
	uttpRepo repository.UTTPRepository,
	riwayatRepo repository.RiwayatRepository,
) *TeraUlangUsecase {
	return &TeraUlangUsecase{
		wajibRepo:   wajibRepo,
		uttpRepo:    uttpRepo,
		riwayatRepo: riwayatRepo,
	}
}

// TeraUlang menjalankan alur tera ulang satu wajib tera:
//  1. hitung tanggal tera baru (hari ini) dan masa berlaku baru (+1 tahun)
//  2. set status pemilik menjadi AKTIF
//  3. tulis tanggal baru ke seluruh UTTP milik pemilik itu (satu update massal)
//  4. catat satu baris riwayat berisi tanggal lama dan baru
//
// Tahap 2-4 dijalankan berurutan tanpa transaksi; kalau gagal di tengah,
// error yang kembali menyebutkan tahapnya dan tahap yang sudah lewat tetap
// tersimpan. Dua operator yang menera ulang record sama secara bersamaan
// berakhir last-write-wins.
func (u *TeraUlangUsecase) TeraUlang(kategori string, wajibTeraID uint, hariIni time.Time, petugas, keterangan string) (*HasilTeraUlang, error) {
	info, err := u.wajibRepo.FindInfo(kategori, wajibTeraID)
	if err != nil {
		return nil, fmt.Errorf("wajib tera tidak ditemukan: %w", err)
	}

	// Tanggal lama diambil dari UTTP sebelum ditimpa, untuk riwayat.
	uttps, err := u.uttpRepo.GetByPemilik(kategori, wajibTeraID)
	if err != nil {
		return nil, fmt.Errorf("gagal membaca daftar UTTP: %w", err)
	}
	teraLama, berlakuLama := "", ""
	if len(uttps) > 0 {
		teraLama = uttps[0].TanggalTera
		berlakuLama = uttps[0].TanggalBerlaku
	}

	tanggalTera := hariIni.Format(tera.FormatTanggal)
	tanggalBerlaku := tera.TanggalBerlakuBaru(hariIni).Format(tera.FormatTanggal)

	if err := u.wajibRepo.UpdateStatus(kategori, wajibTeraID, tera.StatusAktif); err != nil {
		return nil, &TahapError{Tahap: TahapStatusPemilik, Err: err}
	}

	if err := u.uttpRepo.UpdateTanggalByPemilik(kategori, wajibTeraID, tanggalTera, tanggalBerlaku); err != nil {
		return nil, &TahapError{Tahap: TahapTanggalUTTP, Err: err}
	}

	riwayat := model.RiwayatTera{
		Kategori:           kategori,
		WajibTeraID:        wajibTeraID,
		NamaPemilik:        info.Nama,
		Alamat:             info.Alamat,
		TanggalTeraLama:    teraLama,
		TanggalBerlakuLama: berlakuLama,
		TanggalTeraBaru:    tanggalTera,
		TanggalBerlakuBaru: tanggalBerlaku,
		Petugas:            petugas,
		Keterangan:         keterangan,
	}
	if err := u.riwayatRepo.Create(&riwayat); err != nil {
		return nil, &TahapError{Tahap: TahapCatatRiwayat, Err: err}
	}

	return &HasilTeraUlang{
		Kategori:       kategori,
		WajibTeraID:    wajibTeraID,
		NamaPemilik:    info.Nama,
		TanggalTera:    tanggalTera,
		TanggalBerlaku: tanggalBerlaku,
		JumlahUTTP:     len(uttps),
	}, nil
}
