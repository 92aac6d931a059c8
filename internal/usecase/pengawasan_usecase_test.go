package usecase

import (
	"io"
	"testing"

	"sitera-backend/internal/model"
	"sitera-backend/internal/repository"
	"sitera-backend/internal/tera"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logSenyap() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func siapkanPengawasan() (*fakeWajibRepo, *fakeUTTPRepo, *fakeNotifRepo) {
	wajibRepo := newFakeWajibRepo()
	wajibRepo.info[kunci(model.KategoriPasar, 1)] = &repository.WajibTeraInfo{
		ID: 1, Nama: "Ibu Ani", Email: "ani@contoh.id", Status: tera.StatusAktif,
	}
	wajibRepo.info[kunci(model.KategoriSPBU, 2)] = &repository.WajibTeraInfo{
		ID: 2, Nama: "SPBU Bypass", Status: tera.StatusAktif,
	}
	wajibRepo.info[kunci(model.KategoriUmum, 3)] = &repository.WajibTeraInfo{
		ID: 3, Nama: "Toko Sejahtera", Status: tera.StatusAktif,
	}

	uttpRepo := &fakeUTTPRepo{uttps: []model.UTTP{
		// Pemilik 1: satu alat hampir habis, satu masih lama -> status terburuk menang
		{Kategori: model.KategoriPasar, PemilikID: 1, TanggalBerlaku: "2024-06-10"},
		{Kategori: model.KategoriPasar, PemilikID: 1, TanggalBerlaku: "2025-06-01"},
		// Pemilik 2: sudah lewat
		{Kategori: model.KategoriSPBU, PemilikID: 2, TanggalBerlaku: "2024-01-01"},
		// Pemilik 3: aman
		{Kategori: model.KategoriUmum, PemilikID: 3, TanggalBerlaku: "2025-01-01"},
	}}

	return wajibRepo, uttpRepo, &fakeNotifRepo{}
}

func TestPeriksaMasaBerlaku(t *testing.T) {
	wajibRepo, uttpRepo, notifRepo := siapkanPengawasan()
	mailer := &fakeMailer{}
	uc := NewPengawasanUsecase(wajibRepo, uttpRepo, notifRepo, mailer, logSenyap())

	hasil, err := uc.PeriksaMasaBerlaku(tanggalUji("2024-06-01"))
	require.NoError(t, err)

	assert.Equal(t, 3, hasil.PemilikDiperiksa)
	assert.Equal(t, 2, hasil.NotifikasiDibuat)

	// Status di tabel pemilik tersalin dari status terburuk UTTP-nya
	assert.Equal(t, tera.StatusAkanBerakhir, wajibRepo.info[kunci(model.KategoriPasar, 1)].Status)
	assert.Equal(t, tera.StatusBerakhir, wajibRepo.info[kunci(model.KategoriSPBU, 2)].Status)
	assert.Equal(t, tera.StatusAktif, wajibRepo.info[kunci(model.KategoriUmum, 3)].Status)

	// Jenis notifikasi sesuai status
	perJenis := map[string]int{}
	for _, n := range notifRepo.notifs {
		perJenis[n.Jenis]++
	}
	assert.Equal(t, 1, perJenis[model.NotifAkanBerakhir])
	assert.Equal(t, 1, perJenis[model.NotifBerakhir])

	// Hanya pemilik 1 yang punya email
	assert.Equal(t, []string{"ani@contoh.id"}, mailer.terkirim)
}

func TestPeriksaMasaBerlakuTidakMenumpukNotifikasi(t *testing.T) {
	wajibRepo, uttpRepo, notifRepo := siapkanPengawasan()
	uc := NewPengawasanUsecase(wajibRepo, uttpRepo, notifRepo, nil, logSenyap())

	_, err := uc.PeriksaMasaBerlaku(tanggalUji("2024-06-01"))
	require.NoError(t, err)
	jumlahAwal := len(notifRepo.notifs)

	// Putaran kedua tanpa ada notifikasi yang dibaca: tidak boleh nambah
	hasil, err := uc.PeriksaMasaBerlaku(tanggalUji("2024-06-01"))
	require.NoError(t, err)
	assert.Equal(t, 0, hasil.NotifikasiDibuat)
	assert.Len(t, notifRepo.notifs, jumlahAwal)

	// Setelah dibaca semua, peringatan baru boleh terbit lagi
	require.NoError(t, notifRepo.MarkAllRead())
	_, err = uc.PeriksaMasaBerlaku(tanggalUji("2024-06-01"))
	require.NoError(t, err)
	assert.Len(t, notifRepo.notifs, jumlahAwal+2)
}

func TestPeriksaMasaBerlakuTanpaMailer(t *testing.T) {
	wajibRepo, uttpRepo, notifRepo := siapkanPengawasan()
	uc := NewPengawasanUsecase(wajibRepo, uttpRepo, notifRepo, nil, logSenyap())

	hasil, err := uc.PeriksaMasaBerlaku(tanggalUji("2024-06-01"))
	require.NoError(t, err)
	assert.Equal(t, 0, hasil.EmailDikirim)
}
