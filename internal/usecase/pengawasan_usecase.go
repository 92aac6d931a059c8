package usecase

import (
	"fmt"
	"time"

	"sitera-backend/internal/model"
	"sitera-backend/internal/repository"
	"sitera-backend/internal/tera"

	"github.com/sirupsen/logrus"
)

// PengirimEmail dikirimi peringatan masa berlaku. Boleh nil (email mati).
type PengirimEmail interface {
	Kirim(tujuan, subjek, isi string) error
}

// HasilPemeriksaan merangkum satu putaran pemeriksaan masa berlaku.
type HasilPemeriksaan struct {
	PemilikDiperiksa int
	NotifikasiDibuat int
	EmailDikirim     int
}

// PengawasanUsecase memeriksa masa berlaku seluruh UTTP: menyalin status
// terburuk tiap pemilik ke tabel pemiliknya (sebagai cache tampilan, bukan
// sumber kebenaran) dan membuat notifikasi AKAN_BERAKHIR / BERAKHIR.
// Logikanya tinggal dipanggil scheduler; tidak ada timer di sini.
type PengawasanUsecase struct {
	wajibRepo repository.WajibTeraRepository
	uttpRepo  repository.UTTPRepository
	notifRepo repository.NotifikasiRepository
	mailer    PengirimEmail
	log       *logrus.Logger
}

func NewPengawasanUsecase(
	wajibRepo repository.WajibTeraRepository,
	uttpRepo repository.UTTPRepository,
	notifRepo repository.NotifikasiRepository,
	mailer PengirimEmail,
	log *logrus.Logger,
) *PengawasanUsecase {
	return &PengawasanUsecase{
		wajibRepo: wajibRepo,
		uttpRepo:  uttpRepo,
		notifRepo: notifRepo,
		mailer:    mailer,
		log:       log,
	}
}

type kunciPemilik struct {
	kategori  string
	pemilikID uint
}

// PeriksaMasaBerlaku menjalankan satu putaran pemeriksaan. Kegagalan pada
// satu pemilik hanya dicatat di log lalu lanjut ke pemilik berikutnya.
func (u *PengawasanUsecase) PeriksaMasaBerlaku(hariIni time.Time) (*HasilPemeriksaan, error) {
	uttps, err := u.uttpRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("gagal membaca daftar UTTP: %w", err)
	}

	// Status terburuk per pemilik menentukan status pemilik.
	perPemilik := make(map[kunciPemilik]string)
	for _, alat := range uttps {
		k := kunciPemilik{alat.Kategori, alat.PemilikID}
		status := tera.StatusTera(alat.TanggalBerlaku, hariIni)
		if lama, ok := perPemilik[k]; ok {
			status = tera.StatusTerburuk(status, lama)
		}
		perPemilik[k] = status
	}

	hasil := &HasilPemeriksaan{PemilikDiperiksa: len(perPemilik)}
	for k, status := range perPemilik {
		if err := u.wajibRepo.UpdateStatus(k.kategori, k.pemilikID, status); err != nil {
			u.log.WithError(err).WithFields(logrus.Fields{
				"kategori": k.kategori, "pemilik_id": k.pemilikID,
			}).Warn("Gagal memperbarui status pemilik")
			continue
		}

		if status == tera.StatusAktif {
			continue
		}
		dibuat, err := u.terbitkanPeringatan(k, status)
		if err != nil {
			u.log.WithError(err).WithFields(logrus.Fields{
				"kategori": k.kategori, "pemilik_id": k.pemilikID,
			}).Warn("Gagal menerbitkan peringatan masa berlaku")
			continue
		}
		if !dibuat {
			continue
		}
		hasil.NotifikasiDibuat++

		if u.mailer != nil {
			if n := u.kirimEmailPeringatan(k, status); n {
				hasil.EmailDikirim++
			}
		}
	}

	return hasil, nil
}

func (u *PengawasanUsecase) terbitkanPeringatan(k kunciPemilik, status string) (bool, error) {
	jenis := model.NotifAkanBerakhir
	if status == tera.StatusBerakhir {
		jenis = model.NotifBerakhir
	}

	// Jangan menumpuk notifikasi sejenis selama yang lama belum dibaca.
	ada, err := u.notifRepo.AdaBelumDibaca(jenis, k.kategori, k.pemilikID)
	if err != nil {
		return false, err
	}
	if ada {
		return false, nil
	}

	info, err := u.wajibRepo.FindInfo(k.kategori, k.pemilikID)
	if err != nil {
		return false, err
	}

	judul := "Masa berlaku tera akan berakhir"
	pesan := fmt.Sprintf("UTTP milik %s (%s) mendekati akhir masa berlaku tera. Segera jadwalkan tera ulang.", info.Nama, k.kategori)
	if jenis == model.NotifBerakhir {
		judul = "Masa berlaku tera telah berakhir"
		pesan = fmt.Sprintf("UTTP milik %s (%s) sudah melewati masa berlaku tera.", info.Nama, k.kategori)
	}

	id := k.pemilikID
	err = u.notifRepo.Create(&model.Notifikasi{
		Jenis:       jenis,
		Judul:       judul,
		Pesan:       pesan,
		Kategori:    k.kategori,
		WajibTeraID: &id,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (u *PengawasanUsecase) kirimEmailPeringatan(k kunciPemilik, status string) bool {
	info, err := u.wajibRepo.FindInfo(k.kategori, k.pemilikID)
	if err != nil || info.Email == "" {
		return false
	}

	subjek := "Pengingat Tera Ulang UTTP"
	isi := fmt.Sprintf("Yth. %s,\n\nMasa berlaku tera alat UTTP Anda akan segera berakhir. Mohon mengajukan tera ulang ke Dinas Perdagangan.\n", info.Nama)
	if status == tera.StatusBerakhir {
		isi = fmt.Sprintf("Yth. %s,\n\nMasa berlaku tera alat UTTP Anda telah berakhir. Alat tidak sah digunakan sebelum ditera ulang.\n", info.Nama)
	}

	if err := u.mailer.Kirim(info.Email, subjek, isi); err != nil {
		u.log.WithError(err).WithField("email", info.Email).Warn("Gagal mengirim email peringatan")
		return false
	}
	return true
}
