package usecase

import (
	"errors"
	"fmt"
	"strings"

	"sitera-backend/internal/model"
	"sitera-backend/internal/repository"
)

// Fake in-memory di balik interface repository, supaya usecase bisa diuji
// tanpa database.

type fakeWajibRepo struct {
	info             map[string]*repository.WajibTeraInfo
	counts           map[string]int64
	failUpdateStatus error
	statusTercatat   []string // "KATEGORI:id=STATUS" urut pemanggilan
}

func kunci(kategori string, id uint) string {
	return fmt.Sprintf("%s:%d", kategori, id)
}

func newFakeWajibRepo() *fakeWajibRepo {
	return &fakeWajibRepo{
		info:   make(map[string]*repository.WajibTeraInfo),
		counts: make(map[string]int64),
	}
}

func (f *fakeWajibRepo) GetPasar() ([]model.PedagangPasar, error) { return nil, nil }
func (f *fakeWajibRepo) GetSPBU() ([]model.SPBU, error)           { return nil, nil }
func (f *fakeWajibRepo) GetUmum() ([]model.WajibTeraUmum, error)  { return nil, nil }

func (f *fakeWajibRepo) FindInfo(kategori string, id uint) (*repository.WajibTeraInfo, error) {
	info, ok := f.info[kunci(kategori, id)]
	if !ok {
		return nil, errors.New("record not found")
	}
	return info, nil
}

func (f *fakeWajibRepo) UpdateStatus(kategori string, id uint, status string) error {
	if f.failUpdateStatus != nil {
		return f.failUpdateStatus
	}
	info, ok := f.info[kunci(kategori, id)]
	if !ok {
		return errors.New("record not found")
	}
	info.Status = status
	f.statusTercatat = append(f.statusTercatat, kunci(kategori, id)+"="+status)
	return nil
}

func (f *fakeWajibRepo) CountByKategori(kategori string) (int64, error) {
	return f.counts[kategori], nil
}

type fakeUTTPRepo struct {
	uttps      []model.UTTP
	failUpdate error
	bulkUpdate int // berapa kali UpdateTanggalByPemilik dipanggil
}

func (f *fakeUTTPRepo) Create(uttp *model.UTTP) error {
	f.uttps = append(f.uttps, *uttp)
	return nil
}

func (f *fakeUTTPRepo) GetAll() ([]model.UTTP, error) {
	return f.uttps, nil
}

func (f *fakeUTTPRepo) GetByPemilik(kategori string, pemilikID uint) ([]model.UTTP, error) {
	var list []model.UTTP
	for _, u := range f.uttps {
		if u.Kategori == kategori && u.PemilikID == pemilikID {
			list = append(list, u)
		}
	}
	return list, nil
}

func (f *fakeUTTPRepo) UpdateTanggalByPemilik(kategori string, pemilikID uint, tanggalTera, tanggalBerlaku string) error {
	if f.failUpdate != nil {
		return f.failUpdate
	}
	f.bulkUpdate++
	for i := range f.uttps {
		if f.uttps[i].Kategori == kategori && f.uttps[i].PemilikID == pemilikID {
			f.uttps[i].TanggalTera = tanggalTera
			f.uttps[i].TanggalBerlaku = tanggalBerlaku
		}
	}
	return nil
}

type fakeRiwayatRepo struct {
	entries    []model.RiwayatTera
	failCreate error
}

func (f *fakeRiwayatRepo) Create(riwayat *model.RiwayatTera) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	f.entries = append(f.entries, *riwayat)
	return nil
}

func (f *fakeRiwayatRepo) GetAll(limit int) ([]model.RiwayatTera, error) {
	return f.entries, nil
}

func (f *fakeRiwayatRepo) GetByWajibTera(kategori string, wajibTeraID uint) ([]model.RiwayatTera, error) {
	var list []model.RiwayatTera
	for _, e := range f.entries {
		if e.Kategori == kategori && e.WajibTeraID == wajibTeraID {
			list = append(list, e)
		}
	}
	return list, nil
}

type fakeNotifRepo struct {
	notifs       []model.Notifikasi
	markAllCalls int
}

func (f *fakeNotifRepo) Create(n *model.Notifikasi) error {
	n.ID = uint(len(f.notifs) + 1)
	f.notifs = append(f.notifs, *n)
	return nil
}

func (f *fakeNotifRepo) GetAll(filter repository.NotifikasiFilter) ([]model.Notifikasi, error) {
	var list []model.Notifikasi
	for _, n := range f.notifs {
		if filter.Jenis != "" && n.Jenis != filter.Jenis {
			continue
		}
		if filter.IsRead != nil && n.IsRead != *filter.IsRead {
			continue
		}
		if filter.Teks != "" &&
			!strings.Contains(strings.ToLower(n.Judul+" "+n.Pesan), strings.ToLower(filter.Teks)) {
			continue
		}
		list = append(list, n)
	}
	return list, nil
}

func (f *fakeNotifRepo) MarkRead(id uint) error {
	for i := range f.notifs {
		if f.notifs[i].ID == id {
			f.notifs[i].IsRead = true
		}
	}
	return nil
}

func (f *fakeNotifRepo) MarkAllRead() error {
	f.markAllCalls++
	for i := range f.notifs {
		f.notifs[i].IsRead = true
	}
	return nil
}

func (f *fakeNotifRepo) CountUnread() (int64, error) {
	var count int64
	for _, n := range f.notifs {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotifRepo) AdaBelumDibaca(jenis, kategori string, wajibTeraID uint) (bool, error) {
	for _, n := range f.notifs {
		if n.Jenis == jenis && n.Kategori == kategori &&
			n.WajibTeraID != nil && *n.WajibTeraID == wajibTeraID && !n.IsRead {
			return true, nil
		}
	}
	return false, nil
}

type fakePermohonanRepo struct {
	permohonans []model.PermohonanTera
}

func (f *fakePermohonanRepo) Create(p *model.PermohonanTera) error {
	p.ID = uint(len(f.permohonans) + 1)
	f.permohonans = append(f.permohonans, *p)
	return nil
}

func (f *fakePermohonanRepo) GetAll(status string) ([]model.PermohonanTera, error) {
	var list []model.PermohonanTera
	for _, p := range f.permohonans {
		if status == "" || p.Status == status {
			list = append(list, p)
		}
	}
	return list, nil
}

func (f *fakePermohonanRepo) GetByID(id uint) (*model.PermohonanTera, error) {
	for i := range f.permohonans {
		if f.permohonans[i].ID == id {
			return &f.permohonans[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakePermohonanRepo) Update(p *model.PermohonanTera) error {
	for i := range f.permohonans {
		if f.permohonans[i].ID == p.ID {
			f.permohonans[i] = *p
			return nil
		}
	}
	return errors.New("record not found")
}

func (f *fakePermohonanRepo) CountByStatus(status string) (int64, error) {
	var count int64
	for _, p := range f.permohonans {
		if p.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeMailer struct {
	terkirim []string // alamat tujuan
	fail     error
}

func (f *fakeMailer) Kirim(tujuan, subjek, isi string) error {
	if f.fail != nil {
		return f.fail
	}
	f.terkirim = append(f.terkirim, tujuan)
	return nil
}
