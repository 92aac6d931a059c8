package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"sitera-backend/internal/model"
	"sitera-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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
	return false, nil
}

func appNotifikasi(repo repository.NotifikasiRepository) *fiber.App {
	app := fiber.New()
	h := NewNotifikasiHandler(repo)
	app.Get("/api/admin/notifikasi", h.GetAll)
	app.Patch("/api/admin/notifikasi/baca-semua", h.MarkAllRead)
	app.Patch("/api/admin/notifikasi/:id/baca", h.MarkRead)
	return app
}

func isiNotifikasi(repo *fakeNotifRepo, n int, jenis string) {
	for i := 0; i < n; i++ {
		_ = repo.Create(&model.Notifikasi{Jenis: jenis, Judul: "Uji", Pesan: "pesan uji"})
	}
}

func TestMarkAllReadSatuUpdateMassal(t *testing.T) {
	repo := &fakeNotifRepo{}
	isiNotifikasi(repo, 5, model.NotifAkanBerakhir)
	app := appNotifikasi(repo)

	resp, err := app.Test(httptest.NewRequest("PATCH", "/api/admin/notifikasi/baca-semua", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Kelima notifikasi terbaca lewat tepat SATU update massal
	assert.Equal(t, 1, repo.markAllCalls)
	for _, n := range repo.notifs {
		assert.True(t, n.IsRead)
	}
}

func TestMarkReadSatu(t *testing.T) {
	repo := &fakeNotifRepo{}
	isiNotifikasi(repo, 2, model.NotifBerakhir)
	app := appNotifikasi(repo)

	resp, err := app.Test(httptest.NewRequest("PATCH", "/api/admin/notifikasi/1/baca", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.True(t, repo.notifs[0].IsRead)
	assert.False(t, repo.notifs[1].IsRead)
}

func TestGetAllDenganFilter(t *testing.T) {
	repo := &fakeNotifRepo{}
	isiNotifikasi(repo, 3, model.NotifAkanBerakhir)
	isiNotifikasi(repo, 2, model.NotifPermohonanBaru)
	app := appNotifikasi(repo)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/notifikasi?jenis=PERMOHONAN_BARU", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data        []model.Notifikasi `json:"data"`
		BelumDibaca int64              `json:"belum_dibaca"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Data, 2)
	assert.Equal(t, int64(5), body.BelumDibaca)
}
