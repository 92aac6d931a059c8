package tera

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func tanggal(s string) time.Time {
	t, err := time.ParseInLocation(FormatTanggal, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestStatusTera(t *testing.T) {
	hariIni := tanggal("2024-01-01")

	tests := []struct {
		nama           string
		tanggalBerlaku string
		want           string
	}{
		{"tanggal kosong dianggap berakhir", "", StatusBerakhir},
		{"tanggal rusak dianggap berakhir", "01-10-2024", StatusBerakhir},
		{"sudah lewat kemarin", "2023-12-31", StatusBerakhir},
		{"jatuh tempo hari ini", "2024-01-01", StatusAkanBerakhir},
		{"masih 9 hari lagi", "2024-01-10", StatusAkanBerakhir},
		{"tepat di batas 14 hari", "2024-01-15", StatusAkanBerakhir},
		{"sehari setelah batas peringatan", "2024-01-16", StatusAktif},
		{"masih lama", "2024-12-01", StatusAktif},
	}

	for _, tc := range tests {
		t.Run(tc.nama, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusTera(tc.tanggalBerlaku, hariIni))
		})
	}
}

func TestStatusTeraAbaikanJam(t *testing.T) {
	// Jam berapapun "hari ini", batas hari tidak boleh bergeser.
	for _, jam := range []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC),
	} {
		assert.Equal(t, StatusBerakhir, StatusTera("2023-12-31", jam))
		assert.Equal(t, StatusAkanBerakhir, StatusTera("2024-01-01", jam))
		assert.Equal(t, StatusAktif, StatusTera("2024-01-16", jam))
	}
}

func TestSisaHari(t *testing.T) {
	hariIni := tanggal("2024-01-01")

	sisa, ok := SisaHari("2024-01-10", hariIni)
	assert.True(t, ok)
	assert.Equal(t, 9, sisa)

	sisa, ok = SisaHari("2023-12-31", hariIni)
	assert.True(t, ok)
	assert.Equal(t, -1, sisa)

	sisa, ok = SisaHari("2024-01-01", hariIni)
	assert.True(t, ok)
	assert.Equal(t, 0, sisa)

	_, ok = SisaHari("", hariIni)
	assert.False(t, ok)
}

func TestSisaHariTurunSeiringWaktu(t *testing.T) {
	// Dengan tanggal berlaku tetap, sisa hari harus turun tepat 1 per hari.
	const berlaku = "2024-03-01"
	hari := tanggal("2024-01-01")

	prev, ok := SisaHari(berlaku, hari)
	assert.True(t, ok)
	for i := 0; i < 90; i++ {
		hari = hari.AddDate(0, 0, 1)
		cur, ok := SisaHari(berlaku, hari)
		assert.True(t, ok)
		assert.Equal(t, prev-1, cur)
		prev = cur
	}
}

func TestTanggalBerlakuBaru(t *testing.T) {
	tests := []struct {
		tera string
		want string
	}{
		{"2024-06-01", "2025-06-01"},
		{"2024-01-31", "2025-01-31"},
		{"2023-02-28", "2024-02-28"},
		// 29 Februari di tahun tujuan non-kabisat jatuh ke 1 Maret.
		{"2024-02-29", "2025-03-01"},
	}

	for _, tc := range tests {
		got := TanggalBerlakuBaru(tanggal(tc.tera))
		assert.Equal(t, tc.want, got.Format(FormatTanggal), "tera %s", tc.tera)
	}
}

func TestKonsistensiStatusDanSisaHari(t *testing.T) {
	// BERAKHIR persis ketika sisa hari negatif (atau tanggal tidak ada).
	hariIni := tanggal("2024-05-15")
	d := tanggal("2024-04-01")
	for i := 0; i < 120; i++ {
		s := d.Format(FormatTanggal)
		sisa, ok := SisaHari(s, hariIni)
		assert.True(t, ok)
		if sisa < 0 {
			assert.Equal(t, StatusBerakhir, StatusTera(s, hariIni))
		} else if sisa <= MasaPeringatanHari {
			assert.Equal(t, StatusAkanBerakhir, StatusTera(s, hariIni))
		} else {
			assert.Equal(t, StatusAktif, StatusTera(s, hariIni))
		}
		d = d.AddDate(0, 0, 1)
	}
}
