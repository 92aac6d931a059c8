// Package tera berisi aturan masa berlaku tera UTTP: fungsi murni tanpa
// akses database, supaya gampang diuji dan dipakai ulang di handler,
// usecase, dan scheduler.
package tera

import "time"

// FormatTanggal adalah format tanggal yang dipakai di seluruh tabel (YYYY-MM-DD).
const FormatTanggal = "2006-01-02"

// MasaPeringatanHari: berapa hari sebelum habis masa berlaku sebuah UTTP
// dianggap harus segera tera ulang.
const MasaPeringatanHari = 14

// Status masa berlaku tera.
const (
	StatusAktif        = "AKTIF"
	StatusAkanBerakhir = "AKAN_BERAKHIR"
	StatusBerakhir     = "BERAKHIR"
)

// ParseTanggal mem-parse tanggal YYYY-MM-DD ke tengah malam UTC.
// Semua perbandingan memakai tengah malam UTC agar jam tidak pernah
// menggeser batas hari.
func ParseTanggal(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(FormatTanggal, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// awalHari membuang komponen jam dari sebuah waktu.
func awalHari(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StatusTera menghitung status dari tanggal berlaku terhadap hari ini.
// Tanggal kosong atau tidak valid dianggap BERAKHIR: tanpa tanggal berlaku
// yang jelas, alat tidak boleh dianggap masih sah.
func StatusTera(tanggalBerlaku string, hariIni time.Time) string {
	berlaku, ok := ParseTanggal(tanggalBerlaku)
	if !ok {
		return StatusBerakhir
	}

	today := awalHari(hariIni)
	if berlaku.Before(today) {
		return StatusBerakhir
	}
	if !berlaku.After(today.AddDate(0, 0, MasaPeringatanHari)) {
		return StatusAkanBerakhir
	}
	return StatusAktif
}

// SisaHari menghitung selisih hari kalender antara tanggal berlaku dan hari
// ini. Negatif berarti sudah lewat. ok=false jika tanggal tidak valid.
func SisaHari(tanggalBerlaku string, hariIni time.Time) (int, bool) {
	berlaku, ok := ParseTanggal(tanggalBerlaku)
	if !ok {
		return 0, false
	}
	today := awalHari(hariIni)
	return int(berlaku.Sub(today) / (24 * time.Hour)), true
}

// StatusTerburuk memilih status yang lebih parah di antara dua status:
// BERAKHIR > AKAN_BERAKHIR > AKTIF. Dipakai untuk menurunkan status pemilik
// dari kumpulan UTTP-nya.
func StatusTerburuk(a, b string) string {
	urutan := map[string]int{
		StatusAktif:        0,
		StatusAkanBerakhir: 1,
		StatusBerakhir:     2,
	}
	if urutan[a] >= urutan[b] {
		return a
	}
	return b
}

// TanggalBerlakuBaru menghitung masa berlaku hasil tera: tanggal tera + 1
// tahun kalender. Tera tanggal 29 Februari yang jatuh tempo di tahun
// non-kabisat dinormalisasi ke 1 Maret (perilaku AddDate), dan aturan itu
// dipakai konsisten di seluruh aplikasi.
func TanggalBerlakuBaru(tanggalTera time.Time) time.Time {
	return awalHari(tanggalTera).AddDate(1, 0, 0)
}
