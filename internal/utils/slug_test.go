package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Program Pendidikan 2024", "program-pendidikan-2024"},
		{"Bantuan Air Bersih -- Desa X!", "bantuan-air-bersih-desa-x"},
		{"  Santunan Anak Yatim  ", "santunan-anak-yatim"},
		{"UPPERCASE Title", "uppercase-title"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "title %q", tc.title)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	titles := []string{
		"Selamat Datang di YPT Kiasma",
		"Majelis Taklim: Kajian Rutin (Mingguan)",
		"program-pendidikan-2024",
	}

	for _, title := range titles {
		once := Slugify(title)
		assert.Equal(t, once, Slugify(once))
	}
}
