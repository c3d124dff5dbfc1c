package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramCategory(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Beasiswa Pendidikan 2024", "program-pendidikan"},
		{"PENDIDIKAN untuk semua", "program-pendidikan"},
		{"Santunan Anak Yatim", "donasi-santunan"},
		{"Donasi Ramadhan", "donasi-santunan"},
		{"Bantuan Air Bersih Desa X", "bantuan-air-bersih"},
		{"Air Bersih untuk Warga", "bantuan-air-bersih"},
		{"Tanggap Bencana Banjir", "bantuan-bencana"},
		{"Majelis Taklim Bulanan", "kegiatan-majelis-taklim"},
		{"Pengadaan Material Masjid", "bantuan-material"},
		{"Kegiatan Lainnya", "program-umum"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ProgramCategory(tc.title), "title %q", tc.title)
	}
}

// Branch order is first-match-wins: a title with both pendidikan and
// bencana keywords lands in the pendidikan branch.
func TestProgramCategoryFirstMatchWins(t *testing.T) {
	assert.Equal(t, "program-pendidikan", ProgramCategory("Pendidikan Korban Bencana"))
}

func TestPublicProgramStatus(t *testing.T) {
	assert.Equal(t, "upcoming", PublicProgramStatus("UPCOMING"))
	assert.Equal(t, "active", PublicProgramStatus("RUNNING"))
	assert.Equal(t, "completed", PublicProgramStatus("COMPLETED"))
	assert.Equal(t, "upcoming", PublicProgramStatus("SOMETHING_ELSE"))
	assert.Equal(t, "upcoming", PublicProgramStatus(""))
}
