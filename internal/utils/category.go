package utils

import "strings"

// ProgramCategory infers the public feed category from keywords in the
// program title. Branch order is first-match-wins and must stay stable:
// the public website groups albums and programs by these values.
func ProgramCategory(title string) string {
	lower := strings.ToLower(title)

	switch {
	case strings.Contains(lower, "pendidikan") || strings.Contains(lower, "beasiswa"):
		return "program-pendidikan"
	case strings.Contains(lower, "santunan") || strings.Contains(lower, "donasi"):
		return "donasi-santunan"
	case strings.Contains(lower, "air bersih"):
		return "bantuan-air-bersih"
	case strings.Contains(lower, "bencana") || strings.Contains(lower, "bantuan"):
		return "bantuan-bencana"
	case strings.Contains(lower, "majelis") || strings.Contains(lower, "taklim"):
		return "kegiatan-majelis-taklim"
	case strings.Contains(lower, "material") || strings.Contains(lower, "infrastruktur"):
		return "bantuan-material"
	}

	return "program-umum"
}

var publicProgramStatus = map[string]string{
	"UPCOMING":  "upcoming",
	"RUNNING":   "active",
	"COMPLETED": "completed",
}

// PublicProgramStatus maps the stored program status to the vocabulary
// the public website expects. Unknown values read as upcoming.
func PublicProgramStatus(status string) string {
	if mapped, ok := publicProgramStatus[status]; ok {
		return mapped
	}

	return "upcoming"
}
