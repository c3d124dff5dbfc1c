package types

import (
	"os"
	"strings"
)

// ContextUserKey is where the auth middleware stores the authenticated
// admin on the gin context.
const ContextUserKey = "user"

// AllowedOrigins feeds the CORS layer. The local admin dashboard and the
// public site dev server are always allowed; production origins come from
// CLIENT_URL and the comma-separated ALLOWED_ORIGINS.
var AllowedOrigins = buildAllowedOrigins(
	"http://localhost:3000",
	"http://localhost:5173",
)

func buildAllowedOrigins(defaults ...string) []string {
	origins := append([]string{}, defaults...)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}
