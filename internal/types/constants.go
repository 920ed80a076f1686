package types

import (
	"os"
	"strings"
)

// ContextUserKey is where AuthMiddleware stashes the AuthenticatedUser for
// downstream handlers.
const ContextUserKey = "user"

// AllowedOrigins is the origin allowlist shared by the CORS middleware and
// the dashboard websocket upgrade check. The local dev frontends are always
// allowed; CLIENT_URL and the comma-separated ALLOWED_ORIGINS add deployed
// ones.
var AllowedOrigins = buildAllowedOrigins()

func buildAllowedOrigins() []string {
	origins := []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}

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
