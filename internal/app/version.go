package app

import "fmt"

// Build metadata, overridden with -ldflags at release time:
//
//	go build -ldflags "-X github.com/agendaamiga/agenda-backend/internal/app.Version=1.2.0" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is reported by /health and the startup log.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
