package app

// Build metadata, injected at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/fairplay-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build metadata for the startup log and /health.
func BuildVersion() string {
	return Version + " (commit " + Commit + ", built " + BuildTime + ")"
}
