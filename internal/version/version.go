package version

// Build identity. BuildDate and GoVersion are injected at build time via
// -ldflags; defaults apply to plain `go run`.
var (
	AppName     = "companion"
	AppFullName = "AI Companion"
	BuildDate   = "unknown"
	GoVersion   = "unknown"
)
