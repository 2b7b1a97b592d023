package app

// Build metadata, injected at release time:
//
//	go build -ldflags "-X github.com/heartmarshall/readinglist-backend/internal/app.Version=1.2.0"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// BuildVersion renders the build metadata as a single startup-log value.
func BuildVersion() string {
	return Version + " (" + Commit + ", " + BuildTime + ")"
}
