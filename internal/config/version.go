package config

// Build metadata, set through -ldflags "-X github.com/trebuchet-org/catapult/internal/config.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
