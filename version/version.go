package version

// values are set via ldflags on release builds
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

var FullVersion = Version + " (" + GitCommit + ") " + BuildDate
