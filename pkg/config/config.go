package config

// this holds the resolved configuration values from CLI
var (
	LapsFile       string // path to the lap table (json or csv)
	OutputDir      string // directory for generated figures
	LogLevel       string // sets the log level (zap log level values)
	LogFormat      string // text vs json
	LogConfig      string // path to log config file
	TeamColorsFile string // optional yaml file overriding the team color table
	Watermark      string // watermark text placed on every figure
	LongRunMinLaps int    // minimum laps for a stint to count as a long run
	Watch          bool   // regenerate the report when the lap table changes
)

// DefaultLongRunMinLaps is the fallback threshold for long run detection.
const DefaultLongRunMinLaps = 10
