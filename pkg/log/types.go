package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// ZapConfig configures the zap backed logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool

	// Optional rotating file sink. Empty FilePath keeps stdout only.
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}
