package config

const (
	defaultConfirmedThreshold = 85
	defaultSuspectedThreshold = 90
	defaultChunkSize          = 1000
	defaultReportOutput       = "Duplicates_List.txt"
	defaultReportFormat       = "text"
	defaultReportLocale       = "en"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults. Report.Locale is
// left empty so PURIFIER_LOCALE can fill it during normalization.
func Default() Config {
	return Config{
		Scan: Scan{
			ConfirmedThreshold: defaultConfirmedThreshold,
			SuspectedThreshold: defaultSuspectedThreshold,
			ChunkSize:          defaultChunkSize,
		},
		Report: Report{
			Output: defaultReportOutput,
			Format: defaultReportFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
