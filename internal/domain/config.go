package domain

// Config represents the soro configuration loaded from soro.yaml.
type Config struct {
	Defaults DefaultsConfig
	Output   OutputConfig
	Logs     LogsConfig
	Reports  ReportsConfig
}

type DefaultsConfig struct {
	Algorithm string
	Format    string
}

type OutputConfig struct {
	Suffix string
}

type LogsConfig struct {
	Dir string
}

// ReportsConfig controls the sort history kept under the workspace root.
type ReportsConfig struct {
	Enabled bool
	Dir     string
}

// DefaultConfig provides sane defaults if soro.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Algorithm: QuickSort.String(),
			Format:    "pretty",
		},
		Output: OutputConfig{
			Suffix: ".sorted",
		},
		Logs: LogsConfig{
			Dir: ".soro/logs",
		},
		Reports: ReportsConfig{
			Enabled: false,
			Dir:     ".soro/reports",
		},
	}
}
