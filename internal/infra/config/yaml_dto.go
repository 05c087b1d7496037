package config

type YAMLConfig struct {
	Soro YAMLSoro `yaml:"soro"`
}

type YAMLSoro struct {
	Defaults YAMLDefaults `yaml:"defaults"`
	Output   YAMLOutput   `yaml:"output"`
	Logs     YAMLLogs     `yaml:"logs"`
	Reports  YAMLReports  `yaml:"reports"`
}

type YAMLDefaults struct {
	Algorithm string `yaml:"algorithm"`
	Format    string `yaml:"format"`
}

type YAMLOutput struct {
	Suffix *string `yaml:"suffix"`
}

type YAMLLogs struct {
	Dir string `yaml:"dir"`
}

type YAMLReports struct {
	Enabled *bool  `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}
