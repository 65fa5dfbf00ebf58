package config

// Stylofile represents the structure of the stylo.yaml configuration file.
// Every option is optional; unset options fall back to the built-in defaults.
type Stylofile struct {
	Version     string   `yaml:"version"`
	Style       *string  `yaml:"style"`
	SourceMap   *bool    `yaml:"sourceMap"`
	Roots       []string `yaml:"roots"`
	Watch       *bool    `yaml:"watch"`
	Debug       *bool    `yaml:"debug"`
	Extensions  []string `yaml:"extensions"`
	LoadPaths   []string `yaml:"loadPaths"`
	PostProcess []string `yaml:"postProcess"`
	Debounce    *string  `yaml:"debounce"`
	MetricsAddr *string  `yaml:"metricsAddr"`
	LogFormat   *string  `yaml:"logFormat"`
}
