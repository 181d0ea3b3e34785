package config

// Config is the root application configuration.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
}

// DatasetConfig locates the hanzi TSV dataset.
type DatasetConfig struct {
	Path string `yaml:"path" env:"HANZI_DATASET_PATH" env-default:"hanzi.tsv"`
}

// OutputConfig holds report formatting defaults.
type OutputConfig struct {
	// DefaultFold is the fold width used when --fold is passed without a
	// value. Zero disables folding entirely.
	DefaultFold int `yaml:"default_fold" env:"HANZI_DEFAULT_FOLD" env-default:"50"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
