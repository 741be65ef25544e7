package config

import (
	"github.com/gobeaver/beaver-kit/config"
)

// Config holds environment defaults. The loader reads each variable with
// its BEAVER_ prefix, e.g. BEAVER_GENFILE_FORMAT.
type Config struct {
	// Format used when neither a flag nor the output extension selects one.
	Format string `env:"GENFILE_FORMAT,default:docx"`

	// ChunkSize bounds every filler write, in bytes.
	ChunkSize int `env:"GENFILE_CHUNK_SIZE,default:1048576"`

	// PSTHelper is the executable that creates Unicode PST stores.
	PSTHelper string `env:"GENFILE_PST_HELPER"`

	LogLevel string `env:"GENFILE_LOG_LEVEL,default:error"`
}

// Load returns config loaded from environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
