package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/soro/internal/domain"
	"github.com/aalvaropc/soro/internal/infra/configfinder"
	"github.com/aalvaropc/soro/internal/ports"
)

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.ConfigLoader = (*Loader)(nil)

// LoadConfig loads soro.yaml from root and applies defaults.
func (l *Loader) LoadConfig(root string) (domain.Config, error) {
	return LoadFile(filepath.Join(root, configfinder.ConfigFile))
}

// LoadFile parses the config file at path. On error the returned config
// still carries the defaults.
func LoadFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}
