package config

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/soro/internal/domain"
)

// MapConfig applies the parsed values on top of domain.DefaultConfig.
func MapConfig(path string, yc YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	in := yc.Soro

	if a := strings.TrimSpace(in.Defaults.Algorithm); a != "" {
		// Not validated: unknown names select Quick Sort like any other selector.
		cfg.Defaults.Algorithm = a
	}

	if f := strings.ToLower(strings.TrimSpace(in.Defaults.Format)); f != "" {
		if f != "pretty" && f != "json" {
			return cfg, invalidField(path, "soro.defaults.format", fmt.Sprintf("unsupported format %q (expected pretty|json)", in.Defaults.Format))
		}
		cfg.Defaults.Format = f
	}

	if in.Output.Suffix != nil {
		s := strings.TrimSpace(*in.Output.Suffix)
		if s == "" {
			return cfg, invalidField(path, "soro.output.suffix", "suffix must not be empty")
		}
		if strings.ContainsAny(s, `/\`) {
			return cfg, invalidField(path, "soro.output.suffix", "suffix must not contain a path separator")
		}
		cfg.Output.Suffix = s
	}

	if d := strings.TrimSpace(in.Logs.Dir); d != "" {
		cfg.Logs.Dir = d
	}

	if in.Reports.Enabled != nil {
		cfg.Reports.Enabled = *in.Reports.Enabled
	}
	if d := strings.TrimSpace(in.Reports.Dir); d != "" {
		cfg.Reports.Dir = d
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
