package cli

import (
	"github.com/aalvaropc/soro/internal/domain"
	"github.com/aalvaropc/soro/internal/infra/config"
	"github.com/aalvaropc/soro/internal/infra/configfinder"
)

type settings struct {
	root  string
	found bool
	cfg   domain.Config
}

// loadSettings looks for soro.yaml upward from start (a directory or a file).
// Without one the defaults apply and start's directory becomes the root.
func loadSettings(start string) (settings, error) {
	l, err := configfinder.NewFinder().Lookup(start)
	if err != nil {
		return settings{}, err
	}
	if !l.Found() {
		return settings{root: l.Dir, cfg: domain.DefaultConfig()}, nil
	}

	cfg, err := config.NewLoader().LoadConfig(l.Root)
	if err != nil {
		return settings{}, err
	}
	return settings{root: l.Root, found: true, cfg: cfg}, nil
}
