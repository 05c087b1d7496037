package ports

import "github.com/aalvaropc/soro/internal/domain"

type ConfigLoader interface {
	LoadConfig(root string) (domain.Config, error)
}
