package ports

import "github.com/aalvaropc/soro/internal/domain"

// ReportStore keeps a record of finished sorts.
type ReportStore interface {
	SaveReport(r domain.SortReport) (string, error)
}
