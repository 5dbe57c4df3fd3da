package ports

import "go.trai.ch/modup/internal/core/domain"

// ReportPrinter writes the end-of-run summary.
//
//go:generate mockgen -source=report_printer.go -destination=mocks/mock_report_printer.go -package=mocks
type ReportPrinter interface {
	Print(report *domain.Report) error
}
