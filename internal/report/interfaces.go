package report

import "tfinspect/internal/models"

// IPrinter is the interface for rendering inspection results
//
//go:generate mockery --name=IPrinter --output=./mocks
type IPrinter interface {
	PrintModule(mod *models.Module, format OutputFormatType) error
}
