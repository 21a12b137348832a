// internal/services/export_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/equipscout/equipscout-backend/internal/models"
	"github.com/equipscout/equipscout-backend/internal/refine"
)

type ExportFormat string

const (
	ExportCSV       ExportFormat = "csv"
	ExportExcel     ExportFormat = "xls"
	ExportPrintable ExportFormat = "pdf"
)

// ExportArtifact is one rendered export, ready to stream to the client.
// Content is nil for an empty collection: exporting nothing is a no-op,
// not an error.
type ExportArtifact struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders the visible collection into the supported export
// formats and optionally archives a copy.
type ExportService struct {
	storage *StorageService
}

func NewExportService(storage *StorageService) *ExportService {
	return &ExportService{storage: storage}
}

func (s *ExportService) Render(products []models.Product, format ExportFormat) (*ExportArtifact, error) {
	var artifact *ExportArtifact

	switch format {
	case ExportCSV:
		artifact = &ExportArtifact{
			Content:     refine.ToCSV(products),
			ContentType: "text/csv; charset=utf-8",
			Filename:    "equipment_export.csv",
		}
	case ExportExcel:
		// Spreadsheet apps accept the delimited payload under the Excel
		// content type; only the envelope differs from CSV.
		artifact = &ExportArtifact{
			Content:     refine.ToCSV(products),
			ContentType: "application/vnd.ms-excel; charset=utf-8",
			Filename:    "equipment_export.xls",
		}
	case ExportPrintable:
		artifact = &ExportArtifact{
			Content:     refine.ToPrintableHTML(products),
			ContentType: "text/html; charset=utf-8",
			Filename:    "equipment_export.html",
		}
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}

	if artifact.Content != nil && s.storage != nil && s.storage.Enabled() {
		go s.archive(artifact)
	}

	return artifact, nil
}

func (s *ExportService) archive(artifact *ExportArtifact) {
	if _, err := s.storage.ArchiveExport(artifact.Filename, artifact.ContentType, artifact.Content); err != nil {
		logrus.WithError(err).Warn("Failed to archive export")
	}
}
