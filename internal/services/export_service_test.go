// internal/services/export_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equipscout/equipscout-backend/internal/models"
)

func exportProducts() []models.Product {
	return []models.Product{
		{
			ID:       "p1",
			Brand:    "Rational",
			Model:    "iCombi Pro",
			Price:    15200.5,
			Currency: "USD",
			Supplier: "GastroHub",
			Specs:    models.SpecMap{"Capacity": "10 trays"},
		},
	}
}

func TestRenderCSV(t *testing.T) {
	service := NewExportService(nil)

	artifact, err := service.Render(exportProducts(), ExportCSV)
	require.NoError(t, err)
	assert.Equal(t, "equipment_export.csv", artifact.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", artifact.ContentType)
	assert.Contains(t, string(artifact.Content), `"Rational"`)
}

func TestRenderExcelCarriesCSVPayload(t *testing.T) {
	service := NewExportService(nil)

	csvArtifact, err := service.Render(exportProducts(), ExportCSV)
	require.NoError(t, err)
	xlsArtifact, err := service.Render(exportProducts(), ExportExcel)
	require.NoError(t, err)

	assert.Equal(t, csvArtifact.Content, xlsArtifact.Content)
	assert.Equal(t, "application/vnd.ms-excel; charset=utf-8", xlsArtifact.ContentType)
	assert.Equal(t, "equipment_export.xls", xlsArtifact.Filename)
}

func TestRenderPrintable(t *testing.T) {
	service := NewExportService(nil)

	artifact, err := service.Render(exportProducts(), ExportPrintable)
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", artifact.ContentType)
	assert.Contains(t, string(artifact.Content), "window.print()")
}

func TestRenderEmptyCollectionIsNoOp(t *testing.T) {
	service := NewExportService(nil)

	for _, format := range []ExportFormat{ExportCSV, ExportExcel, ExportPrintable} {
		artifact, err := service.Render(nil, format)
		require.NoError(t, err)
		assert.Nil(t, artifact.Content)
	}
}

func TestRenderUnsupportedFormat(t *testing.T) {
	service := NewExportService(nil)

	_, err := service.Render(exportProducts(), ExportFormat("docx"))
	assert.Error(t, err)
}
