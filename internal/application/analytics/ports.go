package analytics

import "github.com/jhoicas/print3d-api/internal/application/dto"

// SalesReportRenderer genera el archivo descargable de un reporte ya calculado.
// Implementaciones: infrastructure/pdf (maroto) e infrastructure/xlsx (excelize).
type SalesReportRenderer interface {
	Render(report *dto.SalesReportDTO) ([]byte, error)
	ContentType() string
	Extension() string
}
