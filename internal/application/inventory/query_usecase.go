package inventory

import (
	"context"

	"github.com/tu-usuario/inventario/internal/application/dto"
	"github.com/tu-usuario/inventario/internal/domain/repository"
)

// LedgerQueryUseCase proyecciones de solo lectura sobre el libro de
// movimientos. Corren sobre el pool (fuera de la transacción de escritura);
// consistencia eventual con el último movimiento confirmado es aceptable.
type LedgerQueryUseCase struct {
	movRepo    repository.MovementRepository
	reportRepo repository.ReportRepository
	pdfGen     LedgerPDFGenerator
}

// NewLedgerQueryUseCase construye el caso de uso de consultas.
func NewLedgerQueryUseCase(movRepo repository.MovementRepository, reportRepo repository.ReportRepository, pdfGen LedgerPDFGenerator) *LedgerQueryUseCase {
	return &LedgerQueryUseCase{movRepo: movRepo, reportRepo: reportRepo, pdfGen: pdfGen}
}

// ListAllMovements historial completo con nombres de producto y usuario, más reciente primero.
func (uc *LedgerQueryUseCase) ListAllMovements(ctx context.Context) ([]dto.MovementResponse, error) {
	rows, err := uc.movRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MovementResponse{
			ID:          r.ID,
			ProductID:   r.ProductID,
			Quantity:    r.Quantity,
			Type:        r.Type,
			Reason:      r.Reason,
			UserID:      r.UserID,
			Date:        r.CreatedAt,
			ProductName: r.ProductName,
			UserName:    r.UserName,
		})
	}
	return out, nil
}

// ListMovementsForProduct movimientos de un producto, más reciente primero.
// Lista vacía (no error) si el producto no tiene movimientos.
func (uc *LedgerQueryUseCase) ListMovementsForProduct(ctx context.Context, productID string) ([]dto.MovementResponse, error) {
	rows, err := uc.movRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Quantity:  m.Quantity,
			Type:      m.Type,
			Reason:    m.Reason,
			UserID:    m.UserID,
			Date:      m.CreatedAt,
		})
	}
	return out, nil
}

// StockEvolution cambio neto por día calendario con movimientos del producto,
// ordenado por fecha ascendente. Se deriva íntegramente del libro.
func (uc *LedgerQueryUseCase) StockEvolution(ctx context.Context, productID string) ([]dto.StockEvolutionDTO, error) {
	rows, err := uc.reportRepo.StockEvolution(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockEvolutionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockEvolutionDTO{
			Date:      r.Date.Format("2006-01-02"),
			NetChange: r.NetChange,
		})
	}
	return out, nil
}

// MovementDistributionByProduct total de unidades movidas por producto
// (entradas y salidas suman), un renglón por producto con movimientos.
func (uc *LedgerQueryUseCase) MovementDistributionByProduct(ctx context.Context) ([]dto.MovementDistributionDTO, error) {
	rows, err := uc.reportRepo.DistributionByProduct()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementDistributionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MovementDistributionDTO{
			ProductName:   r.ProductName,
			TotalQuantity: r.TotalQuantity,
		})
	}
	return out, nil
}

// LedgerReportPDF genera el historial completo como PDF.
func (uc *LedgerQueryUseCase) LedgerReportPDF(ctx context.Context) ([]byte, error) {
	rows, err := uc.movRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateLedgerPDF(ctx, rows)
}
