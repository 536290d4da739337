package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario/internal/application/inventory"
	"github.com/tu-usuario/inventario/internal/domain/entity"
	"github.com/tu-usuario/inventario/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de solo lectura
// ──────────────────────────────────────────────────────────────────────────────

type fakeLedgerRepo struct {
	all       []repository.MovementWithNames
	byProduct map[string][]*entity.Movement
	err       error
}

func (r *fakeLedgerRepo) Create(*entity.Movement) error { return nil }

func (r *fakeLedgerRepo) ListAll() ([]repository.MovementWithNames, error) {
	return r.all, r.err
}

func (r *fakeLedgerRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	return r.byProduct[productID], r.err
}

type fakeReportRepo struct {
	evolution    []repository.StockEvolutionRow
	distribution []repository.DistributionRow
	err          error
}

func (r *fakeReportRepo) StockEvolution(string) ([]repository.StockEvolutionRow, error) {
	return r.evolution, r.err
}

func (r *fakeReportRepo) DistributionByProduct() ([]repository.DistributionRow, error) {
	return r.distribution, r.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestListMovementsForProduct_SinMovimientos_ListaVacia(t *testing.T) {
	uc := inventory.NewLedgerQueryUseCase(&fakeLedgerRepo{byProduct: map[string][]*entity.Movement{}}, &fakeReportRepo{}, nil)

	out, err := uc.ListMovementsForProduct(context.Background(), "producto-sin-historia")
	require.NoError(t, err, "producto sin movimientos no es un error")
	require.NotNil(t, out, "debe serializarse como [] y no como null")
	assert.Empty(t, out)
}

func TestListMovementsForProduct_ConservaOrdenYCampos(t *testing.T) {
	hoy := time.Date(2024, 2, 2, 10, 0, 0, 0, time.UTC)
	ayer := hoy.AddDate(0, 0, -1)
	repo := &fakeLedgerRepo{byProduct: map[string][]*entity.Movement{
		"p1": {
			{ID: "m2", ProductID: "p1", Quantity: 4, Type: entity.MovementTypeExit, Reason: "venta", UserID: "u1", CreatedAt: hoy},
			{ID: "m1", ProductID: "p1", Quantity: 9, Type: entity.MovementTypeEntry, Reason: "compra", UserID: "u1", CreatedAt: ayer},
		},
	}}
	uc := inventory.NewLedgerQueryUseCase(repo, &fakeReportRepo{}, nil)

	out, err := uc.ListMovementsForProduct(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "m2", out[0].ID, "el más reciente primero, tal como llega del repo")
	assert.Equal(t, int64(4), out[0].Quantity)
	assert.Equal(t, entity.MovementTypeExit, out[0].Type)
	assert.Equal(t, "m1", out[1].ID)
}

func TestListAllMovements_IncluyeNombres(t *testing.T) {
	repo := &fakeLedgerRepo{all: []repository.MovementWithNames{
		{
			Movement:    entity.Movement{ID: "m1", ProductID: "p1", Quantity: 3, Type: entity.MovementTypeEntry, Reason: "compra", UserID: "u1"},
			ProductName: "Teclado",
			UserName:    "Ana",
		},
	}}
	uc := inventory.NewLedgerQueryUseCase(repo, &fakeReportRepo{}, nil)

	out, err := uc.ListAllMovements(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Teclado", out[0].ProductName)
	assert.Equal(t, "Ana", out[0].UserName)
}

// Escenario: entrada(3) y salida(1) el 2024-01-01, entrada(2) el 2024-01-02
// → [(2024-01-01, 2), (2024-01-02, 2)].
func TestStockEvolution_FormateaFechasYNetos(t *testing.T) {
	report := &fakeReportRepo{evolution: []repository.StockEvolutionRow{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), NetChange: 2},
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), NetChange: 2},
	}}
	uc := inventory.NewLedgerQueryUseCase(&fakeLedgerRepo{}, report, nil)

	out, err := uc.StockEvolution(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "2024-01-01", out[0].Date)
	assert.Equal(t, int64(2), out[0].NetChange)
	assert.Equal(t, "2024-01-02", out[1].Date)
	assert.Equal(t, int64(2), out[1].NetChange)
}

// Escenario: dos productos con movimientos de 4 y 7 unidades.
func TestMovementDistributionByProduct(t *testing.T) {
	report := &fakeReportRepo{distribution: []repository.DistributionRow{
		{ProductName: "Teclado", TotalQuantity: 4},
		{ProductName: "Mouse", TotalQuantity: 7},
	}}
	uc := inventory.NewLedgerQueryUseCase(&fakeLedgerRepo{}, report, nil)

	out, err := uc.MovementDistributionByProduct(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	totales := map[string]int64{}
	for _, d := range out {
		totales[d.ProductName] = d.TotalQuantity
	}
	assert.Equal(t, int64(4), totales["Teclado"])
	assert.Equal(t, int64(7), totales["Mouse"])
}

// Un fallo del almacén se propaga, nunca se devuelve data parcial.
func TestLedgerQuery_PropagaErrorDelAlmacen(t *testing.T) {
	fallo := errors.New("conexión perdida")
	uc := inventory.NewLedgerQueryUseCase(&fakeLedgerRepo{err: fallo}, &fakeReportRepo{err: fallo}, nil)

	_, err := uc.ListAllMovements(context.Background())
	assert.ErrorIs(t, err, fallo)
	_, err = uc.ListMovementsForProduct(context.Background(), "p1")
	assert.ErrorIs(t, err, fallo)
	_, err = uc.StockEvolution(context.Background(), "p1")
	assert.ErrorIs(t, err, fallo)
	_, err = uc.MovementDistributionByProduct(context.Background())
	assert.ErrorIs(t, err, fallo)
}
