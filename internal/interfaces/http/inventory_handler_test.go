package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario/internal/application/dto"
	"github.com/tu-usuario/inventario/internal/application/inventory"
	"github.com/tu-usuario/inventario/internal/domain"
	"github.com/tu-usuario/inventario/internal/domain/entity"
	"github.com/tu-usuario/inventario/internal/domain/repository"
	apphttp "github.com/tu-usuario/inventario/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el handler de inventario
// ──────────────────────────────────────────────────────────────────────────────

const testProductoID = "11111111-1111-1111-1111-111111111111"

type stubProductRepo struct {
	repository.ProductRepository
	stock map[string]int64
}

func (r *stubProductRepo) GetStockForUpdate(productID string) (int64, error) {
	s, ok := r.stock[productID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return s, nil
}

func (r *stubProductRepo) UpdateStock(productID string, stock int64) error {
	r.stock[productID] = stock
	return nil
}

type stubMovementRepo struct {
	repository.MovementRepository
	movements []*entity.Movement
	history   []repository.MovementWithNames
}

func (r *stubMovementRepo) Create(m *entity.Movement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *stubMovementRepo) ListAll() ([]repository.MovementWithNames, error) {
	return r.history, nil
}

func (r *stubMovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	out := []*entity.Movement{}
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

// stubTxRunner ejecuta la función directamente sobre los repos en memoria.
type stubTxRunner struct {
	mov     *stubMovementRepo
	product *stubProductRepo
}

func (tr *stubTxRunner) Run(ctx context.Context, fn func(repository.MovementRepository, repository.ProductRepository) error) error {
	return fn(tr.mov, tr.product)
}

type stubReportRepo struct{}

func (stubReportRepo) StockEvolution(productID string) ([]repository.StockEvolutionRow, error) {
	return []repository.StockEvolutionRow{}, nil
}

func (stubReportRepo) DistributionByProduct() ([]repository.DistributionRow, error) {
	return []repository.DistributionRow{}, nil
}

type stubPDFGen struct{}

func (stubPDFGen) GenerateLedgerPDF(ctx context.Context, movements []repository.MovementWithNames) ([]byte, error) {
	return []byte("%PDF-1.7 stub"), nil
}

// buildInventoryApp monta las rutas reales con los fakes detrás.
func buildInventoryApp(product *stubProductRepo, mov *stubMovementRepo) *fiber.App {
	registerUC := inventory.NewRegisterMovementUseCase(&stubTxRunner{mov: mov, product: product})
	queryUC := inventory.NewLedgerQueryUseCase(mov, stubReportRepo{}, stubPDFGen{})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		RegisterMovement: registerUC,
		LedgerQuery:      queryUC,
		JWTSecret:        testJWTSecret,
	})
	return app
}

func postMovimiento(t *testing.T, app *fiber.App, body dto.RegisterMovementRequest) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/inventario/movimiento", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, "operador"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/inventario/movimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarMovimiento_EntradaRetorna200ConMensaje(t *testing.T) {
	product := &stubProductRepo{stock: map[string]int64{testProductoID: 10}}
	mov := &stubMovementRepo{}
	app := buildInventoryApp(product, mov)

	resp := postMovimiento(t, app, dto.RegisterMovementRequest{
		ProductID: testProductoID,
		Quantity:  5,
		Type:      "entrada",
		Reason:    "compra proveedor",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Movimiento registrado exitosamente", body.Message)

	assert.Equal(t, int64(15), product.stock[testProductoID], "la entrada debe sumar al stock")
	require.Len(t, mov.movements, 1)
	assert.Equal(t, testUserID, mov.movements[0].UserID, "el usuario sale del token, no del body")
}

func TestRegistrarMovimiento_SalidaInsuficienteRetorna400(t *testing.T) {
	product := &stubProductRepo{stock: map[string]int64{testProductoID: 3}}
	mov := &stubMovementRepo{}
	app := buildInventoryApp(product, mov)

	resp := postMovimiento(t, app, dto.RegisterMovementRequest{
		ProductID: testProductoID,
		Quantity:  5,
		Type:      "salida",
		Reason:    "venta",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "INSUFFICIENT_STOCK")

	assert.Equal(t, int64(3), product.stock[testProductoID], "el stock no debe mutar en un rechazo")
	assert.Empty(t, mov.movements, "no debe registrarse movimiento en un rechazo")
}

func TestRegistrarMovimiento_TipoInvalidoRetorna400(t *testing.T) {
	product := &stubProductRepo{stock: map[string]int64{testProductoID: 10}}
	app := buildInventoryApp(product, &stubMovementRepo{})

	resp := postMovimiento(t, app, dto.RegisterMovementRequest{
		ProductID: testProductoID,
		Quantity:  5,
		Type:      "ajuste",
		Reason:    "x",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "VALIDATION")
}

func TestRegistrarMovimiento_ProductoInexistenteRetorna404(t *testing.T) {
	product := &stubProductRepo{stock: map[string]int64{}}
	app := buildInventoryApp(product, &stubMovementRepo{})

	resp := postMovimiento(t, app, dto.RegisterMovementRequest{
		ProductID: "99999999-9999-9999-9999-999999999999",
		Quantity:  1,
		Type:      "entrada",
		Reason:    "compra",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRegistrarMovimiento_SinTokenRetorna401(t *testing.T) {
	product := &stubProductRepo{stock: map[string]int64{testProductoID: 10}}
	app := buildInventoryApp(product, &stubMovementRepo{})

	raw, _ := json.Marshal(dto.RegisterMovementRequest{
		ProductID: testProductoID, Quantity: 1, Type: "entrada", Reason: "compra",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/inventario/movimiento", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/inventario/{producto_id}
// ──────────────────────────────────────────────────────────────────────────────

func TestListarMovimientosPorProducto_SinMovimientosRetornaArrayVacio(t *testing.T) {
	product := &stubProductRepo{stock: map[string]int64{testProductoID: 10}}
	app := buildInventoryApp(product, &stubMovementRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/inventario/"+testProductoID, nil)
	req.Header.Set("Authorization", tokenForRole(t, "operador"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "[]", string(bytes.TrimSpace(raw)),
		"producto sin movimientos debe responder un array vacío, no null")
}

func TestListarMovimientosPorProducto_DevuelveLosRegistrados(t *testing.T) {
	product := &stubProductRepo{stock: map[string]int64{testProductoID: 10}}
	mov := &stubMovementRepo{}
	app := buildInventoryApp(product, mov)

	resp := postMovimiento(t, app, dto.RegisterMovementRequest{
		ProductID: testProductoID, Quantity: 4, Type: "entrada", Reason: "compra",
	})
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/inventario/"+testProductoID, nil)
	req.Header.Set("Authorization", tokenForRole(t, "operador"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []dto.MovementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, testProductoID, out[0].ProductID)
	assert.Equal(t, int64(4), out[0].Quantity)
	assert.Equal(t, "entrada", out[0].Type)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/inventario/reporte
// ──────────────────────────────────────────────────────────────────────────────

func TestReporteLedger_RespondePDFAdjunto(t *testing.T) {
	product := &stubProductRepo{stock: map[string]int64{testProductoID: 10}}
	app := buildInventoryApp(product, &stubMovementRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/inventario/reporte", nil)
	req.Header.Set("Authorization", tokenForRole(t, "operador"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "el cuerpo debe ser un PDF")
}
