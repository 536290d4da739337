package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario/internal/application/inventory"
	"github.com/tu-usuario/inventario/internal/domain"
	"github.com/tu-usuario/inventario/internal/domain/entity"
	"github.com/tu-usuario/inventario/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore emula la BD: stock por producto y libro de movimientos.
// fakeTxRunner serializa Run con un mutex, igual que lo haría el bloqueo de
// fila FOR UPDATE sobre el mismo producto.
type fakeStore struct {
	mu        sync.Mutex
	stock     map[string]int64
	movements []*entity.Movement
}

func newFakeStore(stock map[string]int64) *fakeStore {
	return &fakeStore{stock: stock}
}

type fakeTxRunner struct{ store *fakeStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return fn(&fakeMovementRepo{store: r.store}, &fakeProductRepo{store: r.store})
}

type fakeMovementRepo struct {
	repository.MovementRepository
	store *fakeStore
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	r.store.movements = append(r.store.movements, m)
	return nil
}

type fakeProductRepo struct {
	repository.ProductRepository
	store *fakeStore
}

func (r *fakeProductRepo) GetStockForUpdate(productID string) (int64, error) {
	stock, ok := r.store.stock[productID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return stock, nil
}

func (r *fakeProductRepo) UpdateStock(productID string, stock int64) error {
	r.store.stock[productID] = stock
	return nil
}

func newUseCase(store *fakeStore) *inventory.RegisterMovementUseCase {
	return inventory.NewRegisterMovementUseCase(&fakeTxRunner{store: store})
}

const (
	testProductID = "11111111-1111-1111-1111-111111111111"
	testUserID    = "22222222-2222-2222-2222-222222222222"
)

// ──────────────────────────────────────────────────────────────────────────────
// Registro de movimientos
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: stock 10, entrada de 5 → stock 15 y un movimiento en el libro.
func TestRegisterMovement_EntradaSumaStock(t *testing.T) {
	store := newFakeStore(map[string]int64{testProductID: 10})
	uc := newUseCase(store)

	mov, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: testProductID,
		Quantity:  5,
		Type:      entity.MovementTypeEntry,
		Reason:    "reposición",
		UserID:    testUserID,
	})
	require.NoError(t, err)
	require.NotNil(t, mov)

	assert.NotEmpty(t, mov.ID, "el movimiento debe salir con ID asignado")
	assert.False(t, mov.CreatedAt.IsZero(), "la fecha la asigna el servidor")
	assert.Equal(t, int64(15), store.stock[testProductID])
	require.Len(t, store.movements, 1)
	assert.Equal(t, entity.MovementTypeEntry, store.movements[0].Type)
	assert.Equal(t, int64(5), store.movements[0].Quantity)
}

// Escenario: stock 10, salida de 12 → stock insuficiente, nada cambia.
func TestRegisterMovement_SalidaInsuficiente_NoMuta(t *testing.T) {
	store := newFakeStore(map[string]int64{testProductID: 10})
	uc := newUseCase(store)

	mov, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: testProductID,
		Quantity:  12,
		Type:      entity.MovementTypeExit,
		Reason:    "venta",
		UserID:    testUserID,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, mov)
	assert.Equal(t, int64(10), store.stock[testProductID], "el stock no debe cambiar")
	assert.Empty(t, store.movements, "no debe insertarse ningún movimiento")
}

// Salida exacta: stock 10, salida de 10 → stock 0, permitido.
func TestRegisterMovement_SalidaDejaStockEnCero(t *testing.T) {
	store := newFakeStore(map[string]int64{testProductID: 10})
	uc := newUseCase(store)

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: testProductID,
		Quantity:  10,
		Type:      entity.MovementTypeExit,
		Reason:    "venta",
		UserID:    testUserID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), store.stock[testProductID])
}

// cantidad <= 0 se rechaza antes de tocar el stock.
func TestRegisterMovement_CantidadNoPositiva(t *testing.T) {
	store := newFakeStore(map[string]int64{testProductID: 10})
	uc := newUseCase(store)

	for _, qty := range []int64{0, -3} {
		_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
			ProductID: testProductID,
			Quantity:  qty,
			Type:      entity.MovementTypeEntry,
			Reason:    "ajuste",
			UserID:    testUserID,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Equal(t, int64(10), store.stock[testProductID])
	assert.Empty(t, store.movements)
}

func TestRegisterMovement_TipoInvalido(t *testing.T) {
	store := newFakeStore(map[string]int64{testProductID: 10})
	uc := newUseCase(store)

	for _, tipo := range []string{"", "ENTRADA", "transferencia", "in"} {
		_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
			ProductID: testProductID,
			Quantity:  1,
			Type:      tipo,
			Reason:    "x",
			UserID:    testUserID,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo %q debe rechazarse", tipo)
	}
	assert.Empty(t, store.movements)
}

func TestRegisterMovement_CamposObligatorios(t *testing.T) {
	store := newFakeStore(map[string]int64{testProductID: 10})
	uc := newUseCase(store)

	casos := []inventory.MovementInput{
		{ProductID: "", Quantity: 1, Type: entity.MovementTypeEntry, Reason: "x", UserID: testUserID},
		{ProductID: testProductID, Quantity: 1, Type: entity.MovementTypeEntry, Reason: "", UserID: testUserID},
		{ProductID: testProductID, Quantity: 1, Type: entity.MovementTypeEntry, Reason: "x", UserID: ""},
	}
	for _, in := range casos {
		_, err := uc.RegisterMovement(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, store.movements)
}

func TestRegisterMovement_ProductoInexistente(t *testing.T) {
	store := newFakeStore(map[string]int64{})
	uc := newUseCase(store)

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: testProductID,
		Quantity:  1,
		Type:      entity.MovementTypeEntry,
		Reason:    "x",
		UserID:    testUserID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.movements)
}

// Invariante: stock final == inicial + entradas - salidas sobre el libro.
func TestRegisterMovement_InvarianteStockContraLibro(t *testing.T) {
	store := newFakeStore(map[string]int64{testProductID: 7})
	uc := newUseCase(store)

	movimientos := []struct {
		tipo string
		qty  int64
	}{
		{entity.MovementTypeEntry, 5},
		{entity.MovementTypeExit, 3},
		{entity.MovementTypeEntry, 2},
		{entity.MovementTypeExit, 1},
	}
	for _, m := range movimientos {
		_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
			ProductID: testProductID,
			Quantity:  m.qty,
			Type:      m.tipo,
			Reason:    "test",
			UserID:    testUserID,
		})
		require.NoError(t, err)
	}

	var neto int64
	for _, m := range store.movements {
		if m.Type == entity.MovementTypeEntry {
			neto += m.Quantity
		} else {
			neto -= m.Quantity
		}
	}
	assert.Equal(t, int64(7)+neto, store.stock[testProductID])
	assert.Len(t, store.movements, 4)
}

// Dos salidas concurrentes por la cantidad exacta del stock: exactamente una
// debe pasar; la otra recibe stock insuficiente; stock final 0.
func TestRegisterMovement_SalidasConcurrentes_UnaSolaGana(t *testing.T) {
	const cantidad = int64(5)
	store := newFakeStore(map[string]int64{testProductID: cantidad})
	uc := newUseCase(store)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
				ProductID: testProductID,
				Quantity:  cantidad,
				Type:      entity.MovementTypeExit,
				Reason:    "venta",
				UserID:    testUserID,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var exitos, insuficientes int
	for err := range errs {
		switch {
		case err == nil:
			exitos++
		case err == domain.ErrInsufficientStock:
			insuficientes++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, exitos, "exactamente una salida debe confirmarse")
	assert.Equal(t, 1, insuficientes, "la otra debe fallar por stock insuficiente")
	assert.Equal(t, int64(0), store.stock[testProductID])
	assert.Len(t, store.movements, 1)
}
