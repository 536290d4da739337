package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario/internal/application/dto"
	"github.com/tu-usuario/inventario/internal/application/inventory"
	"github.com/tu-usuario/inventario/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP del libro de movimientos (protegido).
type InventoryHandler struct {
	register *inventory.RegisterMovementUseCase
	query    *inventory.LedgerQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(register *inventory.RegisterMovementUseCase, query *inventory.LedgerQueryUseCase) *InventoryHandler {
	return &InventoryHandler{register: register, query: query}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "producto_id, cantidad, tipo (entrada|salida), motivo"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/inventario/movimiento [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if _, err := h.register.RegisterMovementFromRequest(c.Context(), userID, in); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "todos los campos son obligatorios y tipo debe ser 'entrada' o 'salida'"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error en el servidor"})
	}
	return c.JSON(dto.MessageResponse{Message: "Movimiento registrado exitosamente"})
}

// ListMovements godoc
// @Summary      Historial completo de movimientos
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.MovementResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventario/ [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	out, err := h.query.ListAllMovements(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error en el servidor"})
	}
	return c.JSON(out)
}

// ListMovementsByProduct godoc
// @Summary      Movimientos de un producto
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        producto_id  path  string  true  "ID del producto"
// @Success      200  {array}   dto.MovementResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventario/{producto_id} [get]
func (h *InventoryHandler) ListMovementsByProduct(c *fiber.Ctx) error {
	out, err := h.query.ListMovementsForProduct(c.Context(), c.Params("producto_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error en el servidor"})
	}
	return c.JSON(out)
}

// StockEvolution godoc
// @Summary      Evolución del stock por día (entradas - salidas)
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        producto_id  path  string  true  "ID del producto"
// @Success      200  {array}   dto.StockEvolutionDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventario/stock-evolucion/{producto_id} [get]
func (h *InventoryHandler) StockEvolution(c *fiber.Ctx) error {
	out, err := h.query.StockEvolution(c.Context(), c.Params("producto_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error en el servidor"})
	}
	return c.JSON(out)
}

// MovementDistribution godoc
// @Summary      Distribución de movimientos por producto
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.MovementDistributionDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos-productos [get]
func (h *InventoryHandler) MovementDistribution(c *fiber.Ctx) error {
	out, err := h.query.MovementDistributionByProduct(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error en el servidor"})
	}
	return c.JSON(out)
}

// LedgerReport godoc
// @Summary      Historial de movimientos en PDF
// @Tags         inventario
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventario/reporte [get]
func (h *InventoryHandler) LedgerReport(c *fiber.Ctx) error {
	data, err := h.query.LedgerReportPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error en el servidor"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.pdf"`)
	return c.Send(data)
}
