package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/trading-pro/internal/application/dto"
	"github.com/tu-usuario/trading-pro/internal/application/usecase"
	"github.com/tu-usuario/trading-pro/internal/domain"
)

// OrderHandler maneja las peticiones HTTP para órdenes de importación y
// exportación.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// CreateImport da de alta una orden de importación.
func (h *OrderHandler) CreateImport(c *fiber.Ctx) error {
	var in dto.ImportOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateImport(in)
	if err != nil {
		return orderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateExport da de alta una orden de exportación.
func (h *OrderHandler) CreateExport(c *fiber.Ctx) error {
	var in dto.ExportOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateExport(in)
	if err != nil {
		return orderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetImportByID obtiene una orden de importación por id.
func (h *OrderHandler) GetImportByID(c *fiber.Ctx) error {
	out := h.uc.GetImportByID(c.Params("id"))
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	}
	return c.JSON(out)
}

// GetExportByID obtiene una orden de exportación por id.
func (h *OrderHandler) GetExportByID(c *fiber.Ctx) error {
	out := h.uc.GetExportByID(c.Params("id"))
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	}
	return c.JSON(out)
}

// ListImports lista órdenes de importación; ?from= y ?to= filtran por rango
// de fechas inclusivo.
func (h *OrderHandler) ListImports(c *fiber.Ctx) error {
	out, err := h.uc.ListImports(c.Query("from"), c.Query("to"))
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// ListExports lista órdenes de exportación; mismos filtros.
func (h *OrderHandler) ListExports(c *fiber.Ctx) error {
	out, err := h.uc.ListExports(c.Query("from"), c.Query("to"))
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// DeleteImport elimina una orden de importación; 404 si no existe.
func (h *OrderHandler) DeleteImport(c *fiber.Ctx) error {
	if err := h.uc.DeleteImport(c.Params("id")); err != nil {
		return orderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteExport elimina una orden de exportación; 404 si no existe.
func (h *OrderHandler) DeleteExport(c *fiber.Ctx) error {
	if err := h.uc.DeleteExport(c.Params("id")); err != nil {
		return orderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Totals devuelve los montos acumulados de órdenes COMPLETED.
func (h *OrderHandler) Totals(c *fiber.Ctx) error {
	return c.JSON(h.uc.Totals())
}

func orderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
