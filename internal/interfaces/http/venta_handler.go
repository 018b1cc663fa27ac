package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/uis-entornos/comercio-api/internal/application/dto"
	"github.com/uis-entornos/comercio-api/internal/application/sales"
)

// VentaHandler maneja las peticiones HTTP de ventas (protegido).
type VentaHandler struct {
	registrarUC *sales.RegistrarVentaUseCase
	consultaUC  *sales.ConsultaVentasUseCase
	reciboUC    *sales.ReciboUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(
	registrarUC *sales.RegistrarVentaUseCase,
	consultaUC *sales.ConsultaVentasUseCase,
	reciboUC *sales.ReciboUseCase,
) *VentaHandler {
	return &VentaHandler{registrarUC: registrarUC, consultaUC: consultaUC, reciboUC: reciboUC}
}

// Registrar registra una venta nueva.
func (h *VentaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.registrarUC.Registrar(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar retorna las ventas; con sucursalId, fechaInicio o fechaFin aplica el filtro.
func (h *VentaHandler) Listar(c *fiber.Ctx) error {
	filtro := dto.FiltrarVentasRequest{
		SucursalID:  c.Query("sucursalId"),
		FechaInicio: c.Query("fechaInicio"),
		FechaFin:    c.Query("fechaFin"),
	}
	if filtro.SucursalID == "" && filtro.FechaInicio == "" && filtro.FechaFin == "" {
		out, err := h.consultaUC.ListarTodas()
		if err != nil {
			return mapDomainError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.consultaUC.Filtrar(filtro)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// VentasDeHoy retorna el total facturado del día calendario actual.
func (h *VentaHandler) VentasDeHoy(c *fiber.Ctx) error {
	out, err := h.consultaUC.VentasDeHoy(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// ListarDetalles retorna los detalles de una venta (lista vacía si no existe).
func (h *VentaHandler) ListarDetalles(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.consultaUC.ListarDetalles(id)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Recibo retorna el PDF imprimible de una venta.
func (h *VentaHandler) Recibo(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdfBytes, err := h.reciboUC.Generar(c.Context(), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}
