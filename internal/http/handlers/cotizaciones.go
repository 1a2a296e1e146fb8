package handlers

import (
	"github.com/gofiber/fiber/v2"

	"electroserv/internal/domain"
	applog "electroserv/internal/log"
	"electroserv/internal/services"
	"electroserv/internal/validate"
)

type CotizacionesHandler struct {
	Svc *services.CotizacionService
}

// Items and Total are pointers so presence is checked without rejecting
// an empty array or a zero total.
type crearCotizacionRequest struct {
	Cliente string                   `json:"cliente" validate:"required"`
	Items   *[]domain.ItemCotizacion `json:"items" validate:"required"`
	Total   *float64                 `json:"total" validate:"required"`
	Fecha   string                   `json:"fecha" validate:"required"`
}

type cambiarEstadoCotizacionRequest struct {
	Estado string `json:"estado"`
}

func (h *CotizacionesHandler) Listar(c *fiber.Ctx) error {
	rows, err := h.Svc.Listar()
	if err != nil {
		return respondError(c, "cotizaciones.listar", err)
	}
	return c.JSON(rows)
}

func (h *CotizacionesHandler) Crear(c *fiber.Ctx) error {
	var req crearCotizacionRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	cot, err := h.Svc.Crear(req.Cliente, *req.Items, *req.Total, req.Fecha)
	if err != nil {
		return respondError(c, "cotizaciones.crear", err)
	}
	return c.Status(fiber.StatusCreated).JSON(cot)
}

// CambiarEstado updates a quotation; "rechazada" archives it and returns
// {"moved": row} instead of the active row.
func (h *CotizacionesHandler) CambiarEstado(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cotización no encontrada"})
	}
	var req cambiarEstadoCotizacionRequest
	if err := c.BodyParser(&req); err != nil || req.Estado == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Falta estado"})
	}
	activa, movida, err := h.Svc.CambiarEstado(id, req.Estado)
	if err != nil {
		return respondError(c, "cotizaciones.estado", err)
	}
	if movida != nil {
		applog.Audit(c, "cotizaciones.rechazar", map[string]any{"id": id, "id_borrado": movida.IDBorrado})
		return c.JSON(fiber.Map{"moved": movida})
	}
	return c.JSON(activa)
}

func (h *CotizacionesHandler) Eliminar(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cotización no encontrada"})
	}
	cot, err := h.Svc.Eliminar(id)
	if err != nil {
		return respondError(c, "cotizaciones.eliminar", err)
	}
	applog.Audit(c, "cotizaciones.eliminar", map[string]any{"id": id})
	return c.JSON(cot)
}

func (h *CotizacionesHandler) ListarBorradas(c *fiber.Ctx) error {
	rows, err := h.Svc.ListarBorradas()
	if err != nil {
		return respondError(c, "cotizaciones.borradas.listar", err)
	}
	return c.JSON(rows)
}

func (h *CotizacionesHandler) PurgarBorrada(c *fiber.Ctx) error {
	idBorrado, ok := validate.ID(c.Params("id_borrado"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cotización borrada no encontrada"})
	}
	b, err := h.Svc.PurgarBorrada(idBorrado)
	if err != nil {
		return respondError(c, "cotizaciones.borradas.purgar", err)
	}
	applog.Audit(c, "cotizaciones.borradas.purgar", map[string]any{"id_borrado": idBorrado})
	return c.JSON(conEliminado(b))
}
