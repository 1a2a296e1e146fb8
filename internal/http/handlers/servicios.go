package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "electroserv/internal/log"
	"electroserv/internal/services"
	"electroserv/internal/validate"
)

type ServiciosHandler struct {
	Svc *services.ServicioService
}

type crearServicioRequest struct {
	Tipo         string `json:"tipo" validate:"required"`
	Descripcion  string `json:"descripcion" validate:"required"`
	Estado       string `json:"estado" validate:"required"`
	FechaIngreso string `json:"fechaIngreso" validate:"required"`
}

type cambiarEstadoServicioRequest struct {
	Estado       string `json:"estado"`
	FechaEntrega string `json:"fechaEntrega"`
}

func (h *ServiciosHandler) Listar(c *fiber.Ctx) error {
	rows, err := h.Svc.Listar()
	if err != nil {
		return respondError(c, "servicios.listar", err)
	}
	return c.JSON(rows)
}

func (h *ServiciosHandler) Obtener(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválida"})
	}
	s, err := h.Svc.Obtener(id)
	if err != nil {
		return respondError(c, "servicios.obtener", err)
	}
	return c.JSON(s)
}

func (h *ServiciosHandler) Crear(c *fiber.Ctx) error {
	var req crearServicioRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	s, err := h.Svc.Crear(req.Tipo, req.Descripcion, req.Estado, req.FechaIngreso)
	if err != nil {
		return respondError(c, "servicios.crear", err)
	}
	return c.Status(fiber.StatusCreated).JSON(s)
}

func (h *ServiciosHandler) CambiarEstado(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Servicio no encontrado"})
	}
	var req cambiarEstadoServicioRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Faltan datos"})
	}
	s, err := h.Svc.CambiarEstado(id, req.Estado, req.FechaEntrega)
	if err != nil {
		return respondError(c, "servicios.estado", err)
	}
	return c.JSON(s)
}

// Archivar handles DELETE /servicios/:id?motivo=terminado|cancelado: the
// service moves to the papelera and the archived row is returned.
func (h *ServiciosHandler) Archivar(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Servicio no encontrado"})
	}
	motivo, ok := validate.Motivo(c.Query("motivo"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Motivo inválido"})
	}
	b, err := h.Svc.Archivar(id, motivo)
	if err != nil {
		return respondError(c, "servicios.archivar", err)
	}
	applog.Audit(c, "servicios.archivar", map[string]any{"id": id, "id_borrado": b.IDBorrado, "motivo": motivo})
	return c.JSON(b)
}

func (h *ServiciosHandler) ListarBorrados(c *fiber.Ctx) error {
	rows, err := h.Svc.ListarBorrados()
	if err != nil {
		return respondError(c, "servicios.borrados.listar", err)
	}
	return c.JSON(rows)
}

func (h *ServiciosHandler) PurgarBorrado(c *fiber.Ctx) error {
	idBorrado, ok := validate.ID(c.Params("id_borrado"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Servicio borrado no encontrado"})
	}
	b, err := h.Svc.PurgarBorrado(idBorrado)
	if err != nil {
		return respondError(c, "servicios.borrados.purgar", err)
	}
	applog.Audit(c, "servicios.borrados.purgar", map[string]any{"id_borrado": idBorrado})
	return c.JSON(conEliminado(b))
}
