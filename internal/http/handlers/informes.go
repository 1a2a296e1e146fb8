package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "electroserv/internal/log"
	"electroserv/internal/reports"
	"electroserv/internal/repos"
	"electroserv/internal/services"
	"electroserv/internal/validate"
)

type InformesHandler struct {
	Svc *services.InformeService
}

func filtroDesdeQuery(c *fiber.Ctx) (repos.Filtro, bool) {
	desde, ok := validate.Fecha(c.Query("desde"))
	if !ok {
		return repos.Filtro{}, false
	}
	hasta, ok := validate.Fecha(c.Query("hasta"))
	if !ok {
		return repos.Filtro{}, false
	}
	return repos.Filtro{Desde: desde, Hasta: hasta, Estado: c.Query("estado")}, true
}

func (h *InformesHandler) enviarCSV(c *fiber.Ctx, prefix, body string, filas int) error {
	filename := reports.Filename(prefix, time.Now().UTC())
	applog.Audit(c, "informes.csv", map[string]any{
		"export_id": uuid.NewString(),
		"filename":  filename,
		"filas":     filas,
	})
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendString(body)
}

// Servicios reports services archived in the last 30 days, as JSON when
// preview=true, else as a CSV attachment.
func (h *InformesHandler) Servicios(c *fiber.Ctx) error {
	f, ok := filtroDesdeQuery(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Fecha inválida"})
	}
	rows, err := h.Svc.ServiciosBorrados(f)
	if err != nil {
		return respondError(c, "informes.servicios", err)
	}
	if c.Query("preview") == "true" {
		return c.JSON(rows)
	}

	headers := []string{"id_borrado", "id_original", "tipo", "descripcion", "estado", "fechaIngreso", "fechaEntrega", "fecha_borrado"}
	data := make([][]any, 0, len(rows))
	for _, r := range rows {
		data = append(data, []any{r.IDBorrado, r.IDOriginal, r.Tipo, r.Descripcion, r.Estado, r.FechaIngreso, r.FechaEntrega, r.FechaBorrado})
	}
	return h.enviarCSV(c, "servicios_borrados", reports.Encode(headers, data), len(rows))
}

// Cotizaciones reports active quotations plus those archived in the last
// 30 days, active rows first.
func (h *InformesHandler) Cotizaciones(c *fiber.Ctx) error {
	f, ok := filtroDesdeQuery(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Fecha inválida"})
	}
	rows, err := h.Svc.Cotizaciones(f)
	if err != nil {
		return respondError(c, "informes.cotizaciones", err)
	}
	if c.Query("preview") == "true" {
		return c.JSON(rows)
	}

	headers := []string{"id", "cliente", "items_formatted", "total", "estado", "fecha", "fecha_borrado", "borrada"}
	data := make([][]any, 0, len(rows))
	for _, r := range rows {
		data = append(data, []any{r.ID, r.Cliente, r.ItemsFormatted, r.Total, r.Estado, r.Fecha, r.FechaBorrado, r.Borrada})
	}
	return h.enviarCSV(c, "cotizaciones", reports.Encode(headers, data), len(rows))
}
