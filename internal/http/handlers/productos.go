package handlers

import (
	"github.com/gofiber/fiber/v2"

	"electroserv/internal/repos"
	"electroserv/internal/validate"
)

type ProductosHandler struct {
	Productos *repos.ProductoRepo
}

type crearProductoRequest struct {
	Nombre string `json:"nombre" validate:"required"`
	Stock  *int   `json:"stock" validate:"required,min=0"`
}

func (h *ProductosHandler) Listar(c *fiber.Ctx) error {
	return c.JSON(h.Productos.List())
}

func (h *ProductosHandler) Crear(c *fiber.Ctx) error {
	var req crearProductoRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	p := h.Productos.Add(req.Nombre, *req.Stock)
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *ProductosHandler) Eliminar(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Producto no encontrado"})
	}
	p, ok := h.Productos.Delete(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Producto no encontrado"})
	}
	return c.JSON(p)
}

func (h *ProductosHandler) Stock(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Producto no encontrado"})
	}
	p, ok := h.Productos.Get(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Producto no encontrado"})
	}
	return c.JSON(fiber.Map{"id": p.ID, "nombre": p.Nombre, "stock": p.Stock})
}
