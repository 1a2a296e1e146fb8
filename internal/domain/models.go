package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

type Servicio struct {
	ID           int     `db:"id" json:"id"`
	Tipo         string  `db:"tipo" json:"tipo"`
	Descripcion  string  `db:"descripcion" json:"descripcion"`
	Estado       string  `db:"estado" json:"estado"` // "en proceso" | "terminado" | "cancelado" | libre
	FechaIngreso string  `db:"fechaIngreso" json:"fechaIngreso"`
	FechaEntrega *string `db:"fechaEntrega" json:"fechaEntrega"`
}

// ServicioBorrado is the archived copy of a Servicio. IDOriginal is
// informational only: it can repeat across successive archivals.
type ServicioBorrado struct {
	IDBorrado    int     `db:"id_borrado" json:"id_borrado"`
	IDOriginal   int     `db:"id_original" json:"id_original"`
	Tipo         string  `db:"tipo" json:"tipo"`
	Descripcion  string  `db:"descripcion" json:"descripcion"`
	Estado       string  `db:"estado" json:"estado"`
	FechaIngreso string  `db:"fechaIngreso" json:"fechaIngreso"`
	FechaEntrega *string `db:"fechaEntrega" json:"fechaEntrega"`
	// Nullable: rows archived before the column was added have no value.
	FechaBorrado *string `db:"fecha_borrado" json:"fecha_borrado"`
}

type ItemCotizacion struct {
	Descripcion string  `json:"descripcion"`
	Precio      float64 `json:"precio"`
}

type Cotizacion struct {
	ID        int              `db:"id" json:"id"`
	Cliente   string           `db:"cliente" json:"cliente"`
	ItemsJSON string           `db:"items" json:"-"`
	Items     []ItemCotizacion `db:"-" json:"items"`
	Total     float64          `db:"total" json:"total"`
	Estado    string           `db:"estado" json:"estado"` // "pendiente" al crear; "rechazada" archiva
	Fecha     string           `db:"fecha" json:"fecha"`
}

type CotizacionBorrada struct {
	IDBorrado    int              `db:"id_borrado" json:"id_borrado"`
	IDOriginal   int              `db:"id_original" json:"id_original"`
	Cliente      string           `db:"cliente" json:"cliente"`
	ItemsJSON    string           `db:"items" json:"-"`
	Items        []ItemCotizacion `db:"-" json:"items"`
	Total        float64          `db:"total" json:"total"`
	Estado       string           `db:"estado" json:"estado"`
	Fecha        string           `db:"fecha" json:"fecha"`
	FechaBorrado *string          `db:"fecha_borrado" json:"fecha_borrado"`
}

type Producto struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Stock  int    `json:"stock"`
}

// InformeCotizacion is the unified report view over active and archived
// quotations. Archived rows carry the original id, not id_borrado.
type InformeCotizacion struct {
	ID             int              `json:"id"`
	Cliente        string           `json:"cliente"`
	Items          []ItemCotizacion `json:"items"`
	Total          float64          `json:"total"`
	Estado         string           `json:"estado"`
	Fecha          string           `json:"fecha"`
	FechaBorrado   *string          `json:"fecha_borrado"`
	Borrada        int              `json:"borrada"` // 0 activa, 1 archivada
	ItemsFormatted string           `json:"items_formatted"`
}

// EncodeItems serializes line items to the structured-text column format.
// A nil slice encodes as an empty list, never as null.
func EncodeItems(items []ItemCotizacion) (string, error) {
	if items == nil {
		items = []ItemCotizacion{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeItems parses the items column. Callers that must tolerate
// malformed data (reports) should check the error and fall back to nil.
func DecodeItems(raw string) ([]ItemCotizacion, error) {
	var items []ItemCotizacion
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FormatItems renders line items as "descripcion: $precio, ..." in
// original order. Empty input renders as "".
func FormatItems(items []ItemCotizacion) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, it.Descripcion+": $"+strconv.FormatFloat(it.Precio, 'f', -1, 64))
	}
	return strings.Join(parts, ", ")
}
