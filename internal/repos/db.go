package repos

import (
	"log"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	ensureFechaBorrado(db)

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Servicios activos. La id se asigna explícitamente (ver NextServicioID);
-- AUTOINCREMENT queda solo como respaldo del esquema original.
CREATE TABLE IF NOT EXISTS servicios(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  tipo TEXT NOT NULL,
  descripcion TEXT NOT NULL,
  estado TEXT NOT NULL,
  fechaIngreso TEXT NOT NULL,
  fechaEntrega TEXT
);

-- Papelera de servicios. id_original puede repetirse entre borrados sucesivos.
CREATE TABLE IF NOT EXISTS servicios_borrados(
  id_borrado INTEGER PRIMARY KEY AUTOINCREMENT,
  id_original INTEGER,
  tipo TEXT NOT NULL,
  descripcion TEXT NOT NULL,
  estado TEXT NOT NULL,
  fechaIngreso TEXT NOT NULL,
  fechaEntrega TEXT
);

CREATE TABLE IF NOT EXISTS cotizaciones(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  cliente TEXT NOT NULL,
  items TEXT NOT NULL,
  total REAL NOT NULL,
  estado TEXT NOT NULL,
  fecha TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS cotizaciones_borradas(
  id_borrado INTEGER PRIMARY KEY AUTOINCREMENT,
  id_original INTEGER,
  cliente TEXT NOT NULL,
  items TEXT NOT NULL,
  total REAL NOT NULL,
  estado TEXT NOT NULL,
  fecha TEXT NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

// ensureFechaBorrado adds the fecha_borrado column to both papelera tables.
// The column was introduced after the tables shipped, so the ALTER runs on
// every startup and the "duplicate column" error is swallowed.
func ensureFechaBorrado(db *sqlx.DB) {
	for _, tabla := range []string{"servicios_borrados", "cotizaciones_borradas"} {
		_, err := db.Exec(`ALTER TABLE ` + tabla + ` ADD COLUMN fecha_borrado TEXT`)
		if err != nil && !strings.Contains(err.Error(), "duplicate column") {
			log.Printf("[schema] %s: %v", tabla, err)
		}
	}
}
