package repos

import (
	"github.com/jmoiron/sqlx"

	"electroserv/internal/domain"
)

type CotizacionRepo struct{ db *sqlx.DB }

func NewCotizacionRepo(db *sqlx.DB) *CotizacionRepo { return &CotizacionRepo{db: db} }

// List returns active quotations, newest first. Items stay encoded; the
// service layer decodes them.
func (r *CotizacionRepo) List() ([]domain.Cotizacion, error) {
	out := []domain.Cotizacion{}
	err := r.db.Select(&out, `
		SELECT id, cliente, items, total, estado, fecha
		FROM cotizaciones
		ORDER BY id DESC
	`)
	return out, err
}

func (r *CotizacionRepo) Get(id int) (domain.Cotizacion, error) {
	var c domain.Cotizacion
	err := r.db.Get(&c, `
		SELECT id, cliente, items, total, estado, fecha
		FROM cotizaciones
		WHERE id = ?
	`, id)
	return c, err
}

// Insert creates a quotation and returns its auto-assigned id.
func (r *CotizacionRepo) Insert(c domain.Cotizacion) (int, error) {
	res, err := r.db.Exec(`
		INSERT INTO cotizaciones (cliente, items, total, estado, fecha)
		VALUES (?, ?, ?, ?, ?)
	`, c.Cliente, c.ItemsJSON, c.Total, c.Estado, c.Fecha)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func (r *CotizacionRepo) UpdateEstado(id int, estado string) error {
	_, err := r.db.Exec(`UPDATE cotizaciones SET estado = ? WHERE id = ?`, estado, id)
	return err
}

// Reject moves a quotation into cotizaciones_borradas in one transaction.
// The archived estado is always "rechazada".
func (r *CotizacionRepo) Reject(c domain.Cotizacion, fechaBorrado string) (domain.CotizacionBorrada, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return domain.CotizacionBorrada{}, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		INSERT INTO cotizaciones_borradas (id_original, cliente, items, total, estado, fecha, fecha_borrado)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.Cliente, c.ItemsJSON, c.Total, "rechazada", c.Fecha, fechaBorrado)
	if err != nil {
		return domain.CotizacionBorrada{}, err
	}
	idBorrado, err := res.LastInsertId()
	if err != nil {
		return domain.CotizacionBorrada{}, err
	}
	if _, err := tx.Exec(`DELETE FROM cotizaciones WHERE id = ?`, c.ID); err != nil {
		return domain.CotizacionBorrada{}, err
	}

	var b domain.CotizacionBorrada
	if err := tx.Get(&b, `
		SELECT id_borrado, id_original, cliente, items, total, estado, fecha, fecha_borrado
		FROM cotizaciones_borradas
		WHERE id_borrado = ?
	`, idBorrado); err != nil {
		return domain.CotizacionBorrada{}, err
	}
	return b, tx.Commit()
}

func (r *CotizacionRepo) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM cotizaciones WHERE id = ?`, id)
	return err
}

func (r *CotizacionRepo) ListBorradas() ([]domain.CotizacionBorrada, error) {
	out := []domain.CotizacionBorrada{}
	err := r.db.Select(&out, `
		SELECT id_borrado, id_original, cliente, items, total, estado, fecha, fecha_borrado
		FROM cotizaciones_borradas
		ORDER BY id_borrado DESC
	`)
	return out, err
}

func (r *CotizacionRepo) GetBorrada(idBorrado int) (domain.CotizacionBorrada, error) {
	var b domain.CotizacionBorrada
	err := r.db.Get(&b, `
		SELECT id_borrado, id_original, cliente, items, total, estado, fecha, fecha_borrado
		FROM cotizaciones_borradas
		WHERE id_borrado = ?
	`, idBorrado)
	return b, err
}

func (r *CotizacionRepo) DeleteBorrada(idBorrado int) error {
	_, err := r.db.Exec(`DELETE FROM cotizaciones_borradas WHERE id_borrado = ?`, idBorrado)
	return err
}

// Activas lists active quotations matching the report filter, in table
// order (no explicit sort, matching the report contract).
func (r *CotizacionRepo) Activas(f Filtro) ([]domain.Cotizacion, error) {
	sql := `SELECT id, cliente, items, total, estado, fecha FROM cotizaciones`
	where := []string{}
	args := []any{}
	if f.Desde != "" {
		where = append(where, `fecha >= ?`)
		args = append(args, f.Desde)
	}
	if f.Hasta != "" {
		where = append(where, `fecha <= ?`)
		args = append(args, f.Hasta)
	}
	if f.Estado != "" {
		where = append(where, `estado = ?`)
		args = append(args, f.Estado)
	}
	for i, w := range where {
		if i == 0 {
			sql += ` WHERE ` + w
		} else {
			sql += ` AND ` + w
		}
	}

	out := []domain.Cotizacion{}
	err := r.db.Select(&out, sql, args...)
	return out, err
}

// BorradasDesde lists archived quotations with fecha_borrado >= cutoff,
// filtered on the original fecha and estado.
func (r *CotizacionRepo) BorradasDesde(cutoff string, f Filtro) ([]domain.CotizacionBorrada, error) {
	sql := `
		SELECT id_borrado, id_original, cliente, items, total, estado, fecha, fecha_borrado
		FROM cotizaciones_borradas
		WHERE fecha_borrado >= ?`
	args := []any{cutoff}
	if f.Desde != "" {
		sql += ` AND fecha >= ?`
		args = append(args, f.Desde)
	}
	if f.Hasta != "" {
		sql += ` AND fecha <= ?`
		args = append(args, f.Hasta)
	}
	if f.Estado != "" {
		sql += ` AND estado = ?`
		args = append(args, f.Estado)
	}

	out := []domain.CotizacionBorrada{}
	err := r.db.Select(&out, sql, args...)
	return out, err
}
