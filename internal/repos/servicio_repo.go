package repos

import (
	"github.com/jmoiron/sqlx"

	"electroserv/internal/domain"
)

type ServicioRepo struct{ db *sqlx.DB }

func NewServicioRepo(db *sqlx.DB) *ServicioRepo { return &ServicioRepo{db: db} }

func (r *ServicioRepo) List() ([]domain.Servicio, error) {
	out := []domain.Servicio{}
	err := r.db.Select(&out, `
		SELECT id, tipo, descripcion, estado, fechaIngreso, fechaEntrega
		FROM servicios
		ORDER BY id
	`)
	return out, err
}

// Get returns sql.ErrNoRows for unknown ids; callers map it to not-found.
func (r *ServicioRepo) Get(id int) (domain.Servicio, error) {
	var s domain.Servicio
	err := r.db.Get(&s, `
		SELECT id, tipo, descripcion, estado, fechaIngreso, fechaEntrega
		FROM servicios
		WHERE id = ?
	`, id)
	return s, err
}

// IDs returns all active ids ascending, for gap-fill assignment.
func (r *ServicioRepo) IDs() ([]int, error) {
	var ids []int
	err := r.db.Select(&ids, `SELECT id FROM servicios ORDER BY id`)
	return ids, err
}

// Insert writes a service with an explicitly assigned id.
func (r *ServicioRepo) Insert(s domain.Servicio) error {
	_, err := r.db.Exec(`
		INSERT INTO servicios (id, tipo, descripcion, estado, fechaIngreso, fechaEntrega)
		VALUES (?, ?, ?, ?, ?, NULL)
	`, s.ID, s.Tipo, s.Descripcion, s.Estado, s.FechaIngreso)
	return err
}

func (r *ServicioRepo) UpdateEstado(id int, estado string, fechaEntrega *string) error {
	_, err := r.db.Exec(`
		UPDATE servicios SET estado = ?, fechaEntrega = ? WHERE id = ?
	`, estado, fechaEntrega, id)
	return err
}

// Archive moves a service into servicios_borrados in one transaction so a
// fault cannot leave the row in both tables or in neither.
func (r *ServicioRepo) Archive(s domain.Servicio, estado, fechaBorrado string) (domain.ServicioBorrado, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return domain.ServicioBorrado{}, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		INSERT INTO servicios_borrados (id_original, tipo, descripcion, estado, fechaIngreso, fechaEntrega, fecha_borrado)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.Tipo, s.Descripcion, estado, s.FechaIngreso, s.FechaEntrega, fechaBorrado)
	if err != nil {
		return domain.ServicioBorrado{}, err
	}
	idBorrado, err := res.LastInsertId()
	if err != nil {
		return domain.ServicioBorrado{}, err
	}
	if _, err := tx.Exec(`DELETE FROM servicios WHERE id = ?`, s.ID); err != nil {
		return domain.ServicioBorrado{}, err
	}

	var b domain.ServicioBorrado
	if err := tx.Get(&b, `
		SELECT id_borrado, id_original, tipo, descripcion, estado, fechaIngreso, fechaEntrega, fecha_borrado
		FROM servicios_borrados
		WHERE id_borrado = ?
	`, idBorrado); err != nil {
		return domain.ServicioBorrado{}, err
	}
	return b, tx.Commit()
}

func (r *ServicioRepo) ListBorrados() ([]domain.ServicioBorrado, error) {
	out := []domain.ServicioBorrado{}
	err := r.db.Select(&out, `
		SELECT id_borrado, id_original, tipo, descripcion, estado, fechaIngreso, fechaEntrega, fecha_borrado
		FROM servicios_borrados
		ORDER BY id_borrado DESC
	`)
	return out, err
}

func (r *ServicioRepo) GetBorrado(idBorrado int) (domain.ServicioBorrado, error) {
	var b domain.ServicioBorrado
	err := r.db.Get(&b, `
		SELECT id_borrado, id_original, tipo, descripcion, estado, fechaIngreso, fechaEntrega, fecha_borrado
		FROM servicios_borrados
		WHERE id_borrado = ?
	`, idBorrado)
	return b, err
}

func (r *ServicioRepo) DeleteBorrado(idBorrado int) error {
	_, err := r.db.Exec(`DELETE FROM servicios_borrados WHERE id_borrado = ?`, idBorrado)
	return err
}

// BorradosDesde lists archived services with fecha_borrado >= cutoff,
// optionally filtered on the original intake date and estado, newest
// archival first.
func (r *ServicioRepo) BorradosDesde(cutoff string, f Filtro) ([]domain.ServicioBorrado, error) {
	sql := `
		SELECT id_borrado, id_original, tipo, descripcion, estado, fechaIngreso, fechaEntrega, fecha_borrado
		FROM servicios_borrados
		WHERE fecha_borrado >= ?`
	args := []any{cutoff}
	if f.Desde != "" {
		sql += ` AND fechaIngreso >= ?`
		args = append(args, f.Desde)
	}
	if f.Hasta != "" {
		sql += ` AND fechaIngreso <= ?`
		args = append(args, f.Hasta)
	}
	if f.Estado != "" {
		sql += ` AND estado = ?`
		args = append(args, f.Estado)
	}
	sql += ` ORDER BY fecha_borrado DESC`

	out := []domain.ServicioBorrado{}
	err := r.db.Select(&out, sql, args...)
	return out, err
}
