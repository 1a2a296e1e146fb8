package services

import (
	"database/sql"
	"errors"
	"time"

	"electroserv/internal/apierror"
	"electroserv/internal/domain"
	"electroserv/internal/repos"
)

type ServicioService struct {
	Servicios *repos.ServicioRepo
}

func NewServicioService(servicios *repos.ServicioRepo) *ServicioService {
	return &ServicioService{Servicios: servicios}
}

// NextServicioID returns the smallest positive id not present contiguously
// from 1 in the ascending input, reusing ids freed by archival. With no
// gap the result is len(ids)+1.
func NextServicioID(ids []int) int {
	for i, id := range ids {
		if id != i+1 {
			return i + 1
		}
	}
	return len(ids) + 1
}

func (s *ServicioService) Listar() ([]domain.Servicio, error) {
	return s.Servicios.List()
}

func (s *ServicioService) Obtener(id int) (domain.Servicio, error) {
	sv, err := s.Servicios.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Servicio{}, apierror.NotFound("Servicio no encontrado")
	}
	return sv, err
}

func (s *ServicioService) Crear(tipo, descripcion, estado, fechaIngreso string) (domain.Servicio, error) {
	ids, err := s.Servicios.IDs()
	if err != nil {
		return domain.Servicio{}, err
	}
	sv := domain.Servicio{
		ID:           NextServicioID(ids),
		Tipo:         tipo,
		Descripcion:  descripcion,
		Estado:       estado,
		FechaIngreso: fechaIngreso,
	}
	if err := s.Servicios.Insert(sv); err != nil {
		return domain.Servicio{}, err
	}
	return s.Servicios.Get(sv.ID)
}

// CambiarEstado patches estado and/or fechaEntrega; empty inputs keep the
// current values.
func (s *ServicioService) CambiarEstado(id int, estado, fechaEntrega string) (domain.Servicio, error) {
	sv, err := s.Obtener(id)
	if err != nil {
		return domain.Servicio{}, err
	}
	nuevoEstado := sv.Estado
	if estado != "" {
		nuevoEstado = estado
	}
	nuevaEntrega := sv.FechaEntrega
	if fechaEntrega != "" {
		nuevaEntrega = &fechaEntrega
	}
	if err := s.Servicios.UpdateEstado(id, nuevoEstado, nuevaEntrega); err != nil {
		return domain.Servicio{}, err
	}
	return s.Servicios.Get(id)
}

// Archivar moves a service to the papelera. The archived estado is the
// motivo when supplied ("terminado"/"cancelado"), else the current estado.
func (s *ServicioService) Archivar(id int, motivo string) (domain.ServicioBorrado, error) {
	sv, err := s.Obtener(id)
	if err != nil {
		return domain.ServicioBorrado{}, err
	}
	estado := sv.Estado
	if motivo != "" {
		estado = motivo
	}
	fechaBorrado := time.Now().UTC().Format(time.RFC3339)
	return s.Servicios.Archive(sv, estado, fechaBorrado)
}

func (s *ServicioService) ListarBorrados() ([]domain.ServicioBorrado, error) {
	return s.Servicios.ListBorrados()
}

// PurgarBorrado removes an archived service permanently and returns the
// erased row.
func (s *ServicioService) PurgarBorrado(idBorrado int) (domain.ServicioBorrado, error) {
	b, err := s.Servicios.GetBorrado(idBorrado)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ServicioBorrado{}, apierror.NotFound("Servicio borrado no encontrado")
	}
	if err != nil {
		return domain.ServicioBorrado{}, err
	}
	if err := s.Servicios.DeleteBorrado(idBorrado); err != nil {
		return domain.ServicioBorrado{}, err
	}
	return b, nil
}
