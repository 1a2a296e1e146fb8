package services

import (
	"database/sql"
	"errors"
	"time"

	"electroserv/internal/apierror"
	"electroserv/internal/domain"
	"electroserv/internal/repos"
)

const (
	EstadoPendiente = "pendiente"
	EstadoAceptada  = "aceptada"
	EstadoRechazada = "rechazada"
)

type CotizacionService struct {
	Cotizaciones *repos.CotizacionRepo
}

func NewCotizacionService(cotizaciones *repos.CotizacionRepo) *CotizacionService {
	return &CotizacionService{Cotizaciones: cotizaciones}
}

func (s *CotizacionService) Listar() ([]domain.Cotizacion, error) {
	rows, err := s.Cotizaciones.List()
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].Items, err = domain.DecodeItems(rows[i].ItemsJSON); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

func (s *CotizacionService) Crear(cliente string, items []domain.ItemCotizacion, total float64, fecha string) (domain.Cotizacion, error) {
	encoded, err := domain.EncodeItems(items)
	if err != nil {
		return domain.Cotizacion{}, err
	}
	id, err := s.Cotizaciones.Insert(domain.Cotizacion{
		Cliente:   cliente,
		ItemsJSON: encoded,
		Total:     total,
		Estado:    EstadoPendiente,
		Fecha:     fecha,
	})
	if err != nil {
		return domain.Cotizacion{}, err
	}
	return s.obtener(id)
}

func (s *CotizacionService) obtener(id int) (domain.Cotizacion, error) {
	c, err := s.Cotizaciones.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Cotizacion{}, apierror.NotFound("Cotización no encontrada")
	}
	if err != nil {
		return domain.Cotizacion{}, err
	}
	c.Items, err = domain.DecodeItems(c.ItemsJSON)
	return c, err
}

// CambiarEstado updates a quotation in place, except "rechazada" which
// archives it: exactly one of the two results is non-nil on success.
func (s *CotizacionService) CambiarEstado(id int, estado string) (*domain.Cotizacion, *domain.CotizacionBorrada, error) {
	if estado == EstadoRechazada {
		c, err := s.obtener(id)
		if err != nil {
			return nil, nil, err
		}
		fechaBorrado := time.Now().UTC().Format(time.RFC3339)
		b, err := s.Cotizaciones.Reject(c, fechaBorrado)
		if err != nil {
			return nil, nil, err
		}
		if b.Items, err = domain.DecodeItems(b.ItemsJSON); err != nil {
			return nil, nil, err
		}
		return nil, &b, nil
	}

	if _, err := s.obtener(id); err != nil {
		return nil, nil, err
	}
	if err := s.Cotizaciones.UpdateEstado(id, estado); err != nil {
		return nil, nil, err
	}
	c, err := s.obtener(id)
	if err != nil {
		return nil, nil, err
	}
	return &c, nil, nil
}

// Eliminar removes an active quotation directly. Only "aceptada" rows may
// be deleted; anything else is rejected with no state change.
func (s *CotizacionService) Eliminar(id int) (domain.Cotizacion, error) {
	c, err := s.obtener(id)
	if err != nil {
		return domain.Cotizacion{}, err
	}
	if c.Estado != EstadoAceptada {
		return domain.Cotizacion{}, apierror.BadRequest("Solo se pueden eliminar cotizaciones aceptadas")
	}
	if err := s.Cotizaciones.Delete(id); err != nil {
		return domain.Cotizacion{}, err
	}
	return c, nil
}

func (s *CotizacionService) ListarBorradas() ([]domain.CotizacionBorrada, error) {
	rows, err := s.Cotizaciones.ListBorradas()
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].Items, err = domain.DecodeItems(rows[i].ItemsJSON); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

func (s *CotizacionService) PurgarBorrada(idBorrado int) (domain.CotizacionBorrada, error) {
	b, err := s.Cotizaciones.GetBorrada(idBorrado)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CotizacionBorrada{}, apierror.NotFound("Cotización borrada no encontrada")
	}
	if err != nil {
		return domain.CotizacionBorrada{}, err
	}
	if err := s.Cotizaciones.DeleteBorrada(idBorrado); err != nil {
		return domain.CotizacionBorrada{}, err
	}
	if b.Items, err = domain.DecodeItems(b.ItemsJSON); err != nil {
		return domain.CotizacionBorrada{}, err
	}
	return b, nil
}
