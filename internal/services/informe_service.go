package services

import (
	"time"

	"electroserv/internal/domain"
	"electroserv/internal/repos"
)

// ventanaInforme is how far back archived rows appear in reports.
const ventanaInforme = 30 * 24 * time.Hour

type InformeService struct {
	Servs *repos.ServicioRepo
	Cots  *repos.CotizacionRepo
}

func NewInformeService(servs *repos.ServicioRepo, cots *repos.CotizacionRepo) *InformeService {
	return &InformeService{Servs: servs, Cots: cots}
}

func corteVentana() string {
	return time.Now().UTC().Add(-ventanaInforme).Format(time.RFC3339)
}

// ServiciosBorrados reports services archived within the window, filtered
// on the original intake date and estado, newest archival first.
func (s *InformeService) ServiciosBorrados(f repos.Filtro) ([]domain.ServicioBorrado, error) {
	return s.Servs.BorradosDesde(corteVentana(), f)
}

// Cotizaciones reports the union of active quotations and those archived
// within the window: active rows first, then archived, each group in
// source order.
func (s *InformeService) Cotizaciones(f repos.Filtro) ([]domain.InformeCotizacion, error) {
	activas, err := s.Cots.Activas(f)
	if err != nil {
		return nil, err
	}
	borradas, err := s.Cots.BorradasDesde(corteVentana(), f)
	if err != nil {
		return nil, err
	}

	out := make([]domain.InformeCotizacion, 0, len(activas)+len(borradas))
	for _, c := range activas {
		out = append(out, informeDesdeActiva(c))
	}
	for _, b := range borradas {
		out = append(out, informeDesdeBorrada(b))
	}
	return out, nil
}

func informeDesdeActiva(c domain.Cotizacion) domain.InformeCotizacion {
	items := decodeItemsTolerante(c.ItemsJSON)
	return domain.InformeCotizacion{
		ID:             c.ID,
		Cliente:        c.Cliente,
		Items:          items,
		Total:          c.Total,
		Estado:         c.Estado,
		Fecha:          c.Fecha,
		FechaBorrado:   nil,
		Borrada:        0,
		ItemsFormatted: domain.FormatItems(items),
	}
}

// Archived rows surface under their original id, not id_borrado.
func informeDesdeBorrada(b domain.CotizacionBorrada) domain.InformeCotizacion {
	items := decodeItemsTolerante(b.ItemsJSON)
	return domain.InformeCotizacion{
		ID:             b.IDOriginal,
		Cliente:        b.Cliente,
		Items:          items,
		Total:          b.Total,
		Estado:         b.Estado,
		Fecha:          b.Fecha,
		FechaBorrado:   b.FechaBorrado,
		Borrada:        1,
		ItemsFormatted: domain.FormatItems(items),
	}
}

// Malformed item data renders as empty rather than failing the report.
func decodeItemsTolerante(raw string) []domain.ItemCotizacion {
	items, err := domain.DecodeItems(raw)
	if err != nil {
		return nil
	}
	return items
}
