package services_test

import (
	"reflect"
	"testing"

	"electroserv/internal/apierror"
	"electroserv/internal/domain"
	"electroserv/internal/repos"
	"electroserv/internal/services"
)

func TestCotizacionItemsRoundTrip(t *testing.T) {
	db := memdb(t)
	svc := services.NewCotizacionService(repos.NewCotizacionRepo(db))

	items := []domain.ItemCotizacion{
		{Descripcion: "Cable", Precio: 100},
		{Descripcion: "Enchufe doble", Precio: 45.5},
	}
	creada, err := svc.Crear("Comercial Andes", items, 145.5, "2026-08-15")
	if err != nil {
		t.Fatal(err)
	}
	if creada.Estado != services.EstadoPendiente {
		t.Fatalf("estado = %q, want %q", creada.Estado, services.EstadoPendiente)
	}

	listadas, err := svc.Listar()
	if err != nil {
		t.Fatal(err)
	}
	if len(listadas) != 1 {
		t.Fatalf("want 1 cotización, got %d", len(listadas))
	}
	if !reflect.DeepEqual(listadas[0].Items, items) {
		t.Fatalf("items round-trip mismatch: %+v vs %+v", listadas[0].Items, items)
	}
}

func TestCotizacionRechazadaArchiva(t *testing.T) {
	db := memdb(t)
	svc := services.NewCotizacionService(repos.NewCotizacionRepo(db))

	creada, err := svc.Crear("Taller Sur", []domain.ItemCotizacion{{Descripcion: "Interruptor", Precio: 30}}, 30, "2026-08-16")
	if err != nil {
		t.Fatal(err)
	}

	activa, movida, err := svc.CambiarEstado(creada.ID, services.EstadoRechazada)
	if err != nil {
		t.Fatal(err)
	}
	if activa != nil || movida == nil {
		t.Fatalf("want archived result, got activa=%v movida=%v", activa, movida)
	}
	if movida.IDOriginal != creada.ID {
		t.Fatalf("id_original = %d, want %d", movida.IDOriginal, creada.ID)
	}
	if movida.Estado != services.EstadoRechazada {
		t.Fatalf("archived estado = %q", movida.Estado)
	}
	if movida.FechaBorrado == nil {
		t.Fatal("fecha_borrado not set")
	}

	listadas, err := svc.Listar()
	if err != nil {
		t.Fatal(err)
	}
	if len(listadas) != 0 {
		t.Fatalf("active list should be empty, got %d", len(listadas))
	}
	borradas, err := svc.ListarBorradas()
	if err != nil {
		t.Fatal(err)
	}
	if len(borradas) != 1 {
		t.Fatalf("want exactly 1 archived row, got %d", len(borradas))
	}
}

func TestCotizacionCambiarEstadoEnSitio(t *testing.T) {
	db := memdb(t)
	svc := services.NewCotizacionService(repos.NewCotizacionRepo(db))

	creada, err := svc.Crear("Minera Norte", []domain.ItemCotizacion{{Descripcion: "Tablero", Precio: 900}}, 900, "2026-08-17")
	if err != nil {
		t.Fatal(err)
	}
	activa, movida, err := svc.CambiarEstado(creada.ID, services.EstadoAceptada)
	if err != nil {
		t.Fatal(err)
	}
	if movida != nil || activa == nil || activa.Estado != services.EstadoAceptada {
		t.Fatalf("want in-place update, got activa=%v movida=%v", activa, movida)
	}
}

func TestCotizacionEliminarSoloAceptada(t *testing.T) {
	db := memdb(t)
	svc := services.NewCotizacionService(repos.NewCotizacionRepo(db))

	creada, err := svc.Crear("Constructora Rio", []domain.ItemCotizacion{{Descripcion: "Canaleta", Precio: 12}}, 12, "2026-08-18")
	if err != nil {
		t.Fatal(err)
	}

	// pendiente: rejected, no state change
	if _, err := svc.Eliminar(creada.ID); apierror.StatusOf(err) != 400 {
		t.Fatalf("want 400 deleting pendiente, got %v", err)
	}
	listadas, _ := svc.Listar()
	if len(listadas) != 1 {
		t.Fatalf("rejected delete mutated state: %d rows", len(listadas))
	}

	// aceptada: allowed
	if _, _, err := svc.CambiarEstado(creada.ID, services.EstadoAceptada); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Eliminar(creada.ID); err != nil {
		t.Fatal(err)
	}
	listadas, _ = svc.Listar()
	if len(listadas) != 0 {
		t.Fatalf("delete did not remove row: %d rows", len(listadas))
	}
}

func TestCotizacionPurgarBorrada(t *testing.T) {
	db := memdb(t)
	svc := services.NewCotizacionService(repos.NewCotizacionRepo(db))

	creada, err := svc.Crear("Taller Sur", []domain.ItemCotizacion{{Descripcion: "Foco", Precio: 8}}, 8, "2026-08-19")
	if err != nil {
		t.Fatal(err)
	}
	_, movida, err := svc.CambiarEstado(creada.ID, services.EstadoRechazada)
	if err != nil {
		t.Fatal(err)
	}

	purgada, err := svc.PurgarBorrada(movida.IDBorrado)
	if err != nil {
		t.Fatal(err)
	}
	if purgada.IDBorrado != movida.IDBorrado {
		t.Fatalf("purged %d, want %d", purgada.IDBorrado, movida.IDBorrado)
	}
	if _, err := svc.PurgarBorrada(movida.IDBorrado); apierror.StatusOf(err) != 404 {
		t.Fatalf("want 404 on second purge, got %v", err)
	}
}
