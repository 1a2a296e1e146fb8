package services_test

import (
	"testing"
	"time"

	"electroserv/internal/domain"
	"electroserv/internal/repos"
	"electroserv/internal/services"
)

func TestInformeServiciosVentana30Dias(t *testing.T) {
	db := memdb(t)
	inf := services.NewInformeService(repos.NewServicioRepo(db), repos.NewCotizacionRepo(db))

	reciente := time.Now().UTC().Add(-24 * time.Hour).Format(time.RFC3339)
	antiguo := time.Now().UTC().Add(-45 * 24 * time.Hour).Format(time.RFC3339)

	ins := `INSERT INTO servicios_borrados (id_original, tipo, descripcion, estado, fechaIngreso, fechaEntrega, fecha_borrado)
	        VALUES (?, ?, ?, ?, ?, NULL, ?)`
	// intakeDate inside any window, but archived 45 days ago: must be excluded
	db.MustExec(ins, 1, "reparacion", "viejo", "terminado", "2026-08-01", antiguo)
	db.MustExec(ins, 2, "reparacion", "nuevo", "terminado", "2026-08-02", reciente)

	rows, err := inf.ServiciosBorrados(repos.Filtro{})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Descripcion != "nuevo" {
		t.Fatalf("want only the recent archival, got %+v", rows)
	}

	// Filter on the original intake date
	rows, err = inf.ServiciosBorrados(repos.Filtro{Desde: "2026-08-02", Hasta: "2026-08-02"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("intake-date filter failed: %+v", rows)
	}
	rows, err = inf.ServiciosBorrados(repos.Filtro{Estado: "cancelado"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Fatalf("estado filter failed: %+v", rows)
	}
}

func TestInformeServiciosOrdenPorFechaBorrado(t *testing.T) {
	db := memdb(t)
	inf := services.NewInformeService(repos.NewServicioRepo(db), repos.NewCotizacionRepo(db))

	hace2d := time.Now().UTC().Add(-48 * time.Hour).Format(time.RFC3339)
	hace1d := time.Now().UTC().Add(-24 * time.Hour).Format(time.RFC3339)

	ins := `INSERT INTO servicios_borrados (id_original, tipo, descripcion, estado, fechaIngreso, fechaEntrega, fecha_borrado)
	        VALUES (?, ?, ?, ?, ?, NULL, ?)`
	db.MustExec(ins, 1, "a", "primero", "terminado", "2026-08-01", hace2d)
	db.MustExec(ins, 2, "b", "segundo", "terminado", "2026-08-01", hace1d)

	rows, err := inf.ServiciosBorrados(repos.Filtro{})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0].Descripcion != "segundo" {
		t.Fatalf("want newest archival first, got %+v", rows)
	}
}

func TestInformeCotizacionesUnion(t *testing.T) {
	db := memdb(t)
	cotRepo := repos.NewCotizacionRepo(db)
	cotSvc := services.NewCotizacionService(cotRepo)
	inf := services.NewInformeService(repos.NewServicioRepo(db), cotRepo)

	// One active, one rejected (archived now, inside the window)
	activa, err := cotSvc.Crear("Cliente A", []domain.ItemCotizacion{{Descripcion: "Cable", Precio: 100}}, 100, "2026-08-10")
	if err != nil {
		t.Fatal(err)
	}
	rechazable, err := cotSvc.Crear("Cliente B", []domain.ItemCotizacion{{Descripcion: "Foco", Precio: 8}}, 8, "2026-08-11")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := cotSvc.CambiarEstado(rechazable.ID, services.EstadoRechazada); err != nil {
		t.Fatal(err)
	}

	rows, err := inf.Cotizaciones(repos.Filtro{})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(rows))
	}
	// Active rows first, then archived
	if rows[0].Borrada != 0 || rows[0].ID != activa.ID || rows[0].FechaBorrado != nil {
		t.Fatalf("first row should be the active one: %+v", rows[0])
	}
	if rows[1].Borrada != 1 || rows[1].ID != rechazable.ID || rows[1].FechaBorrado == nil {
		t.Fatalf("second row should be the archived one under its original id: %+v", rows[1])
	}
	if rows[0].ItemsFormatted != "Cable: $100" {
		t.Fatalf("items_formatted = %q", rows[0].ItemsFormatted)
	}
}

func TestInformeCotizacionesItemsMalformados(t *testing.T) {
	db := memdb(t)
	cotRepo := repos.NewCotizacionRepo(db)
	inf := services.NewInformeService(repos.NewServicioRepo(db), cotRepo)

	db.MustExec(`INSERT INTO cotizaciones (cliente, items, total, estado, fecha)
	             VALUES ('Cliente X', 'no es json', 10, 'pendiente', '2026-08-12')`)

	rows, err := inf.Cotizaciones(repos.Filtro{})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("malformed items must not drop the row: %+v", rows)
	}
	if len(rows[0].Items) != 0 || rows[0].ItemsFormatted != "" {
		t.Fatalf("malformed items should render empty, got %+v", rows[0])
	}
}

func TestInformeCotizacionesFormatoItems(t *testing.T) {
	got := domain.FormatItems([]domain.ItemCotizacion{
		{Descripcion: "Cable", Precio: 100},
		{Descripcion: "Enchufe", Precio: 45.5},
	})
	want := "Cable: $100, Enchufe: $45.5"
	if got != want {
		t.Fatalf("FormatItems = %q, want %q", got, want)
	}
	if domain.FormatItems(nil) != "" {
		t.Fatal("empty items should format as empty string")
	}
}
