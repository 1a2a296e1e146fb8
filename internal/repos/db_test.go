package repos_test

import (
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"electroserv/internal/repos"
)

// Opening the same file twice must not fail: table creation is IF NOT
// EXISTS and the fecha_borrado ALTER swallows the duplicate-column error.
func TestOpenDBIdempotente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.sqlite")

	db, err := repos.OpenDB(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	db, err = repos.OpenDB(path)
	if err != nil {
		t.Fatalf("second open failed: %v", err)
	}
	defer db.Close()

	// The defensively-added column must be usable.
	db.MustExec(`INSERT INTO servicios_borrados (id_original, tipo, descripcion, estado, fechaIngreso, fechaEntrega, fecha_borrado)
	             VALUES (1, 'reparacion', 'motor', 'terminado', '2026-08-01', NULL, '2026-08-02T00:00:00Z')`)
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM servicios_borrados WHERE fecha_borrado IS NOT NULL`); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("want 1 row, got %d", n)
	}
}

func TestProductoRepo(t *testing.T) {
	r := repos.NewProductoRepo()

	if got := len(r.List()); got != 3 {
		t.Fatalf("want 3 seeded productos, got %d", got)
	}

	p := r.Add("Tubo LED", 12)
	if p.ID != 4 {
		t.Fatalf("next id = %d, want 4", p.ID)
	}

	if _, ok := r.Get(4); !ok {
		t.Fatal("added producto not found")
	}

	eliminado, ok := r.Delete(4)
	if !ok || eliminado.Nombre != "Tubo LED" {
		t.Fatalf("delete returned %+v, %v", eliminado, ok)
	}
	if _, ok := r.Delete(4); ok {
		t.Fatal("second delete should fail")
	}

	// After removing the last element the freed id is reused (last+1 rule).
	p = r.Add("Caja estanca", 5)
	if p.ID != 4 {
		t.Fatalf("id after deleting last = %d, want 4", p.ID)
	}
}
