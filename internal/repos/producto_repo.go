package repos

import (
	"sync"

	"electroserv/internal/domain"
)

// ProductoRepo is the in-memory product list. It lives for the process
// lifetime only and resets on restart. The mutex keeps concurrent
// handlers from racing on the slice; semantics are otherwise those of a
// plain list.
type ProductoRepo struct {
	mu        sync.Mutex
	productos []domain.Producto
}

func NewProductoRepo() *ProductoRepo {
	return &ProductoRepo{
		productos: []domain.Producto{
			{ID: 1, Nombre: "Cable eléctrico", Stock: 50},
			{ID: 2, Nombre: "Interruptor", Stock: 30},
			{ID: 3, Nombre: "Enchufe", Stock: 20},
		},
	}
}

func (r *ProductoRepo) List() []domain.Producto {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Producto, len(r.productos))
	copy(out, r.productos)
	return out
}

// Add assigns the next id after the last element (ids are not reused here,
// unlike servicios).
func (r *ProductoRepo) Add(nombre string, stock int) domain.Producto {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := 1
	if n := len(r.productos); n > 0 {
		id = r.productos[n-1].ID + 1
	}
	p := domain.Producto{ID: id, Nombre: nombre, Stock: stock}
	r.productos = append(r.productos, p)
	return p
}

func (r *ProductoRepo) Get(id int) (domain.Producto, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.productos {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Producto{}, false
}

func (r *ProductoRepo) Delete(id int) (domain.Producto, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.productos {
		if p.ID == id {
			r.productos = append(r.productos[:i], r.productos[i+1:]...)
			return p, true
		}
	}
	return domain.Producto{}, false
}
