package handlers

import (
	"github.com/jmoiron/sqlx"

	"electroserv/internal/repos"
	"electroserv/internal/services"
)

type Deps struct {
	ProductosHandler    *ProductosHandler
	ServiciosHandler    *ServiciosHandler
	CotizacionesHandler *CotizacionesHandler
	InformesHandler     *InformesHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	servRepo := repos.NewServicioRepo(db)
	cotRepo := repos.NewCotizacionRepo(db)
	prodRepo := repos.NewProductoRepo()

	servSvc := services.NewServicioService(servRepo)
	cotSvc := services.NewCotizacionService(cotRepo)
	infSvc := services.NewInformeService(servRepo, cotRepo)

	return &Deps{
		ProductosHandler:    &ProductosHandler{Productos: prodRepo},
		ServiciosHandler:    &ServiciosHandler{Svc: servSvc},
		CotizacionesHandler: &CotizacionesHandler{Svc: cotSvc},
		InformesHandler:     &InformesHandler{Svc: infSvc},
	}
}
