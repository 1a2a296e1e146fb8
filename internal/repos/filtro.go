package repos

// Filtro acota los informes: desde/hasta son cotas inclusivas sobre la
// fecha original del registro, estado es coincidencia exacta. Campos
// vacíos no filtran.
type Filtro struct {
	Desde  string
	Hasta  string
	Estado string
}
