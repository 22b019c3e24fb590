package models

// CartaRequest is the input to demand-letter composition. Identity fields are
// passed through verbatim; only MontoTotal is validated.
type CartaRequest struct {
	Lugar                string  `json:"lugar"`
	Aseguradora          string  `json:"aseguradora"`
	DireccionAseguradora string  `json:"direccionAseguradora"`
	Nombre               string  `json:"nombre"`
	DNI                  string  `json:"dni"`
	Poliza               string  `json:"poliza"`
	Compania             string  `json:"compania"`
	FechaSiniestro       string  `json:"fechaSiniestro"`
	Hora                 string  `json:"hora"`
	LugarSiniestro       string  `json:"lugarSiniestro"`
	Relato               string  `json:"relato"`
	Vehiculo             string  `json:"vehiculo"`
	PartesDanadas        string  `json:"partesDanadas"`
	Conductor            string  `json:"conductor"`
	DNIConductor         string  `json:"dniConductor"`
	Tercero              string  `json:"tercero"`
	DNITercero           string  `json:"dniTercero"`
	Infracciones         string  `json:"infracciones"`
	Lesiones             bool    `json:"lesiones"`
	DescripcionLesiones  string  `json:"descripcionLesiones"`
	MontoTotal           float64 `json:"montoTotal"`
}

// Carta is the deterministic half of a letter: the drafting prompt, the
// evidence list rendered verbatim into it, and a plain fallback body used
// when no drafting provider is available.
type Carta struct {
	Prompt  string
	Pruebas []string
	Resumen string
}
