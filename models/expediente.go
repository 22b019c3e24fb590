package models

import "strings"

// Expediente represents one client matter as served to the portal.
// Two source families feed this shape: generic client cases (nombre/caratula)
// and insurance claims (cliente/contra). Normalize maps the second family
// onto the first.
type Expediente struct {
	ID            string        `json:"id,omitempty"`
	DNI           string        `json:"dni"`
	Nombre        string        `json:"nombre,omitempty"`
	Cliente       string        `json:"cliente,omitempty"`
	Caratula      string        `json:"caratula,omitempty"`
	Contra        string        `json:"contra,omitempty"`
	Expediente    string        `json:"expediente,omitempty"`
	Estado        string        `json:"estado,omitempty"`
	Observaciones []Observacion `json:"observaciones,omitempty"`
}

// Normalize fills derived fields for claim-family records. Existing values
// are never overwritten, so normalizing twice is a no-op.
func (e *Expediente) Normalize() {
	if e.Nombre == "" && e.Cliente != "" {
		e.Nombre = e.Cliente
	}
	if e.Caratula == "" && e.Contra != "" {
		e.Caratula = "Siniestro c/ " + e.Contra
	}
}

// Observacion is one dated annotation on a case. Fecha is the authoritative
// work date; ProximaRevision schedules the next follow-up.
type Observacion struct {
	Fecha           string `json:"fecha"`
	Texto           string `json:"texto"`
	ProximaRevision string `json:"proximaRevision,omitempty"`
	Completed       bool   `json:"completed,omitempty"`
}

// EsPrivada reports whether the note is an internal annotation that must
// never reach client-facing or AI-rewritten output.
func (o Observacion) EsPrivada() bool {
	return strings.HasPrefix(strings.TrimSpace(o.Texto), "//")
}

// ChatTurn is one message of a Justina assistant conversation.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
