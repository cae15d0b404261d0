package httpjson

import (
	"encoding/json"
	"net/http"
)

// Severity sigue las categorías de mensajes que muestra la UI (warning = el usuario
// puede corregirlo, danger = falla del servidor o del store).
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

type ErrorBody struct {
	Error    string   `json:"error"`
	Severity Severity `json:"severity,omitempty"`
}

// Write antes estaba duplicado en cada módulo (pets/events); con cinco módulos ya conviene el helper común.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Warning(w http.ResponseWriter, status int, msg string) {
	Write(w, status, ErrorBody{Error: msg, Severity: SeverityWarning})
}

func Danger(w http.ResponseWriter, status int, msg string) {
	Write(w, status, ErrorBody{Error: msg, Severity: SeverityDanger})
}

// Decode lee el body JSON rechazando campos desconocidos.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
