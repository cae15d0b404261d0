package animals

import "time"

// Kind es una clasificación tipo/raza (p.ej. Bovino / Nelore).
type Kind struct {
	ID    string
	Kind  string
	Breed *string // nil = raza no informada

	CreatedAt time.Time
}

// Label devuelve "tipo - raza" o solo el tipo si no hay raza.
func (k Kind) Label() string {
	return Label(k.Kind, k.Breed)
}

func Label(kind string, breed *string) string {
	if breed == nil || *breed == "" {
		return kind
	}
	return kind + " - " + *breed
}
