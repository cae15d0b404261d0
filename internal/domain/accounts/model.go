package accounts

import "time"

// User es una cuenta de acceso. La contraseña solo se guarda como hash bcrypt.
type User struct {
	ID           string
	Username     string
	PasswordHash string

	CreatedAt time.Time
}
