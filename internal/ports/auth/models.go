package auth

import "time"

// Claims es la identidad asociada a una sesión.
type Claims struct {
	UserID   string
	Username string
}

// Session se crea en login y se invalida en logout.
type Session struct {
	Token     string
	Claims    Claims
	ExpiresAt time.Time
}
