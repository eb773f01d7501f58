package models

import (
	"time"
)

const (
	PerfilAdmin = "admin"
	PerfilUser  = "user"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // El "-" evita que se serialice en JSON
	Name      string    `json:"name"`
	Perfil    string    `json:"perfil"`
	CreatedAt time.Time `json:"created_at"`
}
