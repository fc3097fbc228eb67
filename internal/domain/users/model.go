package users

import "dogs-adoption/internal/domain/dogs"

// User es un usuario (potencial adoptante / dueño).
type User struct {
	ID       string
	Name     string
	LastName string
	Email    string // clave natural, única

	// Dogs es una proyección de solo lectura (dogs.user_id = ID); no se persiste acá.
	Dogs []dogs.Dog
}
