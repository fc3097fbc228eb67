package auth

// Claims es lo que el resto de la app sabe del usuario autenticado
// (ya resuelto contra el store de identidades, no solo lo que trae el token).
type Claims struct {
	Username string
	Email    string
	FullName string
	Disabled bool
}
