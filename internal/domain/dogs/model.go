package dogs

// CreateDateLayout es el formato con el que se guarda create_date (microsegundos).
const CreateDateLayout = "2006-01-02 15:04:05.000000"

// Dog es un perro publicado para adopción.
type Dog struct {
	ID   string
	Name string // clave natural; se busca por primer match, no es UNIQUE

	// Picture se obtiene de la API externa al crear; nunca viene del cliente.
	Picture string

	// CreateDate se fija al crear y no se actualiza nunca.
	CreateDate string

	IsAdopted bool

	// OwnerID vacío = sin dueño (alta standalone o dueño eliminado).
	OwnerID string
}

func (d Dog) HasOwner() bool {
	return d.OwnerID != ""
}
