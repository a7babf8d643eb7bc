package repository

import "github.com/jcastellanos/inventario-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// GetByID y GetByUsername devuelven (nil, nil) cuando no hay coincidencia.
type UserRepository interface {
	List() ([]*entity.User, error)
	GetByID(id int) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// Create asigna user.ID como max(ids existentes)+1 y persiste.
	// Devuelve domain.ErrDuplicate si el username ya existe.
	Create(user *entity.User) error
	// Delete elimina el registro, o devuelve domain.ErrUserNotFound.
	Delete(id int) error
	// CountByRole cuenta los usuarios con el rol dado.
	CountByRole(role string) (int, error)
}
