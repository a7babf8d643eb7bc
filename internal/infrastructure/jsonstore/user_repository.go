package jsonstore

import (
	"sync"

	"github.com/jcastellanos/inventario-api/internal/domain"
	"github.com/jcastellanos/inventario-api/internal/domain/entity"
	"github.com/jcastellanos/inventario-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre un documento JSON
// plano serializado con un mutex.
type UserRepo struct {
	mu   sync.Mutex
	path string
}

// NewUserRepository construye el adaptador de persistencia de usuarios.
func NewUserRepository(path string) *UserRepo {
	return &UserRepo{path: path}
}

// List devuelve todos los usuarios en el orden del archivo.
func (r *UserRepo) List() ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// GetByID devuelve el usuario con ese id, o (nil, nil) si no existe.
func (r *UserRepo) GetByID(id int) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	usuarios, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, u := range usuarios {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// GetByUsername busca por username exacto (sensible a mayúsculas).
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	usuarios, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, u := range usuarios {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// Create asigna max(ids)+1, rechaza usernames duplicados y persiste.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	usuarios, err := r.load()
	if err != nil {
		return err
	}
	nextID := 1
	for _, u := range usuarios {
		if u.Username == user.Username {
			return domain.ErrDuplicate
		}
		if u.ID >= nextID {
			nextID = u.ID + 1
		}
	}
	user.ID = nextID
	usuarios = append(usuarios, user)
	return writeCollection(r.path, usuarios)
}

// Delete elimina el registro, o devuelve ErrUserNotFound.
func (r *UserRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	usuarios, err := r.load()
	if err != nil {
		return err
	}
	for i, u := range usuarios {
		if u.ID == id {
			usuarios = append(usuarios[:i], usuarios[i+1:]...)
			return writeCollection(r.path, usuarios)
		}
	}
	return domain.ErrUserNotFound
}

// CountByRole cuenta los usuarios con el rol dado.
func (r *UserRepo) CountByRole(role string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	usuarios, err := r.load()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, u := range usuarios {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *UserRepo) load() ([]*entity.User, error) {
	usuarios := []*entity.User{}
	if err := readCollection(r.path, &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}
