package usecase

import (
	"strings"

	"github.com/jcastellanos/inventario-api/internal/application/dto"
	"github.com/jcastellanos/inventario-api/internal/domain"
	"github.com/jcastellanos/inventario-api/internal/domain/entity"
	"github.com/jcastellanos/inventario-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase gestión de usuarios (solo admin): listado, alta y baja con
// el invariante de último administrador.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista todos los usuarios sin el campo password.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Create crea un usuario: hashea el password con bcrypt y persiste.
// Username duplicado devuelve ErrDuplicate; rol omitido queda en "lector".
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.NewValidationError("Usuario y contraseña son obligatorios")
	}
	role := strings.ToLower(in.Role)
	if role == "" {
		role = entity.RoleLector
	}
	if !entity.ValidRole(role) {
		return nil, domain.NewValidationError("Rol desconocido: " + in.Role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario. Las dos políticas de autorización dependientes
// del estado se evalúan aquí como predicados con nombre antes de mutar:
// isSelf (el admin que llama no puede borrarse a sí mismo) e isLastAdmin
// (el store nunca queda sin administradores).
func (uc *UserUseCase) Delete(id, callerID int) error {
	if isSelf(id, callerID) {
		return domain.ErrSelfDelete
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	lastAdmin, err := uc.isLastAdmin(user)
	if err != nil {
		return err
	}
	if lastAdmin {
		return domain.ErrLastAdmin
	}
	return uc.repo.Delete(id)
}

// isSelf: el registro a borrar pertenece al que llama.
func isSelf(id, callerID int) bool {
	return id == callerID
}

// isLastAdmin: borrar este usuario dejaría el store sin administradores.
func (uc *UserUseCase) isLastAdmin(user *entity.User) (bool, error) {
	if !user.IsAdmin() {
		return false, nil
	}
	admins, err := uc.repo.CountByRole(entity.RoleAdmin)
	if err != nil {
		return false, err
	}
	return admins <= 1, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}
