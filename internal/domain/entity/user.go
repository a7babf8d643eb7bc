package entity

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleLector = "lector"
)

// ValidRole indica si el rol está dentro del catálogo reconocido.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEditor, RoleLector:
		return true
	}
	return false
}

// User representa un usuario del sistema.
// PasswordHash es un hash bcrypt; la contraseña en claro nunca se persiste.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
	Role         string `json:"role"` // admin, editor, lector
}

// IsAdmin indica si el usuario tiene rol administrador.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
