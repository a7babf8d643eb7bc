package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Mensaje string       `json:"mensaje"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// CreateUserRequest entrada para crear un usuario (password en texto, se
// hashea en el use case). Role es opcional; por defecto "lector".
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserResponse salida de un usuario (sin password, nunca).
type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
