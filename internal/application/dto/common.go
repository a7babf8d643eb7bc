package dto

// ErrorResponse cuerpo de error HTTP. Todo error de la API es un objeto
// JSON con un campo error; nunca se expone un cuerpo vacío ni stack traces.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse cuerpo de confirmación simple.
type MessageResponse struct {
	Mensaje string `json:"mensaje"`
}
