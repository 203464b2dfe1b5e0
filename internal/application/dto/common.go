package dto

// ErrorResponse cuerpo de error HTTP. Message lleva el texto en español que
// antes mostraba la notificación del cliente: el mensaje lo decide la capa
// de presentación, nunca el store.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
