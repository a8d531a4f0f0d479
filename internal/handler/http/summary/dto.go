// Package summary provides the HTTP handlers of the summarization API.
package summary

// Request is the body accepted by POST /resumir.
type Request struct {
	Texto string `json:"texto" example:"Texto largo a resumir..."`
}

// Response is returned by POST /resumir on success.
type Response struct {
	Resumen          string   `json:"resumen" example:"El texto trata sobre..."`
	IdeasPrincipales []string `json:"ideas_principales" example:"Primera idea,Segunda idea"`
}

// StatusResponse is returned by GET /.
type StatusResponse struct {
	Message string `json:"message" example:"Backend activo"`
}

// Messages returned for malformed requests.
const (
	MsgInvalidJSON  = "El cuerpo de la solicitud debe ser un JSON válido."
	MsgBodyTooLarge = "El cuerpo de la solicitud es demasiado grande."
	MsgBackendAlive = "Backend activo"
)
