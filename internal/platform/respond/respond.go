// Package respond centraliza la escritura de respuestas JSON.
package respond

import (
	"encoding/json"
	"net/http"
)

// ErrorBody es la forma uniforme de todos los errores de la API.
type ErrorBody struct {
	Detail string `json:"detail"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Detail(w http.ResponseWriter, status int, detail string) {
	JSON(w, status, ErrorBody{Detail: detail})
}

// Unauthorized agrega el challenge Bearer.
func Unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	Detail(w, http.StatusUnauthorized, detail)
}
