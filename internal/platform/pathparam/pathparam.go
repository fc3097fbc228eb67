package pathparam

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// Get devuelve el parámetro de ruta decodificado una sola vez.
// chi rutea sobre r.URL.RawPath cuando existe (segmento todavía escapado) y
// sobre r.URL.Path en otro caso (ya decodificado por net/http).
func Get(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
