package pagination

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

var ErrInvalidPage = errors.New("skip and limit must be non-negative integers")

// Page es el offset/limit de los listados (?skip=&limit=).
type Page struct {
	Skip  int
	Limit int
}

func Default() Page {
	return Page{Skip: 0, Limit: DefaultLimit}
}

// Normalize aplica defaults y tope; no valida negativos (eso es de FromRequest).
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Window recorta un slice ya ordenado según la página (para adapters en memoria).
func Window[T any](items []T, p Page) []T {
	p = p.Normalize()
	if p.Skip >= len(items) {
		return []T{}
	}
	end := p.Skip + p.Limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-p.Skip)
	copy(out, items[p.Skip:end])
	return out
}

func FromRequest(r *http.Request) (Page, error) {
	p := Default()
	q := r.URL.Query()

	if v := strings.TrimSpace(q.Get("skip")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Page{}, ErrInvalidPage
		}
		p.Skip = n
	}
	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Page{}, ErrInvalidPage
		}
		p.Limit = n
	}

	return p.Normalize(), nil
}
