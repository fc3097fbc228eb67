package pathparam

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestGet_DecodesOnce(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/dogs/{name}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(Get(r, "name")))
	})
	ts := httptest.NewServer(r)
	defer ts.Close()

	cases := map[string]string{
		"/dogs/Rex":             "Rex",
		"/dogs/a%2541":          "a%41",
		"/dogs/aA":              "aA",
		"/dogs/ann@example.com": "ann@example.com",
		"/dogs/a%2Fb":           "a/b",
		"/dogs/Max%20Jr":        "Max Jr",
	}
	for path, want := range cases {
		res, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("get %s: %v", path, err)
		}
		body, _ := io.ReadAll(res.Body)
		res.Body.Close()

		if res.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, res.StatusCode)
		}
		if string(body) != want {
			t.Fatalf("%s: expected %q, got %q", path, want, string(body))
		}
	}
}
