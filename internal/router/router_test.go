package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"dogs-adoption/internal/adapters/auth/jwtauth"
	idmem "dogs-adoption/internal/adapters/identity/memory"
	"dogs-adoption/internal/domain/identity"
	"dogs-adoption/internal/router"
)

const (
	testPassword = "secret"
	testPicture  = "https://images.example.com/dog.jpg"
)

type fixedPicture struct{}

func (fixedPicture) Picture(_ context.Context) string { return testPicture }

type dogBody struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Picture    string  `json:"picture"`
	CreateDate string  `json:"create_date"`
	IsAdopted  bool    `json:"is_adopted"`
	UserID     *string `json:"user_id"`
}

type userBody struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	LastName string    `json:"lastname"`
	Email    string    `json:"email"`
	Dogs     []dogBody `json:"dogs"`
}

func newTestServer(t *testing.T, identities ...identity.Identity) *httptest.Server {
	t.Helper()

	hash, err := identity.HashPassword(testPassword, 4)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if len(identities) == 0 {
		identities = []identity.Identity{{
			Username: "johndoe",
			FullName: "John Doe",
			Email:    "johndoe@example.com",
		}}
	}
	for i := range identities {
		identities[i].HashedPassword = hash
	}

	store, err := idmem.NewStore(identities...)
	if err != nil {
		t.Fatalf("identity store: %v", err)
	}
	codec, err := jwtauth.New(strings.Repeat("k", jwtauth.MinSecretLen))
	if err != nil {
		t.Fatalf("jwt codec: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Identities: store,
		Tokens:     codec,
		Pictures:   fixedPicture{},
		AccessTTL:  30 * time.Minute,
		BcryptCost: 4,
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_DogLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts.URL, "johndoe", testPassword)

	// 1) Alta
	var created dogBody
	{
		st, body := doReq(t, ts.URL, "POST", "/api/dogs", token, map[string]any{
			"name":       "Rex",
			"is_adopted": false,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating dog, got %d body=%s", st, string(body))
		}
		decode(t, body, &created)
		if created.ID == "" || created.Picture != testPicture || created.UserID != nil || created.IsAdopted {
			t.Fatalf("unexpected created dog: %+v", created)
		}
		if _, err := time.Parse("2006-01-02 15:04:05.000000", created.CreateDate); err != nil {
			t.Fatalf("create_date %q has unexpected layout: %v", created.CreateDate, err)
		}
	}

	// 2) Lectura por nombre
	{
		st, body := doReq(t, ts.URL, "GET", "/api/dogs/Rex", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get dog, got %d body=%s", st, string(body))
		}
		var got dogBody
		decode(t, body, &got)
		if got.ID != created.ID {
			t.Fatalf("expected same dog, got %+v", got)
		}
	}

	// 3) Update parcial: solo is_adopted
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/dogs/Rex", token, map[string]any{"is_adopted": true})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update dog, got %d body=%s", st, string(body))
		}
		var got dogBody
		decode(t, body, &got)
		if got.Name != "Rex" || !got.IsAdopted || got.Picture != created.Picture || got.CreateDate != created.CreateDate {
			t.Fatalf("partial update changed more than is_adopted: %+v", got)
		}
	}

	// 4) Aparece en adoptados
	{
		st, body := doReq(t, ts.URL, "GET", "/api/dogs/is_adopted", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 adopted list, got %d body=%s", st, string(body))
		}
		var list []dogBody
		decode(t, body, &list)
		if len(list) != 1 || list[0].Name != "Rex" {
			t.Fatalf("expected Rex in adopted list, got %+v", list)
		}
	}

	// 5) Baja devuelve snapshot
	{
		st, body := doReq(t, ts.URL, "DELETE", "/api/dogs/Rex", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete dog, got %d body=%s", st, string(body))
		}
		var got dogBody
		decode(t, body, &got)
		if got.ID != created.ID || !got.IsAdopted {
			t.Fatalf("unexpected deleted snapshot: %+v", got)
		}
	}

	// 6) Ya no existe
	{
		st, body := doReq(t, ts.URL, "GET", "/api/dogs/Rex", "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d body=%s", st, string(body))
		}
		assertDetail(t, body, "Dog not found")
	}
}

func TestHTTP_DogNotFound(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts.URL, "johndoe", testPassword)

	for _, tc := range []struct {
		method, path, token string
		body                any
	}{
		{"GET", "/api/dogs/Ghost", "", nil},
		{"PUT", "/api/dogs/Ghost", token, map[string]any{"name": "Boo"}},
		{"DELETE", "/api/dogs/Ghost", "", nil},
	} {
		st, body := doReq(t, ts.URL, tc.method, tc.path, tc.token, tc.body)
		if st != http.StatusNotFound {
			t.Fatalf("%s %s: expected 404, got %d body=%s", tc.method, tc.path, st, string(body))
		}
		assertDetail(t, body, "Dog not found")
	}
}

func TestHTTP_CreateDogValidation(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts.URL, "johndoe", testPassword)

	st, _ := doReq(t, ts.URL, "POST", "/api/dogs", token, map[string]any{"name": "Rex"})
	if st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 without is_adopted, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "POST", "/api/dogs", token, map[string]any{"name": "  ", "is_adopted": true})
	if st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 with blank name, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "GET", "/api/dogs?skip=-1", "", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 with negative skip, got %d", st)
	}
}

func TestHTTP_AuthRequired(t *testing.T) {
	ts := newTestServer(t)

	// Sin token
	{
		res := rawReq(t, ts.URL, "POST", "/api/dogs", "", map[string]any{"name": "Rex", "is_adopted": false})
		if res.status != http.StatusUnauthorized {
			t.Fatalf("expected 401 without token, got %d", res.status)
		}
		if res.header.Get("WWW-Authenticate") != "Bearer" {
			t.Fatalf("expected WWW-Authenticate: Bearer, got %q", res.header.Get("WWW-Authenticate"))
		}
		assertDetail(t, res.body, "Not authenticated")
	}

	// Token adulterado
	{
		token := login(t, ts.URL, "johndoe", testPassword)
		parts := strings.Split(token, ".")
		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}
		tampered := parts[0] + "." + parts[1] + "." + string(sig)

		st, body := doReq(t, ts.URL, "POST", "/api/dogs", tampered, map[string]any{"name": "Rex", "is_adopted": false})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 with tampered token, got %d body=%s", st, string(body))
		}
		assertDetail(t, body, "Could not validate credentials")

		st, _ = doReq(t, ts.URL, "GET", "/user_auth/me", tampered, nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 on /user_auth/me with tampered token, got %d", st)
		}
	}

	// Lecturas son públicas
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/dogs", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing dogs anonymously, got %d", st)
		}
	}
}

func TestHTTP_TokenFlow(t *testing.T) {
	ts := newTestServer(t)

	// Password incorrecta
	{
		res := postForm(t, ts.URL, "johndoe", "wrong")
		if res.status != http.StatusUnauthorized {
			t.Fatalf("expected 401 with wrong password, got %d", res.status)
		}
		assertDetail(t, res.body, "Incorrect username or password")
	}

	// Usuario inexistente
	{
		res := postForm(t, ts.URL, "nobody", testPassword)
		if res.status != http.StatusUnauthorized {
			t.Fatalf("expected 401 with unknown user, got %d", res.status)
		}
	}

	token := login(t, ts.URL, "johndoe", testPassword)

	st, body := doReq(t, ts.URL, "GET", "/user_auth/me", token, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 /user_auth/me, got %d body=%s", st, string(body))
	}
	var me struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Disabled bool   `json:"disabled"`
	}
	decode(t, body, &me)
	if me.Username != "johndoe" || me.FullName != "John Doe" || me.Disabled {
		t.Fatalf("unexpected profile: %+v", me)
	}
}

func TestHTTP_InactiveIdentity(t *testing.T) {
	ts := newTestServer(t, identity.Identity{Username: "sleepy", Disabled: true})
	token := login(t, ts.URL, "sleepy", testPassword)

	st, body := doReq(t, ts.URL, "GET", "/user_auth/me", token, nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for inactive identity, got %d body=%s", st, string(body))
	}
	assertDetail(t, body, "Inactive user")

	st, _ = doReq(t, ts.URL, "POST", "/api/dogs", token, map[string]any{"name": "Rex", "is_adopted": false})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 creating dog as inactive identity, got %d", st)
	}
}

func TestHTTP_DuplicateEmail(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts.URL, "johndoe", testPassword)

	payload := map[string]any{"name": "Ann", "lastname": "Lee", "email": "ann@example.com"}

	st, body := doReq(t, ts.URL, "POST", "/api/users", token, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating user, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "POST", "/api/users", token, payload)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 duplicate email, got %d body=%s", st, string(body))
	}
	assertDetail(t, body, "Email already registered")

	st, body = doReq(t, ts.URL, "GET", "/api/users", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 listing users, got %d", st)
	}
	var list []userBody
	decode(t, body, &list)
	if len(list) != 1 {
		t.Fatalf("expected exactly one user, got %d", len(list))
	}
}

func TestHTTP_UserDogsAndOrphaning(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts.URL, "johndoe", testPassword)

	var owner userBody
	{
		st, body := doReq(t, ts.URL, "POST", "/api/users", token, map[string]any{
			"name": "Ann", "lastname": "Lee", "email": "ann@example.com",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating user, got %d body=%s", st, string(body))
		}
		decode(t, body, &owner)
		if len(owner.Dogs) != 0 {
			t.Fatalf("new user should have no dogs, got %+v", owner.Dogs)
		}
	}

	// Perro con dueño
	{
		st, body := doReq(t, ts.URL, "POST", "/api/users/ann@example.com/dogs/", token, map[string]any{
			"name": "Luna", "is_adopted": true,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating owned dog, got %d body=%s", st, string(body))
		}
		var d dogBody
		decode(t, body, &d)
		if d.UserID == nil || *d.UserID != owner.ID {
			t.Fatalf("expected user_id %s, got %+v", owner.ID, d.UserID)
		}
	}

	// Dueño inexistente
	{
		st, body := doReq(t, ts.URL, "POST", "/api/users/ghost@example.com/dogs/", token, map[string]any{
			"name": "Boo", "is_adopted": false,
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown owner, got %d body=%s", st, string(body))
		}
		assertDetail(t, body, "User not found")
	}

	// El usuario lista sus perros
	{
		st, body := doReq(t, ts.URL, "GET", "/api/users/ann@example.com", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get user, got %d body=%s", st, string(body))
		}
		var u userBody
		decode(t, body, &u)
		if len(u.Dogs) != 1 || u.Dogs[0].Name != "Luna" {
			t.Fatalf("expected Luna nested in user, got %+v", u.Dogs)
		}
	}

	// Update parcial de usuario
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/users/ann@example.com", "", map[string]any{"lastname": "Park"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update user, got %d body=%s", st, string(body))
		}
		var u userBody
		decode(t, body, &u)
		if u.Name != "Ann" || u.LastName != "Park" || u.Email != "ann@example.com" {
			t.Fatalf("unexpected updated user: %+v", u)
		}
	}

	// Baja del usuario: el perro queda sin dueño
	{
		st, body := doReq(t, ts.URL, "DELETE", "/api/users/ann@example.com", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete user, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/api/dogs/Luna", "", nil)
		if st != http.StatusOK {
			t.Fatalf("dog should survive owner deletion, got %d body=%s", st, string(body))
		}
		var d dogBody
		decode(t, body, &d)
		if d.UserID != nil {
			t.Fatalf("expected orphaned dog, got user_id %q", *d.UserID)
		}

		st, _ = doReq(t, ts.URL, "GET", "/api/users/ann@example.com", "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for deleted user, got %d", st)
		}
	}
}

func TestHTTP_HealthAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected /health: %d %q", st, string(body))
	}

	_, _ = doReq(t, ts.URL, "GET", "/api/dogs/Ghost", "", nil)

	st, body = doReq(t, ts.URL, "GET", "/metrics", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 /metrics, got %d", st)
	}
	if !strings.Contains(string(body), "dogs_api_http_requests_total") {
		t.Fatalf("metrics output missing request counter")
	}

	res := rawReq(t, ts.URL, "GET", "/health", "", nil)
	if res.header.Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header")
	}
}

func TestHTTP_NameWithPercentIsNotDecodedTwice(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts.URL, "johndoe", testPassword)

	for _, name := range []string{"aA", "a%41"} {
		st, body := doReq(t, ts.URL, "POST", "/api/dogs", token, map[string]any{"name": name, "is_adopted": false})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating %q, got %d body=%s", name, st, string(body))
		}
	}

	// "a%2541" es el nombre "a%41" escapado una vez.
	st, body := doReq(t, ts.URL, "GET", "/api/dogs/a%2541", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get a%%41, got %d body=%s", st, string(body))
	}
	var got dogBody
	decode(t, body, &got)
	if got.Name != "a%41" {
		t.Fatalf("expected dog a%%41, got %q", got.Name)
	}

	st, body = doReq(t, ts.URL, "DELETE", "/api/dogs/a%2541", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 delete a%%41, got %d body=%s", st, string(body))
	}
	decode(t, body, &got)
	if got.Name != "a%41" {
		t.Fatalf("deleted the wrong dog: %q", got.Name)
	}

	st, _ = doReq(t, ts.URL, "GET", "/api/dogs/aA", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected aA to survive, got %d", st)
	}

	st, body = doReq(t, ts.URL, "GET", "/api/dogs", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list, got %d", st)
	}
	var list []dogBody
	decode(t, body, &list)
	if len(list) != 1 || list[0].Name != "aA" {
		t.Fatalf("expected only aA left, got %+v", list)
	}
}

func TestHTTP_UnmatchedRoutesUseDetail(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts.URL, "johndoe", testPassword)

	for _, tc := range []struct {
		method, path, token string
		wantStatus          int
		wantDetail          string
	}{
		{"GET", "/api/nope", "", http.StatusNotFound, "Not Found"},
		{"DELETE", "/api/dogs", "", http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"POST", "/api/users/ann@example.com/dogs", token, http.StatusNotFound, "Not Found"},
	} {
		res := rawReq(t, ts.URL, tc.method, tc.path, tc.token, nil)
		if res.status != tc.wantStatus {
			t.Fatalf("%s %s: expected %d, got %d body=%s", tc.method, tc.path, tc.wantStatus, res.status, string(res.body))
		}
		if ct := res.header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Fatalf("%s %s: expected JSON content type, got %q", tc.method, tc.path, ct)
		}
		assertDetail(t, res.body, tc.wantDetail)
	}
}

// ---- helpers ----

type response struct {
	status int
	header http.Header
	body   []byte
}

func login(t *testing.T, baseURL, username, password string) string {
	t.Helper()

	res := postForm(t, baseURL, username, password)
	if res.status != http.StatusOK {
		t.Fatalf("expected 200 login, got %d body=%s", res.status, string(res.body))
	}
	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decode(t, res.body, &out)
	if out.AccessToken == "" || out.TokenType != "bearer" {
		t.Fatalf("unexpected token response: %s", string(res.body))
	}
	return out.AccessToken
}

func postForm(t *testing.T, baseURL, username, password string) response {
	t.Helper()

	form := url.Values{"username": {username}, "password": {password}}
	res, err := http.PostForm(baseURL+"/token", form)
	if err != nil {
		t.Fatalf("post form: %v", err)
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	return response{status: res.StatusCode, header: res.Header, body: body}
}

func doReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()
	res := rawReq(t, baseURL, method, path, token, body)
	return res.status, res.body
}

func rawReq(t *testing.T, baseURL, method, path, token string, body any) response {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return response{status: res.StatusCode, header: res.Header, body: respBody}
}

func decode(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(body))
	}
}

func assertDetail(t *testing.T, body []byte, want string) {
	t.Helper()
	var e struct {
		Detail string `json:"detail"`
	}
	decode(t, body, &e)
	if e.Detail != want {
		t.Fatalf("expected detail %q, got %q", want, e.Detail)
	}
}
