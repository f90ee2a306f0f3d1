package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"mememage-web/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api/", 2*time.Second)
}

func writeEnvelope(w http.ResponseWriter, status int, success bool, data any, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]any{"success": success}
	if data != nil {
		body["data"] = data
	}
	if msg != "" {
		body["error"] = msg
	}
	json.NewEncoder(w).Encode(body)
}

func TestLoginSendsCredentials(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("login must not send Authorization, got %q", got)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["username"] != "alice" || body["password"] != "hunter22" {
			t.Errorf("body = %v", body)
		}
		writeEnvelope(w, http.StatusOK, true, map[string]any{
			"token": "tok",
			"user":  map[string]any{"id": "u1", "username": "alice", "email": "a@example.com"},
		}, "")
	})

	res, err := c.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token != "tok" || res.User.Username != "alice" || res.User.ID != "u1" {
		t.Fatalf("Login result = %+v", res)
	}
}

func TestSignupConflictIsAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/signup" {
			t.Errorf("path = %s", r.URL.Path)
		}
		writeEnvelope(w, http.StatusConflict, false, nil, "Username already exists")
	})

	_, err := c.Signup(context.Background(), models.SignupRequest{Username: "a", Email: "e", Password: "p"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want *APIError", err)
	}
	if apiErr.Message != "Username already exists" || apiErr.Status != http.StatusConflict {
		t.Fatalf("APIError = %+v", apiErr)
	}
	if errors.Is(err, ErrTransport) {
		t.Fatal("API error must not be classified as transport error")
	}
}

func TestListMemesQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/memes" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "20" {
			t.Errorf("limit = %q", got)
		}
		if r.URL.Query().Has("offset") {
			t.Errorf("offset should be omitted when zero")
		}
		writeEnvelope(w, http.StatusOK, true, []map[string]any{
			{"id": "m1", "title": "one", "image_url": "/uploads/memes/m1.jpg", "views": 3, "likes": 1, "top_text": nil},
		}, "")
	})

	memes, err := c.ListMemes(context.Background(), 20, 0)
	if err != nil {
		t.Fatalf("ListMemes: %v", err)
	}
	if len(memes) != 1 || memes[0].Title != "one" || memes[0].Views != 3 || memes[0].TopText != nil {
		t.Fatalf("memes = %+v", memes)
	}
}

func TestMyMemesSendsBearer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/memes/user/my-memes" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q", got)
		}
		writeEnvelope(w, http.StatusOK, true, []any{}, "")
	})

	memes, err := c.MyMemes(context.Background(), "secret")
	if err != nil {
		t.Fatalf("MyMemes: %v", err)
	}
	if len(memes) != 0 {
		t.Fatalf("memes = %v", memes)
	}
}

func TestCreateMemeSendsNullCaptions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/memes" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Errorf("decode body: %v", err)
			return
		}
		for _, k := range []string{"top_text", "bottom_text", "template_name"} {
			v, ok := body[k]
			if !ok {
				t.Errorf("%s missing from body %s", k, raw)
			} else if v != nil {
				t.Errorf("%s = %v, want null", k, v)
			}
		}
		writeEnvelope(w, http.StatusCreated, true, map[string]any{"id": "m9", "title": "t", "image_url": "/x"}, "")
	})

	m, err := c.CreateMeme(context.Background(), "tok", models.CreateMemeRequest{Title: "t"})
	if err != nil {
		t.Fatalf("CreateMeme: %v", err)
	}
	if m.ID != "m9" {
		t.Fatalf("meme = %+v", m)
	}
}

func TestCreateMemeNeedsOnlySuccessFlag(t *testing.T) {
	tests := []struct {
		name string
		data any
	}{
		{"no data", nil},
		{"unexpected data", map[string]any{"id": "x", "views": "n/a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(w, http.StatusCreated, true, tt.data, "")
			})

			m, err := c.CreateMeme(context.Background(), "tok", models.CreateMemeRequest{Title: "t"})
			if err != nil {
				t.Fatalf("CreateMeme: %v", err)
			}
			if m != nil {
				t.Fatalf("meme = %+v, want nil", m)
			}
		})
	}
}

func TestCreateMemeRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, false, nil, "Title is required")
	})

	_, err := c.CreateMeme(context.Background(), "tok", models.CreateMemeRequest{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "Title is required" {
		t.Fatalf("got %v, want *APIError", err)
	}
}

func TestLikeAndGet(t *testing.T) {
	var (
		mu    sync.Mutex
		paths []string
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.Method+" "+r.URL.Path)
		mu.Unlock()
		switch r.Method {
		case http.MethodPost:
			writeEnvelope(w, http.StatusOK, true, "Meme liked", "")
		default:
			writeEnvelope(w, http.StatusOK, true, map[string]any{"id": "abc", "title": "t", "views": 7, "likes": 2}, "")
		}
	})

	if err := c.LikeMeme(context.Background(), "abc"); err != nil {
		t.Fatalf("LikeMeme: %v", err)
	}
	m, err := c.GetMeme(context.Background(), "abc")
	if err != nil {
		t.Fatalf("GetMeme: %v", err)
	}
	if m.Views != 7 || m.Likes != 2 {
		t.Fatalf("meme = %+v", m)
	}
	want := []string{"POST /api/memes/abc/like", "GET /api/memes/abc"}
	mu.Lock()
	defer mu.Unlock()
	if strings.Join(paths, ",") != strings.Join(want, ",") {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
}

func TestSuccessWithoutDataIsAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, nil, "")
	})

	_, err := c.ListMemes(context.Background(), 20, 0)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want *APIError", err)
	}
}

func TestNonJSONBodyIsTransportError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway exploded", http.StatusBadGateway)
	})

	_, err := c.GetMeme(context.Background(), "abc")
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("got %v, want ErrTransport", err)
	}
}

func TestUnreachableServerIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url, time.Second)
	err := c.LikeMeme(context.Background(), "abc")
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("got %v, want ErrTransport", err)
	}
}

func TestResolveURL(t *testing.T) {
	c := New("https://api.example.com:8443/api", time.Second)

	cases := map[string]string{
		"/uploads/memes/1.jpg":      "https://api.example.com:8443/uploads/memes/1.jpg",
		"https://cdn.example/x.png": "https://cdn.example/x.png",
		"data:image/png;base64,AA":  "data:image/png;base64,AA",
		"//cdn.example/y.png":       "//cdn.example/y.png",
		"":                          "",
	}
	for in, want := range cases {
		if got := c.ResolveURL(in); got != want {
			t.Errorf("ResolveURL(%q) = %q, want %q", in, got, want)
		}
	}
}
