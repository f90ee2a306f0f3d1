package controllers

import (
	"context"
	"sync"

	"mememage-web/models"
)

type fakeAPI struct {
	mu sync.Mutex

	calls []string

	auth    *models.AuthResponse
	authErr error

	public    []models.Meme
	publicErr error
	own       []models.Meme
	ownErr    error

	created   []models.CreateMemeRequest
	createErr error

	meme    *models.Meme
	getErr  error
	likeErr error

	lastToken string
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeAPI) count(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeAPI) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeAPI) Signup(_ context.Context, _ models.SignupRequest) (*models.AuthResponse, error) {
	f.record("signup")
	return f.auth, f.authErr
}

func (f *fakeAPI) Login(_ context.Context, _ models.LoginRequest) (*models.AuthResponse, error) {
	f.record("login")
	return f.auth, f.authErr
}

func (f *fakeAPI) ListMemes(_ context.Context, _, _ int) ([]models.Meme, error) {
	f.record("list")
	return f.public, f.publicErr
}

func (f *fakeAPI) MyMemes(_ context.Context, token string) ([]models.Meme, error) {
	f.record("mine")
	f.mu.Lock()
	f.lastToken = token
	f.mu.Unlock()
	return f.own, f.ownErr
}

func (f *fakeAPI) CreateMeme(_ context.Context, token string, req models.CreateMemeRequest) (*models.Meme, error) {
	f.record("create")
	f.mu.Lock()
	f.lastToken = token
	f.created = append(f.created, req)
	f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Meme{ID: "new", Title: req.Title}, nil
}

func (f *fakeAPI) GetMeme(_ context.Context, _ string) (*models.Meme, error) {
	f.record("get")
	return f.meme, f.getErr
}

func (f *fakeAPI) LikeMeme(_ context.Context, _ string) error {
	f.record("like")
	return f.likeErr
}
