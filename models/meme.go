package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// User mirrors the server's user record. Only Username is read by the UI;
// the raw record is kept so a persisted user round-trips unchanged.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`

	raw json.RawMessage
}

func (u *User) UnmarshalJSON(b []byte) error {
	if string(bytes.TrimSpace(b)) == "null" {
		*u = User{}
		return nil
	}
	type plain User
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*u = User(p)
	u.raw = append(json.RawMessage(nil), b...)
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	if len(u.raw) > 0 {
		return u.raw, nil
	}
	type plain User
	return json.Marshal(plain(u))
}

type Meme struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id,omitempty"`
	Username     string     `json:"username,omitempty"`
	Title        string     `json:"title"`
	ImageURL     string     `json:"image_url"`
	TopText      *string    `json:"top_text,omitempty"`
	BottomText   *string    `json:"bottom_text,omitempty"`
	TemplateName *string    `json:"template_name,omitempty"`
	Views        int        `json:"views"`
	Likes        int        `json:"likes"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreateMemeRequest keeps nil captions as JSON null: the server treats null
// as "no caption" and "" as an empty caption.
type CreateMemeRequest struct {
	Title        string  `json:"title"`
	TopText      *string `json:"top_text"`
	BottomText   *string `json:"bottom_text"`
	TemplateName *string `json:"template_name"`
}

// Envelope is the wrapper every API response uses.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// HasData reports whether the envelope carried a non-null data field.
func (e *Envelope) HasData() bool {
	return len(e.Data) > 0 && string(e.Data) != "null"
}
