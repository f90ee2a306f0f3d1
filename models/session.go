package models

// Session is the client's authentication state. User and Token are either
// both set or both empty.
type Session struct {
	User  *User
	Token string
}

func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// Draft is the meme creation form together with its live preview.
type Draft struct {
	Title         string
	TopText       string
	BottomText    string
	PreviewTop    string
	PreviewBottom string
}

// Notice is a message surfaced to the user on the next render.
type Notice struct {
	Message string
	Error   bool
}
