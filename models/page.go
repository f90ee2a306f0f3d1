package models

type Page string

const (
	PageHome    Page = "home"
	PageLogin   Page = "login"
	PageSignup  Page = "signup"
	PageCreate  Page = "create"
	PageMyMemes Page = "myMemes"
)

var Pages = []Page{PageHome, PageLogin, PageSignup, PageCreate, PageMyMemes}

func ParsePage(name string) (Page, bool) {
	for _, p := range Pages {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}

type FeedKind int

const (
	FeedLoading FeedKind = iota
	FeedReady
	FeedEmpty
	FeedError
)

// FeedState is the outcome of the latest load of one feed. Text is set for
// every kind except FeedReady.
type FeedState struct {
	Kind  FeedKind
	Text  string
	Memes []Meme
}

const (
	TextLoadingMemes    = "Loading memes..."
	TextLoadingOwnMemes = "Loading your memes..."
	TextNoMemes         = "No memes found"
	TextNoOwnMemes      = "You haven't created any memes yet"
	TextLoadError       = "Error loading memes"
)

func (k FeedKind) String() string {
	switch k {
	case FeedLoading:
		return "loading"
	case FeedReady:
		return "ready"
	case FeedEmpty:
		return "empty"
	case FeedError:
		return "error"
	}
	return "unknown"
}
