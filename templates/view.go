package templates

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"mememage-web/controllers"
	"mememage-web/models"

	"github.com/a-h/templ"
)

//go:generate go tool templ generate

const (
	HomeContainerID    = "memesContainer"
	MyMemesContainerID = "myMemesContainer"
)

// View is everything a full page render needs.
type View struct {
	Snapshot controllers.Snapshot
	Resolve  func(string) string
}

func page(v View) templ.Component {
	s := v.Snapshot
	switch s.Page {
	case models.PageLogin:
		return loginPage()
	case models.PageSignup:
		return signupPage()
	case models.PageCreate:
		return createPage(s.Draft, s.Templates, s.SelectedTemplate)
	case models.PageMyMemes:
		return feedPage("My Memes", MyMemesContainerID, NewFeedView(s.Mine, v.Resolve))
	default:
		return feedPage("Trending Memes", HomeContainerID, NewFeedView(s.Home, v.Resolve))
	}
}

type Card struct {
	ID          string
	Title       string
	ImageURL    string
	FallbackURL string
	Views       int
	Likes       int
}

// FeedView is what a feed container shows: cards, or a placeholder text when
// there are none.
type FeedView struct {
	Cards       []Card
	Placeholder string
}

// NewFeedView maps a feed state to its view model. resolve turns image
// references into URLs the browser can load; nil keeps them as they are.
func NewFeedView(state models.FeedState, resolve func(string) string) FeedView {
	if state.Kind != models.FeedReady {
		return FeedView{Placeholder: state.Text}
	}
	if len(state.Memes) == 0 {
		return FeedView{Placeholder: models.TextNoMemes}
	}

	cards := make([]Card, 0, len(state.Memes))
	for _, m := range state.Memes {
		img := m.ImageURL
		if resolve != nil {
			img = resolve(img)
		}
		cards = append(cards, Card{
			ID:          m.ID,
			Title:       m.Title,
			ImageURL:    img,
			FallbackURL: FallbackImage(m.Title),
			Views:       m.Views,
			Likes:       m.Likes,
		})
	}
	return FeedView{Cards: cards}
}

// FallbackImage returns a 300x250 SVG data URI showing title.
func FallbackImage(title string) string {
	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="300" height="250">`+
		`<rect fill="#334155" width="300" height="250"/>`+
		`<text fill="#f1f5f9" font-family="Arial" font-size="20" x="50%%" y="50%%" text-anchor="middle" dy=".3em">%s</text>`+
		`</svg>`, html.EscapeString(title))
	return "data:image/svg+xml," + url.PathEscape(svg)
}

// FeedFragment is the out-of-band update pushed to a client's sockets when
// one of its feeds changes.
func FeedFragment(page models.Page, state models.FeedState, resolve func(string) string) templ.Component {
	id := HomeContainerID
	if page == models.PageMyMemes {
		id = MyMemesContainerID
	}
	return Feed(id, NewFeedView(state, resolve), true)
}

// templateLabel turns "distracted-boyfriend" into "Distracted Boyfriend".
func templateLabel(name string) string {
	words := strings.Split(name, "-")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}
