package dashboard

import (
	"errors"
	"slices"
	"strings"

	"github.com/maheshrc27/adspark/internal/transfer"
)

type CreateMode string

const (
	ModeAI  CreateMode = "ai"
	ModeFix CreateMode = "fix"
)

const (
	MaxTopicRunes   = 200
	MaxContentRunes = 1000

	DefaultTheme = "blue"
)

var (
	Themes    = []string{"purple", "blue", "orange", "green", "auto"}
	Platforms = []string{"linkedin", "x"}
)

var (
	// ErrEmptyTopic means there is nothing to submit. The form stays open without a message.
	ErrEmptyTopic  = errors.New("topic is empty")
	ErrNoPlatforms = errors.New("Please select at least one social platform.")
)

// CreateForm holds the "new post" dialog. Topic is used in ai mode, Title and Content in
// fix mode.
type CreateForm struct {
	Mode          CreateMode
	Topic         string
	Title         string
	Content       string
	Theme         string
	GenerateImage bool
	TextOnlyImage bool
	Platforms     []string
}

func NewCreateForm() CreateForm {
	return CreateForm{
		Mode:          ModeAI,
		Theme:         DefaultTheme,
		GenerateImage: true,
		Platforms:     slices.Clone(Platforms),
	}
}

// TogglePlatform adds or removes a platform, ignoring ids that are not offered.
func (f *CreateForm) TogglePlatform(id string) {
	if !slices.Contains(Platforms, id) {
		return
	}
	if i := slices.Index(f.Platforms, id); i >= 0 {
		f.Platforms = slices.Delete(f.Platforms, i, i+1)
		return
	}
	f.Platforms = append(f.Platforms, id)
}

// Request validates the form and builds the webhook body.
func (f CreateForm) Request() (transfer.CreatePostRequest, error) {
	text := f.Topic
	limit := MaxTopicRunes
	if f.Mode == ModeFix {
		text, limit = f.Content, MaxContentRunes
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return transfer.CreatePostRequest{}, ErrEmptyTopic
	}
	if len(f.Platforms) == 0 {
		return transfer.CreatePostRequest{}, ErrNoPlatforms
	}

	theme := f.Theme
	if !slices.Contains(Themes, theme) {
		theme = DefaultTheme
	}

	req := transfer.CreatePostRequest{
		PostTopic:     truncateRunes(text, limit),
		GenerateImage: f.GenerateImage,
		TextOnlyImage: f.GenerateImage && f.TextOnlyImage,
		Theme:         theme,
		Platform:      slices.Clone(f.Platforms),
		AIGenerated:   f.Mode != ModeFix,
	}
	if f.Mode == ModeFix {
		title := strings.TrimSpace(f.Title)
		req.Title = &title
	}
	return req, nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
