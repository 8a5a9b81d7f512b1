package dashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateForm_Defaults(t *testing.T) {
	f := NewCreateForm()

	assert.Equal(t, ModeAI, f.Mode)
	assert.Equal(t, "blue", f.Theme)
	assert.True(t, f.GenerateImage)
	assert.False(t, f.TextOnlyImage)
	assert.Equal(t, []string{"linkedin", "x"}, f.Platforms)
}

func TestCreateForm_TogglePlatform(t *testing.T) {
	f := NewCreateForm()

	f.TogglePlatform("x")
	assert.Equal(t, []string{"linkedin"}, f.Platforms)
	f.TogglePlatform("instagram")
	assert.Equal(t, []string{"linkedin"}, f.Platforms)
	f.TogglePlatform("x")
	assert.Equal(t, []string{"linkedin", "x"}, f.Platforms)
	assert.Equal(t, []string{"linkedin", "x"}, Platforms)
}

func TestCreateForm_Request_AI(t *testing.T) {
	f := NewCreateForm()
	f.Topic = "  " + strings.Repeat("é", 250) + "  "
	f.TextOnlyImage = true

	req, err := f.Request()
	require.NoError(t, err)

	assert.Nil(t, req.Title)
	assert.Equal(t, strings.Repeat("é", 200), req.PostTopic)
	assert.True(t, req.GenerateImage)
	assert.True(t, req.TextOnlyImage)
	assert.Equal(t, "blue", req.Theme)
	assert.True(t, req.AIGenerated)
}

func TestCreateForm_Request_Fix(t *testing.T) {
	f := NewCreateForm()
	f.Mode = ModeFix
	f.Title = " Launch "
	f.Content = strings.Repeat("a", 1200)
	f.Theme = "green"
	f.GenerateImage = false
	f.TextOnlyImage = true
	f.Platforms = []string{"x"}

	req, err := f.Request()
	require.NoError(t, err)

	require.NotNil(t, req.Title)
	assert.Equal(t, "Launch", *req.Title)
	assert.Len(t, req.PostTopic, 1000)
	assert.False(t, req.TextOnlyImage)
	assert.Equal(t, "green", req.Theme)
	assert.Equal(t, []string{"x"}, req.Platform)
	assert.False(t, req.AIGenerated)
}

func TestCreateForm_Request_Validation(t *testing.T) {
	f := NewCreateForm()
	_, err := f.Request()
	assert.ErrorIs(t, err, ErrEmptyTopic)

	f.Mode = ModeFix
	f.Topic = "ignored in fix mode"
	_, err = f.Request()
	assert.ErrorIs(t, err, ErrEmptyTopic)

	f.Content = "body"
	f.Platforms = nil
	_, err = f.Request()
	assert.ErrorIs(t, err, ErrNoPlatforms)
}

func TestCreateForm_Request_UnknownThemeFallsBack(t *testing.T) {
	f := NewCreateForm()
	f.Topic = "coffee"
	f.Theme = "neon"

	req, err := f.Request()
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme, req.Theme)
}
