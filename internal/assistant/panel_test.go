package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trtech123/tos/internal/chatlink"
)

type recordingNavigator struct {
	panel   *Panel
	visited []string
	openAt  []bool
}

func (n *recordingNavigator) Navigate(_ context.Context, url string) error {
	n.visited = append(n.visited, url)
	n.openAt = append(n.openAt, n.panel.IsOpen())
	return nil
}

func TestPanel_WidgetClosesBeforeNavigating(t *testing.T) {
	nav := &recordingNavigator{}
	panel := NewPanel(nav, true)
	nav.panel = panel

	assert.False(t, panel.IsOpen())
	panel.Open()
	require.True(t, panel.IsOpen())

	links := chatlink.Links("[להזמנה](/checkout?price=890)")
	require.Len(t, links, 1)
	require.NoError(t, panel.Follow(context.Background(), links[0]))

	assert.Equal(t, []string{"/checkout?price=890"}, nav.visited)
	assert.Equal(t, []bool{false}, nav.openAt)
	assert.False(t, panel.IsOpen())
}

func TestPanel_FullScreenStaysOpen(t *testing.T) {
	nav := &recordingNavigator{}
	panel := NewPanel(nav, false)
	nav.panel = panel

	panel.Toggle()
	panel.Close()
	assert.True(t, panel.IsOpen())

	require.NoError(t, panel.Follow(context.Background(), chatlink.Segment{Kind: chatlink.KindLink, URL: "/checkout"}))
	assert.Equal(t, []bool{true}, nav.openAt)
}

func TestPanel_FollowTextIsNoop(t *testing.T) {
	nav := &recordingNavigator{}
	panel := NewPanel(nav, true)
	nav.panel = panel

	require.NoError(t, panel.Follow(context.Background(), chatlink.Segment{Kind: chatlink.KindText, Text: "hi"}))
	assert.Empty(t, nav.visited)
}
