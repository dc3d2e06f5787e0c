package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_RegisterUnregister(t *testing.T) {
	s := NewSessions()
	ctx := context.Background()

	id1 := s.Register("/meditations/")
	id2 := s.Register("/meditations/today")
	assert.NotEqual(t, id1, id2)
	assert.Len(t, s.List(ctx), 2)

	s.Unregister(id1)
	clients := s.List(ctx)
	require.Len(t, clients, 1)
	assert.Equal(t, "/meditations/today", clients[0].URL())

	// unknown id is ignored
	s.Unregister("session-999")
	assert.Len(t, s.List(ctx), 1)
}

func TestSessions_Focus(t *testing.T) {
	s := NewSessions()
	ctx := context.Background()

	s.Register("/meditations/")
	clients := s.List(ctx)
	require.Len(t, clients, 1)

	sess, ok := clients[0].(*session)
	require.True(t, ok)
	assert.False(t, sess.Focused())

	require.NoError(t, clients[0].Focus(ctx))
	assert.True(t, sess.Focused())
}

func TestSessions_OpenWindow(t *testing.T) {
	s := NewSessions()
	ctx := context.Background()

	require.NoError(t, s.OpenWindow(ctx, "/meditations/"))
	require.NoError(t, s.OpenWindow(ctx, "/meditations/today"))

	assert.Equal(t, []string{"/meditations/", "/meditations/today"}, s.Opened())
}

func TestSessions_Claim(t *testing.T) {
	s := NewSessions()
	ctx := context.Background()

	assert.Empty(t, s.Controlled(), "nothing claimed before activation")

	s.Register("/meditations/")
	s.Claim(ctx, "meditations-v2")
	assert.Equal(t, "meditations-v2", s.Controlled())
}
