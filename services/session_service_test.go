package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	s := NewSessionService()

	sess := s.Create("#QPYL8YCV", "secret")
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, "#QPYL8YCV", sess.ClanTag)
	assert.False(t, sess.Loaded)

	assert.Same(t, sess, s.Get(sess.ID))

	s.Delete(sess.ID)
	assert.Nil(t, s.Get(sess.ID))

	// deleting again is a no-op
	s.Delete(sess.ID)
}

func TestSessionsAreIndependent(t *testing.T) {
	s := NewSessionService()

	a := s.Create("#A", "tok-a")
	b := s.Create("#B", "tok-b")

	require.NotEqual(t, a.ID, b.ID)
	s.Delete(a.ID)
	assert.Nil(t, s.Get(a.ID))
	assert.Same(t, b, s.Get(b.ID))
}
