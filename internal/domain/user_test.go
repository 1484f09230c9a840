package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserSnapshot(t *testing.T) {
	u := &User{ID: "u1", Name: "Alice", Avatar: "a.png", Email: "alice@example.com"}

	s := u.Snapshot()

	assert.Equal(t, UserSnapshot{ID: "u1", Name: "Alice", Avatar: "a.png"}, s)
}
