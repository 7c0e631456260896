package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevocations(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	r := newRevocations()
	r.now = func() time.Time { return now }

	r.revoke("old", now.Add(time.Minute))
	r.revoke("new", now.Add(time.Hour))
	assert.True(t, r.revoked("old"))
	assert.True(t, r.revoked("new"))
	assert.False(t, r.revoked("other"))

	now = now.Add(2 * time.Minute)
	assert.False(t, r.revoked("old"))
	assert.True(t, r.revoked("new"))

	r.revoke("later", now.Add(time.Minute))
	now = now.Add(2 * time.Hour)
	r.revoke("latest", now.Add(time.Minute))
	assert.Equal(t, 1, r.len())
}
