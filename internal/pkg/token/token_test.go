package token

import (
	"testing"
	"time"

	"artist-portfolio/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	raw, claims, err := iss.Issue(users.User{ID: 3, Email: "a@example.com", Role: users.RoleAdmin})
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	parsed, err := iss.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, uint(3), parsed.UserID)
	assert.Equal(t, "a@example.com", parsed.Email)
	assert.Equal(t, users.RoleAdmin, parsed.Role)
	assert.Equal(t, claims.ID, parsed.ID)
}

func TestParseRejectsOtherSecret(t *testing.T) {
	raw, _, err := NewIssuer("one", time.Hour).Issue(users.User{ID: 1})
	require.NoError(t, err)
	_, err = NewIssuer("two", time.Hour).Parse(raw)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	iss := NewIssuer("secret", time.Minute)
	now := time.Now()
	iss.now = func() time.Time { return now }
	raw, _, err := iss.Issue(users.User{ID: 1})
	require.NoError(t, err)

	iss.now = func() time.Time { return now.Add(time.Hour) }
	_, err = iss.Parse(raw)
	assert.Error(t, err)
}

func TestMissingSecret(t *testing.T) {
	_, _, err := NewIssuer("", 0).Issue(users.User{ID: 1})
	assert.Error(t, err)
}
