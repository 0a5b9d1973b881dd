package auth

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "user", want: RoleUser},
		{in: " ProdEng ", want: RoleProdEng},
		{in: "ADMIN", want: RoleAdmin},
		{in: "guest", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRole_Label(t *testing.T) {
	assert.Equal(t, "Product Engineer", RoleProdEng.Label())
	assert.Equal(t, "User", RoleUser.Label())
	assert.Equal(t, "Admin", RoleAdmin.Label())
	assert.Equal(t, "other", Role("other").Label())
}

func TestSession_IsExpired(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, Session{}.IsExpired(now), "zero expiry never expires")
	assert.False(t, Session{ExpiresAt: now.Add(time.Minute)}.IsExpired(now))
	assert.True(t, Session{ExpiresAt: now}.IsExpired(now))
	assert.True(t, Session{ExpiresAt: now.Add(-time.Second)}.IsExpired(now))
}

func TestSession_JSONRoundTrip(t *testing.T) {
	s := Session{
		ID:       "abc",
		Username: "alice",
		Role:     RoleProdEng,
		UpstreamCookies: []UpstreamCookie{
			{Name: "session", Value: "signed", Path: "/"},
		},
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		ExpiresAt: time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC),
	}
	b, err := json.Marshal(s)
	require.NoError(t, err)

	var got Session
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, s.Username, got.Username)
	assert.Equal(t, s.Role, got.Role)
	assert.Equal(t, s.UpstreamCookies[0].Value, got.UpstreamCookies[0].Value)
	assert.True(t, s.ExpiresAt.Equal(got.ExpiresAt))
}
