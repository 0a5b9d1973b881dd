package httpx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
)

func TestGetUserSessionFromContext(t *testing.T) {
	// No session
	if s, ok := GetUserSessionFromContext(context.Background()); assert.False(t, ok) {
		assert.Nil(t, s)
	}

	// With session
	sess := &domainauth.Session{ID: "abc", Role: domainauth.RoleUser}
	ctx := SetSessionInContext(context.Background(), sess)
	s, ok := GetUserSessionFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, sess, s)
	assert.Equal(t, sess, GetSessionFromContext(ctx))
}

func TestSetSessionInContext_NilLeavesContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, SetSessionInContext(ctx, nil))
	assert.Nil(t, GetSessionFromContext(ctx))
}

func TestRequestID(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))

	info := &requestInfo{ID: "req-1"}
	ctx := withRequestInfo(context.Background(), info)
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Same(t, info, requestInfoFrom(ctx))
}
