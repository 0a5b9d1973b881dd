package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shoetrack/shoetrack-ui/internal/adapters/memory"
	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	apperrors "github.com/shoetrack/shoetrack-ui/internal/errors"
	"github.com/shoetrack/shoetrack-ui/internal/mocks"
	"github.com/shoetrack/shoetrack-ui/internal/ports"
	"github.com/shoetrack/shoetrack-ui/internal/testutil"
)

var upstreamCookies = []domainauth.UpstreamCookie{{Name: "session", Value: "tok", Path: "/"}}

func newAuthService(t *testing.T) (*mocks.MockAuthGateway, *memory.SessionStore, *AuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockAuthGateway(ctrl)
	store := memory.NewSessionStore(testutil.TestTime)
	svc := NewAuthService(AuthServiceOptions{
		Gateway:  gw,
		Sessions: store,
		Config:   AuthConfig{TTL: time.Hour, Now: testutil.TestTime},
	})
	return gw, store, svc
}

func TestAuthService_LoginSuccess(t *testing.T) {
	gw, store, svc := newAuthService(t)
	ctx := context.Background()

	gw.EXPECT().Login(ctx, "maria", "pw").Return(domainauth.LoginResult{
		Username: "maria",
		Role:     domainauth.RoleProdEng,
		Cookies:  upstreamCookies,
	}, nil)

	out, err := svc.Login(ctx, "  maria ", "pw")
	require.NoError(t, err)
	require.NotNil(t, out.Session)
	assert.False(t, out.ResetRequired)
	assert.Equal(t, domainauth.RoleProdEng, out.Session.Role)
	assert.Equal(t, testutil.TestTime().Add(time.Hour), out.Session.ExpiresAt)

	stored, err := store.Get(ctx, out.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, upstreamCookies, stored.UpstreamCookies)
}

func TestAuthService_LoginResetRequired(t *testing.T) {
	gw, store, svc := newAuthService(t)
	ctx := context.Background()

	gw.EXPECT().Login(ctx, "maria", "old").Return(domainauth.LoginResult{
		ResetRequired: true,
		Message:       "Your password has expired. Please reset it.",
	}, nil)

	out, err := svc.Login(ctx, "maria", "old")
	require.NoError(t, err)
	assert.True(t, out.ResetRequired)
	assert.Nil(t, out.Session)
	assert.Equal(t, "maria", out.Username)
	assert.Equal(t, "Your password has expired. Please reset it.", out.Message)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAuthService_LoginFailureCreatesNoSession(t *testing.T) {
	gw, store, svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "pw")
	require.True(t, apperrors.IsValidation(err))

	gw.EXPECT().Login(ctx, "maria", "bad").Return(domainauth.LoginResult{}, apperrors.Validation("Invalid username or password"))
	_, err = svc.Login(ctx, "maria", "bad")
	require.Error(t, err)
	assert.Equal(t, "Invalid username or password", apperrors.GetMessage(err))

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func loggedIn(t *testing.T, gw *mocks.MockAuthGateway, svc *AuthService) domainauth.Session {
	t.Helper()
	gw.EXPECT().Login(gomock.Any(), "maria", "pw").Return(domainauth.LoginResult{
		Username: "maria", Role: domainauth.RoleUser, Cookies: upstreamCookies,
	}, nil)
	out, err := svc.Login(context.Background(), "maria", "pw")
	require.NoError(t, err)
	return *out.Session
}

func TestAuthService_LogoutOnlyOnConfirmation(t *testing.T) {
	gw, _, svc := newAuthService(t)
	ctx := context.Background()
	sess := loggedIn(t, gw, svc)

	var ended []string
	svc.OnSessionEnd(func(id string) { ended = append(ended, id) })

	gw.EXPECT().Logout(ctx, sess.Credentials()).Return("", apperrors.Unavailable(apperrors.GenericFailureMessage))
	_, err := svc.Logout(ctx, sess)
	require.Error(t, err)
	_, err = svc.GetSession(ctx, sess.ID)
	require.NoError(t, err, "session must survive a failed logout")
	assert.Empty(t, ended)

	gw.EXPECT().Logout(ctx, sess.Credentials()).Return("Logged out successfully.", nil)
	msg, err := svc.Logout(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, "Logged out successfully.", msg)
	_, err = svc.GetSession(ctx, sess.ID)
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
	assert.Equal(t, []string{sess.ID}, ended)
}

func TestAuthService_LogoutUpstreamAlreadyGone(t *testing.T) {
	gw, _, svc := newAuthService(t)
	ctx := context.Background()
	sess := loggedIn(t, gw, svc)

	gw.EXPECT().Logout(ctx, gomock.Any()).Return("", apperrors.Unauthorized("Authentication required."))
	msg, err := svc.Logout(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, MsgLoggedOut, msg)

	_, err = svc.GetSession(ctx, sess.ID)
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestAuthService_GetSessionExpiry(t *testing.T) {
	store := memory.NewSessionStore(testutil.TestTime)
	now := testutil.TestTime()
	svc := NewAuthService(AuthServiceOptions{
		Gateway:  mocks.NewMockAuthGateway(gomock.NewController(t)),
		Sessions: store,
		Config:   AuthConfig{Now: func() time.Time { return now }},
	})
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "s1", ExpiresAt: now.Add(time.Minute)}))
	_, err := svc.GetSession(ctx, "s1")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = svc.GetSession(ctx, "s1")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)

	_, err = svc.GetSession(ctx, "")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestAuthService_Expire(t *testing.T) {
	gw, _, svc := newAuthService(t)
	ctx := context.Background()
	sess := loggedIn(t, gw, svc)

	called := false
	svc.OnSessionEnd(func(string) { called = true })
	require.NoError(t, svc.Expire(ctx, sess.ID))
	assert.True(t, called)
	_, err := svc.GetSession(ctx, sess.ID)
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestAuthService_ResetPassword(t *testing.T) {
	gw, _, svc := newAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     model.ResetPasswordRequest
		wantMsg string
	}{
		{
			name:    "missing fields",
			req:     model.ResetPasswordRequest{Username: "maria"},
			wantMsg: MsgResetFieldsRequired,
		},
		{
			name:    "confirmation mismatch",
			req:     model.ResetPasswordRequest{Username: "maria", CurrentPassword: "a", NewPassword: "b", ConfirmPassword: "c"},
			wantMsg: MsgPasswordsDontMatch,
		},
		{
			name:    "unchanged password",
			req:     model.ResetPasswordRequest{Username: "maria", CurrentPassword: "a", NewPassword: "a", ConfirmPassword: "a"},
			wantMsg: MsgPasswordMustChange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ResetPassword(ctx, tt.req)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tt.wantMsg, apperrors.GetMessage(err))
		})
	}

	req := model.ResetPasswordRequest{Username: "maria", CurrentPassword: "a", NewPassword: "b", ConfirmPassword: "b"}
	gw.EXPECT().ResetPassword(ctx, req).Return("Password updated successfully.", nil)
	msg, err := svc.ResetPassword(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Password updated successfully.", msg)

	upstreamErr := errors.New("boom")
	gw.EXPECT().ResetPassword(ctx, req).Return("", upstreamErr)
	_, err = svc.ResetPassword(ctx, req)
	require.ErrorIs(t, err, upstreamErr)
}
