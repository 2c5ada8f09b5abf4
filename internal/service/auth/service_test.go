package auth

import (
	"context"
	"testing"

	"github.com/relojcontrol/timeclock-backend-go/internal/domain/auth"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/user"
	"github.com/relojcontrol/timeclock-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testPassword   = "password123"
)

type fakeUserRepo struct {
	users map[string]user.Usuario // keyed by username
}

func (f *fakeUserRepo) Create(_ context.Context, u user.Usuario) (user.Usuario, error) {
	if _, exists := f.users[u.Username]; exists {
		return user.Usuario{}, user.ErrUsernameExists
	}
	f.users[u.Username] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.Usuario, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.Usuario{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (user.Usuario, error) {
	u, ok := f.users[username]
	if !ok {
		return user.Usuario{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Deactivate(_ context.Context, id string) error {
	for name, u := range f.users {
		if u.ID == id {
			u.Activo = false
			f.users[name] = u
			return nil
		}
	}
	return user.ErrUserNotFound
}

func newTestService(t *testing.T, users ...user.Usuario) (*Service, jwt.Service) {
	t.Helper()
	repo := &fakeUserRepo{users: make(map[string]user.Usuario)}
	for _, u := range users {
		repo.users[u.Username] = u
	}
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewService(repo, jwtService), jwtService
}

func testUser(t *testing.T) user.Usuario {
	t.Helper()
	hash, err := HashPassword(testPassword)
	require.NoError(t, err)
	return user.Usuario{
		ID:           "user-1",
		Username:     "12345678-5",
		PasswordHash: hash,
		Role:         user.RoleRRHH,
		Activo:       true,
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t, testUser(t))

	resp, refreshToken, refreshExpiresAt, err := svc.Login(ctx, auth.LoginRequest{
		Username: "12345678-5",
		Password: testPassword,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Greater(t, refreshExpiresAt, resp.ExpiresAt)
	assert.Equal(t, "RRHH", resp.Role)
	assert.Equal(t, "12345678-5", resp.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t, testUser(t))

	_, _, _, err := svc.Login(ctx, auth.LoginRequest{
		Username: "12345678-5",
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownUserLooksLikeBadCredentials(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, _, _, err := svc.Login(ctx, auth.LoginRequest{
		Username: "99999999-9",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	u := testUser(t)
	u.Activo = false
	svc, _ := newTestService(t, u)

	_, _, _, err := svc.Login(ctx, auth.LoginRequest{
		Username: u.Username,
		Password: testPassword,
	})
	assert.ErrorIs(t, err, auth.ErrUserInactive)
}

func TestRefresh_IssuesNewAccessToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t, testUser(t))

	_, refreshToken, _, err := svc.Login(ctx, auth.LoginRequest{
		Username: "12345678-5",
		Password: testPassword,
	})
	require.NoError(t, err)

	resp, err := svc.Refresh(ctx, refreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "12345678-5", resp.Username)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t, testUser(t))

	resp, _, _, err := svc.Login(ctx, auth.LoginRequest{
		Username: "12345678-5",
		Password: testPassword,
	})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, resp.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, jwtService := newTestService(t, testUser(t))

	_, refreshToken, _, err := svc.Login(ctx, auth.LoginRequest{
		Username: "12345678-5",
		Password: testPassword,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, refreshToken))
	assert.True(t, jwtService.IsTokenRevoked(refreshToken))

	_, err = svc.Refresh(ctx, refreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestLogin_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, _, _, err := svc.Login(ctx, auth.LoginRequest{})
	assert.Error(t, err)
}
