package user

import (
	"context"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/fyp/core"
)

type authStub struct {
	calls int
	usr   SessionUser
	err   error
}

func (a *authStub) Login(_ context.Context, email, _ string) (SessionUser, error) {
	a.calls++
	usr := a.usr
	usr.Email = email
	return usr, a.err
}

func (a *authStub) Me(context.Context) (SessionUser, error) { return a.usr, a.err }

func newTestService(auth Authenticator) *Service {
	english := en.New()
	translator, _ := ut.New(english, english).GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)
	return NewService(auth, validate, translator)
}

func TestService_Login(t *testing.T) {
	t.Run("invalid credentials never reach the backend", func(t *testing.T) {
		auth := &authStub{}
		svc := newTestService(auth)
		for _, creds := range []Credentials{
			{},
			{Email: "not-an-email", Password: "x"},
			{Email: "ali@fyp.test"},
		} {
			_, err := svc.Login(context.Background(), creds)
			assert.True(t, core.IsValidation(err), "%+v", creds)
		}
		assert.Zero(t, auth.calls)
	})

	t.Run("unsupported role", func(t *testing.T) {
		svc := newTestService(&authStub{usr: SessionUser{ID: "u-1", Role: "admin", Token: "t"}})
		_, err := svc.Login(context.Background(), Credentials{Email: "root@fyp.test", Password: "x"})
		assert.Equal(t, ErrUnsupportedRole, err)
	})

	t.Run("backend error is wrapped", func(t *testing.T) {
		cause := errors.New("boom")
		svc := newTestService(&authStub{err: cause})
		_, err := svc.Login(context.Background(), Credentials{Email: "ali@fyp.test", Password: "x"})
		assert.Equal(t, cause, errors.Cause(err))
	})

	t.Run("email is normalised", func(t *testing.T) {
		auth := &authStub{usr: SessionUser{ID: "u-1", Role: RoleStudent, Token: "t"}}
		svc := newTestService(auth)
		usr, err := svc.Login(context.Background(), Credentials{Email: "  Ali@FYP.test ", Password: "x"})
		require.NoError(t, err)
		assert.Equal(t, "ali@fyp.test", usr.Email)
		assert.True(t, usr.IsAuthenticated())
		assert.Equal(t, 1, auth.calls)
	})
}

func TestService_Me(t *testing.T) {
	tests := []struct {
		name     string
		auth     *authStub
		wantRole Role
		wantErr  error
	}{
		{name: "current user", auth: &authStub{usr: SessionUser{ID: "u-1", Role: RoleSupervisor, Token: "t"}}, wantRole: RoleSupervisor},
		{name: "unsupported role", auth: &authStub{usr: SessionUser{ID: "u-1", Role: "admin", Token: "t"}}, wantErr: ErrUnsupportedRole},
		{name: "backend error", auth: &authStub{err: errors.New("token expired")}, wantErr: errors.New("token expired")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usr, err := newTestService(tt.auth).Me(context.Background())
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), errors.Cause(err).Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, usr.Role)
		})
	}
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole(" Coordinator ")
	require.NoError(t, err)
	assert.Equal(t, RoleCoordinator, r)
	assert.Equal(t, "/coordinator", r.Home())

	_, err = ParseRole("admin")
	assert.Error(t, err)
}
