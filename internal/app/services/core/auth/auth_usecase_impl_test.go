package auth

import (
	"context"
	"medibook-client/internal/app/models"
	"medibook-client/internal/app/services/core/session"
	"medibook-client/internal/app/services/remote/remotetest"
	"medibook-client/internal/app/services/shared/notifier"
	"medibook-client/internal/app/services/shared/sessionstorage"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/dto/requests"
	"medibook-client/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	remote  *remotetest.BookingService
	store   *session.Store
	feed    *notifier.Feed
	usecase *authUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	remote := remotetest.NewBookingService(models.Doctor{ID: "doc1"})
	feed := notifier.NewFeed(10)
	store := session.NewStore(remote, sessionstorage.NewMemorySessionStorage(), feed, zap.NewNop())
	require.NoError(t, store.Init(context.Background()))

	usecase := NewAuthUsecase(store, remote, feed, zap.NewNop()).(*authUsecase)
	return &fixture{remote: remote, store: store, feed: feed, usecase: usecase}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	invalid := []struct {
		name    string
		request requests.Login
		message string
	}{
		{"Missing Email", requests.Login{Password: "secret1"}, constvars.ErrClientInvalidEmail},
		{"Malformed Email", requests.Login{Email: "jane@example", Password: "secret1"}, constvars.ErrClientInvalidEmail},
		{"Email With Space", requests.Login{Email: "ja ne@example.com", Password: "secret1"}, constvars.ErrClientInvalidEmail},
		{"Short Password", requests.Login{Email: "jane@example.com", Password: "12345"}, constvars.ErrClientPasswordTooShort},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			before := f.remote.TotalCalls()

			err := f.usecase.Login(ctx, &tc.request)
			require.Error(t, err)
			assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(err))
			assert.Equal(t, before, f.remote.TotalCalls())
			assert.Equal(t, tc.message, f.feed.Recent(1)[0].Message)
			assert.Empty(t, f.store.Token())
		})
	}

	t.Run("Success Stores Token", func(t *testing.T) {
		f := newFixture(t)

		err := f.usecase.Login(ctx, &requests.Login{Email: "jane@example.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, f.remote.IssuedToken, f.store.Token())
		require.NotNil(t, f.store.User())
		assert.Equal(t, "jane@example.com", f.store.User().Email)

		latest := f.feed.Recent(1)[0]
		assert.Equal(t, models.NotificationLevelSuccess, latest.Level)
		assert.Equal(t, constvars.LoginSuccessMessage, latest.Message)
	})

	t.Run("Rejected By Server", func(t *testing.T) {
		f := newFixture(t)
		f.remote.FailWith(remotetest.CallLogin, exceptions.ErrRemoteDomain("Invalid credentials", constvars.RemoteResourceAuth))

		err := f.usecase.Login(ctx, &requests.Login{Email: "jane@example.com", Password: "secret1"})
		require.Error(t, err)
		assert.Equal(t, exceptions.KindDomain, exceptions.KindOf(err))
		assert.Equal(t, "Invalid credentials", f.feed.Recent(1)[0].Message)
		assert.Empty(t, f.store.Token())
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Name Is Trimmed Before Length Check", func(t *testing.T) {
		f := newFixture(t)
		before := f.remote.TotalCalls()

		err := f.usecase.Register(ctx, &requests.Register{Name: "  J  ", Email: "jane@example.com", Password: "secret1"})
		require.Error(t, err)
		assert.Equal(t, before, f.remote.TotalCalls())
		assert.Equal(t, constvars.ErrClientNameTooShort, f.feed.Recent(1)[0].Message)
	})

	t.Run("Success Stores Token", func(t *testing.T) {
		f := newFixture(t)

		err := f.usecase.Register(ctx, &requests.Register{Name: "Jane", Email: "jane@example.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, f.remote.IssuedToken, f.store.Token())
		require.NotNil(t, f.store.User())
		assert.Equal(t, "Jane", f.store.User().Name)
		assert.Equal(t, constvars.RegisterSuccessMessage, f.feed.Recent(1)[0].Message)
	})

	t.Run("Email Checked Before Password And Name", func(t *testing.T) {
		f := newFixture(t)

		err := f.usecase.Register(ctx, &requests.Register{Name: "J", Email: "jane@", Password: "123"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientInvalidEmail, f.feed.Recent(1)[0].Message)

		err = f.usecase.Register(ctx, &requests.Register{Name: "J", Email: "jane@example.com", Password: "123"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientPasswordTooShort, f.feed.Recent(1)[0].Message)
	})

	t.Run("Name Sent Trimmed", func(t *testing.T) {
		f := newFixture(t)

		err := f.usecase.Register(ctx, &requests.Register{Name: "  Jane Doe  ", Email: "jane@example.com", Password: " secret1 "})
		require.NoError(t, err)
		require.NotNil(t, f.store.User())
		assert.Equal(t, "Jane Doe", f.store.User().Name)
	})

	t.Run("Failure Without Message Uses Fallback", func(t *testing.T) {
		f := newFixture(t)
		f.remote.FailWith(remotetest.CallRegister, exceptions.ErrRemoteDomain("", constvars.RemoteResourceAuth))

		err := f.usecase.Register(ctx, &requests.Register{Name: "Jane", Email: "jane@example.com", Password: "secret1"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientCreateAccountFailed, f.feed.Recent(1)[0].Message)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.usecase.Login(ctx, &requests.Login{Email: "jane@example.com", Password: "secret1"}))

	f.usecase.Logout(ctx)
	assert.Empty(t, f.store.Token())
	assert.Nil(t, f.store.User())
}
