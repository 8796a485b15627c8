package profile

import (
	"context"
	"errors"
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

const imageBase = "http://localhost:4000"

type fixture struct {
	remote  *remotetest.BookingService
	store   *session.Store
	feed    *notifier.Feed
	usecase *profileUsecase
}

func newFixture(t *testing.T, loggedIn bool) *fixture {
	t.Helper()
	ctx := context.Background()
	remote := remotetest.NewBookingService()
	remote.SetProfile("tok-1", &models.Profile{Name: "Jane", Email: "jane@example.com", Image: "uploads/jane.png"})
	feed := notifier.NewFeed(10)
	store := session.NewStore(remote, sessionstorage.NewMemorySessionStorage(), feed, zap.NewNop())
	require.NoError(t, store.Init(ctx))
	if loggedIn {
		store.SetToken(ctx, "tok-1")
	}

	usecase := NewProfileUsecase(store, remote, feed, imageBase, zap.NewNop()).(*profileUsecase)
	return &fixture{remote: remote, store: store, feed: feed, usecase: usecase}
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Resolves Image URL", func(t *testing.T) {
		f := newFixture(t, true)

		profile, err := f.usecase.GetProfile(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Jane", profile.Name)
		assert.Equal(t, imageBase+"/uploads/jane.png", profile.ImageURL)
	})

	t.Run("Without Token", func(t *testing.T) {
		f := newFixture(t, false)

		_, err := f.usecase.GetProfile(ctx)
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientLoginRequired, exceptions.ClientMessageOf(err, ""))
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	valid := func() *requests.UpdateProfile {
		return &requests.UpdateProfile{
			Name:    "Jane Doe",
			Phone:   "0800",
			Address: models.Address{Line1: "Street 1", Line2: "City"},
			DOB:     "1990-01-01",
			Gender:  "Female",
		}
	}

	t.Run("Success Refreshes Profile", func(t *testing.T) {
		f := newFixture(t, true)
		profilesBefore := f.remote.Calls(remotetest.CallGetProfile)

		request := valid()
		request.Image = &requests.ImageUpload{FileName: "new.png", ContentType: "image/png", Data: []byte{1, 2}}
		require.NoError(t, f.usecase.UpdateProfile(ctx, request))

		assert.Equal(t, profilesBefore+1, f.remote.Calls(remotetest.CallGetProfile))
		user := f.store.User()
		require.NotNil(t, user)
		assert.Equal(t, "Jane Doe", user.Name)
		assert.Equal(t, "Street 1", user.Address.Line1)
		assert.Equal(t, "uploads/new.png", user.Image)
		assert.Equal(t, "Profile Updated", f.feed.Recent(1)[0].Message)
	})

	t.Run("Without Token Sends Nothing", func(t *testing.T) {
		f := newFixture(t, false)
		before := f.remote.TotalCalls()

		err := f.usecase.UpdateProfile(ctx, valid())
		require.Error(t, err)
		assert.Equal(t, before, f.remote.TotalCalls())
		assert.Equal(t, models.NotificationLevelWarn, f.feed.Recent(1)[0].Level)
	})

	t.Run("Short Name", func(t *testing.T) {
		f := newFixture(t, true)
		before := f.remote.Calls(remotetest.CallUpdateProfile)

		request := valid()
		request.Name = " J "
		err := f.usecase.UpdateProfile(ctx, request)
		require.Error(t, err)
		assert.Equal(t, before, f.remote.Calls(remotetest.CallUpdateProfile))
		assert.Equal(t, constvars.ErrClientNameTooShort, f.feed.Recent(1)[0].Message)
	})

	t.Run("Transport Failure", func(t *testing.T) {
		f := newFixture(t, true)
		f.remote.FailWith(remotetest.CallUpdateProfile, exceptions.ErrSendHTTPRequest(errors.New("dial tcp: refused")))

		err := f.usecase.UpdateProfile(ctx, valid())
		require.Error(t, err)
		assert.Equal(t, exceptions.KindTransport, exceptions.KindOf(err))
		assert.Equal(t, constvars.ErrClientServerUnreachable, f.feed.Recent(1)[0].Message)
		assert.Equal(t, "Jane", f.store.User().Name)
	})
}
