package session

import (
	"context"
	"errors"
	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/models"
	"medibook-client/internal/app/services/remote/remotetest"
	"medibook-client/internal/app/services/shared/notifier"
	"medibook-client/internal/app/services/shared/sessionstorage"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/exceptions"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// trackingStorage counts Clear calls on top of the memory storage.
type trackingStorage struct {
	contracts.SessionStorage
	clears int
}

func (s *trackingStorage) Clear(ctx context.Context) error {
	s.clears++
	return s.SessionStorage.Clear(ctx)
}

type fixture struct {
	remote  *remotetest.BookingService
	storage *trackingStorage
	feed    *notifier.Feed
	store   *Store
}

func newFixture(doctors ...models.Doctor) *fixture {
	remote := remotetest.NewBookingService(doctors...)
	remote.SetProfile("tok-1", &models.Profile{Name: "Jane", Email: "jane@example.com"})
	storage := &trackingStorage{SessionStorage: sessionstorage.NewMemorySessionStorage()}
	feed := notifier.NewFeed(10)
	return &fixture{
		remote:  remote,
		storage: storage,
		feed:    feed,
		store:   NewStore(remote, storage, feed, zap.NewNop()),
	}
}

func TestSetToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Token Loads Profile And Persists", func(t *testing.T) {
		f := newFixture()

		f.store.SetToken(ctx, "tok-1")

		assert.Equal(t, "tok-1", f.store.Token())
		require.NotNil(t, f.store.User())
		assert.Equal(t, "Jane", f.store.User().Name)
		assert.Equal(t, 1, f.remote.Calls(remotetest.CallGetProfile))

		persisted, err := f.storage.LoadToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok-1", persisted)
		cached, err := f.storage.LoadProfile(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Jane", cached.Name)
	})

	t.Run("Empty Token Clears User And Storage", func(t *testing.T) {
		f := newFixture()
		f.store.SetToken(ctx, "tok-1")
		require.NotNil(t, f.store.User())

		f.store.SetToken(ctx, "")

		assert.Empty(t, f.store.Token())
		assert.Nil(t, f.store.User())
		assert.Equal(t, 1, f.storage.clears)
		persisted, _ := f.storage.LoadToken(ctx)
		assert.Empty(t, persisted)
		cached, _ := f.storage.LoadProfile(ctx)
		assert.Nil(t, cached)
	})

	t.Run("No Profile Fetch Without Token", func(t *testing.T) {
		f := newFixture()
		f.store.SetToken(ctx, "tok-1")
		f.store.SetToken(ctx, "")
		calls := f.remote.Calls(remotetest.CallGetProfile)

		require.NoError(t, f.store.RefreshProfile(ctx))

		assert.Equal(t, calls, f.remote.Calls(remotetest.CallGetProfile))
		assert.Nil(t, f.store.User())
	})

	t.Run("Profile Failure Keeps Token", func(t *testing.T) {
		f := newFixture()
		f.remote.FailWith(remotetest.CallGetProfile, exceptions.ErrSendHTTPRequest(errors.New("connection refused")))

		f.store.SetToken(ctx, "tok-1")

		assert.Equal(t, "tok-1", f.store.Token())
		assert.Nil(t, f.store.User())
		recent := f.feed.Recent(0)
		require.Len(t, recent, 1)
		assert.Equal(t, constvars.ErrClientServerUnreachable, recent[0].Message)
		assert.Equal(t, string(exceptions.KindTransport), recent[0].Kind)
	})

	t.Run("Unauthorized Profile Keeps Token", func(t *testing.T) {
		f := newFixture()

		f.store.SetToken(ctx, "tok-unknown")

		assert.Equal(t, "tok-unknown", f.store.Token())
		assert.Nil(t, f.store.User())
		require.Len(t, f.feed.Recent(0), 1)
		assert.Equal(t, constvars.ErrClientUnauthorized, f.feed.Recent(0)[0].Message)
	})

	t.Run("Same Token Is A No-op", func(t *testing.T) {
		f := newFixture()
		f.store.SetToken(ctx, "tok-1")
		f.store.SetToken(ctx, "tok-1")

		assert.Equal(t, 1, f.remote.Calls(remotetest.CallGetProfile))
	})

	t.Run("Listeners Run After Change", func(t *testing.T) {
		f := newFixture()
		var seen []string
		f.store.Subscribe(func(_ context.Context, token string) {
			seen = append(seen, token)
			if token != "" {
				assert.NotNil(t, f.store.User(), "profile is loaded before listeners run")
			}
		})

		f.store.SetToken(ctx, "tok-1")
		f.store.SetToken(ctx, "")

		assert.Equal(t, []string{"tok-1", ""}, seen)
	})

	t.Run("Stale Profile Is Dropped", func(t *testing.T) {
		f := newFixture()
		f.remote.OnCall = func(name string) {
			if name == remotetest.CallGetProfile {
				f.remote.OnCall = nil
				f.store.SetToken(ctx, "")
			}
		}

		f.store.SetToken(ctx, "tok-1")

		assert.Empty(t, f.store.Token())
		assert.Nil(t, f.store.User())
	})

	t.Run("Token Switch Drops Previous Profile Cache", func(t *testing.T) {
		f := newFixture()
		f.store.SetToken(ctx, "tok-1")
		require.NotNil(t, f.store.User())
		f.remote.FailWith(remotetest.CallGetProfile, exceptions.ErrSendHTTPRequest(errors.New("connection refused")))

		f.store.SetToken(ctx, "tok-2")

		persisted, err := f.storage.LoadToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok-2", persisted)
		cached, err := f.storage.LoadProfile(ctx)
		require.NoError(t, err)
		assert.Nil(t, cached)

		restarted := NewStore(f.remote, f.storage, notifier.Discard{}, zap.NewNop())
		_ = restarted.Init(ctx)
		assert.Equal(t, "tok-2", restarted.Token())
		assert.Nil(t, restarted.User())
	})

	t.Run("Logout Racing A Profile Fetch Leaves No Cache", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			f := newFixture()
			f.store.SetToken(ctx, "tok-1")

			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				_ = f.store.RefreshProfile(ctx)
			}()
			go func() {
				defer wg.Done()
				f.store.SetToken(ctx, "")
			}()
			wg.Wait()

			cached, err := f.storage.LoadProfile(ctx)
			require.NoError(t, err)
			assert.Nil(t, cached)
			assert.Nil(t, f.store.User())
		}
	})
}

// orderedClient releases each ListDoctors call only when told to, so
// tests can choose the order in which concurrent refreshes resolve.
type orderedClient struct {
	*remotetest.BookingService
	started chan struct{}
	release chan []models.Doctor
}

func (c *orderedClient) ListDoctors(context.Context) ([]models.Doctor, error) {
	c.started <- struct{}{}
	return <-c.release, nil
}

func TestRefreshDoctorsLastResponseWins(t *testing.T) {
	ctx := context.Background()
	client := &orderedClient{
		BookingService: remotetest.NewBookingService(),
		started:        make(chan struct{}),
		release:        make(chan []models.Doctor),
	}
	store := NewStore(client, sessionstorage.NewMemorySessionStorage(), notifier.Discard{}, zap.NewNop())

	done := make(chan struct{})
	for i := 0; i < 2; i++ {
		go func() {
			assert.NoError(t, store.RefreshDoctors(ctx))
			done <- struct{}{}
		}()
		<-client.started
	}

	// Both requests are in flight; the one answered last wins.
	client.release <- []models.Doctor{{ID: "doc-early", Name: "Dr. Early"}}
	<-done
	client.release <- []models.Doctor{{ID: "doc-late", Name: "Dr. Late"}}
	<-done

	doctors := store.Doctors()
	require.Len(t, doctors, 1)
	assert.Equal(t, "doc-late", doctors[0].ID)
	assert.Equal(t, uint64(2), store.RosterVersion())
}

func TestRefreshDoctors(t *testing.T) {
	ctx := context.Background()
	doctor := models.Doctor{ID: "doc1", Name: "Dr. Richard James", Fees: 50}

	t.Run("Replaces Roster", func(t *testing.T) {
		f := newFixture(doctor)

		require.NoError(t, f.store.RefreshDoctors(ctx))

		assert.Len(t, f.store.Doctors(), 1)
		assert.Equal(t, uint64(1), f.store.RosterVersion())
		found, ok := f.store.Doctor("doc1")
		assert.True(t, ok)
		assert.Equal(t, "Dr. Richard James", found.Name)
		_, ok = f.store.Doctor("missing")
		assert.False(t, ok)
	})

	t.Run("Works Without Token", func(t *testing.T) {
		f := newFixture(doctor)
		require.NoError(t, f.store.RefreshDoctors(ctx))
		assert.Empty(t, f.store.Token())
		assert.Equal(t, 1, f.remote.Calls(remotetest.CallListDoctors))
	})

	t.Run("Failure Keeps Previous Roster", func(t *testing.T) {
		f := newFixture(doctor)
		require.NoError(t, f.store.RefreshDoctors(ctx))
		f.remote.FailWith(remotetest.CallListDoctors, exceptions.ErrRemoteDomain(constvars.ErrClientFetchDoctorsFailed, constvars.RemoteResourceDoctors))

		err := f.store.RefreshDoctors(ctx)

		assert.Error(t, err)
		assert.Len(t, f.store.Doctors(), 1)
		assert.Equal(t, uint64(1), f.store.RosterVersion())
		require.Len(t, f.feed.Recent(0), 1)
		assert.Equal(t, constvars.ErrClientFetchDoctorsFailed, f.feed.Recent(0)[0].Message)
	})
}

func TestInitAndClose(t *testing.T) {
	ctx := context.Background()

	t.Run("Restores Persisted Session", func(t *testing.T) {
		f := newFixture(models.Doctor{ID: "doc1"})
		require.NoError(t, f.storage.SaveToken(ctx, "tok-1"))
		require.NoError(t, f.storage.SaveProfile(ctx, &models.Profile{Name: "Cached"}))
		var restored string
		f.store.Subscribe(func(_ context.Context, token string) { restored = token })

		require.NoError(t, f.store.Init(ctx))

		assert.Equal(t, "tok-1", f.store.Token())
		assert.Equal(t, "Jane", f.store.User().Name, "cached profile is revalidated")
		assert.Len(t, f.store.Doctors(), 1)
		assert.Equal(t, "tok-1", restored)
	})

	t.Run("Anonymous Start", func(t *testing.T) {
		f := newFixture(models.Doctor{ID: "doc1"})

		require.NoError(t, f.store.Init(ctx))

		assert.Empty(t, f.store.Token())
		assert.Equal(t, 0, f.remote.Calls(remotetest.CallGetProfile))
		assert.Equal(t, 1, f.remote.Calls(remotetest.CallListDoctors))
	})

	t.Run("Close Drops Late Results", func(t *testing.T) {
		f := newFixture(models.Doctor{ID: "doc1"})
		f.store.Close()

		require.NoError(t, f.store.RefreshDoctors(ctx))
		f.store.SetToken(ctx, "tok-1")

		assert.Empty(t, f.store.Doctors())
		assert.Empty(t, f.store.Token())
	})

	t.Run("Snapshot Is A Copy", func(t *testing.T) {
		f := newFixture(models.Doctor{ID: "doc1"})
		f.store.SetToken(ctx, "tok-1")
		require.NoError(t, f.store.RefreshDoctors(ctx))

		snapshot := f.store.Snapshot()
		snapshot.User.Name = "Changed"
		snapshot.Doctors[0].Name = "Changed"

		assert.Equal(t, "Jane", f.store.User().Name)
		assert.Equal(t, "", f.store.Doctors()[0].Name)
		assert.Equal(t, "tok-1", snapshot.Token)
	})
}
