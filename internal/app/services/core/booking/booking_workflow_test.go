package booking

import (
	"context"
	"errors"
	"medibook-client/internal/app/models"
	"medibook-client/internal/app/services/core/session"
	"medibook-client/internal/app/services/remote/remotetest"
	"medibook-client/internal/app/services/shared/notifier"
	"medibook-client/internal/app/services/shared/sessionstorage"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var reference = time.Date(2025, time.March, 3, 9, 5, 0, 0, time.UTC)

type fixture struct {
	remote   *remotetest.BookingService
	store    *session.Store
	feed     *notifier.Feed
	workflow *Workflow
}

func newFixture(t *testing.T, loggedIn bool) *fixture {
	t.Helper()
	ctx := context.Background()

	remote := remotetest.NewBookingService(models.Doctor{ID: "doc1", Name: "Dr. Richard James", Fees: 50})
	remote.SetProfile("tok-1", &models.Profile{Name: "Jane"})
	feed := notifier.NewFeed(20)
	store := session.NewStore(remote, sessionstorage.NewMemorySessionStorage(), feed, zap.NewNop())
	require.NoError(t, store.Init(ctx))
	if loggedIn {
		store.SetToken(ctx, "tok-1")
	}

	workflow := NewWorkflow(store, remote, feed, func() time.Time { return reference }, zap.NewNop())
	_, err := workflow.Open(ctx, "doc1", time.Time{})
	require.NoError(t, err)

	return &fixture{remote: remote, store: store, feed: feed, workflow: workflow}
}

func labelsOf(day models.DaySlots) []string {
	labels := make([]string, 0, len(day.Slots))
	for _, s := range day.Slots {
		labels = append(labels, s.Label)
	}
	return labels
}

func TestSubmitSuccess(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	_, err := f.workflow.SelectDay(ctx, 2)
	require.NoError(t, err)
	view, err := f.workflow.SelectTime(ctx, "10:30 AM")
	require.NoError(t, err)
	assert.Equal(t, "You selected: WED, 5 at 10:30 AM", view.Selection)
	require.Contains(t, labelsOf(view.Grid[2]), "10:30 AM")

	refreshesBefore := f.remote.Calls(remotetest.CallListDoctors)
	outcome := f.workflow.Submit(ctx)

	require.NoError(t, outcome.Err)
	assert.Equal(t, models.BookingStateConfirmed, outcome.State)
	assert.Equal(t, constvars.NavigateMyAppointments, outcome.Navigate)
	assert.Equal(t, "Appointment Booked", outcome.Message)

	view = f.workflow.View()
	assert.NotContains(t, labelsOf(view.Grid[2]), "10:30 AM")
	assert.Contains(t, labelsOf(view.Grid[3]), "10:30 AM")
	assert.Empty(t, view.SlotTime)
	assert.Equal(t, 1, f.remote.Calls(remotetest.CallListDoctors)-refreshesBefore)
	assert.Equal(t, 1, f.remote.Calls(remotetest.CallBookAppointment))

	doctor, ok := f.store.Doctor("doc1")
	require.True(t, ok)
	assert.True(t, doctor.IsBooked("05_03_2025", "10:30 AM"))
	assert.Equal(t, f.store.RosterVersion(), view.RosterVersion)

	recent := f.feed.Recent(1)
	require.Len(t, recent, 1)
	assert.Equal(t, models.NotificationLevelSuccess, recent[0].Level)
}

func TestSubmitWithoutToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	_, err := f.workflow.SelectDay(ctx, 2)
	require.NoError(t, err)
	_, err = f.workflow.SelectTime(ctx, "10:30 AM")
	require.NoError(t, err)

	callsBefore := f.remote.TotalCalls()
	outcome := f.workflow.Submit(ctx)

	assert.Equal(t, models.BookingStateRedirectLogin, outcome.State)
	assert.Equal(t, constvars.NavigateLogin, outcome.Navigate)
	assert.Equal(t, constvars.ErrClientLoginToBook, outcome.Message)
	assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(outcome.Err))
	assert.Equal(t, callsBefore, f.remote.TotalCalls())
	assert.Equal(t, models.NotificationLevelWarn, f.feed.Recent(1)[0].Level)
	assert.Contains(t, labelsOf(f.workflow.View().Grid[2]), "10:30 AM")
}

func TestSubmitInvalidSelection(t *testing.T) {
	ctx := context.Background()

	t.Run("Nothing Selected", func(t *testing.T) {
		f := newFixture(t, true)
		outcome := f.workflow.Submit(ctx)

		assert.Equal(t, models.BookingStateRejected, outcome.State)
		assert.Equal(t, constvars.ErrClientSelectValidSlot, outcome.Message)
		assert.Equal(t, 0, f.remote.Calls(remotetest.CallBookAppointment))
	})

	t.Run("Label Not In Selected Day", func(t *testing.T) {
		f := newFixture(t, true)
		_, err := f.workflow.SelectTime(ctx, "09:00 AM")
		require.NoError(t, err)

		outcome := f.workflow.Submit(ctx)

		assert.Equal(t, models.BookingStateRejected, outcome.State)
		assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(outcome.Err))
		assert.Equal(t, 0, f.remote.Calls(remotetest.CallBookAppointment))
	})

	t.Run("Day Out Of Range", func(t *testing.T) {
		f := newFixture(t, true)
		_, err := f.workflow.SelectDay(ctx, 7)
		assert.Error(t, err)
		assert.Equal(t, 0, f.workflow.View().SlotIndex)
	})

	t.Run("No Doctor Opened", func(t *testing.T) {
		workflow := NewWorkflow(nil, nil, notifier.NewFeed(1), nil, zap.NewNop())
		outcome := workflow.Submit(ctx)
		assert.Equal(t, models.BookingStateRejected, outcome.State)
		_, err := workflow.SelectDay(ctx, 0)
		assert.Error(t, err)
	})
}

func TestSubmitFailureLeavesGrid(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name    string
		err     error
		message string
	}{
		{"Domain", exceptions.ErrRemoteDomain("Slot not available", constvars.RemoteResourceAppointments), "Slot not available"},
		{"Transport", exceptions.ErrSendHTTPRequest(errors.New("connection reset")), constvars.ErrClientServerUnreachable},
		{"Auth", exceptions.ErrRemoteUnauthorized(constvars.ErrClientUnauthorized, constvars.RemoteResourceAppointments), constvars.ErrClientUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, true)
			_, err := f.workflow.SelectDay(ctx, 1)
			require.NoError(t, err)
			_, err = f.workflow.SelectTime(ctx, "11:00 AM")
			require.NoError(t, err)
			before := f.workflow.View().Grid
			refreshes := f.remote.Calls(remotetest.CallListDoctors)
			f.remote.FailWith(remotetest.CallBookAppointment, tc.err)

			outcome := f.workflow.Submit(ctx)

			assert.Equal(t, models.BookingStateRejected, outcome.State)
			assert.Equal(t, tc.message, outcome.Message)
			view := f.workflow.View()
			assert.Equal(t, before, view.Grid)
			assert.Equal(t, "11:00 AM", view.SlotTime)
			assert.Equal(t, refreshes, f.remote.Calls(remotetest.CallListDoctors))
			assert.Equal(t, "tok-1", f.store.Token(), "auth failures do not log out")

			f.remote.FailWith(remotetest.CallBookAppointment, nil)
			retry := f.workflow.Submit(ctx)
			assert.Equal(t, models.BookingStateConfirmed, retry.State)
		})
	}
}

func TestSubmitRefreshFailureKeepsOptimisticGrid(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	_, err := f.workflow.SelectDay(ctx, 0)
	require.NoError(t, err)
	_, err = f.workflow.SelectTime(ctx, "10:00 AM")
	require.NoError(t, err)
	f.remote.FailWith(remotetest.CallListDoctors, exceptions.ErrSendHTTPRequest(errors.New("timeout")))

	outcome := f.workflow.Submit(ctx)

	assert.Equal(t, models.BookingStateConfirmed, outcome.State)
	assert.NotContains(t, labelsOf(f.workflow.View().Grid[0]), "10:00 AM")
}

func TestRebuildIfStale(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	assert.False(t, f.workflow.RebuildIfStale(ctx))

	// Another client books a slot; the next roster refresh carries it.
	other := f.remote
	_, err := other.BookAppointment(ctx, "tok-1", bookRequest("doc1", "04_03_2025", "02:00 PM"))
	require.NoError(t, err)
	require.NoError(t, f.store.RefreshDoctors(ctx))

	assert.True(t, f.workflow.RebuildIfStale(ctx))
	assert.NotContains(t, labelsOf(f.workflow.View().Grid[1]), "02:00 PM")
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	t.Run("Unknown Doctor", func(t *testing.T) {
		_, err := f.workflow.Open(ctx, "missing", time.Time{})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientDoctorNotFound, exceptions.ClientMessageOf(err, ""))
	})

	t.Run("Explicit Reference Instant", func(t *testing.T) {
		view, err := f.workflow.Open(ctx, "doc1", time.Date(2025, time.March, 3, 20, 45, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Empty(t, view.Grid[0].Slots)
		assert.Len(t, view.Grid, 7)
		assert.Equal(t, models.BookingStateIdle, view.State)
		require.NotNil(t, view.Doctor)
		assert.Equal(t, "Dr. Richard James", view.Doctor.Name)
	})
}

func TestOpenDuringSubmit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	_, err := f.workflow.SelectDay(ctx, 2)
	require.NoError(t, err)
	_, err = f.workflow.SelectTime(ctx, "10:30 AM")
	require.NoError(t, err)

	var reopenErr error
	var second models.BookingOutcome
	f.remote.OnCall = func(name string) {
		if name != remotetest.CallBookAppointment {
			return
		}
		f.remote.OnCall = nil
		_, reopenErr = f.workflow.Open(ctx, "doc1", time.Time{})
		second = f.workflow.Submit(ctx)
	}

	outcome := f.workflow.Submit(ctx)

	require.NoError(t, outcome.Err)
	assert.Equal(t, models.BookingStateConfirmed, outcome.State)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, reopenErr, &customErr)
	assert.Equal(t, constvars.ErrClientBookingInProgress, customErr.ClientMessage)
	assert.Equal(t, models.BookingStateSubmitting, second.State)
	assert.Error(t, second.Err)
	assert.Equal(t, 1, f.remote.Calls(remotetest.CallBookAppointment))
}
