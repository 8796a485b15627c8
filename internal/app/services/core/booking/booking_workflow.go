package booking

import (
	"context"
	"fmt"
	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/models"
	"medibook-client/internal/app/services/core/slot"
	"medibook-client/internal/app/services/shared/notifier"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/dto/requests"
	"medibook-client/internal/pkg/exceptions"
	"medibook-client/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

const notificationSource = "booking"

// Workflow drives one booking attempt at a time: slot selection, the
// reservation request, the optimistic removal of the booked slot and the
// roster refresh that reconciles it. It is the only writer of its grid.
type Workflow struct {
	store    contracts.SessionStore
	client   contracts.BookingServiceClient
	notifier contracts.Notifier
	clock    slot.Clock
	log      *zap.Logger

	mu            sync.Mutex
	doctorID      string
	doctor        *models.Doctor
	now           time.Time
	fixedNow      bool
	grid          models.SlotGrid
	rosterVersion uint64
	slotIndex     int
	slotTime      string
	state         models.BookingState
	lastMessage   string
}

func NewWorkflow(
	store contracts.SessionStore,
	client contracts.BookingServiceClient,
	notifier contracts.Notifier,
	clock slot.Clock,
	logger *zap.Logger,
) *Workflow {
	if clock == nil {
		clock = time.Now
	}
	return &Workflow{
		store:    store,
		client:   client,
		notifier: notifier,
		clock:    clock,
		log:      logger,
		state:    models.BookingStateIdle,
	}
}

// Open starts a booking for doctorID with a fresh grid and no selection.
// A zero now uses the workflow clock. Open is refused while a submit is
// waiting for the booking service.
func (w *Workflow) Open(ctx context.Context, doctorID string, now time.Time) (models.BookingView, error) {
	requestID := utils.GetRequestID(ctx)
	w.log.Info("Workflow.Open called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, ok := w.store.Doctor(doctorID)
	if !ok {
		err := exceptions.ErrDoctorNotFound(doctorID)
		w.log.Error("Workflow.Open error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return models.BookingView{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// A reservation in flight keeps its grid until it resolves.
	if w.state == models.BookingStateSubmitting {
		return w.viewLocked(), exceptions.ErrSubmissionInProgress()
	}

	w.fixedNow = !now.IsZero()
	if !w.fixedNow {
		now = w.clock()
	}
	w.doctorID = doctorID
	w.doctor = &doctor
	w.now = now
	w.grid = slot.Generate(doctor, now)
	w.rosterVersion = w.store.RosterVersion()
	w.slotIndex = 0
	w.slotTime = ""
	w.state = models.BookingStateIdle
	w.lastMessage = ""

	return w.viewLocked(), nil
}

func (w *Workflow) SelectDay(ctx context.Context, slotIndex int) (models.BookingView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.doctorID == "" {
		return models.BookingView{}, exceptions.ErrNoDoctorSelected()
	}
	if slotIndex < 0 || slotIndex >= len(w.grid) {
		return w.viewLocked(), exceptions.ErrSlotIndexOutOfRange()
	}
	w.slotIndex = slotIndex
	w.log.Debug("Workflow.SelectDay",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.Int(constvars.LoggingSlotIndexKey, slotIndex),
	)
	return w.viewLocked(), nil
}

// SelectTime records the chosen label. It is checked against the grid on
// submit, not here.
func (w *Workflow) SelectTime(ctx context.Context, slotTime string) (models.BookingView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.doctorID == "" {
		return models.BookingView{}, exceptions.ErrNoDoctorSelected()
	}
	w.slotTime = slotTime
	w.log.Debug("Workflow.SelectTime",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSlotTimeKey, slotTime),
	)
	return w.viewLocked(), nil
}

func (w *Workflow) View() models.BookingView {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.viewLocked()
}

// RebuildIfStale regenerates the grid when the roster changed since it was
// built. The selection is kept. It reports whether a rebuild happened.
func (w *Workflow) RebuildIfStale(ctx context.Context) bool {
	version := w.store.RosterVersion()

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.doctorID == "" || w.state == models.BookingStateSubmitting || version == w.rosterVersion {
		return false
	}
	doctor, ok := w.store.Doctor(w.doctorID)
	if !ok {
		return false
	}
	if !w.fixedNow {
		w.now = w.clock()
	}
	w.doctor = &doctor
	w.grid = slot.Generate(doctor, w.now)
	w.rosterVersion = version

	w.log.Info("Workflow.RebuildIfStale rebuilt grid",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingDoctorIDKey, w.doctorID),
		zap.Uint64(constvars.LoggingRosterVersionKey, version),
	)
	return true
}

// Submit reserves the selected slot. Without a token it asks for a login
// and sends nothing; an invalid selection is rejected locally. On success
// the slot is removed from the grid, the selection cleared and the roster
// refreshed once. On failure the grid is left as it was.
func (w *Workflow) Submit(ctx context.Context) models.BookingOutcome {
	requestID := utils.GetRequestID(ctx)

	w.mu.Lock()
	if w.state == models.BookingStateSubmitting {
		w.mu.Unlock()
		err := exceptions.ErrSubmissionInProgress()
		return models.BookingOutcome{State: models.BookingStateSubmitting, Message: err.ClientMessage, Err: err}
	}
	if w.doctorID == "" {
		w.mu.Unlock()
		err := exceptions.ErrNoDoctorSelected()
		notifier.Failure(ctx, w.notifier, notificationSource, err, err.ClientMessage)
		return models.BookingOutcome{State: models.BookingStateRejected, Message: err.ClientMessage, Err: err}
	}

	w.state = models.BookingStateValidating
	w.log.Info("Workflow.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, w.doctorID),
		zap.Int(constvars.LoggingSlotIndexKey, w.slotIndex),
		zap.String(constvars.LoggingSlotTimeKey, w.slotTime),
	)

	token := w.store.Token()
	if token == "" {
		w.state = models.BookingStateRedirectLogin
		w.lastMessage = constvars.ErrClientLoginToBook
		w.mu.Unlock()

		notifier.Warn(ctx, w.notifier, notificationSource, constvars.ErrClientLoginToBook)
		return models.BookingOutcome{
			State:    models.BookingStateRedirectLogin,
			Message:  constvars.ErrClientLoginToBook,
			Navigate: constvars.NavigateLogin,
			Err:      exceptions.ErrTokenMissing(constvars.ErrClientLoginToBook),
		}
	}

	selected, ok := w.selectedSlotLocked()
	if !ok {
		err := exceptions.ErrSlotNotSelected()
		w.state = models.BookingStateRejected
		w.lastMessage = err.ClientMessage
		w.mu.Unlock()

		notifier.Failure(ctx, w.notifier, notificationSource, err, err.ClientMessage)
		return models.BookingOutcome{State: models.BookingStateRejected, Message: err.ClientMessage, Err: err}
	}

	slotIndex := w.slotIndex
	request := &requests.BookAppointment{
		DocID:    w.doctorID,
		SlotDate: utils.SlotDateKey(selected.Instant),
		SlotTime: selected.Label,
	}
	w.state = models.BookingStateSubmitting
	w.mu.Unlock()

	message, err := w.client.BookAppointment(ctx, token, request)
	if err != nil {
		message = exceptions.ClientMessageOf(err, constvars.ErrClientBookingFailed)
		w.mu.Lock()
		w.state = models.BookingStateRejected
		w.lastMessage = message
		w.mu.Unlock()

		w.log.Error("Workflow.Submit error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
			zap.Error(err),
		)
		notifier.Failure(ctx, w.notifier, notificationSource, err, constvars.ErrClientBookingFailed)
		return models.BookingOutcome{State: models.BookingStateRejected, Message: message, Err: err}
	}
	if message == "" {
		message = constvars.BookingSuccessFallbackMessage
	}

	w.mu.Lock()
	if w.doctorID == request.DocID {
		w.removeSlotLocked(slotIndex, request.SlotTime)
	}
	w.slotTime = ""
	w.state = models.BookingStateConfirmed
	w.lastMessage = message
	w.mu.Unlock()

	w.log.Info("Workflow.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DocID),
		zap.String(constvars.LoggingSlotDateKey, request.SlotDate),
		zap.String(constvars.LoggingSlotTimeKey, request.SlotTime),
	)
	notifier.Success(ctx, w.notifier, notificationSource, message)

	// The refreshed roster replaces the optimistic grid.
	if err := w.store.RefreshDoctors(ctx); err == nil {
		w.RebuildIfStale(ctx)
	}

	return models.BookingOutcome{
		State:    models.BookingStateConfirmed,
		Message:  message,
		Navigate: constvars.NavigateMyAppointments,
	}
}

func (w *Workflow) selectedSlotLocked() (models.TimeSlot, bool) {
	if w.slotTime == "" || w.slotIndex < 0 || w.slotIndex >= len(w.grid) {
		return models.TimeSlot{}, false
	}
	day := w.grid[w.slotIndex]
	position := day.Find(w.slotTime)
	if position < 0 {
		return models.TimeSlot{}, false
	}
	return day.Slots[position], true
}

func (w *Workflow) removeSlotLocked(slotIndex int, label string) {
	if slotIndex < 0 || slotIndex >= len(w.grid) {
		return
	}
	kept := make([]models.TimeSlot, 0, len(w.grid[slotIndex].Slots))
	for _, timeSlot := range w.grid[slotIndex].Slots {
		if timeSlot.Label != label {
			kept = append(kept, timeSlot)
		}
	}
	w.grid[slotIndex].Slots = kept
}

func (w *Workflow) viewLocked() models.BookingView {
	view := models.BookingView{
		DoctorID:      w.doctorID,
		State:         w.state,
		SlotIndex:     w.slotIndex,
		SlotTime:      w.slotTime,
		Grid:          w.grid.Clone(),
		RosterVersion: w.rosterVersion,
		LastMessage:   w.lastMessage,
	}
	if w.doctor != nil {
		doctor := w.doctor.Clone()
		view.Doctor = &doctor
	}
	if selected, ok := w.selectedSlotLocked(); ok {
		day := w.grid[w.slotIndex]
		view.Selection = fmt.Sprintf("You selected: %s, %d at %s", day.WeekdayLabel, day.DayOfMonth, selected.Label)
	}
	return view
}
