package session

import (
	"context"
	"errors"
	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/models"
	"medibook-client/internal/app/services/shared/notifier"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

const notificationSource = "session"

// Store owns the session token, the user profile and the doctor roster.
// A token change drives the profile: setting one fetches the profile,
// clearing it drops the profile and the persisted session.
type Store struct {
	client   contracts.BookingServiceClient
	storage  contracts.SessionStorage
	notifier contracts.Notifier
	log      *zap.Logger

	// persistMu orders writes to storage; a write is skipped when the
	// generation moved on since the change it belongs to.
	persistMu sync.Mutex

	mu            sync.RWMutex
	token         string
	user          *models.Profile
	doctors       []models.Doctor
	rosterVersion uint64
	// generation changes with every token change so that a profile fetched
	// for an older token is dropped.
	generation uint64
	closed     bool
	listeners  []contracts.TokenListener
}

func NewStore(
	client contracts.BookingServiceClient,
	storage contracts.SessionStorage,
	notifier contracts.Notifier,
	logger *zap.Logger,
) *Store {
	return &Store{
		client:   client,
		storage:  storage,
		notifier: notifier,
		log:      logger,
	}
}

// Init restores a persisted session, loads the roster and revalidates the
// cached profile. Failures are reported and returned; the store stays usable.
func (s *Store) Init(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("Store.Init called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	token, err := s.storage.LoadToken(ctx)
	if err != nil {
		s.log.Warn("Store.Init error loading persisted token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	var listeners []contracts.TokenListener
	if token != "" {
		cached, err := s.storage.LoadProfile(ctx)
		if err != nil {
			s.log.Warn("Store.Init error loading cached profile",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}

		s.mu.Lock()
		s.token = token
		s.user = cached
		s.generation++
		listeners = append(listeners, s.listeners...)
		s.mu.Unlock()
	}

	doctorsErr := s.RefreshDoctors(ctx)
	profileErr := s.RefreshProfile(ctx)

	for _, listener := range listeners {
		listener(ctx, token)
	}

	s.log.Info("Store.Init completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingHasTokenKey, token != ""),
	)
	return errors.Join(doctorsErr, profileErr)
}

// Close stops the store. Results of requests still in flight are dropped.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.generation++
	s.listeners = nil
}

// Subscribe registers listener to run after every token change.
func (s *Store) Subscribe(listener contracts.TokenListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// SetToken replaces the session token. An empty token logs out: the user
// and the persisted session are cleared right away. A new token is
// persisted and the profile fetched; fetch failures are reported through
// the notifier and leave the token in place.
func (s *Store) SetToken(ctx context.Context, token string) {
	requestID := utils.GetRequestID(ctx)

	s.mu.Lock()
	if s.closed || token == s.token {
		s.mu.Unlock()
		return
	}
	s.token = token
	s.user = nil
	s.generation++
	generation := s.generation
	listeners := append([]contracts.TokenListener(nil), s.listeners...)
	s.mu.Unlock()

	s.log.Info("Store.SetToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingHasTokenKey, token != ""),
		zap.String(constvars.LoggingTokenSubjectKey, utils.TokenSubject(token)),
	)

	s.persistToken(ctx, generation, token)
	if token != "" {
		_ = s.RefreshProfile(ctx)
	}

	for _, listener := range listeners {
		listener(ctx, token)
	}
}

// persistToken writes a token change to storage. A new token also drops the
// cached profile, which belongs to the previous token.
func (s *Store) persistToken(ctx context.Context, generation uint64, token string) {
	requestID := utils.GetRequestID(ctx)

	s.persistMu.Lock()
	defer s.persistMu.Unlock()
	if !s.isCurrent(generation) {
		return
	}

	if token == "" {
		if err := s.storage.Clear(ctx); err != nil {
			s.log.Error("Store.SetToken error clearing persisted session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		return
	}

	if err := s.storage.SaveProfile(ctx, nil); err != nil {
		s.log.Error("Store.SetToken error dropping cached profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if err := s.storage.SaveToken(ctx, token); err != nil {
		s.log.Error("Store.SetToken error persisting token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func (s *Store) isCurrent(generation uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation == generation
}

// RefreshDoctors replaces the roster with the booking service's list.
// Concurrent refreshes are not deduplicated; the last one to finish wins.
func (s *Store) RefreshDoctors(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("Store.RefreshDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors, err := s.client.ListDoctors(ctx)
	if err != nil {
		s.log.Error("Store.RefreshDoctors error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		notifier.Failure(ctx, s.notifier, notificationSource, err, constvars.ErrClientFetchDoctorsFailed)
		return err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.doctors = doctors
	s.rosterVersion++
	version := s.rosterVersion
	s.mu.Unlock()

	s.log.Info("Store.RefreshDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRosterSizeKey, len(doctors)),
		zap.Uint64(constvars.LoggingRosterVersionKey, version),
	)
	return nil
}

// RefreshProfile reloads the user profile. Without a token it does nothing.
func (s *Store) RefreshProfile(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)

	s.mu.RLock()
	token, generation, closed := s.token, s.generation, s.closed
	s.mu.RUnlock()
	if closed || token == "" {
		return nil
	}

	s.log.Info("Store.RefreshProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	profile, err := s.client.GetProfile(ctx, token)
	if err != nil {
		s.log.Error("Store.RefreshProfile error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		notifier.Failure(ctx, s.notifier, notificationSource, err, constvars.ErrClientFetchProfileFailed)
		return err
	}

	s.mu.Lock()
	if s.generation != generation {
		s.mu.Unlock()
		s.log.Info("Store.RefreshProfile dropped stale result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}
	s.user = profile
	s.mu.Unlock()

	s.persistMu.Lock()
	if s.isCurrent(generation) {
		if err := s.storage.SaveProfile(ctx, profile); err != nil {
			s.log.Warn("Store.RefreshProfile error caching profile",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}
	s.persistMu.Unlock()

	s.log.Info("Store.RefreshProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) User() *models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyProfile(s.user)
}

func (s *Store) Doctors() []models.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Doctor(nil), s.doctors...)
}

func (s *Store) Doctor(doctorID string) (models.Doctor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, doctor := range s.doctors {
		if doctor.ID == doctorID {
			return doctor.Clone(), true
		}
	}
	return models.Doctor{}, false
}

func (s *Store) RosterVersion() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rosterVersion
}

func (s *Store) Snapshot() models.SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.SessionSnapshot{
		Token:         s.token,
		User:          copyProfile(s.user),
		Doctors:       append([]models.Doctor(nil), s.doctors...),
		RosterVersion: s.rosterVersion,
	}
}

func copyProfile(profile *models.Profile) *models.Profile {
	if profile == nil {
		return nil
	}
	copied := *profile
	return &copied
}
