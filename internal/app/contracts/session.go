package contracts

import (
	"context"
	"medibook-client/internal/app/models"
)

// SessionStorage persists the session token across restarts. The profile
// stored next to it is advisory and must be revalidated.
type SessionStorage interface {
	SaveToken(ctx context.Context, token string) error
	LoadToken(ctx context.Context) (string, error)
	SaveProfile(ctx context.Context, profile *models.Profile) error
	LoadProfile(ctx context.Context) (*models.Profile, error)
	Clear(ctx context.Context) error
}

type TokenListener func(ctx context.Context, token string)

type SessionStore interface {
	Init(ctx context.Context) error
	Close()
	Token() string
	User() *models.Profile
	Doctors() []models.Doctor
	Doctor(doctorID string) (models.Doctor, bool)
	RosterVersion() uint64
	Snapshot() models.SessionSnapshot
	SetToken(ctx context.Context, token string)
	RefreshDoctors(ctx context.Context) error
	RefreshProfile(ctx context.Context) error
	Subscribe(listener TokenListener)
}
