package models

import "time"

// Session is the persisted form of a client session, keyed by namespace.
type Session struct {
	Namespace string    `bson:"_id" json:"namespace"`
	Token     string    `bson:"token" json:"token"`
	Profile   *Profile  `bson:"profile,omitempty" json:"profile,omitempty"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// SessionSnapshot is a consistent copy of the in-memory session.
type SessionSnapshot struct {
	Token         string
	User          *Profile
	Doctors       []Doctor
	RosterVersion uint64
}
