package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionState is a state of the capability session lifecycle.
type SessionState string

const (
	SessionState_Uninitialized SessionState = "uninitialized"
	SessionState_Probing       SessionState = "probing"
	SessionState_Downloading   SessionState = "downloading"
	SessionState_Ready         SessionState = "ready"
	SessionState_Invoking      SessionState = "invoking"
	SessionState_Unavailable   SessionState = "unavailable"
	SessionState_Destroyed     SessionState = "destroyed"
)

// IsTerminal reports whether no further transition can leave the state.
func (s SessionState) IsTerminal() bool {
	return s == SessionState_Unavailable || s == SessionState_Destroyed
}

// SessionSnapshot is a point-in-time readout of a session.
type SessionSnapshot struct {
	ID            uuid.UUID
	Kind          CapabilityKind
	Options       map[string]string
	State         SessionState
	Progress      DownloadProgress
	IsDownloading bool
	// Err is the permanent error of a session that ended in a failure state.
	Err       error
	CreatedAt time.Time
}

// SessionUpdateType is the kind of a SessionUpdate.
type SessionUpdateType string

const (
	// SessionUpdateType_Progress carries one download progress event.
	SessionUpdateType_Progress SessionUpdateType = "progress"
	// SessionUpdateType_State carries the state reached at the end of the download phase.
	SessionUpdateType_State SessionUpdateType = "state"
)

// SessionUpdate is one element of a session watch stream.
type SessionUpdate struct {
	Type     SessionUpdateType
	Progress DownloadProgress
	Snapshot SessionSnapshot
}

// SessionUpdateCallback receives the updates of a watched session.
// Returning an error stops the stream.
type SessionUpdateCallback func(update SessionUpdate) error
