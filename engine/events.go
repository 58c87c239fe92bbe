package engine

import "github.com/google/uuid"

// EventType discriminates engine-to-shell messages
type EventType uint8

const (
	EventNone EventType = iota

	// EventNavigationRequest asks the shell whether the named view may load
	// URL. The shell's policy is to grant every request by enqueueing a
	// matching CommandNavigate.
	EventNavigationRequest

	// EventTitleChanged reports a new page title for the view.
	EventTitleChanged

	// EventBell asks the shell to ring the terminal bell.
	EventBell

	// EventCloseRequest asks the shell to shut down.
	EventCloseRequest
)

// Event is one message from the engine to the shell.
type Event struct {
	Type  EventType
	View  uuid.UUID // view the event concerns, zero if process-wide
	URL   string    // for EventNavigationRequest
	Title string    // for EventTitleChanged
}
