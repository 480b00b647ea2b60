package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventMessage carries a single new chat message (broadcast).
	EventMessage EventKind = iota
	// EventMessageList carries the full ordered message log. Sent to a
	// single new joiner at join time, and broadcast after pin/delete so
	// every observer converges to an identical view.
	EventMessageList
	// EventJoinSuccess confirms a join to the joining connection.
	EventJoinSuccess
	// EventSystem carries an informational notice (join/leave/mute/ban).
	EventSystem
	// EventOnlineCount carries the current number of joined users.
	EventOnlineCount
	// EventBanned instructs the transport to terminate the connection
	// and inform the user.
	EventBanned
	// EventError reports a domain error to the acting connection only.
	EventError
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind     EventKind
	Message  Message   // EventMessage
	Messages []Message // EventMessageList
	User     string    // EventJoinSuccess
	Color    string    // EventJoinSuccess
	IsOwner  bool      // EventJoinSuccess
	Text     string    // EventSystem
	Count    int       // EventOnlineCount
	Error    *CoreError
}
