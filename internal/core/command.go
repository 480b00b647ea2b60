package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandJoin binds a username to the connection.
	CommandJoin CommandKind = iota
	// CommandChat broadcasts a chat message to everyone.
	CommandChat
	// CommandPin marks a message as pinned (owner only).
	CommandPin
	// CommandMute silences a user by name (owner only).
	CommandMute
	// CommandBan bans a user by name and force-disconnects them (owner only).
	CommandBan
	// CommandDelete removes a message from the log (owner only).
	CommandDelete

	// commandConnect and commandDisconnect mark the connection lifecycle.
	// They are produced by the hub's own registration plumbing, not by
	// the transport mapper.
	commandConnect
	commandDisconnect
)

// Command represents an action requested by a client.
type Command struct {
	Kind      CommandKind
	Username  string // CommandJoin, CommandMute, CommandBan
	Text      string // CommandChat
	MessageID string // CommandPin, CommandDelete
}
