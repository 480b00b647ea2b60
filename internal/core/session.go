package core

// Session is the live identity bound to one connection between join and
// disconnect. Owned exclusively by the Registry, keyed by connection id.
type Session struct {
	ConnID   string
	Username string
	Color    string
	IsOwner  bool
	Muted    bool
	Banned   bool
}

// Registry maps connection ids to sessions. It is only ever touched from
// the hub goroutine, so it carries no locking of its own.
type Registry struct {
	byConn map[string]*Session
	byName map[string]string // username -> conn id, avoids scans on moderation
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byConn: make(map[string]*Session),
		byName: make(map[string]string),
	}
}

// Create binds a new session to connID. Fails with ErrUsernameTaken if any
// live session already holds the username.
func (r *Registry) Create(connID, username, color string, isOwner bool) (*Session, error) {
	if _, taken := r.byName[username]; taken {
		return nil, ErrUsernameTaken
	}
	s := &Session{
		ConnID:   connID,
		Username: username,
		Color:    color,
		IsOwner:  isOwner,
	}
	r.byConn[connID] = s
	r.byName[username] = connID
	return s, nil
}

// Get returns the session for a connection, or nil if the connection never
// joined (or already disconnected).
func (r *Registry) Get(connID string) *Session {
	return r.byConn[connID]
}

// FindByUsername returns the session holding username, or nil.
func (r *Registry) FindByUsername(username string) *Session {
	connID, ok := r.byName[username]
	if !ok {
		return nil
	}
	return r.byConn[connID]
}

// Remove destroys the session bound to connID and returns it. Idempotent:
// removing an unknown connection returns nil.
func (r *Registry) Remove(connID string) *Session {
	s, ok := r.byConn[connID]
	if !ok {
		return nil
	}
	delete(r.byConn, connID)
	delete(r.byName, s.Username)
	return s
}

// SetMuted flags the session holding username as muted. Returns false if no
// such session exists. The flag is never cleared.
func (r *Registry) SetMuted(username string) bool {
	s := r.FindByUsername(username)
	if s == nil {
		return false
	}
	s.Muted = true
	return true
}

// SetBanned flags the session holding username as banned. Returns false if
// no such session exists. The flag is never cleared.
func (r *Registry) SetBanned(username string) bool {
	s := r.FindByUsername(username)
	if s == nil {
		return false
	}
	s.Banned = true
	return true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	return len(r.byConn)
}
