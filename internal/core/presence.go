package core

// Presence tracks the set of usernames currently joined. It mirrors the
// registry and exists only to derive the online count.
type Presence struct {
	users map[string]struct{}
}

// NewPresence constructs an empty presence set.
func NewPresence() *Presence {
	return &Presence{users: make(map[string]struct{})}
}

// Add inserts a username into the set.
func (p *Presence) Add(username string) {
	p.users[username] = struct{}{}
}

// Remove deletes a username from the set. No-op if absent.
func (p *Presence) Remove(username string) {
	delete(p.users, username)
}

// Count returns the number of joined usernames.
func (p *Presence) Count() int {
	return len(p.users)
}
