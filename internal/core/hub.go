package core

import (
	"context"
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// DefaultPalette is the fixed set of name colors assigned at join time.
var DefaultPalette = []string{
	"#FF5733", "#33FF57", "#3357FF", "#F333FF",
	"#FF33A1", "#33FFF3", "#FF8C00", "#8A2BE2",
}

// Options configures a Hub.
type Options struct {
	// Owner is the single distinguished username with moderation
	// privileges, fixed at configuration time.
	Owner string
	// Palette is the set of colors assigned to joiners. Defaults to
	// DefaultPalette when empty.
	Palette []string
}

// Stats is a point-in-time snapshot of hub state.
type Stats struct {
	Online   int
	Messages int
}

type submission struct {
	client *Client
	cmd    *Command
}

// Hub is the session/moderation engine. All shared state (registry,
// presence, message log) is owned by the Run goroutine: commands from
// every connection are funneled through a single queue and handled to
// completion one at a time, so handlers never interleave and no locks
// are needed.
type Hub struct {
	owner   string
	palette []string

	queue     chan submission
	snapshots chan chan Stats
	done      chan struct{}

	registry *Registry
	presence *Presence
	messages *MessageLog
	clients  map[string]*Client // conn id -> client

	log zerolog.Logger
}

// NewHub creates a hub with the given options.
func NewHub(opts Options, logger *zerolog.Logger) *Hub {
	palette := opts.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	lg := zerolog.Nop()
	if logger != nil {
		lg = *logger
	}
	return &Hub{
		owner:     opts.Owner,
		palette:   palette,
		queue:     make(chan submission, 64),
		snapshots: make(chan chan Stats),
		done:      make(chan struct{}),
		registry:  NewRegistry(),
		presence:  NewPresence(),
		messages:  NewMessageLog(),
		clients:   make(map[string]*Client),
		log:       lg,
	}
}

// RegisterClient announces a new connection to the hub and starts pumping
// its commands into the serialized queue. A disconnect command is
// submitted automatically once the client's Commands channel is closed.
func (h *Hub) RegisterClient(c *Client) {
	h.submit(c, &Command{Kind: commandConnect})
	go func() {
		for cmd := range c.Commands {
			h.submit(c, cmd)
		}
		h.submit(c, &Command{Kind: commandDisconnect})
	}()
}

// UnregisterClient signals that the connection is gone. The pump goroutine
// turns the channel close into a disconnect command, so teardown flows
// through the same serialized queue as every other event.
func (h *Hub) UnregisterClient(c *Client) {
	close(c.Commands)
}

func (h *Hub) submit(c *Client, cmd *Command) {
	select {
	case h.queue <- submission{client: c, cmd: cmd}:
	case <-h.done:
	}
}

// Run processes commands until the context is cancelled. It must be
// started exactly once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			return
		case sub := <-h.queue:
			h.handle(sub.client, sub.cmd)
		case reply := <-h.snapshots:
			reply <- Stats{Online: h.presence.Count(), Messages: h.messages.Len()}
		}
	}
}

// Stats returns a snapshot of hub state, served from inside the hub loop.
func (h *Hub) Stats(ctx context.Context) (Stats, error) {
	reply := make(chan Stats, 1)
	select {
	case h.snapshots <- reply:
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	case <-h.done:
		return Stats{}, context.Canceled
	}
	select {
	case s := <-reply:
		return s, nil
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	}
}

func (h *Hub) handle(c *Client, cmd *Command) {
	if _, known := h.clients[c.ID]; !known && cmd.Kind != commandConnect {
		// Late command from an already-removed connection.
		return
	}

	switch cmd.Kind {
	case commandConnect:
		h.handleConnect(c)
	case commandDisconnect:
		h.handleDisconnect(c)
	case CommandJoin:
		h.handleJoin(c, cmd.Username)
	case CommandChat:
		h.handleChat(c, cmd.Text)
	case CommandPin:
		h.handlePin(c, cmd.MessageID)
	case CommandMute:
		h.handleMute(c, cmd.Username)
	case CommandBan:
		h.handleBan(c, cmd.Username)
	case CommandDelete:
		h.handleDelete(c, cmd.MessageID)
	}
}

func (h *Hub) handleConnect(c *Client) {
	h.clients[c.ID] = c
	c.send(&Event{Kind: EventOnlineCount, Count: h.presence.Count()})
	h.log.Debug().Str("conn_id", c.ID).Msg("connection registered")
}

func (h *Hub) handleDisconnect(c *Client) {
	if _, known := h.clients[c.ID]; !known {
		return
	}
	delete(h.clients, c.ID)
	sess := h.registry.Remove(c.ID)
	close(c.Events)
	if sess == nil {
		h.log.Debug().Str("conn_id", c.ID).Msg("anonymous connection closed")
		return
	}
	h.presence.Remove(sess.Username)
	h.log.Info().Str("conn_id", c.ID).Str("username", sess.Username).Msg("user disconnected")
	if sess.Banned {
		// Forced disconnect after a ban: the ban notice was already
		// broadcast, so the generic leave notice is suppressed.
		return
	}
	h.broadcast(&Event{Kind: EventOnlineCount, Count: h.presence.Count()})
	h.broadcast(&Event{Kind: EventSystem, Text: sess.Username + " left the chat"})
}

func (h *Hub) handleJoin(c *Client, username string) {
	if h.registry.Get(c.ID) != nil {
		c.send(&Event{Kind: EventError, Error: coreError(ErrCodeBadRequest, "already joined")})
		return
	}
	if username == "" {
		c.send(&Event{Kind: EventError, Error: coreError(ErrCodeInvalidUsername, "Username is required")})
		return
	}

	color := h.palette[rand.IntN(len(h.palette))]
	isOwner := username == h.owner

	sess, err := h.registry.Create(c.ID, username, color, isOwner)
	if err != nil {
		c.send(&Event{Kind: EventError, Error: coreError(ErrCodeUsernameTaken, "Username is already taken")})
		return
	}
	h.presence.Add(username)

	h.log.Info().
		Str("conn_id", c.ID).
		Str("username", username).
		Bool("is_owner", isOwner).
		Msg("user joined")

	c.send(&Event{Kind: EventMessageList, Messages: h.messages.All()})
	c.send(&Event{Kind: EventJoinSuccess, User: sess.Username, Color: sess.Color, IsOwner: sess.IsOwner})
	h.broadcast(&Event{Kind: EventOnlineCount, Count: h.presence.Count()})
	h.broadcast(&Event{Kind: EventSystem, Text: username + " joined the chat ⚽"})
}

func (h *Hub) handleChat(c *Client, text string) {
	sess := h.registry.Get(c.ID)
	if sess == nil || sess.Banned {
		// Anonymous and banned senders are dropped silently.
		return
	}
	if sess.Muted {
		c.send(&Event{Kind: EventError, Error: coreError(ErrCodeNotPermitted, "you are muted")})
		return
	}

	msg := h.messages.Append(Message{
		User:    sess.Username,
		Color:   sess.Color,
		IsOwner: sess.IsOwner,
		Text:    text,
	})
	h.broadcast(&Event{Kind: EventMessage, Message: msg})
}

func (h *Hub) handlePin(c *Client, messageID string) {
	if !h.requireOwner(c) {
		return
	}
	if !h.messages.SetPinned(messageID) {
		return
	}
	h.log.Info().Str("message_id", messageID).Msg("message pinned")
	h.broadcast(&Event{Kind: EventMessageList, Messages: h.messages.All()})
}

func (h *Hub) handleDelete(c *Client, messageID string) {
	if !h.requireOwner(c) {
		return
	}
	if !h.messages.DeleteByID(messageID) {
		return
	}
	h.log.Info().Str("message_id", messageID).Msg("message deleted")
	h.broadcast(&Event{Kind: EventMessageList, Messages: h.messages.All()})
}

func (h *Hub) handleMute(c *Client, username string) {
	if !h.requireOwner(c) {
		return
	}
	if !h.registry.SetMuted(username) {
		return
	}
	h.log.Info().Str("username", username).Msg("user muted")
	h.broadcast(&Event{Kind: EventSystem, Text: username + " has been muted"})
}

func (h *Hub) handleBan(c *Client, username string) {
	if !h.requireOwner(c) {
		return
	}
	target := h.registry.FindByUsername(username)
	if target == nil {
		return
	}
	target.Banned = true
	h.presence.Remove(target.Username)
	h.log.Info().Str("username", username).Msg("user banned")

	if tc, ok := h.clients[target.ConnID]; ok {
		// The banned event instructs the transport to terminate the
		// connection; the hub never touches the socket itself.
		tc.send(&Event{Kind: EventBanned})
	}
	h.broadcast(&Event{Kind: EventSystem, Text: username + " has been banned"})
	h.broadcast(&Event{Kind: EventOnlineCount, Count: h.presence.Count()})
}

// requireOwner checks that the connection holds an unbanned owner session.
// Non-owners get a not_permitted error; banned sessions are dropped
// silently on every subsequent command, not just at ban time.
func (h *Hub) requireOwner(c *Client) bool {
	sess := h.registry.Get(c.ID)
	if sess == nil || !sess.IsOwner || sess.Banned {
		if sess != nil && sess.Banned {
			return false
		}
		c.send(&Event{Kind: EventError, Error: coreError(ErrCodeNotPermitted, "not permitted")})
		return false
	}
	return true
}

func (h *Hub) broadcast(ev *Event) {
	for _, client := range h.clients {
		if !client.send(ev) {
			h.log.Debug().Str("conn_id", client.ID).Msg("dropping event for slow consumer")
		}
	}
}
