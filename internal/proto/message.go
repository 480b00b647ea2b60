package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Inbound message types. Names match the original chat client.
const (
	InboundTypeJoin   = "join"
	InboundTypeChat   = "chatMessage"
	InboundTypePin    = "pinMessage"
	InboundTypeMute   = "muteUser"
	InboundTypeBan    = "banUser"
	InboundTypeDelete = "deleteMessage"
)

// Outbound event names.
const (
	OutboundTypeEvent = "event"
	OutboundTypeError = "error"

	EventMessages    = "messages"
	EventJoinSuccess = "join_success"
	EventMessage     = "message"
	EventSystem      = "systemMessage"
	EventOnlineCount = "onlineCount"
	EventBanned      = "banned"
)

// JoinData requests to join the chat with a username.
type JoinData struct {
	Username string `json:"username"`
}

// ChatData is a chat message from the client.
type ChatData struct {
	Text string `json:"text"`
}

// PinData targets a message to pin.
type PinData struct {
	ID string `json:"id"`
}

// DeleteData targets a message to delete.
type DeleteData struct {
	ID string `json:"id"`
}

// TargetData names a user for mute/ban actions.
type TargetData struct {
	Username string `json:"username"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// MessagePayload is the wire form of a chat message.
type MessagePayload struct {
	ID       string `json:"id"`
	User     string `json:"user"`
	Color    string `json:"color"`
	IsOwner  bool   `json:"isOwner"`
	Text     string `json:"text"`
	Time     string `json:"time"`
	IsPinned bool   `json:"isPinned"`
}

// JoinSuccessData confirms a join and echoes the assigned identity, so
// the client can reveal the composer and style its own messages.
type JoinSuccessData struct {
	Username string `json:"username"`
	Color    string `json:"color"`
	IsOwner  bool   `json:"isOwner"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
