package http

import (
	"encoding/json"

	"github.com/futbolx/chat-server/internal/core"
	"github.com/futbolx/chat-server/internal/proto"
)

// inboundToCommand validates an inbound envelope and maps it to a core
// command. A non-nil proto.Error means the frame was well-formed JSON but
// failed validation; a non-nil error means the payload did not parse.
// Author identity is never taken from the wire: the hub snapshots it from
// the connection's session.
func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeJoin:
		var join proto.JoinData
		if err := json.Unmarshal(inbound.Data, &join); err != nil {
			return nil, nil, err
		}
		return &core.Command{Kind: core.CommandJoin, Username: join.Username}, nil, nil
	case proto.InboundTypeChat:
		var chat proto.ChatData
		if err := json.Unmarshal(inbound.Data, &chat); err != nil {
			return nil, nil, err
		}
		return &core.Command{Kind: core.CommandChat, Text: chat.Text}, nil, nil
	case proto.InboundTypePin:
		var pin proto.PinData
		if err := json.Unmarshal(inbound.Data, &pin); err != nil {
			return nil, nil, err
		}
		if pin.ID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "message id is required"}, nil
		}
		return &core.Command{Kind: core.CommandPin, MessageID: pin.ID}, nil, nil
	case proto.InboundTypeDelete:
		var del proto.DeleteData
		if err := json.Unmarshal(inbound.Data, &del); err != nil {
			return nil, nil, err
		}
		if del.ID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "message id is required"}, nil
		}
		return &core.Command{Kind: core.CommandDelete, MessageID: del.ID}, nil, nil
	case proto.InboundTypeMute:
		var target proto.TargetData
		if err := json.Unmarshal(inbound.Data, &target); err != nil {
			return nil, nil, err
		}
		if target.Username == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "username is required"}, nil
		}
		return &core.Command{Kind: core.CommandMute, Username: target.Username}, nil, nil
	case proto.InboundTypeBan:
		var target proto.TargetData
		if err := json.Unmarshal(inbound.Data, &target); err != nil {
			return nil, nil, err
		}
		if target.Username == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "username is required"}, nil
		}
		return &core.Command{Kind: core.CommandBan, Username: target.Username}, nil, nil
	default:
		return nil, &proto.Error{Code: "invalid_message", Msg: "unknown message type"}, nil
	}
}

func messagePayload(m core.Message) proto.MessagePayload {
	return proto.MessagePayload{
		ID:       m.ID,
		User:     m.User,
		Color:    m.Color,
		IsOwner:  m.IsOwner,
		Text:     m.Text,
		Time:     m.Time,
		IsPinned: m.Pinned,
	}
}

func messageListPayload(msgs []core.Message) []proto.MessagePayload {
	out := make([]proto.MessagePayload, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messagePayload(m))
	}
	return out
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventMessage:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventMessage,
			Data:  messagePayload(event.Message),
		}
	case core.EventMessageList:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventMessages,
			Data:  messageListPayload(event.Messages),
		}
	case core.EventJoinSuccess:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventJoinSuccess,
			Data: proto.JoinSuccessData{
				Username: event.User,
				Color:    event.Color,
				IsOwner:  event.IsOwner,
			},
		}
	case core.EventSystem:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventSystem,
			Data:  event.Text,
		}
	case core.EventOnlineCount:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventOnlineCount,
			Data:  event.Count,
		}
	case core.EventBanned:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventBanned,
		}
	case core.EventError:
		if event.Error == nil {
			return proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{Code: "unknown", Msg: "unknown error"}}
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeError,
			Error: &proto.Error{Code: event.Error.Code, Msg: event.Error.Message},
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeEvent}
	}
}
