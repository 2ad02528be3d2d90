// Package messages contains the JSON encodings of the messages contract's
// execute and query interface.
package messages

import (
	"cosmossdk.io/math"
)

// ExecuteMsg is the execute message envelope of the messages contract. Exactly
// one variant is set.
type ExecuteMsg struct {
	AddMessage *AddMessage `json:"add_message,omitempty"`
}

// AddMessage stores message under topic, owned by the tx sender.
type AddMessage struct {
	Message string `json:"message"`
	Topic   string `json:"topic"`
}

// QueryMsg is the query message envelope of the messages contract. Exactly one
// variant is set.
type QueryMsg struct {
	GetAllMessage      *GetAllMessage      `json:"get_all_message,omitempty"`
	GetMessagesByAddr  *GetMessagesByAddr  `json:"get_messages_by_addr,omitempty"`
	GetCurrentID       *GetCurrentID       `json:"get_current_id,omitempty"`
	GetMessagesByTopic *GetMessagesByTopic `json:"get_messages_by_topic,omitempty"`
	GetMessagesByID    *GetMessagesByID    `json:"get_messages_by_id,omitempty"`
}

// GetAllMessage lists every stored message. The deployed contract ignores
// both fields but the driver has always sent them.
type GetAllMessage struct {
	Message string `json:"message"`
	Topic   string `json:"topic"`
}

type GetMessagesByAddr struct {
	Address string `json:"address"`
}

type GetCurrentID struct{}

type GetMessagesByTopic struct {
	Topic string `json:"topic"`
}

// GetMessagesByID selects a message by its Uint128 id, encoded as a decimal
// string.
type GetMessagesByID struct {
	ID math.Uint `json:"id"`
}

// NewAddMessage returns the execute message adding message under topic.
func NewAddMessage(message, topic string) ExecuteMsg {
	return ExecuteMsg{AddMessage: &AddMessage{Message: message, Topic: topic}}
}

func NewGetAllMessage(message, topic string) QueryMsg {
	return QueryMsg{GetAllMessage: &GetAllMessage{Message: message, Topic: topic}}
}

func NewGetMessagesByAddr(address string) QueryMsg {
	return QueryMsg{GetMessagesByAddr: &GetMessagesByAddr{Address: address}}
}

func NewGetCurrentID() QueryMsg {
	return QueryMsg{GetCurrentID: &GetCurrentID{}}
}

func NewGetMessagesByTopic(topic string) QueryMsg {
	return QueryMsg{GetMessagesByTopic: &GetMessagesByTopic{Topic: topic}}
}

func NewGetMessagesByID(id uint64) QueryMsg {
	return QueryMsg{GetMessagesByID: &GetMessagesByID{ID: math.NewUint(id)}}
}
