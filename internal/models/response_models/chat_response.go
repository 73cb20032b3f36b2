package response_models

import (
	mem "travelwise/pkg/memcache"
)

type ChatReply struct {
	Reply      string         `json:"reply"`
	OffTopic   bool           `json:"off_topic"`
	Transcript []mem.ChatTurn `json:"transcript"`
}

type ConversationResponse struct {
	ID         uint           `json:"id"`
	Name       string         `json:"name"`
	Transcript []mem.ChatTurn `json:"transcript"`
}
