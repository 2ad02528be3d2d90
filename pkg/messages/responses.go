package messages

import (
	"bytes"
	"encoding/json"

	"cosmossdk.io/math"
)

// Message is a message stored by the contract.
type Message struct {
	ID      math.Uint `json:"id"`
	Owner   string    `json:"owner"`
	Topic   string    `json:"topic"`
	Message string    `json:"message"`
}

// MessagesResponse is returned by every get_*message* query.
type MessagesResponse struct {
	Messages []Message `json:"messages"`
}

// CurrentIDResponse is returned by get_current_id.
type CurrentIDResponse struct {
	ID math.Uint `json:"id"`
}

// DecodeMessagesResponse decodes the response of a messages query.
func DecodeMessagesResponse(data []byte) (*MessagesResponse, error) {
	res := new(MessagesResponse)
	if err := json.Unmarshal(data, res); err != nil {
		return nil, ErrMessagesDecode.Wrapf("messages response %q: %v", data, err)
	}
	return res, nil
}

// DecodeCurrentIDResponse decodes the response of get_current_id. The
// contract may answer with a bare u128 number, a Uint128 string, or an
// object carrying an "id" field.
func DecodeCurrentIDResponse(data []byte) (*CurrentIDResponse, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrMessagesDecode.Wrap("empty current id response")
	}

	res := new(CurrentIDResponse)
	switch trimmed[0] {
	case '{':
		if err := json.Unmarshal(trimmed, res); err != nil {
			return nil, ErrMessagesDecode.Wrapf("current id response %q: %v", data, err)
		}
	case '"':
		var idStr string
		if err := json.Unmarshal(trimmed, &idStr); err != nil {
			return nil, ErrMessagesDecode.Wrapf("current id response %q: %v", data, err)
		}
		id, err := math.ParseUint(idStr)
		if err != nil {
			return nil, ErrMessagesDecode.Wrapf("current id %q: %v", idStr, err)
		}
		res.ID = id
	default:
		id, err := math.ParseUint(string(trimmed))
		if err != nil {
			return nil, ErrMessagesDecode.Wrapf("current id %q: %v", data, err)
		}
		res.ID = id
	}
	return res, nil
}
