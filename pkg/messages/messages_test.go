package messages_test

import (
	"encoding/json"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/messages"
)

func TestMsgEncoding(t *testing.T) {
	tests := []struct {
		desc         string
		msg          any
		expectedJSON string
	}{
		{
			desc:         "add_message",
			msg:          messages.NewAddMessage("bla bla", "topics"),
			expectedJSON: `{"add_message":{"message":"bla bla","topic":"topics"}}`,
		},
		{
			desc:         "get_all_message",
			msg:          messages.NewGetAllMessage("", ""),
			expectedJSON: `{"get_all_message":{"message":"","topic":""}}`,
		},
		{
			desc:         "get_messages_by_addr",
			msg:          messages.NewGetMessagesByAddr("juno1owner"),
			expectedJSON: `{"get_messages_by_addr":{"address":"juno1owner"}}`,
		},
		{
			desc:         "get_current_id",
			msg:          messages.NewGetCurrentID(),
			expectedJSON: `{"get_current_id":{}}`,
		},
		{
			desc:         "get_messages_by_topic",
			msg:          messages.NewGetMessagesByTopic(""),
			expectedJSON: `{"get_messages_by_topic":{"topic":""}}`,
		},
		{
			desc:         "get_messages_by_id",
			msg:          messages.NewGetMessagesByID(1),
			expectedJSON: `{"get_messages_by_id":{"id":"1"}}`,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			bz, err := json.Marshal(test.msg)
			require.NoError(t, err)
			require.JSONEq(t, test.expectedJSON, string(bz))
		})
	}
}

func TestDecodeMessagesResponse(t *testing.T) {
	res, err := messages.DecodeMessagesResponse([]byte(`{"messages":[
		{"id":"0","owner":"juno1user1","topic":"topic1","message":"message1"},
		{"id":"1","owner":"juno1user2","topic":"topic1","message":"message2"}
	]}`))
	require.NoError(t, err)
	require.Len(t, res.Messages, 2)
	require.True(t, math.NewUint(1).Equal(res.Messages[1].ID))
	require.Equal(t, "juno1user2", res.Messages[1].Owner)
	require.Equal(t, "message2", res.Messages[1].Message)

	res, err = messages.DecodeMessagesResponse([]byte(`{"messages":[]}`))
	require.NoError(t, err)
	require.Empty(t, res.Messages)

	_, err = messages.DecodeMessagesResponse([]byte(`{"messages":[{"id":-1}]}`))
	require.ErrorIs(t, err, messages.ErrMessagesDecode)
}

func TestDecodeCurrentIDResponse(t *testing.T) {
	tests := []struct {
		desc        string
		data        string
		expectedID  uint64
		expectedErr error
	}{
		{desc: "bare number", data: `3`, expectedID: 3},
		{desc: "uint128 string", data: `"42"`, expectedID: 42},
		{desc: "object", data: `{"id":"7"}`, expectedID: 7},
		{desc: "empty", data: ` `, expectedErr: messages.ErrMessagesDecode},
		{desc: "negative", data: `-1`, expectedErr: messages.ErrMessagesDecode},
		{desc: "not a number", data: `"seven"`, expectedErr: messages.ErrMessagesDecode},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			res, err := messages.DecodeCurrentIDResponse([]byte(test.data))
			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Truef(t, math.NewUint(test.expectedID).Equal(res.ID), "got %s", res.ID)
		})
	}
}
