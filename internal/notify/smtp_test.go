package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func TestBuildMsg(t *testing.T) {
	m, err := buildMsg(Message{
		From:    "foundation@example.org",
		To:      "admin@example.org",
		ReplyTo: "ann@example.org",
		Subject: "New Contact Form Submission",
		Body:    "hello",
	})
	require.NoError(t, err)

	rcpts, err := m.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"admin@example.org"}, rcpts)
	assert.Equal(t, []string{"New Contact Form Submission"}, m.GetGenHeader(mail.HeaderSubject))
}

func TestBuildMsg_InvalidAddresses(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
	}{
		{name: "from", msg: Message{From: "not an address", To: "a@example.org"}},
		{name: "to", msg: Message{From: "a@example.org", To: ""}},
		{name: "reply-to", msg: Message{From: "a@example.org", To: "b@example.org", ReplyTo: "@@"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildMsg(tt.msg)
			assert.Error(t, err)
		})
	}
}
