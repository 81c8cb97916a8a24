package notify

import (
	"fmt"

	slackapi "github.com/slack-go/slack"
)

// slackClient abstracts the Slack API methods we use, enabling test mocks.
type slackClient interface {
	PostMessage(channelID string, options ...slackapi.MsgOption) (string, string, error)
}

// SlackNotifier posts conflict digests to a Slack channel.
type SlackNotifier struct {
	client    slackClient
	channelID string
}

// NewSlack creates a SlackNotifier using a bot token.
func NewSlack(botToken, channelID string) *SlackNotifier {
	return &SlackNotifier{
		client:    slackapi.New(botToken),
		channelID: channelID,
	}
}

// Notify posts the subject and body as one message.
func (s *SlackNotifier) Notify(subject, body string) error {
	text := subject
	if body != "" {
		text += "\n" + body
	}
	_, _, err := s.client.PostMessage(s.channelID, slackapi.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("notify: slack post to %s: %w", s.channelID, err)
	}
	return nil
}
