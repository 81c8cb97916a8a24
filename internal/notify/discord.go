package notify

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// discordSession abstracts the discordgo methods we use, enabling test mocks.
type discordSession interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordNotifier posts conflict digests to a Discord channel over the REST
// API. No gateway connection is held open; each Notify is a single call.
type DiscordNotifier struct {
	sess      discordSession
	channelID string
}

// NewDiscord creates a DiscordNotifier using a bot token.
func NewDiscord(botToken, channelID string) (*DiscordNotifier, error) {
	sess, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("notify: discord session: %w", err)
	}
	return &DiscordNotifier{sess: sess, channelID: channelID}, nil
}

// Notify posts the subject and body as one message.
func (d *DiscordNotifier) Notify(subject, body string) error {
	content := "**" + subject + "**"
	if body != "" {
		content += "\n" + body
	}
	if _, err := d.sess.ChannelMessageSend(d.channelID, content); err != nil {
		return fmt.Errorf("notify: discord post to %s: %w", d.channelID, err)
	}
	return nil
}
