package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

// ShellNotifier runs a shell command template per notification,
// e.g. "notify-send 'Airboss' '{{.Subject}}'".
type ShellNotifier struct {
	Command string
}

// Notify substitutes the subject and body into the command template and
// runs it through sh.
func (s *ShellNotifier) Notify(subject, body string) error {
	if s.Command == "" {
		return nil
	}
	cmdStr := strings.NewReplacer(
		"{{.Subject}}", subject,
		"{{.Body}}", body,
	).Replace(s.Command)

	cmd := exec.Command("sh", "-c", cmdStr)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("notify: command failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// FromConfigParts assembles a Multi notifier from the configured channels.
// Empty settings produce an empty Multi, which is a no-op.
func FromConfigParts(slackToken, slackChannel, discordToken, discordChannel, command string) (Multi, error) {
	var notifiers Multi
	if slackToken != "" {
		notifiers = append(notifiers, NewSlack(slackToken, slackChannel))
	}
	if discordToken != "" {
		d, err := NewDiscord(discordToken, discordChannel)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, d)
	}
	if command != "" {
		notifiers = append(notifiers, &ShellNotifier{Command: command})
	}
	return notifiers, nil
}
