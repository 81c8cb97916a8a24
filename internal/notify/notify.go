// Package notify delivers conflict digests to operators over Slack,
// Discord, or a shell command hook.
package notify

import (
	"fmt"
	"log"
	"strings"

	"github.com/skyops/airboss/internal/conflict"
)

// Notifier delivers one notification. Implementations are best-effort
// transports; the watch daemon logs failures and keeps scanning.
type Notifier interface {
	Notify(subject, body string) error
}

// Multi fans a notification out to several notifiers. Individual failures
// are logged and do not stop the rest.
type Multi []Notifier

// Notify sends to every notifier in order.
func (m Multi) Notify(subject, body string) error {
	for _, n := range m {
		if err := n.Notify(subject, body); err != nil {
			log.Printf("notify: %v", err)
		}
	}
	return nil
}

// Digest formats a scan's conflicts into a subject and body. High-severity
// conflicts are listed first, each on its own line.
func Digest(conflicts []conflict.Conflict) (subject, body string) {
	high := 0
	for _, c := range conflicts {
		if c.Severity == conflict.SeverityHigh {
			high++
		}
	}
	subject = fmt.Sprintf("Airboss: %d conflicts detected (%d high)", len(conflicts), high)

	var b strings.Builder
	for _, sev := range []conflict.Severity{conflict.SeverityHigh, conflict.SeverityMedium, conflict.SeverityLow} {
		for _, c := range conflicts {
			if c.Severity != sev {
				continue
			}
			fmt.Fprintf(&b, "[%s] %s: %s\n", c.Severity, c.Type, c.Description)
		}
	}
	body = strings.TrimRight(b.String(), "\n")
	return subject, body
}
