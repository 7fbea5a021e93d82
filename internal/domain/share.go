// Package domain contains share payloads and events without logic beyond matching.
package domain

import (
	"errors"
	"strings"
)

const (
	ActionSend    = "android.intent.action.SEND"
	MimeTextPlain = "text/plain"
)

// ChannelName is shared by both ends of the UI runtime channel.
const (
	ChannelName               = "app/share_intent"
	MethodGetInitialSharedURL = "getInitialSharedUrl"
	MethodSharedURL           = "sharedUrl"
)

var ErrUnknownLifecycle = errors.New("unknown lifecycle")

// SharedContent is the raw shared text.
type SharedContent string

// ShareEvent is what the host hands over for a single share intent.
// A nil Text means the text extra was absent.
type ShareEvent struct {
	Action   string
	MimeType string
	Text     *string
}

// NewTextShare is a tiny helper for the only supported event shape.
func NewTextShare(text string) ShareEvent {
	return ShareEvent{Action: ActionSend, MimeType: MimeTextPlain, Text: &text}
}

// Content returns the payload if the event is a plain-text send with a text extra.
func (e ShareEvent) Content() (SharedContent, bool) {
	if e.Action != ActionSend || e.MimeType != MimeTextPlain {
		return "", false
	}
	if e.Text == nil {
		return "", false
	}
	return SharedContent(*e.Text), true
}

type Lifecycle int

const (
	LifecycleCreateOrResume Lifecycle = iota
	LifecycleNewIntent
)

func (l Lifecycle) String() string {
	switch l {
	case LifecycleCreateOrResume:
		return "create_or_resume"
	case LifecycleNewIntent:
		return "new_intent"
	default:
		return "unknown"
	}
}

// ParseLifecycle maps the intake field to a Lifecycle. Empty means new_intent.
func ParseLifecycle(raw string) (Lifecycle, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "new_intent", "new":
		return LifecycleNewIntent, nil
	case "create_or_resume", "create", "resume":
		return LifecycleCreateOrResume, nil
	default:
		return 0, ErrUnknownLifecycle
	}
}
