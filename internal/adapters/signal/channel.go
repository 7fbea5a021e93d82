package signal

import (
	"fmt"

	"github.com/dkeye/ShareBridge/internal/core"
	"github.com/dkeye/ShareBridge/internal/domain"
)

// shareEndpoint is the UI runtime side of the named channel as the bridge
// sees it: pushes become sharedUrl invoke frames on the signal connection.
type shareEndpoint struct {
	conn core.SignalConnection
}

func NewShareEndpoint(conn core.SignalConnection) core.ShareChannel {
	return &shareEndpoint{conn: conn}
}

func (e *shareEndpoint) SharedURL(content domain.SharedContent) error {
	frame, err := encodeSharedURL(content)
	if err != nil {
		return fmt.Errorf("encode %s: %w", domain.MethodSharedURL, err)
	}
	if err := e.conn.TrySend(frame); err != nil {
		return fmt.Errorf("push %s: %w", domain.MethodSharedURL, err)
	}
	return nil
}
