package signal

import (
	"github.com/dkeye/ShareBridge/internal/core"
	"github.com/dkeye/ShareBridge/internal/domain"
	"github.com/goccy/go-json"
)

const (
	TypeInvoke         = "invoke"
	TypeResult         = "result"
	TypeNotImplemented = "not_implemented"
	TypeError          = "error"
	TypePing           = "ping"
	TypePong           = "pong"
)

// inbound is anything the UI runtime sends on the channel.
type inbound struct {
	Type    string          `json:"type"`
	ID      int64           `json:"id,omitempty"`
	Channel string          `json:"channel,omitempty"`
	Method  string          `json:"method,omitempty"`
	Args    json.RawMessage `json:"args,omitempty"`
}

// methodResult answers an invoke. Result is null when nothing is available.
type methodResult struct {
	Type    string  `json:"type"`
	ID      int64   `json:"id"`
	Channel string  `json:"channel"`
	Method  string  `json:"method"`
	Result  *string `json:"result"`
}

// sharedURLPush is the one-way bridge -> UI runtime call.
type sharedURLPush struct {
	Type    string `json:"type"`
	Channel string `json:"channel"`
	Method  string `json:"method"`
	Args    string `json:"args"`
}

type errorReply struct {
	Type  string `json:"type"`
	ID    int64  `json:"id,omitempty"`
	Error string `json:"error"`
}

func decodeInbound(data []byte) (inbound, error) {
	var in inbound
	err := json.Unmarshal(data, &in)
	return in, err
}

func encodeSharedURL(content domain.SharedContent) (core.Frame, error) {
	return json.Marshal(sharedURLPush{
		Type:    TypeInvoke,
		Channel: domain.ChannelName,
		Method:  domain.MethodSharedURL,
		Args:    string(content),
	})
}

func newResult(id int64, method string, v domain.SharedContent, ok bool) methodResult {
	res := methodResult{Type: TypeResult, ID: id, Channel: domain.ChannelName, Method: method}
	if ok {
		s := string(v)
		res.Result = &s
	}
	return res
}
