package core

import "github.com/dkeye/ShareBridge/internal/domain"

//go:generate mockgen -source=interfaces.go -destination=mock/interfaces_mock.go -package=mock

// Frame is a raw encoded channel message.
type Frame []byte

type SessionID string

// SignalConnection abstracts the UI runtime messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}

// ShareChannel is the bridge -> UI runtime half of the named channel.
// The bridge holds it as a back-reference only; it never closes it.
type ShareChannel interface {
	SharedURL(content domain.SharedContent) error
}
