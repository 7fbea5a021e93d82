package core

import "github.com/dkeye/ShareBridge/internal/domain"

type PushFailureAction int

const (
	// FallbackToStore detaches the failed channel and keeps the value for pull.
	FallbackToStore PushFailureAction = iota
	// DropShare forgets the value.
	DropShare
)

// PushPolicy decides what happens to a share whose immediate push failed.
type PushPolicy interface {
	OnPushFailed(content domain.SharedContent, err error) PushFailureAction
}

type FallbackPolicy struct{}

func (FallbackPolicy) OnPushFailed(domain.SharedContent, error) PushFailureAction {
	return FallbackToStore
}

type DropPolicy struct{}

func (DropPolicy) OnPushFailed(domain.SharedContent, error) PushFailureAction {
	return DropShare
}

// PolicyByName maps the config value to a policy. Unknown names fall back.
func PolicyByName(name string) PushPolicy {
	if name == "drop" {
		return DropPolicy{}
	}
	return FallbackPolicy{}
}
