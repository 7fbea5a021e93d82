package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/ShareBridge/internal/domain"
)

type stubChannel struct{ name string }

func (*stubChannel) SharedURL(domain.SharedContent) error { return nil }

func TestRegistryBindReplaceUnbind(t *testing.T) {
	r := NewRegistry()
	a, b := &stubChannel{"a"}, &stubChannel{"b"}

	_, _, replaced := r.Bind("sid", a, nil)
	assert.False(t, replaced)

	old, _, replaced := r.Bind("sid", b, nil)
	require.True(t, replaced)
	assert.Same(t, a, old)

	assert.False(t, r.Unbind("sid", a), "stale channel must not unbind the new one")
	assert.Equal(t, 1, r.Count())

	assert.True(t, r.Unbind("sid", b))
	assert.Equal(t, 0, r.Count())
}

func TestRegistryCancelAll(t *testing.T) {
	r := NewRegistry()
	ctx1, cancel1 := context.WithCancel(context.Background())
	ctx2, cancel2 := context.WithCancel(context.Background())
	r.Bind("one", &stubChannel{}, cancel1)
	r.Bind("two", &stubChannel{}, cancel2)
	r.Bind("three", &stubChannel{}, nil)

	r.CancelAll()
	assert.Error(t, ctx1.Err())
	assert.Error(t, ctx2.Err())
}
