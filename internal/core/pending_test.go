package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkeye/ShareBridge/internal/domain"
)

func TestPendingStoreTakeClears(t *testing.T) {
	s := NewPendingStore()
	_, ok := s.Take()
	assert.False(t, ok)

	s.Set("hello")
	assert.True(t, s.Pending())

	v, ok := s.Take()
	assert.True(t, ok)
	assert.Equal(t, domain.SharedContent("hello"), v)
	assert.False(t, s.Pending())

	_, ok = s.Take()
	assert.False(t, ok)
}

func TestPendingStoreLastWriteWins(t *testing.T) {
	s := NewPendingStore()
	s.Set("first")
	s.Set("second")

	v, ok := s.Take()
	assert.True(t, ok)
	assert.Equal(t, domain.SharedContent("second"), v)
}

func TestPendingStoreHoldsEmptyText(t *testing.T) {
	s := NewPendingStore()
	s.Set("")
	v, ok := s.Take()
	assert.True(t, ok)
	assert.Equal(t, domain.SharedContent(""), v)
}
