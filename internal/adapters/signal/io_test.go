package signal

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dkeye/ShareBridge/internal/app"
	"github.com/dkeye/ShareBridge/internal/app/orch"
	"github.com/dkeye/ShareBridge/internal/core"
	"github.com/dkeye/ShareBridge/internal/core/mock"
	"github.com/dkeye/ShareBridge/internal/domain"
)

func newController(t *testing.T) *SignalWSController {
	t.Helper()
	o := &orch.Orchestrator{
		Bridge:   core.NewBridge(core.NewPendingStore(), core.FallbackPolicy{}),
		Looper:   app.NewLooper(8),
		Registry: app.NewRegistry(),
	}
	ctx, cancel := context.WithCancel(context.Background())
	go o.Looper.Run(ctx)
	t.Cleanup(cancel)
	return NewSignalWSController(o, Options{})
}

// capture records every frame sent to the mock connection.
func capture(t *testing.T) (*mock.MockSignalConnection, *[]map[string]any) {
	t.Helper()
	ctrl := gomock.NewController(t)
	conn := mock.NewMockSignalConnection(ctrl)
	var frames []map[string]any
	conn.EXPECT().TrySend(gomock.Any()).DoAndReturn(func(f core.Frame) error {
		var m map[string]any
		require.NoError(t, json.Unmarshal(f, &m))
		frames = append(frames, m)
		return nil
	}).AnyTimes()
	return conn, &frames
}

func invoke(id int, method string) []byte {
	b, _ := json.Marshal(map[string]any{
		"type":    "invoke",
		"id":      id,
		"channel": domain.ChannelName,
		"method":  method,
	})
	return b
}

func TestHandleInvokeGetInitialSharedURL(t *testing.T) {
	ctl := newController(t)
	ctx := context.Background()
	require.NoError(t, ctl.Orch.Deliver(ctx, domain.LifecycleCreateOrResume, domain.NewTextShare("hello")))

	conn, frames := capture(t)
	ctl.handleSignal(ctx, "sid", conn, invoke(1, domain.MethodGetInitialSharedURL))
	ctl.handleSignal(ctx, "sid", conn, invoke(2, domain.MethodGetInitialSharedURL))

	require.Len(t, *frames, 2)
	first, second := (*frames)[0], (*frames)[1]
	assert.Equal(t, "result", first["type"])
	assert.EqualValues(t, 1, first["id"])
	assert.Equal(t, "hello", first["result"])

	assert.Equal(t, "result", second["type"])
	assert.EqualValues(t, 2, second["id"])
	v, present := second["result"]
	assert.True(t, present, "absent result is an explicit null")
	assert.Nil(t, v)
}

func TestHandleInvokeUnknownMethod(t *testing.T) {
	ctl := newController(t)
	conn, frames := capture(t)

	ctl.handleSignal(context.Background(), "sid", conn, invoke(9, "share"))

	require.Len(t, *frames, 1)
	assert.Equal(t, "not_implemented", (*frames)[0]["type"])
	assert.Equal(t, "share", (*frames)[0]["method"])
	assert.EqualValues(t, 9, (*frames)[0]["id"])
}

func TestHandleInvokeUnknownChannel(t *testing.T) {
	ctl := newController(t)
	conn, frames := capture(t)

	msg := []byte(`{"type":"invoke","id":3,"channel":"other","method":"getInitialSharedUrl"}`)
	ctl.handleSignal(context.Background(), "sid", conn, msg)

	require.Len(t, *frames, 1)
	assert.Equal(t, "error", (*frames)[0]["type"])
	assert.Equal(t, "unknown_channel", (*frames)[0]["error"])
}

func TestHandleSignalPingAndBadJSON(t *testing.T) {
	ctl := newController(t)
	conn, frames := capture(t)

	ctl.handleSignal(context.Background(), "sid", conn, []byte(`{"type":"ping"}`))
	ctl.handleSignal(context.Background(), "sid", conn, []byte(`{nope`))
	ctl.handleSignal(context.Background(), "sid", conn, []byte(`{"type":"whatever"}`))

	require.Len(t, *frames, 2)
	assert.Equal(t, "pong", (*frames)[0]["type"])
	assert.Equal(t, "bad_payload", (*frames)[1]["error"])
}

func TestShareEndpointEncodesPush(t *testing.T) {
	conn, frames := capture(t)
	ep := NewShareEndpoint(conn)

	require.NoError(t, ep.SharedURL("world"))
	require.Len(t, *frames, 1)
	assert.Equal(t, map[string]any{
		"type":    "invoke",
		"channel": domain.ChannelName,
		"method":  domain.MethodSharedURL,
		"args":    "world",
	}, (*frames)[0])
}

func TestShareEndpointPropagatesBackpressure(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mock.NewMockSignalConnection(ctrl)
	conn.EXPECT().TrySend(gomock.Any()).Return(ErrBackpressure)

	err := NewShareEndpoint(conn).SharedURL("x")
	assert.ErrorIs(t, err, ErrBackpressure)
}

func TestHandleInvokeReplyFailureKeepsShare(t *testing.T) {
	ctl := newController(t)
	ctx := context.Background()
	require.NoError(t, ctl.Orch.Deliver(ctx, domain.LifecycleCreateOrResume, domain.NewTextShare("hello")))

	ctrl := gomock.NewController(t)
	closed := mock.NewMockSignalConnection(ctrl)
	closed.EXPECT().TrySend(gomock.Any()).Return(ErrConnectionClosed)

	ctl.handleSignal(ctx, "sid", closed, invoke(1, domain.MethodGetInitialSharedURL))

	conn, frames := capture(t)
	ctl.handleSignal(ctx, "sid", conn, invoke(2, domain.MethodGetInitialSharedURL))
	require.Len(t, *frames, 1)
	assert.Equal(t, "hello", (*frames)[0]["result"])
}

func TestHandleInvokeAbsentReplyFailureStoresNothing(t *testing.T) {
	ctl := newController(t)
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	closed := mock.NewMockSignalConnection(ctrl)
	closed.EXPECT().TrySend(gomock.Any()).Return(ErrBackpressure)
	ctl.handleSignal(ctx, "sid", closed, invoke(1, domain.MethodGetInitialSharedURL))

	_, ok, err := ctl.Orch.PullInitialShared(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
