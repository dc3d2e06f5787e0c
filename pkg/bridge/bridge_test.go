package bridge

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBridge_Post(t *testing.T) {
	b := New(4, time.Second)

	err := b.Post(context.Background(), Message{Kind: KindShowNotification})
	require.NoError(t, err)

	env := <-b.Receive()
	assert.Equal(t, KindShowNotification, env.Msg.Kind)
}

func TestBridge_Post_Busy(t *testing.T) {
	b := New(1, time.Second)
	ctx := context.Background()

	require.NoError(t, b.Post(ctx, Message{Kind: KindShowNotification}))

	// queue full and nobody draining
	err := b.Post(ctx, Message{Kind: KindShowNotification})
	assert.ErrorIs(t, err, ErrBusy)
}

func TestBridge_Post_UnknownKind(t *testing.T) {
	b := New(4, time.Second)

	err := b.Post(context.Background(), Message{Kind: "SELF_DESTRUCT"})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestBridge_Post_ScheduleWithoutPayload(t *testing.T) {
	b := New(4, time.Second)

	err := b.Post(context.Background(), Message{Kind: KindScheduleNotification})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a schedule payload")
}

func TestBridge_Request(t *testing.T) {
	b := New(4, time.Second)

	done := make(chan struct{})
	go func() {
		defer close(done)
		env := <-b.Receive()
		assert.Equal(t, KindScheduleNotification, env.Msg.Kind)
		require.NotNil(t, env.Msg.Schedule)
		assert.Equal(t, 8, env.Msg.Schedule.Hour)
		env.Reply(Ack{Success: true})
	}()

	ack, err := b.Request(context.Background(), Message{
		Kind:     KindScheduleNotification,
		Schedule: &SchedulePayload{Hour: 8, Minute: 0, Enabled: true},
	})
	require.NoError(t, err)
	assert.True(t, ack.Success)
	<-done
}

func TestBridge_Request_Rejected(t *testing.T) {
	b := New(4, time.Second)

	go func() {
		env := <-b.Receive()
		env.Reply(Ack{Success: false, Reason: "not supported"})
	}()

	ack, err := b.Request(context.Background(), Message{
		Kind:     KindScheduleNotification,
		Schedule: &SchedulePayload{Hour: 8},
	})
	require.NoError(t, err)
	assert.False(t, ack.Success)
	assert.Equal(t, "not supported", ack.Reason)
}

func TestBridge_Request_AckTimeout(t *testing.T) {
	b := New(4, 50*time.Millisecond)

	go func() {
		<-b.Receive() // consume but never reply
	}()

	_, err := b.Request(context.Background(), Message{Kind: KindShowNotification})
	assert.ErrorIs(t, err, ErrAckTimeout)
}

func TestBridge_Request_ContextCanceled(t *testing.T) {
	b := New(4, time.Minute)

	go func() {
		<-b.Receive()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Request(ctx, Message{Kind: KindShowNotification})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBridge_Close(t *testing.T) {
	b := New(4, time.Second)
	b.Close()
	b.Close() // second close is a no-op

	err := b.Post(context.Background(), Message{Kind: KindShowNotification})
	assert.ErrorIs(t, err, ErrClosed)

	_, err = b.Request(context.Background(), Message{Kind: KindShowNotification})
	assert.ErrorIs(t, err, ErrClosed)

	// receive channel closed so a draining loop terminates
	_, ok := <-b.Receive()
	assert.False(t, ok)
}

func TestBridge_Close_RacingPosters(t *testing.T) {
	b := New(1, time.Second)
	ctx := context.Background()

	// posters racing Close must fail with ErrClosed or ErrBusy, never panic
	// on a send to the closed channel
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if err := b.Post(ctx, Message{Kind: KindShowNotification}); err != nil {
					assert.True(t, errors.Is(err, ErrClosed) || errors.Is(err, ErrBusy), "unexpected error: %v", err)
				}
			}
		}()
	}

	go func() {
		for range b.Receive() { // drain until closed
		}
	}()

	time.Sleep(5 * time.Millisecond)
	b.Close()
	wg.Wait()
}

func TestEnvelope_ReplyOnce(t *testing.T) {
	env := &Envelope{Msg: Message{Kind: KindShowNotification}, reply: make(chan Ack, 1)}

	env.Reply(Ack{Success: true})
	env.Reply(Ack{Success: false}) // dropped

	ack := <-env.reply
	assert.True(t, ack.Success)

	select {
	case <-env.reply:
		t.Fatal("second reply should have been dropped")
	default:
	}
}

func TestEnvelope_ReplyWithoutChannel(t *testing.T) {
	env := &Envelope{Msg: Message{Kind: KindShowNotification}}
	assert.NotPanics(t, func() { env.Reply(Ack{Success: true}) })
}
