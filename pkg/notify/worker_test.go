package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/meditations/pkg/bridge"
	"github.com/umputun/meditations/pkg/domain"
	"github.com/umputun/meditations/pkg/notify/mocks"
)

func testCollection(n int) *domain.Collection {
	items := make([]domain.Meditation, n)
	for i := range items {
		items[i] = domain.Meditation{ID: i + 1, Text: "meditation text"}
	}
	return &domain.Collection{Items: items}
}

// fakeClient and fakeClients stand in for open client sessions; the real
// implementations live on the client surface, outside this process
type fakeClient struct {
	url     string
	focused int
}

func (c *fakeClient) URL() string                 { return c.url }
func (c *fakeClient) Focus(context.Context) error { c.focused++; return nil }

type fakeClients struct {
	clients []Client
	opened  []string
	listed  int
}

func (c *fakeClients) List(context.Context) []Client { c.listed++; return c.clients }
func (c *fakeClients) OpenWindow(_ context.Context, url string) error {
	c.opened = append(c.opened, url)
	return nil
}

func TestWorker_ShowDaily(t *testing.T) {
	content := &mocks.ContentSourceMock{
		LoadFunc: func(ctx context.Context) (*domain.Collection, error) {
			c := testCollection(5)
			c.Items[3].Text = "You have power over your mind - not outside events."
			return c, nil
		},
	}
	notifier := &mocks.NotifierMock{
		ShowFunc: func(ctx context.Context, n domain.Notification) error { return nil },
	}

	w := NewWorker(bridge.New(1, time.Second), content, notifier, nil, WorkerConfig{BasePath: "/meditations/"})
	// 2024-06-15 hashes to index 3 with 5 items
	w.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }

	require.NoError(t, w.ShowDaily(context.Background()))

	require.Len(t, notifier.ShowCalls(), 1)
	n := notifier.ShowCalls()[0].N
	assert.Equal(t, "Meditation of the Day", n.Title)
	assert.Equal(t, "You have power over your mind - not outside events.", n.Body)
	assert.Equal(t, NotificationTag, n.Tag)
	assert.True(t, n.Renotify)
	assert.Equal(t, "/meditations/", n.Data.URL)
	assert.Equal(t, 4, n.Data.ContentID)
	require.Len(t, n.Actions, 2)
	assert.Equal(t, ActionOpen, n.Actions[0].ID)
	assert.Equal(t, ActionDismiss, n.Actions[1].ID)
}

func TestWorker_ShowDaily_StableWithinDay(t *testing.T) {
	content := &mocks.ContentSourceMock{
		LoadFunc: func(ctx context.Context) (*domain.Collection, error) { return testCollection(30), nil },
	}

	var shown []int
	notifier := &mocks.NotifierMock{
		ShowFunc: func(ctx context.Context, n domain.Notification) error {
			shown = append(shown, n.Data.ContentID)
			return nil
		},
	}

	w := NewWorker(bridge.New(1, time.Second), content, notifier, nil, WorkerConfig{BasePath: "/"})

	for _, hour := range []int{0, 8, 23} {
		w.now = func() time.Time { return time.Date(2024, 3, 10, hour, 30, 0, 0, time.UTC) }
		require.NoError(t, w.ShowDaily(context.Background()))
	}

	require.Len(t, shown, 3)
	assert.Equal(t, shown[0], shown[1], "same meditation all day")
	assert.Equal(t, shown[1], shown[2])
}

func TestWorker_ShowDaily_EmptyCollection(t *testing.T) {
	content := &mocks.ContentSourceMock{
		LoadFunc: func(ctx context.Context) (*domain.Collection, error) { return &domain.Collection{}, nil },
	}
	notifier := &mocks.NotifierMock{
		ShowFunc: func(ctx context.Context, n domain.Notification) error { return nil },
	}

	w := NewWorker(bridge.New(1, time.Second), content, notifier, nil, WorkerConfig{})

	err := w.ShowDaily(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty collection")
	assert.Empty(t, notifier.ShowCalls())
}

func TestWorker_ShowDaily_LoadFailure(t *testing.T) {
	content := &mocks.ContentSourceMock{
		LoadFunc: func(ctx context.Context) (*domain.Collection, error) { return nil, assert.AnError },
	}
	notifier := &mocks.NotifierMock{
		ShowFunc: func(ctx context.Context, n domain.Notification) error { return nil },
	}

	w := NewWorker(bridge.New(1, time.Second), content, notifier, nil, WorkerConfig{})

	err := w.ShowDaily(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load collection")
}

func TestWorker_Run_ShowMessage(t *testing.T) {
	b := bridge.New(4, time.Second)
	content := &mocks.ContentSourceMock{
		LoadFunc: func(ctx context.Context) (*domain.Collection, error) { return testCollection(3), nil },
	}

	shown := make(chan domain.Notification, 1)
	notifier := &mocks.NotifierMock{
		ShowFunc: func(ctx context.Context, n domain.Notification) error {
			shown <- n
			return nil
		},
	}

	w := NewWorker(b, content, notifier, nil, WorkerConfig{BasePath: "/"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx)
	}()

	require.NoError(t, b.Post(ctx, bridge.Message{Kind: bridge.KindShowNotification}))

	select {
	case n := <-shown:
		assert.Equal(t, NotificationTag, n.Tag)
	case <-time.After(time.Second):
		t.Fatal("notification never shown")
	}

	cancel()
	<-done
}

func TestWorker_Run_ScheduleAcked(t *testing.T) {
	b := bridge.New(4, time.Second)
	w := NewWorker(b, &mocks.ContentSourceMock{}, &mocks.NotifierMock{}, nil, WorkerConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx)
	}()

	ack, err := b.Request(ctx, bridge.Message{
		Kind:     bridge.KindScheduleNotification,
		Schedule: &bridge.SchedulePayload{Hour: 9, Minute: 15, Enabled: true},
	})
	require.NoError(t, err)
	assert.True(t, ack.Success)

	cancel()
	<-done
}

func TestWorker_Run_ShowAcked(t *testing.T) {
	b := bridge.New(4, time.Second)
	content := &mocks.ContentSourceMock{
		LoadFunc: func(ctx context.Context) (*domain.Collection, error) { return testCollection(3), nil },
	}
	notifier := &mocks.NotifierMock{
		ShowFunc: func(ctx context.Context, n domain.Notification) error { return nil },
	}

	w := NewWorker(b, content, notifier, nil, WorkerConfig{BasePath: "/"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx)
	}()

	ack, err := b.Request(ctx, bridge.Message{Kind: bridge.KindShowNotification})
	require.NoError(t, err)
	assert.True(t, ack.Success)
	assert.Len(t, notifier.ShowCalls(), 1)

	cancel()
	<-done
}

func TestWorker_Run_ShowFailureNacked(t *testing.T) {
	b := bridge.New(4, time.Second)
	content := &mocks.ContentSourceMock{
		LoadFunc: func(ctx context.Context) (*domain.Collection, error) { return nil, assert.AnError },
	}
	notifier := &mocks.NotifierMock{
		ShowFunc: func(ctx context.Context, n domain.Notification) error { return nil },
	}

	w := NewWorker(b, content, notifier, nil, WorkerConfig{BasePath: "/"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx)
	}()

	ack, err := b.Request(ctx, bridge.Message{Kind: bridge.KindShowNotification})
	require.NoError(t, err)
	assert.False(t, ack.Success)
	assert.Contains(t, ack.Reason, "load collection")
	assert.Empty(t, notifier.ShowCalls())

	cancel()
	<-done
}

func TestWorker_Run_StopsOnBridgeClose(t *testing.T) {
	b := bridge.New(4, time.Second)
	w := NewWorker(b, &mocks.ContentSourceMock{}, &mocks.NotifierMock{}, nil, WorkerConfig{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(context.Background())
	}()

	b.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on bridge close")
	}
}

func TestWorker_HandleClick_Dismiss(t *testing.T) {
	clients := &fakeClients{}

	w := NewWorker(bridge.New(1, time.Second), nil, nil, clients, WorkerConfig{BasePath: "/"})

	err := w.HandleClick(context.Background(), ActionDismiss, domain.NotificationData{URL: "/meditations/"})
	assert.NoError(t, err)
	assert.Zero(t, clients.listed, "dismiss must not touch clients")
	assert.Empty(t, clients.opened)
}

func TestWorker_HandleClick_FocusesExisting(t *testing.T) {
	inScope := &fakeClient{url: "/meditations/today"}
	outOfScope := &fakeClient{url: "/other-app/"}
	clients := &fakeClients{clients: []Client{outOfScope, inScope}}

	w := NewWorker(bridge.New(1, time.Second), nil, nil, clients, WorkerConfig{BasePath: "/meditations/"})

	err := w.HandleClick(context.Background(), ActionOpen, domain.NotificationData{URL: "/meditations/"})
	require.NoError(t, err)
	assert.Equal(t, 1, inScope.focused)
	assert.Zero(t, outOfScope.focused, "out-of-scope session must not be focused")
	assert.Empty(t, clients.opened, "should focus, not open")
}

func TestWorker_HandleClick_OpensWhenNoSession(t *testing.T) {
	clients := &fakeClients{}

	w := NewWorker(bridge.New(1, time.Second), nil, nil, clients, WorkerConfig{BasePath: "/meditations/"})

	err := w.HandleClick(context.Background(), "", domain.NotificationData{URL: "/meditations/today"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/meditations/today"}, clients.opened)
}

func TestWorker_HandleClick_FallsBackToBasePath(t *testing.T) {
	clients := &fakeClients{}

	w := NewWorker(bridge.New(1, time.Second), nil, nil, clients, WorkerConfig{BasePath: "/meditations/"})

	err := w.HandleClick(context.Background(), ActionOpen, domain.NotificationData{})
	require.NoError(t, err)
	assert.Equal(t, []string{"/meditations/"}, clients.opened)
}
