package shutdown

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type mockNotifier struct {
	mu            sync.Mutex
	notifyCalled  int32
	stopCalled    int32
	notifyChan    chan<- os.Signal
	stopChan      chan<- os.Signal
	notifySignals []os.Signal
}

func (m *mockNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	atomic.AddInt32(&m.notifyCalled, 1)
	m.notifyChan = c
	m.notifySignals = sig
}

func (m *mockNotifier) Stop(c chan<- os.Signal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	atomic.AddInt32(&m.stopCalled, 1)
	m.stopChan = c
}

type mockProvider struct {
	signals []os.Signal
}

func (p *mockProvider) ShutdownSignals() []os.Signal {
	return p.signals
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name            string
		callHandleTwice bool
		trigger         func(notifier *mockNotifier, baseCancel context.CancelFunc)
		wantCancelCalls int32
		wantLogged      bool
	}{
		{
			name: "interrupt triggers cancellation",
			trigger: func(notifier *mockNotifier, _ context.CancelFunc) {
				notifier.notifyChan <- os.Interrupt
			},
			wantCancelCalls: 1,
			wantLogged:      true,
		},
		{
			name: "SIGTERM triggers cancellation",
			trigger: func(notifier *mockNotifier, _ context.CancelFunc) {
				notifier.notifyChan <- syscall.SIGTERM
			},
			wantCancelCalls: 1,
			wantLogged:      true,
		},
		{
			name: "context cancelled before signal",
			trigger: func(_ *mockNotifier, baseCancel context.CancelFunc) {
				baseCancel()
			},
		},
		{
			name:            "handle is idempotent",
			callHandleTwice: true,
			trigger: func(_ *mockNotifier, baseCancel context.CancelFunc) {
				baseCancel()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			notifier := &mockNotifier{}
			provider := &mockProvider{signals: []os.Signal{os.Interrupt}}

			ctx, baseCancel := context.WithCancel(context.Background())
			defer baseCancel()

			var cancelCalled int32
			wrappedCancel := func() {
				atomic.AddInt32(&cancelCalled, 1)
				baseCancel()
			}

			h := NewHandler(ctx, wrappedCancel, provider, notifier, zap.New(core))
			h.Handle()
			if tt.callHandleTwice {
				h.Handle()
			}

			require.Equal(t, int32(1), atomic.LoadInt32(&notifier.notifyCalled))
			require.NotNil(t, notifier.notifyChan)
			assert.Equal(t, []os.Signal{os.Interrupt}, notifier.notifySignals)

			tt.trigger(notifier, baseCancel)

			require.Eventually(t, func() bool {
				return atomic.LoadInt32(&notifier.stopCalled) == 1
			}, time.Second, 5*time.Millisecond)

			assert.Equal(t, tt.wantCancelCalls, atomic.LoadInt32(&cancelCalled))
			notifier.mu.Lock()
			assert.Equal(t, notifier.notifyChan, notifier.stopChan)
			notifier.mu.Unlock()

			logged := logs.FilterMessage(InterruptMessage).Len()
			if tt.wantLogged {
				assert.Equal(t, 1, logged)
			} else {
				assert.Zero(t, logged)
			}
		})
	}
}

func TestDefaultProvider_ShutdownSignals(t *testing.T) {
	got := NewDefaultProvider().ShutdownSignals()
	assert.Equal(t, []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}, got)
}

func TestSignalNotifier_NotifyAndStop(t *testing.T) {
	n := NewSignalNotifier()
	ch := make(chan os.Signal, 1)

	n.Notify(ch, os.Interrupt)
	n.Stop(ch)
}
