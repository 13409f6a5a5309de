package shutdown

import (
	"context"
	"os"
	"sync"

	"go.uber.org/zap"
)

// InterruptMessage is logged when a shutdown signal arrives.
const InterruptMessage = "Interrupt detected; stopping MAC rotation and exiting..."

// Handler cancels the application context when a shutdown signal is received.
type Handler struct {
	// appCtx is the application context; the listener exits once it is done.
	appCtx       context.Context
	appCtxCancel context.CancelFunc
	// 1-sized buffer: os/signal does non-blocking sends and drops signals on a full channel.
	signalChan chan os.Signal
	once       sync.Once
	provider   Provider
	notifier   Notifier
	logger     *zap.Logger
}

func NewHandler(
	appCtx context.Context,
	appCtxCancel context.CancelFunc,
	provider Provider,
	notifier Notifier,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		appCtx:       appCtx,
		appCtxCancel: appCtxCancel,
		signalChan:   make(chan os.Signal, 1),
		provider:     provider,
		notifier:     notifier,
		logger:       logger,
	}
}

// Handle subscribes to shutdown signals and starts the listener. Calls after the first are no-ops.
func (h *Handler) Handle() {
	h.once.Do(func() {
		h.notifier.Notify(h.signalChan, h.provider.ShutdownSignals()...)
		go h.listen()
	})
}

func (h *Handler) listen() {
	defer h.notifier.Stop(h.signalChan)

	select {
	case sig := <-h.signalChan:
		h.logger.Info(InterruptMessage, zap.Stringer("signal", sig))
		h.appCtxCancel()
	case <-h.appCtx.Done():
	}
}
