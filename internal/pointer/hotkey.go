package pointer

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	hook "github.com/robotn/gohook"
)

// ListenStopHotkey blocks until either the key combination is pressed or ctx
// is done. onStop runs once, only for the key press.
func ListenStopHotkey(ctx context.Context, keys []string, onStop func(), logger *slog.Logger) {
	end := sync.OnceFunc(hook.End)

	hook.Register(hook.KeyDown, keys, func(e hook.Event) {
		logger.Info("stop hotkey pressed", slog.String("keys", strings.Join(keys, "+")))
		onStop()
		end()
	})

	s := hook.Start()

	go func() {
		<-ctx.Done()
		end()
	}()

	// Process blocks until hook.End is called.
	<-hook.Process(s)
	logger.Debug("hotkey listener stopped")
}
