// Package spinning provides a friendly spinning clock (or some other spinning symbols)
// to use while the AI is thinking, along with the time it has been thinking.
package spinning

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"k8s.io/klog/v2"
)

// Spinning displays a spinning symbol and the elapsed time, until Done is called.
type Spinning struct {
	wg     sync.WaitGroup
	cancel func()
	start  time.Time
	out    io.Writer
}

var (
	ThemeAscii = []rune("|/-\\")
	ThemeMoon  = []rune("🌑🌒🌓🌔🌕🌖🌗🌘")
	ThemeClock = []rune("🕐🕑🕒🕓🕔🕕🕖🕗🕘🕙🕚🕛")

	// Theme defaults to ThemeClock, but it can be set to anything else.
	Theme = ThemeClock

	// Interval between updates of the display.
	Interval = 100 * time.Millisecond
)

// SafeInterrupt will capture SigInt (Ctrl+C) and SigTerm and call the provided onInterrupt.
// If the program haven't exited after gracePeriod, it will call Reset to reset the terminal
// and exit.
func SafeInterrupt(onInterrupt func(), gracePeriod time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigChan
		fmt.Println()
		klog.Errorf("Got interrupted (signal %q), shutting down... (%s)", s, gracePeriod)
		if onInterrupt != nil {
			go onInterrupt()
		}

		// Wait for gracePeriod before exiting.
		time.Sleep(gracePeriod)
		Reset()
		klog.Fatalf("Graceful shutting down %s period expired, exiting.", gracePeriod)
	}()
}

// Reset terminal: make cursor visible, restore default terminal colors.
func Reset() {
	fmt.Print("\033[?25h\033[39;49;0m\n") // Restore cursor and colors.
}

// New starts a spinning display on the standard output, that runs on a separate goroutine.
// It stops when Spinning.Done is called, or when ctx is cancelled.
func New(ctx context.Context) *Spinning {
	return NewWithWriter(ctx, os.Stdout)
}

// NewWithWriter is like New, but displays on out.
func NewWithWriter(ctx context.Context, out io.Writer) *Spinning {
	s := &Spinning{start: time.Now(), out: out}
	ctx, s.cancel = context.WithCancel(ctx)
	theme := Theme
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(Interval)
		defer ticker.Stop()
		fmt.Fprint(out, "\033[?25l")       // Hide cursor.
		defer fmt.Fprint(out, "\033[?25h") // Restore cursor.

		fmt.Fprint(out, "\0337") // Save cursor position.
		for idx := 0; ; idx = (idx + 1) % len(theme) {
			elapsed := time.Since(s.start).Truncate(Interval)
			fmt.Fprintf(out, "\0338%c %s\033[0K", theme[idx], elapsed)
			select {
			case <-ctx.Done():
				fmt.Fprint(out, "\0338\033[0K") // Erase the spinner.
				return
			case <-ticker.C:
				// continue
			}
		}
	}()
	return s
}

// Done stops the spinning display, and returns the time elapsed since it started.
// It can be called more than once.
func (s *Spinning) Done() time.Duration {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
	return time.Since(s.start)
}
