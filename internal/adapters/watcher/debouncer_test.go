package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/reify/internal/adapters/watcher"
)

type recorder struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recorder) callback(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, paths)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.calls...)
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("/project/b.txt")
		time.Sleep(50 * time.Millisecond)
		d.Add("/project/a.txt")
		time.Sleep(50 * time.Millisecond)
		d.Add("/project/b.txt")

		synctest.Wait()
		assert.Empty(t, rec.snapshot(), "window restarts on every event")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"/project/a.txt", "/project/b.txt"}}, rec.snapshot())
	})
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(watcher.DefaultDebounceWindow, rec.callback)

		d.Add("/one")
		time.Sleep(2 * watcher.DefaultDebounceWindow)
		synctest.Wait()

		d.Add("/two")
		time.Sleep(2 * watcher.DefaultDebounceWindow)
		synctest.Wait()

		assert.Equal(t, [][]string{{"/one"}, {"/two"}}, rec.snapshot())
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("/x")
		d.Stop()

		time.Sleep(time.Second)
		synctest.Wait()
		assert.Empty(t, rec.snapshot())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add("/x")

		assert.NotPanics(t, func() {
			time.Sleep(20 * time.Millisecond)
			synctest.Wait()
		})
	})
}
