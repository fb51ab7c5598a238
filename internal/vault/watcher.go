package vault

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	pkgLog "plansync/pkg/log"
)

// Watcher reports markdown notes that change under the watched folders.
type Watcher struct {
	l       pkgLog.Logger
	root    string
	dirs    []string
	watcher *fsnotify.Watcher
	changes chan Change
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// NewWatcher watches the given vault-relative folders ("" is the root).
func NewWatcher(l pkgLog.Logger, root string, folders ...string) (*Watcher, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve vault root: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if len(folders) == 0 {
		folders = []string{""}
	}
	dirs := make([]string, 0, len(folders))
	for _, f := range folders {
		dirs = append(dirs, filepath.Join(abs, filepath.FromSlash(strings.Trim(f, "/"))))
	}

	return &Watcher{
		l:       l,
		root:    abs,
		dirs:    dirs,
		watcher: w,
		changes: make(chan Change, 100),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching. Folders that do not exist yet are skipped.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return ErrWatcherActive
	}

	watched := 0
	for _, dir := range w.dirs {
		if err := w.watcher.Add(dir); err != nil {
			w.l.Warnf(ctx, "vault.Watcher: cannot watch %s: %v", dir, err)
			continue
		}
		watched++
	}
	if watched == 0 {
		return fmt.Errorf("no watchable folder among %v", w.dirs)
	}

	w.running = true
	w.wg.Add(1)
	go w.loop(ctx)
	return nil
}

// Stop blocks until the event loop exits, then closes Changes.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.mu.Unlock()

	close(w.done)
	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	w.wg.Wait()
	close(w.changes)
	return nil
}

// Changes emits note changes until Stop.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			change, ok := w.convert(event)
			if !ok {
				continue
			}
			select {
			case w.changes <- change:
			case <-w.done:
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.l.Warnf(ctx, "vault.Watcher: %v", err)
		}
	}
}

func (w *Watcher) convert(event fsnotify.Event) (Change, bool) {
	if !strings.EqualFold(filepath.Ext(event.Name), noteExt) {
		return Change{}, false
	}

	var op Op
	switch {
	case event.Has(fsnotify.Create):
		op = OpCreate
	case event.Has(fsnotify.Write):
		op = OpModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		op = OpDelete
	default:
		return Change{}, false
	}

	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil || strings.HasPrefix(rel, "..") {
		return Change{}, false
	}
	return Change{Path: filepath.ToSlash(rel), Op: op}, true
}
