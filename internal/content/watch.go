package content

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher rebuilds the content artifacts whenever a collection directory
// changes. Rapid editor saves are debounced into a single rebuild.
type Watcher struct {
	paths    Paths
	onBuilt  func()
	debounce time.Duration

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	timer   *time.Timer
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher creates a Watcher for the given build paths. onBuilt, if
// non-nil, runs after every successful rebuild (the server uses it to reload
// its catalog store).
func NewWatcher(paths Paths, onBuilt func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		paths:    paths,
		onBuilt:  onBuilt,
		debounce: 500 * time.Millisecond,
		watcher:  fw,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching both content directories. Non-blocking; a missing
// directory is tolerated since content may not be staged yet.
func (w *Watcher) Start() error {
	for _, dir := range []string{w.paths.ProductsDir, w.paths.CatchesDir} {
		if err := w.watcher.Add(dir); err != nil {
			log.Printf("[content] watch: cannot watch %s: %v", dir, err)
		}
	}

	go w.loop()
	return nil
}

// Stop shuts the watcher down and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	close(w.stopCh)
	err := w.watcher.Close()
	<-w.doneCh
	return err
}

func (w *Watcher) loop() {
	defer close(w.doneCh)

	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".json") {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[content] watch error: %v", err)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.rebuild)
}

func (w *Watcher) rebuild() {
	log.Printf("[content] change detected — rebuilding")
	if err := BuildAll(w.paths); err != nil {
		log.Printf("[content] rebuild failed: %v", err)
		return
	}
	if w.onBuilt != nil {
		w.onBuilt()
	}
}
