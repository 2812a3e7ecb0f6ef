package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reports prefab and script files that change on disk. Events carry
// the changed path; bursts of writes to one file are reported once.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches root and its levels and scripts subdirectories when
// they exist.
func NewWatcher(root string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(root); err != nil {
		_ = w.Close()
		return nil, err
	}
	for _, sub := range []string{"levels", "scripts"} {
		// optional; the embedded copies cover missing dirs
		_ = w.Add(filepath.Join(root, sub))
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSpecFile(event.Name) && !isScriptFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}

// ChangeKind classifies a changed path.
type ChangeKind int

const (
	ChangeOther ChangeKind = iota
	ChangePlayer
	ChangeMood
	ChangeWeapons
	ChangeEnemy
	ChangeLevel
	ChangeShakes
	ChangeSounds
	ChangeScript
)

func Classify(path string) ChangeKind {
	if isScriptFile(path) {
		return ChangeScript
	}
	if !isSpecFile(path) {
		return ChangeOther
	}
	if filepath.Base(filepath.Dir(path)) == "levels" {
		return ChangeLevel
	}
	switch strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) {
	case "player":
		return ChangePlayer
	case "mood":
		return ChangeMood
	case "weapons":
		return ChangeWeapons
	case "enemy":
		return ChangeEnemy
	case "shakes":
		return ChangeShakes
	case "sounds":
		return ChangeSounds
	}
	return ChangeOther
}
