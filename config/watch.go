package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogfx/g2d"
)

// Watcher reloads a theme file whenever it changes on disk. Reloaded
// configurations are delivered on Configs; decode and read failures
// go to Errors so a running application can keep its last good theme.
type Watcher struct {
	path string
	w    *fsnotify.Watcher
	cfgC chan *Config
	erC  chan error
}

// Watch starts watching path. The file does not have to exist yet;
// its directory does.
func Watch(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory rather than the file so editors that
	// replace the file via rename keep triggering reloads.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	cw := &Watcher{path: path, w: w, cfgC: make(chan *Config, 1), erC: make(chan error, 1)}
	go cw.loop()
	return cw, nil
}

func (cw *Watcher) loop() {
	for {
		select {
		case ev, ok := <-cw.w.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(ev.Name) != filepath.Clean(cw.path) {
				continue
			}
			cfg, err := LoadFile(cw.path)
			if err != nil {
				cw.deliverError(err)
				continue
			}
			g2d.Logger().Debug("theme reloaded", "path", cw.path)
			cw.deliver(cfg)
		case err, ok := <-cw.w.Errors:
			if !ok {
				return
			}
			cw.deliverError(err)
		}
	}
}

// deliver replaces any pending config so the consumer always sees the
// newest one.
func (cw *Watcher) deliver(cfg *Config) {
	for {
		select {
		case cw.cfgC <- cfg:
			return
		default:
			select {
			case <-cw.cfgC:
			default:
			}
		}
	}
}

func (cw *Watcher) deliverError(err error) {
	select {
	case cw.erC <- err:
	default:
	}
}

// Configs delivers reloaded configurations.
func (cw *Watcher) Configs() <-chan *Config { return cw.cfgC }

// Errors delivers read and decode failures.
func (cw *Watcher) Errors() <-chan error { return cw.erC }

// Close stops the watcher.
func (cw *Watcher) Close() error { return cw.w.Close() }
