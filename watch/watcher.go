// Package watch feeds PDF files appearing in a directory to a
// callback.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rjeczalik/notify"
	"github.com/sirupsen/logrus"
)

// Watcher calls OnFile for every PDF file that is placed in Dir. Files
// already present when Run starts are reported first.
type Watcher struct {
	Dir string

	OnFile func(filename string)

	// OnStartWatching is called once the watcher has subscribed to the
	// directory change events.
	OnStartWatching func()

	log logrus.FieldLogger
}

const defaultEventChanBuf = 20

// SetLogger updates the logger to use.
func (w *Watcher) SetLogger(logger logrus.FieldLogger) {
	w.log = logger.WithField("component", "watcher")
}

// Run starts the watcher, it terminates when ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if w.log == nil {
		w.SetLogger(logrus.StandardLogger())
	}

	// report all pre-existing files
	entries, err := os.ReadDir(w.Dir)
	if err != nil {
		return fmt.Errorf("readdir %v: %w", w.Dir, err)
	}

	if len(entries) > 0 {
		w.log.Infof("process %d pre-existing files in %v", len(entries), w.Dir)
	}

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		w.emit(filepath.Join(w.Dir, entry.Name()))
	}

	ch := make(chan notify.EventInfo, defaultEventChanBuf)

	// watch for events fired after creating files
	err = watchDir(w.Dir, ch)
	if err != nil {
		return fmt.Errorf("watch %v failed: %w", w.Dir, err)
	}

	defer notify.Stop(ch)

	if w.OnStartWatching != nil {
		w.OnStartWatching()
	}

	w.log.Infof("watching for new files in %v", w.Dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-ch:
			if !ok {
				return nil
			}

			w.emit(ev.Path())
		}
	}
}

// emit passes filename to the callback, non-PDF files are skipped.
func (w *Watcher) emit(filename string) {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		w.log.Debugf("ignore non-pdf file %v", filename)

		return
	}

	w.OnFile(filename)
}
