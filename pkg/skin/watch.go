package skin

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/skinny/pkg/errors"
)

// Watch reloads the skin file at path whenever it changes and passes each
// successfully loaded skin to fn. Files that fail to load are reported
// through errors.Report and skipped, so fn only sees valid skins.
//
// The directory of path is watched rather than the file itself, which keeps
// working when editors replace the file on save. Watching stops when ctx is
// done. fn is called from the watcher goroutine.
func Watch(ctx context.Context, path string, fn func(*Skin)) error {
	path = filepath.Clean(path)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.New("skin.Watch", errors.KindWatch, path, err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return errors.New("skin.Watch", errors.KindWatch, path, err)
	}

	go func() {
		defer w.Close()
		defer errors.Recover("skin.Watch")
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				slog.Debug("skin changed", "path", path, "op", ev.Op.String())
				s, err := Load(path)
				if err != nil {
					report(err, path)
					continue
				}
				fn(s)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				report(err, path)
			}
		}
	}()
	return nil
}

func report(err error, path string) {
	if se, ok := err.(*errors.SkinnyError); ok {
		errors.Report(se)
		return
	}
	errors.Report(errors.New("skin.Watch", errors.KindWatch, path, err))
}
