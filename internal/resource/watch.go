package resource

import (
	"fmt"

	"github.com/libstappler/libstappler-core-sub003/internal/runtime/vfs"
)

// WatchRemovable returns an fsnotify-backed watcher on cat's paths, for
// rows flagged Removable, so a caller can react to a mount disappearing,
// built directly on internal/runtime/vfs's FSNotifyWatcher.
func (t *Table) WatchRemovable(cat FileCategory) (vfs.Watcher, error) {
	if cat < 0 || cat >= categoryCount {
		return nil, fmt.Errorf("resource: invalid category %d", cat)
	}
	res := t.row(cat)
	if res.Flags&Removable == 0 {
		return nil, fmt.Errorf("resource: category %s is not marked Removable", cat)
	}
	w, err := vfs.NewFSWatcher()
	if err != nil {
		return nil, err
	}
	for _, e := range res.Paths {
		if err := w.Add(e.path); err != nil {
			w.Close()
			return nil, err
		}
	}
	return w, nil
}
