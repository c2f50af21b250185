package resource

import "strings"

// FileInfo is the value triple a resolver request or result is expressed
// as: a concrete path, the category it resolves under, and the effective
// FileFlags of the entry that produced it.
type FileInfo struct {
	Path     string
	Category FileCategory
	Flags    FileFlags
}

// SerializeReference renders a category-relative path in the canonical
// "<prefix><relative-path>" form. References containing a ".." component
// that would escape the category root are rejected.
func SerializeReference(cat FileCategory, rel string) (string, bool) {
	prefix := resourcePrefix(cat)
	if prefix == "" || isAboveRoot(rel) {
		return "", false
	}
	return prefix + strings.TrimLeft(rel, "/"), true
}

// Info resolves an absolute path back into a FileInfo by detecting the
// category it falls under. A path no category claims reports ok=false.
func (t *Table) Info(path string) (FileInfo, bool) {
	var flags FileFlags
	cat := t.DetectResourceCategory(path, nil)
	if cat == Max || cat == Custom {
		return FileInfo{}, false
	}
	res := t.row(cat)
	for _, e := range res.Paths {
		if strings.HasPrefix(path, e.path) {
			flags = e.flags
			break
		}
	}
	return FileInfo{Path: path, Category: cat, Flags: flags}, true
}
