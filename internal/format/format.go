package format

import "path/filepath"

// SplitPath splits cwd into a parent and final component for display.
// ok is false when cwd has no extractable final component ("", "/", "..");
// callers fall back to rendering cwd verbatim. parent is "" when the final
// component sits directly at the root or has no directory part at all.
// Pure string work — the filesystem is never consulted.
func SplitPath(cwd string) (parent, leaf string, ok bool) {
	if cwd == "" {
		return "", "", false
	}

	clean := filepath.Clean(cwd)
	leaf = filepath.Base(clean)
	if leaf == "/" || leaf == "." || leaf == ".." {
		return "", "", false
	}

	parent = filepath.Dir(clean)
	if parent == "." || parent == "/" {
		parent = ""
	}
	return parent, leaf, true
}

// Percent expresses used as a whole percentage of limit, truncating toward
// zero: 99999 of 200000 is 49, not 50.
func Percent(used, limit int) int {
	return used * 100 / limit
}
