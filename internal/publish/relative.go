package publish

import (
	"path"
	"strings"
)

// RelativeURL computes the shortest relative path from one root-relative URL to another.
// Directory URLs (trailing slash) are honoured on both sides; hash, when set, includes its "#".
func RelativeURL(from, to, hash string) string {
	if from == to {
		switch {
		case hash != "":
			return hash
		case isDir(to):
			return "./"
		default:
			return path.Base(to)
		}
	}
	rel := relativePath(path.Dir(from+"."), to)
	if isDir(to) {
		if rel == "" {
			rel = "."
		}
		return rel + "/" + hash
	}
	return rel + hash
}

func isDir(u string) bool {
	return strings.HasSuffix(u, "/")
}

func relativePath(fromDir, to string) string {
	fromSegs, toSegs := segments(fromDir), segments(to)
	common := 0
	for common < len(fromSegs) && common < len(toSegs) && fromSegs[common] == toSegs[common] {
		common++
	}
	parts := make([]string, 0, len(fromSegs)-common+len(toSegs)-common)
	for range len(fromSegs) - common {
		parts = append(parts, "..")
	}
	parts = append(parts, toSegs[common:]...)
	return strings.Join(parts, "/")
}

func segments(p string) []string {
	p = strings.Trim(path.Clean("/"+p), "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
