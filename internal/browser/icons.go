package browser

import (
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Icon keys are ordered candidate names for the host's themed-icon lookup.
// The core only derives names; resolving them to an image is the icon
// collaborator's job.
const (
	// ErrorIconKey is used when an entry could not be classified.
	ErrorIconKey = "error"
	// UpIconKey is the fixed key for the parent entry.
	UpIconKey = "go-up"
)

var directoryIconKeys = []string{"folder", "inode-directory"}

// IconKeysFor returns the candidate icon names for an entry, most specific
// first.
func IconKeysFor(e Entry) []string {
	if e.Path == "" {
		return []string{ErrorIconKey}
	}

	switch e.Kind {
	case KindUp:
		return []string{UpIconKey}
	case KindDirectory:
		return directoryIconKeys
	}

	// Unknown entries (stdin listings) may still be directories.
	if e.Kind == KindUnknown {
		if info, err := os.Stat(e.Path); err == nil && info.IsDir() {
			return directoryIconKeys
		}
	}

	ct := contentType(e.Path)
	if ct == "" {
		return []string{ErrorIconKey}
	}
	return mimeIconKeys(ct)
}

// contentType determines a file's mime type, by extension first and by
// content sniffing otherwise. Returns "" when neither works.
func contentType(path string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); ct != "" {
		return trimParams(ct)
	}

	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		return ""
	}
	return trimParams(http.DetectContentType(buf[:n]))
}

func trimParams(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(ct)
}

// mimeIconKeys converts "major/minor" into freedesktop themed icon names:
// the specific name first, then the generic per-class fallback.
func mimeIconKeys(ct string) []string {
	specific := strings.ReplaceAll(ct, "/", "-")
	major, _, ok := strings.Cut(ct, "/")
	if !ok {
		return []string{specific}
	}
	return []string{specific, major + "-x-generic"}
}
