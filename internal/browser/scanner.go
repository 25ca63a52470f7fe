package browser

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Yaroslav-95/rofi-file-browser-extended/internal/errors"
	"github.com/Yaroslav-95/rofi-file-browser-extended/internal/log"

	"github.com/gobwas/glob"
)

// UpName is the parent-reference token. The parent entry always carries
// it as its name; any display override happens in the session.
const UpName = ".."

const hiddenPrefix = "."

// ScanOptions configure a Scanner.
type ScanOptions struct {
	// Depth is the number of directory levels below the current
	// directory to scan. 1 lists direct children only; 0 means no limit.
	Depth int
	// OnlyDirs drops regular files from listings.
	OnlyDirs bool
	// OnlyFiles drops directories from listings (they are still
	// descended into on recursive scans).
	OnlyFiles bool
	// Exclude holds glob patterns matched against entry base names;
	// matches are excluded along with their subtrees.
	Exclude []string
	// Ordering applied to every listing.
	Ordering Ordering
}

// Scanner produces the Listing for a directory. It holds no per-directory
// state; every Scan is a fresh snapshot.
type Scanner struct {
	depth     int
	onlyDirs  bool
	onlyFiles bool
	excludes  []glob.Glob
	ordering  Ordering
}

// NewScanner creates a Scanner, compiling the exclude patterns.
func NewScanner(opts ScanOptions) (*Scanner, error) {
	s := &Scanner{
		depth:     opts.Depth,
		onlyDirs:  opts.OnlyDirs,
		onlyFiles: opts.OnlyFiles,
		ordering:  opts.Ordering,
	}
	if s.depth < 0 {
		return nil, errors.NewConfigError("scan depth must not be negative", "depth", nil)
	}
	for _, pattern := range opts.Exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.NewConfigError("invalid exclude pattern", pattern, err)
		}
		s.excludes = append(s.excludes, g)
	}
	return s, nil
}

// Scan enumerates dir and returns its sorted, filtered listing. An
// unreadable directory yields the same listing an empty one would; the
// reason is logged, not surfaced.
func (s *Scanner) Scan(dir string, showHidden bool) Listing {
	listing := Listing{ShowHidden: showHidden}

	if !IsRoot(dir) {
		listing.Entries = append(listing.Entries, Entry{
			Name:  UpName,
			Path:  filepath.Join(dir, UpName),
			Kind:  KindUp,
			Depth: 0,
		})
	}

	if err := s.walk(dir, dir, 1, showHidden, &listing.Entries); err != nil {
		log.WithFields(log.F("dir", dir), log.F("error", err)).Debug("directory not readable")
	}

	sortEntries(listing.Entries, s.ordering)
	return listing
}

// walk appends the listed entries of dir, recursing while the configured
// depth allows. The returned error reports only that dir itself could not
// be enumerated.
func (s *Scanner) walk(base, dir string, level int, showHidden bool, out *[]Entry) error {
	children, err := os.ReadDir(dir)
	if err != nil {
		return errors.NewPathError("cannot enumerate directory", dir, errors.ScanFailure, err)
	}

	for _, child := range children {
		name := child.Name()
		if !showHidden && strings.HasPrefix(name, hiddenPrefix) {
			continue
		}
		if s.excluded(name) {
			continue
		}

		path := filepath.Join(dir, name)
		kind, ok := classify(child.Type(), path)
		if !ok {
			continue
		}
		if kind == KindFile && s.onlyDirs {
			continue
		}

		// OnlyFiles still descends into directories, it just doesn't
		// list them.
		idx := -1
		if kind != KindDirectory || !s.onlyFiles {
			rel, relErr := filepath.Rel(base, path)
			if relErr != nil {
				rel = name
			}
			*out = append(*out, Entry{
				Name:  displayName(rel),
				Path:  path,
				Kind:  kind,
				Depth: level,
			})
			idx = len(*out) - 1
		}

		if kind == KindDirectory && (s.depth == 0 || level < s.depth) {
			if walkErr := s.walk(base, path, level+1, showHidden, out); walkErr != nil && idx >= 0 {
				(*out)[idx].Kind = KindInaccessible
			}
		}
	}

	return nil
}

// classify maps a directory entry to its listing kind. Node types other
// than regular files, directories, and symlinks are not listed. A symlink
// is classified by its target; when the target cannot be statted it counts
// as a file.
func classify(mode fs.FileMode, path string) (Kind, bool) {
	switch {
	case mode.IsRegular():
		return KindFile, true
	case mode&fs.ModeSymlink != 0:
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			return KindDirectory, true
		}
		return KindFile, true
	case mode.IsDir():
		return KindDirectory, true
	default:
		return 0, false
	}
}

func (s *Scanner) excluded(name string) bool {
	for _, g := range s.excludes {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// ScanStdin builds a listing from one path per line of r. Relative paths
// are anchored at baseDir but keep their given spelling as the display
// name. Entries are not classified or sorted; they keep input order and
// resolve like typed paths on activation.
func ScanStdin(r io.Reader, baseDir string) Listing {
	var listing Listing

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		e := Entry{Kind: KindUnknown, Depth: 1}
		if filepath.IsAbs(line) {
			e.Path = line
			e.Name = displayName(line)
		} else {
			e.Path = filepath.Join(baseDir, line)
			e.Name = displayName(line)
		}
		listing.Entries = append(listing.Entries, e)
	}
	if err := scanner.Err(); err != nil {
		log.WithFields(log.F("error", err)).Warn("reading stdin listing failed")
	}

	return listing
}
