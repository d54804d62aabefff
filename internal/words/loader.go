package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"strings"
)

// SystemWordsFile is the dictionary shipped with most Unix-like systems.
const SystemWordsFile = "/usr/share/dict/words"

//go:embed words.txt
var embeddedWords string

// Source identifies where a dictionary was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceSystem   Source = "system"
	SourceEmbedded Source = "embedded"
)

// Loader locates and reads the candidate dictionary.
// Search order: Path -> SystemPath (linux and darwin only) -> embedded list.
type Loader struct {
	Path       string
	SystemPath string
	GOOS       string
}

// NewLoader creates a loader that prefers the given path when non-empty.
func NewLoader(path string) *Loader {
	return &Loader{
		Path:       path,
		SystemPath: SystemWordsFile,
		GOOS:       runtime.GOOS,
	}
}

// Load reads the dictionary and reports which source was used.
// An explicit path that cannot be read is an error; it never falls back.
func (l *Loader) Load() ([]string, Source, error) {
	if l.Path != "" {
		list, err := readFile(l.Path)
		if err != nil {
			return nil, SourceCustom, err
		}
		return list, SourceCustom, nil
	}

	if l.systemDictionarySupported() && l.SystemPath != "" {
		if _, err := os.Stat(l.SystemPath); err == nil {
			list, err := readFile(l.SystemPath)
			if err != nil {
				return nil, SourceSystem, err
			}
			return list, SourceSystem, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, SourceSystem, fmt.Errorf("words: cannot stat %s: %w", l.SystemPath, err)
		}
	}

	list, err := Read(strings.NewReader(embeddedWords))
	if err != nil {
		return nil, SourceEmbedded, fmt.Errorf("words: embedded list: %w", err)
	}
	return list, SourceEmbedded, nil
}

func (l *Loader) systemDictionarySupported() bool {
	return l.GOOS == "linux" || l.GOOS == "darwin"
}

// readFile loads one word per line from path.
func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: cannot open dictionary: %w", err)
	}
	defer f.Close()

	list, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("words: cannot read %s: %w", path, err)
	}
	return list, nil
}

// Read parses one word per line, trimming whitespace and skipping blank lines.
func Read(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// Pool normalizes candidates, filters them to [MinWordLength, maxLen] and
// fails with ErrEmptyPool when nothing qualifies. Length is measured on the
// normalized form, which is what a secret is played as.
func Pool(candidates []string, maxLen int) ([]string, error) {
	normalized := make([]string, len(candidates))
	for i, w := range candidates {
		normalized[i] = Normalize(w)
	}
	pool := Filter(normalized, MinWordLength, maxLen)
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w (max length %d, %d candidates)", ErrEmptyPool, maxLen, len(candidates))
	}
	return pool, nil
}
