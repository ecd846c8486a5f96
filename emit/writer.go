package emit

import (
	"bytes"
	"os"
	"path/filepath"
)

// Buffer accumulates one output file's content in memory before any
// disk access happens: the emitter writes to a buffer first, then
// compares against disk before committing the write. A Buffer is not
// safe for concurrent use; the emitter is single-threaded cooperative,
// so none is needed.
type Buffer struct {
	bytes.Buffer
}

// WriteIfChanged writes content to dir/name unless a file
// already there has byte-identical content, so downstream `make` can
// skip recompilation when the generated output didn't actually change.
// The directory is created if missing.
func WriteIfChanged(dir, name string, content []byte) (changed bool, err error) {
	path := filepath.Join(dir, name)
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, content) {
		return false, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}
	if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
		return false, mkErr
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
