package record

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile stores readings at path. The file is written to a temporary
// sibling and renamed into place.
func WriteFile(path string, readings []Reading) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, os.Remove(f.Name()))
		}
	}()

	bw := bufio.NewWriter(f)
	w, err := NewWriter(bw)
	if err != nil {
		_ = f.Close()
		return err
	}
	for i, r := range readings {
		if err := w.Write(r); err != nil {
			_ = f.Close()
			return fmt.Errorf("reading %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// atomic replace
	return os.Rename(f.Name(), path)
}

// ReadFile loads every reading stored at path.
func ReadFile(path string) (readings []Reading, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	r, err := NewReader(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	readings, err = r.ReadAll()
	if err != nil {
		return readings, fmt.Errorf("%s: %w", path, err)
	}
	return readings, nil
}
