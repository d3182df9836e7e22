// Package output serializes field groups and writes them to disk.
package output

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phobologic/acfgen/internal/model"
)

// ErrDestinationWrite is returned when the destination directory or file
// cannot be written.
var ErrDestinationWrite = errors.New("destination write failed")

// WriteError reports which path failed and why.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Is(target error) bool { return target == ErrDestinationWrite }

func (e *WriteError) Unwrap() error { return e.Err }

// Encode returns g as two-space indented JSON with a trailing newline.
func Encode(g model.FieldGroup) ([]byte, error) {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding field group %s: %w", g.Key, err)
	}
	return append(data, '\n'), nil
}

// Path returns the file g is written to inside dir.
func Path(dir string, g model.FieldGroup) string {
	return filepath.Join(dir, g.Key+".json")
}

// Write stores g as <dir>/<key>.json and returns that path. dir is created if
// missing but its parent must exist. An existing file is replaced. The file
// is written to a temporary name first so a failed write leaves nothing
// behind.
func Write(ctx context.Context, dir string, g model.FieldGroup) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &WriteError{Path: dir, Err: err}
	}

	data, err := Encode(g)
	if err != nil {
		return "", err
	}

	if err := ensureDir(dir); err != nil {
		return "", &WriteError{Path: dir, Err: err}
	}

	path := Path(dir, g)
	if err := writeFileAtomic(path, data); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	return path, nil
}

func ensureDir(dir string) error {
	err := os.Mkdir(dir, 0o755)
	if err == nil {
		return nil
	}
	if errors.Is(err, os.ErrExist) {
		info, statErr := os.Stat(dir)
		if statErr != nil {
			return statErr
		}
		if !info.IsDir() {
			return fmt.Errorf("%s: not a directory", dir)
		}
		return nil
	}
	return err
}

func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
