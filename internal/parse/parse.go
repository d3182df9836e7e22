// Package parse extracts component metadata from source files using
// tree-sitter.
package parse

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/phobologic/acfgen/internal/lang"
	"github.com/phobologic/acfgen/internal/model"
)

var (
	// ErrSourceNotFound is returned when the component file does not exist.
	ErrSourceNotFound = errors.New("component source not found")
	// ErrSourceUnreadable is returned when the component file cannot be read.
	ErrSourceUnreadable = errors.New("component source unreadable")
	// ErrMetadata is returned when no metadata can be extracted from the source.
	ErrMetadata = errors.New("cannot extract component metadata")
)

// Component reads the component at path and returns its name and props.
func Component(ctx context.Context, path string) (model.Component, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.Component{}, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return model.Component{}, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	return Source(ctx, path, source)
}

// Source extracts metadata from source. path selects the language by its
// extension and provides the fallback component name.
func Source(ctx context.Context, path string, source []byte) (model.Component, error) {
	ext := filepath.Ext(path)
	langName := lang.ForExtension(ext)
	if langName == "" {
		return model.Component{}, fmt.Errorf("%w: %s: unsupported file type %q", ErrMetadata, path, ext)
	}

	var scripts []script
	if langName == "vue" {
		blocks, err := scriptBlocks(ctx, source)
		if err != nil {
			return model.Component{}, fmt.Errorf("%w: %s: %v", ErrMetadata, path, err)
		}
		scripts = blocks
	} else {
		scripts = []script{{lang: langName, source: source}}
	}

	var (
		name  string
		props []model.Prop
		found bool
	)
	for _, s := range scripts {
		info, err := extractScript(ctx, s)
		if err != nil {
			return model.Component{}, fmt.Errorf("%w: %s: %v", ErrMetadata, path, err)
		}
		if name == "" {
			name = info.name
		}
		if !found && info.found {
			props = info.props
			found = true
		}
	}

	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), ext)
	}
	if props == nil {
		props = []model.Prop{}
	}

	return model.Component{
		Name:  name,
		Path:  path,
		Props: props,
	}, nil
}
