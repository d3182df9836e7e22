// Package pipeline runs a single component through metadata extraction,
// field building, group assembly and output.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/go-logr/logr"

	"github.com/phobologic/acfgen/internal/field"
	"github.com/phobologic/acfgen/internal/group"
	"github.com/phobologic/acfgen/internal/model"
	"github.com/phobologic/acfgen/internal/output"
	"github.com/phobologic/acfgen/internal/parse"
)

// Options configures one run. It is copied into Run and never modified.
type Options struct {
	Component string // component identifier, without extension
	Dir       string // directory holding the component source
	Dest      string // output directory
	Ext       string // component source extension, with leading dot
	DryRun    bool   // encode only, do not write
}

// SourcePath returns the component source file the options point at.
func (o Options) SourcePath() string {
	return filepath.Join(o.Dir, o.Component+o.Ext)
}

// Result describes a completed run.
type Result struct {
	Component model.Component
	Group     model.FieldGroup
	JSON      []byte // set for dry runs
	Path      string // empty for dry runs
}

// Run converts the component named by opts into an ACF field group and,
// unless opts.DryRun is set, writes it to opts.Dest. Errors wrap the
// sentinel of the stage that failed.
func Run(ctx context.Context, opts Options, log logr.Logger) (Result, error) {
	if log.IsZero() {
		log = logr.Discard()
	}
	if opts.Component == "" {
		return Result{}, fmt.Errorf("component name is required")
	}

	src := opts.SourcePath()
	log.V(1).Info("reading component", "path", src)
	comp, err := parse.Component(ctx, src)
	if err != nil {
		return Result{}, err
	}
	log.V(1).Info("extracted metadata", "component", comp.Name, "props", len(comp.Props))

	fields, err := field.BuildAll(comp.Props)
	if err != nil {
		return Result{}, fmt.Errorf("component %s: %w", comp.Name, err)
	}
	for _, f := range fields {
		log.V(2).Info("built field", "name", f.Name, "type", f.Type)
	}

	g := group.Assemble(comp.Name, fields)

	res := Result{Component: comp, Group: g}
	if opts.DryRun {
		res.JSON, err = output.Encode(g)
		return res, err
	}

	path, err := output.Write(ctx, opts.Dest, g)
	if err != nil {
		return Result{}, err
	}
	res.Path = path
	log.V(1).Info("wrote field group", "key", g.Key, "path", path)
	return res, nil
}
