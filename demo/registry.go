package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/go-leo/patterns/decorator"
	"github.com/go-leo/patterns/factory"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

var _ factory.Factory[Demo, string] = (*Registry)(nil)

// Registry holds demos by name. One Registry is built by the caller and passed to
// whatever needs it; there is no package-level instance.
type Registry struct {
	demos      map[string]Demo
	decorators []decorator.Decorator[Demo]
	logger     *zap.Logger
}

// NewRegistry returns a registry holding every catalogue demo.
func NewRegistry(logger *zap.Logger) *Registry {
	r := NewEmptyRegistry(logger)
	for name, d := range map[string]Demo{
		"abstract-factory": Func(AbstractFactory),
		"adapter":          Func(Adapter),
		"builder":          Func(Builder),
		"command":          Func(Command),
		"composite":        Func(Composite),
		"decorator":        Func(Decorator),
		"visitor":          Func(Visitor),
	} {
		if err := r.Register(name, d); err != nil {
			panic(err)
		}
	}
	return r
}

// NewEmptyRegistry returns a registry with no demos.
func NewEmptyRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		demos:      make(map[string]Demo),
		decorators: []decorator.Decorator[Demo]{Logged(logger)},
		logger:     logger,
	}
}

// Use wraps every demo run by the registry with decorators, inside those already added.
func (r *Registry) Use(decorators ...decorator.Decorator[Demo]) {
	r.decorators = append(r.decorators, decorators...)
}

func (r *Registry) Register(name string, d Demo) error {
	if d == nil {
		return ErrNilDemo
	}
	if _, ok := r.demos[name]; ok {
		return errors.Wrapf(ErrRegistered, "%q", name)
	}
	r.demos[name] = d
	r.logger.Debug("demo registered", zap.String("name", name))
	return nil
}

// Create looks up the demo registered under name. The demo is returned undecorated.
func (r *Registry) Create(_ context.Context, name string) (Demo, error) {
	d, ok := r.demos[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDemo, "%q", name)
	}
	return d, nil
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.demos))
	for name := range r.demos {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Run runs the demo registered under name.
func (r *Registry) Run(ctx context.Context, name string, w io.Writer) error {
	d, err := r.Create(ctx, name)
	if err != nil {
		return err
	}
	if err := decorator.Chain(d, r.decorators...).Run(withName(ctx, name), w); err != nil {
		return errors.Wrapf(err, "demo %s", name)
	}
	return nil
}

// RunAll runs every demo in name order, each under a "== name" heading.
func (r *Registry) RunAll(ctx context.Context, w io.Writer) error {
	for _, name := range r.Names() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "== %s\n", name); err != nil {
			return errors.Wrap(err, "demo: write heading")
		}
		if err := r.Run(ctx, name, w); err != nil {
			return err
		}
	}
	return nil
}
