// Package adapter makes a Service usable where a Target is expected.
package adapter

import (
	"io"

	"github.com/cockroachdb/errors"
)

// ErrNilWriter Show or Call was given no output sink.
var ErrNilWriter = errors.New("adapter: writer is nil")

// Target is the interface clients are written against.
type Target interface {
	Show(w io.Writer) error
}

// TargetClass is the stock Target.
type TargetClass struct{}

func (TargetClass) Show(w io.Writer) error {
	return writeLine(w, "target class")
}

// Service has useful behaviour behind an interface clients do not speak.
type Service struct{}

func (Service) Call(w io.Writer) error {
	return writeLine(w, "service class")
}

var (
	_ Target = EmbeddingAdapter{}
	_ Target = (*ServiceAdapter)(nil)
)

// EmbeddingAdapter gets both behaviours by embedding TargetClass and Service.
type EmbeddingAdapter struct {
	TargetClass
	Service
}

func (a EmbeddingAdapter) Show(w io.Writer) error {
	if err := a.TargetClass.Show(w); err != nil {
		return err
	}
	return a.Call(w)
}

// ServiceAdapter holds the Service it adapts.
type ServiceAdapter struct {
	service Service
}

func NewServiceAdapter() *ServiceAdapter {
	return &ServiceAdapter{service: Service{}}
}

func (a *ServiceAdapter) Show(w io.Writer) error {
	if err := (TargetClass{}).Show(w); err != nil {
		return err
	}
	return a.service.Call(w)
}

func writeLine(w io.Writer, line string) error {
	if w == nil {
		return ErrNilWriter
	}
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return errors.Wrap(err, "adapter: write")
	}
	return nil
}
