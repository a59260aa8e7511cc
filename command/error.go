package command

import "github.com/cockroachdb/errors"

var (
	// ErrNilCommand a nil Command was queued or wrapped.
	ErrNilCommand = errors.New("command: command is nil")

	// ErrNilReceiver a ConcreteCommand has no receiver to act on.
	ErrNilReceiver = errors.New("command: receiver is nil")

	// ErrNotUndoCommand the command cannot be undone.
	ErrNotUndoCommand = errors.New("command: not an undo command")

	// ErrNilWriter a receiver has no output sink.
	ErrNilWriter = errors.New("command: writer is nil")
)
