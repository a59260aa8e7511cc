package command

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
)

// A Command encapsulates a unit of processing work to be performed.
type Command interface {
	// Execute a unit of processing work to be performed
	Execute(ctx context.Context) error
}

// UndoCommand reverts the work of a Command that has already been executed.
type UndoCommand interface {
	Undo(ctx context.Context) error
}

// The Func type is an adapter to allow the use of ordinary functions as Command.
// If f is a function with the appropriate signature, Func(f) is a Command that calls f.
type Func func(ctx context.Context) error

// Execute calls f(ctx).
func (f Func) Execute(ctx context.Context) error {
	return f(ctx)
}

// The UndoFunc type is an adapter to allow the use of ordinary functions as UndoCommand.
type UndoFunc func(ctx context.Context) error

// Undo calls f(ctx).
func (f UndoFunc) Undo(ctx context.Context) error {
	return f(ctx)
}

// Receiver knows how to carry out the action a command is bound to.
type Receiver interface {
	Action(ctx context.Context) error
}

// ConcreteCommand executes by calling its receiver's Action.
type ConcreteCommand struct {
	receiver Receiver
}

func NewConcreteCommand(receiver Receiver) *ConcreteCommand {
	return &ConcreteCommand{receiver: receiver}
}

func (cmd *ConcreteCommand) Execute(ctx context.Context) error {
	if cmd == nil || cmd.receiver == nil {
		return ErrNilReceiver
	}
	return cmd.receiver.Action(ctx)
}

// Reversible pairs a command with the command that reverts it.
type Reversible struct {
	cmd  Command
	undo UndoCommand
}

func NewReversible(cmd Command, undo UndoCommand) *Reversible {
	return &Reversible{cmd: cmd, undo: undo}
}

func (r *Reversible) Execute(ctx context.Context) error {
	if r.cmd == nil {
		return ErrNilCommand
	}
	return r.cmd.Execute(ctx)
}

func (r *Reversible) Undo(ctx context.Context) error {
	if r.undo == nil {
		return ErrNotUndoCommand
	}
	return r.undo.Undo(ctx)
}

// Receiver1 and Receiver2 announce their action on W.
type (
	Receiver1 struct{ W io.Writer }
	Receiver2 struct{ W io.Writer }
)

func (r Receiver1) Action(context.Context) error {
	return announce(r.W, "action 1")
}

func (r Receiver2) Action(context.Context) error {
	return announce(r.W, "action 2")
}

func announce(w io.Writer, action string) error {
	if w == nil {
		return ErrNilWriter
	}
	if _, err := io.WriteString(w, action+"\n"); err != nil {
		return errors.Wrap(err, "command: write")
	}
	return nil
}
