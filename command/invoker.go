package command

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// Invoker queues commands and executes them in the order they were added.
type Invoker struct {
	commands []Command
	executed []Command
	logger   *zap.Logger
}

func NewInvoker(logger *zap.Logger) *Invoker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Invoker{logger: logger}
}

// Add queues cmd behind the commands already added.
func (i *Invoker) Add(cmd Command) error {
	if cmd == nil {
		return ErrNilCommand
	}
	i.commands = append(i.commands, cmd)
	return nil
}

// Len returns the number of queued commands.
func (i *Invoker) Len() int {
	return len(i.commands)
}

// Execute runs every queued command in order and stops at the first failure. The
// queue is kept, so Execute may be called again.
func (i *Invoker) Execute(ctx context.Context) error {
	for n, cmd := range i.commands {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cmd.Execute(ctx); err != nil {
			i.logger.Warn("command failed", zap.Int("index", n), zap.String("command", fmt.Sprintf("%T", cmd)), zap.Error(err))
			return errors.Wrapf(err, "command %d", n)
		}
		i.executed = append(i.executed, cmd)
		i.logger.Debug("command executed", zap.Int("index", n), zap.String("command", fmt.Sprintf("%T", cmd)))
	}
	return nil
}

// Undo reverts executed commands, most recent first. It stops at the first command that
// cannot be undone or fails to undo; that command stays on the history.
func (i *Invoker) Undo(ctx context.Context) error {
	for len(i.executed) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		last := len(i.executed) - 1
		undo, ok := i.executed[last].(UndoCommand)
		if !ok {
			return errors.Wrapf(ErrNotUndoCommand, "%T", i.executed[last])
		}
		if err := undo.Undo(ctx); err != nil {
			return errors.Wrapf(err, "undo %T", i.executed[last])
		}
		i.executed = slices.Delete(i.executed, last, last+1)
	}
	return nil
}
