package command

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInvokerExecute(t *testing.T) {
	var buf bytes.Buffer
	invoker := NewInvoker(nil)
	require.NoError(t, invoker.Add(NewConcreteCommand(Receiver1{W: &buf})))
	require.NoError(t, invoker.Add(NewConcreteCommand(Receiver2{W: &buf})))
	assert.Equal(t, 2, invoker.Len())

	require.NoError(t, invoker.Execute(context.Background()))
	assert.Equal(t, "action 1\naction 2\n", buf.String())

	require.NoError(t, invoker.Execute(context.Background()))
	assert.Equal(t, "action 1\naction 2\naction 1\naction 2\n", buf.String())
}

func TestInvokerStops(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	var buf bytes.Buffer
	boom := errors.New("boom")
	invoker := NewInvoker(zap.New(core))
	require.NoError(t, invoker.Add(NewConcreteCommand(Receiver1{W: &buf})))
	require.NoError(t, invoker.Add(Func(func(context.Context) error { return boom })))
	require.NoError(t, invoker.Add(NewConcreteCommand(Receiver2{W: &buf})))

	err := invoker.Execute(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "command 1")
	assert.Equal(t, "action 1\n", buf.String())
	assert.Equal(t, 1, logs.FilterMessage("command failed").Len())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, invoker.Execute(ctx), context.Canceled)
}

func TestInvokerUndo(t *testing.T) {
	var trail []string
	step := func(name string) *Reversible {
		do := Func(func(context.Context) error {
			trail = append(trail, "do "+name)
			return nil
		})
		undo := UndoFunc(func(context.Context) error {
			trail = append(trail, "undo "+name)
			return nil
		})
		return NewReversible(do, undo)
	}
	invoker := NewInvoker(nil)
	require.NoError(t, invoker.Add(step("a")))
	require.NoError(t, invoker.Add(step("b")))
	require.NoError(t, invoker.Execute(context.Background()))
	require.NoError(t, invoker.Undo(context.Background()))
	assert.Equal(t, []string{"do a", "do b", "undo b", "undo a"}, trail)

	// nothing left to undo
	require.NoError(t, invoker.Undo(context.Background()))
	assert.Len(t, trail, 4)
}

func TestInvokerUndoUnsupported(t *testing.T) {
	var buf bytes.Buffer
	invoker := NewInvoker(nil)
	require.NoError(t, invoker.Add(NewConcreteCommand(Receiver1{W: &buf})))
	require.NoError(t, invoker.Add(NewReversible(Func(func(context.Context) error { return nil }), nil)))
	require.NoError(t, invoker.Execute(context.Background()))

	assert.ErrorIs(t, invoker.Undo(context.Background()), ErrNotUndoCommand)
}

func TestNilArguments(t *testing.T) {
	invoker := NewInvoker(nil)
	assert.ErrorIs(t, invoker.Add(nil), ErrNilCommand)
	assert.Zero(t, invoker.Len())

	assert.ErrorIs(t, NewConcreteCommand(nil).Execute(context.Background()), ErrNilReceiver)
	assert.ErrorIs(t, NewConcreteCommand(Receiver2{}).Execute(context.Background()), ErrNilWriter)
	assert.ErrorIs(t, NewReversible(nil, nil).Execute(context.Background()), ErrNilCommand)
}
