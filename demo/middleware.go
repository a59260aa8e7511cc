package demo

import (
	"context"
	"io"
	"time"

	"github.com/go-leo/patterns/decorator"
	"go.uber.org/zap"
)

type nameKey struct{}

func withName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, nameKey{}, name)
}

// NameFromContext returns the name of the demo being run by a Registry.
func NameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(nameKey{}).(string)
	return name, ok
}

// Logged logs the start, duration and failure of a demo.
func Logged(logger *zap.Logger) decorator.Decorator[Demo] {
	return decorator.Func[Demo](func(next Demo) Demo {
		return Func(func(ctx context.Context, w io.Writer) error {
			name, _ := NameFromContext(ctx)
			logger.Info("running demo", zap.String("name", name))
			start := time.Now()
			err := next.Run(ctx, w)
			if err != nil {
				logger.Error("demo failed", zap.String("name", name), zap.Error(err))
				return err
			}
			logger.Debug("demo finished", zap.String("name", name), zap.Duration("took", time.Since(start)))
			return nil
		})
	})
}
