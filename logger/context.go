package logger

import "context"

type operationKey struct{}

// Operation names the persistence operation a traced statement belongs to
type Operation struct {
	Name  string
	Model string
}

func (op Operation) String() string {
	if op.Model == "" {
		return "[" + op.Name + "]"
	}
	return "[" + op.Name + " " + op.Model + "]"
}

// WithOperation returns a context carrying op for Trace
func WithOperation(ctx context.Context, op Operation) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, operationKey{}, op)
}

// OperationFrom returns the operation stored by WithOperation
func OperationFrom(ctx context.Context) (Operation, bool) {
	if ctx == nil {
		return Operation{}, false
	}
	op, ok := ctx.Value(operationKey{}).(Operation)
	return op, ok
}
