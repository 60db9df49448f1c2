package coro

import (
	"fmt"
	"runtime/debug"
)

// PanicError carries a panic raised inside a coroutine to the context that
// resumed it.
type PanicError struct {
	ID    uint64
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("coro: coroutine %d panicked: %v", e.ID, e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func capturePanic(id uint64, v any) *PanicError {
	if pe, ok := v.(*PanicError); ok {
		return pe
	}
	return &PanicError{ID: id, Value: v, Stack: debug.Stack()}
}
