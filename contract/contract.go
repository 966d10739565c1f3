//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
)

// ISupervisor keeps background workers of the board server alive.
type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker is a long-running background task. Returning nil means done,
// returning an error asks for a restart.
type Worker interface {
	Run(ctx context.Context) error
}

// Named lets a worker pick the name used in supervision logs.
type Named interface {
	Name() string
}

// GetWorkerName returns the worker's own name when it has one, its type
// name otherwise.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	if named, ok := w.(Named); ok {
		return named.Name()
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
