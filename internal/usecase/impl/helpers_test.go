package impl

import (
	"context"
	"io"
	"log/slog"

	"quill/internal/domain/repository"
)

// fakeTxManager passes the callback straight through to a fixed factory, so
// tests exercise the real transactional flow without a database.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f.factory)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
