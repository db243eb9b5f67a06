package usecase_test

import (
	"context"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/content/repository"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock item repository with call capture
type mockItemRepo struct {
	createCalls    []repository.CreateItemOptions
	overwriteCalls []repository.OverwriteItemOptions
	deleteCalls    []string // "collection/id"

	createFunc    func(opt repository.CreateItemOptions) (model.Item, error)
	overwriteFunc func(opt repository.OverwriteItemOptions) (model.Item, error)
	deleteFunc    func(collection, id string) error
}

func (m *mockItemRepo) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.Item, error) {
	m.createCalls = append(m.createCalls, opt)
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Item{ID: "generated", Variant: opt.Variant}, nil
}

func (m *mockItemRepo) OverwriteItem(ctx context.Context, opt repository.OverwriteItemOptions) (model.Item, error) {
	m.overwriteCalls = append(m.overwriteCalls, opt)
	if m.overwriteFunc != nil {
		return m.overwriteFunc(opt)
	}
	return model.Item{ID: opt.ID}, nil
}

func (m *mockItemRepo) DeleteItem(ctx context.Context, collection, id string) error {
	m.deleteCalls = append(m.deleteCalls, collection+"/"+id)
	if m.deleteFunc != nil {
		return m.deleteFunc(collection, id)
	}
	return nil
}

func (m *mockItemRepo) ListItems(ctx context.Context, opt repository.ListItemsOptions) ([]model.Item, error) {
	return nil, nil
}
