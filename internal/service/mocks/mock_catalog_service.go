package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docgrid/internal/catalog"
	"docgrid/internal/service"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Ingest(ctx context.Context, sessionID string, batch []catalog.Descriptor) ([]catalog.Card, error) {
	args := m.Called(ctx, sessionID, batch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Card), args.Error(1)
}

func (m *MockCatalogService) Search(ctx context.Context, sessionID, query string, limit int) (*service.CatalogView, error) {
	args := m.Called(ctx, sessionID, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CatalogView), args.Error(1)
}

func (m *MockCatalogService) View(ctx context.Context, sessionID string, limit int) (*service.CatalogView, error) {
	args := m.Called(ctx, sessionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CatalogView), args.Error(1)
}

func (m *MockCatalogService) Remove(ctx context.Context, sessionID, id string) error {
	args := m.Called(ctx, sessionID, id)
	return args.Error(0)
}

func (m *MockCatalogService) Stats(ctx context.Context, sessionID string) (*service.CatalogStats, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CatalogStats), args.Error(1)
}
