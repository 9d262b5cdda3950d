package mocks

import (
	"github.com/stretchr/testify/mock"

	"docgrid/internal/catalog"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(sessionID string, ev catalog.Event) {
	m.Called(sessionID, ev)
}
