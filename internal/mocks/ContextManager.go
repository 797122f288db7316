package mocks

import (
	context "context"

	model "github.com/dtroode/itemgraph/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// ContextManager is a mock type for the ContextManager type
type ContextManager struct {
	mock.Mock
}

// SetAuthToContext provides a mock function with given fields: ctx, auth
func (_m *ContextManager) SetAuthToContext(ctx context.Context, auth model.Auth) context.Context {
	ret := _m.Called(ctx, auth)
	return ret.Get(0).(context.Context)
}

// GetAuthFromContext provides a mock function with given fields: ctx
func (_m *ContextManager) GetAuthFromContext(ctx context.Context) model.Auth {
	ret := _m.Called(ctx)
	return ret.Get(0).(model.Auth)
}

// NewContextManager creates a new instance of ContextManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewContextManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContextManager {
	m := &ContextManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
