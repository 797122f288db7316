package mocks

import (
	context "context"

	model "github.com/dtroode/itemgraph/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// Store is a mock type for the Store type
type Store struct {
	mock.Mock
}

// Users provides a mock function with given fields:
func (_m *Store) Users() model.UserStore {
	ret := _m.Called()

	var r0 model.UserStore
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.UserStore)
	}
	return r0
}

// Items provides a mock function with given fields:
func (_m *Store) Items() model.ItemStore {
	ret := _m.Called()

	var r0 model.ItemStore
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.ItemStore)
	}
	return r0
}

// InTx provides a mock function with given fields: ctx, fn
// When the expectation returns nil the callback runs against the mock itself.
func (_m *Store) InTx(ctx context.Context, fn func(context.Context, model.Store) error) error {
	ret := _m.Called(ctx, fn)

	if err := ret.Error(0); err != nil {
		return err
	}
	return fn(ctx, _m)
}

// NewStore creates a new instance of Store. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *Store {
	m := &Store{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
