package mocks

import (
	context "context"

	model "github.com/dtroode/itemgraph/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// ItemStore is a mock type for the ItemStore type
type ItemStore struct {
	mock.Mock
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *ItemStore) GetByID(ctx context.Context, id int64) (model.Item, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, int64) (model.Item, error)); ok {
		return rf(ctx, id)
	}
	return ret.Get(0).(model.Item), ret.Error(1)
}

// List provides a mock function with given fields: ctx, filter
func (_m *ItemStore) List(ctx context.Context, filter model.ItemFilter) ([]model.Item, error) {
	ret := _m.Called(ctx, filter)

	var r0 []model.Item
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Item)
	}
	return r0, ret.Error(1)
}

// Create provides a mock function with given fields: ctx, item
func (_m *ItemStore) Create(ctx context.Context, item model.Item) (model.Item, error) {
	ret := _m.Called(ctx, item)

	if rf, ok := ret.Get(0).(func(context.Context, model.Item) (model.Item, error)); ok {
		return rf(ctx, item)
	}
	return ret.Get(0).(model.Item), ret.Error(1)
}

// Update provides a mock function with given fields: ctx, item
func (_m *ItemStore) Update(ctx context.Context, item model.Item) (model.Item, error) {
	ret := _m.Called(ctx, item)

	if rf, ok := ret.Get(0).(func(context.Context, model.Item) (model.Item, error)); ok {
		return rf(ctx, item)
	}
	return ret.Get(0).(model.Item), ret.Error(1)
}

// Delete provides a mock function with given fields: ctx, id
func (_m *ItemStore) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// NewItemStore creates a new instance of ItemStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewItemStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ItemStore {
	m := &ItemStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
