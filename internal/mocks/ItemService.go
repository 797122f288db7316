package mocks

import (
	context "context"

	model "github.com/dtroode/itemgraph/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// ItemService is a mock type for the ItemService type
type ItemService struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, id
func (_m *ItemService) Get(ctx context.Context, id int64) (model.Item, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.Item), ret.Error(1)
}

// List provides a mock function with given fields: ctx, filter
func (_m *ItemService) List(ctx context.Context, filter model.ItemFilter) ([]model.Item, error) {
	ret := _m.Called(ctx, filter)

	var r0 []model.Item
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Item)
	}
	return r0, ret.Error(1)
}

// Create provides a mock function with given fields: ctx, auth, params
func (_m *ItemService) Create(ctx context.Context, auth model.Auth, params model.CreateItemParams) (model.Item, error) {
	ret := _m.Called(ctx, auth, params)
	return ret.Get(0).(model.Item), ret.Error(1)
}

// Update provides a mock function with given fields: ctx, auth, id, upd
func (_m *ItemService) Update(ctx context.Context, auth model.Auth, id int64, upd model.ItemUpdate) (model.Item, error) {
	ret := _m.Called(ctx, auth, id, upd)
	return ret.Get(0).(model.Item), ret.Error(1)
}

// Delete provides a mock function with given fields: ctx, auth, id
func (_m *ItemService) Delete(ctx context.Context, auth model.Auth, id int64) error {
	ret := _m.Called(ctx, auth, id)
	return ret.Error(0)
}

// NewItemService creates a new instance of ItemService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewItemService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ItemService {
	m := &ItemService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
