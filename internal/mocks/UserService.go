package mocks

import (
	context "context"

	model "github.com/dtroode/itemgraph/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// UserService is a mock type for the UserService type
type UserService struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, id
func (_m *UserService) Get(ctx context.Context, id int64) (model.User, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.User), ret.Error(1)
}

// List provides a mock function with given fields: ctx, filter
func (_m *UserService) List(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	ret := _m.Called(ctx, filter)

	var r0 []model.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.User)
	}
	return r0, ret.Error(1)
}

// Create provides a mock function with given fields: ctx, params
func (_m *UserService) Create(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	ret := _m.Called(ctx, params)
	return ret.Get(0).(model.User), ret.Error(1)
}

// Update provides a mock function with given fields: ctx, auth, id, upd
func (_m *UserService) Update(ctx context.Context, auth model.Auth, id int64, upd model.UserUpdate) (model.User, error) {
	ret := _m.Called(ctx, auth, id, upd)
	return ret.Get(0).(model.User), ret.Error(1)
}

// Delete provides a mock function with given fields: ctx, auth, id
func (_m *UserService) Delete(ctx context.Context, auth model.Auth, id int64) error {
	ret := _m.Called(ctx, auth, id)
	return ret.Error(0)
}

// NewUserService creates a new instance of UserService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewUserService(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserService {
	m := &UserService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
