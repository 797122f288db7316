package mocks

import (
	context "context"

	model "github.com/dtroode/itemgraph/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// AuthService is a mock type for the AuthService type
type AuthService struct {
	mock.Mock
}

// Resolve provides a mock function with given fields: ctx, header
func (_m *AuthService) Resolve(ctx context.Context, header string) model.Auth {
	ret := _m.Called(ctx, header)
	return ret.Get(0).(model.Auth)
}

// Login provides a mock function with given fields: ctx, email, password
func (_m *AuthService) Login(ctx context.Context, email string, password string) (string, model.User, error) {
	ret := _m.Called(ctx, email, password)
	return ret.String(0), ret.Get(1).(model.User), ret.Error(2)
}

// NewAuthService creates a new instance of AuthService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthService {
	m := &AuthService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
