package mocks

import (
	time "time"

	model "github.com/dtroode/itemgraph/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// TokenManager is a mock type for the TokenManager type
type TokenManager struct {
	mock.Mock
}

// Issue provides a mock function with given fields: subject, scopes, now
func (_m *TokenManager) Issue(subject string, scopes []string, now time.Time) (string, error) {
	ret := _m.Called(subject, scopes, now)
	return ret.String(0), ret.Error(1)
}

// Validate provides a mock function with given fields: token, now
func (_m *TokenManager) Validate(token string, now time.Time) (model.TokenClaims, error) {
	ret := _m.Called(token, now)
	return ret.Get(0).(model.TokenClaims), ret.Error(1)
}

// NewTokenManager creates a new instance of TokenManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewTokenManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenManager {
	m := &TokenManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
