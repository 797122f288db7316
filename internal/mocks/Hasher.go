package mocks

import mock "github.com/stretchr/testify/mock"

// Hasher is a mock type for the Hasher type
type Hasher struct {
	mock.Mock
}

// Hash provides a mock function with given fields: plain
func (_m *Hasher) Hash(plain string) (string, error) {
	ret := _m.Called(plain)
	return ret.String(0), ret.Error(1)
}

// Verify provides a mock function with given fields: plain, hash
func (_m *Hasher) Verify(plain string, hash string) bool {
	ret := _m.Called(plain, hash)
	return ret.Bool(0)
}

// NewHasher creates a new instance of Hasher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *Hasher {
	m := &Hasher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
