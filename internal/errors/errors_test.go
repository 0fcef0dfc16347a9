package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/adventure-engine/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "world not found",
			expected: "NOT_FOUND: world not found",
		},
		{
			name:     "content defect",
			code:     errors.CodeDoorUnpaired,
			message:  "door gate has no paired room",
			expected: "DOOR_UNPAIRED: door gate has no paired room",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestContentDefectCarriesSlug() {
	err := errors.ContentDefect(errors.CodeSoloUseUndefined, "lamp", "object %q has no success branch", "lamp")

	s.Equal(errors.CodeSoloUseUndefined, err.Code)
	s.Equal("lamp", err.Meta["slug"])
	s.True(errors.IsContentDefect(err))
	s.Contains(err.Error(), `object "lamp" has no success branch`)
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load world")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load world", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.ContentDefect(errors.CodeUnknownReference, "key", "unknown partner")
	wrapped := errors.Wrap(baseErr, "failed to build world")

	s.Equal(errors.CodeUnknownReference, wrapped.Code)
	s.Equal("key", wrapped.Meta["slug"])
	s.True(errors.Is(wrapped, errors.New(errors.CodeUnknownReference, "")))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.NotFound("key missing").WithMeta("world_id", "manor")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "store unavailable")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.Equal("manor", wrapped.Meta["world_id"])
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("test")
	err2 := errors.NotFound("other")
	err3 := errors.InvalidArgument("test")

	s.True(err1.Is(err2))
	s.False(err1.Is(err3))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.NotFound("world not found")
	stdErr := fmt.Errorf("standard error")

	s.Equal("world not found", errors.GetMessage(err))
	s.Equal("standard error", errors.GetMessage(stdErr))
	s.Equal("", errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestIsContentDefect() {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"plain error", fmt.Errorf("boom"), false},
		{"not found", errors.NotFound("world"), false},
		{"duplicate slug", errors.New(errors.CodeDuplicateSlug, "dup"), true},
		{"containment", errors.New(errors.CodeContainment, "twice"), true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, errors.IsContentDefect(tc.err))
		})
	}
}
