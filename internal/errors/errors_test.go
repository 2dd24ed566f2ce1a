package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/aus-world/internal/errors"
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
			message:  "slot data not found",
			expected: "NOT_FOUND: slot data not found",
		},
		{
			name:     "out of range error",
			code:     errors.CodeOutOfRange,
			message:  "too many orbs",
			expected: "OUT_OF_RANGE: too many orbs",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("record not found")
	wrapped := errors.Wrap(baseErr, "slot not found")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("slot not found", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPlainErrorIsInternal() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrapf(baseErr, "failed to reach %s", "redis")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to reach redis", wrapped.Message)
}

func (s *ErrorsTestSuite) TestWrapWithCodeKeepsMeta() {
	baseErr := errors.NotFound("missing").WithMeta("player", 2)
	wrapped := errors.WrapWithCode(baseErr, errors.CodeFailedPrecondition, "cannot continue")

	s.Assert().Equal(errors.CodeFailedPrecondition, wrapped.Code)
	s.Assert().Equal(2, wrapped.Meta["player"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.Assert().True(errors.NotFound("a").Is(errors.NotFound("b")))
	s.Assert().False(errors.NotFound("a").Is(errors.InvalidArgument("a")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestOutOfRangeValue() {
	err := errors.OutOfRangeValue("gold_orbs_required", 11, 0, 10)

	s.Assert().True(errors.IsOutOfRange(err))
	s.Assert().Equal("gold_orbs_required", err.Meta["option"])
	s.Assert().Equal(11, err.Meta["value"])
	s.Assert().Contains(err.Message, "between 0 and 10")
}

func (s *ErrorsTestSuite) TestUnknownItemSuggests() {
	known := []string{"Wall Jump", "High Jump", "Gold Orb", "Heart"}

	err := errors.UnknownItem("Wall Jmup", known)
	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Contains(err.Message, `did you mean "Wall Jump"`)
	s.Assert().Equal([]string{"Wall Jump"}, err.Meta["suggestions"])
}

func (s *ErrorsTestSuite) TestUnknownLocationWithoutSuggestion() {
	err := errors.UnknownLocation("Nowhere At All", []string{"SkyTown - Shop"})

	s.Assert().True(errors.IsNotFound(err))
	s.Assert().NotContains(err.Message, "did you mean")
	s.Assert().Nil(err.Meta["suggestions"])
}

func (s *ErrorsTestSuite) TestDuplicateID() {
	err := errors.DuplicateID("location", 72010, "A", "B")

	s.Assert().True(errors.IsAlreadyExists(err))
	s.Assert().Equal(int64(72010), err.Meta["id"])
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.UnknownItem("Wall Jmup", []string{"Wall Jump"})

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.NotFound, st.Code())

	back := errors.FromGRPCError(grpcErr)
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(back))
	s.Assert().Equal(err.Message, errors.GetMessage(back))
	s.Assert().Equal("Wall Jmup", errors.GetMeta(back)["item"])
	s.Assert().Equal([]interface{}{"Wall Jump"}, errors.GetMeta(back)["suggestions"])
}

func (s *ErrorsTestSuite) TestGRPCPlainError() {
	grpcErr := errors.ToGRPCError(fmt.Errorf("boom"))
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.Internal, st.Code())

	s.Assert().Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeAlreadyExists, codes.AlreadyExists},
		{errors.CodeOutOfRange, codes.OutOfRange},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
