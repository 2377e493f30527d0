package client

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/dermasight/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrNotLoggedIn = errors.New("not logged in")
)

// StatusError is a server error carrying the server's message and
// matching the corresponding common category with errors.Is.
type StatusError struct {
	kind error
	msg  string
}

func (e *StatusError) Error() string { return e.msg }

func (e *StatusError) Unwrap() error { return e.kind }

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	var kind error
	switch st.Code() {
	case codes.InvalidArgument:
		kind = common.ErrValidation
	case codes.NotFound:
		kind = common.ErrNotFound
	case codes.Unauthenticated:
		kind = common.ErrUnauthorized
	case codes.PermissionDenied:
		kind = common.ErrForbidden
	case codes.Unavailable:
		if strings.Contains(st.Message(), common.ErrRemoteAnalysis.Error()) {
			kind = common.ErrRemoteAnalysis
		} else {
			kind = ErrUnavailable
		}
	case codes.DeadlineExceeded:
		kind = ErrUnavailable
	default:
		kind = common.ErrInternal
	}
	return &StatusError{kind: kind, msg: st.Message()}
}
