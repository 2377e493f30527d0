package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/logging"
	"github.com/dmitrijs2005/dermasight/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	s := &GRPCServer{logger: logging.Nop{}}
	ctx := context.Background()

	tests := []struct {
		err  error
		want codes.Code
	}{
		{common.ErrDuplicateAccount, codes.InvalidArgument},
		{common.Validation("bad"), codes.InvalidArgument},
		{common.ErrCaseNotFound, codes.NotFound},
		{common.ErrInvalidCredentials, codes.Unauthenticated},
		{common.ErrSessionExpired, codes.Unauthenticated},
		{common.ErrForbidden, codes.PermissionDenied},
		{&services.BatchError{Index: 2, Total: 2, Err: common.ErrRemoteAnalysis}, codes.Unavailable},
		{context.Canceled, codes.Canceled},
		{errors.New("db down"), codes.Internal},
		{status.Error(codes.Aborted, "as is"), codes.Aborted},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.err), func(t *testing.T) {
			got := s.toStatus(ctx, tt.err)
			if status.Code(got) != tt.want {
				t.Fatalf("want %v, got %v", tt.want, status.Code(got))
			}
		})
	}
}

func TestToStatus_InternalHidesDetail(t *testing.T) {
	s := &GRPCServer{logger: logging.Nop{}}
	err := s.toStatus(context.Background(), errors.New("password=hunter2"))
	if msg := status.Convert(err).Message(); msg != "internal error" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestToStatus_KeepsBatchPosition(t *testing.T) {
	s := &GRPCServer{logger: logging.Nop{}}
	err := s.toStatus(context.Background(), &services.BatchError{Index: 2, Total: 3, Err: common.ErrRemoteAnalysis})
	if msg := status.Convert(err).Message(); msg != "analysis of image 2/3 failed: remote analysis error" {
		t.Fatalf("unexpected message %q", msg)
	}
}
