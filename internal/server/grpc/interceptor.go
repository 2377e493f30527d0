package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/dermasight/internal/api"
	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const principalKey ctxKey = "principal"

// publicMethods can be called without an access token.
var publicMethods = map[string]bool{
	api.DermaSight_Register_FullMethodName:             true,
	api.DermaSight_Login_FullMethodName:                true,
	api.DermaSight_RequestPasswordReset_FullMethodName: true,
	api.DermaSight_ResetPassword_FullMethodName:        true,
}

func isProtected(fullMethod string) bool {
	return strings.HasPrefix(fullMethod, "/"+api.DermaSight_ServiceDesc.ServiceName+"/") && !publicMethods[fullMethod]
}

func withPrincipal(ctx context.Context, p *services.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func principalFromContext(ctx context.Context) (*services.Principal, error) {
	p, ok := ctx.Value(principalKey).(*services.Principal)
	if !ok || p == nil {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}
	return p, nil
}

func accessTokenFromContext(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

func (s *GRPCServer) authenticate(ctx context.Context) (context.Context, error) {
	accessToken := accessTokenFromContext(ctx)
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	p, err := s.sessions.Authenticate(ctx, accessToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return withPrincipal(ctx, p), nil
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if isProtected(info.FullMethod) {
		var err error
		ctx, err = s.authenticate(ctx)
		if err != nil {
			return nil, err
		}
	}

	return handler(ctx, req)
}

// authStream overrides the context of a server stream.
type authStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authStream) Context() context.Context { return s.ctx }

func (s *GRPCServer) accessTokenStreamInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {

	if !isProtected(info.FullMethod) {
		return handler(srv, ss)
	}

	ctx, err := s.authenticate(ss.Context())
	if err != nil {
		return err
	}

	return handler(srv, &authStream{ServerStream: ss, ctx: ctx})
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "rpc", "method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start))
	return resp, err
}
