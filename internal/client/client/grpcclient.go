package client

import (
	"context"
	"errors"
	"io"

	"github.com/dmitrijs2005/dermasight/internal/api"
	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// maxCallBytes matches the server's message limit so that a batch of
// several full-size images fits into one call.
const maxCallBytes = 64 << 20

type GRPCClient struct {
	conn   *grpc.ClientConn
	client api.DermaSightClient
	store  SessionStore
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

// authorize attaches the stored token to ctx.
func (s *GRPCClient) authorize(ctx context.Context) (context.Context, error) {
	sess, err := s.store.Load()
	if err != nil {
		return ctx, err
	}
	return withAccessToken(ctx, sess.AccessToken), nil
}

// forget drops a session the server no longer accepts.
func (s *GRPCClient) forget(err error) {
	if status.Code(err) == codes.Unauthenticated {
		_ = s.store.Clear()
	}
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	ctx, err := s.authorize(ctx)
	if err != nil {
		return err
	}

	err = invoker(ctx, method, req, reply, cc, opts...)
	s.forget(err)
	return err
}

func (s *GRPCClient) accessTokenStreamInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	ctx, err := s.authorize(ctx)
	if err != nil {
		return nil, err
	}

	cs, err := streamer(ctx, desc, cc, method, opts...)
	s.forget(err)
	return cs, err
}

// NewDermaSightClient dials endpoint lazily. Extra options are appended
// after the defaults, so tests can swap the dialer.
func NewDermaSightClient(endpoint string, store SessionStore, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{store: store}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
		grpc.WithStreamInterceptor(c.accessTokenStreamInterceptor),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(maxCallBytes), grpc.MaxCallSendMsgSize(maxCallBytes)),
	}, opts...)

	conn, err := grpc.NewClient(endpoint, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = api.NewDermaSightClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// LoggedIn reports whether a token is stored. The server may still
// reject it.
func (s *GRPCClient) LoggedIn() bool {
	sess, err := s.store.Load()
	return err == nil && sess.AccessToken != ""
}

// CurrentUser is the user remembered from the last sign-in, or nil.
func (s *GRPCClient) CurrentUser() *models.User {
	sess, err := s.store.Load()
	if err != nil || sess.AccessToken == "" {
		return nil
	}
	return sess.User
}

func (s *GRPCClient) signedIn(resp *api.AuthResponse, err error) (*models.User, error) {
	if err != nil {
		return nil, s.mapError(err)
	}
	u := api.UserFromProto(resp.GetUser())
	if u == nil {
		u = &models.User{}
	}
	if err := s.store.Save(Session{AccessToken: resp.GetAccessToken(), User: u}); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *GRPCClient) Register(ctx context.Context, req *api.RegisterRequest) (*models.User, error) {
	return s.signedIn(s.client.Register(ctx, req))
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	return s.signedIn(s.client.Login(ctx, &api.LoginRequest{Email: email, Password: password}))
}

// Logout revokes the session on the server and always forgets the
// local token.
func (s *GRPCClient) Logout(ctx context.Context) error {
	if !s.LoggedIn() {
		return ErrNotLoggedIn
	}
	_, err := s.client.Logout(ctx, &api.Empty{})
	if cerr := s.store.Clear(); cerr != nil && err == nil {
		return cerr
	}
	return s.mapError(err)
}

func (s *GRPCClient) RequestPasswordReset(ctx context.Context, email string, role models.Role) error {
	_, err := s.client.RequestPasswordReset(ctx, &api.PasswordResetRequest{Email: email, Role: string(role)})
	return s.mapError(err)
}

func (s *GRPCClient) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	_, err := s.client.ResetPassword(ctx, &api.ResetPasswordRequest{Email: email, Code: code, NewPassword: newPassword})
	return s.mapError(err)
}

func (s *GRPCClient) UpdateProfile(ctx context.Context, name, email string) (*models.User, error) {
	return s.signedIn(s.client.UpdateProfile(ctx, &api.UpdateProfileRequest{Name: name, Email: email}))
}

func (s *GRPCClient) AnalyzeBatch(ctx context.Context, images []*api.Image, notes string) ([]models.Case, error) {
	resp, err := s.client.AnalyzeBatch(ctx, &api.AnalyzeBatchRequest{Images: images, Notes: notes})
	if err != nil {
		return nil, s.mapError(err)
	}
	return api.CasesFromProto(resp.GetCases()), nil
}

// ListCases returns the caller's history, or the doctor portal list
// narrowed by filter. A nil filter lists everything.
func (s *GRPCClient) ListCases(ctx context.Context, filter *api.ListCasesRequest) ([]models.Case, error) {
	if filter == nil {
		filter = &api.ListCasesRequest{}
	}
	resp, err := s.client.ListCases(ctx, filter)
	if err != nil {
		return nil, s.mapError(err)
	}
	return api.CasesFromProto(resp.GetCases()), nil
}

func (s *GRPCClient) GetCase(ctx context.Context, caseID string) (*models.Case, error) {
	resp, err := s.client.GetCase(ctx, &api.CaseRequest{CaseId: caseID})
	if err != nil {
		return nil, s.mapError(err)
	}
	c := api.CaseFromProto(resp.GetCase())
	return &c, nil
}

func (s *GRPCClient) ToggleFlag(ctx context.Context, caseID string) (*models.Case, error) {
	resp, err := s.client.ToggleCaseFlag(ctx, &api.CaseRequest{CaseId: caseID})
	if err != nil {
		return nil, s.mapError(err)
	}
	c := api.CaseFromProto(resp.GetCase())
	return &c, nil
}

func (s *GRPCClient) Conditions(ctx context.Context) ([]string, error) {
	resp, err := s.client.ListConditions(ctx, &api.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetConditions(), nil
}

func (s *GRPCClient) Messages(ctx context.Context, caseID string) ([]models.Message, error) {
	resp, err := s.client.ListMessages(ctx, &api.CaseRequest{CaseId: caseID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return api.MessagesFromProto(resp.GetMessages()), nil
}

func (s *GRPCClient) Send(ctx context.Context, caseID, text string) ([]models.Message, error) {
	resp, err := s.client.SendMessage(ctx, &api.SendMessageRequest{CaseId: caseID, Text: text})
	if err != nil {
		return nil, s.mapError(err)
	}
	return api.MessagesFromProto(resp.GetMessages()), nil
}

// Watch calls fn with the full thread of caseID every time it changes,
// starting with the current one. It returns nil once ctx is cancelled.
func (s *GRPCClient) Watch(ctx context.Context, caseID string, fn func([]models.Message)) error {
	stream, err := s.client.WatchMessages(ctx, &api.CaseRequest{CaseId: caseID})
	if err != nil {
		return s.mapError(err)
	}

	for {
		resp, err := stream.Recv()
		if err != nil {
			if ctx.Err() != nil || status.Code(err) == codes.Canceled {
				return nil
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return s.mapError(err)
		}
		fn(api.MessagesFromProto(resp.GetMessages()))
	}
}
