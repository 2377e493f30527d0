package grpc

import (
	"context"

	"github.com/dmitrijs2005/dermasight/internal/api"
	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/models"
	"github.com/dmitrijs2005/dermasight/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) authResponse(ctx context.Context, u *models.User) (*api.AuthResponse, error) {
	token, err := s.sessions.Issue(ctx, u)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.AuthResponse{AccessToken: token, User: api.UserToProto(u)}, nil
}

func requireDoctor(p *services.Principal) error {
	if p.Role != models.RoleDoctor {
		return status.Error(codes.PermissionDenied, common.ErrForbidden.Error()+": doctors only")
	}
	return nil
}

func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.AuthResponse, error) {

	s.logger.Info(ctx, "Registration request", "email", req.Email, "role", req.Role)

	u, err := s.accounts.Register(ctx, services.RegisterInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Role:          models.Role(req.Role),
		LicenseNumber: req.LicenseNumber,
		DateOfBirth:   req.DateOfBirth,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return s.authResponse(ctx, u)
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.AuthResponse, error) {

	u, err := s.accounts.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Logged in", "email", u.Email)
	return s.authResponse(ctx, u)
}

func (s *GRPCServer) Logout(ctx context.Context, _ *api.Empty) (*api.Empty, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Revoke(ctx, p.SessionID); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.Empty{}, nil
}

func (s *GRPCServer) RequestPasswordReset(ctx context.Context, req *api.PasswordResetRequest) (*api.Empty, error) {
	if err := s.accounts.RequestPasswordReset(ctx, req.Email, models.Role(req.Role)); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.Empty{}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *api.ResetPasswordRequest) (*api.Empty, error) {
	if err := s.accounts.ResetPassword(ctx, req.Email, req.Code, req.NewPassword); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.Empty{}, nil
}

// UpdateProfile renames the caller's account. The current session is
// replaced by one bound to the new email.
func (s *GRPCServer) UpdateProfile(ctx context.Context, req *api.UpdateProfileRequest) (*api.AuthResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.accounts.UpdateProfile(ctx, p.Email, services.ProfileUpdate{Name: req.Name, Email: req.Email})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp, err := s.authResponse(ctx, u)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Revoke(ctx, p.SessionID); err != nil {
		s.logger.Warn(ctx, "old session not revoked", "email", p.Email, "error", err)
	}
	return resp, nil
}

func (s *GRPCServer) AnalyzeBatch(ctx context.Context, req *api.AnalyzeBatchRequest) (*api.AnalyzeBatchResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.accounts.Get(ctx, p.Email)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	images := make([]services.BatchImage, 0, len(req.Images))
	for _, img := range req.Images {
		images = append(images, services.BatchImage{
			FileName:   img.FileName,
			MIMEType:   img.MimeType,
			Data:       img.Data,
			PreviewURL: img.PreviewUrl,
		})
	}

	run, err := s.batch.Analyze(ctx, services.Actor{Name: u.Name, Email: u.Email, Role: u.Role}, images, req.Notes)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Batch analyzed", "email", u.Email, "images", run.Total)
	return &api.AnalyzeBatchResponse{Cases: api.CasesToProto(run.Cases)}, nil
}

// ListCases returns a patient's own history, or the filtered doctor
// portal list.
func (s *GRPCServer) ListCases(ctx context.Context, req *api.ListCasesRequest) (*api.ListCasesResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if p.Role != models.RoleDoctor {
		return &api.ListCasesResponse{Cases: api.CasesToProto(s.cases.ListForUser(ctx, p.Email, p.Role))}, nil
	}

	cases, err := s.cases.Query(ctx, services.CaseFilter{
		OnlyFlagged: req.OnlyFlagged,
		Condition:   req.Condition,
		Sort:        services.SortOrder(req.Sort),
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.ListCasesResponse{Cases: api.CasesToProto(cases)}, nil
}

func (s *GRPCServer) GetCase(ctx context.Context, req *api.CaseRequest) (*api.CaseResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.cases.Get(ctx, req.CaseId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	if p.Role != models.RoleDoctor && c.UserEmail != p.Email {
		return nil, s.toStatus(ctx, common.ErrForbidden)
	}
	return &api.CaseResponse{Case: api.CaseToProto(c)}, nil
}

func (s *GRPCServer) ToggleCaseFlag(ctx context.Context, req *api.CaseRequest) (*api.CaseResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireDoctor(p); err != nil {
		return nil, err
	}

	c, err := s.cases.ToggleFlag(ctx, req.CaseId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.CaseResponse{Case: api.CaseToProto(c)}, nil
}

func (s *GRPCServer) ListConditions(ctx context.Context, _ *api.Empty) (*api.ListConditionsResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireDoctor(p); err != nil {
		return nil, err
	}
	return &api.ListConditionsResponse{Conditions: s.cases.Conditions(ctx)}, nil
}

func (s *GRPCServer) ListMessages(ctx context.Context, req *api.CaseRequest) (*api.MessagesResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	msgs, err := s.messages.ListForCase(ctx, *p, req.CaseId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.MessagesResponse{CaseId: req.CaseId, Messages: api.MessagesToProto(msgs)}, nil
}

func (s *GRPCServer) SendMessage(ctx context.Context, req *api.SendMessageRequest) (*api.MessagesResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	msgs, err := s.messages.Append(ctx, *p, req.CaseId, req.Text)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.MessagesResponse{CaseId: req.CaseId, Messages: api.MessagesToProto(msgs)}, nil
}

// WatchMessages sends the current thread, then every update until the
// client goes away.
func (s *GRPCServer) WatchMessages(req *api.CaseRequest, stream grpc.ServerStreamingServer[api.MessagesResponse]) error {
	ctx := stream.Context()
	p, err := principalFromContext(ctx)
	if err != nil {
		return err
	}

	updates, cancel, err := s.messages.Subscribe(ctx, *p, req.CaseId)
	if err != nil {
		return s.toStatus(ctx, err)
	}
	defer cancel()

	current, err := s.messages.ListForCase(ctx, *p, req.CaseId)
	if err != nil {
		return s.toStatus(ctx, err)
	}
	if err := stream.Send(&api.MessagesResponse{CaseId: req.CaseId, Messages: api.MessagesToProto(current)}); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msgs, ok := <-updates:
			if !ok {
				return nil
			}
			if err := stream.Send(&api.MessagesResponse{CaseId: req.CaseId, Messages: api.MessagesToProto(msgs)}); err != nil {
				return err
			}
		}
	}
}
