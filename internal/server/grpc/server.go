package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/dermasight/internal/api"
	"github.com/dmitrijs2005/dermasight/internal/logging"
	"github.com/dmitrijs2005/dermasight/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// MaxMessageBytes bounds request and response size. Batches carry several
// images inline, each base64 encoded.
const MaxMessageBytes = 64 << 20

// Services bundles the directories the handlers delegate to.
type Services struct {
	Accounts *services.AccountService
	Sessions *services.SessionService
	Cases    *services.CaseService
	Messages *services.MessageService
	Batch    *services.BatchService
}

type GRPCServer struct {
	api.UnimplementedDermaSightServer
	address  string
	accounts *services.AccountService
	sessions *services.SessionService
	cases    *services.CaseService
	messages *services.MessageService
	batch    *services.BatchService
	health   *health.Server
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, svc Services) (*GRPCServer, error) {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		accounts: svc.Accounts,
		sessions: svc.Sessions,
		cases:    svc.Cases,
		messages: svc.Messages,
		batch:    svc.Batch,
		health:   health.NewServer(),
	}, nil
}

// NewServer builds a gRPC server with the DermaSight and health services
// registered and the access token interceptors installed.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts,
		grpc.MaxRecvMsgSize(MaxMessageBytes),
		grpc.MaxSendMsgSize(MaxMessageBytes),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.accessTokenStreamInterceptor),
	)
	srv := grpc.NewServer(opts...)

	api.RegisterDermaSightServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus(api.DermaSight_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
