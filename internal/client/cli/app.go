package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/dermasight/internal/api"
	"github.com/dmitrijs2005/dermasight/internal/client/client"
	"github.com/dmitrijs2005/dermasight/internal/client/config"
	"github.com/dmitrijs2005/dermasight/internal/models"
)

// apiClient is the part of client.GRPCClient used by the commands.
type apiClient interface {
	LoggedIn() bool
	CurrentUser() *models.User
	Register(ctx context.Context, req *api.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	RequestPasswordReset(ctx context.Context, email string, role models.Role) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	UpdateProfile(ctx context.Context, name, email string) (*models.User, error)
	AnalyzeBatch(ctx context.Context, images []*api.Image, notes string) ([]models.Case, error)
	ListCases(ctx context.Context, filter *api.ListCasesRequest) ([]models.Case, error)
	GetCase(ctx context.Context, caseID string) (*models.Case, error)
	ToggleFlag(ctx context.Context, caseID string) (*models.Case, error)
	Conditions(ctx context.Context) ([]string, error)
	Messages(ctx context.Context, caseID string) ([]models.Message, error)
	Send(ctx context.Context, caseID, text string) ([]models.Message, error)
	Watch(ctx context.Context, caseID string, fn func([]models.Message)) error
	Close() error
}

type App struct {
	config *config.Config
	api    apiClient
	http   *http.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewDermaSightClient(c.ServerEndpointAddr, client.NewFileSessionStore(c.SessionFile))
	if err != nil {
		return nil, err
	}

	return &App{
		config: c,
		api:    apiClient,
		http:   &http.Client{Timeout: c.RequestTimeout},
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()

	printlnFn("Welcome to DermaSight CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.api.LoggedIn()
}

// role is the role of the signed-in user, or "" when unknown.
func (a *App) role() models.Role {
	if u := a.api.CurrentUser(); u != nil {
		return u.Role
	}
	return ""
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	u := a.api.CurrentUser()
	if u == nil {
		return "(signed in)"
	}
	return fmt.Sprintf("(%s %s)", u.Email, u.Role)
}

// withTimeout bounds one request by the configured timeout.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
