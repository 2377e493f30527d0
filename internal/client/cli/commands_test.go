package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/dermasight/internal/api"
	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

/*************
 * Fake API client
 *************/

type fakeAPI struct {
	token string

	// inputs captured
	registerReq *api.RegisterRequest
	loginEmail  string
	loginPass   string
	resetArgs   []string
	profileArgs []string
	images      []*api.Image
	notes       string
	filter      *api.ListCasesRequest
	sent        []string

	// outputs preset
	user     *models.User
	err      error
	cases    []models.Case
	caseByID map[string]*models.Case
	conds    []string
	thread   []models.Message
	updates  [][]models.Message
}

func (f *fakeAPI) LoggedIn() bool { return f.token != "" }
func (f *fakeAPI) CurrentUser() *models.User {
	if f.token == "" {
		return nil
	}
	return f.user
}
func (f *fakeAPI) Close() error { return nil }

func (f *fakeAPI) Register(_ context.Context, req *api.RegisterRequest) (*models.User, error) {
	f.registerReq = req
	if f.err != nil {
		return nil, f.err
	}
	f.token = "T"
	f.user = &models.User{Name: req.Name, Email: req.Email, Role: models.Role(req.Role)}
	return f.user, nil
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (*models.User, error) {
	f.loginEmail, f.loginPass = email, password
	if f.err != nil {
		return nil, f.err
	}
	f.token = "T"
	return f.user, nil
}

func (f *fakeAPI) Logout(context.Context) error {
	f.token = ""
	return f.err
}

func (f *fakeAPI) RequestPasswordReset(_ context.Context, email string, role models.Role) error {
	f.resetArgs = []string{email, string(role)}
	return f.err
}

func (f *fakeAPI) ResetPassword(_ context.Context, email, code, newPassword string) error {
	f.resetArgs = []string{email, code, newPassword}
	return f.err
}

func (f *fakeAPI) UpdateProfile(_ context.Context, name, email string) (*models.User, error) {
	f.profileArgs = []string{name, email}
	if f.err != nil {
		return nil, f.err
	}
	f.user = &models.User{Name: name, Email: email, Role: models.RolePatient}
	return f.user, nil
}

func (f *fakeAPI) AnalyzeBatch(_ context.Context, images []*api.Image, notes string) ([]models.Case, error) {
	f.images, f.notes = images, notes
	return f.cases, f.err
}

func (f *fakeAPI) ListCases(_ context.Context, filter *api.ListCasesRequest) ([]models.Case, error) {
	f.filter = filter
	return f.cases, f.err
}

func (f *fakeAPI) GetCase(_ context.Context, id string) (*models.Case, error) {
	if c, ok := f.caseByID[id]; ok {
		return c, nil
	}
	return nil, common.ErrCaseNotFound
}

func (f *fakeAPI) ToggleFlag(_ context.Context, id string) (*models.Case, error) {
	c, ok := f.caseByID[id]
	if !ok {
		return nil, common.ErrCaseNotFound
	}
	c.IsManuallyFlagged = !c.IsManuallyFlagged
	return c, nil
}

func (f *fakeAPI) Conditions(context.Context) ([]string, error) { return f.conds, nil }

func (f *fakeAPI) Messages(context.Context, string) ([]models.Message, error) {
	return f.thread, f.err
}

func (f *fakeAPI) Send(_ context.Context, _ string, text string) ([]models.Message, error) {
	f.sent = append(f.sent, text)
	f.thread = append(f.thread, models.Message{Sender: models.RolePatient, Text: text, Timestamp: time.Now()})
	return f.thread, f.err
}

func (f *fakeAPI) Watch(_ context.Context, _ string, fn func([]models.Message)) error {
	for _, u := range f.updates {
		fn(u)
	}
	return f.err
}

/*************
 * Helpers
 *************/

func newTestApp(f *fakeAPI) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{api: f, reader: bufio.NewReader(strings.NewReader("")), out: &out}, &out
}

// stubAnswers feeds text prompts from answers in order and the password
// from pw.
func stubAnswers(t *testing.T, pw string, answers ...string) {
	t.Helper()
	origST, origGP, origGC, origML := getSimpleText, getPassword, getChoice, getMultiline
	t.Cleanup(func() {
		getSimpleText, getPassword, getChoice, getMultiline = origST, origGP, origGC, origML
	})

	next := func() (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return next() }
	getChoice = func(*bufio.Reader, string, []string, string, io.Writer) (string, error) { return next() }
	getMultiline = func(*bufio.Reader, string, io.Writer) (string, error) { return next() }
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
}

func testCase(id, disease string) models.Case {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	c := models.Case{Timestamp: &ts, UserEmail: "ann@x.io"}
	c.DoctorDashboard = models.DoctorDashboard{CaseID: id, Summary: "sum " + id, RiskScore: "42", PriorityFlag: models.PriorityMedium}
	c.PatientDashboard = models.PatientDashboard{Name: "Ann", MostLikelyDisease: disease, Recommendation: "see a doctor"}
	return c
}

/*************
 * Account commands
 *************/

func TestRegister_DoctorAsksForLicense(t *testing.T) {
	capturePrints(t)
	stubAnswers(t, "pw", "Dr Who", "who@x.io", "doctor", "LIC-1")

	f := &fakeAPI{}
	app, _ := newTestApp(f)

	require.NoError(t, app.Register(context.Background()))
	assert.True(t, proto.Equal(&api.RegisterRequest{
		Name: "Dr Who", Email: "who@x.io", Password: "pw", Role: "doctor", LicenseNumber: "LIC-1",
	}, f.registerReq), "got %v", f.registerReq)
	assert.Equal(t, models.RoleDoctor, app.role())
	assert.True(t, app.isLoggedIn())
}

func TestRegister_PatientAsksForBirthDate(t *testing.T) {
	capturePrints(t)
	stubAnswers(t, "pw", "Ann", "ann@x.io", "patient", "1990-01-02")

	f := &fakeAPI{}
	app, _ := newTestApp(f)

	require.NoError(t, app.Register(context.Background()))
	assert.Equal(t, "1990-01-02", f.registerReq.DateOfBirth)
	assert.Empty(t, f.registerReq.LicenseNumber)
}

func TestLogin_ErrorLeavesUserUnset(t *testing.T) {
	capturePrints(t)
	stubAnswers(t, "bad", "ann@x.io")

	f := &fakeAPI{err: common.ErrInvalidCredentials}
	app, _ := newTestApp(f)

	err := app.Login(context.Background())
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Nil(t, app.api.CurrentUser())
	assert.Equal(t, "", app.getStatus())
}

func TestLoginLogout_Status(t *testing.T) {
	capturePrints(t)
	stubAnswers(t, "pw", "ann@x.io")

	f := &fakeAPI{user: &models.User{Name: "Ann", Email: "ann@x.io", Role: models.RolePatient}}
	app, _ := newTestApp(f)
	ctx := context.Background()

	require.NoError(t, app.Login(ctx))
	assert.Equal(t, "ann@x.io", f.loginEmail)
	assert.Equal(t, "pw", f.loginPass)
	assert.Equal(t, "(ann@x.io patient)", app.getStatus())

	require.NoError(t, app.Logout(ctx))
	assert.Equal(t, "", app.getStatus())

	f.token, f.user = "restored", nil
	assert.Equal(t, "(signed in)", app.getStatus())
}

func TestProfile_EmptyAnswersKeepCurrent(t *testing.T) {
	capturePrints(t)
	stubAnswers(t, "", "", "new@x.io")

	f := &fakeAPI{token: "T", user: &models.User{Name: "Ann", Email: "ann@x.io", Role: models.RolePatient}}
	app, _ := newTestApp(f)

	require.NoError(t, app.Profile(context.Background()))
	assert.Equal(t, []string{"Ann", "new@x.io"}, f.profileArgs)
	assert.Equal(t, "(new@x.io patient)", app.getStatus())
}

func TestForgotAndReset(t *testing.T) {
	capturePrints(t)
	f := &fakeAPI{}
	app, _ := newTestApp(f)
	ctx := context.Background()

	stubAnswers(t, "", "ann@x.io", "patient")
	require.NoError(t, app.Forgot(ctx))
	assert.Equal(t, []string{"ann@x.io", "patient"}, f.resetArgs)

	stubAnswers(t, "newpw", "ann@x.io", "123456")
	require.NoError(t, app.Reset(ctx))
	assert.Equal(t, []string{"ann@x.io", "123456", "newpw"}, f.resetArgs)
}

/*************
 * Case commands
 *************/

func TestAnalyze_LoadsFilesAndPrintsCases(t *testing.T) {
	capturePrints(t)
	stubAnswers(t, "", "itchy for a week")

	dir := t.TempDir()
	png := filepath.Join(dir, "arm.png")
	require.NoError(t, os.WriteFile(png, []byte("\x89PNG\r\n\x1a\nrest"), 0o600))
	raw := filepath.Join(dir, "leg")
	require.NoError(t, os.WriteFile(raw, []byte("\xff\xd8\xff\xe0jpegdata"), 0o600))

	f := &fakeAPI{cases: []models.Case{testCase("c1", "Eczema"), testCase("c2", "Psoriasis")}}
	app, out := newTestApp(f)

	require.NoError(t, app.Analyze(context.Background(), []string{png, raw}))
	require.Len(t, f.images, 2)
	assert.Equal(t, "arm.png", f.images[0].FileName)
	assert.Equal(t, "image/png", f.images[0].MimeType)
	assert.Equal(t, "image/jpeg", f.images[1].MimeType, "sniffed without extension")
	assert.Equal(t, "itchy for a week", f.notes)
	assert.Contains(t, out.String(), "Eczema")
	assert.Contains(t, out.String(), "Psoriasis")
}

func TestAnalyze_RemoteFailureHintsHistory(t *testing.T) {
	lines := capturePrints(t)
	stubAnswers(t, "", "")

	orig := readFile
	readFile = func(string) ([]byte, error) { return []byte("\x89PNG\r\n\x1a\n"), nil }
	t.Cleanup(func() { readFile = orig })

	remoteErr := fmt.Errorf("%w: analysis of image 2/2 failed", common.ErrRemoteAnalysis)
	f := &fakeAPI{err: remoteErr}
	app, _ := newTestApp(f)

	err := app.Analyze(context.Background(), []string{"a.png", "b.png"})
	require.ErrorIs(t, err, common.ErrRemoteAnalysis)
	assert.Contains(t, strings.Join(*lines, "\n"), "see 'history'")
}

func TestAnalyze_MissingFile(t *testing.T) {
	capturePrints(t)
	f := &fakeAPI{}
	app, _ := newTestApp(f)

	err := app.Analyze(context.Background(), []string{filepath.Join(t.TempDir(), "nope.png")})
	require.Error(t, err)
	assert.Nil(t, f.images, "nothing is uploaded")
}

func TestParseCasesArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want *api.ListCasesRequest
		err  bool
	}{
		{name: "none", args: nil, want: &api.ListCasesRequest{}},
		{name: "flagged", args: []string{"-flagged"}, want: &api.ListCasesRequest{OnlyFlagged: true}},
		{name: "sort and condition", args: []string{"-sort", "priority-desc", "Atopic", "dermatitis"},
			want: &api.ListCasesRequest{Sort: "priority-desc", Condition: "Atopic dermatitis"}},
		{name: "unknown flag", args: []string{"-bogus"}, err: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCasesArgs(tt.args)
			if tt.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, proto.Equal(tt.want, got), "got %v", got)
		})
	}
}

func TestCases_PrintsListAndConditions(t *testing.T) {
	capturePrints(t)
	c := testCase("c1", "Eczema")
	c.IsManuallyFlagged = true
	f := &fakeAPI{cases: []models.Case{c}, conds: []string{"Eczema", "Psoriasis"}}
	app, out := newTestApp(f)

	require.NoError(t, app.Cases(context.Background(), []string{"-flagged"}))
	assert.True(t, f.filter.OnlyFlagged)
	assert.Contains(t, out.String(), "* c1")
	assert.Contains(t, out.String(), "Conditions: Eczema, Psoriasis")
}

func TestHistory_Empty(t *testing.T) {
	capturePrints(t)
	app, out := newTestApp(&fakeAPI{})

	require.NoError(t, app.History(context.Background()))
	assert.Contains(t, out.String(), "No cases yet")
}

func TestFlag_TogglesTwice(t *testing.T) {
	lines := capturePrints(t)
	c := testCase("c1", "Eczema")
	f := &fakeAPI{caseByID: map[string]*models.Case{"c1": &c}}
	app, _ := newTestApp(f)
	ctx := context.Background()

	require.NoError(t, app.Flag(ctx, "c1"))
	require.NoError(t, app.Flag(ctx, "c1"))
	assert.False(t, c.IsManuallyFlagged)
	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, "flagged for follow-up")
	assert.Contains(t, out, "unflagged")

	require.ErrorIs(t, app.Flag(ctx, "zzz"), common.ErrNotFound)
}

func TestShow_RoleSpecificView(t *testing.T) {
	capturePrints(t)
	c := testCase("c1", "Eczema")
	f := &fakeAPI{caseByID: map[string]*models.Case{"c1": &c}}
	app, out := newTestApp(f)
	ctx := context.Background()

	require.NoError(t, app.Show(ctx, "c1"))
	assert.Contains(t, out.String(), "Most likely: Eczema")
	assert.NotContains(t, out.String(), "Risk score")

	out.Reset()
	f.token, f.user = "T", &models.User{Role: models.RoleDoctor}
	require.NoError(t, app.Show(ctx, "c1"))
	assert.Contains(t, out.String(), "Risk score: 42")
	assert.Contains(t, out.String(), "Summary:    sum c1")
}

func TestPreview_DataURL(t *testing.T) {
	capturePrints(t)
	c := testCase("c1", "Eczema")
	c.ImagePreviewURL = "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("pixels"))
	f := &fakeAPI{caseByID: map[string]*models.Case{"c1": &c}}
	app, _ := newTestApp(f)

	path := filepath.Join(t.TempDir(), "out", "c1.png")
	require.NoError(t, app.Preview(context.Background(), "c1", path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(data))
}

func TestPreview_NoURL(t *testing.T) {
	capturePrints(t)
	c := testCase("c1", "Eczema")
	app, _ := newTestApp(&fakeAPI{caseByID: map[string]*models.Case{"c1": &c}})

	err := app.Preview(context.Background(), "c1", filepath.Join(t.TempDir(), "x"))
	require.ErrorContains(t, err, "no image preview")
}

/*************
 * Message commands
 *************/

func TestMessagesAndSend(t *testing.T) {
	lines := capturePrints(t)
	f := &fakeAPI{}
	app, out := newTestApp(f)
	ctx := context.Background()

	require.NoError(t, app.Messages(ctx, "c1"))
	assert.Contains(t, strings.Join(*lines, "\n"), "No messages yet")

	require.NoError(t, app.Send(ctx, "c1", "hello"))
	assert.Equal(t, []string{"hello"}, f.sent)
	assert.Contains(t, out.String(), "patient: hello")
}

func TestWatch_PrintsOnlyNewMessages(t *testing.T) {
	capturePrints(t)
	orig := notifyContext
	notifyContext = func(ctx context.Context, _ ...os.Signal) (context.Context, context.CancelFunc) {
		return context.WithCancel(ctx)
	}
	t.Cleanup(func() { notifyContext = orig })

	m1 := models.Message{Sender: models.RolePatient, Text: "first"}
	m2 := models.Message{Sender: models.RoleDoctor, Text: "second"}
	f := &fakeAPI{updates: [][]models.Message{{m1}, {m1, m2}}}
	app, out := newTestApp(f)

	require.NoError(t, app.Watch(context.Background(), "c1"))
	assert.Equal(t, 1, strings.Count(out.String(), "first"))
	assert.Equal(t, 1, strings.Count(out.String(), "second"))
}

func TestWatch_ReturnsError(t *testing.T) {
	capturePrints(t)
	f := &fakeAPI{err: errors.New("boom")}
	app, _ := newTestApp(f)

	orig := notifyContext
	notifyContext = func(ctx context.Context, _ ...os.Signal) (context.Context, context.CancelFunc) {
		return context.WithCancel(ctx)
	}
	t.Cleanup(func() { notifyContext = orig })

	require.EqualError(t, app.Watch(context.Background(), "c1"), "boom")
}
