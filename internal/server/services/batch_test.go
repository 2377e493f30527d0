package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/logging"
	"github.com/dmitrijs2005/dermasight/internal/models"
	"github.com/dmitrijs2005/dermasight/internal/server/analyzer"
	"github.com/dmitrijs2005/dermasight/internal/server/repositories/repomanager"
)

// scriptedAnalyzer fails on call number failAt (1-based, 0 = never) and
// records every request.
type scriptedAnalyzer struct {
	mu       sync.Mutex
	failAt   int
	err      error
	requests []analyzer.Request
}

func (a *scriptedAnalyzer) Analyze(_ context.Context, req analyzer.Request) (*models.Prediction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.requests = append(a.requests, req)
	if len(a.requests) == a.failAt {
		return nil, a.err
	}
	p := &models.Prediction{}
	p.PatientDashboard.Name = req.PatientName
	return p, nil
}

func images(n int) []BatchImage {
	out := make([]BatchImage, n)
	for i := range out {
		out[i] = BatchImage{FileName: "img.png", MIMEType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}
	}
	return out
}

func newBatchFixture(a analyzer.Analyzer) (*BatchService, *CaseService) {
	cases := NewCaseService(repomanager.NewMemoryRepositoryManager(), nil, logging.Nop{})
	return NewBatchService(a, cases, nil, 4*1024*1024, logging.Nop{}), cases
}

var patient = Actor{Name: "Ann", Email: "a@x.com", Role: models.RolePatient}

func TestBatchService_Success(t *testing.T) {
	ctx := context.Background()
	a := &scriptedAnalyzer{}
	b, cases := newBatchFixture(a)

	run, err := b.Analyze(ctx, patient, images(3), "itchy")
	require.NoError(t, err)
	assert.Equal(t, BatchCompleted, run.State)
	require.Len(t, run.Cases, 3)

	for i, req := range a.requests {
		assert.Equal(t, models.RolePatient, req.Role)
		assert.Equal(t, "itchy", req.Notes)
		assert.Equal(t, "image/png", req.MIMEType)
		assert.Equal(t, []string{"Ann (Image 1/3)", "Ann (Image 2/3)", "Ann (Image 3/3)"}[i], req.PatientName)
	}
	for _, c := range run.Cases {
		assert.NotEmpty(t, c.ID())
		assert.NotNil(t, c.Timestamp)
		assert.Equal(t, "a@x.com", c.UserEmail)
		assert.True(t, strings.HasPrefix(c.ImagePreviewURL, "data:image/png;base64,"))
	}
	assert.Len(t, cases.ListAll(ctx), 3)
}

func TestBatchService_FailureAtK(t *testing.T) {
	for k := 1; k <= 4; k++ {
		ctx := context.Background()
		a := &scriptedAnalyzer{failAt: k, err: errors.New("model unavailable")}
		b, cases := newBatchFixture(a)

		run, err := b.Analyze(ctx, patient, images(4), "")
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrRemoteAnalysis)

		var be *BatchError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, k, be.Index)
		assert.Equal(t, 4, be.Total)
		assert.Contains(t, err.Error(), "image "+string(rune('0'+k)))

		assert.Equal(t, BatchFailed, run.State)
		assert.Len(t, run.Cases, k-1)
		assert.Len(t, cases.ListAll(ctx), k-1)
		assert.Len(t, a.requests, k, "no analysis after the failing image")
	}
}

func TestBatchService_DoctorDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	b, cases := newBatchFixture(&scriptedAnalyzer{})

	run, err := b.Analyze(ctx, Actor{Name: "Doc", Email: "d@x.com", Role: models.RoleDoctor}, images(2), "")
	require.NoError(t, err)
	assert.Len(t, run.Cases, 2)
	assert.Empty(t, cases.ListAll(ctx))
}

func TestBatchService_Validation(t *testing.T) {
	ctx := context.Background()
	a := &scriptedAnalyzer{}
	b, _ := newBatchFixture(a)

	run, err := b.Analyze(ctx, patient, nil, "")
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, BatchIdle, run.State)

	imgs := images(2)
	imgs[1].FileName = "huge.jpg"
	imgs[1].Data = make([]byte, 4*1024*1024+1)
	_, err = b.Analyze(ctx, patient, imgs, "")
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Contains(t, err.Error(), "huge.jpg")
	assert.Empty(t, a.requests)
}

func TestBatchService_Preview(t *testing.T) {
	ctx := context.Background()
	cases := NewCaseService(repomanager.NewMemoryRepositoryManager(), nil, logging.Nop{})

	imgs := images(2)
	imgs[0].PreviewURL = "blob:mine"

	b := NewBatchService(&scriptedAnalyzer{}, cases, &fakeImages{}, 0, logging.Nop{})
	run, err := b.Analyze(ctx, patient, imgs, "")
	require.NoError(t, err)
	assert.Equal(t, "blob:mine", run.Cases[0].ImagePreviewURL)
	assert.Empty(t, run.Cases[0].ImageKey)
	assert.Equal(t, "https://s3.local/cases/1?sig", run.Cases[1].ImagePreviewURL)
	assert.Equal(t, "cases/1", run.Cases[1].ImageKey)

	b = NewBatchService(&scriptedAnalyzer{}, cases, &fakeImages{putErr: errors.New("s3 down")}, 0, logging.Nop{})
	run, err = b.Analyze(ctx, patient, images(1), "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(run.Cases[0].ImagePreviewURL, "data:image/png;base64,"))
	assert.Empty(t, run.Cases[0].ImageKey)
}

func TestBatchState_String(t *testing.T) {
	assert.Equal(t, "idle", BatchIdle.String())
	assert.Equal(t, "running", BatchRunning.String())
	assert.Equal(t, "completed", BatchCompleted.String())
	assert.Equal(t, "failed", BatchFailed.String())
}
