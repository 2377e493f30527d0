package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/logging"
	"github.com/dmitrijs2005/dermasight/internal/models"
	"github.com/dmitrijs2005/dermasight/internal/server/analyzer"
	"github.com/dmitrijs2005/dermasight/internal/server/imagestore"
)

// BatchState is the lifecycle state of a batch run.
type BatchState int

const (
	BatchIdle BatchState = iota
	BatchRunning
	BatchCompleted
	BatchFailed
)

func (s BatchState) String() string {
	switch s {
	case BatchIdle:
		return "idle"
	case BatchRunning:
		return "running"
	case BatchCompleted:
		return "completed"
	case BatchFailed:
		return "failed"
	}
	return "unknown"
}

// BatchImage is one uploaded image. PreviewURL is optional.
type BatchImage struct {
	FileName   string
	MIMEType   string
	Data       []byte
	PreviewURL string
}

// Actor is the user submitting a batch.
type Actor struct {
	Name  string
	Email string
	Role  models.Role
}

// BatchRun tracks the progress of a single batch.
type BatchRun struct {
	State BatchState
	Total int
	Cases []models.Case
	Err   error
}

// BatchError reports the image that stopped a batch. Index is 1-based.
type BatchError struct {
	Index int
	Total int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("analysis of image %d/%d failed: %v", e.Index, e.Total, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }

// CaseUpserter persists a case produced by a batch.
type CaseUpserter interface {
	Upsert(ctx context.Context, c *models.Case)
}

// BatchService analyzes uploaded images one at a time. Patient cases are
// persisted as soon as they are produced so a later failure keeps the
// earlier results.
type BatchService struct {
	analyzer      analyzer.Analyzer
	cases         CaseUpserter
	images        imagestore.Store
	maxImageBytes int64
	now           func() time.Time
	log           logging.Logger
}

func NewBatchService(a analyzer.Analyzer, cases CaseUpserter, images imagestore.Store, maxImageBytes int64, log logging.Logger) *BatchService {
	return &BatchService{
		analyzer:      a,
		cases:         cases,
		images:        images,
		maxImageBytes: maxImageBytes,
		now:           time.Now,
		log:           log.With("module", "batch"),
	}
}

func (s *BatchService) validate(images []BatchImage) error {
	if len(images) == 0 {
		return common.Validation("please upload at least one image before analyzing")
	}
	if s.maxImageBytes <= 0 {
		return nil
	}
	var tooLarge []string
	for i, img := range images {
		if int64(len(img.Data)) > s.maxImageBytes {
			name := img.FileName
			if name == "" {
				name = fmt.Sprintf("image %d", i+1)
			}
			tooLarge = append(tooLarge, name)
		}
	}
	if len(tooLarge) > 0 {
		return common.Validation(fmt.Sprintf("the following files are too large (max %d MB): %s",
			s.maxImageBytes/(1024*1024), strings.Join(tooLarge, ", ")))
	}
	return nil
}

// preview picks the preview URL for img: the caller's own, then a
// presigned object URL, then an inline data URL.
func (s *BatchService) preview(ctx context.Context, img BatchImage) (url, key string) {
	if img.PreviewURL != "" {
		return img.PreviewURL, ""
	}
	if s.images != nil {
		key, err := s.images.Put(ctx, img.Data, img.MIMEType)
		if err == nil {
			url, err = s.images.PresignGet(ctx, key)
		}
		if err == nil {
			return url, key
		}
		s.log.Error(ctx, "image upload failed", "file", img.FileName, "error", err)
	}
	return dataURL(img.MIMEType, img.Data), ""
}

func dataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Analyze runs the batch. On failure the returned run holds the cases
// produced before the failing image and err is a *BatchError.
func (s *BatchService) Analyze(ctx context.Context, actor Actor, images []BatchImage, notes string) (*BatchRun, error) {
	run := &BatchRun{State: BatchIdle, Total: len(images)}

	if err := s.validate(images); err != nil {
		return run, err
	}

	run.State = BatchRunning
	run.Cases = make([]models.Case, 0, len(images))

	for i, img := range images {
		p, err := s.analyzer.Analyze(ctx, analyzer.Request{
			Image:       img.Data,
			MIMEType:    img.MIMEType,
			Role:        actor.Role,
			PatientName: fmt.Sprintf("%s (Image %d/%d)", actor.Name, i+1, len(images)),
			Notes:       notes,
		})
		if err != nil {
			if !errors.Is(err, common.ErrRemoteAnalysis) {
				err = fmt.Errorf("%w: %w", common.ErrRemoteAnalysis, err)
			}
			run.State = BatchFailed
			run.Err = &BatchError{Index: i + 1, Total: len(images), Err: err}
			s.log.Warn(ctx, "batch aborted", "image", i+1, "total", len(images), "error", err)
			return run, run.Err
		}

		ts := s.now().UTC()
		c := models.Case{Prediction: *p, Timestamp: &ts, UserEmail: actor.Email}
		if c.DoctorDashboard.CaseID == "" {
			c.DoctorDashboard.CaseID = uuid.NewString()
		}
		c.ImagePreviewURL, c.ImageKey = s.preview(ctx, img)

		if actor.Role == models.RolePatient {
			s.cases.Upsert(ctx, &c)
		}
		run.Cases = append(run.Cases, c)
	}

	run.State = BatchCompleted
	return run, nil
}
