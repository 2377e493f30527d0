// Package analyzer turns a skin image plus context into a structured
// prediction by calling a remote generative model.
package analyzer

import (
	"context"

	"github.com/dmitrijs2005/dermasight/internal/models"
)

// Request is one image submitted for analysis.
type Request struct {
	Image       []byte
	MIMEType    string
	Role        models.Role
	PatientName string
	Notes       string
}

// Analyzer performs a single remote analysis. Errors match
// common.ErrRemoteAnalysis.
type Analyzer interface {
	Analyze(ctx context.Context, req Request) (*models.Prediction, error)
}

// Func adapts a function to Analyzer.
type Func func(ctx context.Context, req Request) (*models.Prediction, error)

func (f Func) Analyze(ctx context.Context, req Request) (*models.Prediction, error) {
	return f(ctx, req)
}
