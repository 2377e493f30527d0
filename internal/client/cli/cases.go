package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/dermasight/internal/api"
	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/filex"
	"github.com/dmitrijs2005/dermasight/internal/models"
	"github.com/dmitrijs2005/dermasight/internal/netx"
)

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

func loadImage(path string) (*api.Image, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if ct == "" {
		ct = http.DetectContentType(data)
	}
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return &api.Image{FileName: filepath.Base(path), MimeType: ct, Data: data}, nil
}

// Analyze uploads the given images as one batch with shared notes and
// prints the resulting cases. When an image fails, the cases of the
// images before it are already in the history of a patient.
func (a *App) Analyze(ctx context.Context, files []string) error {
	images := make([]*api.Image, 0, len(files))
	for _, f := range files {
		img, err := loadImage(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		images = append(images, img)
	}

	notes, err := getMultiline(a.reader, "Notes for the clinician (optional):", a.out)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Analyzing %d image(s)...", len(images)))

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	cases, err := a.api.AnalyzeBatch(ctx, images, notes)
	if err != nil {
		if errors.Is(err, common.ErrRemoteAnalysis) && a.role() != models.RoleDoctor {
			printlnFn("Results of the images analyzed before the failure were saved, see 'history'.")
		}
		return err
	}

	for i := range cases {
		printCase(a.out, &cases[i], a.role())
	}
	return nil
}

// History lists the cases of the signed-in patient, newest first. For a
// doctor it lists every case.
func (a *App) History(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	cases, err := a.api.ListCases(ctx, nil)
	if err != nil {
		return err
	}
	printCaseList(a.out, cases)
	return nil
}

// parseCasesArgs reads `[-flagged] [-sort order] [condition words...]`.
func parseCasesArgs(args []string) (*api.ListCasesRequest, error) {
	req := &api.ListCasesRequest{}

	fs := flag.NewFlagSet("cases", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&req.OnlyFlagged, "flagged", false, "only manually flagged cases")
	fs.StringVar(&req.Sort, "sort", "", "date-desc|date-asc|priority-desc|priority-asc|risk-desc|risk-asc")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	req.Condition = strings.Join(fs.Args(), " ")
	return req, nil
}

// Cases is the doctor portal list: filters, sort orders and the list of
// known conditions to filter by.
func (a *App) Cases(ctx context.Context, args []string) error {
	req, err := parseCasesArgs(args)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	cases, err := a.api.ListCases(ctx, req)
	if err != nil {
		return err
	}
	printCaseList(a.out, cases)

	conditions, err := a.api.Conditions(ctx)
	if err != nil {
		return err
	}
	if len(conditions) > 0 {
		fmt.Fprintf(a.out, "Conditions: %s\n", strings.Join(conditions, ", "))
	}
	return nil
}

// Flag toggles the manual follow-up flag of a case.
func (a *App) Flag(ctx context.Context, caseID string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	c, err := a.api.ToggleFlag(ctx, caseID)
	if err != nil {
		return err
	}
	if c.IsManuallyFlagged {
		printlnFn("Case", caseID, "flagged for follow-up")
	} else {
		printlnFn("Case", caseID, "unflagged")
	}
	return nil
}

func (a *App) Show(ctx context.Context, caseID string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	c, err := a.api.GetCase(ctx, caseID)
	if err != nil {
		return err
	}
	printCase(a.out, c, a.role())
	return nil
}

// Preview downloads the image of a case into path.
func (a *App) Preview(ctx context.Context, caseID, path string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	c, err := a.api.GetCase(ctx, caseID)
	if err != nil {
		return err
	}
	if c.ImagePreviewURL == "" {
		return fmt.Errorf("case %s has no image preview", caseID)
	}

	data, ct, err := netx.FetchPreview(ctx, a.http, c.ImagePreviewURL)
	if err != nil {
		return err
	}
	if err := filex.WritePrivate(path, data); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Saved %d bytes (%s) to %s", len(data), ct, path))
	return nil
}
