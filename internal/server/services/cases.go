package services

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/logging"
	"github.com/dmitrijs2005/dermasight/internal/models"
	"github.com/dmitrijs2005/dermasight/internal/server/imagestore"
	"github.com/dmitrijs2005/dermasight/internal/server/repositories/repomanager"
)

// SortOrder names a case list ordering of the doctor portal.
type SortOrder string

const (
	SortDateDesc     SortOrder = "date-desc"
	SortDateAsc      SortOrder = "date-asc"
	SortPriorityDesc SortOrder = "priority-desc"
	SortPriorityAsc  SortOrder = "priority-asc"
	SortRiskDesc     SortOrder = "risk-desc"
	SortRiskAsc      SortOrder = "risk-asc"
)

// Valid reports whether o is a known order. The empty order means date-desc.
func (o SortOrder) Valid() bool {
	switch o {
	case "", SortDateDesc, SortDateAsc, SortPriorityDesc, SortPriorityAsc, SortRiskDesc, SortRiskAsc:
		return true
	}
	return false
}

// CaseFilter selects and orders cases. An empty Condition matches all.
type CaseFilter struct {
	OnlyFlagged bool
	Condition   string
	Sort        SortOrder
}

// CaseService is the case directory. When an image store is configured,
// cases that reference a stored image get a fresh presigned preview URL
// whenever they are read.
type CaseService struct {
	repomanager repomanager.RepositoryManager
	images      imagestore.Store
	log         logging.Logger
}

func NewCaseService(m repomanager.RepositoryManager, images imagestore.Store, log logging.Logger) *CaseService {
	return &CaseService{
		repomanager: m,
		images:      images,
		log:         log.With("module", "cases"),
	}
}

func (s *CaseService) withPreview(ctx context.Context, c *models.Case) {
	if s.images == nil || c.ImageKey == "" {
		return
	}
	url, err := s.images.PresignGet(ctx, c.ImageKey)
	if err != nil {
		s.log.Error(ctx, "presign preview failed", "case_id", c.ID(), "error", err)
		return
	}
	c.ImagePreviewURL = url
}

// ListAll returns every case, newest first. Storage failures yield an
// empty list.
func (s *CaseService) ListAll(ctx context.Context) []models.Case {
	cases, err := s.repomanager.Cases().List(ctx)
	if err != nil {
		s.log.Error(ctx, "case list failed", "error", err)
		return []models.Case{}
	}
	if cases == nil {
		cases = []models.Case{}
	}
	for i := range cases {
		s.withPreview(ctx, &cases[i])
	}
	return cases
}

// ListForUser returns the cases visible to a user: their own for patients,
// all for doctors.
func (s *CaseService) ListForUser(ctx context.Context, email string, role models.Role) []models.Case {
	all := s.ListAll(ctx)
	if role == models.RoleDoctor {
		return all
	}
	out := make([]models.Case, 0, len(all))
	for _, c := range all {
		if c.UserEmail == email {
			out = append(out, c)
		}
	}
	return out
}

// Upsert stores c, replacing a case with the same id.
func (s *CaseService) Upsert(ctx context.Context, c *models.Case) {
	if err := s.repomanager.Cases().Upsert(ctx, c); err != nil {
		s.log.Error(ctx, "case upsert failed", "case_id", c.ID(), "error", err)
	}
}

// Update replaces a stored case in place; absent cases are ignored.
func (s *CaseService) Update(ctx context.Context, c *models.Case) {
	ok, err := s.repomanager.Cases().Update(ctx, c)
	if err != nil {
		s.log.Error(ctx, "case update failed", "case_id", c.ID(), "error", err)
		return
	}
	if !ok {
		s.log.Debug(ctx, "case update skipped, case absent", "case_id", c.ID())
	}
}

// Get returns one case or common.ErrCaseNotFound.
func (s *CaseService) Get(ctx context.Context, id string) (*models.Case, error) {
	c, err := s.repomanager.Cases().Get(ctx, id)
	if err != nil {
		if !errors.Is(err, common.ErrCaseNotFound) {
			s.log.Error(ctx, "case get failed", "case_id", id, "error", err)
		}
		return nil, common.ErrCaseNotFound
	}
	s.withPreview(ctx, c)
	return c, nil
}

// ToggleFlag flips the manual flag of a case and returns the new state.
func (s *CaseService) ToggleFlag(ctx context.Context, id string) (*models.Case, error) {
	c, err := s.repomanager.Cases().Get(ctx, id)
	if err != nil {
		if !errors.Is(err, common.ErrCaseNotFound) {
			s.log.Error(ctx, "case get failed", "case_id", id, "error", err)
		}
		return nil, common.ErrCaseNotFound
	}
	c.IsManuallyFlagged = !c.IsManuallyFlagged
	s.Update(ctx, c)
	s.withPreview(ctx, c)
	return c, nil
}

// Query filters and sorts the full case list. Manually flagged cases
// always come first; the chosen order applies within each group.
func (s *CaseService) Query(ctx context.Context, f CaseFilter) ([]models.Case, error) {
	if !f.Sort.Valid() {
		return nil, common.Validation("unknown sort order " + string(f.Sort))
	}
	return ApplyFilter(s.ListAll(ctx), f), nil
}

// ApplyFilter is the pure part of Query.
func ApplyFilter(cases []models.Case, f CaseFilter) []models.Case {
	out := make([]models.Case, 0, len(cases))
	for _, c := range cases {
		if f.OnlyFlagged && !c.IsManuallyFlagged {
			continue
		}
		if f.Condition != "" && c.PatientDashboard.MostLikelyDisease != f.Condition {
			continue
		}
		out = append(out, c)
	}

	less := orderFunc(f.Sort)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsManuallyFlagged != b.IsManuallyFlagged {
			return a.IsManuallyFlagged
		}
		return less(a, b)
	})
	return out
}

func orderFunc(o SortOrder) func(a, b models.Case) bool {
	switch o {
	case SortDateAsc:
		return func(a, b models.Case) bool { return caseMillis(a) < caseMillis(b) }
	case SortPriorityDesc:
		return func(a, b models.Case) bool {
			return a.DoctorDashboard.PriorityFlag.Rank() > b.DoctorDashboard.PriorityFlag.Rank()
		}
	case SortPriorityAsc:
		return func(a, b models.Case) bool {
			return a.DoctorDashboard.PriorityFlag.Rank() < b.DoctorDashboard.PriorityFlag.Rank()
		}
	case SortRiskDesc:
		return func(a, b models.Case) bool { return a.DoctorDashboard.RiskScore.Int() > b.DoctorDashboard.RiskScore.Int() }
	case SortRiskAsc:
		return func(a, b models.Case) bool { return a.DoctorDashboard.RiskScore.Int() < b.DoctorDashboard.RiskScore.Int() }
	default:
		return func(a, b models.Case) bool { return caseMillis(a) > caseMillis(b) }
	}
}

// caseMillis sorts a missing timestamp before any real one.
func caseMillis(c models.Case) int64 {
	if c.Timestamp == nil {
		return math.MinInt64
	}
	return c.Timestamp.UnixMilli()
}

// Conditions returns the distinct most-likely diagnoses across all cases,
// sorted.
func (s *CaseService) Conditions(ctx context.Context) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, c := range s.ListAll(ctx) {
		d := c.PatientDashboard.MostLikelyDisease
		if _, ok := seen[d]; ok || d == "" {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
