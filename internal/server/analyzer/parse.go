package analyzer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/models"
	"github.com/google/uuid"
)

// stripFences removes a surrounding markdown code fence, with or without a
// language tag.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		if tag := strings.TrimSpace(s[:nl]); tag == "" || !strings.ContainsAny(tag, "{[") {
			s = s[nl+1:]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ParsePrediction decodes model output. Empty text, non-JSON text and JSON
// without both dashboards are errors matching common.ErrRemoteAnalysis. A
// missing case id is generated.
func ParsePrediction(text string) (*models.Prediction, error) {
	body := stripFences(text)
	if body == "" {
		return nil, fmt.Errorf("%w: empty model output", common.ErrRemoteAnalysis)
	}

	var raw struct {
		PatientDashboard *models.PatientDashboard `json:"patient_dashboard"`
		DoctorDashboard  *models.DoctorDashboard  `json:"doctor_dashboard"`
		Warning          string                   `json:"warning"`
	}
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, fmt.Errorf("%w: malformed model output: %v", common.ErrRemoteAnalysis, err)
	}
	if err := checkDashboards(raw.PatientDashboard, raw.DoctorDashboard); err != nil {
		return nil, fmt.Errorf("%w: malformed model output: %v", common.ErrRemoteAnalysis, err)
	}

	p := models.Prediction{PatientDashboard: *raw.PatientDashboard, DoctorDashboard: *raw.DoctorDashboard, Warning: raw.Warning}

	if strings.TrimSpace(p.DoctorDashboard.CaseID) == "" {
		p.DoctorDashboard.CaseID = uuid.NewString()
	}
	return &p, nil
}

func checkDashboards(pd *models.PatientDashboard, dd *models.DoctorDashboard) error {
	switch {
	case pd == nil:
		return errors.New("missing patient_dashboard")
	case dd == nil:
		return errors.New("missing doctor_dashboard")
	case strings.TrimSpace(pd.MostLikelyDisease) == "":
		return errors.New("missing most_likely_disease")
	case strings.TrimSpace(string(dd.PriorityFlag)) == "":
		return errors.New("missing priority_flag")
	}
	return nil
}
