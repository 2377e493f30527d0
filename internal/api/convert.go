package api

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/dermasight/internal/models"
)

func timeToProto(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func timeFromProto(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

// UserToProto drops credentials and reset state.
func UserToProto(u *models.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		Name:          u.Name,
		Email:         u.Email,
		Role:          string(u.Role),
		LicenseNumber: u.LicenseNumber,
		DateOfBirth:   u.DateOfBirth,
	}
}

func UserFromProto(u *User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{
		Name:          u.GetName(),
		Email:         u.GetEmail(),
		Role:          models.Role(u.GetRole()),
		LicenseNumber: u.GetLicenseNumber(),
		DateOfBirth:   u.GetDateOfBirth(),
	}
}

// CaseToProto converts a stored case. The image store key stays on the
// server.
func CaseToProto(c *models.Case) *Case {
	preds := make([]*DiseasePrediction, 0, len(c.PatientDashboard.DiseasePredictions))
	for _, p := range c.PatientDashboard.DiseasePredictions {
		preds = append(preds, &DiseasePrediction{
			Disease:         p.Disease,
			Probability:     p.Probability,
			Severity:        p.Severity,
			CoMorbidityFlag: p.CoMorbidityFlag,
			Explanation:     p.Explanation,
		})
	}

	pd, dd := c.PatientDashboard, c.DoctorDashboard
	return &Case{
		PatientDashboard: &PatientDashboard{
			Name:                 pd.Name,
			DiseasePredictions:   preds,
			MostLikelyDisease:    pd.MostLikelyDisease,
			Recommendation:       pd.Recommendation,
			DoctorMessage:        pd.DoctorMessage,
			ImageQualityFeedback: pd.ImageQualityFeedback,
		},
		DoctorDashboard: &DoctorDashboard{
			CaseId:           dd.CaseID,
			Summary:          dd.Summary,
			RiskScore:        string(dd.RiskScore),
			PriorityFlag:     string(dd.PriorityFlag),
			PatientAlert:     dd.PatientAlert,
			ClinicalNotes:    dd.ClinicalNotes,
			ActionSuggestion: dd.ActionSuggestion,
		},
		Warning:           c.Warning,
		Timestamp:         timeToProto(c.Timestamp),
		ImagePreviewUrl:   c.ImagePreviewURL,
		UserEmail:         c.UserEmail,
		IsManuallyFlagged: c.IsManuallyFlagged,
	}
}

func CaseFromProto(c *Case) models.Case {
	pd, dd := c.GetPatientDashboard(), c.GetDoctorDashboard()

	var preds []models.DiseasePrediction
	for _, p := range pd.GetDiseasePredictions() {
		preds = append(preds, models.DiseasePrediction{
			Disease:         p.GetDisease(),
			Probability:     p.GetProbability(),
			Severity:        p.GetSeverity(),
			CoMorbidityFlag: p.GetCoMorbidityFlag(),
			Explanation:     p.GetExplanation(),
		})
	}

	return models.Case{
		Prediction: models.Prediction{
			PatientDashboard: models.PatientDashboard{
				Name:                 pd.GetName(),
				DiseasePredictions:   preds,
				MostLikelyDisease:    pd.GetMostLikelyDisease(),
				Recommendation:       pd.GetRecommendation(),
				DoctorMessage:        pd.GetDoctorMessage(),
				ImageQualityFeedback: pd.GetImageQualityFeedback(),
			},
			DoctorDashboard: models.DoctorDashboard{
				CaseID:           dd.GetCaseId(),
				Summary:          dd.GetSummary(),
				RiskScore:        models.RiskScore(dd.GetRiskScore()),
				PriorityFlag:     models.Priority(dd.GetPriorityFlag()),
				PatientAlert:     dd.GetPatientAlert(),
				ClinicalNotes:    dd.GetClinicalNotes(),
				ActionSuggestion: dd.GetActionSuggestion(),
			},
			Warning: c.GetWarning(),
		},
		Timestamp:         timeFromProto(c.GetTimestamp()),
		ImagePreviewURL:   c.GetImagePreviewUrl(),
		UserEmail:         c.GetUserEmail(),
		IsManuallyFlagged: c.GetIsManuallyFlagged(),
	}
}

func CasesToProto(cases []models.Case) []*Case {
	out := make([]*Case, 0, len(cases))
	for i := range cases {
		out = append(out, CaseToProto(&cases[i]))
	}
	return out
}

func CasesFromProto(cases []*Case) []models.Case {
	out := make([]models.Case, 0, len(cases))
	for _, c := range cases {
		out = append(out, CaseFromProto(c))
	}
	return out
}

func MessagesToProto(msgs []models.Message) []*Message {
	out := make([]*Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, &Message{
			Sender:    string(m.Sender),
			Text:      m.Text,
			Timestamp: timestamppb.New(m.Timestamp),
		})
	}
	return out
}

func MessagesFromProto(msgs []*Message) []models.Message {
	out := make([]models.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, models.Message{
			Sender:    models.Role(m.GetSender()),
			Text:      m.GetText(),
			Timestamp: m.GetTimestamp().AsTime(),
		})
	}
	return out
}
