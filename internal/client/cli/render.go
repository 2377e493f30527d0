package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/dermasight/internal/models"
)

const timeLayout = "2006-01-02 15:04"

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func printCaseList(w io.Writer, cases []models.Case) {
	if len(cases) == 0 {
		fmt.Fprintln(w, "No cases yet")
		return
	}
	for _, c := range cases {
		flag := " "
		if c.IsManuallyFlagged {
			flag = "*"
		}
		fmt.Fprintf(w, "%s %s  %s  %-24s priority=%-6s risk=%s\n",
			flag, c.ID(), formatTime(c.Timestamp), c.PatientDashboard.MostLikelyDisease,
			c.DoctorDashboard.PriorityFlag, c.DoctorDashboard.RiskScore)
	}
}

// printCase renders the clinician dashboard for doctors and the patient
// dashboard for everyone else.
func printCase(w io.Writer, c *models.Case, role models.Role) {
	fmt.Fprintf(w, "Case %s  %s\n", c.ID(), formatTime(c.Timestamp))
	if c.Warning != "" {
		fmt.Fprintf(w, "  Warning: %s\n", c.Warning)
	}

	if role == models.RoleDoctor {
		d := c.DoctorDashboard
		fmt.Fprintf(w, "  Patient:    %s (%s)\n", c.PatientDashboard.Name, c.UserEmail)
		fmt.Fprintf(w, "  Summary:    %s\n", d.Summary)
		fmt.Fprintf(w, "  Risk score: %s\n", d.RiskScore)
		fmt.Fprintf(w, "  Priority:   %s\n", d.PriorityFlag)
		if c.IsManuallyFlagged {
			fmt.Fprintln(w, "  Flagged for follow-up")
		}
		fmt.Fprintf(w, "  Alert:      %s\n", d.PatientAlert)
		fmt.Fprintf(w, "  Notes:      %s\n", d.ClinicalNotes)
		fmt.Fprintf(w, "  Action:     %s\n", d.ActionSuggestion)
		return
	}

	p := c.PatientDashboard
	fmt.Fprintf(w, "  Most likely: %s\n", p.MostLikelyDisease)
	for _, d := range p.DiseasePredictions {
		line := fmt.Sprintf("    - %s %s (severity %s)", d.Disease, d.Probability, d.Severity)
		if d.CoMorbidityFlag {
			line += " [co-morbidity]"
		}
		fmt.Fprintln(w, line)
		if d.Explanation != "" {
			fmt.Fprintf(w, "      %s\n", d.Explanation)
		}
	}
	fmt.Fprintf(w, "  Recommendation: %s\n", p.Recommendation)
	if p.DoctorMessage != "" {
		fmt.Fprintf(w, "  From your doctor: %s\n", p.DoctorMessage)
	}
	if p.ImageQualityFeedback != "" {
		fmt.Fprintf(w, "  Image quality: %s\n", p.ImageQualityFeedback)
	}
}

func printThread(w io.Writer, msgs []models.Message) {
	for _, m := range msgs {
		fmt.Fprintf(w, "[%s] %s: %s\n", m.Timestamp.Local().Format(timeLayout), m.Sender, strings.TrimSpace(m.Text))
	}
}
