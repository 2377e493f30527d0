package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/dmitrijs2005/dermasight/internal/models"
)

func sampleCase(ts *time.Time) models.Case {
	c := models.Case{Timestamp: ts, UserEmail: "a@x.com", ImageKey: "k1", IsManuallyFlagged: true}
	c.DoctorDashboard.CaseID = "c1"
	c.DoctorDashboard.RiskScore = "75"
	c.DoctorDashboard.PriorityFlag = models.PriorityHigh
	c.PatientDashboard.MostLikelyDisease = "Eczema"
	c.PatientDashboard.DiseasePredictions = []models.DiseasePrediction{{Disease: "Eczema", Probability: "70%", CoMorbidityFlag: true}}
	return c
}

func TestCase_OverTheWire(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	in := sampleCase(&ts)

	b, err := proto.Marshal(&CaseResponse{Case: CaseToProto(&in)})
	require.NoError(t, err)

	var resp CaseResponse
	require.NoError(t, proto.Unmarshal(b, &resp))
	out := CaseFromProto(resp.GetCase())

	assert.Equal(t, "c1", out.ID())
	assert.True(t, out.Time().Equal(ts))
	assert.Equal(t, models.RiskScore("75"), out.DoctorDashboard.RiskScore)
	assert.Equal(t, models.PriorityHigh, out.DoctorDashboard.PriorityFlag)
	assert.Equal(t, in.PatientDashboard.DiseasePredictions, out.PatientDashboard.DiseasePredictions)
	assert.True(t, out.IsManuallyFlagged)
	assert.Empty(t, out.ImageKey, "image key is server-side only")
}

func TestCase_TimestampPresence(t *testing.T) {
	pre := time.Date(1969, 12, 31, 23, 0, 0, 0, time.UTC)

	none := sampleCase(nil)
	out := CaseFromProto(CaseToProto(&none))
	assert.Nil(t, out.Timestamp)

	old := sampleCase(&pre)
	out = CaseFromProto(CaseToProto(&old))
	require.NotNil(t, out.Timestamp)
	assert.True(t, out.Timestamp.Equal(pre))
}

func TestCaseFromProto_EmptyMessage(t *testing.T) {
	out := CaseFromProto(&Case{})
	assert.Equal(t, "", out.ID())
	assert.Nil(t, out.Timestamp)
	assert.Nil(t, out.PatientDashboard.DiseasePredictions)
}

func TestUser_DropsCredentials(t *testing.T) {
	u := &models.User{Name: "Ann", Email: "a@x.com", Role: models.RoleDoctor, LicenseNumber: "L-1", PasswordHash: "h", ResetCode: "123456"}

	b, err := proto.Marshal(UserToProto(u))
	require.NoError(t, err)
	var pu User
	require.NoError(t, proto.Unmarshal(b, &pu))

	got := UserFromProto(&pu)
	assert.Equal(t, &models.User{Name: "Ann", Email: "a@x.com", Role: models.RoleDoctor, LicenseNumber: "L-1"}, got)
	assert.Nil(t, UserFromProto(nil))
}

func TestMessages_RoundTrip(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	in := []models.Message{{Sender: models.RolePatient, Text: "hi", Timestamp: ts}}

	b, err := proto.Marshal(&MessagesResponse{CaseId: "c1", Messages: MessagesToProto(in)})
	require.NoError(t, err)
	var resp MessagesResponse
	require.NoError(t, proto.Unmarshal(b, &resp))

	assert.Equal(t, "c1", resp.GetCaseId())
	assert.Equal(t, in, MessagesFromProto(resp.GetMessages()))
}
