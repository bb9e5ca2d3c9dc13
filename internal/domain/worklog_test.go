package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() Submission {
	return Submission{
		Date:          "2024-01-15",
		AnnotatorName: " Alice ",
		ProjectName:   "P1",
		TaskType:      "QA",
		ImagesDone:    "50",
		HoursSpent:    "4",
		Status:        "Completed",
	}
}

func TestValidateSubmission_TrimsNames(t *testing.T) {
	entry, errs := ValidateSubmission(validSubmission())
	require.Empty(t, errs)
	require.NotNil(t, entry)

	assert.Equal(t, "Alice", entry.AnnotatorName)
	assert.Equal(t, "P1", entry.ProjectName)
	assert.Equal(t, "2024-01-15", entry.Date)
	assert.Equal(t, 50, entry.ImagesDone)
	assert.Equal(t, 4.0, entry.HoursSpent)
	assert.Zero(t, entry.ID)
	assert.Empty(t, entry.CreatedAt)
}

func TestValidateSubmission_AcceptsEitherImagesOrHours(t *testing.T) {
	cases := []struct {
		name   string
		images string
		hours  string
	}{
		{"images only", "10", "0"},
		{"hours only", "0", "1.5"},
		{"hours only blank images", "", "0.25"},
		{"both", "3", "2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validSubmission()
			s.ImagesDone = tc.images
			s.HoursSpent = tc.hours
			entry, errs := ValidateSubmission(s)
			assert.Empty(t, errs)
			assert.NotNil(t, entry)
		})
	}
}

func TestValidateSubmission_NothingLogged(t *testing.T) {
	s := validSubmission()
	s.ImagesDone = "0"
	s.HoursSpent = ""

	entry, errs := ValidateSubmission(s)
	assert.Nil(t, entry)
	assert.Equal(t, FieldErrors{FieldImagesDone: MsgNothingLogged}, errs)
}

func TestValidateSubmission_CrossFieldSkippedWhenFieldsFail(t *testing.T) {
	s := validSubmission()
	s.ImagesDone = "0"
	s.HoursSpent = "0"
	s.Status = "  "

	_, errs := ValidateSubmission(s)
	assert.Equal(t, FieldErrors{FieldStatus: "Status is required"}, errs)
}

func TestValidateSubmission_CollectsEveryField(t *testing.T) {
	s := Submission{
		Date:       "15/01/2024",
		ImagesDone: "-1",
		HoursSpent: "-0.5",
	}

	_, errs := ValidateSubmission(s)
	assert.Equal(t, FieldErrors{
		FieldDate:          "Invalid date format. Use YYYY-MM-DD",
		FieldAnnotatorName: "Annotator name is required",
		FieldProjectName:   "Project name is required",
		FieldTaskType:      "Task type is required",
		FieldStatus:        "Status is required",
		FieldImagesDone:    "Images done cannot be negative",
		FieldHoursSpent:    "Hours spent cannot be negative",
	}, errs)
	assert.Equal(t, []string{
		FieldAnnotatorName, FieldDate, FieldHoursSpent, FieldImagesDone,
		FieldProjectName, FieldStatus, FieldTaskType,
	}, errs.Fields())
}

func TestValidateSubmission_DateRules(t *testing.T) {
	s := validSubmission()
	s.Date = ""
	_, errs := ValidateSubmission(s)
	assert.Equal(t, "Date is required", errs[FieldDate])

	s.Date = "2024-02-30"
	_, errs = ValidateSubmission(s)
	assert.Equal(t, "Invalid date format. Use YYYY-MM-DD", errs[FieldDate])
}

func TestValidateSubmission_MalformedNumbers(t *testing.T) {
	s := validSubmission()
	s.ImagesDone = "ten"
	s.HoursSpent = "four"

	_, errs := ValidateSubmission(s)
	assert.Equal(t, "Images done must be a whole number", errs[FieldImagesDone])
	assert.Equal(t, "Hours spent must be a number", errs[FieldHoursSpent])

	for _, hours := range []string{"NaN", "Inf", "+Inf", "-Inf", "infinity"} {
		t.Run(hours, func(t *testing.T) {
			s := validSubmission()
			s.HoursSpent = hours
			entry, errs := ValidateSubmission(s)
			assert.Nil(t, entry)
			assert.Equal(t, FieldErrors{FieldHoursSpent: "Hours spent must be a number"}, errs)
		})
	}
}

func TestValidateSubmission_FoldsCRLFInNotes(t *testing.T) {
	s := validSubmission()
	s.Challenges = "slow tool\r\nlabels unclear"
	s.Suggestions = "hotkeys\r\n"
	s.ExtraNotes = "keep\rcarriage"

	entry, errs := ValidateSubmission(s)
	require.Empty(t, errs)
	assert.Equal(t, "slow tool\nlabels unclear", entry.Challenges)
	assert.Equal(t, "hotkeys\n", entry.Suggestions)
	assert.Equal(t, "keep\rcarriage", entry.ExtraNotes)
}

func TestValidateSubmission_FreeTextTaskTypeAccepted(t *testing.T) {
	s := validSubmission()
	s.TaskType = "Keypoints (custom)"
	s.Status = "Waiting on client"

	entry, errs := ValidateSubmission(s)
	require.Empty(t, errs)
	assert.Equal(t, "Keypoints (custom)", entry.TaskType)
	assert.Equal(t, "Waiting on client", entry.Status)
}

func TestFieldErrors_Error(t *testing.T) {
	errs := FieldErrors{FieldStatus: "Status is required", FieldDate: "Date is required"}
	assert.Equal(t, "invalid submission: date: Date is required; status: Status is required", errs.Error())
}

func TestWorkLogEntry_Flagged(t *testing.T) {
	assert.False(t, (&WorkLogEntry{}).Flagged())
	assert.True(t, (&WorkLogEntry{Challenges: "slow tool"}).Flagged())
	assert.True(t, (&WorkLogEntry{Suggestions: "add hotkeys"}).Flagged())
}

func TestGroupSummary_Efficiency(t *testing.T) {
	assert.Equal(t, 10.0, GroupSummary{TotalImages: 100, TotalHours: 10}.Efficiency())
	assert.Equal(t, 0.0, GroupSummary{TotalImages: 100}.Efficiency())
}
