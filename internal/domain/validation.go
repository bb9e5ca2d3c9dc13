package domain

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Field names used as FieldErrors keys. They match the submission form inputs.
const (
	FieldDate          = "date"
	FieldAnnotatorName = "annotator_name"
	FieldProjectName   = "project_name"
	FieldTaskType      = "task_type"
	FieldImagesDone    = "images_done"
	FieldHoursSpent    = "hours_spent"
	FieldStatus        = "status"
)

// MsgNothingLogged is attached to images_done when neither images nor hours
// were reported.
const MsgNothingLogged = "Please log either images done or hours spent"

// Submission holds raw form values as typed by the submitter.
type Submission struct {
	Date          string
	AnnotatorName string
	ProjectName   string
	TaskType      string
	ImagesDone    string
	HoursSpent    string
	Status        string
	Challenges    string
	Suggestions   string
	ExtraNotes    string
}

// FieldErrors maps a field name to a human-readable message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, f := range fe.Fields() {
		parts = append(parts, f+": "+fe[f])
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}

// Fields returns the offending field names in sorted order.
func (fe FieldErrors) Fields() []string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ValidateSubmission canonicalizes a submission into a WorkLogEntry.
// Every field rule runs; the images/hours cross-check only runs once all
// fields pass. ID and CreatedAt are left for the store to assign.
func ValidateSubmission(s Submission) (*WorkLogEntry, FieldErrors) {
	errs := FieldErrors{}

	date := strings.TrimSpace(s.Date)
	if date == "" {
		errs[FieldDate] = "Date is required"
	} else if _, err := time.Parse(DateLayout, date); err != nil {
		errs[FieldDate] = "Invalid date format. Use YYYY-MM-DD"
	}

	annotator := requireText(errs, FieldAnnotatorName, s.AnnotatorName, "Annotator name is required")
	project := requireText(errs, FieldProjectName, s.ProjectName, "Project name is required")
	taskType := requireText(errs, FieldTaskType, s.TaskType, "Task type is required")
	status := requireText(errs, FieldStatus, s.Status, "Status is required")

	images := 0
	if v := strings.TrimSpace(s.ImagesDone); v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil:
			errs[FieldImagesDone] = "Images done must be a whole number"
		case n < 0:
			errs[FieldImagesDone] = "Images done cannot be negative"
		default:
			images = n
		}
	}

	hours := 0.0
	if v := strings.TrimSpace(s.HoursSpent); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		switch {
		case err != nil, math.IsNaN(f), math.IsInf(f, 0):
			errs[FieldHoursSpent] = "Hours spent must be a number"
		case f < 0:
			errs[FieldHoursSpent] = "Hours spent cannot be negative"
		default:
			hours = f
		}
	}

	if len(errs) == 0 && images == 0 && hours == 0 {
		errs[FieldImagesDone] = MsgNothingLogged
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return &WorkLogEntry{
		Date:          date,
		AnnotatorName: annotator,
		ProjectName:   project,
		TaskType:      taskType,
		ImagesDone:    images,
		HoursSpent:    hours,
		Status:        status,
		Challenges:    freeText(s.Challenges),
		Suggestions:   freeText(s.Suggestions),
		ExtraNotes:    freeText(s.ExtraNotes),
	}, nil
}

func requireText(errs FieldErrors, field, value, msg string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		errs[field] = msg
	}
	return v
}

// freeText folds CRLF line breaks to LF so notes read back from CSV unchanged.
func freeText(v string) string {
	return strings.ReplaceAll(v, "\r\n", "\n")
}
