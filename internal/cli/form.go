package cli

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/annotationhq/internal/cli/formatter"
	"github.com/alexanderramin/annotationhq/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// annotationHuhTheme returns a huh theme matching the formatter palette.
func annotationHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// submissionForm collects a work log entry. Values already set on s are
// used as defaults.
func submissionForm(s *domain.Submission, taskTypes, statuses []string) *huh.Form {
	if s.TaskType == "" && len(taskTypes) > 0 {
		s.TaskType = taskTypes[0]
	}
	if s.Status == "" && len(statuses) > 0 {
		s.Status = statuses[0]
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Placeholder(domain.DateLayout).
				Value(&s.Date).
				Validate(validateDate),
			huh.NewInput().
				Title("Annotator").
				Value(&s.AnnotatorName).
				Validate(requiredText("annotator name")),
			huh.NewInput().
				Title("Project").
				Value(&s.ProjectName).
				Validate(requiredText("project name")),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Task type").
				Options(huh.NewOptions(taskTypes...)...).
				Value(&s.TaskType),
			huh.NewInput().
				Title("Images done").
				Placeholder("0").
				Value(&s.ImagesDone).
				Validate(validateCount),
			huh.NewInput().
				Title("Hours spent").
				Placeholder("0").
				Value(&s.HoursSpent).
				Validate(validateHours),
			huh.NewSelect[string]().
				Title("Status").
				Options(huh.NewOptions(statuses...)...).
				Value(&s.Status),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Challenges (optional)").
				Description("One per line").
				Value(&s.Challenges),
			huh.NewText().
				Title("Suggestions (optional)").
				Description("One per line").
				Value(&s.Suggestions),
			huh.NewText().
				Title("Notes (optional)").
				Value(&s.ExtraNotes),
		),
	).WithTheme(annotationHuhTheme())
}

func validateDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("date is required")
	}
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

func requiredText(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(label + " is required")
		}
		return nil
	}
}

func validateCount(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("must be a whole number")
	}
	if n < 0 {
		return errors.New("cannot be negative")
	}
	return nil
}

func validateHours(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("must be a number")
	}
	if f < 0 {
		return errors.New("cannot be negative")
	}
	return nil
}
