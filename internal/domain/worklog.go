package domain

// DateLayout is the canonical calendar-date format for WorkLogEntry.Date.
const DateLayout = "2006-01-02"

// CreatedAtLayout is the stored insertion timestamp format. Byte offsets 11-16
// hold HH:MM.
const CreatedAtLayout = "2006-01-02T15:04:05.000000"

// WorkLogEntry is one submission by one annotator for one date/project/task.
// Entries are immutable once stored.
type WorkLogEntry struct {
	ID            int64
	Date          string
	AnnotatorName string
	ProjectName   string
	TaskType      string
	ImagesDone    int
	HoursSpent    float64
	Status        string
	Challenges    string
	Suggestions   string
	ExtraNotes    string
	CreatedAt     string
}

// Flagged reports whether the entry carries challenges or suggestions text.
func (e *WorkLogEntry) Flagged() bool {
	return e.Challenges != "" || e.Suggestions != ""
}
