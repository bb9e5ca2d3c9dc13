package repository

import (
	"strings"
	"time"

	"github.com/alexanderramin/annotationhq/internal/domain"
)

// nowLocal returns the insertion timestamp in the stored layout.
func nowLocal() string {
	return time.Now().Format(domain.CreatedAtLayout)
}

// inClause renders "col IN (?, ?, ...)" and appends values to args.
// Returns "" when values is empty so callers can skip the predicate.
func inClause(col string, values []string, args []any) (string, []any) {
	if len(values) == 0 {
		return "", args
	}
	marks := make([]string, len(values))
	for i, v := range values {
		marks[i] = "?"
		args = append(args, v)
	}
	return col + " IN (" + strings.Join(marks, ", ") + ")", args
}

// filterWhere builds the WHERE clause shared by every filtered read.
func filterWhere(f domain.Filter) (string, []any) {
	clauses := []string{"date = ?"}
	args := []any{f.Date}

	var c string
	if c, args = inClause("project_name", f.Projects, args); c != "" {
		clauses = append(clauses, c)
	}
	if c, args = inClause("annotator_name", f.Annotators, args); c != "" {
		clauses = append(clauses, c)
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
