package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/alexanderramin/annotationhq/internal/contract"
	"github.com/alexanderramin/annotationhq/internal/domain"
	"github.com/alexanderramin/annotationhq/internal/export"
	"github.com/alexanderramin/annotationhq/internal/slack"
)

// writeJSON encodes v in full before any header is written.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		s.logger().ErrorContext(r.Context(), "encoding response failed", "path", r.URL.Path, "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "could not encode response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger().WarnContext(r.Context(), "writing response failed", "path", r.URL.Path, "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.writeJSON(w, r, status, map[string]any{"success": false, "error": msg})
}

// readFields returns request values from a JSON object body or from the
// query string and urlencoded form.
func readFields(w http.ResponseWriter, r *http.Request) (map[string]string, error) {
	fields := map[string]string{}
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
		dec.UseNumber()
		var raw map[string]any
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("invalid JSON body: %w", err)
		}
		for k, v := range raw {
			switch val := v.(type) {
			case nil:
			case string:
				fields[k] = val
			case []any:
				parts := make([]string, 0, len(val))
				for _, p := range val {
					parts = append(parts, fmt.Sprint(p))
				}
				fields[k] = strings.Join(parts, ",")
			default:
				fields[k] = fmt.Sprint(val)
			}
		}
		for k, vs := range r.URL.Query() {
			if _, ok := fields[k]; !ok && len(vs) > 0 {
				fields[k] = vs[0]
			}
		}
		return fields, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("invalid form body: %w", err)
	}
	for k := range r.Form {
		fields[k] = r.Form.Get(k)
	}
	return fields, nil
}

func reportRequest(fields map[string]string) contract.ReportRequest {
	req := contract.NewReportRequest(fields["date"])
	req.Projects = contract.ParseFilterList(fields["projects"])
	req.Annotators = contract.ParseFilterList(fields["annotators"])
	return req
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]any{
		"today":      contract.Today(),
		"task_types": s.TaskTypes,
		"statuses":   s.Statuses,
	})
}

func (s *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	fields, err := readFields(w, r)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	sub := domain.Submission{
		Date:          fields["date"],
		AnnotatorName: fields["annotator_name"],
		ProjectName:   fields["project_name"],
		TaskType:      fields["task_type"],
		ImagesDone:    fields["images_done"],
		HoursSpent:    fields["hours_spent"],
		Status:        fields["status"],
		Challenges:    fields["challenges"],
		Suggestions:   fields["suggestions"],
		ExtraNotes:    fields["extra_notes"],
	}

	entry, err := s.WorkLogs.Submit(r.Context(), sub)
	var fieldErrs domain.FieldErrors
	if errors.As(err, &fieldErrs) {
		s.writeJSON(w, r, http.StatusBadRequest, map[string]any{"success": false, "errors": fieldErrs})
		return
	}
	if err != nil {
		s.logger().ErrorContext(r.Context(), "submit failed", "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "could not store work log")
		return
	}
	s.writeJSON(w, r, http.StatusCreated, map[string]any{"success": true, "entry": contract.NewEntryView(entry)})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	fields, _ := readFields(w, r)
	report, err := s.Reports.DailyReport(r.Context(), reportRequest(fields))
	if err != nil {
		s.logger().ErrorContext(r.Context(), "report failed", "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "could not build report")
		return
	}
	s.writeJSON(w, r, http.StatusOK, report.View())
}

func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = contract.Today()
	}
	opts, err := s.Reports.FilterOptions(r.Context(), date)
	if err != nil {
		s.logger().ErrorContext(r.Context(), "filters failed", "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "could not list filters")
		return
	}
	s.writeJSON(w, r, http.StatusOK, opts)
}

func (s *Server) handleExport(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, err := export.ParseFormat(name)
		if err != nil {
			s.writeError(w, r, http.StatusNotFound, err.Error())
			return
		}
		fields, _ := readFields(w, r)
		req := reportRequest(fields)
		entries, err := s.Reports.FullLog(r.Context(), req)
		if err != nil {
			s.logger().ErrorContext(r.Context(), "export failed", "error", err)
			s.writeError(w, r, http.StatusInternalServerError, "could not load entries")
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%s", export.Filename(req.Date, string(format))))
		if err := export.Write(w, format, entries, req.Date); err != nil {
			s.logger().ErrorContext(r.Context(), "export write failed", "format", format, "error", err)
		}
	}
}

func (s *Server) renderMessage(r *http.Request, fields map[string]string) (string, error) {
	report, err := s.Reports.DailyReport(r.Context(), reportRequest(fields))
	if err != nil {
		return "", err
	}
	return slack.RenderMessage(slack.InputFromReport(report, fields["task_allocation"])), nil
}

func (s *Server) handleSlackPreview(w http.ResponseWriter, r *http.Request) {
	fields, err := readFields(w, r)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	msg, err := s.renderMessage(r, fields)
	if err != nil {
		s.logger().ErrorContext(r.Context(), "preview failed", "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "could not build report")
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]any{"success": true, "preview": msg})
}

func (s *Server) handleSlackSend(w http.ResponseWriter, r *http.Request) {
	fields, err := readFields(w, r)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	msg, err := s.renderMessage(r, fields)
	if err != nil {
		s.logger().ErrorContext(r.Context(), "send failed", "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "could not build report")
		return
	}
	s.writeJSON(w, r, http.StatusOK, s.Notifier.Send(r.Context(), msg, fields["webhook_url"]))
}

func (s *Server) handleSlackConfig(w http.ResponseWriter, r *http.Request) {
	configured := s.Notifier.Configured()
	s.writeJSON(w, r, http.StatusOK, map[string]any{
		"configured":      configured,
		"webhook_url_set": configured,
	})
}
