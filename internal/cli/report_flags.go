package cli

import (
	"github.com/alexanderramin/annotationhq/internal/contract"
	"github.com/spf13/pflag"
)

// reportFlags are shared by every read command.
type reportFlags struct {
	date       string
	projects   []string
	annotators []string
}

func (f *reportFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.date, "date", "", "Report date YYYY-MM-DD (default today)")
	fs.StringSliceVar(&f.projects, "projects", nil, "Only include these projects (comma-separated)")
	fs.StringSliceVar(&f.annotators, "annotators", nil, "Only include these annotators (comma-separated)")
}

// request builds the report request. Blank list items are dropped the same
// way the HTTP query parser drops them.
func (f *reportFlags) request() contract.ReportRequest {
	req := contract.NewReportRequest(f.date)
	req.Projects = cleanList(f.projects)
	req.Annotators = cleanList(f.annotators)
	return req
}

func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, contract.ParseFilterList(v)...)
	}
	return out
}
