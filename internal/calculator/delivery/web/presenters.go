package web

import (
	"strings"

	"date-mathematics/internal/calculator"
	"date-mathematics/pkg/datemath"
)

// formReq mirrors the HTML form fields. Outputs ride along in hidden
// inputs so a declined action re-renders the previous result.
type formReq struct {
	Action          string `form:"action"`
	Mode            string `form:"mode"`
	StartDate       string `form:"start_date"`
	StartTime       string `form:"start_time"`
	EndDate         string `form:"end_date"`
	Amount          string `form:"amount"`
	OperationUnit   string `form:"operation_unit"`
	DiffUnit        string `form:"diff_unit"`
	DateFormat      string `form:"date_format"`
	ExcludeWeekends string `form:"exclude_weekends"`
	ResultDate      string `form:"result_date"`
	DateDiff        string `form:"date_diff"`
}

func (r formReq) toState() calculator.FormState {
	s := calculator.DefaultFormState()
	if r.Mode == string(calculator.ModeDiff) {
		s.Mode = calculator.ModeDiff
	}
	s.StartDate = r.StartDate
	s.StartTime = r.StartTime
	s.EndDate = r.EndDate
	s.Amount = r.Amount
	if r.OperationUnit != "" {
		s.OperationUnit = calculator.Unit(r.OperationUnit)
	}
	if r.DiffUnit != "" {
		s.DiffUnit = calculator.Unit(r.DiffUnit)
	}
	if datemath.IsSupportedFormat(r.DateFormat) {
		s.DateFormat = r.DateFormat
	}
	s.ExcludeWeekends = checked(r.ExcludeWeekends)
	s.ResultDate = r.ResultDate
	s.DateDiff = r.DateDiff
	return s
}

// checked reads a checkbox value. Browsers post "on" unless the input
// sets its own value.
func checked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

type unitOption struct {
	Value string
	Label string
}

type pageData struct {
	State          calculator.FormState
	Formats        []string
	OperationUnits []unitOption
	DiffUnits      []unitOption
}

func unitOptions(units []calculator.Unit) []unitOption {
	out := make([]unitOption, len(units))
	for i, u := range units {
		out[i] = unitOption{Value: string(u), Label: u.Label()}
	}
	return out
}

func newPageData(s calculator.FormState) pageData {
	return pageData{
		State:          s,
		Formats:        datemath.DateFormats,
		OperationUnits: unitOptions(calculator.OperationUnits),
		DiffUnits:      unitOptions(calculator.DiffUnits),
	}
}
