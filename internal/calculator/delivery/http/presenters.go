package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"date-mathematics/internal/calculator"
	"date-mathematics/pkg/datemath"
	"date-mathematics/pkg/response"
)

// --- Request DTOs ---

// amountField accepts the amount as a JSON number or string. The raw text
// is kept so the use case applies the same parsing as the form.
type amountField string

func (a *amountField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = amountField(s)
		return nil
	}
	*a = amountField(b)
	return nil
}

type shiftReq struct {
	StartDate       string      `json:"start_date"`
	StartTime       string      `json:"start_time"`
	Amount          amountField `json:"amount"`
	Unit            string      `json:"unit"`
	ExcludeWeekends bool        `json:"exclude_weekends"`
	Direction       string      `json:"direction"`
	Format          string      `json:"format"`
}

func (r shiftReq) validate() error {
	if r.Unit != "" && !slices.Contains(calculator.OperationUnits, calculator.Unit(r.Unit)) {
		return fmt.Errorf("%w: %q", calculator.ErrUnknownUnit, r.Unit)
	}
	if _, err := calculator.ParseDirection(r.Direction); err != nil {
		return err
	}
	return nil
}

func (r shiftReq) toInput() (calculator.ShiftInput, error) {
	direction, err := calculator.ParseDirection(r.Direction)
	if err != nil {
		return calculator.ShiftInput{}, err
	}
	return calculator.ShiftInput{
		StartDate:       r.StartDate,
		StartTime:       r.StartTime,
		Amount:          string(r.Amount),
		Unit:            calculator.Unit(r.Unit),
		ExcludeWeekends: r.ExcludeWeekends,
		Direction:       direction,
		Format:          r.Format,
	}, nil
}

// ---

type diffReq struct {
	StartDate string `json:"start_date"`
	StartTime string `json:"start_time"`
	EndDate   string `json:"end_date"`
	Unit      string `json:"unit"`
}

func (r diffReq) validate() error {
	if r.Unit != "" && !slices.Contains(calculator.DiffUnits, calculator.Unit(r.Unit)) {
		return fmt.Errorf("%w: %q", calculator.ErrUnknownUnit, r.Unit)
	}
	return nil
}

func (r diffReq) toInput() calculator.DiffInput {
	return calculator.DiffInput{
		StartDate: r.StartDate,
		StartTime: r.StartTime,
		EndDate:   r.EndDate,
		Unit:      calculator.Unit(r.Unit),
	}
}

// ---

type formStateDTO struct {
	Mode            string `json:"mode"`
	StartDate       string `json:"start_date"`
	StartTime       string `json:"start_time"`
	EndDate         string `json:"end_date"`
	Amount          string `json:"amount"`
	OperationUnit   string `json:"operation_unit"`
	DiffUnit        string `json:"diff_unit"`
	DateFormat      string `json:"date_format"`
	ExcludeWeekends bool   `json:"exclude_weekends"`
	ResultDate      string `json:"result_date"`
	DateDiff        string `json:"date_diff"`
}

func (d formStateDTO) toState() calculator.FormState {
	s := calculator.FormState{
		Mode:            calculator.Mode(d.Mode),
		StartDate:       d.StartDate,
		StartTime:       d.StartTime,
		EndDate:         d.EndDate,
		Amount:          d.Amount,
		OperationUnit:   calculator.Unit(d.OperationUnit),
		DiffUnit:        calculator.Unit(d.DiffUnit),
		DateFormat:      d.DateFormat,
		ExcludeWeekends: d.ExcludeWeekends,
		ResultDate:      d.ResultDate,
		DateDiff:        d.DateDiff,
	}
	def := calculator.DefaultFormState()
	if s.Mode == "" {
		s.Mode = def.Mode
	}
	if s.OperationUnit == "" {
		s.OperationUnit = def.OperationUnit
	}
	if s.DiffUnit == "" {
		s.DiffUnit = def.DiffUnit
	}
	if s.DateFormat == "" {
		s.DateFormat = def.DateFormat
	}
	return s
}

func newFormStateDTO(s calculator.FormState) formStateDTO {
	return formStateDTO{
		Mode:            string(s.Mode),
		StartDate:       s.StartDate,
		StartTime:       s.StartTime,
		EndDate:         s.EndDate,
		Amount:          s.Amount,
		OperationUnit:   string(s.OperationUnit),
		DiffUnit:        string(s.DiffUnit),
		DateFormat:      s.DateFormat,
		ExcludeWeekends: s.ExcludeWeekends,
		ResultDate:      s.ResultDate,
		DateDiff:        s.DateDiff,
	}
}

type dispatchReq struct {
	State  formStateDTO `json:"state"`
	Action string       `json:"action" binding:"required"`
}

func (r dispatchReq) validate() error {
	switch calculator.Mode(r.State.Mode) {
	case "", calculator.ModeAddSub, calculator.ModeDiff:
	default:
		return fmt.Errorf("%w: %q", calculator.ErrUnknownMode, r.State.Mode)
	}
	_, err := calculator.ParseAction(r.Action)
	return err
}

func (r dispatchReq) toInput() (calculator.FormState, calculator.Action, error) {
	action, err := calculator.ParseAction(r.Action)
	if err != nil {
		return calculator.FormState{}, calculator.Action{}, err
	}
	return r.State.toState(), action, nil
}

// --- Response DTOs ---

type shiftResp struct {
	Result string            `json:"result"`
	ISO    string            `json:"iso"`
	At     response.DateTime `json:"at"`
}

func (h *handler) newShiftResp(out calculator.ShiftOutput) shiftResp {
	return shiftResp{
		Result: out.Formatted,
		ISO:    out.Result.Format(time.RFC3339),
		At:     response.DateTime(out.Result),
	}
}

type durationResp struct {
	Years   int `json:"years"`
	Months  int `json:"months"`
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

type diffResp struct {
	Result   string        `json:"result"`
	Value    int           `json:"value"`
	Duration *durationResp `json:"duration,omitempty"`
}

func (h *handler) newDiffResp(unit calculator.Unit, out calculator.DiffOutput) diffResp {
	resp := diffResp{
		Result: out.Formatted,
		Value:  out.Value,
	}
	if unit == calculator.UnitYears {
		d := out.Duration
		resp.Duration = &durationResp{
			Years:   d.Years,
			Months:  d.Months,
			Days:    d.Days,
			Hours:   d.Hours,
			Minutes: d.Minutes,
			Seconds: d.Seconds,
		}
	}
	return resp
}

type dispatchResp struct {
	State formStateDTO `json:"state"`
}

func (h *handler) newDispatchResp(s calculator.FormState) dispatchResp {
	return dispatchResp{State: newFormStateDTO(s)}
}

type unitResp struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type formatsResp struct {
	Formats        []string   `json:"formats"`
	DefaultFormat  string     `json:"default_format"`
	OperationUnits []unitResp `json:"operation_units"`
	DiffUnits      []unitResp `json:"diff_units"`
}

func newUnitResps(units []calculator.Unit) []unitResp {
	out := make([]unitResp, len(units))
	for i, u := range units {
		out[i] = unitResp{Value: string(u), Label: u.Label()}
	}
	return out
}

func (h *handler) newFormatsResp() formatsResp {
	formats := make([]string, len(datemath.DateFormats))
	copy(formats, datemath.DateFormats)
	return formatsResp{
		Formats:        formats,
		DefaultFormat:  datemath.DefaultDateFormat,
		OperationUnits: newUnitResps(calculator.OperationUnits),
		DiffUnits:      newUnitResps(calculator.DiffUnits),
	}
}
