package calculator

import (
	"fmt"
	"strings"
	"time"

	"date-mathematics/pkg/datemath"
)

// --- Enumerations ---

// Mode selects which half of the form is active.
type Mode string

const (
	ModeAddSub Mode = "addSub"
	ModeDiff   Mode = "diff"
)

// Unit is a calendar unit used both for shifting and for reporting
// differences.
type Unit string

const (
	UnitDays         Unit = "days"
	UnitMonths       Unit = "months"
	UnitYears        Unit = "years"
	UnitBusinessDays Unit = "business_days"
)

// OperationUnits are the units accepted by add/subtract.
var OperationUnits = []Unit{UnitDays, UnitMonths, UnitYears}

// DiffUnits are the units a difference can be reported in.
var DiffUnits = []Unit{UnitDays, UnitMonths, UnitYears, UnitBusinessDays}

// Label is the human-readable name of the unit.
func (u Unit) Label() string {
	switch u {
	case UnitDays:
		return "Days"
	case UnitMonths:
		return "Months"
	case UnitYears:
		return "Years"
	case UnitBusinessDays:
		return "Business Days"
	}
	return string(u)
}

// Direction is the way a shift moves along the calendar.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Backward {
		return Forward
	}
	return Backward
}

// Sign is +1 for Forward and -1 for Backward.
func (d Direction) Sign() int {
	if d == Backward {
		return -1
	}
	return 1
}

// ParseDirection accepts "forward"/"add" and "backward"/"subtract".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "forward", "add":
		return Forward, nil
	case "backward", "subtract":
		return Backward, nil
	}
	return Forward, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// --- Form state ---

// ActionKind is a user-initiated form action.
type ActionKind string

const (
	ActionAdd      ActionKind = "add"
	ActionSubtract ActionKind = "subtract"
	ActionDiff     ActionKind = "diff"
	ActionSetMode  ActionKind = "mode"
)

// Action is one form event. Mode is only read for ActionSetMode.
type Action struct {
	Kind ActionKind
	Mode Mode
}

// ParseAction parses "add", "subtract", "diff" or "mode:<mode>".
func ParseAction(s string) (Action, error) {
	kind, arg, _ := strings.Cut(strings.TrimSpace(s), ":")
	switch ActionKind(kind) {
	case ActionAdd, ActionSubtract, ActionDiff:
		return Action{Kind: ActionKind(kind)}, nil
	case ActionSetMode:
		switch Mode(arg) {
		case ModeAddSub, ModeDiff:
			return Action{Kind: ActionSetMode, Mode: Mode(arg)}, nil
		}
	}
	return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// FormState is a snapshot of every form field plus the two outputs.
// It is passed and returned by value; Dispatch never mutates its input.
type FormState struct {
	Mode            Mode
	StartDate       string
	StartTime       string
	EndDate         string
	Amount          string
	OperationUnit   Unit
	DiffUnit        Unit
	DateFormat      string
	ExcludeWeekends bool

	ResultDate string
	DateDiff   string
}

// DefaultFormState is the state of a freshly opened form.
func DefaultFormState() FormState {
	return FormState{
		Mode:          ModeAddSub,
		Amount:        "0",
		OperationUnit: UnitDays,
		DiffUnit:      UnitDays,
		DateFormat:    datemath.DefaultDateFormat,
	}
}

// WithMode switches the mode and clears inputs and outputs. Unit, format
// and weekend selections survive the switch.
func (s FormState) WithMode(m Mode) FormState {
	s.Mode = m
	s.StartDate = ""
	s.StartTime = ""
	s.EndDate = ""
	s.Amount = "0"
	s.ResultDate = ""
	s.DateDiff = ""
	return s
}

// --- UseCase Inputs ---

type ShiftInput struct {
	StartDate       string
	StartTime       string
	Amount          string
	Unit            Unit
	ExcludeWeekends bool
	Direction       Direction
	Format          string
}

type DiffInput struct {
	StartDate string
	StartTime string
	EndDate   string
	Unit      Unit
}

// --- UseCase Outputs ---

type ShiftOutput struct {
	Result    time.Time
	Formatted string
}

type DiffOutput struct {
	// Value is the count in the requested unit. For UnitYears it is the
	// whole-year component of Duration.
	Value     int
	Duration  datemath.Duration
	Formatted string
}
