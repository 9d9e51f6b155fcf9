package tui

import (
	"time"

	"github.com/ooopus/Exam-Papers/pkg/planner"
)

type planDoneMsg struct {
	plan *planner.Plan
}

type renameStepMsg struct {
	next int
}

type errMsg error

type spinnerTickMsg time.Time
