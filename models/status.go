package models

import (
	"encoding/json"
	"fmt"
)

// Status is the hiring pipeline stage of an application. Any stage may move
// to any other; there is no transition graph.
type Status string

const (
	StatusWishlist      Status = "WISHLIST"
	StatusApplied       Status = "APPLIED"
	StatusScreening     Status = "SCREENING"
	StatusInterviewHR   Status = "INTERVIEW_HR"
	StatusInterviewUser Status = "INTERVIEW_USER"
	StatusOffering      Status = "OFFERING"
	StatusRejected      Status = "REJECTED"
	StatusGhosted       Status = "GHOSTED"
)

// Statuses lists every stage in board column order.
var Statuses = []Status{
	StatusWishlist,
	StatusApplied,
	StatusScreening,
	StatusInterviewHR,
	StatusInterviewUser,
	StatusOffering,
	StatusRejected,
	StatusGhosted,
}

var statusTitles = map[Status]string{
	StatusWishlist:      "Wishlist",
	StatusApplied:       "Applied",
	StatusScreening:     "Screening",
	StatusInterviewHR:   "Interview (HR)",
	StatusInterviewUser: "Interview (User)",
	StatusOffering:      "Offering",
	StatusRejected:      "Rejected",
	StatusGhosted:       "Ghosted",
}

// ParseStatus returns the Status named by s or an error if s is not one of the eight stages.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

func (s Status) Valid() bool {
	_, ok := statusTitles[s]
	return ok
}

// Title is the human readable column name.
func (s Status) Title() string {
	return statusTitles[s]
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Priority orders applications within a bookmark group.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return p, nil
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank maps HIGH=3, MEDIUM=2, LOW=1. Anything else, including the empty
// value, ranks as MEDIUM.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityLow:
		return 1
	default:
		return 2
	}
}

func (p *Priority) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParsePriority(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
