/*
comment.go - SEC comment-letter response deadlines

PURPOSE:

	Staff comment letters conventionally request a response within 10
	business days. The window is configurable per letter because the staff
	sometimes grants longer periods. Requesting an extension needs lead
	time, so eligibility cuts off once fewer than 2 business days remain.
*/
package spac

import (
	"fmt"

	"github.com/spacdesk/filing-engine/deadline"
)

// DefaultResponseDays is the conventional SEC comment response window.
const DefaultResponseDays = 10

// ExtensionLeadDays is the minimum number of business days that must
// remain for an extension request to be practical.
const ExtensionLeadDays = 2

// CommentResponseDeadline is the computed response obligation for one
// comment letter.
type CommentResponseDeadline struct {
	ReceivedOn   deadline.TimePoint
	ResponseDays int
	Deadline     deadline.TimePoint

	DaysRemaining         int
	BusinessDaysRemaining int
	Overdue               bool
	ExtensionEligible     bool
}

// CalculateCommentResponseDeadline computes the response-due date and
// extension eligibility. responseDays == 0 selects the default window;
// negative windows are rejected.
func CalculateCommentResponseDeadline(receivedOn deadline.TimePoint, responseDays int, now deadline.TimePoint) (CommentResponseDeadline, error) {
	if receivedOn.IsZero() {
		return CommentResponseDeadline{}, &deadline.InvalidInputError{Field: "received date", Err: deadline.ErrMissingDate}
	}
	if now.IsZero() {
		return CommentResponseDeadline{}, &deadline.InvalidInputError{Field: "now", Err: deadline.ErrMissingDate}
	}
	if responseDays < 0 {
		return CommentResponseDeadline{}, &deadline.InvalidInputError{Field: "response days", Value: fmt.Sprint(responseDays), Err: deadline.ErrNegativeDayCount}
	}
	if responseDays == 0 {
		responseDays = DefaultResponseDays
	}

	due := deadline.AddBusinessDays(receivedOn, responseDays)
	remaining := deadline.CountBusinessDays(now, due)
	overdue := due.Before(now)

	return CommentResponseDeadline{
		ReceivedOn:            receivedOn,
		ResponseDays:          responseDays,
		Deadline:              due,
		DaysRemaining:         deadline.DaysBetween(now, due),
		BusinessDaysRemaining: remaining,
		Overdue:               overdue,
		ExtensionEligible:     !overdue && remaining >= ExtensionLeadDays,
	}, nil
}
