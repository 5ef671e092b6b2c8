package domain

import "time"

// Response is a decoded reply to a single-question query.
// Answer is nil when the server returned no answer records.
type Response struct {
	Header   Header
	Question Question
	Answer   *ResourceRecord
}

// HasAnswer reports whether the response carried an answer record.
func (r Response) HasAnswer() bool {
	return r.Answer != nil
}

// RCode returns the response code from the header.
func (r Response) RCode() RCode {
	return r.Header.Flags.RCode
}

// TTL returns how long the response may be reused. Responses without an
// answer are never reused.
func (r Response) TTL() time.Duration {
	if r.Answer == nil {
		return 0
	}
	return r.Answer.TTLDuration()
}
