package models

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"

	StatusSent   = "sent"
	StatusFailed = "failed"

	TypeReceived   = "received"
	TypeAssigned   = "assigned"
	TypeInProgress = "in_progress"
	TypeEscalated  = "escalated"
	TypeResolved   = "resolved"
	TypeClosed     = "closed"

	TypeTripStarted       = "trip_started"
	TypeTripRemainingTime = "trip_remaining_time"
)

// DispatchRequest carries one issue-status notification for a single
// recipient. Recipient format depends on the channel it is dispatched on:
// an email address for the email channel, an E.164 phone number for SMS.
type DispatchRequest struct {
	Recipient   string `json:"recipient" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Language    string `json:"language" validate:"required"`
	EventType   string `json:"eventType" validate:"required"`
	Title       string `json:"title,omitempty"`
	Assignee    string `json:"assignee,omitempty" validate:"required_if=EventType assigned"`
	EscalatedTo string `json:"escalatedTo,omitempty" validate:"required_if=EventType escalated"`
	Response    string `json:"response,omitempty"`
	TicketID    string `json:"ticketId,omitempty"`
}

// TripDispatchRequest carries one trip-milestone notification. At least one
// of Email/Phone must be present; each present address triggers delivery on
// its channel.
type TripDispatchRequest struct {
	Name          string `json:"name" validate:"required"`
	Language      string `json:"language" validate:"required"`
	Type          string `json:"type" validate:"required,oneof=trip_started trip_remaining_time"`
	Destination   string `json:"destination" validate:"required"`
	RemainingTime string `json:"remainingTime,omitempty" validate:"required_if=Type trip_remaining_time"`
	Email         string `json:"email,omitempty" validate:"required_without=Phone,omitempty,email"`
	Phone         string `json:"phone,omitempty" validate:"required_without=Email,omitempty,e164"`
	TicketID      string `json:"ticketId,omitempty"`
}

// DispatchResult is the synchronous outcome of one delivery attempt. It is
// always returned as a value, never raised; Error is set only on failure.
type DispatchResult struct {
	Success   bool   `json:"success"`
	Status    string `json:"status"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
	Recipient string `json:"recipient"`
	TicketID  string `json:"ticketId,omitempty"`
	MessageID string `json:"messageId,omitempty"`
}

// TripDispatchResult holds the per-channel outcomes of a trip notification.
// A nil entry means that channel was not attempted (no address supplied).
type TripDispatchResult struct {
	Email *DispatchResult `json:"email"`
	SMS   *DispatchResult `json:"sms"`
}

// Succeeded reports overall success: the AND of the attempted channels,
// vacuously true for channels that were skipped.
func (r TripDispatchResult) Succeeded() bool {
	if r.Email != nil && !r.Email.Success {
		return false
	}
	if r.SMS != nil && !r.SMS.Success {
		return false
	}
	return true
}
