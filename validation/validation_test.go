package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Genocadio/nitifier/models"
)

func validEmailRequest() models.DispatchRequest {
	return models.DispatchRequest{
		Recipient: "alice@example.com",
		Name:      "Alice",
		Language:  "en",
		EventType: "received",
		TicketID:  "T-1",
	}
}

func TestDispatchRequestHappyPath(t *testing.T) {
	v := New()
	req := validEmailRequest()
	rep := v.DispatchRequest(models.ChannelEmail, &req)
	assert.True(t, rep.Valid)
	assert.Empty(t, rep.Errors)
}

func TestDispatchRequestMissingFields(t *testing.T) {
	v := New()
	req := models.DispatchRequest{}
	rep := v.DispatchRequest(models.ChannelEmail, &req)
	require.False(t, rep.Valid)
	joined := strings.Join(rep.Errors, "; ")
	assert.Contains(t, joined, "recipient is required")
	assert.Contains(t, joined, "name is required")
	assert.Contains(t, joined, "language is required")
	assert.Contains(t, joined, "eventType is required")
}

func TestAssignedRequiresAssignee(t *testing.T) {
	v := New()
	req := validEmailRequest()
	req.EventType = "assigned"

	rep := v.DispatchRequest(models.ChannelEmail, &req)
	require.False(t, rep.Valid)
	assert.Contains(t, strings.Join(rep.Errors, "; "), "assignee is required")

	req.Assignee = "Sam"
	rep = v.DispatchRequest(models.ChannelEmail, &req)
	assert.True(t, rep.Valid)
}

func TestEscalatedRequiresEscalationTarget(t *testing.T) {
	v := New()
	req := validEmailRequest()
	req.EventType = "escalated"

	rep := v.DispatchRequest(models.ChannelEmail, &req)
	require.False(t, rep.Valid)
	assert.Contains(t, strings.Join(rep.Errors, "; "), "escalatedTo is required")

	req.EscalatedTo = "Tier 2"
	assert.True(t, v.DispatchRequest(models.ChannelEmail, &req).Valid)
}

func TestRecipientFormatPerChannel(t *testing.T) {
	v := New()

	req := validEmailRequest()
	req.Recipient = "not-an-address"
	rep := v.DispatchRequest(models.ChannelEmail, &req)
	require.False(t, rep.Valid)
	assert.Contains(t, rep.Errors[0], "valid email address")

	req.Recipient = "+250788123456"
	assert.True(t, v.DispatchRequest(models.ChannelSMS, &req).Valid)

	req.Recipient = "0788-123-456"
	rep = v.DispatchRequest(models.ChannelSMS, &req)
	require.False(t, rep.Valid)
	assert.Contains(t, rep.Errors[0], "E.164")
}

func validTripRequest() models.TripDispatchRequest {
	return models.TripDispatchRequest{
		Name:        "Bob",
		Language:    "en",
		Type:        "trip_started",
		Destination: "Kigali",
		Email:       "bob@example.com",
	}
}

func TestTripRemainingTimeRule(t *testing.T) {
	v := New()
	req := validTripRequest()
	req.Type = "trip_remaining_time"

	rep := v.TripRequest(&req)
	require.False(t, rep.Valid)
	joined := strings.Join(rep.Errors, "; ")
	assert.Contains(t, joined, "remainingTime is required")

	req.RemainingTime = "2 hours"
	assert.True(t, v.TripRequest(&req).Valid)
}

func TestTripRequiresAtLeastOneAddress(t *testing.T) {
	v := New()
	req := validTripRequest()
	req.Email = ""
	req.Phone = ""

	rep := v.TripRequest(&req)
	require.False(t, rep.Valid)
	joined := strings.Join(rep.Errors, "; ")
	assert.Contains(t, joined, "email is required when phone is not provided")
	assert.Contains(t, joined, "phone is required when email is not provided")

	req.Phone = "+250788123456"
	assert.True(t, v.TripRequest(&req).Valid)
}

func TestTripTypeClosedSet(t *testing.T) {
	v := New()
	req := validTripRequest()
	req.Type = "trip_cancelled"

	rep := v.TripRequest(&req)
	require.False(t, rep.Valid)
	assert.Contains(t, rep.Errors[0], "must be one of")
}

func TestTripAddressFormats(t *testing.T) {
	v := New()
	req := validTripRequest()
	req.Email = "bad address"
	rep := v.TripRequest(&req)
	require.False(t, rep.Valid)
	assert.Contains(t, rep.Errors[0], "valid email address")

	req = validTripRequest()
	req.Phone = "12345"
	rep = v.TripRequest(&req)
	require.False(t, rep.Valid)
	assert.Contains(t, strings.Join(rep.Errors, "; "), "E.164")
}
