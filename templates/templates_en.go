package templates

// English is the base language: every event key has a complete entry here.
var englishTemplates = map[string]Template{
	"received": {
		EventKey: "received",
		Language: "en",
		Subject:  "Support ticket {ticketId} received",
		Text: "Hello {name},\n\n" +
			"We have received your request \"{title}\" and opened ticket {ticketId} for it.\n" +
			"Our support team will review it and get back to you shortly.\n\n" +
			"This notice was generated on {date}.",
		HTML: "<p>Hello {name},</p>" +
			"<p>We have received your request <strong>&quot;{title}&quot;</strong> and opened ticket <strong>{ticketId}</strong> for it.<br>" +
			"Our support team will review it and get back to you shortly.</p>" +
			"<p>This notice was generated on {date}.</p>",
		SMS: "Hi {name}, we received your request. Ticket {ticketId} was opened. We will keep you posted.",
	},
	"assigned": {
		EventKey: "assigned",
		Language: "en",
		Subject:  "Ticket {ticketId} assigned to {assignee}",
		Text: "Hello {name},\n\n" +
			"Your ticket {ticketId} (\"{title}\") has been assigned to {assignee}.\n" +
			"They will be in touch as soon as they have looked into it.\n\n" +
			"This notice was generated on {date}.",
		SMS: "Hi {name}, ticket {ticketId} was assigned to {assignee}. They will contact you soon.",
	},
	"in_progress": {
		EventKey: "in_progress",
		Language: "en",
		Subject:  "Ticket {ticketId} is being worked on",
		Text: "Hello {name},\n\n" +
			"Work on your ticket {ticketId} (\"{title}\") has started.\n" +
			"We will notify you again as soon as there is an update.\n\n" +
			"This notice was generated on {date}.",
		SMS: "Hi {name}, work on ticket {ticketId} has started. We will notify you of any update.",
	},
	"escalated": {
		EventKey: "escalated",
		Language: "en",
		Subject:  "Ticket {ticketId} escalated to {escalatedTo}",
		Text: "Hello {name},\n\n" +
			"Your ticket {ticketId} (\"{title}\") has been escalated to {escalatedTo}.\n" +
			"It is now being handled with higher priority.\n\n" +
			"This notice was generated on {date}.",
		SMS: "Hi {name}, ticket {ticketId} was escalated to {escalatedTo} and is now high priority.",
	},
	"resolved": {
		EventKey: "resolved",
		Language: "en",
		Subject:  "Ticket {ticketId} resolved",
		Text: "Hello {name},\n\n" +
			"Your ticket {ticketId} (\"{title}\") has been resolved.\n\n" +
			"Resolution notes:\n{response}\n\n" +
			"If the issue persists, simply reply and the ticket will be reopened.\n\n" +
			"This notice was generated on {date}.",
		HTML: "<p>Hello {name},</p>" +
			"<p>Your ticket <strong>{ticketId}</strong> (&quot;{title}&quot;) has been resolved.</p>" +
			"<p><em>Resolution notes:</em><br>{response}</p>" +
			"<p>If the issue persists, simply reply and the ticket will be reopened.</p>" +
			"<p>This notice was generated on {date}.</p>",
		SMS: "Hi {name}, ticket {ticketId} is resolved: {response} Reply if the issue persists and it will be reopened.",
	},
	"closed": {
		EventKey: "closed",
		Language: "en",
		Subject:  "Ticket {ticketId} closed",
		Text: "Hello {name},\n\n" +
			"Your ticket {ticketId} (\"{title}\") has been closed.\n" +
			"Thank you for your patience while we worked on it.\n\n" +
			"This notice was generated on {date}.",
		SMS: "Hi {name}, ticket {ticketId} is now closed. Thank you for your patience.",
	},
	"trip_started": {
		EventKey: "trip_started",
		Language: "en",
		Subject:  "Your trip to {destination} has started",
		Text: "Hello {name},\n\n" +
			"Your trip to {destination} is under way (reference {ticketId}).\n" +
			"We will let you know when you are close to arrival.\n\n" +
			"This notice was generated on {date}.",
		SMS: "Hi {name}, your trip to {destination} has started. Reference {ticketId}.",
	},
	"trip_remaining_time": {
		EventKey: "trip_remaining_time",
		Language: "en",
		Subject:  "Arriving at {destination} in {remainingTime}",
		Text: "Hello {name},\n\n" +
			"You will arrive at {destination} in approximately {remainingTime} (reference {ticketId}).\n" +
			"Please make sure you are ready for arrival.\n\n" +
			"This notice was generated on {date}.",
		SMS: "Hi {name}, arriving at {destination} in about {remainingTime}. Reference {ticketId}.",
	},
}
