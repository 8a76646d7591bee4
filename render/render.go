// Package render substitutes dynamic fields into template skeletons and
// produces channel-specific output: subject/text/HTML for email, a single
// line of text for SMS.
package render

import (
	"html"
	"strings"
	"time"

	"github.com/Genocadio/nitifier/models"
	"github.com/Genocadio/nitifier/templates"
)

const (
	emailDateLayout = "Monday, January 2, 2006 at 3:04 PM"
	smsDateLayout   = "Jan 2, 2006"

	defaultEmailName = "Valued Customer"
	defaultSMSName   = "Customer"
	defaultTicketID  = "N/A"
)

// Fields is the channel-agnostic data bag consumed by the skeletons. Empty
// optional fields substitute to a channel-appropriate default.
type Fields struct {
	EventKey      string
	Name          string
	TicketID      string
	Title         string
	Assignee      string
	EscalatedTo   string
	Response      string
	Destination   string
	RemainingTime string
}

// FieldsFromRequest extracts render fields from an issue dispatch request.
func FieldsFromRequest(req *models.DispatchRequest) Fields {
	return Fields{
		EventKey:    req.EventType,
		Name:        req.Name,
		TicketID:    req.TicketID,
		Title:       req.Title,
		Assignee:    req.Assignee,
		EscalatedTo: req.EscalatedTo,
		Response:    req.Response,
	}
}

// FieldsFromTrip extracts render fields from a trip dispatch request.
func FieldsFromTrip(req *models.TripDispatchRequest) Fields {
	return Fields{
		EventKey:      req.Type,
		Name:          req.Name,
		TicketID:      req.TicketID,
		Destination:   req.Destination,
		RemainingTime: req.RemainingTime,
	}
}

// Email is the fully rendered email message.
type Email struct {
	Subject  string
	TextBody string
	HTMLBody string
}

// Renderer performs placeholder substitution. The clock is injectable so
// tests can pin the {date} placeholder.
type Renderer struct {
	now func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

func NewRendererWithClock(now func() time.Time) *Renderer {
	return &Renderer{now: now}
}

// RenderEmail substitutes body placeholders unconditionally and subject
// placeholders from a reduced set: the ticket id and trip fields always,
// the assignee only for assigned/escalated events, the escalation target
// only for escalated events. When the template has no HTML skeleton the
// markup body is derived from the rendered plain text.
func (r *Renderer) RenderEmail(tpl templates.Template, f Fields) Email {
	body := r.bodyReplacer(f, defaultEmailName, emailDateLayout)
	text := body.Replace(tpl.Text)

	htmlBody := ""
	if tpl.HTML != "" {
		htmlBody = body.Replace(tpl.HTML)
	} else {
		htmlBody = htmlFromText(text)
	}

	return Email{
		Subject:  r.subjectReplacer(f).Replace(tpl.Subject),
		TextBody: text,
		HTMLBody: htmlBody,
	}
}

// RenderSMS substitutes every placeholder into the SMS skeleton.
func (r *Renderer) RenderSMS(tpl templates.Template, f Fields) string {
	return r.bodyReplacer(f, defaultSMSName, smsDateLayout).Replace(tpl.SMS)
}

func (r *Renderer) bodyReplacer(f Fields, defaultName, dateLayout string) *strings.Replacer {
	name := f.Name
	if name == "" {
		name = defaultName
	}
	ticket := f.TicketID
	if ticket == "" {
		ticket = defaultTicketID
	}
	return strings.NewReplacer(
		"{name}", name,
		"{ticketId}", ticket,
		"{title}", f.Title,
		"{assignee}", f.Assignee,
		"{escalatedTo}", f.EscalatedTo,
		"{response}", f.Response,
		"{destination}", f.Destination,
		"{remainingTime}", f.RemainingTime,
		"{date}", r.now().Format(dateLayout),
	)
}

func (r *Renderer) subjectReplacer(f Fields) *strings.Replacer {
	ticket := f.TicketID
	if ticket == "" {
		ticket = defaultTicketID
	}
	pairs := []string{
		"{ticketId}", ticket,
		"{destination}", f.Destination,
		"{remainingTime}", f.RemainingTime,
	}
	if f.EventKey == models.TypeAssigned || f.EventKey == models.TypeEscalated {
		pairs = append(pairs, "{assignee}", f.Assignee)
	}
	if f.EventKey == models.TypeEscalated {
		pairs = append(pairs, "{escalatedTo}", f.EscalatedTo)
	}
	return strings.NewReplacer(pairs...)
}

// htmlFromText converts a rendered plain-text body into markup: double
// line-breaks separate paragraphs, single line-breaks become <br>, empty
// paragraphs are dropped.
func htmlFromText(text string) string {
	var b strings.Builder
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		escaped := strings.ReplaceAll(html.EscapeString(para), "\n", "<br>")
		b.WriteString("<p>")
		b.WriteString(escaped)
		b.WriteString("</p>")
	}
	return b.String()
}
