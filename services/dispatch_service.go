// Package services hosts the dispatch coordinator: per-channel validation,
// template resolution, rendering, constraint checks and transport calls,
// with every outcome mapped into a result value. Nothing in this package
// raises past the dispatch boundary.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Genocadio/nitifier/models"
	"github.com/Genocadio/nitifier/normalize"
	"github.com/Genocadio/nitifier/render"
	"github.com/Genocadio/nitifier/sender"
	"github.com/Genocadio/nitifier/sms"
	"github.com/Genocadio/nitifier/templates"
	"github.com/Genocadio/nitifier/validation"
)

// Config carries the sender identities used on every outbound message.
// Passed in at construction; the coordinator holds no ambient state.
type Config struct {
	FromEmail   string
	SMSSenderID string
}

type DispatchService interface {
	DispatchEmail(ctx context.Context, req *models.DispatchRequest) models.DispatchResult
	DispatchSMS(ctx context.Context, req *models.DispatchRequest) models.DispatchResult
	DispatchBulkEmail(ctx context.Context, reqs []models.DispatchRequest) []models.DispatchResult
	DispatchBulkSMS(ctx context.Context, reqs []models.DispatchRequest) []models.DispatchResult
	DispatchTrip(ctx context.Context, req *models.TripDispatchRequest) models.TripDispatchResult
	ListEventTypes() []string
	ListLanguages() []string
	GetTemplate(eventType, language string) (templates.Template, bool)
	Validate(channel string, req *models.DispatchRequest) validation.Report
	ValidateTrip(req *models.TripDispatchRequest) validation.Report
}

type dispatchService struct {
	store     *templates.Store
	renderer  *render.Renderer
	validator *validation.Validator
	email     sender.EmailSender
	sms       sender.SMSSender
	cfg       Config
	logger    *zap.Logger
}

func NewDispatchService(
	emailSender sender.EmailSender,
	smsSender sender.SMSSender,
	cfg Config,
	logger *zap.Logger,
) DispatchService {
	return &dispatchService{
		store:     templates.NewStore(),
		renderer:  render.NewRenderer(),
		validator: validation.New(),
		email:     emailSender,
		sms:       smsSender,
		cfg:       cfg,
		logger:    logger,
	}
}

// --- single-item paths ---

func (s *dispatchService) DispatchEmail(ctx context.Context, req *models.DispatchRequest) (res models.DispatchResult) {
	defer s.recoverInto(&res, req.Recipient, req.TicketID, models.ChannelEmail)

	work := *req
	work.EventType = normalize.EventKey(work.EventType)

	if rep := s.validator.DispatchRequest(models.ChannelEmail, &work); !rep.Valid {
		return failed(work.Recipient, work.TicketID, "email request validation failed", strings.Join(rep.Errors, "; "))
	}

	lang := normalize.Language(work.Language)
	tpl, ok := s.store.Resolve(work.EventType, lang)
	if !ok {
		return failed(work.Recipient, work.TicketID, "email dispatch failed",
			fmt.Sprintf("template not found for event %q in language %q", work.EventType, lang))
	}
	s.noteFallback(work.EventType, lang)

	msg := s.renderer.RenderEmail(tpl, render.FieldsFromRequest(&work))
	result, err := s.safeSendEmail(ctx, work.Recipient, msg)
	if err != nil {
		s.logger.Warn("email send failed",
			zap.String("event", work.EventType),
			zap.String("recipient", work.Recipient),
			zap.Error(err),
		)
		return failed(work.Recipient, work.TicketID, "failed to send email notification", transportDetail(err))
	}

	s.logger.Info("notification sent",
		zap.String("channel", models.ChannelEmail),
		zap.String("event", work.EventType),
		zap.String("recipient", work.Recipient),
		zap.String("message_id", result.MessageID),
	)
	return sent(work.Recipient, work.TicketID, "email notification sent", result.MessageID)
}

func (s *dispatchService) DispatchSMS(ctx context.Context, req *models.DispatchRequest) (res models.DispatchResult) {
	defer s.recoverInto(&res, req.Recipient, req.TicketID, models.ChannelSMS)

	prep, failure := s.prepareSMS(*req)
	if failure != nil {
		return *failure
	}

	result, err := s.safeSendSMS(ctx, prep.recipient, prep.kind, prep.message)
	if err != nil {
		s.logger.Warn("sms send failed",
			zap.String("recipient", prep.recipient),
			zap.Error(err),
		)
		return failed(prep.recipient, prep.ticketID, "failed to send sms notification", transportDetail(err))
	}

	s.logger.Info("notification sent",
		zap.String("channel", models.ChannelSMS),
		zap.String("recipient", prep.recipient),
		zap.String("segment_kind", prep.kind),
		zap.String("message_id", result.MessageID),
	)
	return sent(prep.recipient, prep.ticketID, "sms notification sent", result.MessageID)
}

// smsPrepared is a validated, rendered SMS ready for transport.
type smsPrepared struct {
	recipient string
	ticketID  string
	message   string
	kind      string
}

// prepareSMS runs the pre-transport stages of the SMS path: normalization,
// structural validation, template resolution, rendering and the segment cap.
// The cap is a validation condition, checked here and never at send time.
func (s *dispatchService) prepareSMS(work models.DispatchRequest) (smsPrepared, *models.DispatchResult) {
	work.EventType = normalize.EventKey(work.EventType)

	if rep := s.validator.DispatchRequest(models.ChannelSMS, &work); !rep.Valid {
		r := failed(work.Recipient, work.TicketID, "sms request validation failed", strings.Join(rep.Errors, "; "))
		return smsPrepared{}, &r
	}

	lang := normalize.Language(work.Language)
	tpl, ok := s.store.Resolve(work.EventType, lang)
	if !ok {
		r := failed(work.Recipient, work.TicketID, "sms dispatch failed",
			fmt.Sprintf("template not found for event %q in language %q", work.EventType, lang))
		return smsPrepared{}, &r
	}
	s.noteFallback(work.EventType, lang)

	message := s.renderer.RenderSMS(tpl, render.FieldsFromRequest(&work))
	info := sms.Measure(message, lang)
	if err := sms.CheckLength(info); err != nil {
		r := failed(work.Recipient, work.TicketID, "sms request validation failed", err.Error())
		return smsPrepared{}, &r
	}

	return smsPrepared{
		recipient: work.Recipient,
		ticketID:  work.TicketID,
		message:   message,
		kind:      info.Kind(),
	}, nil
}

// --- batch paths ---

// DispatchBulkEmail processes items sequentially through the single-item
// path. One result per request, in input order; failures stay contained.
func (s *dispatchService) DispatchBulkEmail(ctx context.Context, reqs []models.DispatchRequest) []models.DispatchResult {
	results := make([]models.DispatchResult, len(reqs))
	for i := range reqs {
		results[i] = s.DispatchEmail(ctx, &reqs[i])
	}
	return results
}

// DispatchBulkSMS prepares every item in isolation, then groups items whose
// rendered (message, segment kind) pairs are identical and issues one
// transport call per group with a combined recipient list. The group outcome
// fans out to each member; results keep input order.
func (s *dispatchService) DispatchBulkSMS(ctx context.Context, reqs []models.DispatchRequest) []models.DispatchResult {
	results := make([]models.DispatchResult, len(reqs))

	type smsGroup struct {
		message    string
		kind       string
		indexes    []int
		recipients []string
	}
	groups := map[string]*smsGroup{}
	var order []string

	for i := range reqs {
		prep, failure := s.prepareSMSIsolated(&reqs[i])
		if failure != nil {
			results[i] = *failure
			continue
		}
		key := prep.kind + "\x00" + prep.message
		g, ok := groups[key]
		if !ok {
			g = &smsGroup{message: prep.message, kind: prep.kind}
			groups[key] = g
			order = append(order, key)
		}
		g.indexes = append(g.indexes, i)
		g.recipients = append(g.recipients, prep.recipient)
	}

	for _, key := range order {
		g := groups[key]
		to := strings.Join(g.recipients, ",")
		result, err := s.safeSendSMS(ctx, to, g.kind, g.message)
		if err != nil {
			s.logger.Warn("sms group send failed",
				zap.Int("recipients", len(g.recipients)),
				zap.Error(err),
			)
		} else {
			s.logger.Info("sms group sent",
				zap.Int("recipients", len(g.recipients)),
				zap.String("segment_kind", g.kind),
				zap.String("message_id", result.MessageID),
			)
		}
		for _, i := range g.indexes {
			if err != nil {
				results[i] = failed(reqs[i].Recipient, reqs[i].TicketID, "failed to send sms notification", transportDetail(err))
			} else {
				results[i] = sent(reqs[i].Recipient, reqs[i].TicketID, "sms notification sent", result.MessageID)
			}
		}
	}

	return results
}

func (s *dispatchService) prepareSMSIsolated(req *models.DispatchRequest) (prep smsPrepared, failure *models.DispatchResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic during sms preparation", zap.Any("panic", r))
			res := failed(req.Recipient, req.TicketID, "sms dispatch failed", fmt.Sprintf("internal error: %v", r))
			failure = &res
		}
	}()
	return s.prepareSMS(*req)
}

// --- trip path ---

// DispatchTrip fans one trip event out to up to two channels: email when an
// address is present, SMS when a phone number is. Each channel follows its
// own single-item path and neither outcome affects the other.
func (s *dispatchService) DispatchTrip(ctx context.Context, req *models.TripDispatchRequest) models.TripDispatchResult {
	out := models.TripDispatchResult{}

	work := *req
	work.Type = normalize.EventKey(work.Type)

	if rep := s.validator.TripRequest(&work); !rep.Valid {
		detail := strings.Join(rep.Errors, "; ")
		// Report the failure on every channel that would have been
		// attempted; with no address at all, on both.
		if work.Email != "" || work.Phone == "" {
			r := failed(work.Email, work.TicketID, "trip request validation failed", detail)
			out.Email = &r
		}
		if work.Phone != "" || work.Email == "" {
			r := failed(work.Phone, work.TicketID, "trip request validation failed", detail)
			out.SMS = &r
		}
		return out
	}

	lang := normalize.Language(work.Language)
	fields := render.FieldsFromTrip(&work)

	if work.Email != "" {
		r := s.dispatchTripEmail(ctx, &work, lang, fields)
		out.Email = &r
	}
	if work.Phone != "" {
		r := s.dispatchTripSMS(ctx, &work, lang, fields)
		out.SMS = &r
	}
	return out
}

func (s *dispatchService) dispatchTripEmail(ctx context.Context, work *models.TripDispatchRequest, lang string, fields render.Fields) (res models.DispatchResult) {
	defer s.recoverInto(&res, work.Email, work.TicketID, models.ChannelEmail)

	tpl, ok := s.store.Resolve(work.Type, lang)
	if !ok {
		return failed(work.Email, work.TicketID, "email dispatch failed",
			fmt.Sprintf("template not found for event %q in language %q", work.Type, lang))
	}
	s.noteFallback(work.Type, lang)

	msg := s.renderer.RenderEmail(tpl, fields)
	result, err := s.safeSendEmail(ctx, work.Email, msg)
	if err != nil {
		s.logger.Warn("trip email send failed", zap.String("type", work.Type), zap.Error(err))
		return failed(work.Email, work.TicketID, "failed to send email notification", transportDetail(err))
	}
	return sent(work.Email, work.TicketID, "email notification sent", result.MessageID)
}

func (s *dispatchService) dispatchTripSMS(ctx context.Context, work *models.TripDispatchRequest, lang string, fields render.Fields) (res models.DispatchResult) {
	defer s.recoverInto(&res, work.Phone, work.TicketID, models.ChannelSMS)

	tpl, ok := s.store.Resolve(work.Type, lang)
	if !ok {
		return failed(work.Phone, work.TicketID, "sms dispatch failed",
			fmt.Sprintf("template not found for event %q in language %q", work.Type, lang))
	}
	s.noteFallback(work.Type, lang)

	message := s.renderer.RenderSMS(tpl, fields)
	info := sms.Measure(message, lang)
	if err := sms.CheckLength(info); err != nil {
		return failed(work.Phone, work.TicketID, "sms request validation failed", err.Error())
	}

	result, err := s.safeSendSMS(ctx, work.Phone, info.Kind(), message)
	if err != nil {
		s.logger.Warn("trip sms send failed", zap.String("type", work.Type), zap.Error(err))
		return failed(work.Phone, work.TicketID, "failed to send sms notification", transportDetail(err))
	}
	return sent(work.Phone, work.TicketID, "sms notification sent", result.MessageID)
}

// --- catalog and validation surface ---

func (s *dispatchService) ListEventTypes() []string { return s.store.EventKeys() }

func (s *dispatchService) ListLanguages() []string { return s.store.Languages() }

func (s *dispatchService) GetTemplate(eventType, language string) (templates.Template, bool) {
	key := normalize.EventKey(eventType)
	if !s.store.HasEvent(key) {
		return templates.Template{}, false
	}
	return s.store.Resolve(key, normalize.Language(language))
}

// Validate runs the same checks the dispatch paths apply before transport,
// including the SMS segment cap when the template resolves.
func (s *dispatchService) Validate(channel string, req *models.DispatchRequest) validation.Report {
	work := *req
	work.EventType = normalize.EventKey(work.EventType)

	rep := s.validator.DispatchRequest(channel, &work)
	if channel != models.ChannelSMS || !rep.Valid {
		return rep
	}

	lang := normalize.Language(work.Language)
	tpl, ok := s.store.Resolve(work.EventType, lang)
	if !ok {
		return rep
	}
	message := s.renderer.RenderSMS(tpl, render.FieldsFromRequest(&work))
	if err := sms.CheckLength(sms.Measure(message, lang)); err != nil {
		return validation.Report{Valid: false, Errors: []string{err.Error()}}
	}
	return rep
}

func (s *dispatchService) ValidateTrip(req *models.TripDispatchRequest) validation.Report {
	work := *req
	work.Type = normalize.EventKey(work.Type)
	return s.validator.TripRequest(&work)
}

// --- internals ---

func (s *dispatchService) noteFallback(eventKey, lang string) {
	if lang != normalize.LangEnglish && !s.store.HasExact(eventKey, lang) {
		s.logger.Info("template language fallback",
			zap.String("event", eventKey),
			zap.String("language", lang),
		)
	}
}

// safeSendEmail shields the coordinator from transport panics; a panic
// surfaces as an ordinary transport error.
func (s *dispatchService) safeSendEmail(ctx context.Context, to string, msg render.Email) (result sender.SendResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transport panic: %v", r)
		}
	}()
	return s.email.SendEmail(ctx, to, s.cfg.FromEmail, msg.Subject, msg.TextBody, msg.HTMLBody)
}

func (s *dispatchService) safeSendSMS(ctx context.Context, to, kind, message string) (result sender.SendResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transport panic: %v", r)
		}
	}()
	return s.sms.SendSMS(ctx, to, s.cfg.SMSSenderID, kind, message)
}

func (s *dispatchService) recoverInto(res *models.DispatchResult, recipient, ticketID, channel string) {
	if r := recover(); r != nil {
		s.logger.Error("dispatch panic recovered",
			zap.String("channel", channel),
			zap.Any("panic", r),
		)
		*res = failed(recipient, ticketID, channel+" dispatch failed", fmt.Sprintf("internal error: %v", r))
	}
}

func transportDetail(err error) string {
	var pe *sender.ProviderError
	switch {
	case errors.As(err, &pe):
		return "provider rejected: " + pe.Error()
	case errors.Is(err, sender.ErrNoResponse):
		return err.Error()
	default:
		return "request error: " + err.Error()
	}
}

func failed(recipient, ticketID, message, detail string) models.DispatchResult {
	return models.DispatchResult{
		Success:   false,
		Status:    models.StatusFailed,
		Message:   message,
		Error:     detail,
		Recipient: recipient,
		TicketID:  ticketID,
	}
}

func sent(recipient, ticketID, message, messageID string) models.DispatchResult {
	return models.DispatchResult{
		Success:   true,
		Status:    models.StatusSent,
		Message:   message,
		Recipient: recipient,
		TicketID:  ticketID,
		MessageID: messageID,
	}
}
