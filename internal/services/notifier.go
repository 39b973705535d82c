package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/lcstaffing/jobboard/internal/clients/email"
	"github.com/lcstaffing/jobboard/internal/domain/models"
	"github.com/lcstaffing/jobboard/internal/events"
	"github.com/lcstaffing/jobboard/internal/logger"
	"github.com/lcstaffing/jobboard/internal/metrics"
	log "github.com/sirupsen/logrus"
)

type jobRecordRepository interface {
	GetByID(ctx context.Context, id string) (*models.Job, error)
}

type userRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type emailSender interface {
	Send(ctx context.Context, message email.Message) error
}

// Notifier routes every created application to the responsible account
// manager and acknowledges receipt to the candidate.
type Notifier struct {
	jobs   jobRecordRepository
	users  userRepository
	sender emailSender
}

func NewNotifier(bus EventBus.Bus, jobs jobRecordRepository, users userRepository, sender emailSender) (*Notifier, error) {

	n := &Notifier{jobs: jobs, users: users, sender: sender}
	if err := bus.Subscribe(events.ApplicationCreatedTopic, n.onApplicationCreated); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Notifier) onApplicationCreated(event events.ApplicationCreated) {
	if err := n.Route(context.Background(), event.Application); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeEmailApi).
			Errorf("failed to deliver notifications for application %v: %v", event.Application.ID, err)
	}
}

// Route resolves the responsible recipient and sends the two notification
// emails. A missing reference anywhere in the chain aborts quietly:
// retrying an unresolvable reference cannot succeed, so it is only logged
// for the administrative system to fix. Delivery errors after the chain
// resolved are returned so the caller's redelivery policy applies; a
// redelivered event may produce a duplicate pair of emails.
func (n *Notifier) Route(ctx context.Context, application models.Application) error {

	recipient, ok := n.resolveRecipient(ctx, application)
	if !ok {
		return nil
	}

	// the two sends are independent: both are attempted, neither rolls
	// the other back
	var errs []error

	if err := n.sender.Send(ctx, composeRecipientEmail(application, recipient)); err != nil {
		errs = append(errs, fmt.Errorf("recipient notification: %w", err))
	} else {
		metrics.EmailsSentCounter.WithLabelValues("recipient").Inc()
	}

	if err := n.sender.Send(ctx, composeCandidateEmail(application, time.Now())); err != nil {
		errs = append(errs, fmt.Errorf("candidate confirmation: %w", err))
	} else {
		metrics.EmailsSentCounter.WithLabelValues("candidate").Inc()
	}

	return errors.Join(errs...)
}

// resolveRecipient walks the referential chain application → job record →
// responsible user → email. Candidate keys on the job record are tried in
// priority order: accountManager first, createdBy as the legacy fallback.
func (n *Notifier) resolveRecipient(ctx context.Context, application models.Application) (string, bool) {

	if application.JobID == "" {
		n.abort("missing_job_id", "application %v has no job reference", application.ID)
		return "", false
	}

	job, err := n.jobs.GetByID(ctx, application.JobID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to get job record %v: %v", application.JobID, err)
		return "", false
	}
	if job == nil {
		n.abort("job_not_found", "job record %v does not exist", application.JobID)
		return "", false
	}

	recipientID := firstNonEmpty(job.AccountManager, job.CreatedBy)
	if recipientID == "" {
		n.abort("no_responsible_user", "job record %v has neither account manager nor creator", job.ID)
		return "", false
	}

	user, err := n.users.GetByID(ctx, recipientID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to get user record %v: %v", recipientID, err)
		return "", false
	}
	if user == nil {
		n.abort("user_not_found", "user record %v does not exist", recipientID)
		return "", false
	}

	if user.Email == "" {
		n.abort("user_email_missing", "user record %v has no email", user.ID)
		return "", false
	}

	return user.Email, true
}

func (n *Notifier) abort(reason string, format string, args ...any) {
	metrics.RoutingAbortsCounter.WithLabelValues(reason).Inc()
	log.Warnf("notification aborted: "+format, args...)
}

func firstNonEmpty(candidates ...string) string {
	for _, candidate := range candidates {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// composeRecipientEmail renders the internal summary of a new
// application; optional fields appear only when present.
func composeRecipientEmail(application models.Application, recipient string) email.Message {

	var b strings.Builder

	b.WriteString("<h2>New Application Received</h2>")
	writeField(&b, "Job", application.JobTitle)
	writeField(&b, "Candidate", application.FullName)
	writeField(&b, "Email", application.Email)
	writeField(&b, "Phone", application.Phone)
	writeField(&b, "Birth date", application.BirthDate)
	writeField(&b, "Address", application.Address)
	b.WriteString("<hr>")
	writeField(&b, "Transport", string(application.HasTransport))
	writeField(&b, "Documents", string(application.HasDocuments))
	writeField(&b, "English level", string(application.EnglishLevel))
	writeField(&b, "Experience", string(application.HasExperience))
	writeOptionalField(&b, "Details", application.ExperienceDetails)
	if tags := application.ExperienceTagsAsArray(); len(tags) > 0 {
		writeField(&b, "Work experience", strings.Join(tags, ", "))
	}
	writeOptionalField(&b, "Location and period", application.ExperiencePeriod)
	writeOptionalField(&b, "Notes", application.AdditionalNotes)

	return email.Message{
		To:      recipient,
		Subject: "New application: " + application.JobTitle,
		HTML:    b.String(),
	}
}

// composeCandidateEmail renders the fixed confirmation template.
func composeCandidateEmail(application models.Application, now time.Time) email.Message {

	var b strings.Builder

	b.WriteString("<h2>Application Received</h2>")
	b.WriteString(fmt.Sprintf("<p>Thank you for applying to <strong>%s</strong> on %s.</p>",
		html.EscapeString(application.JobTitle), now.Format("January 2, 2006")))
	b.WriteString("<p>Our team will review your application and contact you soon.</p>")

	return email.Message{
		To:      application.Email,
		Subject: "We received your application: " + application.JobTitle,
		HTML:    b.String(),
	}
}

func writeField(b *strings.Builder, label string, value string) {
	b.WriteString(fmt.Sprintf("<p><strong>%s:</strong> %s</p>", label, html.EscapeString(value)))
}

func writeOptionalField(b *strings.Builder, label string, value *string) {
	if value == nil || *value == "" {
		return
	}
	writeField(b, label, *value)
}
