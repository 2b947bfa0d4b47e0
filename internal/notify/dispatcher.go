// Package notify delivers notification copies over side channels (email,
// browser push). Delivery is best-effort: every attempt is reported as an
// explicit Result and no channel failure stops the others.
package notify

import (
	"context"
	"fmt"

	"mydo/internal/model"
	"mydo/internal/repository"
)

// Channel identifies a delivery surface.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
)

// Result records the outcome of one delivery attempt.
type Result struct {
	Channel Channel
	Target  string // email address or push endpoint
	Err     error
}

func (r Result) OK() bool { return r.Err == nil }

// Message carries the per-channel content of one notification event.
type Message struct {
	Subject string // email subject
	Body    string // email body
	Push    string // push payload
}

// MailSender delivers a plain-text email.
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// PushSender delivers a payload to one push subscription.
type PushSender interface {
	Send(ctx context.Context, sub model.PushSubscription, payload string) error
}

// Dispatcher fans a message out to a user's channels. A nil MailSender
// disables the email channel; a nil PushSender disables push.
type Dispatcher struct {
	mail MailSender
	push PushSender
	subs *repository.PushSubscriptionRepository
}

func NewDispatcher(mail MailSender, push PushSender, subs *repository.PushSubscriptionRepository) *Dispatcher {
	return &Dispatcher{mail: mail, push: push, subs: subs}
}

// Dispatch attempts email delivery (only when the user has an address)
// and then one push delivery per registered subscription. A failure on
// any attempt is captured in its Result and never aborts the rest.
func (d *Dispatcher) Dispatch(ctx context.Context, user model.User, msg Message) []Result {
	var results []Result

	if d.mail != nil && user.Email != "" {
		err := d.mail.Send(ctx, user.Email, msg.Subject, msg.Body)
		results = append(results, Result{Channel: ChannelEmail, Target: user.Email, Err: err})
	}

	if d.push == nil {
		return results
	}

	subs, err := d.subs.ListByUser(ctx, user.ID)
	if err != nil {
		results = append(results, Result{
			Channel: ChannelPush,
			Err:     fmt.Errorf("list subscriptions: %w", err),
		})
		return results
	}
	for _, sub := range subs {
		err := d.push.Send(ctx, sub, msg.Push)
		results = append(results, Result{Channel: ChannelPush, Target: sub.Endpoint, Err: err})
	}
	return results
}
