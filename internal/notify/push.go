package notify

import (
	"context"
	"fmt"

	webpush "github.com/SherClockHolmes/webpush-go"

	"mydo/internal/model"
)

// WebPushSender delivers payloads through the Web Push protocol with
// VAPID authentication.
type WebPushSender struct {
	subject    string // mailto: or https: contact per RFC 8292
	publicKey  string
	privateKey string
}

func NewWebPushSender(subject, publicKey, privateKey string) *WebPushSender {
	return &WebPushSender{subject: subject, publicKey: publicKey, privateKey: privateKey}
}

func (s *WebPushSender) Send(ctx context.Context, sub model.PushSubscription, payload string) error {
	keys, err := sub.DecodeKeys()
	if err != nil {
		return err
	}

	resp, err := webpush.SendNotificationWithContext(ctx, []byte(payload), &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: keys.P256dh,
			Auth:   keys.Auth,
		},
	}, &webpush.Options{
		Subscriber:      s.subject,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		TTL:             60,
	})
	if err != nil {
		return fmt.Errorf("push to %s: %w", sub.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("push to %s: status %d", sub.Endpoint, resp.StatusCode)
	}
	return nil
}
