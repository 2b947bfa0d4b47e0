package notify

import (
	"context"
	"fmt"
	"testing"

	"mydo/internal/model"
	"mydo/internal/repository"
)

type stubMail struct {
	calls int
	err   error
}

func (s *stubMail) Send(_ context.Context, _, _, _ string) error {
	s.calls++
	return s.err
}

type stubPush struct {
	endpoints []string
	fail      map[string]error
}

func (s *stubPush) Send(_ context.Context, sub model.PushSubscription, _ string) error {
	s.endpoints = append(s.endpoints, sub.Endpoint)
	if err, ok := s.fail[sub.Endpoint]; ok {
		return err
	}
	return nil
}

func setupDispatcher(t *testing.T, mail MailSender, push PushSender) (*Dispatcher, *repository.PushSubscriptionRepository) {
	t.Helper()
	db, err := repository.NewDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	subs := repository.NewPushSubscriptionRepository(db)
	return NewDispatcher(mail, push, subs), subs
}

func TestDispatchSkipsEmailWithoutAddress(t *testing.T) {
	mail := &stubMail{}
	push := &stubPush{}
	d, _ := setupDispatcher(t, mail, push)

	results := d.Dispatch(context.Background(), model.User{ID: "u1"}, Message{Subject: "s", Body: "b", Push: "p"})
	if mail.calls != 0 {
		t.Fatalf("expected no email attempt, got %d", mail.calls)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results for channel-less user, got %+v", results)
	}
}

func TestDispatchIsolatesSubscriptionFailures(t *testing.T) {
	mail := &stubMail{err: fmt.Errorf("smtp down")}
	push := &stubPush{fail: map[string]error{"https://push.example/bad": fmt.Errorf("gone")}}
	d, subs := setupDispatcher(t, mail, push)

	ctx := context.Background()
	for _, endpoint := range []string{"https://push.example/bad", "https://push.example/good"} {
		sub := &model.PushSubscription{UserID: "u2", Endpoint: endpoint, Keys: `{"p256dh":"k","auth":"a"}`}
		if err := subs.Upsert(ctx, sub); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	results := d.Dispatch(ctx, model.User{ID: "u2", Email: "u2@example.com"}, Message{Subject: "s", Body: "b", Push: "p"})
	if len(results) != 3 {
		t.Fatalf("expected email + 2 push results, got %d", len(results))
	}
	if len(push.endpoints) != 2 {
		t.Fatalf("expected both endpoints attempted, got %v", push.endpoints)
	}

	var ok, failed int
	for _, res := range results {
		if res.OK() {
			ok++
		} else {
			failed++
		}
	}
	if ok != 1 || failed != 2 {
		t.Fatalf("expected 1 success and 2 failures, got ok=%d failed=%d", ok, failed)
	}
}

func TestDispatchNilMailSenderDisablesEmail(t *testing.T) {
	push := &stubPush{}
	d, _ := setupDispatcher(t, nil, push)

	results := d.Dispatch(context.Background(), model.User{ID: "u3", Email: "u3@example.com"}, Message{})
	for _, res := range results {
		if res.Channel == ChannelEmail {
			t.Fatal("email channel must be disabled with a nil sender")
		}
	}
}
