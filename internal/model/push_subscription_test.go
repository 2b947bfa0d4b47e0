package model

import "testing"

func TestDecodeKeysObjectForm(t *testing.T) {
	sub := PushSubscription{Keys: `{"p256dh":"pub","auth":"secret"}`}
	keys, err := sub.DecodeKeys()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if keys.P256dh != "pub" || keys.Auth != "secret" {
		t.Fatalf("unexpected keys: %+v", keys)
	}
}

func TestDecodeKeysDoublyEncodedForm(t *testing.T) {
	// Older rows store the object as a JSON string.
	sub := PushSubscription{Keys: `"{\"p256dh\":\"pub\",\"auth\":\"secret\"}"`}
	keys, err := sub.DecodeKeys()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if keys.P256dh != "pub" || keys.Auth != "secret" {
		t.Fatalf("unexpected keys: %+v", keys)
	}
}

func TestDecodeKeysRejectsGarbage(t *testing.T) {
	sub := PushSubscription{Keys: "not json"}
	if _, err := sub.DecodeKeys(); err == nil {
		t.Fatal("expected error for malformed key material")
	}
}
