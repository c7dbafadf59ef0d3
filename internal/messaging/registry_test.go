package messaging

import (
	"context"
	"testing"
)

type fakeProvider struct {
	code    string
	channel Channel
}

func (f *fakeProvider) Code() string     { return f.code }
func (f *fakeProvider) Name() string     { return "Fake " + f.code }
func (f *fakeProvider) Channel() Channel { return f.channel }
func (f *fakeProvider) Send(ctx context.Context, msg *Message) (*SendResult, error) {
	return &SendResult{ProviderID: "fake-id"}, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&fakeProvider{code: "twilio", channel: ChannelSMS}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	p, err := r.Get("twilio")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if p.Channel() != ChannelSMS {
		t.Errorf("channel = %s, want sms", p.Channel())
	}

	if !r.Has("twilio") {
		t.Error("Has(twilio) = false")
	}
	if r.Has("resend") {
		t.Error("Has(resend) = true for unregistered provider")
	}
}

func TestRegistry_DuplicateAndEmptyCode(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&fakeProvider{code: "resend", channel: ChannelEmail}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := r.Register(&fakeProvider{code: "resend", channel: ChannelEmail}); err == nil {
		t.Error("expected error on duplicate registration")
	}
	if err := r.Register(&fakeProvider{code: "", channel: ChannelSMS}); err == nil {
		t.Error("expected error on empty code")
	}
}

func TestRegistry_GetByChannel(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(&fakeProvider{code: "twilio", channel: ChannelSMS})

	if _, err := r.GetByChannel(ChannelSMS); err != nil {
		t.Errorf("GetByChannel(sms) failed: %v", err)
	}
	if _, err := r.GetByChannel(ChannelEmail); err == nil {
		t.Error("expected error for channel with no provider")
	}
}
