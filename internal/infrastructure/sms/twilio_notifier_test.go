package sms

import (
	"context"
	"errors"
	"testing"

	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeCreator struct {
	params *twilioApi.CreateMessageParams
	err    error
}

func (f *fakeCreator) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func TestNewTwilioNotifier(t *testing.T) {
	if _, err := NewTwilioNotifier("", "", "", false); !errors.Is(err, ErrTwilioNotConfigured) {
		t.Fatalf("expected ErrTwilioNotConfigured, got %v", err)
	}
	n, err := NewTwilioNotifier("", "", "", true)
	if err != nil || n.Send(context.Background(), "+5511987654321", "oi") != nil {
		t.Fatalf("mock notifier must accept messages, err=%v", err)
	}
}

func TestTwilioNotifier_Send(t *testing.T) {
	api := &fakeCreator{}
	n := &TwilioNotifier{api: api, from: "+15550001111"}

	if err := n.Send(context.Background(), "+5511987654321", "pronto"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *api.params.To != "+5511987654321" || *api.params.From != "+15550001111" || *api.params.Body != "pronto" {
		t.Fatalf("unexpected params %+v", api.params)
	}

	api.err = errors.New("21211 invalid number")
	if err := n.Send(context.Background(), "+55", "x"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestMaskPhone(t *testing.T) {
	if got := maskPhone("+5511987654321"); got != "**********4321" {
		t.Fatalf("unexpected mask %q", got)
	}
	if maskPhone("123") != "****" {
		t.Fatalf("short numbers must be fully masked")
	}
}
