package sms

import (
	"context"
	"errors"
	"strings"

	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/usecase/interfaces"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrTwilioNotConfigured = errors.New("twilio not configured")

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioNotifier sends texts from the shop's Twilio number. In mock mode
// messages are only logged.
type TwilioNotifier struct {
	api      messageCreator
	from     string
	mockMode bool
}

var _ interfaces.ISMSNotifier = (*TwilioNotifier)(nil)

func NewTwilioNotifier(accountSID, authToken, from string, mockMode bool) (*TwilioNotifier, error) {
	if mockMode {
		logger.For("sms", "gateway").Info("[sms][gateway] mock mode enabled")
		return &TwilioNotifier{mockMode: true, from: from}, nil
	}
	if strings.TrimSpace(accountSID) == "" || strings.TrimSpace(authToken) == "" || strings.TrimSpace(from) == "" {
		return nil, ErrTwilioNotConfigured
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioNotifier{api: client.Api, from: from}, nil
}

func (n *TwilioNotifier) Send(_ context.Context, to string, body string) error {
	log := logger.For("sms", "gateway").WithField("to", maskPhone(to))
	if n.mockMode {
		log.WithField("body", body).Info("[sms][gateway] mock send")
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(n.from)
	params.SetBody(body)

	resp, err := n.api.CreateMessage(params)
	if err != nil {
		log.WithError(err).Error("[sms][gateway] send failed")
		return err
	}
	if resp != nil && resp.Sid != nil {
		log = log.WithField("sid", *resp.Sid)
	}
	log.Info("[sms][gateway] sent")
	return nil
}

// maskPhone keeps the last four digits for the logs.
func maskPhone(p string) string {
	if len(p) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(p)-4) + p[len(p)-4:]
}
