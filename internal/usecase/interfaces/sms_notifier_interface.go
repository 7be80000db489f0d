package interfaces

import "context"

// ISMSNotifier sends a text message to a phone in E.164 form.
type ISMSNotifier interface {
	Send(ctx context.Context, to string, body string) error
}
