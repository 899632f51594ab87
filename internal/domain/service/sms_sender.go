package service

import "context"

// SMSSender delivers a verification code to a phone number. The production
// deployment plugs a provider in here; development uses the log sender.
type SMSSender interface {
	SendCode(ctx context.Context, phone, code string) error
}
