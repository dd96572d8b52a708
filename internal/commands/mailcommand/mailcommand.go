// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package mailcommand

import (
	"context"

	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/ctxlog"
	"github.com/matt-FFFFFF/conductor/internal/devices"
)

var _ command.Command = (*SendMail)(nil)

// SendMail sends a message through a mailer. It cannot be undone.
type SendMail struct {
	label  string
	mailer *devices.Mailer
	msg    devices.Message
}

// New creates a command that sends msg through mailer.
func New(label string, mailer *devices.Mailer, msg devices.Message) *SendMail {
	if label == "" {
		label = "mail " + msg.To
	}

	return &SendMail{label: label, mailer: mailer, msg: msg}
}

// Label implements command.Labeller.
func (c *SendMail) Label() string {
	return c.label
}

// Message returns the message the command sends.
func (c *SendMail) Message() devices.Message {
	return c.msg
}

// Execute implements command.Command.
func (c *SendMail) Execute(ctx context.Context) error {
	if c.mailer == nil {
		return command.ErrNilReceiver
	}

	ctxlog.Debug(ctx, "sending mail", "mailer", c.mailer.Name, "to", c.msg.To, "subject", c.msg.Subject)
	return c.mailer.Send(c.msg)
}
