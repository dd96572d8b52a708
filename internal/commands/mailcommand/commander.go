// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package mailcommand provides a command that sends an email.
package mailcommand

import (
	"context"
	"errors"

	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/matt-FFFFFF/conductor/internal/commands"
	"github.com/matt-FFFFFF/conductor/internal/devices"
)

const commandType = "send-mail"

var _ commands.Commander = (*Commander)(nil)

// ErrMissingRecipient is returned when a send-mail definition has no recipient.
var ErrMissingRecipient = errors.New("send-mail requires a recipient")

// Commander creates send-mail commands.
type Commander struct{}

// Create implements commands.Commander.
func (c *Commander) Create(
	_ context.Context, _ commands.CommanderFactory, home *devices.Home, payload []byte,
) (command.Command, error) {
	def := new(Definition)
	if err := commands.Decode(payload, def); err != nil {
		return nil, err
	}

	if def.To == "" {
		return nil, errors.Join(commands.NewErrCommandCreate(commandType), ErrMissingRecipient)
	}

	mailer, err := commands.LookupDevice[*devices.Mailer](home, &def.BaseDefinition)
	if err != nil {
		return nil, err
	}

	return New(def.Name, mailer, devices.Message{
		To:      def.To,
		Subject: def.Subject,
		Body:    def.Body,
	}), nil
}

// Description implements commands.Commander.
func (c *Commander) Description() string {
	return "Sends an email, cannot be undone"
}

// Example implements commands.Commander.
func (c *Commander) Example() any {
	return &Definition{
		BaseDefinition: commands.BaseDefinition{
			Type:   commandType,
			Device: "mailer",
		},
		To:      "someone@example.com",
		Subject: "movie night",
		Body:    "popcorn is ready",
	}
}
