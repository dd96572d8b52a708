// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
)

// hclFile is the root of an HCL scenario:
//
//	scenario "movie night" {
//	  device "lounge" { type = "light" }
//	  step "set" {
//	    command {
//	      type   = "light-on"
//	      device = "lounge"
//	    }
//	  }
//	  step "trigger" {}
//	}
type hclFile struct {
	Scenario hclScenario `hcl:"scenario,block"`
}

type hclScenario struct {
	Name          string            `hcl:"name,label"`
	Description   string            `hcl:"description,optional"`
	Devices       []hclDevice       `hcl:"device,block"`
	CommandGroups []hclCommandGroup `hcl:"command_group,block"`
	Steps         []hclStep         `hcl:"step,block"`
}

type hclDevice struct {
	Name string `hcl:"name,label"`
	Type string `hcl:"type"`
	Fail string `hcl:"fail,optional"`
}

type hclCommandGroup struct {
	Name     string        `hcl:"name,label"`
	Commands []*hclCommand `hcl:"command,block"`
}

type hclStep struct {
	Action  string      `hcl:"action,label"`
	Command *hclCommand `hcl:"command,block"`
}

// hclCommand carries the attributes of every command type.
// It is converted to the same map form a YAML definition decodes to.
type hclCommand struct {
	Type         string        `hcl:"type"`
	Name         string        `hcl:"name,optional"`
	Device       string        `hcl:"device,optional"`
	Level        *int          `hcl:"level,optional"`
	Text         string        `hcl:"text,optional"`
	To           string        `hcl:"to,optional"`
	Subject      string        `hcl:"subject,optional"`
	Body         string        `hcl:"body,optional"`
	CommandGroup string        `hcl:"command_group,optional"`
	Commands     []*hclCommand `hcl:"command,block"`
}

func parseHCL(filename string, data []byte, evalCtx *hcl.EvalContext) (*Definition, error) {
	var f hclFile
	if err := hclsimple.Decode(filename, data, evalCtx, &f); err != nil {
		return nil, errors.Join(ErrInvalidHCL, err)
	}

	s := f.Scenario
	def := &Definition{
		Name:        s.Name,
		Description: s.Description,
	}

	for _, d := range s.Devices {
		def.Devices = append(def.Devices, DeviceDefinition(d))
	}

	for _, g := range s.CommandGroups {
		def.CommandGroups = append(def.CommandGroups, CommandGroupDefinition{
			Name:     g.Name,
			Commands: commandList(g.Commands),
		})
	}

	for _, st := range s.Steps {
		step := StepDefinition{Action: Action(st.Action)}
		if st.Command != nil {
			step.Command = st.Command.toMap()
		}

		def.Steps = append(def.Steps, step)
	}

	return def, nil
}

func commandList(cmds []*hclCommand) []any {
	out := make([]any, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, c.toMap())
	}

	return out
}

func (c *hclCommand) toMap() map[string]any {
	m := map[string]any{"type": c.Type}

	optional := map[string]string{
		"name":          c.Name,
		"device":        c.Device,
		"text":          c.Text,
		"to":            c.To,
		"subject":       c.Subject,
		"body":          c.Body,
		"command_group": c.CommandGroup,
	}
	for k, v := range optional {
		if v != "" {
			m[k] = v
		}
	}

	if c.Level != nil {
		m["level"] = *c.Level
	}

	if len(c.Commands) > 0 {
		m["commands"] = commandList(c.Commands)
	}

	return m
}
