// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

var (
	// ErrUnsupportedFormat is returned when a scenario file has an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported scenario format, use .yaml, .yml or .hcl")
	// ErrInvalidYaml is returned when a YAML scenario cannot be decoded.
	ErrInvalidYaml = errors.New("invalid YAML")
	// ErrInvalidHCL is returned when an HCL scenario cannot be decoded.
	ErrInvalidHCL = errors.New("invalid HCL")
	// ErrTemplate is returned when a template in a YAML scenario cannot be evaluated.
	ErrTemplate = errors.New("failed to evaluate template")
	// ErrReadFile is returned when a scenario file cannot be read.
	ErrReadFile = errors.New("failed to read scenario file")
)

// LoadFile reads a scenario file through FsFactory and parses it.
func LoadFile(path string, vars map[string]string) (*Definition, error) {
	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}

	return Parse(path, data, vars)
}

// Parse decodes a scenario. The format is chosen by the extension of name.
// A scenario without a name is named after the file.
func Parse(name string, data []byte, vars map[string]string) (*Definition, error) {
	var (
		def *Definition
		err error
	)

	evalCtx := newEvalContext(vars)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		def, err = parseYAML(data, evalCtx)
	case ".hcl":
		def, err = parseHCL(name, data, evalCtx)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	if err != nil {
		return nil, err
	}

	if def.Name == "" {
		base := filepath.Base(name)
		def.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return def, nil
}

func newEvalContext(vars map[string]string) *hcl.EvalContext {
	varVals := make(map[string]cty.Value, len(vars))
	for _, k := range slices.Sorted(maps.Keys(vars)) {
		varVals[k] = cty.StringVal(vars[k])
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": cty.ObjectVal(varVals),
		},
		Functions: map[string]function.Function{
			"upper":  stdlib.UpperFunc,
			"lower":  stdlib.LowerFunc,
			"format": stdlib.FormatFunc,
		},
	}
}

func parseYAML(data []byte, evalCtx *hcl.EvalContext) (*Definition, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrInvalidYaml, err)
	}

	expanded, err := expandTemplates(raw, evalCtx)
	if err != nil {
		return nil, err
	}

	// Round trip so that the typed decode sees the expanded values.
	expandedYAML, err := yaml.Marshal(expanded)
	if err != nil {
		return nil, errors.Join(ErrInvalidYaml, err)
	}

	def := new(Definition)
	if err := yaml.Unmarshal(expandedYAML, def); err != nil {
		return nil, errors.Join(ErrInvalidYaml, err)
	}

	return def, nil
}

// expandTemplates walks a decoded YAML tree and evaluates every string containing "${" as an HCL template.
func expandTemplates(v any, evalCtx *hcl.EvalContext) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))

		for k, child := range t {
			e, err := expandTemplates(child, evalCtx)
			if err != nil {
				return nil, err
			}

			out[k] = e
		}

		return out, nil
	case []any:
		out := make([]any, len(t))

		for i, child := range t {
			e, err := expandTemplates(child, evalCtx)
			if err != nil {
				return nil, err
			}

			out[i] = e
		}

		return out, nil
	case string:
		if !strings.Contains(t, "${") {
			return t, nil
		}

		return evalTemplate(t, evalCtx)
	default:
		return v, nil
	}
}

func evalTemplate(s string, evalCtx *hcl.EvalContext) (string, error) {
	expr, diags := hclsyntax.ParseTemplate([]byte(s), "template", hcl.InitialPos)
	if diags.HasErrors() {
		return "", fmt.Errorf("%w %q: %w", ErrTemplate, s, diags)
	}

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", fmt.Errorf("%w %q: %w", ErrTemplate, s, diags)
	}

	val, err := convert.Convert(val, cty.String)
	if err != nil || val.IsNull() || !val.IsKnown() {
		return "", fmt.Errorf("%w %q: result is not a string", ErrTemplate, s)
	}

	return val.AsString(), nil
}
