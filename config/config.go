/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"dirpx.dev/enum/apis"
)

const (
	// DefaultUndefined represents the default for Undefined.
	// Only definitions embedding apis.Undefined get the sentinel.
	DefaultUndefined = false
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
)

var validate = validator.New()

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap is valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Undefined: DefaultUndefined,
		MaxUnwrap: DefaultMaxUnwrap,
	}
}

// Validate checks cfg against the constraints declared on apis.Config.
// Violations are reported as a single apis.CodeInvalidConfig error whose
// Details map field names to messages.
func Validate(cfg apis.Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return apis.NewError(apis.CodeInvalidConfig, err.Error())
	}
	details := make(map[string]any, len(valErrs))
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		msg := formatValidationError(ve)
		details[ve.Field()] = msg
		messages = append(messages, ve.Field()+": "+msg)
	}
	return &apis.Error{
		Code:    apis.CodeInvalidConfig,
		Message: strings.Join(messages, "; "),
		Details: details,
	}
}

// Logger returns cfg.Logger, or slog.Default() when unset.
func Logger(cfg apis.Config) *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return slog.Default()
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithUndefined enables the undefined sentinel for every enumeration.
func WithUndefined(enabled bool) Option {
	return func(c *apis.Config) {
		c.Undefined = enabled
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithLogger sets the logger used for setup diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = logger
	}
}

// WithRand sets the source used by Random lookups.
func WithRand(r apis.Rand) Option {
	return func(c *apis.Config) {
		c.Rand = r
	}
}

func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "gte":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
