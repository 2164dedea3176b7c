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

package config_test

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"testing"

	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.Undefined != config.DefaultUndefined {
		t.Fatalf("Undefined = %v, want %v", got.Undefined, config.DefaultUndefined)
	}
	if got.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want %d", got.MaxUnwrap, config.DefaultMaxUnwrap)
	}
	if got.Logger != nil || got.Rand != nil {
		t.Fatalf("Logger/Rand = %v/%v, want nil", got.Logger, got.Rand)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithUndefined(t *testing.T) {
	c := config.NewConfig(config.WithUndefined(true))
	if !c.Undefined {
		t.Fatalf("Undefined = %v, want true", c.Undefined)
	}
}

func TestWithMaxUnwrap_Positive(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(3))
	if c.MaxUnwrap != 3 {
		t.Fatalf("MaxUnwrap = %d, want 3", c.MaxUnwrap)
	}
}

func TestWithMaxUnwrap_Negative_ResetsToDefault(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(-1))
	if c.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want default %d", c.MaxUnwrap, config.DefaultMaxUnwrap)
	}
}

func TestWithLoggerAndRand(t *testing.T) {
	l := slog.New(slog.DiscardHandler)
	r := rand.New(rand.NewPCG(1, 2))
	c := config.NewConfig(config.WithLogger(l), config.WithRand(r))
	if c.Logger != l {
		t.Fatalf("Logger = %p, want %p", c.Logger, l)
	}
	if c.Rand != r {
		t.Fatalf("Rand not applied")
	}
	if config.Logger(c) != l {
		t.Fatalf("Logger(c) did not return the configured logger")
	}
	if config.Logger(config.DefaultConfig()) != slog.Default() {
		t.Fatalf("Logger(default) != slog.Default()")
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithUndefined(true),
		config.WithUndefined(false),
		config.WithMaxUnwrap(2),
		config.WithMaxUnwrap(5),
	)
	if c.Undefined {
		t.Errorf("Undefined = %v, want false (last option wins)", c.Undefined)
	}
	if c.MaxUnwrap != 5 {
		t.Errorf("MaxUnwrap = %d, want 5 (last option wins)", c.MaxUnwrap)
	}
}

func TestValidate(t *testing.T) {
	if err := config.Validate(config.DefaultConfig()); err != nil {
		t.Fatalf("Validate(default): unexpected error: %v", err)
	}
	if err := config.Validate(config.NewConfig(config.WithMaxUnwrap(0))); err != nil {
		t.Fatalf("Validate(MaxUnwrap=0): unexpected error: %v", err)
	}

	for _, n := range []int{-1, 65} {
		err := config.Validate(apis.Config{MaxUnwrap: n})
		if !errors.Is(err, apis.ErrInvalidConfig) {
			t.Fatalf("Validate(MaxUnwrap=%d): want ErrInvalidConfig, got %v", n, err)
		}
		var e *apis.Error
		if !errors.As(err, &e) || e.Details["MaxUnwrap"] == nil {
			t.Fatalf("Validate(MaxUnwrap=%d): missing MaxUnwrap detail: %v", n, err)
		}
	}
}
