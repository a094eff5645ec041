// Copyright 2024 The rdfc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rdfc

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

// Options controls a canonicalization run (spec.md §4.5).
type Options struct {
	// HashAlgorithm selects SHA-256 (default) or SHA-384.
	HashAlgorithm HashAlgorithm `validate:"omitempty,oneof=SHA-256 SHA-384"`

	// BlankNodePrefix is the prefix used for canonical labels, e.g.
	// "c14n" yields "c14n0", "c14n1", ... Defaults to "c14n".
	BlankNodePrefix string `validate:"omitempty,excludesall= "`

	// PermutationWarnThreshold: once a collision bucket's N-degree
	// permutation search would have to explore more than this many
	// permutations, a V(1) diagnostic is logged through Logger. This
	// never changes the result or aborts the search; it only warns of
	// the adversarial-complexity case spec.md §5 calls out. Defaults
	// to 40320 (8!).
	PermutationWarnThreshold int `validate:"omitempty,min=1"`

	// Logger receives diagnostics. Defaults to a no-op logger.
	Logger logr.Logger
}

// NewOptions returns Options populated with RDFC-1.0's defaults:
// SHA-256, blank node prefix "c14n", a no-op logger.
func NewOptions() *Options {
	return &Options{
		HashAlgorithm:            SHA256,
		BlankNodePrefix:          "c14n",
		PermutationWarnThreshold: 40320,
		Logger:                   zapr.NewLogger(zap.NewNop()),
	}
}

// Validate rejects a malformed Options value before any
// canonicalization work begins, backed by
// github.com/go-playground/validator/v10.
func (o *Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return NewError(ErrInvalidOptions, "invalid canonicalization options", err)
	}
	return nil
}

// withDefaults returns a copy of opts with zero-valued fields filled
// in from NewOptions, so callers may pass a partially populated
// Options (or nil) to the facade.
func (o *Options) withDefaults() *Options {
	defaults := NewOptions()
	if o == nil {
		return defaults
	}
	merged := *o
	if merged.HashAlgorithm == "" {
		merged.HashAlgorithm = defaults.HashAlgorithm
	}
	if merged.BlankNodePrefix == "" {
		merged.BlankNodePrefix = defaults.BlankNodePrefix
	}
	if merged.PermutationWarnThreshold == 0 {
		merged.PermutationWarnThreshold = defaults.PermutationWarnThreshold
	}
	if merged.Logger.IsZero() {
		merged.Logger = defaults.Logger
	}
	return &merged
}
