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

import "github.com/multiformats/go-multibase"

// Digest hashes the canonical N-Quads form of a dataset with the
// algorithm named in opts (SHA-256 by default) and renders the digest
// as a multibase string, always base58btc-encoded — the form most
// Data-Integrity proof suites expect a canonicalization hash in.
//
// This is an addition beyond the core RDFC-1.0 algorithm: canonical
// N-Quads text is itself a complete, useful result, but callers
// building proof suites or content-addressed stores need the hashed,
// encoded form, so the facade offers it directly instead of making
// every caller re-derive the same three lines.
func Digest(canonical string, opts *Options) (string, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return "", err
	}
	raw := hashBytes(opts.HashAlgorithm, []byte(canonical))
	encoded, err := multibase.Encode(multibase.Base58BTC, raw)
	if err != nil {
		return "", NewError(ErrInternalInvariant, "multibase encoding failed", err)
	}
	return encoded, nil
}

// DigestDataset canonicalizes ds and returns the multibase-encoded
// digest of the result in one call.
func DigestDataset(ds *Dataset, opts *Options) (string, error) {
	canonical, err := Canonicalize(ds, opts)
	if err != nil {
		return "", err
	}
	return Digest(canonical, opts)
}
