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
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
)

// HashAlgorithm selects the cryptographic digest used throughout
// first-degree and N-degree hashing.
type HashAlgorithm string

const (
	// SHA256 is the default RDFC-1.0 hash algorithm.
	SHA256 HashAlgorithm = "SHA-256"
	// SHA384 is the alternative hash algorithm spec.md §8 requires to
	// remain sound and complete, even though it may label differently
	// than SHA256 on colliding inputs.
	SHA384 HashAlgorithm = "SHA-384"
)

// newHasher returns a fresh hash.Hash for the given algorithm. Callers
// must validate the algorithm beforehand (Options.Validate does this);
// an unrecognized algorithm defaults to SHA-256.
func newHasher(algo HashAlgorithm) hash.Hash {
	if algo == SHA384 {
		return sha512.New384()
	}
	return sha256.New()
}

// hashHex hashes data with algo and returns the lowercase hex digest.
func hashHex(algo HashAlgorithm, data []byte) string {
	return hex.EncodeToString(hashBytes(algo, data))
}

// hashBytes hashes data with algo and returns the raw digest bytes.
func hashBytes(algo HashAlgorithm, data []byte) []byte {
	h := newHasher(algo)
	h.Write(data)
	return h.Sum(nil)
}
