// Copyright 2018 The aquachain Authors
// This file is part of the aquachain library.
//
// The aquachain library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The aquachain library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the aquachain library. If not, see <http://www.gnu.org/licenses/>.

// Package crypto holds the legacy Keccak-256 hashing used for method selectors.
//
// This is the original Keccak with the pre-NIST padding constant, not the
// standardized SHA3-256. The two differ on every input.
package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// HashLength is the byte length of a Keccak-256 digest.
const HashLength = 32

// Keccak256 calculates and returns the Keccak256 hash of the input data.
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// Keccak256Hex returns the Keccak256 hash of the input data as a lowercase
// hex string, without a 0x prefix.
func Keccak256Hex(data ...[]byte) string {
	return hex.EncodeToString(Keccak256(data...))
}
