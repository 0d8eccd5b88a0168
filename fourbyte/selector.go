// fourbyte recalculates canonical 4-byte method selectors for function
// signature mappings.
package fourbyte

import (
	"encoding/hex"

	"gitlab.com/aquachain/fourbyte/crypto"
)

// MethodSigHash returns the 4-byte hash of the method signature.
//
// The sig must be correct, this function does no input checks.
//
// Example:
//
//	hash := MethodSigHash("transfer(address,uint256)")
func MethodSigHash(sig string) []byte {
	return crypto.Keccak256([]byte(sig))[:4]
}

// MethodSig returns the canonical selector of sig as exactly 8 lowercase hex
// characters, the form used as keys in 4byte mapping files.
//
// Example:
//
//	sel := MethodSig("transfer(address,uint256)") // "a9059cbb"
func MethodSig(sig string) string {
	return hex.EncodeToString(MethodSigHash(sig))
}
