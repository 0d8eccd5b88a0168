package fourbyte

import (
	"fmt"
	"regexp"
	"testing"
)

func TestMethodSigHash(t *testing.T) {
	tcs := []struct {
		sig  string
		hash string
	}{
		{"", "c5d24601"},
		{"transfer(address,uint256)", "a9059cbb"},
		{"approve(address,uint256)", "095ea7b3"},
		{"transferFrom(address,address,uint256)", "23b872dd"},
	}

	for _, tc := range tcs {
		t.Run(tc.sig, func(t *testing.T) {
			hash := MethodSigHash(tc.sig)
			if fmt.Sprintf("%02x", hash) != tc.hash {
				t.Errorf("expected %s but got %x", tc.hash, hash)
			}
		})
	}
}

func TestMethodSig(t *testing.T) {
	if got := MethodSig("transfer(address,uint256)"); got != "a9059cbb" {
		t.Errorf("expected a9059cbb but got %s", got)
	}
	// deterministic
	if MethodSig("balanceOf(address)") != MethodSig("balanceOf(address)") {
		t.Error("same signature hashed to different selectors")
	}
}

func TestMethodSigCharset(t *testing.T) {
	selpattern := regexp.MustCompile(`^[0-9a-f]{8}$`)
	for _, sig := range []string{
		"",
		"transfer(address,uint256)",
		"name()",
		"weird \"quoted\" sig",
		"日本語()",
	} {
		if sel := MethodSig(sig); !selpattern.MatchString(sel) {
			t.Errorf("MethodSig(%q) = %q, not 8 lowercase hex characters", sig, sel)
		}
	}
}

func ExampleMethodSig() {
	fmt.Println(MethodSig("transfer(address,uint256)"))
	fmt.Println(MethodSig("approve(address,uint256)"))
	// Output:
	// a9059cbb
	// 095ea7b3
}
