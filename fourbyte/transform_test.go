package fourbyte

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/aquachain/fourbyte/common/log"
)

func init() {
	log.ResetForTesting()
}

// writeInput drops a mapping file into a temp dir and returns a ready Config.
func writeInput(t *testing.T, content string) Config {
	t.Helper()
	dir := t.TempDir()
	cfg := Config{
		Input:  filepath.Join(dir, DefaultInput),
		Output: filepath.Join(dir, DefaultOutput),
		Dupes:  DupeKeep,
	}
	require.NoError(t, os.WriteFile(cfg.Input, []byte(content), 0644))
	return cfg
}

func readOutput(t *testing.T, cfg Config) string {
	t.Helper()
	out, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	return string(out)
}

func TestRunCorrectsSelector(t *testing.T) {
	// the input key is wrong on purpose and must not leak into the output
	cfg := writeInput(t, `{"deadbeef": "transfer(address,uint256)"}`)
	n, err := Run(cfg)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	got := readOutput(t, cfg)
	require.Equal(t, "{\n\"a9059cbb\": \"transfer(address,uint256)\"\n}", got)
	require.NotContains(t, got, "deadbeef")
}

func TestRunPreservesOrder(t *testing.T) {
	cfg := writeInput(t, `{
		"00000001": "transfer(address,uint256)",
		"00000002": "approve(address,uint256)",
		"00000003": "transferFrom(address,address,uint256)"
	}`)
	_, err := Run(cfg)
	require.NoError(t, err)

	got := readOutput(t, cfg)
	ia := strings.Index(got, "a9059cbb")
	ib := strings.Index(got, "095ea7b3")
	ic := strings.Index(got, "23b872dd")
	require.True(t, ia >= 0 && ib >= 0 && ic >= 0, "missing recalculated selectors in %q", got)
	require.True(t, ia < ib && ib < ic, "entries reordered: %q", got)
}

func TestRunEmptyMapping(t *testing.T) {
	cfg := writeInput(t, `{}`)
	n, err := Run(cfg)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Equal(t, "{\n\n}", readOutput(t, cfg))
}

func TestRunIdempotent(t *testing.T) {
	cfg := writeInput(t, `{"ffffffff": "name()", "eeeeeeee": "symbol()", "dddddddd": "decimals()"}`)

	_, err := Run(cfg)
	require.NoError(t, err)
	first := readOutput(t, cfg)

	_, err = Run(cfg)
	require.NoError(t, err)
	require.Equal(t, first, readOutput(t, cfg))
}

func TestRunEscapesSignatures(t *testing.T) {
	cfg := writeInput(t, `{"00000000": "odd \"sig\" with\\backslash"}`)
	_, err := Run(cfg)
	require.NoError(t, err)

	// output must stay valid despite embedded quotes, so the escaped form
	// has to round-trip through Parse
	got := readOutput(t, cfg)
	m, err := Parse(strings.NewReader(got))
	require.NoError(t, err)
	require.Len(t, m, 1)
	require.Equal(t, `odd "sig" with\backslash`, m[0].Signature)
}

func TestRunQuietAtInfo(t *testing.T) {
	// the single stdout confirmation belongs to the command layer; Run
	// itself must stay silent below debug verbosity
	var records []*log.Record
	old := log.Root().GetHandler()
	log.Root().SetHandler(log.FuncHandler(func(r *log.Record) error {
		records = append(records, r)
		return nil
	}))
	defer log.Root().SetHandler(old)

	cfg := writeInput(t, `{"deadbeef": "transfer(address,uint256)"}`)
	_, err := Run(cfg)
	require.NoError(t, err)
	for _, r := range records {
		require.GreaterOrEqual(t, r.Lvl, log.LvlDebug, "unexpected %v log: %s", r.Lvl, r.Msg)
	}
}

func TestRunNotFound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = filepath.Join(t.TempDir(), "nope.json")
	_, err := Run(cfg)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRunLeavesNoOutputOnFailure(t *testing.T) {
	cfg := writeInput(t, `{"00000000": ["not", "a", "string"]}`)
	_, err := Run(cfg)
	require.ErrorIs(t, err, ErrParse)
	_, staterr := os.Stat(cfg.Output)
	require.True(t, os.IsNotExist(staterr), "failed run must not create output")
}

func TestParseRejects(t *testing.T) {
	tcs := []struct {
		name  string
		input string
	}{
		{"empty file", ""},
		{"array root", `["a", "b"]`},
		{"string root", `"hello"`},
		{"nested object", `{"a": {"b": "c"}}`},
		{"numeric value", `{"a": 1}`},
		{"null value", `{"a": null}`},
		{"trailing garbage", `{"a": "b"} extra`},
		{"second document", `{"a": "b"}{"c": "d"}`},
		{"truncated", `{"a": "b"`},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			require.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestParseDuplicateInputKeysLastWins(t *testing.T) {
	m, err := Parse(strings.NewReader(`{"aaaaaaaa": "name()", "aaaaaaaa": "symbol()"}`))
	require.NoError(t, err)
	require.Len(t, m, 1)
	require.Equal(t, "symbol()", m[0].Signature)

	// the overwritten key keeps its first position
	m, err = Parse(strings.NewReader(`{"aaaaaaaa": "name()", "bbbbbbbb": "decimals()", "aaaaaaaa": "symbol()"}`))
	require.NoError(t, err)
	require.Equal(t, Mapping{
		{Selector: "aaaaaaaa", Signature: "symbol()"},
		{Selector: "bbbbbbbb", Signature: "decimals()"},
	}, m)
}

func TestRecalculateDupePolicies(t *testing.T) {
	// same signature under two wrong keys collides after recalculation
	m := Mapping{
		{Selector: "11111111", Signature: "name()"},
		{Selector: "22222222", Signature: "name()"},
	}

	out, err := m.Recalculate(DupeKeep)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, out[0].Selector, out[1].Selector)

	out, err = m.Recalculate(DupeWarn)
	require.NoError(t, err)
	require.Len(t, out, 2)

	_, err = m.Recalculate(DupeError)
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestRecalculateRejectsBadEncoding(t *testing.T) {
	m := Mapping{{Selector: "00000000", Signature: "bad\xff\xfe()"}}
	_, err := m.Recalculate(DupeKeep)
	require.ErrorIs(t, err, ErrEncoding)
}

func TestParseDupePolicy(t *testing.T) {
	for _, ok := range []string{"keep", "warn", "error"} {
		p, err := ParseDupePolicy(ok)
		require.NoError(t, err)
		require.Equal(t, DupePolicy(ok), p)
	}
	_, err := ParseDupePolicy("explode")
	require.Error(t, err)
	_, err = ParseDupePolicy("")
	require.Error(t, err)
}

func TestEncodeMatchesLegacyLayout(t *testing.T) {
	m := Mapping{
		{Selector: "a9059cbb", Signature: "transfer(address,uint256)"},
		{Selector: "095ea7b3", Signature: "approve(address,uint256)"},
	}
	var sb strings.Builder
	require.NoError(t, m.Encode(&sb))
	want := "{\n" +
		"\"a9059cbb\": \"transfer(address,uint256)\",\n" +
		"\"095ea7b3\": \"approve(address,uint256)\"\n" +
		"}"
	require.Equal(t, want, sb.String())
}

func TestErrorsAreDistinct(t *testing.T) {
	errs := []error{ErrNotFound, ErrParse, ErrEncoding, ErrWrite, ErrDuplicate}
	for i, a := range errs {
		for j, b := range errs {
			if i != j && errors.Is(a, b) {
				t.Errorf("error %v matches unrelated %v", a, b)
			}
		}
	}
}
