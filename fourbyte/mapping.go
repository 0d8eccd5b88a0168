package fourbyte

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gitlab.com/aquachain/fourbyte/common/log"
)

// Entry is one line of a selector mapping file.
type Entry struct {
	Selector  string // 8 lowercase hex characters
	Signature string // e.g. "transfer(address,uint256)"
}

// Mapping is an ordered selector-to-signature association. Order is the
// input file's key order, not sorted; a plain map would lose it.
type Mapping []Entry

// Load reads a mapping file from disk. See Parse for the accepted format.
func Load(path string) (Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a flat JSON object of string keys to string values,
// preserving key order. Repeated keys collapse to their last value, as a
// mapping literal reader would. Anything else (arrays, nested objects,
// non-string values, trailing data) is rejected with ErrParse.
//
// Decoding goes token by token because encoding/json's map type does not
// keep key order, and order must survive into the output file.
func Parse(r io.Reader) (Mapping, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: top level is %v, not an object", ErrParse, tok)
	}

	m := Mapping{}
	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: bad key token %v", ErrParse, keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		val, ok := valTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: value for key %q is not a string", ErrParse, key)
		}
		// mapping semantics: a repeated key overwrites its earlier value
		// in place, keeping the first occurrence's position
		if i, dup := index[key]; dup {
			m[i].Signature = val
			continue
		}
		index[key] = len(m)
		m = append(m, Entry{Selector: key, Signature: val})
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if tok, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data %v after mapping", ErrParse, tok)
	}
	return m, nil
}

// Recalculate returns a new Mapping with every entry's selector replaced by
// the canonical hash of its signature, in the same order. The incoming
// selectors are ignored entirely, they are the values being corrected.
//
// Two signatures can land on the same 8-character selector (distinct
// signatures truncate-collide, or the input repeats a signature under two
// keys); policy decides whether that is kept, warned about, or fatal.
func (m Mapping) Recalculate(policy DupePolicy) (Mapping, error) {
	out := make(Mapping, 0, len(m))
	seen := make(map[string]string, len(m))
	for _, e := range m {
		if !utf8.ValidString(e.Signature) {
			return nil, fmt.Errorf("%w: %q", ErrEncoding, e.Signature)
		}
		sel := MethodSig(e.Signature)
		if first, dup := seen[sel]; dup {
			switch policy {
			case DupeError:
				return nil, fmt.Errorf("%w: %s claimed by both %q and %q", ErrDuplicate, sel, first, e.Signature)
			case DupeWarn:
				log.Warn("selector collision", "selector", sel, "first", first, "next", e.Signature)
			}
		} else {
			seen[sel] = e.Signature
		}
		out = append(out, Entry{Selector: sel, Signature: e.Signature})
	}
	return out, nil
}

// Encode writes the mapping in the 4byte file format: opening brace, one
// `"selector": "signature"` line per entry joined by commas, closing brace.
// Both strings are JSON-encoded so a signature containing quotes or
// backslashes still yields a valid document.
func (m Mapping) Encode(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, e := range m {
		if i > 0 {
			buf.WriteString(",\n")
		}
		sel, err := json.Marshal(e.Selector)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
		sig, err := json.Marshal(e.Signature)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
		buf.Write(sel)
		buf.WriteString(": ")
		buf.Write(sig)
	}
	buf.WriteString("\n}")
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// WriteFile serializes the mapping to path, replacing any existing file.
// The whole document is encoded in memory before the file is touched.
func (m Mapping) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
