package ftface

import "strconv"
import "strings"

// The generic failure type for engine operations. Every fallible call
// into the underlying engine is checked right after invocation; a
// failure is wrapped into an *Error and returned synchronously. The
// message always carries the engine's own description of the problem,
// which [Error.Unwrap] also exposes for errors.Is / errors.As matching.
type Error struct {
	Op  string // the operation that failed (e.g. "LoadGlyph")
	Err error  // the engine's own error
}

func (self *Error) Error() string {
	return "ftface: " + self.Op + ": " + self.Err.Error()
}

func (self *Error) Unwrap() error {
	return self.Err
}

// Returned by [Face.GetCharIndex] when the face's character map has no
// glyph mapped for a character code. This is a common, recoverable
// condition (an unsupported character, not an engine malfunction), so
// it gets its own type: match it with errors.As and fall back to a
// replacement glyph if that's your policy.
type InvalidCharCodeError struct {
	Code CharCode // the offending character code
}

func (self *InvalidCharCodeError) Error() string {
	return "ftface: no glyph mapped for character code " + formatCharCode(self.Code)
}

// Wraps a non-nil engine error into an *Error. Must never be called
// with a nil error; success paths don't reach translation.
func engineErr(op string, err error) error {
	if err == nil { panic("engineErr called with nil error") }
	return &Error{ Op: op, Err: err }
}

// Formats a char code like "U+0041" ('A').
func formatCharCode(code CharCode) string {
	hex := strings.ToUpper(strconv.FormatUint(uint64(code), 16))
	for len(hex) < 4 { hex = "0" + hex }
	return "U+" + hex
}
