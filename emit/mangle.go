// Package emit implements the final pipeline stage: a visitor over the
// fully resolved AST that writes one `.bih`/`.hpp` header per package
// and one `.cpp` source per input file, in the target systems-language
// dialect selected by config.Config. Output is built as in-memory
// string slices by a text/template-free string-builder pass and
// written out only after the whole pass succeeds.
package emit

import (
	"fmt"
	"strings"
)

const base32Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUV"

// Mangle rewrites name into a legal target-language identifier: every
// byte outside [0-9A-Za-z_] is replaced by its base-32 encoding, and a
// trailing underscore is appended to every user identifier so it can
// never collide with a target-language keyword (`class_`, `new_`,
// ...). The encoding is applied byte-wise rather than rune-wise since
// fern identifiers are ASCII; this keeps the mangled form stable and
// round-trip-free in either direction, which is all the emitter
// needs.
func Mangle(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
			b.WriteByte(c)
		default:
			b.WriteByte('_')
			b.WriteByte(base32Alphabet[c>>5])
			b.WriteByte(base32Alphabet[c&0x1f])
		}
	}
	b.WriteByte('_')
	return b.String()
}

// nativeOperators lists the binary/unary operator symbols the target
// dialect spells natively; everything else mangles through the
// base-32 encoder like any other identifier.
var nativeOperators = map[string]string{
	"+": "operator+", "-": "operator-", "*": "operator*", "/": "operator/",
	"%": "operator%", "==": "operator==", "!=": "operator!=",
	"<": "operator<", "<=": "operator<=", ">": "operator>", ">=": "operator>=",
	"&&": "operator&&", "||": "operator||", "!": "operator!",
}

// MangleOperator renders one operator declaration's target-language
// method name. Conversion operators have no symbol of their own (empty
// string) and always mangle through the synthetic name "operator";
// every other operator uses its native spelling when the
// dialect has one, else falls back to the base-32 path like any other
// identifier.
func MangleOperator(symbol string) string {
	if symbol == "" {
		return Mangle("operator")
	}
	if native, ok := nativeOperators[symbol]; ok {
		return native
	}
	return Mangle("operator" + symbol)
}

// fiberStateName is the backing state-class name for a fiber
// declaration, keyed off its own mangled name so two fibers never
// collide even after mangling.
func fiberStateName(mangledFn string) string {
	return fmt.Sprintf("%sState", strings.TrimSuffix(mangledFn, "_"))
}
