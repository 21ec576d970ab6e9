package nodefmt

import "github.com/nodefmt/nodefmt/stream"

// StripWhitespace copies src to dst dropping every whitespace
// character that occurs outside a string literal. Inside a double
// quote it copies characters verbatim, whitespace included, until the
// matching unescaped closing quote; a backslash is copied together
// with the character that follows it, uninterpreted.
//
// This is a textual transform over the raw character stream, not a
// semantic one: no tree is built, and malformed input yields
// correspondingly malformed output.
func StripWhitespace(src stream.Source, dst stream.Destination) {
	for src.More() {
		ch, _ := src.Current()
		if !isStripSpace(ch) {
			writeRune(dst, ch)
			if ch == '"' {
				src.Next()
				copyStringLiteral(src, dst)
			}
		}
		src.Next()
	}
}

// copyStringLiteral copies up to and including the closing quote,
// leaving the cursor on the closing quote (or at end of input when
// the literal is unterminated).
func copyStringLiteral(src stream.Source, dst stream.Destination) {
	for src.More() {
		ch, _ := src.Current()
		if ch == '"' {
			dst.WriteByte('"')
			return
		}
		if ch == '\\' {
			dst.WriteByte('\\')
			src.Next()
			if !src.More() {
				return
			}
			ch, _ = src.Current()
		}
		writeRune(dst, ch)
		src.Next()
	}
}

func isStripSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func writeRune(dst stream.Destination, ch rune) {
	dst.WriteString(string(ch))
}
