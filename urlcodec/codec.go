package urlcodec

import (
	"strings"

	"github.com/pkg/errors"
)

// Decode percent-decodes s. A multi-byte UTF-8 character arrives as
// adjacent escapes ("%C3%A9"), so decoding inspects the leading byte of
// each escape to decide how many continuation escapes belong to it:
// below 0x80 the escape stands alone, below 0xE0 one continuation
// follows, below 0xF0 two, otherwise three. Continuation bytes must
// themselves be percent escapes; a bare character in their place is an
// error, as is any truncated or non-hex escape.
func Decode(s string) (string, error) {
	b := new(strings.Builder)
	b.Grow(len(s))

	for idx := 0; idx < len(s); {
		c := s[idx]
		if c != '%' {
			b.WriteByte(c)
			idx++
			continue
		}

		lead, err := unescapeByte(s, idx)
		if err != nil {
			return "", err
		}
		idx += 3

		var width int
		switch {
		case lead < 0x80:
			b.WriteByte(lead)
			continue
		case lead < 0xE0:
			width = 1
		case lead < 0xF0:
			width = 2
		default:
			width = 3
		}

		r := rune(lead & leadMask(width))
		for range width {
			cont, err := unescapeByte(s, idx)
			if err != nil {
				return "", errors.Wrap(err, "reading continuation escape")
			}
			idx += 3

			r = r<<6 | rune(cont&0x3F)
		}

		b.WriteRune(r)
	}

	return b.String(), nil
}

// leadMask returns the payload mask of a UTF-8 leading byte followed by
// the given number of continuation bytes.
func leadMask(width int) byte {
	switch width {
	case 1:
		return 0x1F
	case 2:
		return 0x0F
	default:
		return 0x07
	}
}

// unescapeByte reads a single "%XX" escape starting at idx.
func unescapeByte(s string, idx int) (byte, error) {
	if idx >= len(s) || s[idx] != '%' {
		return 0, errors.Errorf("expected escape at offset %d of %q", idx, s)
	}
	if idx+2 >= len(s) {
		return 0, errors.Errorf("truncated escape: %q", s[idx:])
	}

	hi, lo := s[idx+1], s[idx+2]
	if !isHexDigit(hi) || !isHexDigit(lo) {
		return 0, errors.Errorf("escape is not hex: %q", s[idx:idx+3])
	}

	return unhex([2]byte{hi, lo}), nil
}

func unhex(h [2]byte) (c byte) {
	return (_hex_to_num(h[0]) << 4) | _hex_to_num(h[1])
}

func _hex_to_num(h byte) byte {
	switch {
	case '0' <= h && h <= '9':
		return h - '0'
	case 'a' <= h && h <= 'f':
		return h - 'a' + 10
	case 'A' <= h && h <= 'F':
		return h - 'A' + 10
	}
	return 0
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('a' <= c && c <= 'f') ||
		('A' <= c && c <= 'F')
}
