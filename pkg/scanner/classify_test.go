package scanner

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		bytes    []byte
		expected Category
	}{
		{"Whitespace", []byte{' ', '\t', '\n', '\r', '\v', '\f'}, CatWhitespace},
		{"Letters", []byte{'a', 'z', 'A', 'Z', 'm'}, CatLetter},
		{"Digits", []byte{'0', '9', '5'}, CatDigit},
		{"Underscore", []byte{'_'}, CatUnderscore},
		{"Slash", []byte{'/'}, CatSlash},
		{"Star", []byte{'*'}, CatStar},
		{"Symbols", []byte{';', ':', ',', '[', ']', '(', ')', '{', '}', '+', '-', '=', '<'}, CatSymbol},
		{"Other", []byte{'@', '#', '$', '!', '~', '"', 0x80, 0xFF}, CatOther},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, b := range tc.bytes {
				if got := classify(b); got != tc.expected {
					t.Errorf("classify(%q) = %v, expected %v", b, got, tc.expected)
				}
			}
		})
	}
}

func TestResyncBytes(t *testing.T) {
	for _, b := range []byte{' ', '\n', 'a', '_', '7', ';', '/', '*', '='} {
		if !isResyncByte(b) {
			t.Errorf("%q must be a resynchronisation point", b)
		}
	}
	for _, b := range []byte{'@', '#', '$', '!', 0xEE} {
		if isResyncByte(b) {
			t.Errorf("%q must not be a resynchronisation point", b)
		}
	}
}
