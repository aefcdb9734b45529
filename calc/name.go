package calc

// IsValidName reports whether name can be bound in a [Symbols] table: an
// ASCII letter followed by any number of ASCII letters, digits and
// underscores.
func IsValidName(name string) bool {
	if name == "" || !isLetter(name[0]) {
		return false
	}

	for i := 1; i < len(name); i++ {
		if c := name[i]; !isLetter(c) && !isDigit(c) && c != '_' {
			return false
		}
	}

	return true
}

func isLetter(c byte) bool { return (c|0x20) >= 'a' && (c|0x20) <= 'z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
