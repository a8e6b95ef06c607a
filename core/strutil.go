package core

// Lightweight text helpers so the core package stays off the fmt package
// for TinyGo builds.

// utoa converts an unsigned integer to a decimal string.
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	buf := make([]byte, digits)
	pos := digits - 1
	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	return string(buf)
}

// parseMegahertz parses a decimal megahertz value ("3.56") into integer
// hertz. The fraction is read digit by digit so values like 3.499999
// convert exactly, with anything below one hertz discarded. Returns
// false on empty, non-numeric, or otherwise malformed input.
func parseMegahertz(s []byte) (uint32, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}

	start := i
	var mhz uint32
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		mhz = mhz*10 + uint32(s[i]-'0')
		// Keep mhz*1e6 plus a full 999999 Hz fraction inside uint32.
		if mhz > 4293 {
			return 0, false
		}
		i++
	}
	intDigits := i - start

	hz := mhz * 1_000_000

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		i++
		scale := uint32(100_000)
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			if scale > 0 {
				hz += uint32(s[i]-'0') * scale
				scale /= 10
			}
			fracDigits++
			i++
		}
	}

	if intDigits == 0 && fracDigits == 0 {
		return 0, false
	}

	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if i != len(s) {
		return 0, false
	}

	return hz, true
}
