package quote

// ParseFixedDP parses a decimal string matching -?\d+(\.\d*)? into a signed
// integer equal to value * 10^dp, truncating fractional digits beyond dp
// and zero-padding missing fractional digits.
//
// No allocation, branch-predictable, and undefined on malformed input:
// the hot path trusts exchange framing and never sees anything else.
func ParseFixedDP(dp int, s string) int64 {
	i := 0
	n := len(s)

	sign := int64(1)
	if i < n && s[i] == '-' {
		sign = -1
		i++
	}

	dot := n
	for j := i; j < n; j++ {
		if s[j] == '.' {
			dot = j
			break
		}
	}

	var intPart int64
	for ; i < dot; i++ {
		intPart = intPart*10 + int64(s[i]-'0')
	}

	fracStart := n
	if dot < n {
		fracStart = dot + 1
	}
	fracEnd := fracStart + dp
	if fracEnd > n {
		fracEnd = n
	}

	var frac int64
	var got int
	for j := fracStart; j < fracEnd; j++ {
		c := s[j]
		if c < '0' || c > '9' {
			break
		}
		frac = frac*10 + int64(c-'0')
		got++
	}
	for got < dp {
		frac *= 10
		got++
	}

	return sign * (intPart*pow10(dp) + frac)
}

// ParsePriceTicks parses a price string at 2 decimal places.
func ParsePriceTicks(s string) int64 { return ParseFixedDP(2, s) }

// ParseQtyLots parses a quantity string at 3 decimal places.
func ParseQtyLots(s string) int64 { return ParseFixedDP(3, s) }

// pow10 returns 10^dp for the small range this package actually uses.
func pow10(dp int) int64 {
	switch dp {
	case 0:
		return 1
	case 1:
		return 10
	case 2:
		return 100
	case 3:
		return 1000
	case 4:
		return 10_000
	case 5:
		return 100_000
	case 6:
		return 1_000_000
	default:
		p := int64(1)
		for i := 0; i < dp; i++ {
			p *= 10
		}
		return p
	}
}
