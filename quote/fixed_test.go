package quote

import "testing"

func TestParseFixedDP(t *testing.T) {
	cases := []struct {
		dp   int
		in   string
		want int64
	}{
		{2, "100.25", 10025},
		{2, "100", 10000},
		{2, "0.5", 50},
		{2, "-42.10", -4210},
		{2, "-0.01", -1},
		{3, "1.2345", 1234}, // truncates beyond dp
		{3, "1", 1000},
		{3, "0.1", 100},
		{0, "7", 7},
	}
	for _, c := range cases {
		got := ParseFixedDP(c.dp, c.in)
		if got != c.want {
			t.Errorf("ParseFixedDP(%d, %q) = %d, want %d", c.dp, c.in, got, c.want)
		}
	}
}

func TestParsePriceTicks(t *testing.T) {
	if got := ParsePriceTicks("65432.10"); got != 6543210 {
		t.Errorf("ParsePriceTicks = %d, want 6543210", got)
	}
}

func TestParseQtyLots(t *testing.T) {
	if got := ParseQtyLots("0.500"); got != 500 {
		t.Errorf("ParseQtyLots = %d, want 500", got)
	}
}
