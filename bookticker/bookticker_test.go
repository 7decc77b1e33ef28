package bookticker

import "testing"

func TestExtractFastBinanceOrdered(t *testing.T) {
	frame := `{"u":123,"s":"BTCUSDT","b":"65432.10","B":"0.500","a":"65432.50","A":"0.750"}`
	f, ok := ExtractFast(frame)
	if !ok {
		t.Fatal("ExtractFast returned ok=false for well-formed frame")
	}
	want := Fields{BidPx: "65432.10", BidQty: "0.500", AskPx: "65432.50", AskQty: "0.750"}
	if f != want {
		t.Errorf("ExtractFast = %+v, want %+v", f, want)
	}
}

func TestExtractFastMissingKey(t *testing.T) {
	frame := `{"u":123,"s":"BTCUSDT","b":"65432.10","a":"65432.50","A":"0.750"}`
	if _, ok := ExtractFast(frame); ok {
		t.Error("ExtractFast returned ok=true for frame missing key B")
	}
}

func TestExtractFastUnterminatedString(t *testing.T) {
	frame := `{"b":"65432.10`
	if _, ok := ExtractFast(frame); ok {
		t.Error("ExtractFast returned ok=true for unterminated string value")
	}
}

func TestExtractFastDuplicateKeyKeepsFirst(t *testing.T) {
	frame := `{"b":"1.00","b":"2.00","B":"0.1","a":"1.10","A":"0.2"}`
	f, ok := ExtractFast(frame)
	if !ok {
		t.Fatal("ExtractFast returned ok=false")
	}
	if f.BidPx != "1.00" {
		t.Errorf("BidPx = %q, want first sighting %q", f.BidPx, "1.00")
	}
}

func TestExtractFallbackReorderedFields(t *testing.T) {
	frame := `{"A":"0.750","a":"65432.50","B":"0.500","b":"65432.10","extra":"ignored"}`
	f, ok := ExtractFallback(frame)
	if !ok {
		t.Fatal("ExtractFallback returned ok=false for reordered well-formed frame")
	}
	want := Fields{BidPx: "65432.10", BidQty: "0.500", AskPx: "65432.50", AskQty: "0.750"}
	if f != want {
		t.Errorf("ExtractFallback = %+v, want %+v", f, want)
	}
}

func TestExtractFallbackMissingKey(t *testing.T) {
	frame := `{"b":"65432.10","B":"0.500","a":"65432.50"}`
	if _, ok := ExtractFallback(frame); ok {
		t.Error("ExtractFallback returned ok=true for frame missing key A")
	}
}

func TestExtractFallbackWrongType(t *testing.T) {
	frame := `{"b":65432.10,"B":"0.500","a":"65432.50","A":"0.750"}`
	if _, ok := ExtractFallback(frame); ok {
		t.Error("ExtractFallback returned ok=true when b was a JSON number, not a string")
	}
}
