package publisher

import (
	"path/filepath"
	"testing"

	"github.com/aditya-git16/lithos/quote"
	"github.com/aditya-git16/lithos/ring"
)

func TestProcessFrameEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring")
	w, err := ring.CreateWriter(path, 8)
	if err != nil {
		t.Fatalf("CreateWriter: %v", err)
	}
	defer w.Close()

	r, err := ring.OpenReader(path)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer r.Close()

	frame := `{"u":1,"s":"BTCUSDT","b":"65432.10","B":"0.500","a":"65432.50","A":"0.750"}`
	if ok := ProcessFrame(frame, 11, w); !ok {
		t.Fatal("ProcessFrame returned false for a well-formed frame")
	}

	rec, ok := r.TryRead()
	if !ok {
		t.Fatal("reader saw no record after ProcessFrame published")
	}
	if rec.SymbolId != 11 {
		t.Errorf("SymbolId = %d, want 11", rec.SymbolId)
	}
	if rec.BidPxTicks != 6543210 {
		t.Errorf("BidPxTicks = %d, want 6543210", rec.BidPxTicks)
	}
	if rec.AskPxTicks != 6543250 {
		t.Errorf("AskPxTicks = %d, want 6543250", rec.AskPxTicks)
	}
	if rec.BidQtyLots != 500 {
		t.Errorf("BidQtyLots = %d, want 500", rec.BidQtyLots)
	}
	if rec.AskQtyLots != 750 {
		t.Errorf("AskQtyLots = %d, want 750", rec.AskQtyLots)
	}
	if rec.TsEventNs == 0 {
		t.Error("TsEventNs is zero, want a populated monotonic timestamp")
	}
}

func TestProcessFrameUnparseable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring")
	w, err := ring.CreateWriter(path, 8)
	if err != nil {
		t.Fatalf("CreateWriter: %v", err)
	}
	defer w.Close()

	if ok := ProcessFrame(`{"not":"a book ticker"}`, quote.SymbolId(1), w); ok {
		t.Error("ProcessFrame returned true for an unparseable frame")
	}
}

func TestHandleFrameDropsUnparseable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring")
	w, err := ring.CreateWriter(path, 8)
	if err != nil {
		t.Fatalf("CreateWriter: %v", err)
	}
	defer w.Close()

	// Must not panic even though the frame can't be parsed.
	HandleFrame(`garbage`, quote.SymbolId(1), w)
}
