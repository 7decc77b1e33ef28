package bookticker

import "github.com/tidwall/gjson"

// ExtractFallback is the general JSON decoder invoked when ExtractFast
// bails. It tolerates field reordering, escaped characters, and nested
// structures that the fast path deliberately can't handle.
//
// Built on gjson.GetMany rather than unmarshaling into a struct: the four
// fields this system needs are always top-level string values, and
// GetMany reads each of them directly out of the frame without building
// an intermediate object graph.
func ExtractFallback(frame string) (Fields, bool) {
	results := gjson.GetMany(frame, "b", "B", "a", "A")
	for _, r := range results {
		if !r.Exists() || r.Type != gjson.String {
			return Fields{}, false
		}
	}
	return Fields{
		BidPx:  results[0].Str,
		BidQty: results[1].Str,
		AskPx:  results[2].Str,
		AskQty: results[3].Str,
	}, true
}
