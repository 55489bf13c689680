package stringpool

import "unsafe"

// AddString copies s into a byte pool and returns a string view backed by
// pool storage. The input is read but never retained; the result shares no
// memory with it.
func AddString(p *Pool[byte], s string) (string, error) {
	var in []byte
	if len(s) > 0 {
		// Read-only alias of s; Add only copies from it.
		in = unsafe.Slice(unsafe.StringData(s), len(s))
	}
	view, err := p.Add(in)
	if err != nil {
		return "", err
	}
	return ViewString(view), nil
}

// ViewString reinterprets a view returned by a byte pool as a string
// without copying. The result aliases pool storage and is valid exactly as
// long as the view itself.
func ViewString(view []byte) string {
	if len(view) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(view), len(view))
}
