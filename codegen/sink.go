package codegen

import "io"

// sink wraps an io.Writer and latches the first write error, so emission code
// can chain writes without checking every call. Errors surface once at the
// end of a render; nothing is retried.
type sink struct {
	w   io.Writer
	err error
}

func (s *sink) str(v string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, v)
}
