package syjon

import "errors"

var (
	// ErrStructureMismatch means an activity block lacks one of the nested elements the page
	// layout is expected to carry. It usually means Syjon changed its markup.
	ErrStructureMismatch = errors.New("page structure mismatch")
	// ErrParse means a block's style attribute could not be decoded into a position.
	ErrParse = errors.New("style parse error")
)
