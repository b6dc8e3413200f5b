package priority

// EmptyOrderError reports that no valid font remained after resolving the
// preference order. Nothing can be merged; the run stops before any font is
// read.
type EmptyOrderError struct{}

func (e *EmptyOrderError) Error() string {
	return "no valid fonts in prefer order"
}
