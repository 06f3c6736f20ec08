package header

// A ValidationError reports a header that is missing or malformed.
// Key is the path of the offending entry, such as "FoamFile/format".
type ValidationError struct {
	Key string
	msg string
	err error
}

func (ve *ValidationError) Error() string {
	if ve.err != nil {
		return ve.Key + ": " + ve.err.Error()
	}
	return ve.Key + ": " + ve.msg
}

// Unwrap returns the decoding error behind ve, if any.
func (ve *ValidationError) Unwrap() error {
	return ve.err
}
