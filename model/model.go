package model

// Summary holds the results of an operation for display.
type Summary struct {
	Modified []string
	Failed   []string
	Message  string
	// BytesWritten is the size of the payload written on success.
	BytesWritten int
}
