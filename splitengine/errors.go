package splitengine

import "log"

// HandleError panics on a non-nil error. It is used at the edges of the
// package, around the file Close calls in npydata.go, the same way the
// boosting driver this engine was extracted from wraps its npyio calls: a
// failure to close a file is treated as fatal, not as part of the
// engine's error-return contract.
func HandleError(err error) {
	if err != nil {
		log.Panic(err)
	}
}
