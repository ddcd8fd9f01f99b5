package mdicon

import (
	"fmt"
)

// checkErrors rolls up a list of errors into a single error, nils skipped.
// The first non-nil error stays unwrappable.
func checkErrors(errs ...error) error {
	var ferr error

	for _, err := range errs {
		if err == nil {
			continue
		} else if ferr == nil {
			ferr = err
		} else {
			ferr = fmt.Errorf("%w; %v", ferr, err)
		}
	}

	return ferr
}
