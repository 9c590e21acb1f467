package stdlib

import "errors"

// errf builds a plain error for a native function to return; interp's
// call protocol lifts it into a Runtime diagnostic at the call site.
func errf(message string) error {
	return errors.New(message)
}
