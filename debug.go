package rectray

import (
	"fmt"
	"os"
)

// debugf writes a diagnostic line to stderr when the runtime was
// built with Debug set.
func (rt *Runtime) debugf(format string, args ...any) {
	if !rt.debug {
		return
	}
	fmt.Fprintf(os.Stderr, "[rectray] "+format+"\n", args...)
}
