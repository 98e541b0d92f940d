package formatter

import (
	stderrors "errors"
	"fmt"
	"strings"

	goerrors "github.com/go-errors/errors"
	"github.com/pkg/errors"
)

// renderStack produces the trace text for a thrown error. Errors
// created or wrapped by go-errors carry a fully formatted stack;
// pkg/errors values expose their frames through StackTrace; anything
// else falls back to the "%+v" rendering, which for a plain error is
// just its message.
func renderStack(err error) string {
	var traced *goerrors.Error
	if stderrors.As(err, &traced) {
		return traced.ErrorStack()
	}

	var st interface{ StackTrace() errors.StackTrace }
	if stderrors.As(err, &st) {
		var b strings.Builder
		b.WriteString(err.Error())
		for _, frame := range st.StackTrace() {
			fmt.Fprintf(&b, "\n\t%+v", frame)
		}
		return b.String()
	}

	return fmt.Sprintf("%+v", err)
}
