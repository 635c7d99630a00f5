package boundary

import (
	"fmt"
	"runtime/debug"

	"github.com/iamNilotpal/lazrs/internal/core/domain"
	pkgerrors "github.com/iamNilotpal/lazrs/pkg/errors"
)

// guard runs fn and translates its error. A panic inside fn is recovered
// and reported as ResultOther; nothing fn left half done is published.
func (a *API) guard(op string, fn func() error) (res domain.Result) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Errorw("contained panic", "op", op, "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
			res = domain.ResultOther
		}
	}()

	err := fn()
	res = Translate(err)
	if res != domain.ResultOK {
		category := "engine"
		if c, ok := pkgerrors.CategoryOf(err); ok {
			category = c.String()
		}
		a.log.Debugw("call failed", "op", op, "result", res.String(), "category", category, "error", err)
	}
	return res
}
