package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component adapts a gomponents node so it can be served with templ.Handler.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return n.Render(w)
	})
}
