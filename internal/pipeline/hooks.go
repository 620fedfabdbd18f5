package pipeline

import (
	"sync"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// ImageHook returns the class attribute for a rendered image, given the
// image destination. An empty return omits the attribute.
type ImageHook func(destination string) string

var (
	imageHookMu sync.RWMutex
	imageHook   ImageHook = defaultImageHook
)

// defaultImageHook applies no classes.
func defaultImageHook(string) string { return "" }

// SwapImageHook installs h as the process-wide image hook and returns a
// restore function that reinstates the previous hook. The restore function
// is idempotent, so callers can both defer it and call it early on the
// success path. A nil h installs the default hook.
func SwapImageHook(h ImageHook) (restore func()) {
	if h == nil {
		h = defaultImageHook
	}

	imageHookMu.Lock()
	prev := imageHook
	imageHook = h
	imageHookMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			imageHookMu.Lock()
			imageHook = prev
			imageHookMu.Unlock()
		})
	}
}

func currentImageHook() ImageHook {
	imageHookMu.RLock()
	defer imageHookMu.RUnlock()
	return imageHook
}

// imageHookRenderer renders images, consulting the process-wide image hook
// for a class attribute.
type imageHookRenderer struct{}

func newImageHookRenderer() *imageHookRenderer {
	return &imageHookRenderer{}
}

// RegisterFuncs registers the image render function.
func (r *imageHookRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindImage, r.renderImage)
}

func (r *imageHookRenderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Image)

	_, _ = w.WriteString(`<img src="`)
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
	_, _ = w.WriteString(`" alt="`)
	_, _ = w.Write(util.EscapeHTML(n.Text(source)))
	_, _ = w.WriteString(`"`)

	if class := currentImageHook()(string(n.Destination)); class != "" {
		_, _ = w.WriteString(` class="`)
		_, _ = w.Write(util.EscapeHTML([]byte(class)))
		_, _ = w.WriteString(`"`)
	}

	if n.Title != nil {
		_, _ = w.WriteString(` title="`)
		_, _ = w.Write(util.EscapeHTML(n.Title))
		_, _ = w.WriteString(`"`)
	}

	_, _ = w.WriteString(` />`)
	return ast.WalkSkipChildren, nil
}
