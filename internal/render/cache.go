package render

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// MinWidth is the narrowest wrap column the preview renders at. The TUI
// passes whatever is left beside the sidebar, which can drop to a handful of
// columns on a small terminal.
const MinWidth = 20

// rendererPool hands out glamour renderers per option set. A TermRenderer
// keeps a buffer between Render calls, so callers check one out instead of
// sharing it.
type rendererPool struct {
	mu    sync.Mutex
	pools map[Options]*stylePool
}

// stylePool holds idle renderers for one option set. err is set when the
// first renderer could not be built, usually a missing style file, and is
// returned for every later request instead of re-reading the file.
type stylePool struct {
	idle sync.Pool
	err  error
}

var globalPool = &rendererPool{
	pools: make(map[Options]*stylePool),
}

// normalize maps equivalent options onto one key: an empty style is the dark
// style and widths below MinWidth render at MinWidth.
func normalize(opts Options) Options {
	if opts.Style == "" {
		opts.Style = StyleDark
	}
	if opts.Width < MinWidth {
		opts.Width = MinWidth
	}
	return opts
}

func (p *rendererPool) lookup(opts Options) *stylePool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if sp, ok := p.pools[opts]; ok {
		return sp
	}

	sp := &stylePool{}
	if renderer, err := newTermRenderer(opts); err != nil {
		sp.err = err
	} else {
		sp.idle.Put(renderer)
	}
	p.pools[opts] = sp
	return sp
}

func (p *rendererPool) get(opts Options) (*glamour.TermRenderer, error) {
	sp := p.lookup(opts)
	if sp.err != nil {
		return nil, sp.err
	}
	if renderer, ok := sp.idle.Get().(*glamour.TermRenderer); ok {
		return renderer, nil
	}
	return newTermRenderer(opts)
}

func (p *rendererPool) put(opts Options, renderer *glamour.TermRenderer) {
	if renderer == nil {
		return
	}
	p.lookup(opts).idle.Put(renderer)
}

func newTermRenderer(opts Options) (*glamour.TermRenderer, error) {
	rendererOpts := []glamour.TermRendererOption{
		glamour.WithStylePath(opts.Style),
		glamour.WithWordWrap(opts.Width),
		glamour.WithTableWrap(opts.TableWrap),
		glamour.WithInlineTableLinks(opts.InlineTableLinks),
	}
	if opts.EnableEmoji {
		rendererOpts = append(rendererOpts, glamour.WithEmoji())
	}
	if opts.PreserveNewLines {
		rendererOpts = append(rendererOpts, glamour.WithPreservedNewLines())
	}

	return glamour.NewTermRenderer(rendererOpts...)
}

// ClearCache drops every pooled renderer and remembered style error.
func ClearCache() {
	globalPool.mu.Lock()
	globalPool.pools = make(map[Options]*stylePool)
	globalPool.mu.Unlock()
}

// CacheSize returns the number of distinct option sets seen so far.
func CacheSize() int {
	globalPool.mu.Lock()
	defer globalPool.mu.Unlock()
	return len(globalPool.pools)
}
