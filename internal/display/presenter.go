package display

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/inkstone-editor/inkstone/internal/render"
)

// Presenter draws flattened lines onto a tcell screen and runs a small
// read-only event loop with scrolling.
type Presenter struct {
	screen tcell.Screen
	theme  *Theme
	lines  []Line
	top    int
	mu     sync.Mutex
}

// NewPresenter creates a presenter on a fresh terminal screen.
func NewPresenter(theme *Theme) (*Presenter, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Presenter{screen: screen, theme: theme}, nil
}

// Init prepares the underlying screen for drawing.
func (p *Presenter) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.screen.Init(); err != nil {
		return err
	}
	p.screen.SetStyle(p.theme.Base)
	return nil
}

// Shutdown restores the terminal.
func (p *Presenter) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.screen.Fini()
}

// SetElement replaces the displayed content with a new element tree.
func (p *Presenter) SetElement(el *render.Element) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lines = Flatten(el, p.theme)
	p.clampScrollLocked()
	p.drawLocked()
}

// Run presents the content until the user quits with q or Escape.
// Arrow keys and paging keys scroll.
func (p *Presenter) Run() error {
	for {
		ev := p.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			p.mu.Lock()
			p.screen.Sync()
			p.clampScrollLocked()
			p.drawLocked()
			p.mu.Unlock()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyUp, ev.Rune() == 'k':
				p.scroll(-1)
			case ev.Key() == tcell.KeyDown, ev.Rune() == 'j':
				p.scroll(1)
			case ev.Key() == tcell.KeyPgUp:
				p.scrollPage(-1)
			case ev.Key() == tcell.KeyPgDn:
				p.scrollPage(1)
			case ev.Key() == tcell.KeyHome, ev.Rune() == 'g':
				p.scrollTo(0)
			case ev.Key() == tcell.KeyEnd, ev.Rune() == 'G':
				p.scrollTo(len(p.lines))
			}
		}
	}
}

func (p *Presenter) scroll(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.top += delta
	p.clampScrollLocked()
	p.drawLocked()
}

func (p *Presenter) scrollPage(dir int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, height := p.screen.Size()
	p.top += dir * height
	p.clampScrollLocked()
	p.drawLocked()
}

func (p *Presenter) scrollTo(line int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.top = line
	p.clampScrollLocked()
	p.drawLocked()
}

func (p *Presenter) clampScrollLocked() {
	_, height := p.screen.Size()
	max := len(p.lines) - height
	if max < 0 {
		max = 0
	}
	if p.top > max {
		p.top = max
	}
	if p.top < 0 {
		p.top = 0
	}
}

func (p *Presenter) drawLocked() {
	p.screen.Clear()
	width, height := p.screen.Size()

	for row := 0; row < height; row++ {
		idx := p.top + row
		if idx >= len(p.lines) {
			break
		}
		p.drawLine(row, width, p.lines[idx])
	}
	p.screen.Show()
}

// drawLine writes one line left to right, or right to left for RTL
// blocks, one grapheme cluster per column step.
func (p *Presenter) drawLine(row, width int, line Line) {
	x := 0
	if line.RTL {
		x = width - uniseg.StringWidth(line.Text())
		if x < 0 {
			x = 0
		}
	}
	for _, span := range line.Spans {
		g := uniseg.NewGraphemes(span.Text)
		for g.Next() {
			if x >= width {
				return
			}
			runes := g.Runes()
			p.screen.SetContent(x, row, runes[0], runes[1:], span.Style)
			x += g.Width()
		}
	}
}
