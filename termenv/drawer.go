package termenv

import (
	"bytes"
	"strconv"

	"github.com/fwojciec/chunkview"
)

// drawer lays out one file: header, gutter, body lines and footer.
type drawer struct {
	canvas      *canvas
	theme       *chunkview.Theme
	grid        bool
	termWidth   int
	lnumWidth   int
	background  bool
	gutterColor chunkview.Color
}

func newDrawer(out *bytes.Buffer, opts chunkview.Options, theme *chunkview.Theme, chunks []chunkview.Chunk) *drawer {
	lastLine := 0
	if len(chunks) > 0 {
		lastLine = chunks[len(chunks)-1].End
	}
	lnumWidth := numDigits(lastLine)
	if len(chunks) > 1 {
		lnumWidth = max(lnumWidth, 3) // room for "..." in separator lines
	}

	c := &canvas{
		out:        out,
		theme:      theme,
		tabWidth:   opts.TabWidth,
		trueColor:  opts.ColorSupport == chunkview.TrueColor,
		background: opts.BackgroundColor,
	}
	if mc, ok := theme.MatchColor(); ok {
		c.matchColor = &mc
	}

	return &drawer{
		canvas:      c,
		theme:       theme,
		grid:        opts.Grid,
		termWidth:   opts.TermWidth,
		lnumWidth:   lnumWidth,
		background:  opts.BackgroundColor,
		gutterColor: theme.GutterColor(),
	}
}

func numDigits(n int) int {
	return len(strconv.Itoa(n))
}

func (d *drawer) gutterWidth() int {
	if d.grid {
		return d.lnumWidth + 4
	}
	return d.lnumWidth + 2
}

func (d *drawer) newline() {
	d.canvas.out.WriteByte('\n')
}

func (d *drawer) drawRule(n int) {
	for range n {
		d.canvas.out.WriteString("─")
	}
}

// drawHorizontalLine draws a full-width rule with sep at the gutter boundary.
func (d *drawer) drawHorizontalLine(sep string) {
	d.canvas.setFg(d.gutterColor)
	d.canvas.setDefaultBg()
	gw := d.gutterWidth()
	d.drawRule(gw - 2)
	d.canvas.out.WriteString(sep)
	d.drawRule(d.termWidth - gw + 1)
	d.canvas.resetColor()
	d.newline()
}

// drawLineNumber draws the gutter of a line. Colors are left set for the
// body that follows.
func (d *drawer) drawLineNumber(lnum int, matched bool) {
	fg := d.gutterColor
	if matched {
		fg = d.theme.DefaultStyle().Foreground
	}
	d.canvas.setFg(fg)
	d.canvas.setDefaultBg()
	d.canvas.drawSpaces(d.lnumWidth - numDigits(lnum))
	d.canvas.out.WriteByte(' ')
	d.canvas.out.WriteString(strconv.Itoa(lnum))
	if d.grid {
		if matched {
			d.canvas.setFg(d.gutterColor)
		}
		d.canvas.out.WriteString(" │")
	}
	d.canvas.setDefaultBg()
	d.canvas.out.WriteByte(' ')
}

// drawWrappingGutter draws the gutter of a continuation row.
func (d *drawer) drawWrappingGutter() {
	d.canvas.setFg(d.gutterColor)
	d.canvas.setDefaultBg()
	d.canvas.drawSpaces(d.lnumWidth + 2)
	if d.grid {
		d.canvas.out.WriteString("│ ")
	}
}

// drawSeparatorLine marks the lines skipped between two chunks. The "..."
// ends at column lnumWidth+1.
func (d *drawer) drawSeparatorLine() {
	d.canvas.setFg(d.gutterColor)
	d.canvas.setDefaultBg()
	leftMargin := d.lnumWidth + 1 - 3
	d.canvas.drawSpaces(leftMargin)
	w := 3
	if d.grid {
		d.canvas.out.WriteString("... ├")
		w = 5
	} else {
		d.canvas.out.WriteString("...")
	}
	d.canvas.setDefaultBg()
	d.drawRule(max(0, d.termWidth-leftMargin-w))
	d.canvas.resetColor()
	d.newline()
}

// drawLine draws one source line, wrapping it onto continuation rows when
// it is wider than the body.
func (d *drawer) drawLine(parts []chunkview.Token, lnum int, matched bool) {
	// The highlighter sees the newline, but the body must not: it would be
	// counted as text and break the padding.
	if n := len(parts); n > 0 {
		parts[n-1].Text = chunkview.TrimNewline(parts[n-1].Text)
	}

	bodyWidth := d.termWidth - d.gutterWidth()
	d.drawLineNumber(lnum, matched)
	for {
		rest, idx, wrapped := d.canvas.drawTexts(parts, matched, bodyWidth)
		if !wrapped {
			break
		}
		d.newline()
		d.drawWrappingGutter()
		if rest == "" {
			parts = parts[idx+1:]
		} else {
			parts = parts[idx:]
			parts[0].Text = rest
		}
	}
	d.newline()
}

// drawBody draws every chunk of the file. Lines before and between chunks
// are still fed to hl so that its state stays correct.
func (d *drawer) drawBody(file chunkview.File, text string, hl chunkview.LineHighlighter) {
	matched := file.LineNumbers
	chunks := file.Chunks
	if len(chunks) == 0 {
		return
	}
	chunk := chunks[0]
	chunks = chunks[1:]

	offset := 0
	for lnum, raw := range chunkview.Lines([]byte(text)) {
		line := text[offset : offset+len(raw)]
		offset += len(raw)

		if lnum < chunk.Start {
			hl.Skip(line)
			continue
		}

		for len(matched) > 0 && matched[0] < lnum {
			matched = matched[1:]
		}
		isMatch := len(matched) > 0 && matched[0] == lnum
		if isMatch {
			matched = matched[1:]
		}
		d.drawLine(hl.Highlight(line), lnum, isMatch)

		if lnum == chunk.End {
			if len(chunks) == 0 {
				break
			}
			d.drawSeparatorLine()
			chunk = chunks[0]
			chunks = chunks[1:]
		}
	}
}

func (d *drawer) drawHeader(path string) {
	d.drawHorizontalLine("─")
	d.canvas.setDefaultBg()
	d.canvas.setBold()
	d.canvas.out.WriteByte(' ')
	d.canvas.out.WriteString(path)
	if d.background {
		d.canvas.fillSpaces(widths.StringWidth(path)+1, d.termWidth)
	} else {
		d.canvas.resetColor()
	}
	d.newline()
	if d.grid {
		d.drawHorizontalLine("┬")
	}
}

func (d *drawer) drawFooter() {
	if d.grid {
		d.drawHorizontalLine("┴")
	}
}
