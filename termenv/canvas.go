package termenv

import (
	"bytes"
	"strconv"

	"github.com/fwojciec/chunkview"
	"github.com/mattn/go-runewidth"
	termenvlib "github.com/muesli/termenv"
)

// widths measures characters the way CJK terminals draw them: East Asian
// ambiguous characters take two columns.
var widths = &runewidth.Condition{EastAsianWidth: true, StrictEmojiNeutral: true}

// canvas writes styled text for a single file into a buffer.
type canvas struct {
	out        *bytes.Buffer
	theme      *chunkview.Theme
	tabWidth   int
	trueColor  bool
	background bool
	matchColor *chunkview.Color
}

func (c *canvas) setFg(color chunkview.Color) {
	c.writeColor(color, false)
}

func (c *canvas) setBg(color chunkview.Color) {
	c.writeColor(color, true)
}

// writeColor emits the SGR sequence for color. The alpha byte selects the
// encoding: 0 is a palette index held in R, 1 is transparent and anything
// else is RGB.
func (c *canvas) writeColor(color chunkview.Color, bg bool) {
	switch {
	case color.A == 0 && color.R <= 7:
		base := 30
		if bg {
			base = 40
		}
		c.sgr(strconv.Itoa(base + int(color.R)))
	case color.A == 0:
		c.indexed(int(color.R), bg)
	case color.A == 1:
	case c.trueColor:
		prefix := "38;2;"
		if bg {
			prefix = "48;2;"
		}
		c.sgr(prefix + strconv.Itoa(int(color.R)) + ";" + strconv.Itoa(int(color.G)) + ";" + strconv.Itoa(int(color.B)))
	default:
		c.indexed(ansi256(color), bg)
	}
}

func (c *canvas) indexed(index int, bg bool) {
	prefix := "38;5;"
	if bg {
		prefix = "48;5;"
	}
	c.sgr(prefix + strconv.Itoa(index))
}

func (c *canvas) sgr(params string) {
	c.out.WriteString("\x1b[")
	c.out.WriteString(params)
	c.out.WriteByte('m')
}

// ansi256 returns the 256-color palette index closest to an RGB color.
func ansi256(color chunkview.Color) int {
	hex := "#" + color.String()[1:7]
	if idx, ok := termenvlib.ANSI256.Convert(termenvlib.RGBColor(hex)).(termenvlib.ANSI256Color); ok {
		return int(idx)
	}
	return 0
}

// setDefaultBg sets the theme background when filling lines is enabled.
func (c *canvas) setDefaultBg() {
	if c.background && c.theme.Background != nil {
		c.setBg(*c.theme.Background)
	}
}

func (c *canvas) setBold() {
	c.out.WriteString("\x1b[1m")
}

func (c *canvas) setFontStyle(fs chunkview.FontStyle) {
	if fs.Has(chunkview.Bold) {
		c.setBold()
	}
	if fs.Has(chunkview.Underline) {
		c.out.WriteString("\x1b[4m")
	}
}

func (c *canvas) unsetFontStyle(fs chunkview.FontStyle) {
	if fs.Has(chunkview.Bold) {
		c.out.WriteString("\x1b[22m")
	}
	if fs.Has(chunkview.Underline) {
		c.out.WriteString("\x1b[24m")
	}
}

func (c *canvas) resetColor() {
	c.out.WriteString("\x1b[0m")
}

func (c *canvas) drawSpaces(n int) {
	for range n {
		c.out.WriteByte(' ')
	}
}

// fillSpaces pads from written up to maxWidth columns and resets colors.
func (c *canvas) fillSpaces(written, maxWidth int) {
	if written < maxWidth {
		c.drawSpaces(maxWidth - written)
	}
	c.resetColor()
}

// drawText writes text until the next character would exceed limit
// columns. It returns the columns written, and when it stops early, the
// unwritten rest with ok set to false.
//
// A tab that does not fit is replaced by padding up to limit and dropped
// from rest. When force is set and nothing has been written yet, the first
// character is written even if it is wider than limit, so every call on an
// empty row makes progress.
func (c *canvas) drawText(text string, limit int, force bool) (width int, rest string, ok bool) {
	for i, r := range text {
		if r == '\t' && c.tabWidth > 0 {
			if width+c.tabWidth > limit {
				c.drawSpaces(limit - width)
				return limit, text[i+1:], false
			}
			c.drawSpaces(c.tabWidth)
			width += c.tabWidth
			continue
		}

		w := widths.RuneWidth(r)
		if width+w > limit && !(force && width == 0 && i == 0) {
			return width, text[i:], false
		}
		c.out.WriteRune(r)
		width += w
	}
	return width, "", true
}

// drawTexts writes one visual row of a highlighted line, at most maxWidth
// columns wide. Matched rows and rows in background mode are padded to
// maxWidth. If the line does not fit, it returns the unwritten rest of the
// part at index idx with wrapped set, leaving all styles reset.
func (c *canvas) drawTexts(parts []chunkview.Token, matched bool, maxWidth int) (rest string, idx int, wrapped bool) {
	if matched && c.matchColor != nil {
		c.setBg(*c.matchColor)
	}

	width := 0
	for i, part := range parts {
		if !matched && c.background {
			c.setBg(part.Style.Background)
		}
		c.setFg(part.Style.Foreground)
		c.setFontStyle(part.Style.FontStyle)
		w, rest, ok := c.drawText(part.Text, maxWidth-width, width == 0)
		if !ok {
			// A wide character may leave a column free at the break.
			if matched || c.background {
				c.fillSpaces(width+w, maxWidth)
			} else {
				c.resetColor()
			}
			return rest, i, true
		}
		width += w
		c.unsetFontStyle(part.Style.FontStyle)
	}

	if width == 0 && !matched {
		c.setDefaultBg()
	}
	if matched || c.background {
		c.fillSpaces(width, maxWidth)
	} else {
		c.resetColor()
	}
	return "", 0, false
}
