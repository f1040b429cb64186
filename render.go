package ringfinder

import (
	"fmt"
	"math"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const indent = 2

// canvas accumulates rendered lines and the hit regions placed on them.
type canvas struct {
	lines   []string
	regions []region
	cellW   float64
	cellH   float64
}

func (c *canvas) line(s string) {
	c.lines = append(c.lines, strings.Repeat(" ", indent)+s)
}

func (c *canvas) blank() {
	c.lines = append(c.lines, "")
}

// bind places w at column col (relative to the indent) on the next line,
// spanning cols x rows cells, and gives it its bounds.
func (c *canvas) bind(id string, w Widget, col, cols, rows int) {
	r := cellRect(indent+col, len(c.lines), cols, rows, c.cellW, c.cellH)
	w.SetBounds(r)
	c.regions = append(c.regions, region{id: id, rect: r, w: w})
}

// fit truncates or pads s to exactly w cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, w, "…"), w)
}

// center pads s on both sides to w cells.
func center(s string, w int) string {
	s = runewidth.Truncate(s, w, "…")
	pad := w - runewidth.StringWidth(s)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// centerStyled is center for strings that already carry styling.
func centerStyled(s string, w int) string {
	pad := max(0, w-lipgloss.Width(s))
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// cutCells returns the cells [from, to) of s. Wide runes split by either
// edge are replaced with spaces.
func cutCells(s string, from, to int) string {
	var b strings.Builder
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		switch {
		case col >= from && col+w <= to:
			b.WriteRune(r)
		case col < to && col+w > from:
			for i := max(col, from); i < min(col+w, to); i++ {
				b.WriteByte(' ')
			}
		}
		col += w
	}
	for ; col < to; col++ {
		if col >= from {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// View implements tea.Model. Rendering also records the hit regions that
// the next pointer events are tested against.
func (m *Model) View() string {
	c := &canvas{cellW: m.cfg.CellWidth, cellH: m.cfg.CellHeight}
	if m.host.View() == ViewShowing {
		m.viewResults(c)
	} else {
		m.viewConfigurator(c)
	}
	if m.showTrace {
		m.viewTrace(c)
	}
	m.regions = c.regions
	return strings.Join(c.lines, "\n")
}

func (m *Model) header(c *canvas) {
	c.line(m.theme.Header.Render(center("≡          R I T A N I          ⌂", m.cfg.ViewportColumns)))
}

func (m *Model) heading(c *canvas, f focusable, title string) {
	title = strings.ToUpper(title)
	if m.focus.Current() == f {
		c.line(m.theme.Focus.Render("› " + title))
		return
	}
	c.line(m.theme.Title.Render("  " + title))
}

func (m *Model) footer(c *canvas) {
	c.blank()
	c.line(m.help.ShortHelpView(m.keys.ShortHelp()))
}

func (m *Model) viewConfigurator(c *canvas) {
	vw := m.cfg.ViewportColumns
	cat := m.catalogs

	m.header(c)
	c.blank()
	c.line(m.theme.Title.Render("LET US FIND A RING") + " " + m.theme.Muted.Render("she'll love"))
	c.blank()

	m.heading(c, m.metal, cat.Metals.Title)
	c.bind("metal", m.metal, 0, vw, 1)
	c.line(m.renderButtons(m.metal, func(o Option, selected bool) lipgloss.Style {
		st := m.theme.swatch(o.Color)
		if selected {
			st = st.Bold(true).Underline(true)
		}
		return st
	}, func(o Option) string {
		if m.metal.Selected() == o.ID {
			return "✓ " + o.Name
		}
		return o.Name
	}))
	c.line(m.renderButtons(m.metal, func(Option, bool) lipgloss.Style { return m.theme.Muted },
		func(o Option) string { return o.Popularity }))
	c.blank()

	m.heading(c, m.ringStyle, cat.RingStyles.Title)
	c.bind("ring-style", m.ringStyle, 0, vw, 3)
	for _, l := range m.renderPicker(m.ringStyle, vw) {
		c.line(l)
	}
	c.blank()

	m.heading(c, m.diamondShape, cat.DiamondShapes.Title)
	c.bind("diamond-shape", m.diamondShape, 0, vw, 3)
	for _, l := range m.renderPicker(m.diamondShape, vw) {
		c.line(l)
	}
	c.blank()

	m.heading(c, m.slider, cat.Preference.Title)
	sw := m.cfg.SliderColumns
	low, high := cat.Preference.LowLabel, cat.Preference.HighLabel
	gap := max(1, sw-runewidth.StringWidth(low)-runewidth.StringWidth(high))
	c.line(m.theme.Base.Render(fit(low+strings.Repeat(" ", gap)+high, sw)))
	c.bind("slider", m.slider, 0, sw, 1)
	c.line(m.renderSlider(m.slider, sw))
	c.line(m.theme.Muted.Render(center(cat.Preference.Caption, sw)))
	c.blank()

	m.heading(c, m.budget, cat.Budgets.Title)
	c.bind("budget", m.budget, 0, vw, 1)
	c.line(m.renderButtons(m.budget, func(_ Option, selected bool) lipgloss.Style {
		if selected {
			return m.theme.Selected
		}
		return m.theme.Muted
	}, func(o Option) string { return o.Name }))
	c.blank()

	label := "VIEW RINGS"
	if m.host.Transitioning() {
		label = "LOADING..."
	}
	c.bind("view-rings", m.viewRings, 0, vw, 1)
	c.line(m.renderAction(m.viewRings, label, vw))

	m.footer(c)
}

// renderAction draws a single-button row as a bracketed call to action.
func (m *Model) renderAction(b *ButtonRow, label string, w int) string {
	st := m.theme.Button
	if b.Disabled() {
		st = m.theme.Disabled
	}
	if b.Focused() {
		st = st.Reverse(true)
	}
	return st.Render("[" + center(label, w-2) + "]")
}

// renderButtons draws one line of a button row, each label centred in the
// cells its hit area covers.
func (m *Model) renderButtons(b *ButtonRow, style func(Option, bool) lipgloss.Style, label func(Option) string) string {
	var out strings.Builder
	bounds := b.Bounds()
	col := 0
	for _, o := range b.Buttons() {
		r, _ := b.ButtonRect(o.ID)
		end := int(math.Round((r.Right() - bounds.X) / m.cfg.CellWidth))
		w := end - col
		if w <= 0 {
			continue
		}
		cell := center(label(o), max(0, w-1))
		out.WriteString(style(o, o.ID == b.Selected()).Render(cell))
		out.WriteString(" ")
		col = end
	}
	return out.String()
}

// renderPicker draws the three card rows visible through the viewport.
func (m *Model) renderPicker(p *Picker, vw int) []string {
	cc := m.cfg.CardColumns
	from := int(math.Round(p.Offset() / m.cfg.CellWidth))
	to := from + vw

	rows := make([]strings.Builder, 3)
	for i, o := range p.Options() {
		start, end := i*cc, (i+1)*cc
		if end <= from || start >= to {
			continue
		}
		a, z := max(start, from)-start, min(end, to)-start
		image := strings.TrimSuffix(path.Base(o.Image), path.Ext(o.Image))
		texts := [3]string{
			fit("▣ "+image, cc-1) + " ",
			fit(o.Name, cc-1) + " ",
			fit(o.Popularity, cc-1) + " ",
		}
		styles := [3]lipgloss.Style{m.theme.Muted, m.theme.Base, m.theme.Muted}
		if o.ID == p.Selected() {
			styles[1] = m.theme.Selected
		}
		for r := range rows {
			rows[r].WriteString(styles[r].Render(cutCells(texts[r], a, z)))
		}
	}
	out := make([]string, len(rows))
	for r := range rows {
		out[r] = rows[r].String()
	}
	return out
}

// renderSlider draws the track with its five markers and the thumb.
func (m *Model) renderSlider(s *Slider, w int) string {
	markers := make(map[int]int, SliderLevels)
	for i, off := range MarkerOffsets(float64(w - 1)) {
		markers[int(math.Round(off))] = i
	}
	thumb := int(math.Round(s.Position() / 100 * float64(w-1)))

	var out strings.Builder
	for col := 0; col < w; col++ {
		if col == thumb {
			st := m.theme.Accent
			if s.Dragging() {
				st = m.theme.Focus
			}
			out.WriteString(st.Render("◆"))
			continue
		}
		if i, ok := markers[col]; ok {
			if s.MarkerActive(i) {
				out.WriteString(m.theme.Accent.Render("●"))
			} else {
				out.WriteString(m.theme.Muted.Render("○"))
			}
			continue
		}
		out.WriteString(m.theme.Muted.Render("─"))
	}
	return out.String()
}

func (m *Model) viewResults(c *canvas) {
	vw := m.cfg.ViewportColumns
	rows := m.cfg.CarouselRows
	ring := m.ring

	m.header(c)
	c.line(m.theme.Title.Render(center("RECOMMENDATIONS", vw)))
	c.blank()

	c.bind("carousel-prev", m.prevBtn, 0, 3, rows)
	c.bind("carousel", m.carousel, 3, vw-6, rows)
	c.bind("carousel-next", m.nextBtn, vw-3, 3, rows)
	page := m.renderPage(m.carousel, vw-6, rows)
	for r := 0; r < rows; r++ {
		left, right := "   ", "   "
		if r == rows/2 {
			left, right = " ‹ ", " › "
		}
		c.line(m.theme.Base.Render(left) + page[r] + m.theme.Base.Render(right))
	}

	n := m.carousel.Len()
	dotCol := max(0, (vw-3*n)/2)
	c.bind("dots", m.dots, dotCol, 3*n, 1)
	var dots strings.Builder
	for i := 0; i < n; i++ {
		if i == m.carousel.Index() {
			dots.WriteString(m.theme.Base.Render(" ● "))
		} else {
			dots.WriteString(m.theme.Muted.Render(" ○ "))
		}
	}
	c.line(strings.Repeat(" ", dotCol) + dots.String())
	c.blank()

	stars := strings.Repeat("★", ring.Rating) + strings.Repeat("☆", max(0, 5-ring.Rating))
	c.line(centerStyled(m.theme.Focus.Render(stars)+m.theme.Muted.Render(fmt.Sprintf(" (%d reviews)", ring.ReviewCount)), vw))
	c.line(center(ring.Name+" in", vw))
	c.line(center(fmt.Sprintf("%s (%s) with a %s", ring.Metal, ring.CaratWeight, ring.DiamondDetails), vw))
	c.line(centerStyled(m.theme.Muted.Render("your price: ")+m.theme.Title.Render(FormatPrice(ring.Price)), vw))
	c.blank()

	c.bind("choose", m.choose, 0, vw, 1)
	c.line(m.renderAction(m.choose, "CHOOSE THIS RING ▸", vw))
	if m.chosen {
		c.line(m.theme.Accent.Render(center("great choice", vw)))
	} else {
		c.blank()
	}

	label := "‹ UPDATE OPTIONS"
	if m.host.Transitioning() {
		label = "LOADING..."
	}
	c.bind("back", m.back, 0, vw, 1)
	st := m.theme.Muted
	if m.back.Focused() {
		st = m.theme.Focus
	}
	c.line(st.Render(center(label, vw)))
	c.blank()

	sel := m.host.Selection()
	cat := m.catalogs
	c.line(m.theme.Muted.Render(fit(fmt.Sprintf("your picks: %s · %s · %s · preference %d/%d · %s",
		cat.Metals.Name(sel.Metal), cat.RingStyles.Name(sel.RingStyle), cat.DiamondShapes.Name(sel.DiamondShape),
		sel.DiamondPreference, SliderLevels-1, cat.Budgets.Name(sel.Budget)), vw)))

	m.footer(c)
}

// renderPage draws the carousel's current page framed in a box. Pages
// change only in whole steps, so no partial page is ever drawn.
func (m *Model) renderPage(car *Carousel, w, h int) []string {
	st := m.theme.Base
	if car.Dragging() {
		st = m.theme.Focus
	}
	inner := w - 2
	body := make([]string, h-2)
	body[(len(body)-1)/2] = center(fmt.Sprintf("%s · view %d of %d", m.ring.Name, car.Index()+1, car.Len()), inner)
	if len(body) > 2 {
		// The track holds every page side by side; the visible window
		// starts TrackOffset percent of a page to the left.
		var track strings.Builder
		for _, img := range car.Images() {
			track.WriteString(center(img, inner))
		}
		from := int(math.Round(-car.TrackOffset() / 100 * float64(inner)))
		body[len(body)-1] = cutCells(track.String(), from, from+inner)
	}

	out := make([]string, 0, h)
	out = append(out, st.Render("╭"+strings.Repeat("─", inner)+"╮"))
	for _, b := range body {
		out = append(out, st.Render("│")+fit(b, inner)+st.Render("│"))
	}
	out = append(out, st.Render("╰"+strings.Repeat("─", inner)+"╯"))
	return out
}

func (m *Model) viewTrace(c *canvas) {
	vw := m.cfg.ViewportColumns
	c.blank()
	title := "trace"
	if n := m.trace.NewLines(); n > 0 {
		title = fmt.Sprintf("trace (%d new lines ↓)", n)
	}
	c.line(m.theme.Title.Render(title))
	for _, l := range m.trace.Tail(8) {
		c.line(m.theme.Muted.Render(fit(l, vw)))
	}
}
