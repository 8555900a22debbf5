package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"lexdesk/internal/dragdrop"
	"lexdesk/internal/format"
	"lexdesk/internal/model"
)

func (m appModel) View() string {
	if !m.seenWindowSize {
		return "caricamento…"
	}
	deskH := m.height - 1
	if deskH < 1 {
		deskH = 1
	}

	screen := make([]string, deskH)
	blank := strings.Repeat(" ", m.width)
	for i := range screen {
		screen[i] = blank
	}

	for _, w := range visibleWindows(m.st.Windows) {
		r := windowCellRect(w)
		overlayAt(screen, m.renderWindow(w, r), r.x, r.y, m.width)
	}

	if m.drag.mode == dragItem && m.dd.State() == dragdrop.Dragging {
		overlayAt(screen, m.renderDragGhost(), m.drag.cellX+1, m.drag.cellY+1, m.width)
	}

	switch {
	case m.inputMode != inputNone:
		m.overlayCentered(screen, m.renderInputModal())
	case m.showDetail:
		m.overlayCentered(screen, m.renderDetail())
	}

	return strings.Join(screen, "\n") + "\n" + m.renderStatusBar()
}

func (m appModel) renderWindow(w *model.Window, r cellRect) string {
	innerW := r.w - 2
	innerH := r.h - 2
	focused := w.ID == m.focusedID

	borderStyle := lipgloss.NewStyle().Foreground(colorPanelBorder)
	if focused {
		borderStyle = lipgloss.NewStyle().Foreground(colorPanelBorderFocused)
	}

	title := w.Label
	if w.Pinned {
		title = "∗ " + title
	}
	if w.LoadingArticleID != "" {
		title += " ⟳"
	}
	title = " " + title + " "
	if xansi.StringWidth(title) > innerW {
		title = normalizeLine(title, innerW)
	}
	fill := innerW - xansi.StringWidth(title) - 1
	if fill < 0 {
		fill = 0
	}
	titleStyle := styleMuted()
	if focused {
		titleStyle = lipgloss.NewStyle().Bold(true)
	}
	var b strings.Builder
	b.WriteString(borderStyle.Render("╭─"))
	b.WriteString(titleStyle.Render(title))
	b.WriteString(borderStyle.Render(strings.Repeat("─", fill) + "╮"))
	b.WriteString("\n")

	rows := fitRows(windowRows(w), innerH)
	side := borderStyle.Render("│")
	for i := 0; i < innerH; i++ {
		text := ""
		if i < len(rows) {
			text = rows[i].text
		}
		b.WriteString(side)
		b.WriteString(normalizeLine(" "+text, innerW))
		b.WriteString(side)
		b.WriteString("\n")
	}
	b.WriteString(borderStyle.Render("╰" + strings.Repeat("─", innerW) + "╯"))
	return b.String()
}

func (m appModel) renderDragGhost() string {
	p := m.dd.Payload()
	label := p.ItemID
	if _, it, ok := m.st.FindItem(p.ItemID); ok {
		label = format.ItemLabel(it)
	}
	return lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true).
		Render("≡ " + label)
}

func (m appModel) renderStatusBar() string {
	left := " lexdesk"
	if w, ok := m.focusedWindow(); ok {
		left += "  │ " + w.Label
	}
	var docked []string
	for _, w := range m.st.Windows {
		if w.Minimized && !w.Hidden {
			docked = append(docked, "▁ "+w.Label)
		}
	}
	if len(docked) > 0 {
		left += "  │ " + strings.Join(docked, "  ")
	}
	if m.status != "" {
		left += "  │ " + m.status
	}

	snap := "aggancio on"
	if !m.snapEnabled() {
		snap = "aggancio off"
	}
	right := fmt.Sprintf("%s  n:finestra o:apri r:rinomina v:testo q:esci ", snap)

	gap := m.width - xansi.StringWidth(left) - xansi.StringWidth(right)
	line := left
	if gap > 0 {
		line += strings.Repeat(" ", gap) + right
	}
	return lipgloss.NewStyle().
		Background(colorStatusBg).
		Foreground(colorStatusFg).
		Render(normalizeLine(line, m.width))
}

func (m appModel) renderInputModal() string {
	var title string
	switch m.inputMode {
	case inputRenameWindow:
		title = "rinomina finestra"
	case inputNewCollection:
		title = "nuova raccolta"
	case inputOpenArticle:
		title = "apri articolo"
	}
	w := m.width / 2
	if w < 30 {
		w = 30
	}
	view := strings.ReplaceAll(m.input.View(), "\n", " ")
	body := normalizeLine(" "+view, w) + "\x1b[0m"
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorModalBorder).
		Render(lipgloss.NewStyle().Bold(true).Render(normalizeLine(" "+title, w)) + "\n" + body)
}

func (m appModel) renderDetail() string {
	a, act, ok := m.openArticle()
	if !ok {
		return ""
	}
	w := m.width * 2 / 3
	if w < 40 {
		w = 40
	}
	h := m.height - 6
	if h < 5 {
		h = 5
	}

	var src strings.Builder
	fmt.Fprintf(&src, "# %s\n\n", format.ArticleLabel(a))
	if a.Heading != "" {
		fmt.Fprintf(&src, "**%s**\n\n", a.Heading)
	}
	src.WriteString(a.Text)

	body := src.String()
	if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(w-2)); err == nil {
		if out, err := r.Render(body); err == nil {
			body = out
		}
	}
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for i := range lines {
		lines[i] = normalizeLine(lines[i], w)
	}
	header := lipgloss.NewStyle().Bold(true).Render(normalizeLine(" "+format.ActLabel(act), w))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorModalBorder).
		Render(header + "\n" + strings.Join(lines, "\n"))
}

func (m appModel) overlayCentered(screen []string, panel string) {
	if panel == "" {
		return
	}
	lines := strings.Split(panel, "\n")
	pw := 0
	for _, ln := range lines {
		if w := xansi.StringWidth(ln); w > pw {
			pw = w
		}
	}
	x := (m.width - pw) / 2
	y := (len(screen) - len(lines)) / 2
	if y < 0 {
		y = 0
	}
	overlayAt(screen, panel, x, y, m.width)
}
