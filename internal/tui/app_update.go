package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lexdesk/internal/format"
	"lexdesk/internal/geometry"
	"lexdesk/internal/identity"
	"lexdesk/internal/model"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.seenWindowSize = true
		return m, nil

	case loadResultMsg:
		m.loader.Apply(msg.res)
		m.saver.Notify(m.st)
		if msg.res.Err != nil {
			m.status = "caricamento fallito"
		} else {
			m.status = "caricato " + format.ActLabel(msg.res.Act)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inputMode != inputNone {
		return m.handleInputKey(msg)
	}
	if m.showDetail {
		switch msg.String() {
		case "esc", "q", "v":
			m.showDetail = false
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m.quit()

	case "esc":
		if m.drag.mode == dragItem {
			m.dd.Cancel()
			m.drag = dragState{}
		}

	case "n":
		w := m.st.AddWindow("appunti", nil)
		m.focus(w.ID)

	case "tab":
		m.cycleFocus(false)
	case "shift+tab":
		m.cycleFocus(true)

	case "p":
		if w, ok := m.focusedWindow(); ok {
			m.st.TogglePin(w.ID)
			m.saver.Notify(m.st)
		}
	case "m":
		if w, ok := m.focusedWindow(); ok {
			m.st.ToggleMinimize(w.ID)
			m.saver.Notify(m.st)
		}
	case "h":
		if w, ok := m.focusedWindow(); ok {
			m.st.ToggleHidden(w.ID)
			m.cycleFocus(false)
			m.saver.Notify(m.st)
		}
	case "H":
		for _, w := range m.st.Windows {
			if w.Hidden {
				m.st.ToggleHidden(w.ID)
			}
		}
		m.saver.Notify(m.st)

	case "x":
		if w, ok := m.focusedWindow(); ok {
			m.st.RemoveWindow(w.ID)
			if top := topWindow(m.st); top != nil {
				m.focusedID = top.ID
			} else {
				m.focusedID = ""
			}
			m.saver.Notify(m.st)
		}

	case "r":
		if w, ok := m.focusedWindow(); ok {
			return m.openInput(inputRenameWindow, w.Label, "nuovo nome")
		}
	case "C":
		if _, ok := m.focusedWindow(); ok {
			return m.openInput(inputNewCollection, "", "nome raccolta")
		}
	case "o":
		return m.openInput(inputOpenArticle, "", "urn numero [allegato]")

	case "c":
		if w, ok := m.focusedWindow(); ok {
			for _, it := range w.Content {
				switch it.(type) {
				case *model.GroupBlock, *model.Collection:
					m.st.ToggleCollapse(w.ID, it.ItemID())
					m.saver.Notify(m.st)
					return m, nil
				}
			}
		}

	case "s":
		v := !m.snapEnabled()
		m.ui.SnapEnabled = &v
		if v {
			m.status = "aggancio magnetico attivo"
		} else {
			m.status = "aggancio magnetico disattivato"
		}

	case "v":
		if w, ok := m.focusedWindow(); ok {
			if a, ok := firstArticle(w); ok {
				m.ui.OpenArticle = identity.UniqueID(a)
				m.showDetail = true
			}
		}

	case "up", "down", "left", "right":
		m.nudgeFocused(msg.String())
	}
	return m, nil
}

func (m appModel) openInput(mode inputMode, value, placeholder string) (tea.Model, tea.Cmd) {
	m.inputMode = mode
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	return m, textinput.Blink
}

func (m appModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.inputMode = inputNone
		m.input.Blur()
		return m, nil
	case "enter":
		mode := m.inputMode
		value := strings.TrimSpace(m.input.Value())
		m.inputMode = inputNone
		m.input.Blur()
		return m.commitInput(mode, value)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) commitInput(mode inputMode, value string) (tea.Model, tea.Cmd) {
	if value == "" {
		return m, nil
	}
	switch mode {
	case inputRenameWindow:
		if w, ok := m.focusedWindow(); ok {
			m.st.RenameWindow(w.ID, value)
			m.saver.Notify(m.st)
		}
	case inputNewCollection:
		if w, ok := m.focusedWindow(); ok {
			m.st.CreateCollection(w.ID, value)
			m.saver.Notify(m.st)
		}
	case inputOpenArticle:
		return m.startLoad(value)
	}
	return m, nil
}

// startLoad parses "urn numero [allegato]" and begins a fetch into the
// focused window, creating one when nothing is focused. A load already in
// flight for the window drops the request.
func (m appModel) startLoad(value string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(value)
	if len(fields) < 2 {
		m.status = "uso: urn numero [allegato]"
		return m, nil
	}
	act, err := model.ParseURN(fields[0])
	if err != nil {
		m.status = "urn non valido"
		return m, nil
	}
	number := fields[1]
	annex := ""
	if len(fields) > 2 {
		annex = fields[2]
	}

	w, ok := m.focusedWindow()
	if !ok {
		w = m.st.AddWindow(format.ActLabel(act), nil)
		m.focus(w.ID)
	}
	work, ok := m.loader.Begin(w.ID, act, number, annex)
	if !ok {
		m.status = "caricamento già in corso"
		return m, nil
	}
	m.status = "carico " + format.ArticleLabel(model.Article{Number: number, Annex: annex}) + "…"
	return m, func() tea.Msg {
		return loadResultMsg{res: work(context.Background())}
	}
}

func (m *appModel) nudgeFocused(key string) {
	w, ok := m.focusedWindow()
	if !ok {
		return
	}
	r := rectOf(w)
	switch key {
	case "up":
		r.Y -= cellH
	case "down":
		r.Y += cellH
	case "left":
		r.X -= cellW
	case "right":
		r.X += cellW
	}
	r = geometry.ClampToViewport(r, m.viewport())
	m.st.SetWindowPosition(w.ID, model.Position{X: r.X, Y: r.Y})
	m.saver.Notify(m.st)
}

func (m *appModel) handleMouse(msg tea.MouseMsg) {
	if m.inputMode != inputNone || m.showDetail {
		return
	}
	px := float64(msg.X) * cellW
	py := float64(msg.Y) * cellH

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		h := m.hitTest(msg.X, msg.Y)
		switch h.kind {
		case hitTitle:
			m.focus(h.windowID)
			if w, ok := m.st.FindWindow(h.windowID); ok {
				m.drag = dragState{
					mode:        dragWindow,
					windowID:    h.windowID,
					startMouseX: px,
					startMouseY: py,
					startRect:   rectOf(w),
				}
				m.tracker.Reset()
				m.tracker.Record(px, py, time.Now())
			}
		case hitResize:
			m.focus(h.windowID)
			if w, ok := m.st.FindWindow(h.windowID); ok {
				m.drag = dragState{
					mode:        dragResize,
					windowID:    h.windowID,
					handle:      h.handle,
					startMouseX: px,
					startMouseY: py,
					startRect:   rectOf(w),
				}
			}
		case hitItem:
			m.focus(h.windowID)
			if p, ok := payloadForRow(h.windowID, h.row); ok {
				m.dd.Press(p, px, py)
				m.drag = dragState{mode: dragItem, cellX: msg.X, cellY: msg.Y}
			}
		case hitBody:
			m.focus(h.windowID)
		}

	case tea.MouseActionMotion:
		switch m.drag.mode {
		case dragWindow:
			raw := geometry.Rect{
				X:      m.drag.startRect.X + px - m.drag.startMouseX,
				Y:      m.drag.startRect.Y + py - m.drag.startMouseY,
				Width:  m.drag.startRect.Width,
				Height: m.drag.startRect.Height,
			}
			pos := model.Position{X: raw.X, Y: raw.Y}
			if m.snapEnabled() {
				pos.X, pos.Y = m.snapper.Snap(raw, m.otherRects(m.drag.windowID), m.viewport())
			}
			m.st.SetWindowPosition(m.drag.windowID, pos)
			m.tracker.Record(px, py, time.Now())
		case dragResize:
			r := geometry.Resize(m.drag.startRect, m.drag.handle, px-m.drag.startMouseX, py-m.drag.startMouseY)
			m.st.SetWindowBounds(m.drag.windowID, model.Position{X: r.X, Y: r.Y}, model.Size{Width: r.Width, Height: r.Height})
		case dragItem:
			m.dd.Move(px, py)
			m.drag.cellX, m.drag.cellY = msg.X, msg.Y
		}

	case tea.MouseActionRelease:
		switch m.drag.mode {
		case dragWindow:
			if w, ok := m.st.FindWindow(m.drag.windowID); ok {
				final := m.tracker.Release(rectOf(w), m.viewport())
				m.st.SetWindowPosition(w.ID, model.Position{X: final.X, Y: final.Y})
			}
			m.saver.Notify(m.st)
		case dragResize:
			m.saver.Notify(m.st)
		case dragItem:
			m.dd.Release(m.dropTarget(msg.X, msg.Y))
			m.saver.Notify(m.st)
		}
		m.drag = dragState{}
	}
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	m.saver.Notify(m.st)
	if err := m.saver.Flush(); err != nil {
		m.log.Warn().Err(err).Msg("final save failed")
	}
	m.ui.FocusedWindowID = m.focusedID
	m.ui.ShowDetail = m.showDetail
	if !m.showDetail {
		m.ui.OpenArticle = ""
	}
	if err := m.store.SaveUIState(m.ui); err != nil {
		m.log.Warn().Err(err).Msg("ui state save failed")
	}
	return m, tea.Quit
}
