package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"geowatch/internal/data"
)

var (
	styleListBorder   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleListTitle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleListItem     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleListSelected = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleSevHigh      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSevModerate  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// ListView displays a scrollable list of intel incidents
type ListView struct {
	incidents     []*data.Incident
	selectedIndex int
	scrollOffset  int
	maxVisible    int
	x, y          int
	width, height int
}

// NewListView creates a new intel list view
func NewListView(x, y, width, height int) *ListView {
	maxVisible := height - 2 // Account for border
	if maxVisible < 1 {
		maxVisible = 1
	}

	return &ListView{
		incidents:  make([]*data.Incident, 0),
		maxVisible: maxVisible,
		x:          x,
		y:          y,
		width:      width,
		height:     height,
	}
}

// Update refreshes the incident list
func (l *ListView) Update(incidents []*data.Incident) {
	l.incidents = incidents

	if l.selectedIndex >= len(l.incidents) {
		l.selectedIndex = len(l.incidents) - 1
	}
	if l.selectedIndex < 0 {
		l.selectedIndex = 0
	}

	l.adjustScroll()
}

// SelectNext moves selection down
func (l *ListView) SelectNext() {
	if l.selectedIndex < len(l.incidents)-1 {
		l.selectedIndex++
		l.adjustScroll()
	}
}

// SelectPrev moves selection up
func (l *ListView) SelectPrev() {
	if l.selectedIndex > 0 {
		l.selectedIndex--
		l.adjustScroll()
	}
}

// adjustScroll keeps the selected item visible
func (l *ListView) adjustScroll() {
	if l.selectedIndex >= l.scrollOffset+l.maxVisible {
		l.scrollOffset = l.selectedIndex - l.maxVisible + 1
	}

	if l.selectedIndex < l.scrollOffset {
		l.scrollOffset = l.selectedIndex
	}

	if l.scrollOffset < 0 {
		l.scrollOffset = 0
	}
}

// GetSelected returns the currently selected incident
func (l *ListView) GetSelected() *data.Incident {
	if l.selectedIndex >= 0 && l.selectedIndex < len(l.incidents) {
		return l.incidents[l.selectedIndex]
	}
	return nil
}

// UpdateDimensions moves and resizes the view
func (l *ListView) UpdateDimensions(x, y, width, height int) {
	l.x = x
	l.y = y
	l.width = width
	l.height = height
	l.maxVisible = height - 2
	if l.maxVisible < 1 {
		l.maxVisible = 1
	}
	l.adjustScroll()
}

// Draw renders the intel list panel
func (l *ListView) Draw(screen tcell.Screen) {
	for row := l.y; row < l.y+l.height; row++ {
		for col := l.x; col < l.x+l.width; col++ {
			screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
		}
	}

	drawBorder(screen, l.x, l.y, l.width, l.height, styleListBorder)

	title := fmt.Sprintf(" Intel (%d) ", len(l.incidents))
	drawString(screen, l.x+2, l.y, title, styleListTitle)

	for i := 0; i < l.maxVisible; i++ {
		idx := l.scrollOffset + i
		if idx >= len(l.incidents) {
			break
		}

		inc := l.incidents[idx]
		style := styleListItem
		if idx == l.selectedIndex {
			style = styleListSelected
		}

		sevStyle := styleListItem
		switch {
		case inc.Severity >= data.SeverityHigh:
			sevStyle = styleSevHigh
		case inc.Severity == data.SeverityModerate:
			sevStyle = styleSevModerate
		}
		if idx == l.selectedIndex {
			sevStyle = styleListSelected
		}

		drawString(screen, l.x+1, l.y+1+i, "▪", sevStyle)

		line := truncate(inc.Title, l.width-4)
		drawString(screen, l.x+3, l.y+1+i, line, style)
	}
}

// drawBorder draws a box outline directly on the screen
func drawBorder(screen tcell.Screen, x, y, width, height int, style tcell.Style) {
	if width < 2 || height < 2 {
		return
	}

	screen.SetContent(x, y, '┌', nil, style)
	screen.SetContent(x+width-1, y, '┐', nil, style)
	screen.SetContent(x, y+height-1, '└', nil, style)
	screen.SetContent(x+width-1, y+height-1, '┘', nil, style)

	for i := 1; i < width-1; i++ {
		screen.SetContent(x+i, y, '─', nil, style)
		screen.SetContent(x+i, y+height-1, '─', nil, style)
	}
	for i := 1; i < height-1; i++ {
		screen.SetContent(x, y+i, '│', nil, style)
		screen.SetContent(x+width-1, y+i, '│', nil, style)
	}
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	i := 0
	for _, ch := range s {
		screen.SetContent(x+i, y, ch, nil, style)
		i++
	}
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
