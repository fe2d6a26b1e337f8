package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"geowatch/internal/config"
	"geowatch/internal/data"
	"geowatch/internal/debug"
	"geowatch/internal/geo"
	"geowatch/internal/track"
)

// ViewMode represents the current view mode
type ViewMode int

const (
	ViewModeMap ViewMode = iota
	ViewModeDetail
)

// Content bundles the static datasets the dashboard displays
type Content struct {
	Countries  []*geo.Feature
	Coastlines []*geo.Polyline
	Lanes      []*geo.Polyline // Shipping lanes and frontlines
	Markers    []*geo.Marker   // Cities, chokepoints, installations, incidents
	Incidents  []*data.Incident
}

// App is the main application controller
type App struct {
	screen      tcell.Screen
	tracker     *track.Tracker
	sources     []track.PositionSource
	content     Content
	mapView     *MapView
	listView    *ListView
	detailView  *DetailView
	currentView ViewMode
	selectedID  string // Selected asset, cycled with Tab
	quit        chan struct{}
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewApp creates a new application
func NewApp(cfg *config.Config, tracker *track.Tracker, sources []track.PositionSource, content Content) (*App, error) {
	// Initialize tcell screen
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault)
	screen.EnableMouse()
	screen.Clear()

	width, height := screen.Size()

	mapView := NewMapView(width, height, cfg.Map.MinZoom, cfg.Map.MaxZoom, cfg.Map.HoverGain, cfg.Map.LabelPad)
	mapView.SetOverlays(content.Countries, content.Coastlines, content.Lanes, content.Markers)

	// Intel list in lower-left corner
	listWidth := 34
	listHeight := 12
	listView := NewListView(0, height-listHeight, listWidth, listHeight)
	listView.Update(content.Incidents)

	// Incident detail in lower-left corner
	detailWidth := 54
	detailHeight := 15
	detailView := NewDetailView(0, height-detailHeight, detailWidth, detailHeight)

	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		screen:      screen,
		tracker:     tracker,
		sources:     sources,
		content:     content,
		mapView:     mapView,
		listView:    listView,
		detailView:  detailView,
		currentView: ViewModeMap,
		quit:        make(chan struct{}),
		ctx:         ctx,
		cancel:      cancel,
	}

	return app, nil
}

// Run starts the application main loop
func (a *App) Run() error {
	defer a.cleanup()

	a.tracker.StartPruning(a.ctx, 10*time.Second)

	ticker := time.NewTicker(100 * time.Millisecond) // 10 FPS
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case <-ticker.C:
			a.update()
			a.render()

		default:
			if a.screen.HasPendingEvent() {
				ev := a.screen.PollEvent()
				if !a.handleEvent(ev) {
					return nil // Quit requested
				}
			}
		}
	}
}

// update polls position sources and refreshes derived view state
func (a *App) update() {
	now := time.Now()
	for _, src := range a.sources {
		for _, asset := range src.Poll(now) {
			a.tracker.Update(asset)
		}
	}

	if a.currentView == ViewModeDetail {
		a.syncDetail()
	}
}

// syncDetail pushes the selected incident and its resolved region into the
// detail panel
func (a *App) syncDetail() {
	selected := a.listView.GetSelected()

	region := ""
	if selected != nil {
		if f := geo.FindContainingFeature(selected.Position, a.content.Countries); f != nil {
			region = f.Name
		}
	}

	a.detailView.SetIncident(selected, region)
}

// render renders the current view to the screen
func (a *App) render() {
	a.screen.Clear()

	assets := a.tracker.GetWithPosition()

	// Always draw map
	a.mapView.Draw(a.screen, assets, a.selectedID)

	// Draw list or detail view depending on mode
	switch a.currentView {
	case ViewModeMap:
		a.listView.Draw(a.screen)
	case ViewModeDetail:
		a.detailView.Draw(a.screen)
	}

	a.screen.Show()
}

// handleEvent processes keyboard, mouse, and resize events
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			if a.currentView == ViewModeDetail {
				a.currentView = ViewModeMap
			} else {
				close(a.quit)
				return false
			}

		case tcell.KeyEnter:
			if a.currentView == ViewModeMap {
				a.currentView = ViewModeDetail
				a.syncDetail()
			}

		case tcell.KeyUp:
			a.listView.SelectPrev()
			if a.currentView == ViewModeDetail {
				a.syncDetail()
			}

		case tcell.KeyDown:
			a.listView.SelectNext()
			if a.currentView == ViewModeDetail {
				a.syncDetail()
			}

		case tcell.KeyTab:
			a.cycleAsset()

		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				close(a.quit)
				return false

			case 'r', 'R':
				a.render()

			case '+', '=':
				a.mapView.ZoomIn()

			case '-', '_':
				a.mapView.ZoomOut()

			case '0':
				a.mapView.ResetView()

			case 's', 'S':
				a.takeSnapshot()
			}
		}

	case *tcell.EventMouse:
		if a.mapView.HandleMouse(ev) {
			a.render()
		}

	case *tcell.EventResize:
		a.handleResize()
	}

	return true
}

// cycleAsset advances the asset selection, wrapping back to none
func (a *App) cycleAsset() {
	assets := a.tracker.GetWithPosition()
	if len(assets) == 0 {
		a.selectedID = ""
		return
	}

	next := 0
	for i, asset := range assets {
		if asset.ID == a.selectedID {
			next = i + 1
			break
		}
	}

	if next >= len(assets) {
		a.selectedID = ""
		return
	}
	a.selectedID = assets[next].ID
}

// takeSnapshot exports the current view to a timestamped PNG in the
// working directory
func (a *App) takeSnapshot() {
	path := fmt.Sprintf("geowatch_%s.png", time.Now().Format("20060102_150405"))

	err := a.mapView.Snapshot(path, a.tracker.GetWithPosition(), a.selectedID)
	if err != nil {
		debug.Log("snapshot failed: %v", err)
		return
	}
	debug.Log("snapshot written to %s", path)
}

// handleResize handles terminal resize events
func (a *App) handleResize() {
	a.screen.Sync()
	width, height := a.screen.Size()

	a.mapView.UpdateDimensions(width, height)

	listWidth := 34
	listHeight := 12
	a.listView.UpdateDimensions(0, height-listHeight, listWidth, listHeight)

	detailWidth := 54
	detailHeight := 15
	a.detailView.UpdateDimensions(0, height-detailHeight, detailWidth, detailHeight)
}

// cleanup performs cleanup before exit
func (a *App) cleanup() {
	if a.cancel != nil {
		a.cancel()
	}

	if a.screen != nil {
		a.screen.Fini()
	}
}
