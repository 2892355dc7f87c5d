// Package launcher is the application controller: it owns the window,
// the shortcut tabs, the selection state and the frame loop, and routes
// every input event through the shared navigation state machine.
package launcher

import (
	"image"
	"log/slog"
	"time"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/VisualLeap/GameLauncher/pkg/launcher/compose"
	"github.com/VisualLeap/GameLauncher/pkg/launcher/config"
	"github.com/VisualLeap/GameLauncher/pkg/launcher/constants"
	"github.com/VisualLeap/GameLauncher/pkg/launcher/grid"
	"github.com/VisualLeap/GameLauncher/pkg/launcher/i18n"
	"github.com/VisualLeap/GameLauncher/pkg/launcher/icon"
	"github.com/VisualLeap/GameLauncher/pkg/launcher/input"
	"github.com/VisualLeap/GameLauncher/internal"
	"github.com/VisualLeap/GameLauncher/pkg/launcher/nav"
	"github.com/VisualLeap/GameLauncher/pkg/launcher/scan"
)

// resizeSettle is how long the window size must hold still before the
// surface reallocates and the new geometry persists.
const resizeSettle = 250 * time.Millisecond

// Options configures a launcher instance.
type Options struct {
	Title        string
	SettingsPath string // TOML settings file
	ShortcutRoot string // folder scanned for shortcut files
	MessagesDir  string // translation files, may not exist
	FontPath     string // overrides the theme font when set
}

// Launcher ties the subsystems together. Everything runs on the main
// goroutine except the controller reader and the filesystem watcher,
// which only post flags and channel events back.
type Launcher struct {
	opts     Options
	settings config.Settings

	window  *internal.Window
	text    *internal.FontRasterizer
	comp    *compose.Compositor
	nav     *nav.Navigator
	dirs    input.Directional
	pad     *input.Gamepad
	watcher *scan.Watcher
	scanner *scan.Scanner
	msgs    *i18n.Messages

	tabs   []scan.Tab
	layout grid.Layout

	needsPaint  bool
	resizedAt   time.Time // zero when no resize is settling
	notice      string
	noticeUntil time.Time
	dragging    bool
	dragStart   image.Point // pointer position when the drag began, in window coordinates

	log *slog.Logger
}

// New loads settings and prepares a launcher. SDL is not touched until
// Run.
func New(opts Options) (*Launcher, error) {
	if opts.Title == "" {
		opts.Title = "GameLauncher"
	}

	settings, err := config.Load(opts.SettingsPath)
	if err != nil {
		internal.GetLogger().Warn("settings unreadable, using defaults", "error", err)
	}

	l := &Launcher{
		opts:     opts,
		settings: settings,
		nav:      nav.New(),
		dirs:     input.NewDirectional(),
		msgs:     i18n.Load(opts.MessagesDir),
		log:      internal.GetLogger(),
	}
	l.scanner = scan.NewScanner(opts.ShortcutRoot, icon.NewCache(), l.iconSize())
	return l, nil
}

func (l *Launcher) iconSize() int {
	return int(float64(constants.NominalIconSize) * l.settings.Display.IconScale)
}

// Run initializes SDL, scans the shortcuts and enters the frame loop.
// It blocks until the user exits and returns nil on a clean shutdown.
func (l *Launcher) Run() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return NewInfrastructureError("init_sdl", err)
	}
	defer sdl.Quit()
	if err := ttf.Init(); err != nil {
		return NewInfrastructureError("init_ttf", err)
	}
	defer ttf.Quit()
	img.Init(img.INIT_PNG | img.INIT_JPG)
	defer img.Quit()

	x, y := int32(-1), int32(-1)
	if l.settings.Window.X != config.PositionUnset {
		x, y = int32(l.settings.Window.X), int32(l.settings.Window.Y)
	}
	win, err := internal.NewWindow(l.opts.Title,
		x, y,
		int32(l.settings.Window.Width), int32(l.settings.Window.Height),
		internal.WindowOptions{Borderless: !constants.IsDevMode(), Resizable: true})
	if err != nil {
		return NewInfrastructureError("create_window", err)
	}
	l.window = win
	defer win.Close()

	fontPath := l.opts.FontPath
	if fontPath == "" {
		fontPath = internal.GetTheme().FontPath
	}
	l.text = internal.NewFontRasterizer(fontPath)
	defer l.text.Close()
	l.comp = compose.NewCompositor(l.text)

	l.pad = input.OpenGamepads()
	defer l.pad.Close()

	if w, err := scan.Watch(l.opts.ShortcutRoot); err == nil {
		l.watcher = w
		defer w.Close()
	} else {
		l.log.Warn("shortcut watching disabled", "error", err)
	}

	l.tabs = l.scanner.Scan()
	l.nav.SetActiveTab(clampTab(l.settings.Window.ActiveTab, len(l.tabs)), len(l.tabs))
	l.rebuildLayout()
	l.needsPaint = true

	err = l.loop()
	l.persist()
	if IsShutdown(err) {
		return nil
	}
	return err
}

func clampTab(idx, count int) int {
	if idx < 0 || idx >= count {
		return 0
	}
	return idx
}

// loop is the heartbeat: wait briefly for an event, drain whatever
// else queued, run per-frame work, paint when something changed.
func (l *Launcher) loop() error {
	for {
		event := sdl.WaitEventTimeout(int(constants.FrameInterval.Milliseconds()))
		for event != nil {
			if err := l.handleEvent(event); err != nil {
				return err
			}
			event = sdl.PollEvent()
		}

		l.drainGamepad()

		if dir, ok := l.dirs.Update(); ok {
			l.apply(l.nav.Step(dir, &l.layout, l.viewportHeight()))
		}

		if l.watcher != nil && l.watcher.Dirty() {
			l.refresh()
		}
		l.settleResize()

		if l.notice != "" && time.Now().After(l.noticeUntil) {
			l.notice = ""
			l.needsPaint = true
		}

		if l.needsPaint {
			if err := l.paint(); err != nil && !compose.IsSkippedFrame(err) {
				return err
			}
		}
	}
}

func (l *Launcher) handleEvent(event sdl.Event) error {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return ErrShutdown
	case *sdl.KeyboardEvent:
		return l.handleKey(e)
	case *sdl.MouseMotionEvent:
		l.handleMotion(e)
	case *sdl.MouseButtonEvent:
		return l.handleButton(e)
	case *sdl.MouseWheelEvent:
		delta := int(-e.Y) * l.settings.Scrolling.MouseScrollSpeed
		l.apply(l.nav.Scroll(delta, &l.layout, l.viewportHeight()))
	case *sdl.WindowEvent:
		l.handleWindowEvent(e)
	}
	return nil
}

func (l *Launcher) handleKey(e *sdl.KeyboardEvent) error {
	btn := mapKey(e.Keysym)
	pressed := e.State == sdl.PRESSED

	if l.dirs.SetHeld(btn, pressed) {
		if pressed && e.Repeat == 0 {
			// First press steps immediately; the repeat timer owns the rest.
			if dir, ok := l.dirs.HeldDirection(); ok {
				l.apply(l.nav.Step(dir, &l.layout, l.viewportHeight()))
			}
		}
		return nil
	}
	if !pressed || e.Repeat != 0 {
		return nil
	}

	switch btn {
	case constants.VirtualButtonAccept:
		l.launchSelected()
	case constants.VirtualButtonBack:
		return ErrShutdown
	case constants.VirtualButtonTabPrev:
		l.switchTab(-1)
	case constants.VirtualButtonTabNext:
		l.switchTab(1)
	}
	return nil
}

func mapKey(k sdl.Keysym) constants.VirtualButton {
	switch k.Sym {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_RETURN, sdl.K_KP_ENTER, sdl.K_SPACE:
		return constants.VirtualButtonAccept
	case sdl.K_ESCAPE:
		return constants.VirtualButtonBack
	case sdl.K_TAB:
		if k.Mod&sdl.KMOD_SHIFT != 0 {
			return constants.VirtualButtonTabPrev
		}
		return constants.VirtualButtonTabNext
	}
	return constants.VirtualButtonUnassigned
}

func (l *Launcher) handleMotion(e *sdl.MouseMotionEvent) {
	if l.dragging {
		wx, wy := l.window.Window.GetPosition()
		l.window.Window.SetPosition(
			wx+e.X-int32(l.dragStart.X),
			wy+e.Y-int32(l.dragStart.Y))
		return
	}
	l.apply(l.nav.PointerMoved(image.Point{X: int(e.X), Y: int(e.Y)}, &l.layout))
}

func (l *Launcher) handleButton(e *sdl.MouseButtonEvent) error {
	if e.Button != sdl.BUTTON_LEFT {
		return nil
	}
	pt := image.Point{X: int(e.X), Y: int(e.Y)}

	if e.State == sdl.RELEASED {
		if l.dragging {
			l.dragging = false
			l.persist()
		}
		return nil
	}

	if pt.Y < l.settings.Display.TabHeight {
		if idx := l.tabAt(pt.X); idx >= 0 {
			l.apply(l.nav.SetActiveTab(idx, len(l.tabs)))
			l.afterTabChange()
		}
		return nil
	}

	hit := l.layout.HitTest(pt, l.nav.ScrollOffset())
	if hit < 0 {
		// Grabbing empty space moves the borderless window.
		l.dragging = true
		l.dragStart = pt
		return nil
	}

	l.apply(l.nav.SetSelection(hit, nav.SourcePointer, &l.layout))
	if e.Clicks >= 2 {
		l.launchSelected()
	}
	return nil
}

func (l *Launcher) tabAt(x int) int {
	if len(l.tabs) == 0 {
		return -1
	}
	w := int(l.window.GetWidth())
	tabWidth := w / len(l.tabs)
	if tabWidth == 0 {
		return -1
	}
	idx := x / tabWidth
	if idx >= len(l.tabs) {
		idx = len(l.tabs) - 1
	}
	return idx
}

func (l *Launcher) handleWindowEvent(e *sdl.WindowEvent) {
	switch e.Event {
	case sdl.WINDOWEVENT_SIZE_CHANGED:
		l.comp.SetResizing(true)
		l.resizedAt = time.Now()
		l.needsPaint = true
	case sdl.WINDOWEVENT_LEAVE:
		l.apply(l.nav.PointerLeft(&l.layout))
	case sdl.WINDOWEVENT_FOCUS_LOST:
		l.dirs.Reset()
		l.dragging = false
	case sdl.WINDOWEVENT_MOVED:
		l.settings.Window.X = int(e.Data1)
		l.settings.Window.Y = int(e.Data2)
	case sdl.WINDOWEVENT_EXPOSED:
		l.needsPaint = true
	}
}

// settleResize finishes a resize once the size has held still: the
// surface reallocates at the final size, the grid reflows, and the new
// geometry persists.
func (l *Launcher) settleResize() {
	if l.resizedAt.IsZero() || time.Since(l.resizedAt) < resizeSettle {
		return
	}
	l.resizedAt = time.Time{}
	l.comp.SetResizing(false)

	l.settings.Window.Width = int(l.window.GetWidth())
	l.settings.Window.Height = int(l.window.GetHeight())
	l.rebuildLayout()
	l.apply(nav.Update{Whole: true})
	l.persist()
}

func (l *Launcher) drainGamepad() {
	for {
		select {
		case e := <-l.pad.Events():
			if e.ScrollDelta != 0 {
				delta := e.ScrollDelta * l.settings.Scrolling.JoystickScrollSpeed
				l.apply(l.nav.Scroll(delta, &l.layout, l.viewportHeight()))
				continue
			}
			if l.dirs.SetHeld(e.Button, e.Pressed) {
				if e.Pressed {
					if dir, ok := l.dirs.HeldDirection(); ok {
						l.apply(l.nav.Step(dir, &l.layout, l.viewportHeight()))
					}
				}
				continue
			}
			if !e.Pressed {
				continue
			}
			switch e.Button {
			case constants.VirtualButtonAccept:
				l.launchSelected()
			case constants.VirtualButtonTabPrev:
				l.switchTab(-1)
			case constants.VirtualButtonTabNext:
				l.switchTab(1)
			}
		default:
			return
		}
	}
}

func (l *Launcher) switchTab(delta int) {
	l.apply(l.nav.SwitchTab(delta, len(l.tabs)))
	l.afterTabChange()
}

func (l *Launcher) afterTabChange() {
	l.dirs.Reset()
	l.rebuildLayout()
	l.settings.Window.ActiveTab = l.nav.ActiveTab()
	l.persist()
}

func (l *Launcher) launchSelected() {
	idx, ok := l.nav.Confirm()
	if !ok {
		return
	}
	tab := l.currentTab()
	if tab == nil || idx >= len(tab.Shortcuts) {
		return
	}
	sc := tab.Shortcuts[idx]
	if err := scan.Launch(sc); err != nil {
		l.log.Error("launch failed", "name", sc.Name, "error", err)
		l.showNotice(l.msgs.LaunchFailed(sc.Name))
		return
	}
	// The launcher steps aside for the thing it launched. Selection and
	// scroll stay put for when the window is restored.
	l.window.Window.Minimize()
}

// showNotice displays a transient status line for a few seconds.
func (l *Launcher) showNotice(text string) {
	l.notice = text
	l.noticeUntil = time.Now().Add(4 * time.Second)
	l.needsPaint = true
}

func (l *Launcher) currentTab() *scan.Tab {
	idx := l.nav.ActiveTab()
	if idx < 0 || idx >= len(l.tabs) {
		return nil
	}
	return &l.tabs[idx]
}

// refresh rescans the shortcut folder after the watcher fired, keeping
// the user's place: the active tab survives by name and the selection
// is clamped to the new item count.
func (l *Launcher) refresh() {
	previousName := ""
	if tab := l.currentTab(); tab != nil {
		previousName = tab.Name
	}
	state := l.nav.State()

	l.scanner.SetIconSize(l.iconSize())
	l.tabs = l.scanner.Scan()

	state.ActiveTab = 0
	for i := range l.tabs {
		if l.tabs[i].Name == previousName {
			state.ActiveTab = i
			break
		}
	}

	l.rebuildLayout()
	l.apply(l.nav.Restore(state, &l.layout, l.viewportHeight()))
	l.log.Info("shortcuts reloaded", "tabs", len(l.tabs))
}

func (l *Launcher) rebuildLayout() {
	count := 0
	if tab := l.currentTab(); tab != nil {
		count = len(tab.Shortcuts)
	}

	container := image.Rect(
		constants.GridMargin,
		l.settings.Display.TabHeight,
		int(l.window.GetWidth())-constants.GridMargin,
		int(l.window.GetHeight()))

	l.layout = grid.Compute(container, count, grid.Config{
		IconSize:        l.iconSize(),
		HSpacing:        l.settings.Display.IconSpacingHorizontal,
		VSpacing:        l.settings.Display.IconSpacingVertical,
		LabelHeight:     constants.LabelHeight,
		VerticalPadding: l.settings.Display.IconVerticalPadding,
	})
	l.needsPaint = true
}

func (l *Launcher) viewportHeight() int {
	return l.layout.Container.Dy()
}

// apply folds a navigation update into the frame state. Every invalid
// region forces a repaint; the compositor repaints the whole frame and
// the window presents it in one upload.
func (l *Launcher) apply(u nav.Update) {
	if u.Whole || len(u.Invalid) > 0 {
		l.needsPaint = true
	}
}

func (l *Launcher) paint() error {
	l.needsPaint = false

	frame := compose.Frame{
		ActiveTab:    l.nav.ActiveTab(),
		Layout:       &l.layout,
		ScrollOffset: l.nav.ScrollOffset(),
		TabHeight:    l.settings.Display.TabHeight,
		TabFontSize:  l.settings.Display.TabFontSize,
		LabelSize:    l.settings.Display.IconLabelFontSize,
		EmptyMessage: l.msgs.EmptyGrid(),
		Notice:       l.notice,
	}

	theme := internal.GetTheme()
	for i := range l.tabs {
		frame.Tabs = append(frame.Tabs, compose.TabStyle{
			Name:  l.tabs[i].Name,
			Color: l.settings.TabColor(l.tabs[i].Name, theme.TabInactiveColor),
		})
	}

	if tab := l.currentTab(); tab != nil {
		selected := l.nav.Selected()
		for i := range tab.Shortcuts {
			frame.Items = append(frame.Items, compose.Item{
				Bitmap:   tab.Icons[i],
				Label:    tab.Shortcuts[i].Name,
				Selected: i == selected,
			})
		}
	}

	w, h := int(l.window.GetWidth()), int(l.window.GetHeight())
	if err := l.comp.Compose(w, h, frame); err != nil {
		return err
	}
	return l.window.Present(l.comp.Surface().RGBA())
}

func (l *Launcher) persist() {
	if l.opts.SettingsPath == "" {
		return
	}
	if err := l.settings.Save(l.opts.SettingsPath); err != nil {
		l.log.Warn("settings not saved", "error", err)
	}
}
