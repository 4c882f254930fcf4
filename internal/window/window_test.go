package window

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/1broseidon/mono/internal/event"
	"github.com/1broseidon/mono/internal/input"
	"github.com/1broseidon/mono/internal/platform"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestWindow(t *testing.T, b *platform.FakeBackend, props Properties) *Window {
	t.Helper()
	w, err := New(b, props, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w
}

func TestNewDefaults(t *testing.T) {
	b := platform.NewFakeBackend()
	b.DefaultX, b.DefaultY = 40, 50
	w := newTestWindow(t, b, DefaultProperties())

	if w.Title() != "mono::window" {
		t.Fatalf("Title() = %q, want mono::window", w.Title())
	}
	if w.Width() != 738 || w.Height() != 480 {
		t.Fatalf("size = %dx%d, want 738x480", w.Width(), w.Height())
	}
	if w.BufferWidth() != 738 || w.BufferHeight() != 480 {
		t.Fatalf("buffer = %dx%d, want 738x480", w.BufferWidth(), w.BufferHeight())
	}
	if w.XPos() != 40 || w.YPos() != 50 {
		t.Fatalf("pos = (%d,%d), want backend placement (40,50)", w.XPos(), w.YPos())
	}
	if cfg := b.Window(w.Handle()).Config; cfg.Positioned {
		t.Fatalf("CreateWindow config = %+v, want unpositioned", cfg)
	}
	if b.InitCalls != 1 || b.CreateCalls != 1 {
		t.Fatalf("InitCalls=%d CreateCalls=%d, want 1 and 1", b.InitCalls, b.CreateCalls)
	}
}

func TestNewFramebufferScale(t *testing.T) {
	b := platform.NewFakeBackend()
	b.Scale = 2
	w := newTestWindow(t, b, Properties{Title: "hidpi", Width: 320, Height: 200, X: PositionUndefined, Y: PositionUndefined})

	if w.Width() != 320 || w.Height() != 200 {
		t.Fatalf("size = %dx%d, want 320x200", w.Width(), w.Height())
	}
	if w.BufferWidth() != 640 || w.BufferHeight() != 400 {
		t.Fatalf("buffer = %dx%d, want 640x400", w.BufferWidth(), w.BufferHeight())
	}
}

func TestNewPositions(t *testing.T) {
	tests := []struct {
		name           string
		x, y           int
		wantX, wantY   int
		wantPositioned bool
		wantPending    int
	}{
		{name: "explicit", x: 10, y: 20, wantX: 10, wantY: 20, wantPositioned: true},
		{name: "undefined", x: PositionUndefined, y: PositionUndefined, wantX: 7, wantY: 9},
		{name: "x only", x: 100, y: PositionUndefined, wantX: 100, wantY: 9, wantPending: 1},
		{name: "y only", x: PositionUndefined, y: 200, wantX: 7, wantY: 200, wantPending: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := platform.NewFakeBackend()
			b.DefaultX, b.DefaultY = 7, 9
			w := newTestWindow(t, b, Properties{Title: tt.name, Width: 100, Height: 100, X: tt.x, Y: tt.y})

			if w.XPos() != tt.wantX || w.YPos() != tt.wantY {
				t.Fatalf("pos = (%d,%d), want (%d,%d)", w.XPos(), w.YPos(), tt.wantX, tt.wantY)
			}
			if got := b.Window(w.Handle()).Config.Positioned; got != tt.wantPositioned {
				t.Fatalf("Positioned = %v, want %v", got, tt.wantPositioned)
			}
			if b.Pending() != tt.wantPending {
				t.Fatalf("Pending() = %d, want %d", b.Pending(), tt.wantPending)
			}

			w.Poll()
			native := b.Window(w.Handle())
			if native.X != tt.wantX || native.Y != tt.wantY {
				t.Fatalf("native pos = (%d,%d), want (%d,%d)", native.X, native.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestNewNonPositiveSizeUsesDefaults(t *testing.T) {
	b := platform.NewFakeBackend()
	w := newTestWindow(t, b, Properties{Title: "zero", X: PositionUndefined, Y: PositionUndefined})
	if w.Width() != DefaultWidth || w.Height() != DefaultHeight {
		t.Fatalf("size = %dx%d, want defaults", w.Width(), w.Height())
	}
}

func TestNewInitError(t *testing.T) {
	b := platform.NewFakeBackend()
	cause := errors.New("no display")
	b.InitErr = cause

	w, err := New(b, DefaultProperties(), WithLogger(quietLogger()))
	if w != nil {
		t.Fatalf("New() returned window on init failure")
	}
	if !errors.Is(err, ErrBackendInit) || !errors.Is(err, cause) {
		t.Fatalf("New() error = %v, want ErrBackendInit wrapping cause", err)
	}
	if b.CreateCalls != 0 {
		t.Fatalf("CreateCalls = %d, want 0", b.CreateCalls)
	}
}

func TestNewCreationError(t *testing.T) {
	b := platform.NewFakeBackend()
	cause := errors.New("bad visual")
	b.CreateErr = cause

	props := DefaultProperties()
	props.Title = "broken"
	_, err := New(b, props, WithLogger(quietLogger()))
	if !errors.Is(err, ErrCreation) || !errors.Is(err, cause) {
		t.Fatalf("New() error = %v, want ErrCreation wrapping cause", err)
	}
	if want := `failed to create window "broken": bad visual`; err.Error() != want {
		t.Fatalf("New() error = %q, want %q", err.Error(), want)
	}
	if b.TerminateCalls != 1 || b.Initialized() {
		t.Fatalf("backend not released after creation failure: TerminateCalls=%d", b.TerminateCalls)
	}
}

func TestNewNilBackend(t *testing.T) {
	if _, err := New(nil, DefaultProperties()); !errors.Is(err, ErrBackendInit) {
		t.Fatalf("New(nil) error = %v, want ErrBackendInit", err)
	}
}

func TestListenersReceiveSameEvent(t *testing.T) {
	b := platform.NewFakeBackend()
	w := newTestWindow(t, b, DefaultProperties())

	var got []event.Event
	var order []int
	w.AddEventListener(event.WindowResize, func(ev event.Event) {
		got = append(got, ev)
		order = append(order, 1)
	})
	w.AddEventListener(event.WindowResize, func(ev event.Event) {
		got = append(got, ev)
		order = append(order, 2)
	})

	b.FireResize(w.Handle(), 800, 600)
	if len(got) != 0 {
		t.Fatalf("listeners ran before Poll")
	}
	w.Poll()

	if len(got) != 2 {
		t.Fatalf("listeners called %d times, want 2", len(got))
	}
	if got[0] != got[1] {
		t.Fatalf("listeners saw different events: %v vs %v", got[0], got[1])
	}
	if order[0] != 1 || order[1] != 2 {
		t.Fatalf("order = %v, want registration order", order)
	}
	want := event.WindowResizeEvent{Width: 800, Height: 600}
	if got[0] != event.Event(want) {
		t.Fatalf("event = %v, want %v", got[0], want)
	}
	if w.Width() != 800 || w.Height() != 600 || w.BufferWidth() != 800 || w.BufferHeight() != 600 {
		t.Fatalf("mirror not updated: %s", w)
	}
}

func TestListenerOnlyReceivesItsType(t *testing.T) {
	b := platform.NewFakeBackend()
	w := newTestWindow(t, b, DefaultProperties())

	calls := 0
	w.AddEventListener(event.KeyDown, func(event.Event) { calls++ })

	h := w.Handle()
	b.FireResize(h, 10, 10)
	b.FireFocus(h, true)
	b.FireKey(h, input.KeyA, input.Release, 0)
	w.Poll()

	if calls != 0 {
		t.Fatalf("KeyDown listener called %d times for other events", calls)
	}
}

func TestRemoveEventListener(t *testing.T) {
	b := platform.NewFakeBackend()
	w := newTestWindow(t, b, DefaultProperties())

	first, second := 0, 0
	id := w.AddEventListener(event.WindowFocus, func(event.Event) { first++ })
	w.AddEventListener(event.WindowFocus, func(event.Event) { second++ })

	w.RemoveEventListener(event.WindowFocus, id)
	w.RemoveEventListener(event.WindowFocus, id)
	w.RemoveEventListener(event.WindowResize, id)
	w.RemoveEventListener(event.WindowFocus, 9999)

	if n := w.ListenerCount(event.WindowFocus); n != 1 {
		t.Fatalf("ListenerCount() = %d, want 1", n)
	}

	b.FireFocus(w.Handle(), true)
	w.Poll()
	if first != 0 || second != 1 {
		t.Fatalf("first=%d second=%d, want 0 and 1", first, second)
	}
}

func TestListenerIDsNotReused(t *testing.T) {
	b := platform.NewFakeBackend()
	w := newTestWindow(t, b, DefaultProperties())

	a := w.AddEventListener(event.MouseMove, func(event.Event) {})
	w.RemoveEventListener(event.MouseMove, a)
	c := w.AddEventListener(event.MouseMove, func(event.Event) {})
	if a == c {
		t.Fatalf("listener id %d reused", a)
	}
}

func TestListenerRemovesItselfDuringDispatch(t *testing.T) {
	b := platform.NewFakeBackend()
	w := newTestWindow(t, b, DefaultProperties())

	var id ListenerID
	self, other := 0, 0
	id = w.AddEventListener(event.KeyTyped, func(event.Event) {
		self++
		w.RemoveEventListener(event.KeyTyped, id)
	})
	w.AddEventListener(event.KeyTyped, func(event.Event) { other++ })

	h := w.Handle()
	b.FireChar(h, 'a')
	b.FireChar(h, 'b')
	w.Poll()

	if self != 1 || other != 2 {
		t.Fatalf("self=%d other=%d, want 1 and 2", self, other)
	}
}

func TestListenerAddedDuringDispatchWaitsForNextEvent(t *testing.T) {
	b := platform.NewFakeBackend()
	w := newTestWindow(t, b, DefaultProperties())

	late := 0
	added := false
	w.AddEventListener(event.MouseWheel, func(event.Event) {
		if !added {
			added = true
			w.AddEventListener(event.MouseWheel, func(event.Event) { late++ })
		}
	})

	h := w.Handle()
	b.FireScroll(h, 0, 1)
	b.FireScroll(h, 0, -1)
	w.Poll()

	if late != 1 {
		t.Fatalf("late listener called %d times, want 1", late)
	}
}

func TestEventTranslation(t *testing.T) {
	tests := []struct {
		name string
		typ  event.Type
		fire func(b *platform.FakeBackend, h platform.Handle)
		want event.Event
	}{
		{
			name: "move",
			typ:  event.WindowMove,
			fire: func(b *platform.FakeBackend, h platform.Handle) { b.FireMove(h, 3, 4) },
			want: event.WindowMoveEvent{X: 3, Y: 4},
		},
		{
			name: "iconify",
			typ:  event.WindowIconify,
			fire: func(b *platform.FakeBackend, h platform.Handle) { b.FireIconify(h, true) },
			want: event.WindowIconifyEvent{Iconified: true},
		},
		{
			name: "maximize",
			typ:  event.WindowMaximize,
			fire: func(b *platform.FakeBackend, h platform.Handle) { b.FireMaximize(h, true) },
			want: event.WindowMaximizeEvent{Maximized: true},
		},
		{
			name: "content scale",
			typ:  event.ContentScale,
			fire: func(b *platform.FakeBackend, h platform.Handle) { b.FireContentScale(h, 1.5, 1.5) },
			want: event.ContentScaleEvent{XScale: 1.5, YScale: 1.5},
		},
		{
			name: "close",
			typ:  event.WindowClose,
			fire: func(b *platform.FakeBackend, h platform.Handle) { b.FireClose(h) },
			want: event.WindowCloseEvent{},
		},
		{
			name: "cursor",
			typ:  event.MouseMove,
			fire: func(b *platform.FakeBackend, h platform.Handle) { b.FireCursorPos(h, 1.5, 2.5) },
			want: event.MouseMoveEvent{X: 1.5, Y: 2.5},
		},
		{
			name: "button press carries cursor",
			typ:  event.MousePress,
			fire: func(b *platform.FakeBackend, h platform.Handle) {
				b.FireCursorPos(h, 10, 20)
				b.FireMouseButton(h, input.MouseButtonRight, input.Press, input.ModShift)
			},
			want: event.MousePressEvent{Button: input.MouseButtonRight, Mods: input.ModShift, X: 10, Y: 20},
		},
		{
			name: "button release",
			typ:  event.MouseRelease,
			fire: func(b *platform.FakeBackend, h platform.Handle) {
				b.FireMouseButton(h, input.MouseButtonLeft, input.Release, 0)
			},
			want: event.MouseReleaseEvent{Button: input.MouseButtonLeft},
		},
		{
			name: "enter",
			typ:  event.MouseEnter,
			fire: func(b *platform.FakeBackend, h platform.Handle) {
				b.FireCursorPos(h, 5, 6)
				b.FireCursorEnter(h, true)
			},
			want: event.MouseEnterEvent{X: 5, Y: 6},
		},
		{
			name: "leave",
			typ:  event.MouseLeave,
			fire: func(b *platform.FakeBackend, h platform.Handle) { b.FireCursorEnter(h, false) },
			want: event.MouseLeaveEvent{},
		},
		{
			name: "key press",
			typ:  event.KeyDown,
			fire: func(b *platform.FakeBackend, h platform.Handle) {
				b.FireKey(h, input.KeyEscape, input.Press, input.ModControl)
			},
			want: event.KeyDownEvent{Key: input.KeyEscape, Scancode: int(input.KeyEscape), Mods: input.ModControl},
		},
		{
			name: "key repeat",
			typ:  event.KeyDown,
			fire: func(b *platform.FakeBackend, h platform.Handle) { b.FireKey(h, input.KeyA, input.Repeat, 0) },
			want: event.KeyDownEvent{Key: input.KeyA, Scancode: int(input.KeyA), Repeat: true},
		},
		{
			name: "key release",
			typ:  event.KeyUp,
			fire: func(b *platform.FakeBackend, h platform.Handle) { b.FireKey(h, input.KeyA, input.Release, 0) },
			want: event.KeyUpEvent{Key: input.KeyA, Scancode: int(input.KeyA)},
		},
		{
			name: "typed",
			typ:  event.KeyTyped,
			fire: func(b *platform.FakeBackend, h platform.Handle) { b.FireChar(h, 'ß') },
			want: event.KeyTypedEvent{Char: 'ß'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := platform.NewFakeBackend()
			w := newTestWindow(t, b, DefaultProperties())

			var got []event.Event
			w.AddEventListener(tt.typ, func(ev event.Event) { got = append(got, ev) })
			tt.fire(b, w.Handle())
			w.Poll()

			if len(got) != 1 {
				t.Fatalf("got %d events, want 1", len(got))
			}
			if got[0] != tt.want {
				t.Fatalf("event = %v, want %v", got[0], tt.want)
			}
		})
	}
}

func TestDropEventCopiesPaths(t *testing.T) {
	b := platform.NewFakeBackend()
	w := newTestWindow(t, b, DefaultProperties())

	var got event.DropEvent
	w.AddEventListener(event.Drop, func(ev event.Event) { got = ev.(event.DropEvent) })

	b.FireDrop(w.Handle(), "/tmp/a.png", "/tmp/b.png")
	w.Poll()

	if len(got.Paths) != 2 || got.Paths[0] != "/tmp/a.png" || got.Paths[1] != "/tmp/b.png" {
		t.Fatalf("Paths = %v", got.Paths)
	}
}

func TestSetPositionAppliesOnPoll(t *testing.T) {
	b := platform.NewFakeBackend()
	w := newTestWindow(t, b, Properties{Title: "move", Width: 100, Height: 100, X: 0, Y: 0})

	moves := 0
	w.AddEventListener(event.WindowMove, func(event.Event) { moves++ })

	w.SetPosition(300, 400)
	if w.XPos() != 0 || w.YPos() != 0 {
		t.Fatalf("pos changed before Poll: (%d,%d)", w.XPos(), w.YPos())
	}
	w.Poll()
	if w.XPos() != 300 || w.YPos() != 400 {
		t.Fatalf("pos = (%d,%d), want (300,400)", w.XPos(), w.YPos())
	}
	if moves != 1 {
		t.Fatalf("move listener called %d times, want 1", moves)
	}
}

func TestSetPositionRejected(t *testing.T) {
	b := platform.NewFakeBackend()
	b.RejectPositions = true
	w := newTestWindow(t, b, Properties{Title: "stuck", Width: 100, Height: 100, X: 5, Y: 6})

	w.SetPosition(300, 400)
	w.Poll()
	if w.XPos() != 5 || w.YPos() != 6 {
		t.Fatalf("pos = (%d,%d), want unchanged (5,6)", w.XPos(), w.YPos())
	}
}

func TestMakeKey(t *testing.T) {
	b := platform.NewFakeBackend()
	w := newTestWindow(t, b, DefaultProperties())
	h := w.Handle()

	space := w.MakeKey(input.KeySpace)
	if space == nil {
		t.Fatal("MakeKey() returned nil")
	}
	if again := w.MakeKey(input.KeySpace); again != space {
		t.Fatal("MakeKey() returned a second observer for the same key")
	}
	if !space.IsReleased() || space.IsClicked() {
		t.Fatal("new observer should be released")
	}

	b.FireKey(h, input.KeySpace, input.Press, 0)
	w.Poll()
	if !space.IsPressed() || !space.IsClicked() {
		t.Fatalf("after press: pressed=%v clicked=%v, want both", space.IsPressed(), space.IsClicked())
	}

	w.Poll()
	if !space.IsPressed() || space.IsClicked() {
		t.Fatalf("held: pressed=%v clicked=%v, want pressed only", space.IsPressed(), space.IsClicked())
	}

	b.FireKey(h, input.KeySpace, input.Release, 0)
	w.Poll()
	if !space.IsReleased() || space.IsClicked() {
		t.Fatal("after release: want released")
	}
}

func TestGetKey(t *testing.T) {
	b := platform.NewFakeBackend()
	w := newTestWindow(t, b, DefaultProperties())

	b.SetKey(w.Handle(), input.KeyW, input.Press)
	if got := w.GetKey(input.KeyW); got != input.Press {
		t.Fatalf("GetKey() = %v, want press", got)
	}
	if got := w.GetKey(input.KeyS); got != input.Release {
		t.Fatalf("GetKey() = %v, want release", got)
	}
}

func TestShouldClose(t *testing.T) {
	b := platform.NewFakeBackend()
	w := newTestWindow(t, b, DefaultProperties())

	if w.ShouldClose() {
		t.Fatal("ShouldClose() true before any close request")
	}
	b.FireClose(w.Handle())
	if w.ShouldClose() {
		t.Fatal("ShouldClose() true before Poll")
	}
	w.Poll()
	if !w.ShouldClose() {
		t.Fatal("ShouldClose() false after close request")
	}
	w.Poll()
	if !w.ShouldClose() {
		t.Fatal("ShouldClose() reset")
	}
}

func TestCloseOnce(t *testing.T) {
	b := platform.NewFakeBackend()
	w, err := New(b, DefaultProperties(), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	h := w.Handle()

	calls := 0
	w.AddEventListener(event.WindowFocus, func(event.Event) { calls++ })
	b.FireFocus(h, true)

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close() error: %v", err)
	}
	if b.DestroyCalls != 1 {
		t.Fatalf("DestroyCalls = %d, want 1", b.DestroyCalls)
	}
	if b.Initialized() {
		t.Fatal("backend still initialized after last window closed")
	}

	w.Poll()
	w.Swap()
	w.SetPosition(1, 1)
	if calls != 0 {
		t.Fatalf("listener called %d times after Close", calls)
	}
	if !w.ShouldClose() {
		t.Fatal("closed window should report ShouldClose")
	}
	if w.Surface() != nil {
		t.Fatal("closed window returned a surface")
	}
}

func TestCloseFromListener(t *testing.T) {
	b := platform.NewFakeBackend()
	w, err := New(b, DefaultProperties(), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	after := 0
	w.AddEventListener(event.WindowClose, func(event.Event) { w.Close() })
	w.AddEventListener(event.WindowFocus, func(event.Event) { after++ })

	h := w.Handle()
	b.FireClose(h)
	b.FireFocus(h, true)
	w.Poll()

	if after != 0 {
		t.Fatalf("events delivered after Close: %d", after)
	}
	if b.DestroyCalls != 1 {
		t.Fatalf("DestroyCalls = %d, want 1", b.DestroyCalls)
	}
}

func TestSwapAndSurface(t *testing.T) {
	b := platform.NewFakeBackend()
	b.Scale = 2
	w := newTestWindow(t, b, Properties{Title: "draw", Width: 4, Height: 3, X: PositionUndefined, Y: PositionUndefined})

	s := w.Surface()
	if s == nil {
		t.Fatal("Surface() = nil")
	}
	if got := s.Bounds().Size(); got.X != 8 || got.Y != 6 {
		t.Fatalf("surface = %v, want 8x6", got)
	}
	w.Swap()
	w.Swap()
	if n := b.Window(w.Handle()).Swaps; n != 2 {
		t.Fatalf("Swaps = %d, want 2", n)
	}
}

func TestTwoWindowsShareBackend(t *testing.T) {
	b := platform.NewFakeBackend()
	first, err := New(b, DefaultProperties(), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	second := newTestWindow(t, b, DefaultProperties())

	hits := map[string]int{}
	first.AddEventListener(event.WindowFocus, func(event.Event) { hits["first"]++ })
	second.AddEventListener(event.WindowFocus, func(event.Event) { hits["second"]++ })

	b.FireFocus(second.Handle(), true)
	second.Poll()
	if hits["first"] != 0 || hits["second"] != 1 {
		t.Fatalf("hits = %v, want only second", hits)
	}

	first.Close()
	if !b.Initialized() {
		t.Fatal("backend released while a window is still open")
	}
}

func TestTimeAndMousePos(t *testing.T) {
	b := platform.NewFakeBackend()
	b.Clock = 1.25
	w := newTestWindow(t, b, DefaultProperties())

	if got := w.Time(); got != 1.25 {
		t.Fatalf("Time() = %v, want 1.25", got)
	}
	b.FireCursorPos(w.Handle(), 12, 34)
	w.Poll()
	if x, y := w.MousePos(); x != 12 || y != 34 {
		t.Fatalf("MousePos() = (%v,%v), want (12,34)", x, y)
	}
}

func TestString(t *testing.T) {
	b := platform.NewFakeBackend()
	w := newTestWindow(t, b, Properties{Title: "demo", Width: 640, Height: 360, X: PositionUndefined, Y: PositionUndefined})

	want := `mono::window { title: "demo", width: 640, height: 360, buffer_width: 640, buffer_height: 360 }`
	if got := w.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestAddNilListener(t *testing.T) {
	b := platform.NewFakeBackend()
	w := newTestWindow(t, b, DefaultProperties())

	id := w.AddEventListener(event.WindowFocus, nil)
	if id != 0 {
		t.Fatalf("AddEventListener(nil) = %d, want 0", id)
	}
	if n := w.ListenerCount(event.WindowFocus); n != 0 {
		t.Fatalf("ListenerCount() = %d, want 0", n)
	}

	calls := 0
	w.AddEventListener(event.WindowFocus, func(event.Event) { calls++ })
	w.RemoveEventListener(event.WindowFocus, id)

	b.FireFocus(w.Handle(), true)
	w.Poll()
	if calls != 1 {
		t.Fatalf("listener called %d times, want 1", calls)
	}
}

func TestNewZeroFramebufferFallsBackToLogicalSize(t *testing.T) {
	b := platform.NewFakeBackend()
	b.ZeroFramebuffer = true
	w := newTestWindow(t, b, Properties{Title: "hidden", Width: 320, Height: 240, X: PositionUndefined, Y: PositionUndefined})

	if w.BufferWidth() != 320 || w.BufferHeight() != 240 {
		t.Fatalf("buffer = %dx%d, want 320x240", w.BufferWidth(), w.BufferHeight())
	}
}
