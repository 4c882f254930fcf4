package platform

import (
	"errors"
	"testing"

	"github.com/1broseidon/mono/internal/input"
)

func newFakeWindow(t *testing.T, b *FakeBackend, cfg WindowConfig) Handle {
	t.Helper()
	if err := b.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	h, err := b.CreateWindow(cfg)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return h
}

func TestFakeBackend_CreateRequiresInit(t *testing.T) {
	b := NewFakeBackend()
	if _, err := b.CreateWindow(WindowConfig{Width: 10, Height: 10}); err == nil {
		t.Fatalf("expected error creating before Init")
	}

	b.CreateErr = errors.New("no visual")
	if err := b.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := b.CreateWindow(WindowConfig{Width: 10, Height: 10}); !errors.Is(err, b.CreateErr) {
		t.Fatalf("expected CreateErr, got %v", err)
	}
}

func TestFakeBackend_PlacementAndScale(t *testing.T) {
	b := NewFakeBackend()
	b.Scale = 2
	b.DefaultX, b.DefaultY = 40, 50

	h := newFakeWindow(t, b, WindowConfig{Width: 100, Height: 80})
	if x, y := b.WindowPos(h); x != 40 || y != 50 {
		t.Fatalf("expected default placement (40, 50), got (%d, %d)", x, y)
	}
	if w, hgt := b.FramebufferSize(h); w != 200 || hgt != 160 {
		t.Fatalf("expected framebuffer 200x160, got %dx%d", w, hgt)
	}
	if got := b.Surface(h).Bounds().Dx(); got != 200 {
		t.Fatalf("expected surface width 200, got %d", got)
	}

	h2 := newFakeWindow(t, b, WindowConfig{Width: 100, Height: 80, X: 5, Y: 6, Positioned: true})
	if x, y := b.WindowPos(h2); x != 5 || y != 6 {
		t.Fatalf("expected requested placement (5, 6), got (%d, %d)", x, y)
	}
}

func TestFakeBackend_EventsDeliveredOnPoll(t *testing.T) {
	b := NewFakeBackend()
	h := newFakeWindow(t, b, WindowConfig{Width: 100, Height: 80})

	var keys []input.Key
	b.SetCallbacks(h, Callbacks{
		Key: func(_ Handle, key input.Key, _ int, _ input.Action, _ input.Mod) {
			keys = append(keys, key)
		},
	})

	b.FireKey(h, input.KeyA, input.Press, 0)
	b.FireKey(h, input.KeyB, input.Press, 0)
	if len(keys) != 0 {
		t.Fatalf("events must not be delivered before PollEvents")
	}
	if b.Key(h, input.KeyA) != input.Release {
		t.Fatalf("key state must not change before delivery")
	}

	b.PollEvents()
	if len(keys) != 2 || keys[0] != input.KeyA || keys[1] != input.KeyB {
		t.Fatalf("unexpected delivery order: %v", keys)
	}
	if b.Key(h, input.KeyA) != input.Press {
		t.Fatalf("expected KeyA pressed after delivery")
	}
	if b.Pending() != 0 {
		t.Fatalf("expected empty queue, got %d", b.Pending())
	}
}

func TestFakeBackend_SetWindowPosIsAsynchronous(t *testing.T) {
	b := NewFakeBackend()
	h := newFakeWindow(t, b, WindowConfig{Width: 100, Height: 80})

	b.SetWindowPos(h, 300, 200)
	if x, y := b.WindowPos(h); x != 0 || y != 0 {
		t.Fatalf("position must not change before PollEvents, got (%d, %d)", x, y)
	}
	b.PollEvents()
	if x, y := b.WindowPos(h); x != 300 || y != 200 {
		t.Fatalf("expected (300, 200), got (%d, %d)", x, y)
	}

	b.RejectPositions = true
	b.SetWindowPos(h, 1, 1)
	if b.Pending() != 0 {
		t.Fatalf("rejected move must not queue an event")
	}
}

func TestFakeBackend_DestroyDropsUserDataAndEvents(t *testing.T) {
	b := NewFakeBackend()
	h := newFakeWindow(t, b, WindowConfig{Width: 100, Height: 80})

	calls := 0
	b.SetUserData(h, "data")
	b.SetCallbacks(h, Callbacks{Close: func(Handle) { calls++ }})
	b.FireClose(h)

	b.DestroyWindow(h)
	if b.UserData(h) != nil {
		t.Fatalf("user data must be cleared on destroy")
	}
	b.PollEvents()
	if calls != 0 {
		t.Fatalf("callback ran after destroy")
	}
	if !b.ShouldClose(h) {
		t.Fatalf("destroyed windows report ShouldClose")
	}

	b.Terminate()
	if b.Initialized() {
		t.Fatalf("expected Terminate to release the fake once no windows remain")
	}
}
