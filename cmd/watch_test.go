package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/mj1618/accessibility/internal/ax"
	"github.com/mj1618/accessibility/internal/output"
	"github.com/mj1618/accessibility/internal/platform"
)

func runWatcher(ctx context.Context, t *testing.T, w *watcher) ([]output.Event, error) {
	t.Helper()
	var events []output.Event
	err := w.watch(ctx, func(ev output.Event) error {
		events = append(events, ev)
		return nil
	})
	return events, err
}

func TestWatcher_StreamsNotifications(t *testing.T) {
	c, p := newCalculator(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.RunLoop = fakeRunLoop{then: func() {
		c.ax.obs.Fire(c.app, ax.NotificationValueChanged, c.display)
		c.ax.obs.Fire(c.app, ax.NotificationTitleChanged, c.window)
		// Not subscribed.
		c.ax.obs.Fire(c.app, ax.NotificationWindowMoved, c.window)
		cancel()
	}}

	w := &watcher{
		provider: p,
		pid:      7,
		names:    []string{ax.NotificationValueChanged, ax.NotificationTitleChanged},
	}
	events, err := runWatcher(ctx, t, w)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	first := events[0]
	if first.Notification != ax.NotificationValueChanged || first.PID != 7 {
		t.Errorf("unexpected event %+v", first)
	}
	if first.Element == nil || first.Element.Identifier != "display" {
		t.Errorf("expected the display element, got %+v", first.Element)
	}
	if first.Changes != nil {
		t.Error("changes should only be reported with diff")
	}
	if !c.ax.obs.Released {
		t.Error("observer should be released when the watch ends")
	}
	if c.tree.Live() != 0 {
		t.Errorf("leaked %d references", c.tree.Live())
	}
}

func TestWatcher_ReportsInfo(t *testing.T) {
	c, p := newCalculator(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.RunLoop = fakeRunLoop{then: func() {
		c.ax.obs.FireWithInfo(c.app, ax.NotificationAnnouncementRequested, c.window, map[string]any{
			"AXAnnouncementKey": "Result copied",
			"AXPriorityKey":     int64(90),
			"AXUIElementKey":    c.display,
		})
		cancel()
	}}

	w := &watcher{provider: p, pid: 7, names: []string{ax.NotificationAnnouncementRequested}}
	events, err := runWatcher(ctx, t, w)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	info := events[0].Info
	if info["AXAnnouncementKey"] != "Result copied" || info["AXPriorityKey"] != "90" {
		t.Errorf("unexpected info %v", info)
	}
	if info["AXUIElementKey"] == "" {
		t.Error("expected the element in info to be described")
	}
	if c.tree.Live() != 0 {
		t.Errorf("leaked %d references", c.tree.Live())
	}
}

func TestWatcher_Diff(t *testing.T) {
	c, p := newCalculator(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.RunLoop = fakeRunLoop{then: func() {
		c.display.Set("AXValue", "42")
		c.ax.obs.Fire(c.app, ax.NotificationValueChanged, c.display)
		c.ax.obs.Fire(c.app, ax.NotificationValueChanged, c.display)
		cancel()
	}}

	w := &watcher{provider: p, pid: 7, names: []string{ax.NotificationValueChanged}, diff: true}
	events, err := runWatcher(ctx, t, w)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Changes == nil || len(events[0].Changes.Changed) != 1 {
		t.Errorf("expected one changed element, got %+v", events[0].Changes)
	}
	if events[1].Changes != nil {
		t.Errorf("expected no changes on the second delivery, got %+v", events[1].Changes)
	}
}

func TestWatcher_NoRegistrations(t *testing.T) {
	c, p := newCalculator(t)
	c.ax.obs.AddCode = ax.ErrorNotificationUnsupported
	p.RunLoop = fakeRunLoop{}

	w := &watcher{provider: p, pid: 7, names: []string{ax.NotificationValueChanged}}
	if _, err := runWatcher(context.Background(), t, w); err == nil {
		t.Fatal("expected an error when nothing can be registered")
	}
}

func TestWatcher_NoRunLoop(t *testing.T) {
	_, p := newCalculator(t)
	w := &watcher{provider: p, pid: 7, names: defaultNotifications}
	if _, err := runWatcher(context.Background(), t, w); !errors.Is(err, platform.ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}
