package cmd

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mj1618/accessibility/internal/ax"
	"github.com/mj1618/accessibility/internal/model"
	"github.com/mj1618/accessibility/internal/output"
	"github.com/mj1618/accessibility/internal/platform"
)

var defaultNotifications = []string{
	ax.NotificationFocusedUIElementChanged,
	ax.NotificationFocusedWindowChanged,
	ax.NotificationWindowCreated,
	ax.NotificationUIElementDestroyed,
	ax.NotificationValueChanged,
	ax.NotificationTitleChanged,
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream accessibility notifications as JSONL",
	Long: `Subscribe to an application's accessibility notifications and print one JSON
object per delivered notification, with the element it concerns.

With --diff the application tree is re-read after each notification and only
the elements added, removed or changed since the previous one are reported.

Output is always JSONL regardless of the --format flag. Use Ctrl+C or
--duration to stop.`,
	Example: `  aq watch --app Safari
  aq watch --bundle com.apple.Notes --notifications AXValueChanged,AXTitleChanged
  aq watch --app Calculator --diff --depth 6 --duration 30s`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addTargetFlags(watchCmd)
	watchCmd.Flags().StringSlice("notifications", defaultNotifications, "Notifications to subscribe to")
	watchCmd.Flags().Bool("diff", false, "Report tree changes with each notification")
	watchCmd.Flags().Int("depth", 0, "Max depth of the tree read for --diff (0 = 100)")
	watchCmd.Flags().Duration("duration", 0, "Stop after this long (0 = until Ctrl+C)")
}

// watcher subscribes one observer to an application and turns deliveries into
// events. start, handle and close run on the run-loop thread.
type watcher struct {
	provider *platform.Provider
	pid      int
	names    []string
	diff     bool
	depth    int
	emit     func(output.Event)

	app  *ax.Element
	obs  *ax.Observer
	prev []model.FlatElement
}

func (w *watcher) start() error {
	w.app = w.provider.Application(w.pid)
	obs, err := w.provider.NewObserverWithInfo(w.pid, w.handle)
	if err != nil {
		return err
	}
	w.obs = obs

	registered := 0
	for _, name := range w.names {
		if err := obs.AddNotification(name, w.app, nil); err != nil {
			logrus.Warnf("not watching %s: %v", name, err)
			continue
		}
		registered++
	}
	if registered == 0 {
		return errors.Errorf("no notification could be registered for pid %d", w.pid)
	}
	if w.diff {
		w.prev = w.snapshot()
	}
	obs.Start()
	logrus.Debugf("watching pid %d for %d notifications", w.pid, registered)
	return nil
}

func (w *watcher) snapshot() []model.FlatElement {
	tree := model.Snapshot(w.app, model.CollectOptions{Depth: w.depth})
	if tree == nil {
		return nil
	}
	return model.FlattenElements([]model.Element{*tree})
}

func (w *watcher) handle(n ax.Notification) {
	ev := output.Event{
		TS:           time.Now().Unix(),
		Notification: n.Name,
		PID:          n.PID,
	}
	if n.Element != nil {
		el := model.Describe(n.Element, false)
		ev.Element = &el
	}
	if len(n.Info) > 0 {
		ev.Info = make(map[string]string, len(n.Info))
		for k, v := range n.Info {
			ev.Info[k] = model.FormatValue(v)
		}
	}
	if w.diff {
		curr := w.snapshot()
		if d := model.Diff(w.prev, curr); !d.Empty() {
			ev.Changes = &d
		}
		w.prev = curr
	}
	w.emit(ev)
}

func (w *watcher) close() {
	if w.obs != nil {
		w.obs.Close()
	}
	if w.app != nil {
		w.app.Close()
	}
}

// watch runs the run loop and prints events until ctx is done or the
// observer cannot be set up.
func (w *watcher) watch(ctx context.Context, print func(output.Event) error) error {
	if w.provider.RunLoop == nil {
		return platform.ErrUnsupported
	}
	g, gctx := errgroup.WithContext(ctx)
	events := make(chan output.Event, 64)
	w.emit = func(ev output.Event) {
		select {
		case events <- ev:
		case <-gctx.Done():
		}
	}

	g.Go(func() error {
		defer close(events)
		runCtx, cancel := context.WithCancel(gctx)
		defer cancel()

		var startErr error
		err := w.provider.RunLoop.Run(runCtx, func() {
			if startErr = w.start(); startErr != nil {
				cancel()
			}
		})
		w.close()
		if startErr != nil {
			return startErr
		}
		return err
	})
	g.Go(func() error {
		for ev := range events {
			if err := print(ev); err != nil {
				return err
			}
		}
		return nil
	})
	return g.Wait()
}

func runWatch(cmd *cobra.Command, args []string) error {
	names, _ := cmd.Flags().GetStringSlice("notifications")
	diff, _ := cmd.Flags().GetBool("diff")
	depth, _ := cmd.Flags().GetInt("depth")
	duration, _ := cmd.Flags().GetDuration("duration")

	provider, err := newProvider()
	if err != nil {
		return err
	}
	pid, err := provider.ResolvePID(getTarget(cmd))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	w := &watcher{provider: provider, pid: pid, names: names, diff: diff, depth: depth}
	return w.watch(ctx, func(ev output.Event) error {
		return output.PrintJSON(ev, false)
	})
}
