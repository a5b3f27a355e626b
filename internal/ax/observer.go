package ax

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// ObserverRef is the foreign side of an Observer. AddNotification hands the
// platform an opaque refcon that the platform passes back to Dispatch each
// time the notification fires.
type ObserverRef interface {
	AddNotification(el Ref, name string, refcon uintptr) Code
	RemoveNotification(el Ref, name string) Code
	// Start attaches the observer to the calling thread's run loop, Stop detaches it.
	Start()
	Stop()
	Release()
}

// Notification is one delivered event. Element and any elements inside Info
// are borrowed for the duration of the callback; Context is whatever was
// passed to AddNotification. Info is nil unless the observer was created with
// an info callback.
type Notification struct {
	Name    string
	Element *Element
	Context any
	PID     int
	Info    map[string]Value
}

// Callback receives notifications on the run-loop thread. It cannot report
// failure and must synchronize any state it shares with other goroutines.
type Callback func(Notification)

// Subscription describes one registered notification.
type Subscription struct {
	Name    string
	Element *Element
	Context any
}

type subscription struct {
	Subscription
	id       uintptr
	observer *Observer
}

// Observer delivers notifications from one application process.
type Observer struct {
	mu       sync.Mutex
	ref      ObserverRef
	pid      int
	callback Callback
	subs     []*subscription
	started  bool
	closed   bool
}

// NewObserver wraps a foreign observer created for pid. The Observer takes
// ownership of ref.
func NewObserver(ref ObserverRef, pid int, cb Callback) *Observer {
	return &Observer{ref: ref, pid: pid, callback: cb}
}

// PID is the process the observer watches.
func (o *Observer) PID() int {
	return o.pid
}

// AddNotification subscribes to name on el. ctx is handed back verbatim with
// each delivery. Subscribing twice to the same (name, element) pair fails with
// ErrorNotificationAlreadyRegistered.
func (o *Observer) AddNotification(name string, el *Element, ctx any) error {
	ref, err := el.live()
	if err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return ErrorInvalidUIElementObserver
	}
	if o.lookup(name, el) >= 0 {
		return ErrorNotificationAlreadyRegistered
	}

	sub := &subscription{
		Subscription: Subscription{Name: name, Element: el.Clone(), Context: ctx},
		observer:     o,
	}
	sub.id = handles.add(sub)
	if err := check(o.ref.AddNotification(ref, name, sub.id)); err != nil {
		handles.remove(sub.id)
		sub.Element.Close()
		return err
	}
	o.subs = append(o.subs, sub)
	logrus.Debugf("observer %d: subscribed to %s on %s", o.pid, name, el)
	return nil
}

// RemoveNotification unsubscribes from name on el. Removing a subscription
// that does not exist fails with ErrorNotificationNotRegistered.
func (o *Observer) RemoveNotification(name string, el *Element) error {
	if _, err := el.live(); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return ErrorInvalidUIElementObserver
	}
	i := o.lookup(name, el)
	if i < 0 {
		return ErrorNotificationNotRegistered
	}
	sub := o.subs[i]
	if err := check(o.ref.RemoveNotification(sub.Element.ref, name)); err != nil {
		return err
	}
	o.drop(i)
	return nil
}

// Subscriptions lists the current subscriptions. The elements are owned by
// the observer and valid until the subscription is removed.
func (o *Observer) Subscriptions() []Subscription {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Subscription, len(o.subs))
	for i, s := range o.subs {
		out[i] = s.Subscription
	}
	return out
}

// Start attaches the observer to the calling thread's run loop. Notifications
// are delivered only while started, and only on that thread.
func (o *Observer) Start() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed || o.started {
		return
	}
	o.ref.Start()
	o.started = true
}

// Stop detaches the observer from the run loop.
func (o *Observer) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stop()
}

func (o *Observer) stop() {
	if o.started {
		o.ref.Stop()
		o.started = false
	}
}

// Close stops the observer, removes every subscription and releases the
// foreign observer.
func (o *Observer) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.stop()
	for len(o.subs) > 0 {
		sub := o.subs[len(o.subs)-1]
		if code := o.ref.RemoveNotification(sub.Element.ref, sub.Name); code != Success {
			logrus.Debugf("observer %d: removing %s: %v", o.pid, sub.Name, code)
		}
		o.drop(len(o.subs) - 1)
	}
	o.ref.Release()
	o.closed = true
}

func (o *Observer) lookup(name string, el *Element) int {
	for i, s := range o.subs {
		if s.Name == name && s.Element.Equal(el) {
			return i
		}
	}
	return -1
}

func (o *Observer) drop(i int) {
	sub := o.subs[i]
	handles.remove(sub.id)
	sub.Element.Close()
	o.subs = append(o.subs[:i], o.subs[i+1:]...)
}

// Dispatch delivers a notification raised by the platform. refcon is the value
// given to ObserverRef.AddNotification; el is borrowed from the caller.
// Unknown refcons are ignored, since a notification can race with removal.
func Dispatch(refcon uintptr, el Ref, name string) {
	DispatchWithInfo(refcon, el, name, nil)
}

// DispatchWithInfo is Dispatch for observers created with an info callback.
// info holds raw values owned by the caller's conversion; its element
// references are consumed whether or not the notification is delivered.
func DispatchWithInfo(refcon uintptr, el Ref, name string, info map[string]any) {
	sub, ok := handles.get(refcon)
	if !ok || sub.observer.callback == nil {
		releaseRaw(info)
		return
	}
	var handle *Element
	if el != nil {
		handle = Wrap(el.Retain())
		defer handle.Close()
	}
	var decoded map[string]Value
	if info != nil {
		decoded = decode(info, KindAny).(map[string]Value)
		defer CloseValue(decoded)
	}
	o := sub.observer
	o.callback(Notification{
		Name:    name,
		Element: handle,
		Context: sub.Context,
		PID:     o.pid,
		Info:    decoded,
	})
}

// handleTable maps refcons to live subscriptions.
type handleTable struct {
	mu   sync.RWMutex
	next uintptr
	subs map[uintptr]*subscription
}

var handles = &handleTable{subs: map[uintptr]*subscription{}}

func (t *handleTable) add(s *subscription) uintptr {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.subs[t.next] = s
	return t.next
}

func (t *handleTable) get(id uintptr) (*subscription, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.subs[id]
	return s, ok
}

func (t *handleTable) remove(id uintptr) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.subs, id)
}
