package axtest

import (
	"github.com/mj1618/accessibility/internal/ax"
)

type subKey struct {
	node *Node
	name string
}

// Observer is a fake ax.ObserverRef. Fire simulates the platform raising a
// notification.
type Observer struct {
	tree *Tree
	subs map[subKey]uintptr

	// AddCode, when set, makes AddNotification fail with it.
	AddCode ax.Code
	// RemoveCode, when set, makes RemoveNotification fail with it.
	RemoveCode ax.Code

	Started  bool
	Released bool
	Adds     int
	Removes  int
}

var _ ax.ObserverRef = (*Observer)(nil)

// NewObserver returns a fake observer over t.
func (t *Tree) NewObserver() *Observer {
	return &Observer{tree: t, subs: map[subKey]uintptr{}}
}

func (o *Observer) AddNotification(el ax.Ref, name string, refcon uintptr) ax.Code {
	o.tree.mu.Lock()
	defer o.tree.mu.Unlock()
	o.Adds++
	if o.AddCode != ax.Success {
		return o.AddCode
	}
	key := subKey{node: NodeOf(el), name: name}
	if _, ok := o.subs[key]; ok {
		return ax.ErrorNotificationAlreadyRegistered
	}
	o.subs[key] = refcon
	return ax.Success
}

func (o *Observer) RemoveNotification(el ax.Ref, name string) ax.Code {
	o.tree.mu.Lock()
	defer o.tree.mu.Unlock()
	o.Removes++
	if o.RemoveCode != ax.Success {
		return o.RemoveCode
	}
	key := subKey{node: NodeOf(el), name: name}
	if _, ok := o.subs[key]; !ok {
		return ax.ErrorNotificationNotRegistered
	}
	delete(o.subs, key)
	return ax.Success
}

func (o *Observer) Start()   { o.Started = true }
func (o *Observer) Stop()    { o.Started = false }
func (o *Observer) Release() { o.Released = true }

// Registered reports how many subscriptions the platform side holds.
func (o *Observer) Registered() int {
	o.tree.mu.Lock()
	defer o.tree.mu.Unlock()
	return len(o.subs)
}

// Fire raises name for the subscription registered on target, reporting
// subject as the affected node. It returns false when nothing is subscribed or
// the observer is not started.
func (o *Observer) Fire(target *Node, name string, subject *Node) bool {
	o.tree.mu.Lock()
	refcon, ok := o.subs[subKey{node: target, name: name}]
	o.tree.mu.Unlock()
	if !ok || !o.Started {
		return false
	}
	r := o.tree.ref(subject)
	defer r.Release()
	ax.Dispatch(refcon, r, name)
	return true
}

// FireWithInfo is Fire for info-callback observers. Node values in info are
// passed as fresh references that the dispatch consumes.
func (o *Observer) FireWithInfo(target *Node, name string, subject *Node, info map[string]any) bool {
	o.tree.mu.Lock()
	refcon, ok := o.subs[subKey{node: target, name: name}]
	o.tree.mu.Unlock()
	if !ok || !o.Started {
		return false
	}
	raw := make(map[string]any, len(info))
	for k, v := range info {
		if n, isNode := v.(*Node); isNode {
			raw[k] = o.tree.ref(n)
			continue
		}
		raw[k] = v
	}
	r := o.tree.ref(subject)
	defer r.Release()
	ax.DispatchWithInfo(refcon, r, name, raw)
	return true
}
