package dashboard

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/claimready/claimready/optimistic"
)

var priorityRank = map[Priority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// ActionList holds the veteran's action items and applies completion
// toggles optimistically: the local flag flips immediately, the
// adapter persists behind it, and a rejected persist restores the flag
// the item had before the toggle.
type ActionList struct {
	adapter ActionsAdapter
	logger  *slog.Logger

	mu    sync.Mutex
	items map[string]ActionItem
	order []string

	coord *optimistic.Coordinator[bool]
}

// ActionListOption configures an ActionList.
type ActionListOption func(*ActionList)

// WithActionLogger sets the structured logger.
func WithActionLogger(logger *slog.Logger) ActionListOption {
	return func(l *ActionList) { l.logger = logger }
}

// NewActionList creates an empty list over the adapter. onAuthInvalid,
// when non-nil, fires if a persist is rejected for an invalid session.
func NewActionList(adapter ActionsAdapter, onAuthInvalid func(), opts ...ActionListOption) *ActionList {
	l := &ActionList{
		adapter: adapter,
		items:   make(map[string]ActionItem),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}

	var copts []optimistic.Option[bool]
	if onAuthInvalid != nil {
		copts = append(copts, optimistic.WithAuthInvalidHandler[bool](onAuthInvalid))
	}
	l.coord = optimistic.New(l.readCompleted, l.writeCompleted, l.persistCompleted, copts...)
	return l
}

func (l *ActionList) readCompleted(id string) (bool, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	item, ok := l.items[id]
	return item.Completed, ok
}

func (l *ActionList) writeCompleted(id string, completed bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	item, ok := l.items[id]
	if !ok {
		return
	}
	item.Completed = completed
	l.items[id] = item
}

func (l *ActionList) persistCompleted(ctx context.Context, id string, completed bool) (*bool, error) {
	canonical, err := l.adapter.SetCompleted(ctx, id, completed)
	if err != nil {
		l.logger.Warn("action item persist failed", "id", id, "error", err)
		return nil, err
	}
	// Merge everything except the flag; the coordinator decides
	// whether this call's flag is still the newest.
	l.mu.Lock()
	if cur, ok := l.items[id]; ok {
		merged := *canonical
		merged.Completed = cur.Completed
		l.items[id] = merged
	}
	l.mu.Unlock()
	return &canonical.Completed, nil
}

// Load replaces the list with the adapter's current items.
func (l *ActionList) Load(ctx context.Context) error {
	items, err := l.adapter.Actions(ctx)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = make(map[string]ActionItem, len(items))
	l.order = l.order[:0]
	for _, item := range items {
		l.items[item.ID] = item
		l.order = append(l.order, item.ID)
	}
	return nil
}

// Items returns the list sorted for display: open items before
// completed ones, high priority first, original order within a tier.
func (l *ActionList) Items() []ActionItem {
	l.mu.Lock()
	out := make([]ActionItem, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.items[id])
	}
	l.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Completed != out[j].Completed {
			return !out[i].Completed
		}
		return priorityRank[out[i].Priority] < priorityRank[out[j].Priority]
	})
	return out
}

// Item returns one action item by ID.
func (l *ActionList) Item(id string) (ActionItem, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	item, ok := l.items[id]
	return item, ok
}

// ForPackage returns the open items attached to a package.
func (l *ActionList) ForPackage(packageID string) []ActionItem {
	var out []ActionItem
	for _, item := range l.Items() {
		if item.PackageID == packageID && !item.Completed {
			out = append(out, item)
		}
	}
	return out
}

// SetCompleted toggles an item optimistically. On error the item has
// already been restored to its pre-toggle state.
func (l *ActionList) SetCompleted(ctx context.Context, id string, completed bool) error {
	return l.coord.Mutate(ctx, id, completed)
}

// Progress reports completed and total counts.
func (l *ActionList) Progress() (completed, total int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, item := range l.items {
		total++
		if item.Completed {
			completed++
		}
	}
	return completed, total
}
