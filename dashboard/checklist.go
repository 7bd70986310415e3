package dashboard

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/claimready/claimready/optimistic"
)

// ChecklistBoard holds the evidence checklists of one package and
// toggles items optimistically, mirroring ActionList.
type ChecklistBoard struct {
	adapter   PackagesAdapter
	packageID string
	logger    *slog.Logger

	mu    sync.Mutex
	lists map[string]Checklist
	order []string

	coord *optimistic.Coordinator[bool]
}

// ChecklistBoardOption configures a ChecklistBoard.
type ChecklistBoardOption func(*ChecklistBoard)

// WithChecklistLogger sets the structured logger.
func WithChecklistLogger(logger *slog.Logger) ChecklistBoardOption {
	return func(b *ChecklistBoard) { b.logger = logger }
}

// NewChecklistBoard creates an empty board for the package.
func NewChecklistBoard(adapter PackagesAdapter, packageID string, onAuthInvalid func(), opts ...ChecklistBoardOption) *ChecklistBoard {
	b := &ChecklistBoard{
		adapter:   adapter,
		packageID: packageID,
		lists:     make(map[string]Checklist),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}

	var copts []optimistic.Option[bool]
	if onAuthInvalid != nil {
		copts = append(copts, optimistic.WithAuthInvalidHandler[bool](onAuthInvalid))
	}
	b.coord = optimistic.New(b.readItem, b.writeItem, b.persistItem, copts...)
	return b
}

// itemKey addresses one checklist item for the coordinator. IDs are
// UUIDs, so "/" cannot appear in either part.
func itemKey(checklistID, itemID string) string {
	return checklistID + "/" + itemID
}

func splitItemKey(key string) (checklistID, itemID string) {
	checklistID, itemID, _ = strings.Cut(key, "/")
	return checklistID, itemID
}

func (b *ChecklistBoard) readItem(key string) (bool, bool) {
	checklistID, itemID := splitItemKey(key)
	b.mu.Lock()
	defer b.mu.Unlock()
	list, ok := b.lists[checklistID]
	if !ok {
		return false, false
	}
	for _, item := range list.Items {
		if item.ID == itemID {
			return item.Completed, true
		}
	}
	return false, false
}

func (b *ChecklistBoard) writeItem(key string, completed bool) {
	checklistID, itemID := splitItemKey(key)
	b.mu.Lock()
	defer b.mu.Unlock()
	list, ok := b.lists[checklistID]
	if !ok {
		return
	}
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			list.Items[i].Completed = completed
			return
		}
	}
}

func (b *ChecklistBoard) persistItem(ctx context.Context, key string, completed bool) (*bool, error) {
	checklistID, itemID := splitItemKey(key)
	canonical, err := b.adapter.SetChecklistItem(ctx, b.packageID, checklistID, itemID, completed)
	if err != nil {
		b.logger.Warn("checklist item persist failed",
			"package", b.packageID, "checklist", checklistID, "item", itemID, "error", err)
		return nil, err
	}
	for _, item := range canonical.Items {
		if item.ID == itemID {
			flag := item.Completed
			return &flag, nil
		}
	}
	return nil, nil
}

// Load replaces the board with the adapter's current checklists.
func (b *ChecklistBoard) Load(ctx context.Context) error {
	lists, err := b.adapter.Checklists(ctx, b.packageID)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lists = make(map[string]Checklist, len(lists))
	b.order = b.order[:0]
	for _, list := range lists {
		b.lists[list.ID] = list
		b.order = append(b.order, list.ID)
	}
	return nil
}

// Checklists returns the board's checklists in load order.
func (b *ChecklistBoard) Checklists() []Checklist {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Checklist, 0, len(b.order))
	for _, id := range b.order {
		list := b.lists[id]
		list.Items = append([]ChecklistItem(nil), list.Items...)
		out = append(out, list)
	}
	return out
}

// Item returns one checklist item.
func (b *ChecklistBoard) Item(checklistID, itemID string) (ChecklistItem, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	list, ok := b.lists[checklistID]
	if !ok {
		return ChecklistItem{}, false
	}
	for _, item := range list.Items {
		if item.ID == itemID {
			return item, true
		}
	}
	return ChecklistItem{}, false
}

// SetCompleted toggles a checklist item optimistically.
func (b *ChecklistBoard) SetCompleted(ctx context.Context, checklistID, itemID string, completed bool) error {
	return b.coord.Mutate(ctx, itemKey(checklistID, itemID), completed)
}

// Progress reports completed and total item counts across the board.
func (b *ChecklistBoard) Progress() (completed, total int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, list := range b.lists {
		for _, item := range list.Items {
			total++
			if item.Completed {
				completed++
			}
		}
	}
	return completed, total
}
