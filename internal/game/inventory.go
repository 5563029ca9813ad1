package game

// Card is one entry of an item or skill card row.
type Card struct {
	ID    int
	Name  string
	Image string // empty draws the fallback card
	Count int    // stack size for items
	Cost  int    // energy cost for skills
}

// Inventory is the party's battle item bag. Order is display order.
type Inventory struct {
	Slots []Card
}

// NewInventory fills the bag, dropping empty stacks.
func NewInventory(items []Card) *Inventory {
	inv := &Inventory{}
	for _, it := range items {
		inv.Add(it, it.Count)
	}
	return inv
}

// FindSlot returns the index of the slot holding item id, or -1.
func (inv *Inventory) FindSlot(id int) int {
	for i, slot := range inv.Slots {
		if slot.ID == id {
			return i
		}
	}
	return -1
}

// Add stacks amount onto item, claiming a new slot at the end if needed.
func (inv *Inventory) Add(item Card, amount int) {
	if amount <= 0 {
		return
	}
	if idx := inv.FindSlot(item.ID); idx >= 0 {
		inv.Slots[idx].Count += amount
		return
	}
	item.Count = amount
	inv.Slots = append(inv.Slots, item)
}

// Use consumes one of the item in slot idx. An emptied stack is removed so
// the card row shrinks.
func (inv *Inventory) Use(idx int) (Card, bool) {
	if idx < 0 || idx >= len(inv.Slots) {
		return Card{}, false
	}
	used := inv.Slots[idx]
	inv.Slots[idx].Count--
	if inv.Slots[idx].Count <= 0 {
		inv.Slots = append(inv.Slots[:idx], inv.Slots[idx+1:]...)
	}
	return used, true
}

// Count returns how many of item id the bag holds.
func (inv *Inventory) Count(id int) int {
	idx := inv.FindSlot(id)
	if idx < 0 {
		return 0
	}
	return inv.Slots[idx].Count
}

// Len returns the number of stacks.
func (inv *Inventory) Len() int { return len(inv.Slots) }
