package entities

import (
	"github.com/KirkDiggler/adventure-engine/internal/errors"
)

// Inventory is an ordered collection of interactables. Order is display
// order. A slug appears at most once.
type Inventory struct {
	items []*Interactable
}

// NewInventory creates an empty inventory with its own backing storage
func NewInventory() *Inventory {
	return &Inventory{items: make([]*Interactable, 0)}
}

// Add appends an object. Adding a second object with the same slug fails.
func (inv *Inventory) Add(obj *Interactable) error {
	if obj == nil {
		return errors.InvalidArgument("object is required")
	}
	if existing := inv.Find(obj.Slug()); existing != nil {
		return errors.ContentDefect(errors.CodeDuplicateSlug, obj.Slug(),
			"an object named %q is already here", obj.Slug())
	}
	inv.items = append(inv.items, obj)
	return nil
}

// Remove takes the object out by identity. Returns false if it was not held.
func (inv *Inventory) Remove(obj *Interactable) bool {
	for i, item := range inv.items {
		if item == obj {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains checks membership by identity
func (inv *Inventory) Contains(obj *Interactable) bool {
	for _, item := range inv.items {
		if item == obj {
			return true
		}
	}
	return false
}

// Find looks an object up by slug
func (inv *Inventory) Find(slug string) *Interactable {
	for _, item := range inv.items {
		if item.Slug() == slug {
			return item
		}
	}
	return nil
}

// Items returns a copy of the contents in order
func (inv *Inventory) Items() []*Interactable {
	out := make([]*Interactable, len(inv.items))
	copy(out, inv.items)
	return out
}

// Slugs returns the slugs in order
func (inv *Inventory) Slugs() []string {
	out := make([]string, len(inv.items))
	for i, item := range inv.items {
		out[i] = item.Slug()
	}
	return out
}

// Len returns the number of held objects
func (inv *Inventory) Len() int {
	return len(inv.items)
}
