// Package cart is the storefront's shopping cart: an insertion-ordered set of
// product lines persisted to a single durable key/value slot, with a change
// notification fired on every mutation.
package cart

import (
	"encoding/json"
	"strings"
	"sync"
)

// StorageKey is the default slot the cart persists under.
const StorageKey = "coffee_blend_cart"

// Line is one product entry in a cart. A line's quantity is always >= 1 while
// it exists; reaching 0 deletes the line.
type Line struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// Cart is an insertion-ordered sequence of lines, at most one per id.
type Cart []Line

// Total sums price x quantity over all lines.
func (c Cart) Total() float64 {
	var total float64
	for _, line := range c {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// Count sums quantities over all lines.
func (c Cart) Count() int {
	var count int
	for _, line := range c {
		count += line.Quantity
	}
	return count
}

// ProductID derives a cart line id from a product display name: lowercased,
// whitespace collapsed to underscores. Two products sharing a display name
// collide on purpose.
func ProductID(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

// Storage is the durable slot the cart persists to. Implementations that can
// fail (a network-backed slot, a full disk) log and degrade: a failed read is
// an absent value, a failed write is dropped.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// Listener receives the full cart snapshot after every mutation.
type Listener func(Cart)

// Repository owns one cart in one storage slot. All mutators read-modify-write
// through Save, which broadcasts to subscribers. Two repositories sharing a
// slot can race; the last writer wins, same as two browser tabs sharing
// localStorage.
type Repository struct {
	storage Storage
	key     string

	mu     sync.Mutex
	subs   map[int]Listener
	nextID int
}

func NewRepository(storage Storage) *Repository {
	return NewRepositoryWithKey(storage, StorageKey)
}

func NewRepositoryWithKey(storage Storage, key string) *Repository {
	return &Repository{
		storage: storage,
		key:     key,
		subs:    make(map[int]Listener),
	}
}

// Subscribe registers a listener for change notifications and returns its
// unsubscribe handle. Listeners are invoked synchronously with the new cart.
func (r *Repository) Subscribe(fn Listener) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.subs[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs, id)
	}
}

// Get reads the stored cart. An absent or unreadable value is an empty cart.
func (r *Repository) Get() Cart {
	raw, ok := r.storage.Get(r.key)
	if !ok {
		return Cart{}
	}
	var c Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return Cart{}
	}
	if c == nil {
		c = Cart{}
	}
	return c
}

// Save overwrites the stored cart and notifies every subscriber.
func (r *Repository) Save(c Cart) {
	data, err := json.Marshal(c)
	if err != nil {
		return
	}
	r.storage.Set(r.key, string(data))
	r.notify(c)
}

// Add appends a new line for an unknown id, or accumulates quantity onto the
// existing line. A zero quantity counts as 1.
func (r *Repository) Add(product Line) Cart {
	c := r.Get()

	quantity := product.Quantity
	if quantity == 0 {
		quantity = 1
	}

	found := false
	for i := range c {
		if c[i].ID == product.ID {
			c[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		product.Quantity = quantity
		c = append(c, product)
	}

	r.Save(c)
	return c
}

// Remove drops the matching line. Removing an absent id is a no-op save.
func (r *Repository) Remove(id string) Cart {
	c := r.Get()
	kept := make(Cart, 0, len(c))
	for _, line := range c {
		if line.ID != id {
			kept = append(kept, line)
		}
	}
	r.Save(kept)
	return kept
}

// UpdateQuantity sets a line's quantity to exactly the given value. A value
// of zero or less removes the line. An absent id leaves the cart untouched
// and unsaved.
func (r *Repository) UpdateQuantity(id string, quantity int) Cart {
	c := r.Get()
	for i := range c {
		if c[i].ID == id {
			if quantity <= 0 {
				return r.Remove(id)
			}
			c[i].Quantity = quantity
			r.Save(c)
			break
		}
	}
	return c
}

// Clear deletes the stored slot and broadcasts an empty cart.
func (r *Repository) Clear() {
	r.storage.Remove(r.key)
	r.notify(Cart{})
}

// Total sums price x quantity over the stored cart.
func (r *Repository) Total() float64 {
	return r.Get().Total()
}

// Count sums quantities over the stored cart.
func (r *Repository) Count() int {
	return r.Get().Count()
}

func (r *Repository) notify(c Cart) {
	r.mu.Lock()
	listeners := make([]Listener, 0, len(r.subs))
	for _, fn := range r.subs {
		listeners = append(listeners, fn)
	}
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(c)
	}
}
