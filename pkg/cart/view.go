package cart

import (
	"fmt"
	"strconv"
	"sync"
)

// EmptyCartLabel is the placeholder row text shown when the cart is empty.
const EmptyCartLabel = "Your cart is empty"

// Row is one rendered line item: a remove control, the name, the unit price,
// an editable quantity, and the computed line total. An empty cart renders as
// a single placeholder row.
type Row struct {
	ID          string
	Name        string
	UnitPrice   string
	Quantity    int
	LineTotal   string
	Placeholder bool
}

// View is a pure projection of a Repository's current cart. It subscribes at
// construction and fully re-renders its rows and total on every change; it
// holds no state of its own beyond the last rendered snapshot.
type View struct {
	repo        *Repository
	unsubscribe func()

	mu          sync.Mutex
	rows        []Row
	total       string
	totalAmount float64
	count       int
}

func NewView(repo *Repository) *View {
	v := &View{repo: repo}
	v.render(repo.Get())
	v.unsubscribe = repo.Subscribe(v.render)
	return v
}

func (v *View) render(c Cart) {
	rows := make([]Row, 0, len(c))
	if len(c) == 0 {
		rows = append(rows, Row{Name: EmptyCartLabel, Placeholder: true})
	}

	var total float64
	for _, line := range c {
		lineTotal := line.Price * float64(line.Quantity)
		total += lineTotal
		rows = append(rows, Row{
			ID:        line.ID,
			Name:      line.Name,
			UnitPrice: formatPrice(line.Price),
			Quantity:  line.Quantity,
			LineTotal: formatPrice(lineTotal),
		})
	}

	v.mu.Lock()
	v.rows = rows
	v.total = formatPrice(total)
	v.totalAmount = total
	v.count = c.Count()
	v.mu.Unlock()
}

// Rows returns the rendered line items.
func (v *View) Rows() []Row {
	v.mu.Lock()
	defer v.mu.Unlock()
	rows := make([]Row, len(v.rows))
	copy(rows, v.rows)
	return rows
}

// Total returns the rendered grand total, formatted to 2 decimals.
func (v *View) Total() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.total
}

// TotalAmount returns the rendered grand total as a number. Checkout reads
// this figure rather than recomputing from the store.
func (v *View) TotalAmount() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.totalAmount
}

// Badge returns the navigation badge text and whether it should be shown.
// The badge hides when the cart is empty.
func (v *View) Badge() (string, bool) {
	v.mu.Lock()
	count := v.count
	v.mu.Unlock()
	if count == 0 {
		return "", false
	}
	return strconv.Itoa(count), true
}

// RemoveLine is the row's remove control: it drops the line from the store
// and re-renders.
func (v *View) RemoveLine(id string) {
	v.render(v.repo.Remove(id))
}

// SetQuantity is the row's quantity control: values below 1 remove the line,
// anything else is an absolute set. Re-renders either way.
func (v *View) SetQuantity(id string, quantity int) {
	if quantity < 1 {
		v.render(v.repo.Remove(id))
		return
	}
	v.render(v.repo.UpdateQuantity(id, quantity))
}

// Close drops the view's subscription.
func (v *View) Close() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

func formatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
