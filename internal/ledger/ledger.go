// Package ledger holds the in-memory project graph and the mutations applied
// to it.
//
// Allocations are stored once, in an arena keyed by allocation ID, and indexed
// both by payment and by category. Reads materialize the nested
// models.Project graph from those indices, so a payment and a category can
// never disagree about an allocation's amounts or date.
//
// A Ledger is not safe for concurrent use; callers serialize access.
package ledger

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/jobledger/internal/models"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrInvalidMode          = errors.New("invalid category mode")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidExpenseType   = errors.New("invalid expense type")

	// ErrInvalidDate is models.ErrInvalidDate, re-exported for callers of
	// the mutations.
	ErrInvalidDate = models.ErrInvalidDate
)

type projectNode struct {
	project    models.Project // Categories and Payments are left nil
	categories []string
	payments   []string
}

type categoryNode struct {
	category models.Category // Allocations and Expenses are left nil
	expenses []string
}

// Ledger is the in-memory project graph.
type Ledger struct {
	order       []string
	projects    map[string]*projectNode
	categories  map[string]*categoryNode
	payments    map[string]*models.Payment // Allocations are left nil
	expenses    map[string]*models.Expense
	allocations map[string]*models.Allocation

	byPayment  map[string][]string
	byCategory map[string][]string

	now   func() time.Time
	newID func() string
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source used for CreatedAt and default dates.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithIDGenerator overrides the UUID generator.
func WithIDGenerator(newID func() string) Option {
	return func(l *Ledger) { l.newID = newID }
}

// New returns an empty Ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	l.reset()
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Ledger) reset() {
	l.order = nil
	l.projects = make(map[string]*projectNode)
	l.categories = make(map[string]*categoryNode)
	l.payments = make(map[string]*models.Payment)
	l.expenses = make(map[string]*models.Expense)
	l.allocations = make(map[string]*models.Allocation)
	l.byPayment = make(map[string][]string)
	l.byCategory = make(map[string][]string)
}

// Load replaces the graph with the given projects.
//
// Allocations are taken from payments first. A category allocation whose
// payment lists no allocation for that category fills in a payment
// allocation that has no category, if there is one. Otherwise it is kept as
// well and, when its payment exists, attached to that payment. Missing IDs
// are generated.
func (l *Ledger) Load(projects []models.Project) {
	l.reset()

	for _, p := range projects {
		if p.ID == "" {
			p.ID = l.newID()
		}
		if _, dup := l.projects[p.ID]; dup {
			continue
		}
		node := &projectNode{project: p}
		node.project.Categories = nil
		node.project.Payments = nil
		l.projects[p.ID] = node
		l.order = append(l.order, p.ID)

		for _, c := range p.Categories {
			l.loadCategory(node, c)
		}
		for _, pay := range p.Payments {
			l.loadPayment(node, pay)
		}
	}

	// Second pass: category-only allocations.
	for _, p := range projects {
		for _, c := range p.Categories {
			if _, ok := l.categories[c.ID]; !ok {
				continue
			}
			for _, a := range c.Allocations {
				if a.PaymentID != "" && (l.hasAllocation(a.PaymentID, c.ID) || l.claimUnassigned(a.PaymentID, c.ID)) {
					continue
				}
				a.CategoryID = c.ID
				l.storeAllocation(a, a.PaymentID != "" && l.payments[a.PaymentID] != nil, true)
			}
		}
	}
}

func (l *Ledger) loadCategory(node *projectNode, c models.Category) {
	if c.ID == "" {
		c.ID = l.newID()
	}
	if _, dup := l.categories[c.ID]; dup {
		return
	}
	c.ProjectID = node.project.ID
	if c.Budget == nil {
		c.Budget = models.AllInclusive{}
	}
	cn := &categoryNode{category: c}
	cn.category.Allocations = nil
	cn.category.Expenses = nil
	l.categories[c.ID] = cn
	node.categories = append(node.categories, c.ID)

	for _, e := range c.Expenses {
		if e.ID == "" {
			e.ID = l.newID()
		}
		if _, dup := l.expenses[e.ID]; dup {
			continue
		}
		e.CategoryID = c.ID
		l.expenses[e.ID] = &e
		cn.expenses = append(cn.expenses, e.ID)
	}
}

func (l *Ledger) loadPayment(node *projectNode, pay models.Payment) {
	if pay.ID == "" {
		pay.ID = l.newID()
	}
	if _, dup := l.payments[pay.ID]; dup {
		return
	}
	allocs := pay.Allocations
	pay.ProjectID = node.project.ID
	pay.Allocations = nil
	l.payments[pay.ID] = &pay
	node.payments = append(node.payments, pay.ID)

	for _, a := range allocs {
		a.PaymentID = pay.ID
		if a.Date.IsZero() {
			a.Date = pay.Date
		}
		_, known := l.categories[a.CategoryID]
		l.storeAllocation(a, true, known)
	}
}

func (l *Ledger) hasAllocation(paymentID, categoryID string) bool {
	for _, id := range l.byPayment[paymentID] {
		if l.allocations[id].CategoryID == categoryID {
			return true
		}
	}
	return false
}

// claimUnassigned gives the first category-less allocation of a payment to
// categoryID and reports whether there was one.
func (l *Ledger) claimUnassigned(paymentID, categoryID string) bool {
	for _, id := range l.byPayment[paymentID] {
		if a := l.allocations[id]; a.CategoryID == "" {
			a.CategoryID = categoryID
			l.byCategory[categoryID] = append(l.byCategory[categoryID], id)
			return true
		}
	}
	return false
}

// storeAllocation puts a into the arena and the requested indices.
func (l *Ledger) storeAllocation(a models.Allocation, underPayment, underCategory bool) {
	if a.ID == "" || l.allocations[a.ID] != nil {
		a.ID = l.newID()
	}
	if a.Share == nil {
		a.Share = models.LumpSum{}
	}
	l.allocations[a.ID] = &a
	if underPayment {
		l.byPayment[a.PaymentID] = append(l.byPayment[a.PaymentID], a.ID)
	}
	if underCategory {
		l.byCategory[a.CategoryID] = append(l.byCategory[a.CategoryID], a.ID)
	}
}

// Projects returns every project, in creation order, with its full graph.
func (l *Ledger) Projects() []models.Project {
	out := make([]models.Project, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.materialize(l.projects[id]))
	}
	return out
}

// Project returns one project with its full graph.
func (l *Ledger) Project(id string) (models.Project, error) {
	node, ok := l.projects[id]
	if !ok {
		return models.Project{}, ErrProjectNotFound
	}
	return l.materialize(node), nil
}

// CategoryName returns the name of a category, or models.UnknownCategory
// when it does not exist (anymore).
func (l *Ledger) CategoryName(id string) string {
	if cn, ok := l.categories[id]; ok {
		return cn.category.Name
	}
	return models.UnknownCategory
}

// Category returns one category with its allocations and expenses.
func (l *Ledger) Category(id string) (models.Category, error) {
	cn, ok := l.categories[id]
	if !ok {
		return models.Category{}, ErrCategoryNotFound
	}
	return l.materializeCategory(cn), nil
}

// Payment returns one payment with its allocations.
func (l *Ledger) Payment(id string) (models.Payment, error) {
	p, ok := l.payments[id]
	if !ok {
		return models.Payment{}, ErrPaymentNotFound
	}
	return l.materializePayment(p), nil
}

func (l *Ledger) materialize(node *projectNode) models.Project {
	p := node.project
	p.Categories = make([]models.Category, 0, len(node.categories))
	for _, id := range node.categories {
		p.Categories = append(p.Categories, l.materializeCategory(l.categories[id]))
	}
	p.Payments = make([]models.Payment, 0, len(node.payments))
	for _, id := range node.payments {
		p.Payments = append(p.Payments, l.materializePayment(l.payments[id]))
	}
	return p
}

func (l *Ledger) materializeCategory(cn *categoryNode) models.Category {
	c := cn.category
	c.Allocations = l.collect(l.byCategory[c.ID])
	c.Expenses = make([]models.Expense, 0, len(cn.expenses))
	for _, id := range cn.expenses {
		c.Expenses = append(c.Expenses, *l.expenses[id])
	}
	return c
}

func (l *Ledger) materializePayment(p *models.Payment) models.Payment {
	out := *p
	out.Allocations = l.collect(l.byPayment[p.ID])
	return out
}

func (l *Ledger) collect(ids []string) []models.Allocation {
	out := make([]models.Allocation, 0, len(ids))
	for _, id := range ids {
		out = append(out, *l.allocations[id])
	}
	return out
}

func removeID(ids []string, id string) []string {
	return slices.DeleteFunc(ids, func(s string) bool { return s == id })
}
