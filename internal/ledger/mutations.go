package ledger

import (
	"fmt"
	"slices"

	"github.com/mmynk/jobledger/internal/models"
)

// ProjectInput describes a new project.
type ProjectInput struct {
	Name       string
	ClientName string
}

// CategoryInput describes a new category. Amounts are user-entered text;
// empty or unparsable amounts count as zero. Only the group matching Mode is
// used.
type CategoryInput struct {
	Name string
	Mode string

	TotalBudget string
	TotalCost   string

	LaborBudget     string
	LaborCost       string
	MaterialsBudget string
}

// AllocationInput attributes part of a payment to one category.
type AllocationInput struct {
	CategoryID      string
	Amount          string
	LaborAmount     string
	MaterialsAmount string
}

// PaymentInput describes a client payment. An empty Date means today.
type PaymentInput struct {
	Method      string
	Reference   string
	Amount      string
	Date        string
	Notes       string
	Allocations []AllocationInput
}

// ExpenseInput describes a payment to a subcontractor or supplier.
type ExpenseInput struct {
	Amount      string
	Date        string
	Description string
	Type        string
	Method      string
	Reference   string
}

// AddProject creates a project.
func (l *Ledger) AddProject(in ProjectInput) models.Project {
	node := &projectNode{project: models.Project{
		ID:         l.newID(),
		Name:       in.Name,
		ClientName: in.ClientName,
		CreatedAt:  l.now().Unix(),
	}}
	l.projects[node.project.ID] = node
	l.order = append(l.order, node.project.ID)
	return l.materialize(node)
}

// DeleteProject removes a project with every category, payment, allocation
// and expense it owns.
func (l *Ledger) DeleteProject(id string) error {
	node, ok := l.projects[id]
	if !ok {
		return ErrProjectNotFound
	}
	for _, pid := range node.payments {
		l.dropPayment(pid)
	}
	for _, cid := range node.categories {
		l.dropCategory(cid)
	}
	delete(l.projects, id)
	l.order = removeID(l.order, id)
	return nil
}

// AddCategory creates a category in a project. The budget variant follows
// the mode; the other group's amounts are ignored.
func (l *Ledger) AddCategory(projectID string, in CategoryInput) (models.Category, error) {
	node, ok := l.projects[projectID]
	if !ok {
		return models.Category{}, ErrProjectNotFound
	}
	mode, err := models.ParseMode(in.Mode)
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %q", ErrInvalidMode, in.Mode)
	}

	c := models.Category{
		ID:        l.newID(),
		ProjectID: projectID,
		Name:      in.Name,
		CreatedAt: l.now().Unix(),
	}
	switch mode {
	case models.ModeSeparate:
		c.Budget = models.Separate{
			LaborBudget:     models.ParseAmount(in.LaborBudget),
			LaborCost:       models.ParseAmount(in.LaborCost),
			MaterialsBudget: models.ParseAmount(in.MaterialsBudget),
		}
	default:
		c.Budget = models.AllInclusive{
			TotalBudget: models.ParseAmount(in.TotalBudget),
			TotalCost:   models.ParseAmount(in.TotalCost),
		}
	}

	cn := &categoryNode{category: c}
	l.categories[c.ID] = cn
	node.categories = append(node.categories, c.ID)
	return l.materializeCategory(cn), nil
}

// DeleteCategory removes a category and its expenses and returns the ID of
// the project it belonged to.
//
// The category's allocations leave the category index but stay on their
// payments; payment listings show them under models.UnknownCategory.
func (l *Ledger) DeleteCategory(id string) (string, error) {
	cn, ok := l.categories[id]
	if !ok {
		return "", ErrCategoryNotFound
	}
	projectID := cn.category.ProjectID
	if node, ok := l.projects[projectID]; ok {
		node.categories = removeID(node.categories, id)
	}
	l.dropCategory(id)
	return projectID, nil
}

func (l *Ledger) dropCategory(id string) {
	cn, ok := l.categories[id]
	if !ok {
		return
	}
	for _, eid := range cn.expenses {
		delete(l.expenses, eid)
	}
	for _, aid := range l.byCategory[id] {
		a, ok := l.allocations[aid]
		if !ok {
			continue
		}
		// Allocations no payment lists would be unreachable.
		if !slices.Contains(l.byPayment[a.PaymentID], aid) {
			delete(l.allocations, aid)
		}
	}
	delete(l.byCategory, id)
	delete(l.categories, id)
}

// RecordPayment records a client payment and its allocations.
//
// Allocation requests with no positive amount are dropped. Each remaining
// request is normalized to the share of its category's mode: an
// all-inclusive category takes Amount (or, when Amount is zero, the sum of
// the labor and materials amounts); a separate category takes the labor and
// materials amounts (or, when both are zero, Amount as labor). Every
// allocation carries the payment's date.
func (l *Ledger) RecordPayment(projectID string, in PaymentInput) (models.Payment, error) {
	node, ok := l.projects[projectID]
	if !ok {
		return models.Payment{}, ErrProjectNotFound
	}
	method, err := models.ParsePaymentMethod(in.Method)
	if err != nil {
		return models.Payment{}, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, in.Method)
	}
	date, err := l.parseDate(in.Date)
	if err != nil {
		return models.Payment{}, err
	}

	type pending struct {
		categoryID string
		share      models.Share
	}
	var shares []pending
	for _, req := range in.Allocations {
		cn, ok := l.categories[req.CategoryID]
		if !ok || cn.category.ProjectID != projectID {
			return models.Payment{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, req.CategoryID)
		}
		share := normalizeShare(cn.category.Mode(), req)
		if share == nil {
			continue
		}
		shares = append(shares, pending{categoryID: req.CategoryID, share: share})
	}

	p := &models.Payment{
		ID:        l.newID(),
		ProjectID: projectID,
		Method:    method,
		Reference: in.Reference,
		Amount:    models.ParseAmount(in.Amount),
		Date:      date,
		Notes:     in.Notes,
		CreatedAt: l.now().Unix(),
	}
	l.payments[p.ID] = p
	node.payments = append(node.payments, p.ID)

	for _, s := range shares {
		l.storeAllocation(models.Allocation{
			PaymentID:  p.ID,
			CategoryID: s.categoryID,
			Share:      s.share,
			Date:       date,
		}, true, true)
	}
	return l.materializePayment(p), nil
}

func normalizeShare(mode models.Mode, req AllocationInput) models.Share {
	amount := models.ParseAmount(req.Amount)
	labor := models.ParseAmount(req.LaborAmount)
	materials := models.ParseAmount(req.MaterialsAmount)
	if !amount.IsPositive() && !labor.IsPositive() && !materials.IsPositive() {
		return nil
	}

	if mode == models.ModeSeparate {
		if labor.IsZero() && materials.IsZero() {
			labor = amount
		}
		return models.LaborMaterials{Labor: labor, Materials: materials}
	}
	if amount.IsZero() {
		amount = labor.Add(materials)
	}
	return models.LumpSum{Amount: amount}
}

// DeletePayment removes a payment and every allocation it produced, from
// both indices. It returns the ID of the project the payment belonged to.
func (l *Ledger) DeletePayment(id string) (string, error) {
	p, ok := l.payments[id]
	if !ok {
		return "", ErrPaymentNotFound
	}
	projectID := p.ProjectID
	if node, ok := l.projects[projectID]; ok {
		node.payments = removeID(node.payments, id)
	}
	l.dropPayment(id)
	return projectID, nil
}

func (l *Ledger) dropPayment(id string) {
	for _, aid := range l.byPayment[id] {
		a, ok := l.allocations[aid]
		if !ok {
			continue
		}
		if ids, ok := l.byCategory[a.CategoryID]; ok {
			l.byCategory[a.CategoryID] = removeID(ids, aid)
		}
		delete(l.allocations, aid)
	}
	delete(l.byPayment, id)
	delete(l.payments, id)
}

// AddExpense records an expense on a category. The type is kept only for
// separate categories.
func (l *Ledger) AddExpense(categoryID string, in ExpenseInput) (models.Expense, error) {
	cn, ok := l.categories[categoryID]
	if !ok {
		return models.Expense{}, ErrCategoryNotFound
	}
	typ, err := models.ParseExpenseType(in.Type)
	if err != nil {
		return models.Expense{}, fmt.Errorf("%w: %q", ErrInvalidExpenseType, in.Type)
	}
	if cn.category.Mode() != models.ModeSeparate {
		typ = ""
	}
	var method models.PaymentMethod
	if in.Method != "" {
		if method, err = models.ParsePaymentMethod(in.Method); err != nil {
			return models.Expense{}, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, in.Method)
		}
	}
	date, err := l.parseDate(in.Date)
	if err != nil {
		return models.Expense{}, err
	}

	e := &models.Expense{
		ID:          l.newID(),
		CategoryID:  categoryID,
		Amount:      models.ParseAmount(in.Amount),
		Date:        date,
		Description: in.Description,
		Type:        typ,
		Method:      method,
		Reference:   in.Reference,
		CreatedAt:   l.now().Unix(),
	}
	l.expenses[e.ID] = e
	cn.expenses = append(cn.expenses, e.ID)
	return *e, nil
}

// DeleteExpense removes an expense and returns the ID of the project it
// belonged to.
func (l *Ledger) DeleteExpense(id string) (string, error) {
	e, ok := l.expenses[id]
	if !ok {
		return "", ErrExpenseNotFound
	}
	var projectID string
	if cn, ok := l.categories[e.CategoryID]; ok {
		cn.expenses = removeID(cn.expenses, id)
		projectID = cn.category.ProjectID
	}
	delete(l.expenses, id)
	return projectID, nil
}

func (l *Ledger) parseDate(s string) (models.Date, error) {
	if s == "" {
		t := l.now()
		return models.NewDate(t.Year(), int(t.Month()), t.Day()), nil
	}
	d, err := models.ParseDate(s)
	if err != nil {
		return models.Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// ProjectOf returns the ID of the project owning a category.
func (l *Ledger) ProjectOf(categoryID string) (string, bool) {
	cn, ok := l.categories[categoryID]
	if !ok {
		return "", false
	}
	return cn.category.ProjectID, true
}
