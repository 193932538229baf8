package document

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/jobledger/internal/models"
)

const (
	modeAllInclusive = string(models.ModeAllInclusive)
	methodCheck      = string(models.MethodCheck)
)

// ToModels migrates the document and converts it to domain projects.
//
// Allocations keep their duplicated layout: each category lists its own
// allocations and each payment lists the allocations it produced. Unknown
// modes, methods and expense types fall back to all-inclusive, check and
// untyped respectively; unparsable dates become the zero Date.
func ToModels(doc *Document) []models.Project {
	doc = Migrate(doc)
	projects := make([]models.Project, 0, len(doc.Projects))
	for _, p := range doc.Projects {
		projects = append(projects, toProject(p))
	}
	return projects
}

func toProject(p Project) models.Project {
	out := models.Project{
		ID:         string(p.ID),
		Name:       string(p.Name),
		ClientName: string(p.ClientName),
		CreatedAt:  parseTimestamp(p.CreatedAt),
		Categories: make([]models.Category, 0, len(p.Categories)),
		Payments:   make([]models.Payment, 0, len(p.Payments)),
	}
	for _, c := range p.Categories {
		out.Categories = append(out.Categories, toCategory(string(p.ID), c))
	}
	for _, pay := range p.Payments {
		out.Payments = append(out.Payments, toPayment(string(p.ID), pay))
	}
	return out
}

func toCategory(projectID string, c Category) models.Category {
	out := models.Category{
		ID:        string(c.ID),
		ProjectID: projectID,
		Name:      string(c.Name),
		CreatedAt: parseTimestamp(c.CreatedAt),
	}

	mode := models.ModeAllInclusive
	if c.Mode != nil && *c.Mode == Text(models.ModeSeparate) {
		mode = models.ModeSeparate
	}
	if mode == models.ModeSeparate {
		out.Budget = models.Separate{
			LaborBudget:     c.LaborBudget.OrZero(),
			LaborCost:       c.LaborCost.OrZero(),
			MaterialsBudget: c.MaterialsBudget.OrZero(),
		}
	} else {
		out.Budget = models.AllInclusive{
			TotalBudget: c.TotalBudget.OrZero(),
			TotalCost:   c.TotalCost.OrZero(),
		}
	}

	for _, a := range c.Allocations {
		alloc := toAllocation(a)
		if alloc.CategoryID == "" {
			alloc.CategoryID = string(c.ID)
		}
		out.Allocations = append(out.Allocations, alloc)
	}
	for _, e := range c.Expenses {
		out.Expenses = append(out.Expenses, toExpense(string(c.ID), mode, e))
	}
	return out
}

func toPayment(projectID string, p Payment) models.Payment {
	out := models.Payment{
		ID:        string(p.ID),
		ProjectID: projectID,
		Method:    models.MethodCheck,
		Amount:    p.Amount.OrZero(),
		Date:      parseDate(p.Date),
		Notes:     string(p.Notes),
		CreatedAt: parseTimestamp(p.CreatedAt),
	}
	if p.PaymentMethod != nil {
		if m, err := models.ParsePaymentMethod(string(*p.PaymentMethod)); err == nil {
			out.Method = m
		}
	}
	if p.Reference != nil {
		out.Reference = string(*p.Reference)
	}
	for _, a := range p.Allocations {
		alloc := toAllocation(a)
		if alloc.PaymentID == "" {
			alloc.PaymentID = string(p.ID)
		}
		if alloc.Date.IsZero() {
			alloc.Date = out.Date
		}
		out.Allocations = append(out.Allocations, alloc)
	}
	return out
}

// toAllocation picks the share variant from which amount fields are present:
// documents always null the unused group.
func toAllocation(a Allocation) models.Allocation {
	out := models.Allocation{
		ID:         string(a.ID),
		PaymentID:  string(a.PaymentID),
		CategoryID: string(a.CategoryID),
		Date:       parseDate(a.Date),
	}
	if a.LaborAmount.Valid || a.MaterialsAmount.Valid {
		out.Share = models.LaborMaterials{
			Labor:     a.LaborAmount.OrZero(),
			Materials: a.MaterialsAmount.OrZero(),
		}
	} else {
		out.Share = models.LumpSum{Amount: a.Amount.OrZero()}
	}
	return out
}

func toExpense(categoryID string, mode models.Mode, e Expense) models.Expense {
	out := models.Expense{
		ID:          string(e.ID),
		CategoryID:  categoryID,
		Amount:      e.Amount.OrZero(),
		Date:        parseDate(e.Date),
		Description: string(e.Description),
		CreatedAt:   parseTimestamp(e.CreatedAt),
	}
	if e.Type != nil && mode == models.ModeSeparate {
		if t, err := models.ParseExpenseType(string(*e.Type)); err == nil {
			out.Type = t
		}
	}
	if e.PaymentMethod != nil {
		if m, err := models.ParsePaymentMethod(string(*e.PaymentMethod)); err == nil {
			out.Method = m
		}
	}
	if e.Reference != nil {
		out.Reference = string(*e.Reference)
	}
	return out
}

// FromModels converts domain projects to a current-version document.
func FromModels(projects []models.Project) *Document {
	doc := &Document{
		SchemaVersion: CurrentSchemaVersion,
		Projects:      make([]Project, 0, len(projects)),
	}
	for _, p := range projects {
		doc.Projects = append(doc.Projects, fromProject(p))
	}
	return doc
}

func fromProject(p models.Project) Project {
	out := Project{
		ID:         Text(p.ID),
		Name:       Text(p.Name),
		ClientName: Text(p.ClientName),
		CreatedAt:  formatTimestamp(p.CreatedAt),
		Categories: make([]Category, 0, len(p.Categories)),
		Payments:   make([]Payment, 0, len(p.Payments)),
	}
	for _, c := range p.Categories {
		out.Categories = append(out.Categories, fromCategory(c))
	}
	for _, pay := range p.Payments {
		out.Payments = append(out.Payments, fromPayment(pay))
	}
	return out
}

func fromCategory(c models.Category) Category {
	out := Category{
		ID:          Text(c.ID),
		Name:        Text(c.Name),
		Mode:        textPtr(string(c.Mode())),
		CreatedAt:   formatTimestamp(c.CreatedAt),
		Allocations: make([]Allocation, 0, len(c.Allocations)),
		Expenses:    make([]Expense, 0, len(c.Expenses)),
	}
	switch b := c.Budget.(type) {
	case models.Separate:
		out.LaborBudget = Some(b.LaborBudget)
		out.LaborCost = Some(b.LaborCost)
		out.MaterialsBudget = Some(b.MaterialsBudget)
	case models.AllInclusive:
		out.TotalBudget = Some(b.TotalBudget)
		out.TotalCost = Some(b.TotalCost)
	default:
		out.TotalBudget = Some(decimal.Zero)
		out.TotalCost = Some(decimal.Zero)
	}
	for _, a := range c.Allocations {
		out.Allocations = append(out.Allocations, fromAllocation(a))
	}
	for _, e := range c.Expenses {
		out.Expenses = append(out.Expenses, fromExpense(e))
	}
	return out
}

func fromPayment(p models.Payment) Payment {
	out := Payment{
		ID:            Text(p.ID),
		PaymentMethod: textPtr(string(p.Method)),
		Reference:     textPtr(p.Reference),
		Amount:        Some(p.Amount),
		Date:          Text(p.Date.String()),
		Notes:         Text(p.Notes),
		CreatedAt:     formatTimestamp(p.CreatedAt),
		Allocations:   make([]Allocation, 0, len(p.Allocations)),
	}
	for _, a := range p.Allocations {
		out.Allocations = append(out.Allocations, fromAllocation(a))
	}
	return out
}

func fromAllocation(a models.Allocation) Allocation {
	out := Allocation{
		ID:         Text(a.ID),
		PaymentID:  Text(a.PaymentID),
		CategoryID: Text(a.CategoryID),
		Date:       Text(a.Date.String()),
	}
	switch s := a.Share.(type) {
	case models.LaborMaterials:
		out.LaborAmount = Some(s.Labor)
		out.MaterialsAmount = Some(s.Materials)
	case models.LumpSum:
		out.Amount = Some(s.Amount)
	default:
		out.Amount = Some(decimal.Zero)
	}
	return out
}

func fromExpense(e models.Expense) Expense {
	out := Expense{
		ID:          Text(e.ID),
		Amount:      Some(e.Amount),
		Date:        Text(e.Date.String()),
		Description: Text(e.Description),
		CreatedAt:   formatTimestamp(e.CreatedAt),
	}
	if e.Type != "" {
		out.Type = textPtr(string(e.Type))
	}
	if e.Method != "" {
		out.PaymentMethod = textPtr(string(e.Method))
	}
	if e.Reference != "" {
		out.Reference = textPtr(e.Reference)
	}
	return out
}

func parseDate(s Text) models.Date {
	d, err := models.ParseDate(string(s))
	if err != nil {
		return models.Date{}
	}
	return d
}

// parseTimestamp reads an RFC 3339 timestamp. Older stores wrote Date.now()
// milliseconds instead, which are accepted too.
func parseTimestamp(s Text) int64 {
	if s == "" {
		return 0
	}
	if ms, err := strconv.ParseInt(string(s), 10, 64); err == nil {
		return ms / 1000
	}
	t, err := time.Parse(time.RFC3339, string(s))
	if err != nil {
		return 0
	}
	return t.Unix()
}

func formatTimestamp(unix int64) Text {
	if unix == 0 {
		return ""
	}
	return Text(time.Unix(unix, 0).UTC().Format(time.RFC3339))
}
