package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"connectrpc.com/connect"

	"github.com/mmynk/jobledger/internal/calculator"
	"github.com/mmynk/jobledger/internal/events"
	"github.com/mmynk/jobledger/internal/ledger"
	"github.com/mmynk/jobledger/internal/metrics"
	"github.com/mmynk/jobledger/internal/models"
	"github.com/mmynk/jobledger/internal/storage"
	pb "github.com/mmynk/jobledger/pkg/proto"
	"github.com/mmynk/jobledger/pkg/proto/protoconnect"
)

var (
	errConfirmRequired = errors.New("confirm must be true to delete")
	errNameRequired    = errors.New("name is required")
	errAmountRequired  = errors.New("amount must be greater than zero")
)

// LedgerService implements the Connect LedgerService.
//
// Every RPC runs under one mutex. A mutation is applied to the in-memory
// ledger first, then saved; if saving fails the change stays in memory and
// the response reports persisted=false. Change events are published after
// the mutex is released.
type LedgerService struct {
	protoconnect.UnimplementedLedgerServiceHandler

	mu        sync.Mutex
	ledger    *ledger.Ledger
	store     storage.Store
	publisher events.Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// Option configures a LedgerService.
type Option func(*LedgerService)

// WithPublisher sets where change events are sent. The default drops them.
func WithPublisher(p events.Publisher) Option {
	return func(s *LedgerService) { s.publisher = p }
}

// WithMetrics counts persistence failures in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *LedgerService) { s.metrics = m }
}

// WithLedger replaces the in-memory ledger, e.g. one with a fixed clock.
func WithLedger(l *ledger.Ledger) Option {
	return func(s *LedgerService) { s.ledger = l }
}

// NewLedgerService loads every project from store and returns a service
// serving them.
func NewLedgerService(ctx context.Context, store storage.Store, logger *slog.Logger, opts ...Option) (*LedgerService, error) {
	s := &LedgerService{
		ledger:    ledger.New(),
		store:     store,
		publisher: events.Nop{},
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	projects, err := store.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	s.ledger.Load(projects)
	s.logger.Info("Ledger loaded", "projects", len(projects))
	return s, nil
}

// persist runs a store call and reports whether it succeeded. Failures are
// logged and counted, never returned.
func (s *LedgerService) persist(ctx context.Context, operation string, save func(context.Context) error) bool {
	if err := save(ctx); err != nil {
		s.logger.Error("Failed to persist change", "operation", operation, "error", err)
		if s.metrics != nil {
			s.metrics.PersistenceFailure(operation)
		}
		return false
	}
	return true
}

func (s *LedgerService) publish(ctx context.Context, kind events.Kind, projectID, entityID string) {
	if err := s.publisher.Publish(ctx, events.NewLedgerEvent(kind, projectID, entityID)); err != nil {
		s.logger.Warn("Failed to publish event", "kind", kind, "entity_id", entityID, "error", err)
	}
}

// ledgerError maps ledger errors to Connect codes.
func ledgerError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrProjectNotFound),
		errors.Is(err, ledger.ErrCategoryNotFound),
		errors.Is(err, ledger.ErrPaymentNotFound),
		errors.Is(err, ledger.ErrExpenseNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, ledger.ErrInvalidMode),
		errors.Is(err, ledger.ErrInvalidPaymentMethod),
		errors.Is(err, ledger.ErrInvalidExpenseType),
		errors.Is(err, ledger.ErrInvalidDate):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// ListProjects returns every project with its categories and payments.
func (s *LedgerService) ListProjects(ctx context.Context, req *connect.Request[pb.ListProjectsRequest]) (*connect.Response[pb.ListProjectsResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.ledger.Projects()
	out := make([]*pb.Project, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProtoProject(p))
	}
	return connect.NewResponse(&pb.ListProjectsResponse{Projects: out}), nil
}

// CreateProject creates an empty project.
func (s *LedgerService) CreateProject(ctx context.Context, req *connect.Request[pb.CreateProjectRequest]) (*connect.Response[pb.CreateProjectResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errNameRequired)
	}

	s.mu.Lock()
	project := s.ledger.AddProject(ledger.ProjectInput{
		Name:       name,
		ClientName: strings.TrimSpace(req.Msg.ClientName),
	})
	persisted := s.persist(ctx, "save_project", func(ctx context.Context) error {
		return s.store.SaveProject(ctx, &project)
	})
	s.mu.Unlock()

	s.publish(ctx, events.ProjectCreated, project.ID, project.ID)

	s.logger.Info("Project created", "project_id", project.ID, "name", project.Name, "persisted", persisted)
	return connect.NewResponse(&pb.CreateProjectResponse{
		Project:   toProtoProject(project),
		Persisted: persisted,
	}), nil
}

// DeleteProject removes a project with everything it owns.
func (s *LedgerService) DeleteProject(ctx context.Context, req *connect.Request[pb.DeleteProjectRequest]) (*connect.Response[pb.DeleteProjectResponse], error) {
	if !req.Msg.Confirm {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errConfirmRequired)
	}

	s.mu.Lock()
	id := req.Msg.ProjectId
	if err := s.ledger.DeleteProject(id); err != nil {
		s.mu.Unlock()
		return nil, ledgerError(err)
	}
	persisted := s.persist(ctx, "delete_project", func(ctx context.Context) error {
		return s.store.DeleteProject(ctx, id)
	})
	s.mu.Unlock()

	s.publish(ctx, events.ProjectDeleted, id, id)

	s.logger.Info("Project deleted", "project_id", id, "persisted", persisted)
	return connect.NewResponse(&pb.DeleteProjectResponse{Persisted: persisted}), nil
}

// CreateCategory adds a cost category to a project.
func (s *LedgerService) CreateCategory(ctx context.Context, req *connect.Request[pb.CreateCategoryRequest]) (*connect.Response[pb.CreateCategoryResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errNameRequired)
	}

	s.mu.Lock()
	projectID := req.Msg.ProjectId
	category, err := s.ledger.AddCategory(projectID, ledger.CategoryInput{
		Name:            name,
		Mode:            req.Msg.Mode,
		TotalBudget:     req.Msg.TotalBudget,
		TotalCost:       req.Msg.TotalCost,
		LaborBudget:     req.Msg.LaborBudget,
		LaborCost:       req.Msg.LaborCost,
		MaterialsBudget: req.Msg.MaterialsBudget,
	})
	if err != nil {
		s.mu.Unlock()
		return nil, ledgerError(err)
	}
	persisted := s.persist(ctx, "save_category", func(ctx context.Context) error {
		return s.store.SaveCategory(ctx, projectID, &category)
	})
	s.mu.Unlock()

	s.publish(ctx, events.CategoryCreated, projectID, category.ID)

	s.logger.Info("Category created",
		"project_id", projectID,
		"category_id", category.ID,
		"mode", category.Mode(),
		"persisted", persisted,
	)
	return connect.NewResponse(&pb.CreateCategoryResponse{
		Category:  toProtoCategory(category),
		Persisted: persisted,
	}), nil
}

// DeleteCategory removes a category and its expenses. Payments keep their
// allocations to it.
func (s *LedgerService) DeleteCategory(ctx context.Context, req *connect.Request[pb.DeleteCategoryRequest]) (*connect.Response[pb.DeleteCategoryResponse], error) {
	if !req.Msg.Confirm {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errConfirmRequired)
	}

	s.mu.Lock()
	id := req.Msg.CategoryId
	projectID, err := s.ledger.DeleteCategory(id)
	if err != nil {
		s.mu.Unlock()
		return nil, ledgerError(err)
	}
	persisted := s.persist(ctx, "delete_category", func(ctx context.Context) error {
		return s.store.DeleteCategory(ctx, id)
	})
	s.mu.Unlock()

	s.publish(ctx, events.CategoryDeleted, projectID, id)

	s.logger.Info("Category deleted", "project_id", projectID, "category_id", id, "persisted", persisted)
	return connect.NewResponse(&pb.DeleteCategoryResponse{Persisted: persisted}), nil
}

// RecordPayment records a client payment and its per-category allocations.
func (s *LedgerService) RecordPayment(ctx context.Context, req *connect.Request[pb.RecordPaymentRequest]) (*connect.Response[pb.RecordPaymentResponse], error) {
	if !models.ParseAmount(req.Msg.Amount).IsPositive() {
		return nil, connect.NewError(connect.CodeInvalidArgument, errAmountRequired)
	}

	allocations := make([]ledger.AllocationInput, len(req.Msg.Allocations))
	for i, a := range req.Msg.Allocations {
		allocations[i] = ledger.AllocationInput{
			CategoryID:      a.CategoryId,
			Amount:          a.Amount,
			LaborAmount:     a.LaborAmount,
			MaterialsAmount: a.MaterialsAmount,
		}
	}

	s.mu.Lock()
	projectID := req.Msg.ProjectId
	payment, err := s.ledger.RecordPayment(projectID, ledger.PaymentInput{
		Method:      req.Msg.PaymentMethod,
		Reference:   strings.TrimSpace(req.Msg.Reference),
		Amount:      req.Msg.Amount,
		Date:        req.Msg.Date,
		Notes:       req.Msg.Notes,
		Allocations: allocations,
	})
	if err != nil {
		s.mu.Unlock()
		return nil, ledgerError(err)
	}
	persisted := s.persist(ctx, "save_payment", func(ctx context.Context) error {
		return s.store.SavePayment(ctx, projectID, &payment)
	})
	out := toProtoPayment(payment, s.ledger.CategoryName)
	s.mu.Unlock()

	s.publish(ctx, events.PaymentRecorded, projectID, payment.ID)

	s.logger.Info("Payment recorded",
		"project_id", projectID,
		"payment_id", payment.ID,
		"amount", payment.Amount,
		"allocations", len(payment.Allocations),
		"persisted", persisted,
	)
	return connect.NewResponse(&pb.RecordPaymentResponse{
		Payment:   out,
		Persisted: persisted,
	}), nil
}

// DeletePayment removes a payment and every allocation it produced.
func (s *LedgerService) DeletePayment(ctx context.Context, req *connect.Request[pb.DeletePaymentRequest]) (*connect.Response[pb.DeletePaymentResponse], error) {
	if !req.Msg.Confirm {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errConfirmRequired)
	}

	s.mu.Lock()
	id := req.Msg.PaymentId
	projectID, err := s.ledger.DeletePayment(id)
	if err != nil {
		s.mu.Unlock()
		return nil, ledgerError(err)
	}
	persisted := s.persist(ctx, "delete_payment", func(ctx context.Context) error {
		return s.store.DeletePayment(ctx, id)
	})
	s.mu.Unlock()

	s.publish(ctx, events.PaymentDeleted, projectID, id)

	s.logger.Info("Payment deleted", "project_id", projectID, "payment_id", id, "persisted", persisted)
	return connect.NewResponse(&pb.DeletePaymentResponse{Persisted: persisted}), nil
}

// ListPayments returns a project's payments with category names resolved.
func (s *LedgerService) ListPayments(ctx context.Context, req *connect.Request[pb.ListPaymentsRequest]) (*connect.Response[pb.ListPaymentsResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.ledger.Project(req.Msg.ProjectId)
	if err != nil {
		return nil, ledgerError(err)
	}
	payments := make([]*pb.Payment, 0, len(project.Payments))
	for _, p := range project.Payments {
		payments = append(payments, toProtoPayment(p, project.CategoryName))
	}
	return connect.NewResponse(&pb.ListPaymentsResponse{Payments: payments}), nil
}

// AddExpense records a payment to a subcontractor or supplier.
func (s *LedgerService) AddExpense(ctx context.Context, req *connect.Request[pb.AddExpenseRequest]) (*connect.Response[pb.AddExpenseResponse], error) {
	if !models.ParseAmount(req.Msg.Amount).IsPositive() {
		return nil, connect.NewError(connect.CodeInvalidArgument, errAmountRequired)
	}

	s.mu.Lock()
	categoryID := req.Msg.CategoryId
	expense, err := s.ledger.AddExpense(categoryID, ledger.ExpenseInput{
		Amount:      req.Msg.Amount,
		Date:        req.Msg.Date,
		Description: strings.TrimSpace(req.Msg.Description),
		Type:        req.Msg.Type,
		Method:      req.Msg.PaymentMethod,
		Reference:   strings.TrimSpace(req.Msg.Reference),
	})
	if err != nil {
		s.mu.Unlock()
		return nil, ledgerError(err)
	}
	persisted := s.persist(ctx, "save_expense", func(ctx context.Context) error {
		return s.store.SaveExpense(ctx, categoryID, &expense)
	})
	projectID, _ := s.ledger.ProjectOf(categoryID)
	s.mu.Unlock()

	s.publish(ctx, events.ExpenseAdded, projectID, expense.ID)

	s.logger.Info("Expense added",
		"category_id", categoryID,
		"expense_id", expense.ID,
		"amount", expense.Amount,
		"persisted", persisted,
	)
	return connect.NewResponse(&pb.AddExpenseResponse{
		Expense:   toProtoExpense(expense),
		Persisted: persisted,
	}), nil
}

// DeleteExpense removes an expense.
func (s *LedgerService) DeleteExpense(ctx context.Context, req *connect.Request[pb.DeleteExpenseRequest]) (*connect.Response[pb.DeleteExpenseResponse], error) {
	s.mu.Lock()
	id := req.Msg.ExpenseId
	projectID, err := s.ledger.DeleteExpense(id)
	if err != nil {
		s.mu.Unlock()
		return nil, ledgerError(err)
	}
	persisted := s.persist(ctx, "delete_expense", func(ctx context.Context) error {
		return s.store.DeleteExpense(ctx, id)
	})
	s.mu.Unlock()

	s.publish(ctx, events.ExpenseDeleted, projectID, id)

	s.logger.Info("Expense deleted", "expense_id", id, "persisted", persisted)
	return connect.NewResponse(&pb.DeleteExpenseResponse{Persisted: persisted}), nil
}

// GetProjectSummary computes the per-category totals and the project rollup.
func (s *LedgerService) GetProjectSummary(ctx context.Context, req *connect.Request[pb.GetProjectSummaryRequest]) (*connect.Response[pb.GetProjectSummaryResponse], error) {
	s.mu.Lock()
	project, err := s.ledger.Project(req.Msg.ProjectId)
	s.mu.Unlock()
	if err != nil {
		return nil, ledgerError(err)
	}

	summary := calculator.ProjectTotals(project)
	s.logger.Debug("Project summary computed",
		"project_id", project.ID,
		"categories", len(summary.Categories),
		"red", summary.Health.Red,
	)
	return connect.NewResponse(&pb.GetProjectSummaryResponse{Summary: toProtoSummary(summary)}), nil
}
