package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/ports"
)

// ExpenseHandler handles HTTP requests for expenses.
type ExpenseHandler struct {
	service ports.ExpenseService
}

func NewExpenseHandler(service ports.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

// List handles GET /api/expenses. Callers see their own expenses; admins see all.
func (h *ExpenseHandler) List(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	expenses, err := h.service.ListExpenses(c.Request().Context(), ident)
	if err != nil {
		return err
	}

	out := make([]expenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, toExpenseResponse(&expenses[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/expenses/:id.
func (h *ExpenseHandler) Get(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	expense, err := h.service.GetExpense(c.Request().Context(), ident, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toExpenseResponse(expense))
}

// Create handles POST /api/expenses. The expense is attributed to the caller.
func (h *ExpenseHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req expenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	expense, err := h.service.CreateExpense(c.Request().Context(), ident, toExpenseInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toExpenseResponse(expense))
}

// Update handles PUT /api/expenses/:id.
func (h *ExpenseHandler) Update(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req expenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	expense, err := h.service.UpdateExpense(c.Request().Context(), ident, c.Param("id"), toExpenseInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toExpenseResponse(expense))
}

// Delete handles DELETE /api/expenses/:id.
func (h *ExpenseHandler) Delete(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteExpense(c.Request().Context(), ident, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toExpenseInput(req expenseRequest) ports.ExpenseInput {
	return ports.ExpenseInput{
		Title:       req.Title,
		AmountCents: req.AmountCents,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
		GroupID:     req.GroupID,
	}
}

func toExpenseResponse(expense *domain.Expense) expenseResponse {
	return expenseResponse{
		ID:          expense.ID,
		Title:       expense.Title,
		AmountCents: expense.AmountCents,
		Category:    expense.Category,
		Description: expense.Description,
		Date:        expense.Date,
		UserID:      expense.UserID,
		GroupID:     expense.GroupID,
	}
}
