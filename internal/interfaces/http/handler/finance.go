package handler

import (
	"strconv"
	"time"

	financeapp "github.com/artistai/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FinanceHandler handles the financial ledger API endpoints: accounts,
// categories, transactions, analytics, goals and budgets.
type FinanceHandler struct {
	BaseHandler
	accountService     *financeapp.AccountService
	categoryService    *financeapp.CategoryService
	transactionService *financeapp.TransactionService
	goalService        *financeapp.GoalService
	budgetService      *financeapp.BudgetService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(
	accountService *financeapp.AccountService,
	categoryService *financeapp.CategoryService,
	transactionService *financeapp.TransactionService,
	goalService *financeapp.GoalService,
	budgetService *financeapp.BudgetService,
) *FinanceHandler {
	return &FinanceHandler{
		accountService:     accountService,
		categoryService:    categoryService,
		transactionService: transactionService,
		goalService:        goalService,
		budgetService:      budgetService,
	}
}

// RegisterRoutes registers the finance routes
func (h *FinanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	finance := rg.Group("/financial")

	accounts := finance.Group("/accounts")
	accounts.POST("", h.CreateAccount)
	accounts.GET("", h.ListAccounts)
	accounts.GET("/:id", h.GetAccount)
	accounts.PUT("/:id", h.UpdateAccount)
	accounts.DELETE("/:id", h.DeleteAccount)

	categories := finance.Group("/categories")
	categories.POST("", h.CreateCategory)
	categories.GET("", h.ListCategories)
	categories.GET("/:id", h.GetCategory)
	categories.PUT("/:id", h.UpdateCategory)
	categories.DELETE("/:id", h.DeleteCategory)

	transactions := finance.Group("/transactions")
	transactions.POST("", h.CreateTransaction)
	transactions.GET("", h.ListTransactions)
	transactions.GET("/:id", h.GetTransaction)
	transactions.PUT("/:id", h.UpdateTransaction)
	transactions.DELETE("/:id", h.DeleteTransaction)

	analytics := finance.Group("/analytics")
	analytics.GET("/summary", h.Summary)
	analytics.GET("/by-category", h.CategorySummary)
	analytics.GET("/trends", h.MonthlyTrends)

	goals := finance.Group("/goals")
	goals.POST("", h.CreateGoal)
	goals.GET("", h.ListGoals)
	goals.GET("/:id", h.GetGoal)
	goals.PUT("/:id", h.UpdateGoal)
	goals.DELETE("/:id", h.DeleteGoal)

	budgets := finance.Group("/budgets")
	budgets.POST("", h.CreateBudget)
	budgets.GET("", h.ListBudgets)
	budgets.GET("/:id", h.GetBudget)
	budgets.PUT("/:id", h.UpdateBudget)
	budgets.DELETE("/:id", h.DeleteBudget)
}

// CreateAccount opens a financial account
func (h *FinanceHandler) CreateAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	var req financeapp.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	account, err := h.accountService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, account)
}

// ListAccounts returns the tenant's accounts
func (h *FinanceHandler) ListAccounts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	page, err := getPage(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	accounts, err := h.accountService.List(c.Request.Context(), userID, page)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, accounts)
}

// GetAccount returns a single account with its maintained balance
func (h *FinanceHandler) GetAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid account ID format")
		return
	}

	account, err := h.accountService.GetByID(c.Request.Context(), userID, accountID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, account)
}

// UpdateAccount applies a partial update to an account
func (h *FinanceHandler) UpdateAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid account ID format")
		return
	}

	var req financeapp.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	account, err := h.accountService.Update(c.Request.Context(), userID, accountID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, account)
}

// DeleteAccount removes an account
func (h *FinanceHandler) DeleteAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid account ID format")
		return
	}

	if err := h.accountService.Delete(c.Request.Context(), userID, accountID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateCategory adds a transaction category
func (h *FinanceHandler) CreateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	var req financeapp.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, category)
}

// ListCategories returns the tenant's categories, optionally filtered
// by transaction type.
func (h *FinanceHandler) ListCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	var categoryType *string
	if t := c.Query("type"); t != "" {
		categoryType = &t
	}

	categories, err := h.categoryService.List(c.Request.Context(), userID, categoryType)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, categories)
}

// GetCategory returns a single category
func (h *FinanceHandler) GetCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), userID, categoryID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, category)
}

// UpdateCategory applies a partial update to a category
func (h *FinanceHandler) UpdateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	var req financeapp.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), userID, categoryID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, category)
}

// DeleteCategory removes a category
func (h *FinanceHandler) DeleteCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), userID, categoryID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateTransaction posts a transaction to the ledger
func (h *FinanceHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	var req financeapp.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	transaction, err := h.transactionService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, transaction)
}

// ListTransactions returns ledger entries matching the filter
func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	var filter financeapp.TransactionListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := getPage(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	transactions, err := h.transactionService.List(c.Request.Context(), userID, filter, page)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, transactions)
}

// GetTransaction returns a single ledger entry
func (h *FinanceHandler) GetTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID format")
		return
	}

	transaction, err := h.transactionService.GetByID(c.Request.Context(), userID, transactionID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, transaction)
}

// UpdateTransaction amends a ledger entry, adjusting account balances
func (h *FinanceHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID format")
		return
	}

	var req financeapp.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	transaction, err := h.transactionService.Update(c.Request.Context(), userID, transactionID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, transaction)
}

// DeleteTransaction reverses and removes a ledger entry
func (h *FinanceHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID format")
		return
	}

	if err := h.transactionService.Delete(c.Request.Context(), userID, transactionID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Summary digests completed income and expenses for a period. Without
// start_date/end_date the current month is used.
func (h *FinanceHandler) Summary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	start, end, err := parsePeriod(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	summary, err := h.transactionService.Summary(c.Request.Context(), userID, start, end)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// CategorySummary breaks a period's completed activity down by category
func (h *FinanceHandler) CategorySummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	start, end, err := parsePeriod(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	summaries, err := h.transactionService.CategorySummary(c.Request.Context(), userID, start, end)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summaries)
}

// MonthlyTrends returns month-by-month income and expense totals
func (h *FinanceHandler) MonthlyTrends(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	months := 0
	if m := c.Query("months"); m != "" {
		months, err = strconv.Atoi(m)
		if err != nil {
			h.BadRequest(c, "Invalid months value")
			return
		}
	}

	trends, err := h.transactionService.MonthlyTrends(c.Request.Context(), userID, months)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, trends)
}

// CreateGoal sets a financial goal
func (h *FinanceHandler) CreateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	var req financeapp.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	goal, err := h.goalService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, goal)
}

// ListGoals returns the tenant's goals, optionally only active ones
func (h *FinanceHandler) ListGoals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	isActive, err := parseBoolQuery(c, "is_active")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	goals, err := h.goalService.List(c.Request.Context(), userID, isActive)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, goals)
}

// GetGoal returns a single goal
func (h *FinanceHandler) GetGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid goal ID format")
		return
	}

	goal, err := h.goalService.GetByID(c.Request.Context(), userID, goalID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, goal)
}

// UpdateGoal applies a partial update to a goal
func (h *FinanceHandler) UpdateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid goal ID format")
		return
	}

	var req financeapp.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	goal, err := h.goalService.Update(c.Request.Context(), userID, goalID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, goal)
}

// DeleteGoal removes a goal
func (h *FinanceHandler) DeleteGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid goal ID format")
		return
	}

	if err := h.goalService.Delete(c.Request.Context(), userID, goalID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateBudget sets a spending budget for a category
func (h *FinanceHandler) CreateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	var req financeapp.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	budget, err := h.budgetService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, budget)
}

// ListBudgets returns the tenant's budgets, optionally only active ones
func (h *FinanceHandler) ListBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	isActive, err := parseBoolQuery(c, "is_active")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	budgets, err := h.budgetService.List(c.Request.Context(), userID, isActive)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, budgets)
}

// GetBudget returns a single budget
func (h *FinanceHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid budget ID format")
		return
	}

	budget, err := h.budgetService.GetByID(c.Request.Context(), userID, budgetID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, budget)
}

// UpdateBudget applies a partial update to a budget
func (h *FinanceHandler) UpdateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid budget ID format")
		return
	}

	var req financeapp.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	budget, err := h.budgetService.Update(c.Request.Context(), userID, budgetID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, budget)
}

// DeleteBudget removes a budget
func (h *FinanceHandler) DeleteBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid budget ID format")
		return
	}

	if err := h.budgetService.Delete(c.Request.Context(), userID, budgetID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// parsePeriod reads optional start_date/end_date query parameters.
// Zero values are returned when absent so services apply their own
// period defaults.
func parsePeriod(c *gin.Context) (time.Time, time.Time, error) {
	var start, end time.Time
	if s := c.Query("start_date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return start, end, err
		}
		start = parsed
	}
	if e := c.Query("end_date"); e != "" {
		parsed, err := time.Parse("2006-01-02", e)
		if err != nil {
			return start, end, err
		}
		end = parsed
	}
	return start, end, nil
}

// parseBoolQuery reads an optional boolean query parameter
func parseBoolQuery(c *gin.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
