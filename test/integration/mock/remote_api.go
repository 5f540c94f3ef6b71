package mock

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/expense-tracker/web/internal/domain/valueobject"
	"github.com/expense-tracker/web/internal/integration/remote"
)

const (
	userIDKey     = "user_id"
	tokenLifetime = time.Hour
)

type failure struct {
	status  int
	message string
}

// RemoteAPI is an in-process stand-in for the remote expense API. It
// stores accounts, expenses and budgets in sqlite and speaks the envelope
// wire format.
type RemoteAPI struct {
	db     *Db
	clock  func() time.Time
	secret []byte
	server *httptest.Server

	mu       sync.Mutex
	failures map[string][]failure
	received map[string]int
}

// NewRemoteAPI creates the fake API over db. Tokens it issues expire one
// hour after clock's time.
func NewRemoteAPI(db *Db, clock func() time.Time) *RemoteAPI {
	return &RemoteAPI{
		db:       db,
		clock:    clock,
		secret:   []byte("integration-secret"),
		failures: map[string][]failure{},
		received: map[string]int{},
	}
}

// Start serves the API on a local listener.
func (a *RemoteAPI) Start() {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(a.record, a.injectFailures)

	auth := engine.Group("/api/auth")
	auth.POST("/login", a.login)
	auth.POST("/register", a.register)

	api := engine.Group("/api", a.authenticate)

	expenses := api.Group("/expenses")
	expenses.GET("", a.listExpenses)
	expenses.GET("/today", a.listTodayExpenses)
	expenses.GET("/date-range", a.listExpensesByDateRange)
	expenses.GET("/category/:category", a.listExpensesByCategory)
	expenses.GET("/:id", a.getExpense)
	expenses.POST("", a.createExpense)
	expenses.PUT("/:id", a.updateExpense)
	expenses.DELETE("/:id", a.deleteExpense)

	budgets := api.Group("/budgets")
	budgets.GET("", a.listBudgets)
	budgets.GET("/current-month", a.listCurrentMonthBudgets)
	budgets.GET("/category/:category", a.getBudgetByCategory)
	budgets.GET("/:year/:month", a.listBudgetsByPeriod)
	budgets.POST("", a.createBudget)
	budgets.PUT("/:id", a.updateBudget)
	budgets.DELETE("/:id", a.deleteBudget)

	a.server = httptest.NewServer(engine)
}

// Close stops the listener.
func (a *RemoteAPI) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

// GetUrl returns the base URL of the running API.
func (a *RemoteAPI) GetUrl() string {
	return a.server.URL
}

// Reset forgets injected failures and received requests.
func (a *RemoteAPI) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failures = map[string][]failure{}
	a.received = map[string]int{}
}

// FailNext makes the next request to method+path answer status with an
// error envelope carrying message.
func (a *RemoteAPI) FailNext(method, path string, status int, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	key := method + " " + path
	a.failures[key] = append(a.failures[key], failure{status: status, message: message})
}

// Received returns how many requests reached method+path.
func (a *RemoteAPI) Received(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.received[method+" "+path]
}

// CreateUser stores an account with a hashed password.
func (a *RemoteAPI) CreateUser(username, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	user := &User{
		Username:     username,
		Email:        username + "@example.com",
		Role:         "USER",
		PasswordHash: string(hash),
	}
	if err := a.db.DbConn.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindUser loads an account by username.
func (a *RemoteAPI) FindUser(username string) (*User, error) {
	var user User
	if err := a.db.DbConn.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateExpense stores an expense directly.
func (a *RemoteAPI) CreateExpense(expense *Expense) error {
	return a.db.DbConn.Create(expense).Error
}

// CreateBudget stores an allocation directly.
func (a *RemoteAPI) CreateBudget(budget *Budget) error {
	return a.db.DbConn.Create(budget).Error
}

func (a *RemoteAPI) record(c *gin.Context) {
	a.mu.Lock()
	a.received[c.Request.Method+" "+c.Request.URL.Path]++
	a.mu.Unlock()
	c.Next()
}

func (a *RemoteAPI) injectFailures(c *gin.Context) {
	key := c.Request.Method + " " + c.Request.URL.Path

	a.mu.Lock()
	queued := a.failures[key]
	var next *failure
	if len(queued) > 0 {
		next = &queued[0]
		a.failures[key] = queued[1:]
	}
	a.mu.Unlock()

	if next != nil {
		fail(c, next.status, next.message)
		return
	}
	c.Next()
}

func (a *RemoteAPI) authenticate(c *gin.Context) {
	header := c.GetHeader("Authorization")
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		fail(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(a.clock))
	if err != nil {
		fail(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		fail(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

func (a *RemoteAPI) login(c *gin.Context) {
	var request remote.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := a.FindUser(request.Username)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)) != nil {
		fail(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	now := a.clock()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(user.ID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	model := userModel(user)
	model.Token = token
	succeed(c, http.StatusOK, "Login successful", model)
}

func (a *RemoteAPI) register(c *gin.Context) {
	var request remote.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := a.FindUser(request.Username); err == nil {
		fail(c, http.StatusBadRequest, "Username is already taken")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.MinCost)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to register user")
		return
	}
	user := &User{
		Username:     request.Username,
		Email:        request.Email,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Role:         "USER",
		PasswordHash: string(hash),
	}
	if err := a.db.DbConn.Create(user).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	succeed(c, http.StatusCreated, "User registered successfully", userModel(user))
}

func (a *RemoteAPI) listExpenses(c *gin.Context) {
	a.respondExpenses(c, a.expenses(c).Order("date DESC"))
}

func (a *RemoteAPI) listTodayExpenses(c *gin.Context) {
	now := a.clock().In(time.Local)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	a.respondExpensesBetween(c, start, start.AddDate(0, 0, 1).Add(-time.Nanosecond))
}

func (a *RemoteAPI) listExpensesByDateRange(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("startDate"))
	if err != nil {
		fail(c, http.StatusBadRequest, "startDate must be an RFC 3339 timestamp")
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("endDate"))
	if err != nil {
		fail(c, http.StatusBadRequest, "endDate must be an RFC 3339 timestamp")
		return
	}
	a.respondExpensesBetween(c, start, end)
}

// respondExpensesBetween filters in memory since sqlite compares stored
// timestamps as text.
func (a *RemoteAPI) respondExpensesBetween(c *gin.Context, start, end time.Time) {
	var stored []Expense
	if err := a.expenses(c).Find(&stored).Error; err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	models := make([]remote.ExpenseModel, 0, len(stored))
	for i := range stored {
		if stored[i].Date.Before(start) || stored[i].Date.After(end) {
			continue
		}
		models = append(models, expenseModel(&stored[i]))
	}
	succeed(c, http.StatusOK, "", models)
}

func (a *RemoteAPI) listExpensesByCategory(c *gin.Context) {
	a.respondExpenses(c, a.expenses(c).Where("category = ?", c.Param("category")))
}

func (a *RemoteAPI) getExpense(c *gin.Context) {
	expense, ok := a.findExpense(c)
	if !ok {
		return
	}
	succeed(c, http.StatusOK, "", expenseModel(expense))
}

func (a *RemoteAPI) createExpense(c *gin.Context) {
	expense, ok := a.bindExpense(c)
	if !ok {
		return
	}
	if err := a.db.DbConn.Create(expense).Error; err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	succeed(c, http.StatusCreated, "Expense created", expenseModel(expense))
}

func (a *RemoteAPI) updateExpense(c *gin.Context) {
	existing, ok := a.findExpense(c)
	if !ok {
		return
	}
	expense, ok := a.bindExpense(c)
	if !ok {
		return
	}
	expense.ID = existing.ID
	if err := a.db.DbConn.Save(expense).Error; err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	succeed(c, http.StatusOK, "Expense updated", expenseModel(expense))
}

func (a *RemoteAPI) deleteExpense(c *gin.Context) {
	expense, ok := a.findExpense(c)
	if !ok {
		return
	}
	if err := a.db.DbConn.Delete(expense).Error; err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	succeed[any](c, http.StatusOK, "Expense deleted", nil)
}

func (a *RemoteAPI) listBudgets(c *gin.Context) {
	a.respondBudgets(c, a.budgets(c))
}

func (a *RemoteAPI) listCurrentMonthBudgets(c *gin.Context) {
	period := valueobject.PeriodOf(a.clock().In(time.Local))
	a.respondBudgets(c, a.budgets(c).Where("month_year = ?", period.String()))
}

func (a *RemoteAPI) getBudgetByCategory(c *gin.Context) {
	period := valueobject.PeriodOf(a.clock().In(time.Local))
	var budget Budget
	err := a.budgets(c).
		Where("month_year = ? AND category = ?", period.String(), c.Param("category")).
		First(&budget).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, "Budget not found")
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	succeed(c, http.StatusOK, "", budgetModel(&budget))
}

func (a *RemoteAPI) listBudgetsByPeriod(c *gin.Context) {
	year, yearErr := strconv.Atoi(c.Param("year"))
	month, monthErr := strconv.Atoi(c.Param("month"))
	period := valueobject.NewPeriod(year, time.Month(month))
	if yearErr != nil || monthErr != nil || !period.IsValid() {
		fail(c, http.StatusBadRequest, "Invalid year or month")
		return
	}
	a.respondBudgets(c, a.budgets(c).Where("month_year = ?", period.String()))
}

func (a *RemoteAPI) createBudget(c *gin.Context) {
	budget, ok := a.bindBudget(c)
	if !ok {
		return
	}
	if budget.Category == nil {
		var count int64
		a.budgets(c).Where("month_year = ? AND category IS NULL", budget.MonthYear).Count(&count)
		if count > 0 {
			fail(c, http.StatusBadRequest, "A total budget already exists for this month")
			return
		}
	}
	if err := a.db.DbConn.Create(budget).Error; err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	succeed(c, http.StatusCreated, "Budget created", budgetModel(budget))
}

func (a *RemoteAPI) updateBudget(c *gin.Context) {
	existing, ok := a.findBudget(c)
	if !ok {
		return
	}
	budget, ok := a.bindBudget(c)
	if !ok {
		return
	}
	budget.ID = existing.ID
	if err := a.db.DbConn.Save(budget).Error; err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	succeed(c, http.StatusOK, "Budget updated", budgetModel(budget))
}

func (a *RemoteAPI) deleteBudget(c *gin.Context) {
	budget, ok := a.findBudget(c)
	if !ok {
		return
	}
	if err := a.db.DbConn.Delete(budget).Error; err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	succeed[any](c, http.StatusOK, "Budget deleted", nil)
}

func (a *RemoteAPI) expenses(c *gin.Context) *gorm.DB {
	return a.db.DbConn.Model(&Expense{}).Where("user_id = ?", c.GetInt64(userIDKey))
}

func (a *RemoteAPI) budgets(c *gin.Context) *gorm.DB {
	return a.db.DbConn.Model(&Budget{}).Where("user_id = ?", c.GetInt64(userIDKey))
}

func (a *RemoteAPI) respondExpenses(c *gin.Context, query *gorm.DB) {
	var stored []Expense
	if err := query.Find(&stored).Error; err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	models := make([]remote.ExpenseModel, 0, len(stored))
	for i := range stored {
		models = append(models, expenseModel(&stored[i]))
	}
	succeed(c, http.StatusOK, "", models)
}

func (a *RemoteAPI) respondBudgets(c *gin.Context, query *gorm.DB) {
	var stored []Budget
	if err := query.Find(&stored).Error; err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	models := make([]remote.BudgetModel, 0, len(stored))
	for i := range stored {
		models = append(models, budgetModel(&stored[i]))
	}
	succeed(c, http.StatusOK, "", models)
}

func (a *RemoteAPI) findExpense(c *gin.Context) (*Expense, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid expense id")
		return nil, false
	}
	var expense Expense
	err = a.expenses(c).Where("id = ?", id).First(&expense).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, "Expense not found")
		return nil, false
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return &expense, true
}

func (a *RemoteAPI) findBudget(c *gin.Context) (*Budget, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid budget id")
		return nil, false
	}
	var budget Budget
	err = a.budgets(c).Where("id = ?", id).First(&budget).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, "Budget not found")
		return nil, false
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return &budget, true
}

func (a *RemoteAPI) bindExpense(c *gin.Context) (*Expense, bool) {
	var model remote.ExpenseModel
	if err := c.ShouldBindJSON(&model); err != nil {
		fail(c, http.StatusBadRequest, "Invalid expense payload")
		return nil, false
	}
	amount, err := decimal.NewFromString(model.Amount.String())
	if err != nil || !amount.IsPositive() {
		fail(c, http.StatusBadRequest, "Amount must be greater than zero")
		return nil, false
	}
	if strings.TrimSpace(model.Description) == "" {
		fail(c, http.StatusBadRequest, "Description is required")
		return nil, false
	}
	if model.Date.IsZero() {
		fail(c, http.StatusBadRequest, "Date is required")
		return nil, false
	}
	return &Expense{
		UserID:      c.GetInt64(userIDKey),
		Amount:      amount.String(),
		Description: model.Description,
		Category:    model.Category,
		Date:        model.Date.Time,
		Tags:        strings.Join(model.Tags, ","),
	}, true
}

func (a *RemoteAPI) bindBudget(c *gin.Context) (*Budget, bool) {
	var model remote.BudgetModel
	if err := c.ShouldBindJSON(&model); err != nil {
		fail(c, http.StatusBadRequest, "Invalid budget payload")
		return nil, false
	}
	amount, err := decimal.NewFromString(model.Amount.String())
	if err != nil || amount.IsNegative() {
		fail(c, http.StatusBadRequest, "Amount cannot be negative")
		return nil, false
	}
	if !model.MonthYear.IsValid() {
		fail(c, http.StatusBadRequest, "monthYear is required")
		return nil, false
	}
	budget := &Budget{
		UserID:    c.GetInt64(userIDKey),
		MonthYear: model.MonthYear.String(),
		Amount:    amount.String(),
	}
	if model.Category != nil && *model.Category != "" {
		category := *model.Category
		budget.Category = &category
	}
	return budget, true
}

func userModel(user *User) remote.UserModel {
	id := user.ID
	return remote.UserModel{
		ID:        &id,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		Roles:     []string{user.Role},
	}
}

func expenseModel(expense *Expense) remote.ExpenseModel {
	id := expense.ID
	return remote.ExpenseModel{
		ID:          &id,
		Amount:      json.Number(expense.Amount),
		Description: expense.Description,
		Category:    expense.Category,
		Date:        remote.Date{Time: expense.Date.In(time.Local)},
		UserID:      expense.UserID,
		Tags:        expense.TagList(),
	}
}

func budgetModel(budget *Budget) remote.BudgetModel {
	id := budget.ID
	period, _ := valueobject.ParsePeriod(budget.MonthYear)
	return remote.BudgetModel{
		ID:        &id,
		UserID:    budget.UserID,
		MonthYear: period,
		Amount:    json.Number(budget.Amount),
		Category:  budget.Category,
	}
}

func succeed[T any](c *gin.Context, status int, message string, data T) {
	c.JSON(status, remote.Envelope[T]{
		Result:  remote.ResultSuccess,
		Message: message,
		Data:    data,
	})
}

func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, remote.Envelope[any]{
		Result:  remote.ResultError,
		Message: message,
	})
}

// ExpenseDate parses a calendar date in the local time zone.
func ExpenseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(remote.DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
