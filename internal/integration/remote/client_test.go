package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
	"github.com/expense-tracker/web/internal/domain/valueobject"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newServer(t *testing.T, register func(r *gin.Engine)) *Client {
	t.Helper()
	r := gin.New()
	register(r)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second)
}

func success(data any) gin.H {
	return gin.H{"result": ResultSuccess, "message": "", "data": data}
}

func TestExpenseClient_List(t *testing.T) {
	var gotAuth string
	client := newServer(t, func(r *gin.Engine) {
		r.GET("/api/expenses", func(c *gin.Context) {
			gotAuth = c.GetHeader("Authorization")
			c.JSON(http.StatusOK, success([]gin.H{
				{"id": 1, "amount": 45.99, "description": "Grocery shopping", "category": "FOOD", "date": "2024-06-19", "userId": 7},
				{"id": 2, "amount": "1200.00", "description": "Rent", "category": "Housing", "date": "2024-06-14T09:30:00Z", "userId": 7},
			}))
		})
	})

	ctx := adapter.ContextWithAccessToken(context.Background(), "abc")
	records, err := NewExpenseClient(client).List(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc", gotAuth)
	require.Len(t, records, 2)
	assert.Equal(t, int64(1), *records[0].ID)
	assert.True(t, records[0].Amount.Equal(decimal.RequireFromString("45.99")))
	assert.Equal(t, entity.CategoryFood, records[0].Category)
	assert.Equal(t, 19, records[0].Date.Day())
	assert.True(t, records[1].Amount.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, entity.CategoryHousing, records[1].Category)
}

func TestExpenseClient_DateRangeQuery(t *testing.T) {
	var start, end string
	client := newServer(t, func(r *gin.Engine) {
		r.GET("/api/expenses/date-range", func(c *gin.Context) {
			start = c.Query("startDate")
			end = c.Query("endDate")
			c.JSON(http.StatusOK, success([]gin.H{}))
		})
	})

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)
	records, err := NewExpenseClient(client).ListByDateRange(context.Background(), from, to)
	require.NoError(t, err)

	assert.Empty(t, records)
	assert.Equal(t, "2024-06-01T00:00:00Z", start)
	assert.Equal(t, "2024-06-30T23:59:59Z", end)
}

func TestExpenseClient_CreateSendsWireModel(t *testing.T) {
	var body map[string]any
	client := newServer(t, func(r *gin.Engine) {
		r.POST("/api/expenses", func(c *gin.Context) {
			assert.NoError(t, c.ShouldBindJSON(&body))
			body["id"] = 42
			c.JSON(http.StatusCreated, success(body))
		})
	})

	record := entity.NewExpenseRecord(7, decimal.RequireFromString("25.50"), "Gas", entity.CategoryTransportation,
		time.Date(2024, 6, 18, 0, 0, 0, 0, time.Local))
	created, err := NewExpenseClient(client).Create(context.Background(), record)
	require.NoError(t, err)

	assert.Equal(t, 25.5, body["amount"])
	assert.Equal(t, "Transportation", body["category"])
	assert.Equal(t, "2024-06-18", body["date"])
	assert.Equal(t, int64(42), *created.ID)
}

func TestClient_Errors(t *testing.T) {
	client := newServer(t, func(r *gin.Engine) {
		r.GET("/api/expenses", func(c *gin.Context) {
			c.JSON(http.StatusUnauthorized, gin.H{"result": ResultError, "message": "Token expired"})
		})
		r.GET("/api/expenses/today", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"result": ResultError, "message": "Something went wrong on our side"})
		})
		r.GET("/api/expenses/5", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"result": ResultError, "message": "Expense not found"})
		})
		r.GET("/api/budgets", func(c *gin.Context) {
			c.String(http.StatusOK, "<html>")
		})
	})
	expenses := NewExpenseClient(client)

	t.Run("401 is the authentication failure", func(t *testing.T) {
		_, err := expenses.List(context.Background())
		require.ErrorIs(t, err, domainerror.ErrRemoteUnauthorized)
	})

	t.Run("error envelope message is kept verbatim", func(t *testing.T) {
		_, err := expenses.ListToday(context.Background())
		require.ErrorIs(t, err, domainerror.ErrRemoteRejected)

		var remoteErr *domainerror.RemoteError
		require.True(t, errors.As(err, &remoteErr))
		assert.Equal(t, "Something went wrong on our side", remoteErr.UserMessage())
	})

	t.Run("404 maps to not found", func(t *testing.T) {
		_, err := expenses.Get(context.Background(), 5)
		require.ErrorIs(t, err, domainerror.ErrExpenseNotFound)
		assert.True(t, IsNotFound(err))
	})

	t.Run("malformed body", func(t *testing.T) {
		_, err := NewBudgetClient(client).List(context.Background())
		require.ErrorIs(t, err, domainerror.ErrRemoteMalformed)
	})

	t.Run("unreachable server", func(t *testing.T) {
		dead := NewClient("http://127.0.0.1:1", time.Second)
		_, err := NewExpenseClient(dead).List(context.Background())
		require.ErrorIs(t, err, domainerror.ErrRemoteUnavailable)

		var remoteErr *domainerror.RemoteError
		require.True(t, errors.As(err, &remoteErr))
		assert.Equal(t, "An error occurred. Please try again.", remoteErr.UserMessage())
	})
}

func TestBudgetClient_ListByPeriodAndSave(t *testing.T) {
	var posted BudgetModel
	client := newServer(t, func(r *gin.Engine) {
		r.GET("/api/budgets/:year/:month", func(c *gin.Context) {
			assert.Equal(t, "2024", c.Param("year"))
			assert.Equal(t, "3", c.Param("month"))
			c.JSON(http.StatusOK, success([]gin.H{
				{"id": 1, "userId": 7, "monthYear": "2024-03", "amount": 2000, "category": nil},
				{"id": 2, "userId": 7, "monthYear": "2024-03-01", "amount": 500, "category": "FOOD"},
			}))
		})
		r.POST("/api/budgets", func(c *gin.Context) {
			assert.NoError(t, json.NewDecoder(c.Request.Body).Decode(&posted))
			id := int64(3)
			posted.ID = &id
			c.JSON(http.StatusOK, success(posted))
		})
	})
	budgets := NewBudgetClient(client)
	period := valueobject.NewPeriod(2024, time.March)

	allocations, err := budgets.ListByPeriod(context.Background(), period)
	require.NoError(t, err)
	require.Len(t, allocations, 2)
	assert.True(t, allocations[0].IsTotal())
	assert.Equal(t, period, allocations[1].Period)
	assert.Equal(t, entity.CategoryFood, *allocations[1].Category)

	created, err := budgets.Create(context.Background(), entity.NewTotalBudget(7, period, decimal.NewFromInt(1500)))
	require.NoError(t, err)
	assert.Nil(t, posted.Category)
	assert.Equal(t, "2024-03", posted.MonthYear.String())
	assert.Equal(t, int64(3), *created.ID)
	assert.True(t, created.IsTotal())
}

func TestAuthClient_Login(t *testing.T) {
	client := newServer(t, func(r *gin.Engine) {
		r.POST("/api/auth/login", func(c *gin.Context) {
			var req LoginRequest
			assert.NoError(t, c.ShouldBindJSON(&req))
			if req.Password != "secret" {
				c.JSON(http.StatusUnauthorized, gin.H{"result": ResultError, "message": "Invalid username or password"})
				return
			}
			c.JSON(http.StatusOK, success(gin.H{
				"id": 7, "username": req.Username, "email": "alice@example.com",
				"roles": []string{"ROLE_USER"}, "token": "jwt-token",
			}))
		})
	})
	auth := NewAuthClient(client)

	user, err := auth.Login(context.Background(), adapter.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "ROLE_USER", user.Role)
	assert.Equal(t, "jwt-token", user.Token)

	_, err = auth.Login(context.Background(), adapter.Credentials{Username: "alice", Password: "nope"})
	require.ErrorIs(t, err, domainerror.ErrRemoteUnauthorized)
}
