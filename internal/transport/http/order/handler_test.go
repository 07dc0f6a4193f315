package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Additional-Code/orderdesk/internal/config"
	"github.com/Additional-Code/orderdesk/internal/entity"
	repo "github.com/Additional-Code/orderdesk/internal/repository/order"
	service "github.com/Additional-Code/orderdesk/internal/service/order"
)

type memoryRepo struct {
	orders    map[int64]*entity.Order
	nextID    int64
	gotFilter repo.Filter
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{orders: map[int64]*entity.Order{}, nextID: 1}
}

func (m *memoryRepo) Create(_ context.Context, order *entity.Order) error {
	order.ID = m.nextID
	m.nextID++
	cp := *order
	m.orders[order.ID] = &cp
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return order, nil
}

func (m *memoryRepo) List(_ context.Context, f repo.Filter) ([]entity.Order, int, error) {
	m.gotFilter = f
	matched := make([]entity.Order, 0, len(m.orders))
	for _, order := range m.orders {
		if f.Status != "" && order.Status != f.Status {
			continue
		}
		if f.MinAmount != nil && order.Amount < *f.MinAmount {
			continue
		}
		if f.MaxAmount != nil && order.Amount > *f.MaxAmount {
			continue
		}
		if f.StartDate != "" && order.OrderDate < f.StartDate {
			continue
		}
		if f.EndDate != "" && order.OrderDate > f.EndDate {
			continue
		}
		matched = append(matched, *order)
	}
	total := len(matched)
	offset := f.Offset()
	if offset >= total {
		return []entity.Order{}, total, nil
	}
	end := offset + f.Limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (m *memoryRepo) Update(_ context.Context, id int64, assignments []repo.Assignment) error {
	order, ok := m.orders[id]
	if !ok {
		return repo.ErrNotFound
	}
	for _, a := range assignments {
		switch a.Column {
		case "customer_name":
			order.CustomerName = a.Value.(string)
		case "product":
			order.Product = a.Value.(string)
		case "quantity":
			order.Quantity = a.Value.(int)
		case "amount":
			order.Amount = a.Value.(float64)
		case "status":
			order.Status = a.Value.(string)
		case "order_date":
			order.OrderDate = a.Value.(string)
		}
	}
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.orders[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.orders, id)
	return nil
}

func newTestServer(t *testing.T) (*echo.Echo, *memoryRepo) {
	t.Helper()
	r := newMemoryRepo()
	svc := service.NewService(service.Params{
		Repository: r,
		Config:     config.Config{},
		Logger:     zap.NewNop(),
	})
	e := echo.New()
	Register(e, NewHandler(svc))
	return e, r
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const aliceOrder = `{"customer_name":"Alice","product":"Mouse","quantity":1,"amount":50.00,"status":"pending","order_date":"2026-01-01"}`

func TestCreateOrder(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/orders", aliceOrder)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "order created", body["message"])

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Alice", data["customer_name"])
	assert.Equal(t, "Mouse", data["product"])
	assert.Equal(t, float64(50), data["amount"])
	assert.Equal(t, "pending", data["status"])
	assert.NotEmpty(t, data["created_at"])

	// A subsequent read returns the same fields.
	rec = doJSON(e, http.MethodGet, "/orders/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data = decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Alice", data["customer_name"])
	assert.Equal(t, "2026-01-01", data["order_date"])
}

func TestCreateOrder_MissingFields(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/orders", `{"customer_name":"Alice"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "MissingFields", body["error"])

	fields := body["details"].(map[string]any)["fields"].([]any)
	assert.Len(t, fields, 5)
}

func TestCreateOrder_InvalidStatus(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/orders",
		`{"customer_name":"Alice","product":"Mouse","quantity":1,"amount":50,"status":"shipped","order_date":"2026-01-01"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidStatus", decode(t, rec)["error"])
}

func TestCreateOrder_InvalidMagnitude(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/orders",
		`{"customer_name":"Alice","product":"Mouse","quantity":-2,"amount":50,"status":"pending","order_date":"2026-01-01"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidMagnitude", decode(t, rec)["error"])
}

func TestListOrders_FilterScenario(t *testing.T) {
	e, r := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/orders", aliceOrder)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/orders?status=pending&minAmount=10&maxAmount=100", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Alice", data[0].(map[string]any)["customer_name"])

	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, float64(1), pagination["totalOrders"])
	assert.Equal(t, float64(1), pagination["totalPages"])
	assert.Equal(t, false, pagination["hasNextPage"])
	assert.Equal(t, false, pagination["hasPreviousPage"])

	assert.Equal(t, "pending", r.gotFilter.Status)
	require.NotNil(t, r.gotFilter.MinAmount)
	assert.Equal(t, 10.0, *r.gotFilter.MinAmount)
}

func TestListOrders_EmptyTable(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Empty(t, body["data"])
	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, float64(0), pagination["totalOrders"])
	assert.Equal(t, float64(0), pagination["totalPages"])
	assert.Equal(t, false, pagination["hasNextPage"])
	assert.Equal(t, false, pagination["hasPreviousPage"])
}

func TestListOrders_InvalidPagination(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/orders?page=0", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidPagination", decode(t, rec)["error"])

	rec = doJSON(e, http.MethodGet, "/orders?limit=500", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidPagination", decode(t, rec)["error"])
}

func TestListOrders_InvalidFilters(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/orders?status=shipped", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidStatusFilter", decode(t, rec)["error"])

	rec = doJSON(e, http.MethodGet, "/orders?minAmount=lots", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidAmountFilter", decode(t, rec)["error"])
}

func TestGetOrder_InvalidID(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/orders/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidID", decode(t, rec)["error"])
}

func TestGetOrder_NotFound(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/orders/99", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NotFound", decode(t, rec)["error"])
}

func TestUpdateOrder_StatusScenario(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/orders", aliceOrder)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPut, "/orders/1", `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "order updated", body["message"])
	assert.Equal(t, float64(1), body["id"])

	rec = doJSON(e, http.MethodGet, "/orders/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "completed", data["status"])
	assert.Equal(t, "Alice", data["customer_name"])
}

func TestUpdateOrder_NoFields(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/orders", aliceOrder)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPut, "/orders/1", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "NoFieldsToUpdate", decode(t, rec)["error"])
}

func TestUpdateOrder_SuppliedZeroQuantity(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/orders", aliceOrder)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPut, "/orders/1", `{"quantity":0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidMagnitude", decode(t, rec)["error"])
}

func TestUpdateOrder_NotFound(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPut, "/orders/99", `{"status":"completed"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NotFound", decode(t, rec)["error"])
}

func TestDeleteOrder_RepeatedDelete(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/orders", aliceOrder)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/orders/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "order deleted", body["message"])
	assert.Equal(t, float64(1), body["id"])

	rec = doJSON(e, http.MethodDelete, "/orders/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NotFound", decode(t, rec)["error"])

	rec = doJSON(e, http.MethodDelete, "/orders/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
