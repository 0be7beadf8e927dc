package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/fixhive/fixhive/internal/domain/errors"
	"github.com/fixhive/fixhive/internal/domain/model"
	"github.com/fixhive/fixhive/internal/server/http/dto"
	"github.com/fixhive/fixhive/internal/server/http/middleware"
	testhelpers "github.com/fixhive/fixhive/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asSubject(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.SubjectIDContextKey, id)
	}
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func TestCurrentSubjectID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentSubjectID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.SubjectIDContextKey, int64(42))
	if got := CurrentSubjectID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.CreateOrderRequest{
		Services:   []dto.OrderItemPayload{{Title: "Cleaning", Quantity: 1}},
		TotalPrice: decimal.NewFromInt(100),
	})
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{CreateFn: func(_ context.Context, customerID int64, items []model.OrderItem, total decimal.Decimal) (*model.Order, error) {
		if customerID != 5 || len(items) != 1 || !total.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("unexpected arguments: %d %v %s", customerID, items, total)
		}
		return &model.Order{ID: 1, CustomerID: customerID, Items: items, TotalAmount: total, Status: model.OrderStatusConfirmed}, nil
	}})

	resp := performRequest(t, http.MethodPost, "/orders", handler.Create, asSubject(5), body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var result dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Status != string(model.OrderStatusConfirmed) {
		t.Fatalf("unexpected status %s", result.Status)
	}
}

func TestOrderHandlerCreateFailures(t *testing.T) {
	validBody, _ := json.Marshal(dto.CreateOrderRequest{TotalPrice: decimal.NewFromInt(-5)})
	tests := []struct {
		name   string
		facade testhelpers.OrderFacadeStub
		body   []byte
		status int
	}{
		{
			name:   "malformed body",
			body:   []byte("{"),
			status: http.StatusBadRequest,
		},
		{
			name: "negative total",
			facade: testhelpers.OrderFacadeStub{CreateFn: func(context.Context, int64, []model.OrderItem, decimal.Decimal) (*model.Order, error) {
				return nil, domainErrors.ErrInvalidAmount
			}},
			body:   validBody,
			status: http.StatusBadRequest,
		},
		{
			name: "unknown customer",
			facade: testhelpers.OrderFacadeStub{CreateFn: func(context.Context, int64, []model.OrderItem, decimal.Decimal) (*model.Order, error) {
				return nil, domainErrors.ErrNotFound
			}},
			body:   validBody,
			status: http.StatusNotFound,
		},
		{
			name: "internal error",
			facade: testhelpers.OrderFacadeStub{CreateFn: func(context.Context, int64, []model.OrderItem, decimal.Decimal) (*model.Order, error) {
				return nil, errors.New("boom")
			}},
			body:   validBody,
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(tt.facade).Create, asSubject(5), tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerPlaceFailures(t *testing.T) {
	body, _ := json.Marshal(dto.PlaceOrderRequest{TotalAmount: decimal.NewFromInt(10)})
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"no items", domainErrors.ErrNoServiceItems, http.StatusBadRequest},
		{"missing address", domainErrors.ErrMissingAddress, http.StatusBadRequest},
		{"negative total", domainErrors.ErrInvalidAmount, http.StatusBadRequest},
		{"unknown customer", domainErrors.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewOrderHandler(testhelpers.OrderFacadeStub{PlaceFn: func(context.Context, int64, []model.OrderItem, decimal.Decimal, model.Address) (*model.Order, error) {
				return nil, tt.err
			}})
			resp := performRequest(t, http.MethodPost, "/orders/place", handler.Place, asSubject(5), body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerPlaceSuccess(t *testing.T) {
	body, _ := json.Marshal(dto.PlaceOrderRequest{
		Items:       []dto.OrderItemPayload{{Title: "Plumbing", Quantity: 2}},
		TotalAmount: decimal.NewFromInt(250),
		Address: dto.AddressPayload{
			HouseNumber: "12", Street: "Main St", AddressType: "Home",
			FullAddress: "12 Main St", TimeSlot: "10:00-12:00",
		},
	})
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{PlaceFn: func(_ context.Context, customerID int64, items []model.OrderItem, total decimal.Decimal, address model.Address) (*model.Order, error) {
		if address.FullAddress != "12 Main St" || address.TimeSlot != "10:00-12:00" {
			t.Fatalf("unexpected address %+v", address)
		}
		if address.Type != model.AddressTypeHome {
			t.Fatalf("unexpected address type %s", address.Type)
		}
		return &model.Order{ID: 2, CustomerID: customerID, Items: items, TotalAmount: total, Address: address, Status: model.OrderStatusConfirmed}, nil
	}})

	resp := performRequest(t, http.MethodPost, "/orders/place", handler.Place, asSubject(5), body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
}

func TestOrderHandlerCancel(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		err    error
		status int
	}{
		{"success", "/orders/10", nil, http.StatusOK},
		{"bad id", "/orders/abc", nil, http.StatusBadRequest},
		{"not found", "/orders/99", domainErrors.ErrNotFound, http.StatusNotFound},
		{"foreign order", "/orders/10", domainErrors.ErrNotOrderOwner, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewOrderHandler(testhelpers.OrderFacadeStub{CancelFn: func(context.Context, int64, int64) error {
				return tt.err
			}})
			resp := performParamRequest(http.MethodDelete, "/orders/:id", tt.path, handler.Cancel, asSubject(5), nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerListings(t *testing.T) {
	partnerID := int64(7)
	orders := []model.Order{{ID: 1, CustomerID: 5, AssignedPartner: &partnerID, Customer: &model.Customer{Name: "Alice", Email: "alice@example.com"}}}

	handler := NewOrderHandler(testhelpers.OrderFacadeStub{
		MyFn:  func(context.Context, int64) ([]model.Order, error) { return orders, nil },
		AllFn: func(context.Context) ([]model.Order, error) { return orders, nil },
	})

	resp := performRequest(t, http.MethodGet, "/orders/my-orders", handler.MyOrders, asSubject(5), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var result []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(result) != 1 || result[0].Customer == nil || result[0].Customer.Name != "Alice" {
		t.Fatalf("unexpected listing %+v", result)
	}

	resp = performRequest(t, http.MethodGet, "/orders/AllOrders", handler.AllOrders, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func performParamRequest(method, path, reqPath string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte) *httptest.ResponseRecorder {
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, reqPath, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAssignmentHandlerAssignSuccess(t *testing.T) {
	partnerID := int64(7)
	handler := NewAssignmentHandler(testhelpers.AssignmentFacadeStub{AutoFn: func(_ context.Context, orderID int64) (*model.Order, *model.Partner, bool, error) {
		if orderID != 10 {
			t.Fatalf("unexpected order id %d", orderID)
		}
		order := &model.Order{ID: orderID, AssignedPartner: &partnerID, RequestStatus: model.RequestStatusPending}
		return order, &model.Partner{ID: partnerID, Email: "partner@example.com"}, true, nil
	}})

	resp := performParamRequest(http.MethodPost, "/orders/assign-partner/:orderId", "/orders/assign-partner/10", handler.AssignAuto, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var result dto.AssignmentResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !result.Notified {
		t.Fatal("expected notified flag")
	}
	if result.Order == nil || result.Partner == nil || result.Partner.ID != 7 {
		t.Fatalf("unexpected payload %+v", result)
	}
}

func TestAssignmentHandlerNotifyFailureIsReported(t *testing.T) {
	handler := NewAssignmentHandler(testhelpers.AssignmentFacadeStub{ManualFn: func(_ context.Context, orderID int64) (*model.Order, *model.Partner, bool, error) {
		return &model.Order{ID: orderID}, &model.Partner{ID: 7}, false, nil
	}})

	resp := performParamRequest(http.MethodPost, "/orders/assign-partner-manual/:orderId", "/orders/assign-partner-manual/10", handler.AssignManual, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var result dto.AssignmentResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Notified {
		t.Fatal("failed delivery must not be claimed")
	}
}

func TestAssignmentHandlerAssignFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"order missing", domainErrors.ErrNotFound, http.StatusNotFound},
		{"no items", domainErrors.ErrNoServiceItems, http.StatusBadRequest},
		{"no candidate", domainErrors.ErrNoCandidate, http.StatusNotFound},
		{"offer active", domainErrors.ErrOfferActive, http.StatusConflict},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAssignmentHandler(testhelpers.AssignmentFacadeStub{AutoFn: func(context.Context, int64) (*model.Order, *model.Partner, bool, error) {
				return nil, nil, false, tt.err
			}})
			resp := performParamRequest(http.MethodPost, "/orders/assign-partner/:orderId", "/orders/assign-partner/10", handler.AssignAuto, nil, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}

	t.Run("bad order id", func(t *testing.T) {
		handler := NewAssignmentHandler(testhelpers.AssignmentFacadeStub{})
		resp := performParamRequest(http.MethodPost, "/orders/assign-partner/:orderId", "/orders/assign-partner/abc", handler.AssignAuto, nil, nil)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.Code)
		}
	})
}

func TestAssignmentHandlerRespond(t *testing.T) {
	body, _ := json.Marshal(dto.RespondRequest{Response: "Accepted"})
	handler := NewAssignmentHandler(testhelpers.AssignmentFacadeStub{RespondFn: func(_ context.Context, orderID, partnerID int64, decision model.RequestStatus) (*model.Order, error) {
		if orderID != 10 || partnerID != 7 || decision != model.RequestStatusAccepted {
			t.Fatalf("unexpected arguments: %d %d %s", orderID, partnerID, decision)
		}
		return &model.Order{ID: orderID}, nil
	}})

	resp := performParamRequest(http.MethodPost, "/orders/respond/:orderId", "/orders/respond/10", handler.Respond, asSubject(7), body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var result dto.MessageResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Message != "request accepted successfully" {
		t.Fatalf("unexpected message %q", result.Message)
	}
}

func TestAssignmentHandlerRespondFailures(t *testing.T) {
	body, _ := json.Marshal(dto.RespondRequest{Response: "Accepted"})
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid decision", domainErrors.ErrInvalidDecision, http.StatusBadRequest},
		{"order missing", domainErrors.ErrNotFound, http.StatusNotFound},
		{"foreign offer", domainErrors.ErrNotOfferOwner, http.StatusForbidden},
		{"expired", domainErrors.ErrOfferExpired, http.StatusBadRequest},
		{"already resolved", domainErrors.ErrOfferResolved, http.StatusConflict},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAssignmentHandler(testhelpers.AssignmentFacadeStub{RespondFn: func(context.Context, int64, int64, model.RequestStatus) (*model.Order, error) {
				return nil, tt.err
			}})
			resp := performParamRequest(http.MethodPost, "/orders/respond/:orderId", "/orders/respond/10", handler.Respond, asSubject(7), body)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		handler := NewAssignmentHandler(testhelpers.AssignmentFacadeStub{})
		resp := performParamRequest(http.MethodPost, "/orders/respond/:orderId", "/orders/respond/10", handler.Respond, asSubject(7), []byte("{"))
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.Code)
		}
	})
}

func TestAssignmentHandlerPartnerOrders(t *testing.T) {
	partnerID := int64(7)
	handler := NewAssignmentHandler(testhelpers.AssignmentFacadeStub{OrdersFn: func(_ context.Context, got int64) ([]model.Order, error) {
		if got != partnerID {
			t.Fatalf("unexpected partner id %d", got)
		}
		return []model.Order{{ID: 1, AssignedPartner: &partnerID}}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/orders/partner-orders", handler.PartnerOrders, asSubject(partnerID), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var result []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(result) != 1 || result[0].AssignedPartner == nil || *result[0].AssignedPartner != partnerID {
		t.Fatalf("unexpected listing %+v", result)
	}
}

func TestPartnerHandlerDashboardStats(t *testing.T) {
	handler := NewPartnerHandler(testhelpers.PartnerFacadeStub{StatsFn: func(_ context.Context, partnerID int64) (*model.DashboardStats, error) {
		if partnerID != 7 {
			t.Fatalf("unexpected partner id %d", partnerID)
		}
		return &model.DashboardStats{TotalOrders: 4, CompletedOrders: 3, IncompleteOrders: 1, Earnings: decimal.NewFromInt(420)}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/partners/dashboard-stats", handler.DashboardStats, asSubject(7), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var result dto.DashboardStatsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.TotalOrders != 4 || result.CompletedOrders != 3 || result.IncompleteOrders != 1 {
		t.Fatalf("unexpected counters %+v", result)
	}
	if !result.Earnings.Equal(decimal.NewFromInt(420)) {
		t.Fatalf("unexpected earnings %s", result.Earnings)
	}
}

func TestPartnerHandlerList(t *testing.T) {
	handler := NewPartnerHandler(testhelpers.PartnerFacadeStub{ListFn: func(context.Context) ([]model.Partner, error) {
		return []model.Partner{{ID: 1, Name: "First"}, {ID: 2, Name: "Second"}}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/partners", handler.List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var result []dto.PartnerResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(result) != 2 || result[0].Name != "First" {
		t.Fatalf("unexpected listing %+v", result)
	}
}

func TestPartnerHandlerSetApproval(t *testing.T) {
	body, _ := json.Marshal(dto.ApprovalRequest{Approval: "approved"})
	tests := []struct {
		name    string
		reqPath string
		body    []byte
		err     error
		status  int
	}{
		{"success", "/partners/7/approval", body, nil, http.StatusOK},
		{"bad id", "/partners/abc/approval", body, nil, http.StatusBadRequest},
		{"malformed body", "/partners/7/approval", []byte("{"), nil, http.StatusBadRequest},
		{"invalid decision", "/partners/7/approval", body, domainErrors.ErrInvalidApproval, http.StatusBadRequest},
		{"partner missing", "/partners/99/approval", body, domainErrors.ErrNotFound, http.StatusNotFound},
		{"internal", "/partners/7/approval", body, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewPartnerHandler(testhelpers.PartnerFacadeStub{ApprovalFn: func(context.Context, int64, model.Approval) error {
				return tt.err
			}})
			resp := performParamRequest(http.MethodPut, "/partners/:id/approval", tt.reqPath, handler.SetApproval, nil, tt.body)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}
