package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// TestSetupStoreRoutes ensures all expected endpoints are implemented.
func TestSetupStoreRoutes(t *testing.T) {
	testCases := []struct {
		name        string
		request     *http.Request
		implemented bool
	}{
		{
			"index endpoint",
			httptest.NewRequest(http.MethodGet, "/", nil),
			true,
		},
		{
			"status endpoint",
			httptest.NewRequest(http.MethodGet, "/status", nil),
			true,
		},
		{
			"create book endpoint",
			httptest.NewRequest(http.MethodPost, "/books", nil),
			true,
		},
		{
			"fetch all books endpoint",
			httptest.NewRequest(http.MethodGet, "/books", nil),
			true,
		},
		{
			"fetch single book endpoint",
			httptest.NewRequest(http.MethodGet, "/books/b:cb8f2136-fae4-4200-85d9-3533c7f8c70d", nil),
			true,
		},
		{
			"create customer endpoint",
			httptest.NewRequest(http.MethodPost, "/customers", nil),
			true,
		},
		{
			"fetch all customers endpoint",
			httptest.NewRequest(http.MethodGet, "/customers", nil),
			true,
		},
		{
			"fetch single customer endpoint",
			httptest.NewRequest(http.MethodGet, "/customers/c:cb8f2136-fae4-4200-85d9-3533c7f8c70d", nil),
			true,
		},
		{
			"create order endpoint",
			httptest.NewRequest(http.MethodPost, "/orders", nil),
			true,
		},
		{
			"orders have no list endpoint",
			httptest.NewRequest(http.MethodGet, "/orders", nil),
			false,
		},
		{
			"orders have no read endpoint",
			httptest.NewRequest(http.MethodGet, "/orders/o:cb8f2136-fae4-4200-85d9-3533c7f8c70d", nil),
			false,
		},
		{
			"invalid api endpoint",
			httptest.NewRequest(http.MethodGet, "/v1", nil),
			false,
		},
	}

	mockBooks := &MockBookStorage{
		AddFunc: func(ctx context.Context, id string, book Book) error {
			return nil
		},
		GetOneFunc: func(ctx context.Context, id string) (Book, error) {
			return Book{}, nil
		},
		GetAllFunc: func(ctx context.Context) ([]Book, error) {
			return []Book{}, nil
		},
	}
	mockCustomers := &MockCustomerStorage{
		AddFunc: func(ctx context.Context, id string, customer Customer) error {
			return nil
		},
		GetOneFunc: func(ctx context.Context, id string) (Customer, error) {
			return Customer{}, nil
		},
		GetAllFunc: func(ctx context.Context) ([]Customer, error) {
			return []Customer{}, nil
		},
	}
	mockOrders := &MockOrderStorage{
		AddFunc: func(ctx context.Context, id string, order Order) error {
			return nil
		},
	}
	queue := &MockQueuer{}
	bs := NewBookService(zap.NewNop(), nil, mockBooks, queue)
	cs := NewCustomerService(zap.NewNop(), nil, mockCustomers, queue)
	ors := NewOrderService(zap.NewNop(), nil, mockOrders, mockBooks, mockCustomers, queue)
	api := NewAPIHandler(zap.NewNop(), nil, &Statistics{started: time.Now()}, NewClock(), NewIDsHandler(), bs, cs, ors)
	router := httprouter.New()
	m := &MiddlewareMap{public: (&Middlewares{}).Chain, ops: (&Middlewares{}).Chain}
	api.SetupStoreRoutes(router, m)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, tc.request)
			if tc.implemented {
				assert.NotEqual(t, 404, w.Code)
			} else {
				assert.Equal(t, 404, w.Code)
			}
		})
	}
}

// TestSetupRoutes ensures the ops endpoints are only exposed when enabled.
func TestSetupRoutes(t *testing.T) {
	testCases := []struct {
		name    string
		config  *Config
		request *http.Request
		code    int
	}{
		{
			"ops enabled: configs endpoint",
			&Config{OpsEndpointsEnable: true},
			httptest.NewRequest(http.MethodGet, "/ops/configs", nil),
			200,
		},
		{
			"ops enabled: stats endpoint",
			&Config{OpsEndpointsEnable: true},
			httptest.NewRequest(http.MethodGet, "/ops/stats", nil),
			200,
		},
		{
			"ops disabled: configs endpoint",
			&Config{OpsEndpointsEnable: false},
			httptest.NewRequest(http.MethodGet, "/ops/configs", nil),
			404,
		},
		{
			"profiler disabled: pprof endpoint",
			&Config{OpsEndpointsEnable: true, ProfilerEnable: false},
			httptest.NewRequest(http.MethodGet, "/ops/debug/pprof/", nil),
			404,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := NewAPIHandler(zap.NewNop(), tc.config, &Statistics{started: time.Now()}, NewClock(), NewIDsHandler(), nil, nil, nil)
			router := api.SetupRoutes(httprouter.New(), &MiddlewareMap{
				public: (&Middlewares{}).Chain,
				ops:    (&Middlewares{}).Chain,
			})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, tc.request)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}
