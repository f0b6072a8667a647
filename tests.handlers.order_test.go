package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestOrderService(books BookStorage, customers CustomerStorage, orders OrderStorage, queue Queuer) OrderServiceProvider {
	return NewOrderService(zap.NewNop(), nil, orders, books, customers, queue)
}

// TestCreateOrderHandler ensures api handler can record a purchase.
//
//nolint:funlen
func TestCreateOrderHandler(t *testing.T) {
	testBookID := "b:" + testUID
	testCustomerID := "c:" + testUID

	mockBooks := &MockBookStorage{
		GetOneFunc: func(ctx context.Context, id string) (Book, error) {
			return Book{ID: id, Title: "Book 1", Price: 15.99}, nil
		},
	}
	mockCustomers := &MockCustomerStorage{
		GetOneFunc: func(ctx context.Context, id string) (Customer, error) {
			return Customer{ID: id, Name: "Customer 1"}, nil
		},
	}
	mockOrders := &MockOrderStorage{
		AddFunc: func(ctx context.Context, id string, order Order) error {
			return nil
		},
	}

	t.Run("should pass: valid payload with quantity 3", func(t *testing.T) {
		queue := &MockQueuer{}
		ors := newTestOrderService(mockBooks, mockCustomers, mockOrders, queue)
		api := newTestAPIHandler(nil, nil, ors)

		payload := []byte(`{"bookId":"` + testBookID + `", "customerId":"` + testCustomerID + `", "quantity":3}`)
		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.CreateOrder(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "application/json; charset=UTF-8", res.Header.Get("Content-Type"))

		resultMap := make(map[string]interface{})
		err = json.Unmarshal(data, &resultMap)
		assert.NoError(t, err)
		assert.Equal(t, "Order created successfully.", resultMap["message"])

		orderMap, ok := resultMap["data"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "o:"+testUID, orderMap["id"])
		assert.Equal(t, testBookID, orderMap["book"])
		assert.Equal(t, testCustomerID, orderMap["customer"])
		assert.Equal(t, float64(3), orderMap["quantity"])
		assert.InDelta(t, 47.97, orderMap["total"], 0.001)
		assert.NotEmpty(t, orderMap["createdAt"])

		// the creation event must have reached the archive queue.
		assert.Len(t, queue.Pushed, 1)
		assert.Equal(t, OrdersQueue, queue.Queues[0])
	})

	t.Run("should fail: book does not exist", func(t *testing.T) {
		missingBooks := &MockBookStorage{
			GetOneFunc: func(ctx context.Context, id string) (Book, error) {
				return Book{}, ErrBookNotFound
			},
		}
		inserted := false
		trackingOrders := &MockOrderStorage{
			AddFunc: func(ctx context.Context, id string, order Order) error {
				inserted = true
				return nil
			},
		}
		ors := newTestOrderService(missingBooks, mockCustomers, trackingOrders, &MockQueuer{})
		api := newTestAPIHandler(nil, nil, ors)

		payload := []byte(`{"bookId":"` + testBookID + `", "customerId":"` + testCustomerID + `", "quantity":3}`)
		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.CreateOrder(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		expected := `{"requestid":"", "status":404, "message":"book or customer does not exist", "data":{}}`
		assert.JSONEq(t, expected, string(data))
		assert.False(t, inserted, "no order record must be created on a failed lookup")
	})

	t.Run("should fail: customer does not exist", func(t *testing.T) {
		missingCustomers := &MockCustomerStorage{
			GetOneFunc: func(ctx context.Context, id string) (Customer, error) {
				return Customer{}, ErrCustomerNotFound
			},
		}
		ors := newTestOrderService(mockBooks, missingCustomers, mockOrders, &MockQueuer{})
		api := newTestAPIHandler(nil, nil, ors)

		payload := []byte(`{"bookId":"` + testBookID + `", "customerId":"` + testCustomerID + `", "quantity":3}`)
		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.CreateOrder(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		expected := `{"requestid":"", "status":404, "message":"book or customer does not exist", "data":{}}`
		assert.JSONEq(t, expected, string(data))
	})

	t.Run("should fail: malformed json payload", func(t *testing.T) {
		ors := newTestOrderService(mockBooks, mockCustomers, mockOrders, &MockQueuer{})
		api := newTestAPIHandler(nil, nil, ors)

		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer([]byte(`{"bookId":`)))
		w := httptest.NewRecorder()
		api.CreateOrder(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		resultMap := make(map[string]interface{})
		err = json.Unmarshal(data, &resultMap)
		assert.NoError(t, err)
		assert.Equal(t, "failed to create the order", resultMap["message"])
		assert.NotEmpty(t, resultMap["message"])
	})

	t.Run("should fail: missing references in payload", func(t *testing.T) {
		ors := newTestOrderService(mockBooks, mockCustomers, mockOrders, &MockQueuer{})
		api := newTestAPIHandler(nil, nil, ors)

		testCases := []struct {
			name     string
			payload  []byte
			expected string
		}{
			{
				name:     "missing book id",
				payload:  []byte(`{"customerId":"` + testCustomerID + `", "quantity":3}`),
				expected: `{"requestid":"", "status":400, "message":"failed to create the order", "data":"bookId is required"}`,
			},
			{
				name:     "missing customer id",
				payload:  []byte(`{"bookId":"` + testBookID + `", "quantity":3}`),
				expected: `{"requestid":"", "status":400, "message":"failed to create the order", "data":"customerId is required"}`,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(tc.payload))
				w := httptest.NewRecorder()
				api.CreateOrder(w, req, httprouter.Params{})
				res := w.Result()
				defer res.Body.Close()
				assert.Equal(t, http.StatusBadRequest, res.StatusCode)
				data, err := io.ReadAll(res.Body)
				assert.NoError(t, err)
				assert.JSONEq(t, tc.expected, string(data))
			})
		}
	})

	t.Run("should fail: malformed identifiers", func(t *testing.T) {
		ors := newTestOrderService(mockBooks, mockCustomers, mockOrders, &MockQueuer{})
		api := newTestAPIHandler(nil, nil, ors)
		// the real uid handler rejects ids without the expected prefix and uuid shape.
		api.idsHandler = NewIDsHandler()

		payload := []byte(`{"bookId":"whatever", "customerId":"` + testCustomerID + `", "quantity":3}`)
		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.CreateOrder(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("should fail: storage insertion failure", func(t *testing.T) {
		failingOrders := &MockOrderStorage{
			AddFunc: func(ctx context.Context, id string, order Order) error {
				return errors.New("storage failure")
			},
		}
		ors := newTestOrderService(mockBooks, mockCustomers, failingOrders, &MockQueuer{})
		api := newTestAPIHandler(nil, nil, ors)

		payload := []byte(`{"bookId":"` + testBookID + `", "customerId":"` + testCustomerID + `", "quantity":3}`)
		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.CreateOrder(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

// TestOrderTotalComputation checks the derived total against the book price.
func TestOrderTotalComputation(t *testing.T) {
	testCases := []struct {
		name     string
		price    float64
		quantity int
		total    float64
	}{
		{"unit price", 10.0, 1, 10.0},
		{"several copies", 22.50, 4, 90.0},
		{"free book", 0, 3, 0},
		{"zero quantity left unchecked", 15.99, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			books := &MockBookStorage{
				GetOneFunc: func(ctx context.Context, id string) (Book, error) {
					return Book{ID: id, Price: tc.price}, nil
				},
			}
			customers := &MockCustomerStorage{
				GetOneFunc: func(ctx context.Context, id string) (Customer, error) {
					return Customer{ID: id}, nil
				},
			}
			var stored Order
			orders := &MockOrderStorage{
				AddFunc: func(ctx context.Context, id string, order Order) error {
					stored = order
					return nil
				},
			}
			ors := newTestOrderService(books, customers, orders, &MockQueuer{})

			order, err := ors.Create(context.Background(), "o:0",
				CreateOrderRequest{BookID: "b:0", CustomerID: "c:0", Quantity: tc.quantity},
				"2023-07-02 00:00:00 +0000 UTC")
			assert.NoError(t, err)
			assert.InDelta(t, tc.total, order.Total, 0.001)
			assert.Equal(t, tc.quantity, order.Quantity)
			assert.Equal(t, order, stored)
		})
	}
}
