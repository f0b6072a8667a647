package main

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"os"
	"strings"
)

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

type (
	ContextKey        string
	missingFieldError string
)

const (
	BookIDPrefix            string     = "b"
	CustomerIDPrefix        string     = "c"
	OrderIDPrefix           string     = "o"
	RequestIDPrefix         string     = "r"
	RequestIDContextKey     ContextKey = "request.id"
	RequestNumberContextKey ContextKey = "request.number"
)

func (m missingFieldError) Error() string {
	return string(m) + " is required"
}

// GetValueFromContext returns the value of a given key in the context
// if this key is not available, it returns an empty string.
func GetValueFromContext(ctx context.Context, contextKey ContextKey) string {
	if val := ctx.Value(contextKey); val != nil {
		return val.(string)
	}
	return ""
}

// GetRequestNumberFromContext returns the request number set in
// the context. if not previously set then it returns 0.
func GetRequestNumberFromContext(ctx context.Context) uint64 {
	if val := ctx.Value(RequestNumberContextKey); val != nil {
		return val.(uint64)
	}
	return 0
}

// DecodeCreateBookRequestBody is a helper function to read the content of a book creation request.
func DecodeCreateBookRequestBody(r *http.Request, book *Book) error {
	if r.Body == nil {
		return errors.New("invalid create book request body")
	}
	return json.NewDecoder(r.Body).Decode(book)
}

// ValidateCreateBookRequestBody is a helper function to check if the content of a book creation request is valid.
// Request bodies are validated against the entity schema before anything reaches the store.
func ValidateCreateBookRequestBody(book *Book) error {
	if len(book.Title) == 0 {
		return missingFieldError("title")
	}

	if len(book.Author) == 0 {
		return missingFieldError("author")
	}

	if len(book.Genre) == 0 {
		return missingFieldError("genre")
	}

	if book.PublishedYear == 0 {
		return missingFieldError("publishedYear")
	}

	return nil
}

// DecodeCreateCustomerRequestBody is a helper function to read the content of a customer creation request.
func DecodeCreateCustomerRequestBody(r *http.Request, customer *Customer) error {
	if r.Body == nil {
		return errors.New("invalid create customer request body")
	}
	return json.NewDecoder(r.Body).Decode(customer)
}

// ValidateCreateCustomerRequestBody is a helper function to check if the content of a customer creation request is valid.
func ValidateCreateCustomerRequestBody(customer *Customer) error {
	if len(customer.Name) == 0 {
		return missingFieldError("name")
	}

	if len(customer.Email) == 0 {
		return missingFieldError("email")
	}

	if len(customer.Membership) == 0 {
		return missingFieldError("membership")
	}

	return nil
}

// CreateOrderRequest carries the fields accepted on an order creation call.
type CreateOrderRequest struct {
	BookID     string `json:"bookId"`
	CustomerID string `json:"customerId"`
	Quantity   int    `json:"quantity"`
}

// DecodeCreateOrderRequestBody is a helper function to read the content of an order creation request.
func DecodeCreateOrderRequestBody(r *http.Request, req *CreateOrderRequest) error {
	if r.Body == nil {
		return errors.New("invalid create order request body")
	}
	return json.NewDecoder(r.Body).Decode(req)
}

// ValidateCreateOrderRequestBody is a helper function to check if the content of an order creation request is valid.
func ValidateCreateOrderRequestBody(req *CreateOrderRequest) error {
	if len(req.BookID) == 0 {
		return missingFieldError("bookId")
	}

	if len(req.CustomerID) == 0 {
		return missingFieldError("customerId")
	}

	return nil
}

// GetRequestSourceIP helps find the source IP of the caller.
func GetRequestSourceIP(r *http.Request) string {
	// Get IP from the X-REAL-IP header
	ip := r.Header.Get("X-REAL-IP")
	netIP := net.ParseIP(ip)
	if netIP != nil {
		return ip
	}

	// Get IP from X-FORWARDED-FOR header
	ips := r.Header.Get("X-FORWARDED-FOR")
	splitIps := strings.Split(ips, ",")
	for _, ip := range splitIps {
		netIP = net.ParseIP(ip)
		if netIP != nil {
			return ip
		}
	}

	// Get IP from RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return ""
	}
	netIP = net.ParseIP(ip)
	if netIP != nil {
		return ip
	}
	return ""
}

// IsAppRunningInDocker checks the existence of the .dockerenv
// file at the root directory and returns a boolean result. This
// helps know if the App is running in a docker container or not.
func IsAppRunningInDocker() bool {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}
	return false
}
