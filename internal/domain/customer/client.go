package customer

import (
	"context"
	"net/http"
)

// ListResult is the outcome of listing customers.
// Customers is nil whenever Status is not a success status.
type ListResult struct {
	Status    int
	Customers []Customer
}

// Result is the outcome of an operation returning a single customer.
type Result struct {
	Status   int
	Customer *Customer
}

// BoolResult is the outcome of an update or delete.
type BoolResult struct {
	Status int
	OK     bool
}

// IsSuccess reports whether status is in the 2xx range.
func IsSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// APIClient is the remote Customer API.
//
// Every method returns the HTTP status of the call; the payload is absent for
// non-success statuses. A non-nil error means the call itself failed
// (configuration, transport, undecodable body) and no status is meaningful.
type APIClient interface {
	List(ctx context.Context) (ListResult, error)
	Get(ctx context.Context, id int) (Result, error)
	Create(ctx context.Context, c Customer) (Result, error)
	Update(ctx context.Context, id int, c Customer) (BoolResult, error)
	Delete(ctx context.Context, id int) (BoolResult, error)
}
