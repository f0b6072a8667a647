package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// CreateOrder records a purchase linking one book and one customer.
// Both references are resolved with independent point reads before the
// insert; if either record is missing the whole call fails with a 404
// and a fixed message, no partial success.
func (api *APIHandler) CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := CreateOrderRequest{}
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	err := DecodeCreateOrderRequestBody(r, &req)
	if err != nil {
		api.logger.Error("failed to create order", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "failed to create the order", err.Error())
		if err = WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	err = ValidateCreateOrderRequestBody(&req)
	if err != nil {
		api.logger.Error("failed to create order", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "failed to create the order", err.Error())
		if err = WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	if !api.idsHandler.IsValid(req.BookID, BookIDPrefix) {
		api.logger.Error("book id provided is not valid", zap.String("book.id", req.BookID), zap.String("request.id", requestID))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "book id provided is not valid", EmptyData)
		if err = WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	if !api.idsHandler.IsValid(req.CustomerID, CustomerIDPrefix) {
		api.logger.Error("customer id provided is not valid", zap.String("customer.id", req.CustomerID), zap.String("request.id", requestID))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "customer id provided is not valid", EmptyData)
		if err = WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	id := api.idsHandler.Generate(OrderIDPrefix)
	createdAt := api.clock.Now().UTC().String()

	order, err := api.orderService.Create(r.Context(), id, req, createdAt)
	if err == ErrBookNotFound || err == ErrCustomerNotFound {
		api.logger.Error("failed to create order",
			zap.String("book.id", req.BookID),
			zap.String("customer.id", req.CustomerID),
			zap.String("request.id", requestID),
			zap.Error(err),
		)
		errResp := NewAPIError(requestID, http.StatusNotFound, "book or customer does not exist", EmptyData)
		if err = WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	if err != nil {
		api.logger.Error("failed to create order", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "failed to create the order", EmptyData)
		if err = WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	api.logger.Info("success to create order", zap.String("order.id", order.ID), zap.String("request.id", requestID))
	resp := GenericResponse(requestID, http.StatusOK, "Order created successfully.", nil, order)
	if err = WriteResponse(w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}
