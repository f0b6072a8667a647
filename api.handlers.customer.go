package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

func (api *APIHandler) CreateCustomer(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	customer := Customer{}
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	err := DecodeCreateCustomerRequestBody(r, &customer)
	if err != nil {
		api.logger.Error("failed to create customer", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "failed to create the customer", err.Error())
		if err = WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	err = ValidateCreateCustomerRequestBody(&customer)
	if err != nil {
		api.logger.Error("failed to create customer", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "failed to create the customer", err.Error())
		if err = WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	customer.ID = api.idsHandler.Generate(CustomerIDPrefix)
	customer.CreatedAt = api.clock.Now().UTC().String()

	err = api.customerService.Add(r.Context(), customer.ID, customer)
	if err != nil {
		api.logger.Error("failed to create customer", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "failed to create the customer", customer)
		if err = WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	resp := GenericResponse(requestID, http.StatusOK, "Customer created successfully.", nil, customer)
	if err = WriteResponse(w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

func (api *APIHandler) GetAllCustomers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	customers, err := api.customerService.GetAll(r.Context())
	if err != nil {
		api.logger.Error("failed to get all customers", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusInternalServerError, "failed to get all customers", EmptyData)
		if err = WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	api.logger.Info("success to get all customers", zap.String("request.id", requestID))
	total := len(customers)
	resp := GenericResponse(requestID, http.StatusOK, "All customers fetched successfully.", &total, customers)
	if err = WriteResponse(w, resp); err != nil {
		api.logger.Error("failed to send response", zap.Error(err))
	}
}

func (api *APIHandler) GetOneCustomer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	id := ps.ByName("id")
	if ok := api.idsHandler.IsValid(id, CustomerIDPrefix); !ok {
		api.logger.Error("customer id provided is not valid", zap.String("customer.id", id), zap.String("request.id", requestID))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "customer id provided is not valid", Customer{})
		if err := WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	customer, err := api.customerService.GetOne(r.Context(), id)
	if err == ErrCustomerNotFound {
		api.logger.Error("customer does not exist", zap.String("customer.id", id), zap.String("request.id", requestID))
		errResp := NewAPIError(requestID, http.StatusNotFound, "customer does not exist", customer)
		if err = WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	if err != nil {
		api.logger.Error("failed to get customer", zap.String("customer.id", id), zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusInternalServerError, "failed to get the customer", customer)
		if err = WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	api.logger.Info("success to get customer", zap.String("customer.id", id), zap.String("request.id", requestID))
	resp := GenericResponse(requestID, http.StatusOK, "Customer fetched successfully.", nil, customer)
	if err = WriteResponse(w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}
