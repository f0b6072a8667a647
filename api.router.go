package main

import (
	"github.com/julienschmidt/httprouter"
)

// SetupRoutes injects store and ops related endpoints if required.
func (api *APIHandler) SetupRoutes(router *httprouter.Router, m *MiddlewareMap) *httprouter.Router {
	router.RedirectTrailingSlash = true
	router.NotFound = api.NotFound()
	api.SetupStoreRoutes(router, m)
	if api.config.OpsEndpointsEnable {
		api.SetupOpsRoutes(router, m)
	}
	return router
}

// SetupStoreRoutes injects the public-facing store endpoints.
func (api *APIHandler) SetupStoreRoutes(router *httprouter.Router, m *MiddlewareMap) *httprouter.Router {
	router.GET("/", m.public(api.Index))
	router.GET("/status", m.public(api.Status))

	router.POST("/books", m.public(api.CreateBook))
	router.GET("/books", m.public(api.GetAllBooks))
	router.GET("/books/:id", m.public(api.GetOneBook))

	router.POST("/customers", m.public(api.CreateCustomer))
	router.GET("/customers", m.public(api.GetAllCustomers))
	router.GET("/customers/:id", m.public(api.GetOneCustomer))

	// Orders are write-only on the api, no read or list endpoint.
	router.POST("/orders", m.public(api.CreateOrder))
	return router
}
