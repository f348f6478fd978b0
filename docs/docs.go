// Package docs registers the Sales Engine API description with swag so that
// gin-swagger can serve it under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/customers/top-buyers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Customers ranked by paid spend",
                "parameters": [{"type": "integer", "description": "How many customers", "name": "n", "in": "query"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/merchants/{id}/revenue": {
            "get": {
                "produces": ["application/json"],
                "tags": ["merchants"],
                "summary": "Revenue of a merchant's paid invoices",
                "parameters": [{"type": "integer", "description": "Merchant ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/merchants/top-revenue-earners": {
            "get": {
                "produces": ["application/json"],
                "tags": ["merchants"],
                "summary": "Merchants ranked by revenue",
                "parameters": [{"type": "integer", "description": "How many merchants", "name": "n", "in": "query"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/items/golden": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Items priced more than two deviations above the mean",
                "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/invoices/status/{status}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Percentage of invoices with a status",
                "parameters": [{"type": "string", "description": "pending, shipped or returned", "name": "status", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/revenue/{date}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Revenue of invoices paid on a date",
                "parameters": [{"type": "string", "description": "YYYY-MM-DD", "name": "date", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/merchants": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Create a merchant",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/items": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Create an item",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Sales Engine API",
	Description:      "Analytics over an in-memory snapshot of merchants, items, customers, invoices and transactions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
