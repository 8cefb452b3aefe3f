// Package docs registers the Swagger 2.0 description of the HTTP API with swag.
// It is kept in the format produced by `swag init -g internal/adapters/in/http/server.go`.
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
        "/couriers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["couriers"],
                "summary": "List couriers",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Page offset", "name": "offset", "in": "query"},
                    {"type": "integer", "default": 1, "description": "Page size", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CouriersPage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            },
            "post": {
                "description": "All-or-nothing: any invalid item rejects the batch and its id is reported.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["couriers"],
                "summary": "Import couriers",
                "parameters": [
                    {"description": "Couriers", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.CreateCouriersRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.CreateCouriersResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ValidationError"}}
                }
            }
        },
        "/couriers/{courier_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["couriers"],
                "summary": "Get a courier",
                "parameters": [
                    {"type": "integer", "description": "Courier id", "name": "courier_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.Courier"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            },
            "patch": {
                "description": "Replaces the fields present in the payload. Orders already assigned are kept.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["couriers"],
                "summary": "Update a courier",
                "parameters": [
                    {"type": "integer", "description": "Courier id", "name": "courier_id", "in": "path", "required": true},
                    {"description": "Changed fields", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.UpdateCourierRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.Courier"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["service"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "Healthy", "schema": {"type": "string"}}
                }
            }
        },
        "/orders": {
            "post": {
                "description": "All-or-nothing: any invalid item rejects the batch and its id is reported.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Import orders",
                "parameters": [
                    {"description": "Orders", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.CreateOrdersRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.CreateOrdersResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ValidationError"}}
                }
            }
        },
        "/orders/active": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List orders that are not delivered yet",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.Order"}}}
                }
            }
        },
        "/orders/assign": {
            "post": {
                "description": "Assigns every free order the courier can carry, in one of its regions and\ninside its working hours. Returns all orders assigned to the courier so far.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Assign orders to a courier",
                "parameters": [
                    {"description": "Courier", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.AssignOrdersRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.AssignOrdersResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/orders/complete": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Report a delivered order",
                "parameters": [
                    {"description": "Courier and order", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.CompleteOrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CompleteOrderResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/orders/{order_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get an order",
                "parameters": [
                    {"type": "integer", "description": "Order id", "name": "order_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.Order"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        }
    },
    "definitions": {
        "http.AssignOrdersRequest": {
            "type": "object",
            "required": ["courier_id"],
            "properties": {"courier_id": {"type": "integer"}}
        },
        "http.AssignOrdersResponse": {
            "type": "object",
            "properties": {"orders": {"type": "array", "items": {"$ref": "#/definitions/http.ItemID"}}}
        },
        "http.CompleteOrderRequest": {
            "type": "object",
            "required": ["courier_id", "order_id"],
            "properties": {"courier_id": {"type": "integer"}, "order_id": {"type": "integer"}}
        },
        "http.CompleteOrderResponse": {
            "type": "object",
            "properties": {"order_id": {"type": "integer"}}
        },
        "http.Courier": {
            "type": "object",
            "properties": {
                "courier_id": {"type": "integer"},
                "courier_type": {"type": "string"},
                "orders": {"type": "array", "items": {"$ref": "#/definitions/http.ItemID"}},
                "regions": {"type": "array", "items": {"type": "integer"}},
                "working_hours": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http.CourierItem": {
            "type": "object",
            "required": ["courier_id", "courier_type", "regions", "working_hours"],
            "properties": {
                "courier_id": {"type": "integer"},
                "courier_type": {"type": "string"},
                "regions": {"type": "array", "minItems": 1, "items": {"type": "integer"}},
                "working_hours": {"type": "array", "minItems": 1, "items": {"type": "string"}}
            }
        },
        "http.CouriersPage": {
            "type": "object",
            "properties": {
                "couriers": {"type": "array", "items": {"$ref": "#/definitions/http.Courier"}},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"}
            }
        },
        "http.CreateCouriersRequest": {
            "type": "object",
            "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/http.CourierItem"}}}
        },
        "http.CreateCouriersResponse": {
            "type": "object",
            "properties": {"couriers": {"type": "array", "items": {"$ref": "#/definitions/http.ItemID"}}}
        },
        "http.CreateOrdersRequest": {
            "type": "object",
            "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/http.OrderItem"}}}
        },
        "http.CreateOrdersResponse": {
            "type": "object",
            "properties": {"orders": {"type": "array", "items": {"$ref": "#/definitions/http.ItemID"}}}
        },
        "http.Error": {
            "type": "object",
            "properties": {"code": {"type": "integer"}, "message": {"type": "string"}}
        },
        "http.ItemID": {
            "type": "object",
            "properties": {"id": {"type": "integer"}}
        },
        "http.Order": {
            "type": "object",
            "properties": {
                "completed_at": {"type": "string"},
                "courier_id": {"type": "integer"},
                "delivery_hours": {"type": "array", "items": {"type": "string"}},
                "order_id": {"type": "integer"},
                "region": {"type": "integer"},
                "status": {"type": "string"},
                "weight": {"type": "number"}
            }
        },
        "http.OrderItem": {
            "type": "object",
            "required": ["delivery_hours", "order_id", "region", "weight"],
            "properties": {
                "delivery_hours": {"type": "array", "minItems": 1, "items": {"type": "string"}},
                "order_id": {"type": "integer"},
                "region": {"type": "integer"},
                "weight": {"type": "number"}
            }
        },
        "http.UpdateCourierRequest": {
            "type": "object",
            "properties": {
                "courier_type": {"type": "string"},
                "regions": {"type": "array", "items": {"type": "integer"}},
                "working_hours": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http.ValidationError": {
            "type": "object",
            "properties": {
                "validation_error": {
                    "type": "object",
                    "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/http.ItemID"}}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Courier assignment API",
	Description:      "Couriers, orders and the assignment of orders to couriers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
