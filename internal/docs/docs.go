// Package docs registers the Swagger document served at /swagger.
// Keep it in step with the handler annotations; go generate rebuilds it
// with swag from those annotations.
package docs

//go:generate swag init -d ../.. -g cmd/api/main.go -o . --outputTypes go

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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login user",
                "parameters": [
                    {"description": "User login credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "User authenticated and token generated", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "User registration data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "User registered and token generated", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Login name taken", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/budgets": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["budgets"],
                "summary": "Load a monthly budget",
                "parameters": [
                    {"type": "string", "description": "Month; defaults to the current month", "name": "month", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Budget", "schema": {"$ref": "#/definitions/handlers.BudgetResponse"}},
                    "404": {"description": "No budget for month", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["budgets"],
                "summary": "Save a monthly budget",
                "parameters": [
                    {"description": "Budget details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SaveBudgetRequest"}}
                ],
                "responses": {
                    "200": {"description": "Budget saved", "schema": {"$ref": "#/definitions/handlers.SaveBudgetResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Transaction failed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["budgets"],
                "summary": "Delete a monthly budget",
                "parameters": [
                    {"type": "string", "description": "Month; defaults to the current month", "name": "month", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Budget deleted"},
                    "404": {"description": "No budget for month", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/budgets/months": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["budgets"],
                "summary": "List budget months",
                "responses": {"200": {"description": "Month keys"}}
            }
        },
        "/ledgers/{id}/expenses": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "List ledger expenses",
                "parameters": [
                    {"type": "string", "description": "Ledger ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page (default 20, max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Paginated expenses"},
                    "403": {"description": "Ledger not owned by caller", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Add an expense",
                "parameters": [
                    {"type": "string", "description": "Ledger ID", "name": "id", "in": "path", "required": true},
                    {"description": "Expense details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.AddExpenseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Expense added", "schema": {"$ref": "#/definitions/handlers.AddExpenseResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Ledger not owned by caller", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/ledgers/{id}/summary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Ledger summary",
                "parameters": [
                    {"type": "string", "description": "Ledger ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Totals", "schema": {"$ref": "#/definitions/handlers.SummaryResponse"}},
                    "403": {"description": "Ledger not owned by caller", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Get user profile",
                "responses": {
                    "200": {"description": "User profile", "schema": {"$ref": "#/definitions/handlers.UserResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/reports/trailing": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Trailing months",
                "parameters": [
                    {"type": "integer", "description": "Window length (default 6)", "name": "months", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Rollup", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.MonthRollupResponse"}}},
                    "400": {"description": "Invalid window", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.AddExpenseRequest": {
            "type": "object",
            "required": ["category"],
            "properties": {
                "amount": {"type": "string", "example": "45.50"},
                "category": {"type": "string", "maxLength": 100, "example": "Groceries"},
                "date": {"type": "string", "example": "2026-03-09"}
            }
        },
        "handlers.AddExpenseResponse": {
            "type": "object",
            "properties": {
                "expense": {"$ref": "#/definitions/handlers.ExpenseResponse"},
                "new_category_total": {"type": "string"},
                "success": {"type": "boolean"},
                "total_spent": {"type": "string"}
            }
        },
        "handlers.AllocationRequest": {
            "type": "object",
            "properties": {
                "amount": {"type": "string", "example": "100.00"},
                "name": {"type": "string", "maxLength": 100, "example": "Groceries"}
            }
        },
        "handlers.AllocationResponse": {
            "type": "object",
            "properties": {
                "allocated": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "handlers.AuthResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/handlers.UserResponse"}
            }
        },
        "handlers.BudgetResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/handlers.CategoryResponse"}},
                "ledger_id": {"type": "string"},
                "month_key": {"type": "string"},
                "total_budget": {"type": "string"},
                "total_spent": {"type": "string"},
                "unallocated": {"type": "array", "items": {"$ref": "#/definitions/handlers.CategoryResponse"}}
            }
        },
        "handlers.CategoryResponse": {
            "type": "object",
            "properties": {
                "allocated": {"type": "string"},
                "name": {"type": "string"},
                "spent": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "INVALID_INPUT"},
                "kind": {"type": "string", "example": "ValidationError"},
                "message": {"type": "string"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "handlers.ExpenseResponse": {
            "type": "object",
            "properties": {
                "amount": {"type": "string"},
                "category": {"type": "string"},
                "created_at": {"type": "string"},
                "date": {"type": "string"},
                "id": {"type": "string"},
                "ledger_id": {"type": "string"}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["login_name", "password"],
            "properties": {
                "login_name": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handlers.MonthRollupResponse": {
            "type": "object",
            "properties": {
                "month_key": {"type": "string"},
                "total_budget": {"type": "string"},
                "total_spent": {"type": "string"}
            }
        },
        "handlers.RegisterRequest": {
            "type": "object",
            "required": ["login_name", "password"],
            "properties": {
                "display_name": {"type": "string", "maxLength": 100},
                "login_name": {"type": "string", "maxLength": 64, "minLength": 3},
                "password": {"type": "string", "maxLength": 128, "minLength": 8}
            }
        },
        "handlers.SaveBudgetRequest": {
            "type": "object",
            "required": ["month"],
            "properties": {
                "categories": {"type": "array", "maxItems": 200, "items": {"$ref": "#/definitions/handlers.AllocationRequest"}},
                "month": {"type": "string", "example": "March 2026"},
                "total": {"type": "string", "example": "800.00"}
            }
        },
        "handlers.SaveBudgetResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/handlers.AllocationResponse"}},
                "ledger_id": {"type": "string"},
                "month_key": {"type": "string"},
                "success": {"type": "boolean"},
                "total_budget": {"type": "string"}
            }
        },
        "handlers.SummaryResponse": {
            "type": "object",
            "properties": {
                "ledger_id": {"type": "string"},
                "month_key": {"type": "string"},
                "total_budget": {"type": "string"},
                "total_spent": {"type": "string"}
            }
        },
        "handlers.UserResponse": {
            "type": "object",
            "properties": {
                "display_name": {"type": "string"},
                "id": {"type": "string"},
                "login_name": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Coin Budget API",
	Description:      "Monthly budgets split into categories, an append-only expense ledger and historical rollups.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
