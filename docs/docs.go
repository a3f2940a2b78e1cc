// Package docs holds the OpenAPI description served at /swagger/*.
// Regenerate with: swag init -g cmd/app/main.go -o docs
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
        "/healthz": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/version": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Version",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/v1/experience": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "experience"
                ],
                "summary": "Experience calculator",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.ExperienceRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/experience/potions": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "experience"
                ],
                "summary": "Potion split",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.PotionsRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/recipes": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "recipes"
                ],
                "summary": "List recipes",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/v1/recipes/calculate": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "recipes"
                ],
                "summary": "Recipe profit calculator",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.RecipeRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/crystals/plan": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "crystals"
                ],
                "summary": "Crystal upgrade calculator",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.CrystalPlanRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/crystals/expected": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "crystals"
                ],
                "summary": "Expected crystals for one level",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Equipment slot",
                        "name": "slot",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Gear level",
                        "name": "level",
                        "in": "query",
                        "required": true
                    }
                ]
            }
        },
        "/api/v1/crystals/transfer": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "crystals"
                ],
                "summary": "Transfer cost",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Equipment slot",
                        "name": "slot",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Gear level",
                        "name": "level",
                        "in": "query",
                        "required": true
                    }
                ]
            }
        },
        "/api/v1/crystals/simulate": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "crystals"
                ],
                "summary": "Upgrade simulation",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SimulationRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/tables": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "tables"
                ],
                "summary": "Game tables",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/v1/preferences": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "preferences"
                ],
                "summary": "Get preferences",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "preferences"
                ],
                "summary": "Save preferences",
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.PreferencesRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/preferences/tab": {
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "preferences"
                ],
                "summary": "Set active tab",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.TabRequest"
                        }
                    }
                ]
            }
        }
    },
    "definitions": {
        "handler.CrystalPlanRequest": {
            "type": "object",
            "properties": {
                "slot": {
                    "type": "string"
                },
                "current_level": {
                    "type": "integer"
                },
                "prices": {
                    "$ref": "#/definitions/handler.CrystalPricesRequest"
                },
                "remember": {
                    "type": "boolean"
                }
            }
        },
        "handler.CrystalPricesRequest": {
            "type": "object",
            "properties": {
                "sky": {
                    "type": "integer"
                },
                "sage": {
                    "type": "integer"
                },
                "crimson": {
                    "type": "integer"
                },
                "radiant": {
                    "type": "integer"
                }
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "handler.ExperienceRequest": {
            "type": "object",
            "properties": {
                "start_level": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 140
                },
                "end_level": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 140
                },
                "tier": {
                    "type": "string"
                },
                "remember": {
                    "type": "boolean"
                }
            }
        },
        "handler.PotionsRequest": {
            "type": "object",
            "properties": {
                "xp": {
                    "type": "number",
                    "minimum": 0
                },
                "tier": {
                    "type": "string"
                }
            }
        },
        "handler.PreferencesRequest": {
            "type": "object",
            "properties": {
                "last_tab": {
                    "type": "string"
                },
                "tier": {
                    "type": "string"
                },
                "start_level": {
                    "type": "integer"
                },
                "end_level": {
                    "type": "integer"
                },
                "recipe": {
                    "type": "string"
                },
                "batch_quantity": {
                    "type": "integer"
                },
                "sale_price": {
                    "type": "integer"
                },
                "slot": {
                    "type": "string"
                },
                "gear_level": {
                    "type": "integer"
                },
                "crystal_prices": {
                    "$ref": "#/definitions/handler.CrystalPricesRequest"
                }
            }
        },
        "handler.RecipeRequest": {
            "type": "object",
            "properties": {
                "recipe": {
                    "type": "string"
                },
                "batch_quantity": {
                    "type": "integer"
                },
                "sale_price": {
                    "type": "integer"
                },
                "remember": {
                    "type": "boolean"
                }
            }
        },
        "handler.SimulationRequest": {
            "type": "object",
            "properties": {
                "level": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 16
                },
                "probability": {
                    "type": "number",
                    "minimum": 0,
                    "maximum": 1
                },
                "guarantee": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 1000
                },
                "trials": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 1000000
                },
                "seed": {
                    "type": "integer"
                }
            }
        },
        "handler.TabRequest": {
            "type": "object",
            "properties": {
                "tab": {
                    "type": "string"
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
	Title:            "GLA Tools API",
	Description:      "Calculators for experience potions, recipe profit and crystal upgrade costs.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
