// Package swagger registers the OpenAPI document served at /swagger.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}",
        "contact": {
            "name": "API Support",
            "email": "support@trip-microservice.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        }
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/trips/plan": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["trips"],
                "summary": "Plan a trip between two cities",
                "description": "Resolves station codes, searches trains with provider fallback and returns transport options for train, car, bus and flight.",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.TripPlanRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Trip plan with transport options"},
                    "400": {"description": "Missing origin, destination or start date"}
                }
            }
        },
        "/api/trips/recent": {
            "get": {
                "produces": ["application/json"],
                "tags": ["trips"],
                "summary": "List recently planned trips",
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "default": 20,
                        "minimum": 1,
                        "maximum": 100
                    }
                ],
                "responses": {
                    "200": {"description": "Archived trips, newest first"},
                    "400": {"description": "Invalid limit"}
                }
            }
        },
        "/api/transport/flights/{airportCode}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["transport"],
                "summary": "Live flight board for an airport",
                "parameters": [
                    {
                        "name": "airportCode",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "IATA or ICAO airport code"
                    }
                ],
                "responses": {
                    "200": {"description": "Provider flight board payload"},
                    "400": {"description": "Invalid airport code"}
                }
            }
        }
    },
    "definitions": {
        "dto.TripPlanRequest": {
            "type": "object",
            "required": ["origin", "destination", "startDate"],
            "properties": {
                "origin": {"type": "string", "example": "Mumbai"},
                "destination": {"type": "string", "example": "Chennai"},
                "startDate": {"type": "string", "example": "2024-03-05"},
                "endDate": {"type": "string", "example": "2024-03-10"},
                "budget": {},
                "preferences": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Trip Microservice API",
	Description:      "Backend for trip planning between Indian cities.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
