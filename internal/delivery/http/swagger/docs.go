package http_swagger

import "github.com/swaggo/swag"

// Keep in step with the @Router annotations on the controllers.
const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/jwt": {
            "post": {
                "tags": ["Auth operations"],
                "summary": "Issue session token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/TokenRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TokenResponse"}},
                    "400": {"description": "Email is required", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/favorites": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Favorites operations"],
                "summary": "List favorites",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Favorite"}}},
                    "401": {"description": "No token provided", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "403": {"description": "Invalid token", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/favorites/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Favorites operations"],
                "summary": "Delete favorite",
                "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DeleteResult"}},
                    "401": {"description": "No token provided", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "403": {"description": "Invalid token", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/favorites": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Favorites operations"],
                "summary": "Add favorite",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/FavoriteRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/InsertResult"}},
                    "400": {"description": "Missing required movie data", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "401": {"description": "No token provided", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "403": {"description": "Invalid token", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/search": {
            "get": {
                "tags": ["Movies operations"],
                "summary": "Search catalog",
                "produces": ["application/json"],
                "parameters": [{"in": "query", "name": "query", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/SearchItem"}}},
                    "400": {"description": "Query parameter is required", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Catalog reported no match", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Catalog unavailable", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/default-movies": {
            "get": {
                "tags": ["Movies operations"],
                "summary": "Default movies",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "500": {"description": "Catalog unavailable", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "TokenRequest": {"type": "object", "properties": {"email": {"type": "string"}}},
        "TokenResponse": {"type": "object", "properties": {"token": {"type": "string"}}},
        "Favorite": {"type": "object", "properties": {
            "_id": {"type": "string"},
            "imdbID": {"type": "string"},
            "Title": {"type": "string"},
            "Poster": {"type": "string"},
            "videoUrl": {"type": "string"},
            "email": {"type": "string"}
        }},
        "FavoriteRequest": {"type": "object", "properties": {
            "imdbID": {"type": "string"},
            "Title": {"type": "string"},
            "Poster": {"type": "string"},
            "videoUrl": {"type": "string"}
        }},
        "InsertResult": {"type": "object", "properties": {"acknowledged": {"type": "boolean"}, "insertedId": {"type": "string"}}},
        "DeleteResult": {"type": "object", "properties": {"acknowledged": {"type": "boolean"}, "deletedCount": {"type": "integer"}}},
        "SearchItem": {"type": "object", "properties": {
            "Title": {"type": "string"},
            "Year": {"type": "string"},
            "imdbID": {"type": "string"},
            "Type": {"type": "string"},
            "Poster": {"type": "string"}
        }}
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "moviefav API",
	Description:      "Favorites and movie catalog backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
