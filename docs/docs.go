// Package docs registra en swag el documento OpenAPI de la API; se mantiene a mano junto a las anotaciones de los handlers.
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
        "/api/dogs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Listar perros",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "offset", "name": "skip", "in": "query"},
                    {"type": "integer", "default": 100, "description": "máximo de resultados", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dogs.DogResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "La foto se obtiene de la API pública de perros; create_date la fija el servidor.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Crear perro sin dueño",
                "parameters": [
                    {"description": "datos del perro", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dogs.createDogRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dogs.DogResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/api/dogs/is_adopted": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Listar perros adoptados",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "offset", "name": "skip", "in": "query"},
                    {"type": "integer", "default": 100, "description": "máximo de resultados", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dogs.DogResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/api/dogs/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Obtener perro por nombre",
                "parameters": [
                    {"type": "string", "description": "nombre del perro", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dogs.DogResponse"}},
                    "404": {"description": "Dog not found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Solo se modifican los campos enviados.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Actualizar perro (parcial)",
                "parameters": [
                    {"type": "string", "description": "nombre del perro", "name": "name", "in": "path", "required": true},
                    {"description": "campos a modificar", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dogs.updateDogRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dogs.DogResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "404": {"description": "Dog not found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Borrar perro",
                "parameters": [
                    {"type": "string", "description": "nombre del perro", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "snapshot del perro borrado", "schema": {"$ref": "#/definitions/dogs.DogResponse"}},
                    "404": {"description": "Dog not found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/api/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Listar usuarios (con sus perros)",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "offset", "name": "skip", "in": "query"},
                    {"type": "integer", "default": 100, "description": "máximo de resultados", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/users.userResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Registrar usuario",
                "parameters": [
                    {"description": "datos del usuario", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.createUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/users.userResponse"}},
                    "400": {"description": "Email already registered", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/api/users/{email}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Obtener usuario por email",
                "parameters": [
                    {"type": "string", "description": "email", "name": "email", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.userResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Actualizar usuario (parcial)",
                "parameters": [
                    {"type": "string", "description": "email actual", "name": "email", "in": "path", "required": true},
                    {"description": "campos a modificar", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.updateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.userResponse"}},
                    "400": {"description": "Email already registered", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            },
            "delete": {
                "description": "Los perros del usuario quedan sin dueño (user_id = null).",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Borrar usuario",
                "parameters": [
                    {"type": "string", "description": "email", "name": "email", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "snapshot del usuario borrado", "schema": {"$ref": "#/definitions/users.userResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/api/users/{email}/dogs/": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Crear perro para un usuario",
                "parameters": [
                    {"type": "string", "description": "email del dueño", "name": "email", "in": "path", "required": true},
                    {"description": "datos del perro", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dogs.createDogRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dogs.DogResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/token": {
            "post": {
                "description": "Formulario OAuth2 password (application/x-www-form-urlencoded).",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Obtener token de acceso",
                "parameters": [
                    {"type": "string", "description": "usuario", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/identity.tokenResponse"}},
                    "401": {"description": "Incorrect username or password", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/user_auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Perfil del usuario autenticado",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/identity.profileResponse"}},
                    "400": {"description": "Inactive user", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "401": {"description": "Could not validate credentials", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "dogs.DogResponse": {
            "type": "object",
            "properties": {
                "create_date": {"type": "string"},
                "id": {"type": "string"},
                "is_adopted": {"type": "boolean"},
                "name": {"type": "string"},
                "picture": {"type": "string"},
                "user_id": {"type": "string"}
            }
        },
        "dogs.createDogRequest": {
            "type": "object",
            "properties": {
                "is_adopted": {"type": "boolean"},
                "name": {"type": "string"}
            }
        },
        "dogs.updateDogRequest": {
            "type": "object",
            "properties": {
                "is_adopted": {"type": "boolean"},
                "name": {"type": "string"}
            }
        },
        "identity.profileResponse": {
            "type": "object",
            "properties": {
                "disabled": {"type": "boolean"},
                "email": {"type": "string"},
                "full_name": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "identity.tokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string"}
            }
        },
        "respond.ErrorBody": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        },
        "users.createUserRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "lastname": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "users.updateUserRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "lastname": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "users.userResponse": {
            "type": "object",
            "properties": {
                "dogs": {"type": "array", "items": {"$ref": "#/definitions/dogs.DogResponse"}},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "lastname": {"type": "string"},
                "name": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Bearer <token> obtenido en POST /token",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dogs Adoption API",
	Description:      "Registro de perros en adopción y de sus dueños.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
