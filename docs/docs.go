// Package docs holds the generated swagger specification.
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
        "/process-user-query": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Scheduler"],
                "summary": "Process a conversational query",
                "description": "Classifies the utterance and answers it: scheduling queries from the conversation history, company questions from the document knowledge base, everything else by a generic completion.",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "required": ["user_input"],
                            "properties": {
                                "user_input": {"type": "string"},
                                "duration": {"type": "integer"},
                                "conversation_history": {
                                    "type": "array",
                                    "items": {
                                        "type": "object",
                                        "properties": {
                                            "role": {"type": "string"},
                                            "content": {"type": "string"}
                                        }
                                    }
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"response": {"type": "string"}}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResp"}}
                }
            }
        },
        "/schedule-meeting": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Scheduler"],
                "summary": "Execute a scheduling instruction",
                "description": "Runs a natural-language instruction through the scheduling agent, which checks availability and books or suggests alternatives using its tools.",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "required": ["instruction"],
                            "properties": {"instruction": {"type": "string"}}
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"response": {"type": "string"}}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResp"}}
                }
            }
        },
        "/upload-documents": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Knowledge"],
                "summary": "Upload documents and train the knowledge base",
                "description": "Uploads one or more PDFs describing company policies, goals or history. Their content is embedded into the vector store so company questions can be answered.",
                "parameters": [
                    {"name": "files", "in": "formData", "type": "file", "required": true, "description": "PDF files to ingest"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"status": {"type": "string"}, "message": {"type": "string"}}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResp"}}
                }
            }
        },
        "/add-superuser": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Registry"],
                "summary": "Add a superuser",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "required": ["email"],
                            "properties": {"email": {"type": "string"}}
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResp"}}
                }
            }
        },
        "/create-group": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Registry"],
                "summary": "Create a group",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "required": ["group_name", "members"],
                            "properties": {
                                "group_name": {"type": "string"},
                                "members": {"type": "array", "items": {"type": "string"}}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"message": {"type": "string"}, "members": {"type": "array", "items": {"type": "string"}}}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResp"}}
                }
            }
        },
        "/list-groups": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Registry"],
                "summary": "List groups",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"groups": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}}}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "API is healthy", "schema": {"type": "object"}}
                }
            }
        }
    },
    "definitions": {
        "response.ErrorResp": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        },
        "response.MessageResp": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Meeting Concierge API",
	Description:      "LLM-driven meeting scheduling with Google Calendar availability, group registries and a company-document knowledge base.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
