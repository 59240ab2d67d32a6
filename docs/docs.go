// Package docs registers the OpenAPI description of the practice API with swag.
package docs

import "github.com/swaggo/swag"

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
    "paths": {
        "/v1/auth/register": {"post": {"tags": ["auth"], "summary": "Register a learner account", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}},
        "/v1/auth/login": {"post": {"tags": ["auth"], "summary": "Log in with email and password", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/v1/questions": {"get": {"tags": ["questions"], "summary": "List questions matching a filter", "responses": {"200": {"description": "OK"}}}},
        "/v1/questions/shuffled": {"get": {"tags": ["questions"], "summary": "Random selection of matching questions", "responses": {"200": {"description": "OK"}}}},
        "/v1/questions/stats": {"get": {"tags": ["questions"], "summary": "Corpus counts by type and difficulty", "responses": {"200": {"description": "OK"}}}},
        "/v1/questions/email": {"get": {"tags": ["questions"], "summary": "List email-writing questions", "responses": {"200": {"description": "OK"}}}},
        "/v1/questions/email/shuffled": {"get": {"tags": ["questions"], "summary": "Random selection of email-writing questions", "responses": {"200": {"description": "OK"}}}},
        "/v1/analysis/level": {"get": {"tags": ["analysis"], "summary": "Performance tier for a score", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/v1/analysis": {"post": {"tags": ["analysis"], "summary": "Analyze an answer to any corpus question", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}}}},
        "/v1/practice": {"post": {"tags": ["practice"], "summary": "Start a practice run", "security": [{"ApiKeyAuth": []}], "responses": {"201": {"description": "Created"}, "404": {"description": "no questions available"}}}},
        "/v1/practice/{runId}": {"get": {"tags": ["practice"], "summary": "Current state of a practice run", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/practice/{runId}/answers": {"post": {"tags": ["practice"], "summary": "Submit an answer for analysis", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "502": {"description": "analysis failed, please retry"}}}},
        "/v1/practice/{runId}/complete": {"post": {"tags": ["practice"], "summary": "Finish a practice run and record its aggregate", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/sessions": {"get": {"tags": ["sessions"], "summary": "The caller's sessions, newest first", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/sessions/{id}": {"get": {"tags": ["sessions"], "summary": "One recorded session", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/v1/dashboard": {"get": {"tags": ["sessions"], "summary": "Practice summary for the dashboard", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/profile": {
            "get": {"tags": ["profile"], "summary": "The caller's profile", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["profile"], "summary": "Edit display name, institution or preferences", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/v1/institutions": {
            "get": {"tags": ["institutions"], "summary": "Institutions, optionally by kind", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["institutions"], "summary": "Register an institution (coach or admin)", "security": [{"ApiKeyAuth": []}], "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}}
        },
        "/v1/institutions/{id}": {"get": {"tags": ["institutions"], "summary": "One institution", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Practice Coach API",
	Description:      "Interview, IELTS, technical and email-writing practice with rubric-based answer analysis.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
