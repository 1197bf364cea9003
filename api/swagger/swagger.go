package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SiteLog API",
        "description": "Construction project record keeping: photos, documents, material tests, reminders and calendar events",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Projects", "description": "Construction projects and derived summaries"},
        {"name": "Photos", "description": "Site photographs"},
        {"name": "Documents", "description": "Project documents"},
        {"name": "MaterialTests", "description": "Reusable test specification templates"},
        {"name": "TestResults", "description": "Performed material tests"},
        {"name": "Reminders", "description": "Inspection reminders"},
        {"name": "Calendar", "description": "Project calendar events"},
        {"name": "Stats", "description": "Dashboard counters"},
        {"name": "Reports", "description": "Rendered project reports"}
    ],
    "paths": {
        "/projects": {
            "get": {
                "tags": ["Projects"],
                "summary": "List projects with derived counts",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Projects"],
                "summary": "Create project",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error"}}
            }
        },
        "/projects/{id}": {
            "get": {
                "tags": ["Projects"],
                "summary": "Get project by id",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["Projects"],
                "summary": "Update project",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["Projects"],
                "summary": "Delete project and every dependent record",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/projects/{id}/report": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download a project activity report",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {"200": {"description": "Rendered report"}, "404": {"description": "Not found"}}
            }
        },
        "/photos": {
            "get": {
                "tags": ["Photos"],
                "summary": "List photos",
                "parameters": [{"name": "projectId", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Photos"],
                "summary": "Upload a photo",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"},
                    {"name": "projectId", "in": "formData", "required": true, "type": "string"},
                    {"name": "description", "in": "formData", "type": "string"},
                    {"name": "latitude", "in": "formData", "type": "number"},
                    {"name": "longitude", "in": "formData", "type": "number"},
                    {"name": "takenAt", "in": "formData", "type": "string"}
                ],
                "responses": {"201": {"description": "Created"}, "422": {"description": "Project does not exist"}}
            }
        },
        "/photos/{id}": {
            "get": {
                "tags": ["Photos"],
                "summary": "Get photo metadata",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["Photos"],
                "summary": "Update photo metadata",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["Photos"],
                "summary": "Delete photo",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/photos/{id}/file": {
            "get": {
                "tags": ["Photos"],
                "summary": "Download the photo file",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "File"}, "404": {"description": "Not found"}}
            }
        },
        "/documents": {
            "get": {
                "tags": ["Documents"],
                "summary": "List documents",
                "parameters": [{"name": "projectId", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Documents"],
                "summary": "Upload a document",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"},
                    {"name": "projectId", "in": "formData", "required": true, "type": "string"},
                    {"name": "type", "in": "formData", "required": true, "type": "string"}
                ],
                "responses": {"201": {"description": "Created"}, "422": {"description": "Project does not exist"}}
            }
        },
        "/documents/{id}": {
            "get": {
                "tags": ["Documents"],
                "summary": "Get document metadata",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["Documents"],
                "summary": "Update document metadata",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["Documents"],
                "summary": "Delete document",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/documents/{id}/file": {
            "get": {
                "tags": ["Documents"],
                "summary": "Download the document file",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "File"}, "404": {"description": "Not found"}}
            }
        },
        "/material-tests": {
            "get": {
                "tags": ["MaterialTests"],
                "summary": "List material tests",
                "parameters": [{"name": "category", "in": "query", "type": "string", "enum": ["concrete", "soil", "asphalt"]}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Unknown category"}}
            },
            "post": {
                "tags": ["MaterialTests"],
                "summary": "Create material test",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/material-tests/{id}": {
            "get": {
                "tags": ["MaterialTests"],
                "summary": "Get material test",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["MaterialTests"],
                "summary": "Update material test",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["MaterialTests"],
                "summary": "Delete material test",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/test-results": {
            "get": {
                "tags": ["TestResults"],
                "summary": "List test results with display names",
                "parameters": [{"name": "projectId", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["TestResults"],
                "summary": "Record a performed test",
                "responses": {"201": {"description": "Created"}, "422": {"description": "Reference does not exist"}}
            }
        },
        "/test-results/{id}": {
            "get": {
                "tags": ["TestResults"],
                "summary": "Get test result",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["TestResults"],
                "summary": "Delete test result",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/reminders": {
            "get": {
                "tags": ["Reminders"],
                "summary": "List reminders",
                "parameters": [
                    {"name": "projectId", "in": "query", "type": "string"},
                    {"name": "active", "in": "query", "type": "boolean"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Reminders"],
                "summary": "Create reminder",
                "responses": {"201": {"description": "Created"}, "422": {"description": "Project does not exist"}}
            }
        },
        "/reminders/{id}": {
            "get": {
                "tags": ["Reminders"],
                "summary": "Get reminder",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["Reminders"],
                "summary": "Update reminder scheduling fields",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["Reminders"],
                "summary": "Delete reminder",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/reminders/{id}/complete": {
            "post": {
                "tags": ["Reminders"],
                "summary": "Mark reminder as completed (idempotent)",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/calendar-events": {
            "get": {
                "tags": ["Calendar"],
                "summary": "List calendar events",
                "parameters": [
                    {"name": "projectId", "in": "query", "type": "string"},
                    {"name": "month", "in": "query", "type": "integer"},
                    {"name": "year", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Month out of range"}}
            },
            "post": {
                "tags": ["Calendar"],
                "summary": "Create calendar event",
                "responses": {"201": {"description": "Created"}, "422": {"description": "Project does not exist"}}
            }
        },
        "/calendar-events/{id}": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Get calendar event",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["Calendar"],
                "summary": "Update calendar event",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["Calendar"],
                "summary": "Delete calendar event",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/stats": {
            "get": {
                "tags": ["Stats"],
                "summary": "Get dashboard statistics",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
