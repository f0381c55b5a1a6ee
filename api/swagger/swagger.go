package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "786Times API",
        "description": "Timetable companion: section schedules, live lecture status, events and class reminders.",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {
            "name": "Sections",
            "description": "Section catalogue and selection"
        },
        {
            "name": "Schedule",
            "description": "Daily timetable and live lecture status"
        },
        {
            "name": "Analytics",
            "description": "Weekly load"
        },
        {
            "name": "Events",
            "description": "Personal semester events"
        },
        {
            "name": "Export",
            "description": "Timetable downloads"
        },
        {
            "name": "Content",
            "description": "Intro verses, quotes and dhikr"
        },
        {
            "name": "Reminders",
            "description": "Notification permission and class reminders"
        },
        {
            "name": "Venues",
            "description": "Free and booked venues per slot"
        }
    ],
    "paths": {
        "/sections": {
            "get": {
                "tags": [
                    "Sections"
                ],
                "summary": "List sections",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/section": {
            "get": {
                "tags": [
                    "Sections"
                ],
                "summary": "Get the selected section",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Sections"
                ],
                "summary": "Select a section",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SelectSectionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Sections"
                ],
                "summary": "Forget the selected section",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/schedule/today": {
            "get": {
                "tags": [
                    "Schedule"
                ],
                "summary": "Today's lectures for the selected section",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/schedule/today/status": {
            "get": {
                "tags": [
                    "Schedule"
                ],
                "summary": "Live status of today's lectures",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/schedule/today/stream": {
            "get": {
                "tags": [
                    "Schedule"
                ],
                "summary": "Server-sent lecture status updates",
                "produces": [
                    "text/event-stream"
                ],
                "responses": {
                    "200": {
                        "description": "event stream"
                    }
                }
            }
        },
        "/schedule/{section}/{day}": {
            "get": {
                "tags": [
                    "Schedule"
                ],
                "summary": "Static lectures of a section on a weekday",
                "parameters": [
                    {
                        "name": "section",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Section code"
                    },
                    {
                        "name": "day",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Weekday, e.g. monday or mon"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Unknown section",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/analytics/weekly": {
            "get": {
                "tags": [
                    "Analytics"
                ],
                "summary": "Weekly load distribution",
                "parameters": [
                    {
                        "name": "section",
                        "in": "query",
                        "type": "string",
                        "description": "Section code, defaults to the selected section"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/events": {
            "get": {
                "tags": [
                    "Events"
                ],
                "summary": "List events by date",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Events"
                ],
                "summary": "Add an event",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateEventRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/events/{id}": {
            "delete": {
                "tags": [
                    "Events"
                ],
                "summary": "Delete an event",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Event ID"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/events/export.ics": {
            "get": {
                "tags": [
                    "Events"
                ],
                "summary": "Download events as iCalendar",
                "produces": [
                    "text/calendar"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/timetable/export": {
            "get": {
                "tags": [
                    "Export"
                ],
                "summary": "Download the weekly timetable",
                "produces": [
                    "text/csv",
                    "application/pdf",
                    "text/calendar"
                ],
                "parameters": [
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "description": "csv, pdf or ics"
                    },
                    {
                        "name": "section",
                        "in": "query",
                        "type": "string",
                        "description": "Section code, defaults to the selected section"
                    },
                    {
                        "name": "from",
                        "in": "query",
                        "type": "string",
                        "description": "First date for calendar recurrence (YYYY-MM-DD)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/venues/{day}": {
            "get": {
                "tags": [
                    "Venues"
                ],
                "summary": "Free or booked venues per slot",
                "description": "Without mode the stored slot mode is used.",
                "parameters": [
                    {
                        "name": "day",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Weekday, or today"
                    },
                    {
                        "name": "mode",
                        "in": "query",
                        "required": false,
                        "type": "string",
                        "enum": [
                            "free",
                            "booked"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Unknown day, weekend or mode",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/slot-mode": {
            "get": {
                "tags": [
                    "Venues"
                ],
                "summary": "Get the stored slot mode",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Venues"
                ],
                "summary": "Store the slot mode",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SlotModeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid mode",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/intro": {
            "get": {
                "tags": [
                    "Content"
                ],
                "summary": "Next verse in the intro rotation",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/quotes/random": {
            "get": {
                "tags": [
                    "Content"
                ],
                "summary": "Random dashboard quote",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/dhikr/random": {
            "get": {
                "tags": [
                    "Content"
                ],
                "summary": "Random dhikr reminder",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/notifications/permission": {
            "get": {
                "tags": [
                    "Reminders"
                ],
                "summary": "Notification permission",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Reminders"
                ],
                "summary": "Grant or revoke notification permission",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/PermissionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/reminders": {
            "get": {
                "tags": [
                    "Reminders"
                ],
                "summary": "Pending reminders",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Reminders"
                ],
                "summary": "Schedule a class reminder",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ScheduleReminderRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Permission denied",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Unknown lecture",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "description": "Fires ten minutes before the next class of the lecture, or almost immediately when that moment has passed today."
            }
        },
        "/reminders/{id}": {
            "delete": {
                "tags": [
                    "Reminders"
                ],
                "summary": "Cancel a pending reminder",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Reminder ID"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "SelectSectionRequest": {
            "type": "object",
            "properties": {
                "section": {
                    "type": "string"
                }
            },
            "required": [
                "section"
            ]
        },
        "CreateEventRequest": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "date": {
                    "type": "string",
                    "example": "2025-04-02"
                },
                "time": {
                    "type": "string",
                    "example": "09:00 AM"
                },
                "venue": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "midterm",
                        "assignment",
                        "quiz",
                        "other"
                    ]
                }
            },
            "required": [
                "title",
                "date"
            ]
        },
        "PermissionRequest": {
            "type": "object",
            "properties": {
                "granted": {
                    "type": "boolean"
                }
            },
            "required": [
                "granted"
            ]
        },
        "ScheduleReminderRequest": {
            "type": "object",
            "properties": {
                "lecture_id": {
                    "type": "string"
                },
                "section": {
                    "type": "string"
                }
            },
            "required": [
                "lecture_id"
            ]
        },
        "SlotModeRequest": {
            "type": "object",
            "required": [
                "mode"
            ],
            "properties": {
                "mode": {
                    "type": "string",
                    "enum": [
                        "free",
                        "booked"
                    ]
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "meta": {
                    "type": "object"
                }
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
