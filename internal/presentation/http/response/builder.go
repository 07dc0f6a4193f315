package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Additional-Code/orderdesk/pkg/errorbank"
)

// Builder helps construct consistent HTTP responses. Success payloads carry
// whichever of message/data/pagination/id were set; error payloads always
// render {error, message, details?}.
type Builder struct {
	ctx        echo.Context
	status     int
	message    string
	data       any
	hasData    bool
	pagination any
	id         *int64
	err        error
}

// New instantiates a Builder for the provided request context.
func New(ctx echo.Context) *Builder {
	return &Builder{ctx: ctx, status: http.StatusOK}
}

// WithStatus overrides the response status code.
func (b *Builder) WithStatus(status int) *Builder {
	if status > 0 {
		b.status = status
	}
	return b
}

// WithMessage attaches a human-readable outcome message.
func (b *Builder) WithMessage(message string) *Builder {
	b.message = message
	return b
}

// WithData attaches a success payload.
func (b *Builder) WithData(data any) *Builder {
	b.data = data
	b.hasData = true
	return b
}

// WithPagination attaches listing metadata alongside the data payload.
func (b *Builder) WithPagination(p any) *Builder {
	b.pagination = p
	return b
}

// WithID echoes the affected order id, used by update and delete.
func (b *Builder) WithID(id int64) *Builder {
	b.id = &id
	return b
}

// WithError records an error to be rendered.
func (b *Builder) WithError(err error) *Builder {
	b.err = err
	return b
}

// Build finalises and emits the HTTP response.
func (b *Builder) Build() error {
	if b.err != nil {
		return b.buildError()
	}
	return b.buildSuccess()
}

func (b *Builder) buildSuccess() error {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	payload := echo.Map{}
	if b.message != "" {
		payload["message"] = b.message
	}
	if b.hasData {
		payload["data"] = b.data
	}
	if b.pagination != nil {
		payload["pagination"] = b.pagination
	}
	if b.id != nil {
		payload["id"] = *b.id
	}
	return b.ctx.JSON(b.status, payload)
}

func (b *Builder) buildError() error {
	appErr := errorbank.From(b.err)
	status := b.status
	if status < 400 {
		status = appErr.StatusCode()
	}
	payload := struct {
		Error   string         `json:"error"`
		Message string         `json:"message"`
		Details map[string]any `json:"details,omitempty"`
	}{
		Error:   appErr.Code(),
		Message: appErr.Message(),
		Details: appErr.Details(),
	}
	return b.ctx.JSON(status, payload)
}
