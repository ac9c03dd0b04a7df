package http

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/guttosm/sourcing-lens/internal/circuitbreaker"
	"github.com/guttosm/sourcing-lens/internal/domain/dto"
	"github.com/guttosm/sourcing-lens/internal/hscode"
	"github.com/guttosm/sourcing-lens/internal/i18n"
	"github.com/guttosm/sourcing-lens/internal/middleware"
	"github.com/guttosm/sourcing-lens/internal/service"
)

var successResponsePool = sync.Pool{
	New: func() any { return &dto.SuccessResponse{} },
}

// Validator is implemented by request DTOs that check themselves.
type Validator interface {
	Validate() error
}

var jsonFieldNames sync.Once

// useJSONFieldNames makes binding errors report fields by their JSON name,
// e.g. items[1].unit_cost.
func useJSONFieldNames() {
	jsonFieldNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		})
	})
}

// BuildRequest binds the JSON body into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	useJSONFieldNames()
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// BuildRequestAndValidate binds the JSON body and runs Validate when T implements it.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// ResponseBuilder writes the API envelopes.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder for c.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success writes data inside the success envelope.
func (b *ResponseBuilder) Success(statusCode int, data any) {
	resp := successResponsePool.Get().(*dto.SuccessResponse)
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now().UTC()

	b.c.JSON(statusCode, resp)

	*resp = dto.SuccessResponse{}
	successResponsePool.Put(resp)
}

// SuccessOK writes a 200 envelope.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated writes a 201 envelope.
func (b *ResponseBuilder) SuccessCreated(data any) {
	b.Success(http.StatusCreated, data)
}

// Error writes an error envelope with a translated message. err, when not
// nil, is attached to the context for the error-handler middleware to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.abort(statusCode, dto.ErrCodeFromStatus(statusCode), messageKey, nil, err)
}

// ErrorWithCode is Error with an explicit error code.
func (b *ResponseBuilder) ErrorWithCode(statusCode int, code, messageKey string, err error) {
	b.abort(statusCode, code, messageKey, nil, err)
}

// BindError reports a malformed body or a failed validation. Field-level
// validation errors are returned in details.
func (b *ResponseBuilder) BindError(err error) {
	var ve *dto.ValidationError
	if errors.As(err, &ve) {
		b.abort(http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidRequest,
			map[string]string{ve.Field: ve.Message}, nil)
		return
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			details[fieldPath(fe)] = fieldMessage(fe)
		}
		b.abort(http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidRequest, details, nil)
		return
	}
	b.abort(http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidRequestBody,
		map[string]string{"body": err.Error()}, nil)
}

// fieldPath drops the struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		if fe.Field() == "items" {
			return dto.ErrMissingItems.Message
		}
		return "is required"
	case "gt":
		if fe.Field() == "annual_volume" {
			return dto.ErrInvalidAnnualVolume.Message
		}
		return dto.ErrInvalidUnitCost.Message
	case "lte":
		return "must be at most " + fe.Param()
	}
	return "is invalid"
}

// Fail maps a service error to its HTTP status, code and message.
func (b *ResponseBuilder) Fail(err error) {
	status, code, key := classify(err)
	var logged error
	if status >= http.StatusInternalServerError {
		logged = err
	}
	details := map[string]string(nil)
	if code == dto.ErrCodeInvalidCountry || code == dto.ErrCodeTooManyItems {
		details = map[string]string{"reason": err.Error()}
	}
	b.abort(status, code, key, details, logged)
}

func (b *ResponseBuilder) abort(status int, code, messageKey string, details map[string]string, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}
	resp := dto.NewError(code, i18n.T(b.c, messageKey)).
		WithRequestID(middleware.GetRequestID(b.c)).
		WithDetails(details)
	b.c.AbortWithStatusJSON(status, resp)
}

func classify(err error) (status int, code, messageKey string) {
	switch {
	case errors.Is(err, service.ErrInvalidCountryKey):
		return http.StatusBadRequest, dto.ErrCodeInvalidCountry, i18n.ErrKeyInvalidCountry
	case errors.Is(err, service.ErrTooManyItems):
		return http.StatusBadRequest, dto.ErrCodeTooManyItems, i18n.ErrKeyTooManyItems
	case errors.Is(err, service.ErrNoItems):
		return http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyNoItems
	case errors.Is(err, service.ErrEmptyReport):
		return http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidRequest
	case errors.Is(err, service.ErrMissingUser):
		return http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyTokenRequired
	case errors.Is(err, service.ErrRunNotFound):
		return http.StatusNotFound, dto.ErrCodeNotFound, i18n.ErrKeyRunNotFound
	case errors.Is(err, service.ErrRepositoryNotConfigured):
		return http.StatusServiceUnavailable, dto.ErrCodeUnavailable, i18n.ErrKeyStoreDisabled
	case errors.Is(err, hscode.ErrLookupDisabled):
		return http.StatusServiceUnavailable, dto.ErrCodeUnavailable, i18n.ErrKeyHSLookupDisabled
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, dto.ErrCodeUnavailable, i18n.ErrKeyStoreUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, dto.ErrCodeTimeout, i18n.ErrKeyInternalError
	default:
		return http.StatusInternalServerError, dto.ErrCodeInternal, i18n.ErrKeyInternalError
	}
}
