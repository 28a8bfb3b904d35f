package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/apierror"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// statusFor maps the service error taxonomy to HTTP statuses. Every case
// keeps its own message — the operator must be able to tell a billing
// problem from a typo.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrTenantNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrStaffNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSubscriptionExpired),
		errors.Is(err, service.ErrTenantSuspended):
		return http.StatusForbidden
	case errors.Is(err, service.ErrInvalidOwnerCredentials),
		errors.Is(err, service.ErrInvalidStaffCredentials),
		errors.Is(err, service.ErrInvalidMasterCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrDuplicateTenantID),
		errors.Is(err, service.ErrDuplicateStaff):
		return http.StatusConflict
	case errors.Is(err, service.ErrOfflineWriteRejected):
		return http.StatusServiceUnavailable
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrTotalMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}

// parseID reads a UUID path parameter, answering 400 itself on garbage input.
func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id: "+c.Param(name)))
		return uuid.Nil, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), apierror.New(err.Error()))
}
