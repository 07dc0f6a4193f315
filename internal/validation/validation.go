// Package validation holds the pure input checks guarding every order
// operation. Struct payloads are validated through go-playground/validator;
// the raw listing query string is parsed and range-checked by hand because
// its failure codes depend on which parameter is malformed.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Additional-Code/orderdesk/internal/dto"
	"github.com/Additional-Code/orderdesk/internal/entity"
	repo "github.com/Additional-Code/orderdesk/internal/repository/order"
	"github.com/Additional-Code/orderdesk/pkg/errorbank"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Create checks a create payload. Precedence follows the API contract:
// every absent field is reported at once, then status, then magnitudes.
func Create(req dto.CreateOrderRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errorbank.BadRequest("invalid payload", errorbank.WithCause(err))
	}

	var missing, invalid []string
	badStatus := false
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			missing = append(missing, fe.Field())
		case "oneof":
			badStatus = true
		case "gt":
			invalid = append(invalid, fe.Field())
		}
	}

	switch {
	case len(missing) > 0:
		return errorbank.Validation(errorbank.CodeMissingFields,
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")),
			errorbank.WithDetail("fields", missing))
	case badStatus:
		return statusError(errorbank.CodeInvalidStatus, req.Status)
	default:
		return magnitudeError(invalid)
	}
}

// Update normalizes and checks an update payload in place. Supplied empty
// strings on text fields are demoted to absent; a supplied non-positive
// quantity or amount is rejected rather than silently skipped.
func Update(req *dto.UpdateOrderRequest) error {
	dropEmpty(&req.CustomerName)
	dropEmpty(&req.Product)
	dropEmpty(&req.OrderDate)

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return errorbank.BadRequest("invalid payload", errorbank.WithCause(err))
		}
		var invalid []string
		for _, fe := range verrs {
			switch fe.Tag() {
			case "oneof":
				return statusError(errorbank.CodeInvalidStatus, deref(req.Status))
			case "gt":
				invalid = append(invalid, fe.Field())
			}
		}
		if len(invalid) > 0 {
			return magnitudeError(invalid)
		}
		return errorbank.BadRequest("invalid payload", errorbank.WithCause(err))
	}

	if req.CustomerName == nil && req.Product == nil && req.Quantity == nil &&
		req.Amount == nil && req.Status == nil && req.OrderDate == nil {
		return errorbank.Validation(errorbank.CodeNoFieldsToUpdate, "no fields to update")
	}
	return nil
}

// ListQuery turns the raw GET /orders parameters into a normalized filter.
// page defaults to 1 and limit to 10; startDate/endDate pass through as
// opaque strings for lexicographic comparison against order_date.
func ListQuery(params dto.ListOrdersParams) (repo.Filter, error) {
	f := repo.Filter{Page: defaultPage, Limit: defaultLimit}

	if params.Page != "" {
		page, err := strconv.Atoi(params.Page)
		if err != nil || page < 1 {
			return repo.Filter{}, paginationError("page", params.Page)
		}
		f.Page = page
	}
	if params.Limit != "" {
		limit, err := strconv.Atoi(params.Limit)
		if err != nil || limit < 1 || limit > maxLimit {
			return repo.Filter{}, paginationError("limit", params.Limit)
		}
		f.Limit = limit
	}

	if params.Status != "" {
		if !entity.ValidStatus(params.Status) {
			return repo.Filter{}, statusError(errorbank.CodeInvalidStatusFilter, params.Status)
		}
		f.Status = params.Status
	}

	min, err := parseAmount("minAmount", params.MinAmount)
	if err != nil {
		return repo.Filter{}, err
	}
	max, err := parseAmount("maxAmount", params.MaxAmount)
	if err != nil {
		return repo.Filter{}, err
	}
	f.MinAmount = min
	f.MaxAmount = max

	f.StartDate = params.StartDate
	f.EndDate = params.EndDate

	return f, nil
}

func parseAmount(name, raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, errorbank.Validation(errorbank.CodeInvalidAmountFilter,
			fmt.Sprintf("%s must be a non-negative number", name),
			errorbank.WithDetail(name, raw))
	}
	return &v, nil
}

func paginationError(name, raw string) error {
	return errorbank.Validation(errorbank.CodeInvalidPagination,
		fmt.Sprintf("invalid %s: page must be >= 1 and limit within [1, %d]", name, maxLimit),
		errorbank.WithDetail(name, raw))
}

func statusError(code, got string) error {
	return errorbank.Validation(code,
		fmt.Sprintf("status must be one of: %s", strings.Join(entity.Statuses(), ", ")),
		errorbank.WithDetail("status", got))
}

func magnitudeError(fields []string) error {
	return errorbank.Validation(errorbank.CodeInvalidMagnitude,
		fmt.Sprintf("must be greater than zero: %s", strings.Join(fields, ", ")),
		errorbank.WithDetail("fields", fields))
}

func dropEmpty(s **string) {
	if *s != nil && **s == "" {
		*s = nil
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
