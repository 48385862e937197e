package chat

import (
	"github.com/attendly/attendly-backend/internal/pkg/validator"
)

type QueryRequest struct {
	Message string `json:"message"`
}

func (r *QueryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}
	if len(r.Message) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type QueryResponse struct {
	Intent string `json:"intent"`
	Reply  string `json:"reply"`
}
