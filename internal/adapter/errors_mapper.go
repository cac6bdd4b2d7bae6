package adapter

import (
	"encoding/json"
	"net/http"

	"github.com/saeedstore/erp-session/models"
)

func mapHTTPError(statusCode int, body []byte) error {
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return nil
	}

	var errBody models.ErrorBody
	malformed := json.Unmarshal(body, &errBody) != nil

	return &StatusError{
		StatusCode: statusCode,
		Detail:     errBody.Message(),
		Malformed:  malformed,
		err:        sentinelForStatus(statusCode),
	}
}

func sentinelForStatus(statusCode int) error {
	switch statusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrUnprocessable
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return ErrUnexpectedStatus
	}
}
