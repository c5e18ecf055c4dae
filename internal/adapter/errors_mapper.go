package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-resin-keeper/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	status := resp.Status()
	if status == "" {
		status = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: %s", ErrBadStatus, status)
}

func mapRetcode(retcode int, message string) error {
	switch retcode {
	case retcodeOK:
		return nil
	case retcodeCookieInvalid, retcodeNotLoggedIn:
		return fmt.Errorf("%w: %s", ErrCookieExpired, message)
	case retcodeDataNotPublic:
		return fmt.Errorf("%w: %s", ErrDataNotPublic, message)
	case retcodeVerification, retcodeVerificationAlt:
		return fmt.Errorf("%w: %s", ErrVerificationRequired, message)
	default:
		return fmt.Errorf("%w: retcode %d: %s", ErrAPI, retcode, message)
	}
}

// decodeEnvelope unwraps {"retcode","message","data"} and decodes data into
// out. out may be nil when the payload is not needed.
func decodeEnvelope(body []byte, out any) error {
	var envelope models.APIResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if err := mapRetcode(envelope.Retcode, envelope.Message); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return fmt.Errorf("%w: empty data", ErrMalformedResponse)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return nil
}
