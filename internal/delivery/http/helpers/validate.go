package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// maxBodyBytes bounds admin request bodies. Bulk SMS carries the largest payload.
const maxBodyBytes = 1 << 20

// Validator is implemented by request DTOs. An empty result means the request is valid.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate reads one JSON object into dest, rejecting unknown fields and trailing
// data, then runs dest's Validate when it has one. Failures are answered with 400 and
// false; the caller just returns.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := decodeStrict(w, r, dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body: "+err.Error())
		return false
	}
	v, ok := dest.(Validator)
	if !ok {
		return true
	}
	if problems := v.Validate(); len(problems) > 0 {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(problems, "; "))
		return false
	}
	return true
}

func decodeStrict(w http.ResponseWriter, r *http.Request, dest any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	err := dec.Decode(dest)
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var tooLarge *http.MaxBytesError
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		return errors.New("body is empty")
	case errors.As(err, &syntaxErr):
		return fmt.Errorf("malformed JSON at offset %d", syntaxErr.Offset)
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return fmt.Errorf("%s must be a %s", typeErr.Field, typeErr.Type)
	case errors.As(err, &tooLarge):
		return fmt.Errorf("body exceeds %d bytes", tooLarge.Limit)
	default:
		// unknown fields and custom unmarshalers (dates, clock times) land here
		return err
	}

	if dec.More() {
		return errors.New("body must hold a single JSON object")
	}
	return nil
}

// PathID reads the named path value as an id >= 1, answering 400 when it is not one.
func PathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err == nil && id > 0 {
		return id, true
	}
	WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, fmt.Sprintf("invalid %s %q", name, raw))
	return 0, false
}
