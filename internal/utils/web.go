package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/RigobertoEHA1/chismezon/internal/errors"
)

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		http.Error(w, err.Error(), e.StatusCode)
		return
	}
	if e, ok := err.(*errors.ValidationError); ok {
		http.Error(w, e.Error(), http.StatusBadRequest)
		return
	}
	// default error is 500
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		slog.Error("decoding request body", "err", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		slog.Error("validating request body", "err", err)
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: http.StatusBadRequest}
	}
	return nil
}

// GetIP resolves the client address behind the usual proxy headers. Used
// for operational logging; never for identity or access decisions.
func GetIP(r *http.Request) (string, error) {
	// X-REAL-IP header first
	ip := r.Header.Get("X-REAL-IP")
	if netIP := net.ParseIP(ip); netIP != nil {
		return ip, nil
	}

	// then X-FORWARDED-FOR
	for _, candidate := range strings.Split(r.Header.Get("X-FORWARDED-FOR"), ",") {
		candidate = strings.TrimSpace(candidate)
		if netIP := net.ParseIP(candidate); netIP != nil {
			return candidate, nil
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	if netIP := net.ParseIP(ip); netIP != nil {
		return ip, nil
	}
	return "", fmt.Errorf("no valid ip found")
}
