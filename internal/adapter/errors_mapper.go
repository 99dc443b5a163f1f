// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError turns a non-2xx blog server reply into a *ResponseError that
// unwraps to the sentinel for its status. The error key and entity come from
// the X-<app>-error and X-<app>-params headers, whatever the server's app
// name is.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{
		StatusCode: status,
		Message:    strings.TrimSpace(string(resp.Body())),
		kind:       statusErrors[status],
	}
	if respErr.Message == "" {
		respErr.Message = http.StatusText(status)
	}

	for name, values := range resp.Header() {
		if len(values) == 0 || !strings.HasPrefix(name, "X-") {
			continue
		}
		switch {
		case strings.HasSuffix(name, "-Error"):
			respErr.Key = values[0]
		case strings.HasSuffix(name, "-Params"):
			respErr.Entity = values[0]
		}
	}

	return respErr
}
