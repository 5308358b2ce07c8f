// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package erm

import (
	"context"
	"errors"
	"net"
	"net/http"
	"regexp"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// transientMessage matches a 5xx status quoted by a client that lost the typed error, never a bare number
var transientMessage = regexp.MustCompile(`(?i)\b(error|status|code|http)[ :]*5\d\d\b`)

type grpcStatus interface {
	GRPCStatus() *status.Status
}

// Classify maps any error returned by a provider client to a Class
func Classify(err error) Class {
	if err == nil {
		return None
	}
	var classifiedError *ClassifiedError
	if errors.As(err, &classifiedError) {
		return classifiedError.Class
	}
	if errors.Is(err, context.Canceled) {
		return Canceled
	}
	if errors.Is(err, storage.ErrBucketNotExist) || errors.Is(err, storage.ErrObjectNotExist) {
		return NotFound
	}
	var apiError *googleapi.Error
	if errors.As(err, &apiError) {
		return classifyHTTPCode(apiError.Code)
	}
	var withStatus grpcStatus
	if errors.As(err, &withStatus) {
		return classifyGRPCCode(withStatus.GRPCStatus().Code())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Canceled
	}
	var netError net.Error
	if errors.As(err, &netError) && netError.Timeout() {
		return Transient
	}
	if transientMessage.MatchString(err.Error()) {
		return Transient
	}
	return Other
}

func classifyHTTPCode(code int) Class {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return Authorization
	case code == http.StatusNotFound:
		return NotFound
	case code == http.StatusRequestTimeout || code == http.StatusTooManyRequests || code >= 500:
		return Transient
	}
	return Other
}

func classifyGRPCCode(code codes.Code) Class {
	switch code {
	case codes.PermissionDenied, codes.Unauthenticated:
		return Authorization
	case codes.NotFound:
		return NotFound
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted, codes.Internal:
		return Transient
	case codes.Canceled:
		return Canceled
	}
	return Other
}

// IsAuthorization reports whether err is an authorization failure
func IsAuthorization(err error) bool {
	return Classify(err) == Authorization
}

// IsNotFound reports whether err reports a missing bucket, object or resource
func IsNotFound(err error) bool {
	return Classify(err) == NotFound
}
