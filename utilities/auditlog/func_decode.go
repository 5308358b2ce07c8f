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

package auditlog

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/BrunoReboul/gcptopo/utilities/erm"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Decode reads every JSON document of a log object, gunzipping it when needed.
// It is all or nothing: on any decoding error no record is returned.
func Decode(r io.Reader) (records []json.RawMessage, err error) {
	buffered := bufio.NewReader(r)
	head, err := buffered.Peek(2)
	if err != nil && err != io.EOF {
		return nil, err
	}
	var body io.Reader = buffered
	if len(head) == 2 && head[0] == gzipMagic[0] && head[1] == gzipMagic[1] {
		gzipReader, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, erm.New(erm.Malformed, "gzip.NewReader", err)
		}
		defer gzipReader.Close()
		body = gzipReader
	}
	decoder := json.NewDecoder(body)
	for {
		var record json.RawMessage
		err = decoder.Decode(&record)
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, classifyDecodeError(err)
		}
		records = append(records, record)
	}
}

// DecodeEvents decodes and normalizes a log object, skipping entries without an audit payload
func DecodeEvents(r io.Reader) (events []*Event, err error) {
	records, err := Decode(r)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		event, err := Parse(record)
		if err != nil {
			if errors.Is(err, ErrNotAuditEntry) {
				continue
			}
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

// classifyDecodeError keeps read failures of the underlying body, anything else is malformed content
func classifyDecodeError(err error) error {
	var corrupt flate.CorruptInputError
	var syntax *json.SyntaxError
	var typ *json.UnmarshalTypeError
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.As(err, &corrupt), errors.As(err, &syntax), errors.As(err, &typ),
		errors.Is(err, gzip.ErrChecksum), errors.Is(err, gzip.ErrHeader), errors.Is(err, io.ErrUnexpectedEOF):
		return erm.New(erm.Malformed, "decode", err)
	}
	switch erm.Classify(err) {
	case erm.Transient, erm.Canceled, erm.Authorization, erm.NotFound:
		return err
	}
	return erm.New(erm.Malformed, "decode", err)
}
