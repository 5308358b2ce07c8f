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
	"bytes"
	"strings"
	"testing"

	"github.com/BrunoReboul/gcptopo/utilities/erm"
	"github.com/klauspost/compress/gzip"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buffer bytes.Buffer
	w := gzip.NewWriter(&buffer)
	if _, err := w.Write([]byte(s)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buffer.Bytes()
}

// corruptGzip compresses n copies of record and flips one byte in the middle of the deflate stream
func corruptGzip(t *testing.T, record string, n int) []byte {
	t.Helper()
	body := gzipBytes(t, strings.Repeat(record+"\n", n))
	body[len(body)/2] ^= 0xff
	return body
}

func TestUnitDecodeCorruptGzipAnyPosition(t *testing.T) {
	one := makeEntry("1", "storage.googleapis.com", "storage.buckets.create", "projects/_/buckets/b1", `{"project_id":"p"}`, "2021-06-11T05:18:05Z")
	pristine := gzipBytes(t, strings.Repeat(one+"\n", 50))
	// header and trailer bytes excluded, a flipped length or mtime is not corruption of the content
	for i := 10; i < len(pristine)-8; i++ {
		body := append([]byte(nil), pristine...)
		body[i] ^= 0xff
		_, err := DecodeEvents(bytes.NewReader(body))
		if err == nil {
			continue
		}
		if class := erm.Classify(err); class != erm.Malformed {
			t.Fatalf("byte %d: want malformed got %s: %v", i, class, err)
		}
	}
}

func TestUnitDecode(t *testing.T) {
	one := makeEntry("1", "storage.googleapis.com", "storage.buckets.create", "projects/_/buckets/b1", `{"project_id":"p","location":"europe-west1"}`, "2021-06-11T05:18:05Z")
	two := makeEntry("2", "storage.googleapis.com", "storage.buckets.update", "projects/_/buckets/b1", `{"project_id":"p","location":"europe-west1"}`, "2021-06-11T05:19:05Z")
	var testCases = []struct {
		name        string
		content     []byte
		wantRecords int
		wantClass   erm.Class
	}{
		{"newlineDelimited", []byte(one + "\n" + two + "\n"), 2, erm.None},
		{"concatenated", []byte(one + two), 2, erm.None},
		{"gzip", gzipBytes(t, one+"\n"+two), 2, erm.None},
		{"empty", []byte{}, 0, erm.None},
		{"wrongJSON", []byte(one + "\n" + "this is not json"), 0, erm.Malformed},
		{"incompleteJSON", []byte(one + "\n" + two[:len(two)/2]), 0, erm.Malformed},
		{"truncatedGzip", gzipBytes(t, one+two)[:40], 0, erm.Malformed},
		{"corruptGzip", corruptGzip(t, one, 400), 0, erm.Malformed},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			records, err := Decode(bytes.NewReader(tc.content))
			if erm.Classify(err) != tc.wantClass {
				t.Fatalf("want class %s got %v", tc.wantClass, err)
			}
			if len(records) != tc.wantRecords {
				t.Errorf("want %d records got %d", tc.wantRecords, len(records))
			}
		})
	}
}

func TestUnitDecodeEventsSkipsNonAuditEntries(t *testing.T) {
	content := strings.Join([]string{
		`{"insertId":"0","textPayload":"hello","timestamp":"2021-06-11T05:00:00Z"}`,
		makeEntry("1", "pubsub.googleapis.com", "google.pubsub.v1.Publisher.CreateTopic", "projects/p/topics/t1", `{"project_id":"p"}`, "2021-06-11T05:18:05Z"),
	}, "\n")
	events, err := DecodeEvents(strings.NewReader(content))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("want 1 event got %d", len(events))
	}
	if events[0].Service != "pubsub.googleapis.com" || events[0].EventName != "google.pubsub.v1.Publisher.CreateTopic" {
		t.Errorf("unexpected event %s %s", events[0].Service, events[0].EventName)
	}
}
