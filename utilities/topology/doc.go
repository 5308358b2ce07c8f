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

/*
Package topology accumulates components and relations into a snapshot

A Sink is shared by every region and collector of one check run. It is safe
for concurrent use. Identity is the component id, and the
(source, target, type) triple for relations: emitting twice overwrites the
data in place, the position of the first emission is kept.

The seen set lets handlers skip redundant work. It lives for one snapshot
and is reset by StartSnapshot.
*/
package topology
