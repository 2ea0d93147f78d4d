// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package sqlite

const schema = `
CREATE TABLE IF NOT EXISTS classrooms (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	building    TEXT NOT NULL DEFAULT '',
	floor       TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	capacity    INTEGER NOT NULL DEFAULT 0,
	equipment   TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS staff (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL DEFAULT '',
	department TEXT NOT NULL DEFAULT '',
	position   TEXT NOT NULL DEFAULT '',
	phone      TEXT NOT NULL DEFAULT '',
	office     TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS schedules (
	id         TEXT PRIMARY KEY,
	subject    TEXT NOT NULL,
	staff_name TEXT NOT NULL DEFAULT '',
	classroom  TEXT NOT NULL DEFAULT '',
	time       TEXT NOT NULL DEFAULT '',
	days       TEXT NOT NULL DEFAULT '[]',
	career     TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS contacts (
	id       TEXT PRIMARY KEY,
	area     TEXT NOT NULL,
	email    TEXT NOT NULL DEFAULT '',
	phone    TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	hours    TEXT NOT NULL DEFAULT ''
);
`
