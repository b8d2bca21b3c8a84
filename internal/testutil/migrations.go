// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package testutil

// SchemaDDL creates the full set of tables the repositories read and write.
// It mirrors the production migration; repository tests apply it to their
// isolated schema.
const SchemaDDL = `
	CREATE TABLE companies (
		handle TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		num_employees INTEGER NOT NULL DEFAULT 0,
		logo_url TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE jobs (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		salary DOUBLE PRECISION NOT NULL DEFAULT 0,
		equity DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (equity <= 1.0),
		company_handle TEXT NOT NULL REFERENCES companies (handle) ON DELETE CASCADE
	);

	CREATE TABLE users (
		username TEXT PRIMARY KEY,
		password TEXT NOT NULL,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		email TEXT UNIQUE NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE
	);

	CREATE TABLE applications (
		username TEXT NOT NULL REFERENCES users (username) ON DELETE CASCADE,
		job_id INTEGER NOT NULL REFERENCES jobs (id) ON DELETE CASCADE,
		PRIMARY KEY (username, job_id)
	);
`
