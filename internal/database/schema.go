package database

import (
	"context"
	"fmt"
)

// Schema definitions for all Gatherly tables.
//
// Tables are SCHEMAFULL so SurrealDB rejects writes with unexpected
// fields. Unique indexes back the application-level duplicate checks:
// one account per email, and one like per (user, post) pair.

// tableNames lists every table in dependency order. Drops run in
// reverse so children go before parents.
var tableNames = []string{
	"user",
	"post",
	"comment",
	"like",
	"event",
	"attending",
	"invoice",
}

var schemaStatements = []string{
	`DEFINE TABLE user SCHEMAFULL;
	DEFINE FIELD name ON user TYPE string;
	DEFINE FIELD username ON user TYPE string;
	DEFINE FIELD email ON user TYPE string;
	DEFINE FIELD password_hash ON user TYPE string;
	DEFINE FIELD is_admin ON user TYPE bool DEFAULT false;
	DEFINE FIELD created_at ON user TYPE datetime DEFAULT time::now();
	DEFINE INDEX user_email_unique ON user FIELDS email UNIQUE`,

	`DEFINE TABLE post SCHEMAFULL;
	DEFINE FIELD title ON post TYPE string;
	DEFINE FIELD content ON post TYPE string;
	DEFINE FIELD date ON post TYPE datetime DEFAULT time::now();
	DEFINE FIELD location ON post TYPE option<string>;
	DEFINE FIELD image_url ON post TYPE option<string>;
	DEFINE FIELD user ON post TYPE record<user>;
	DEFINE INDEX post_user ON post FIELDS user`,

	`DEFINE TABLE comment SCHEMAFULL;
	DEFINE FIELD content ON comment TYPE string;
	DEFINE FIELD date ON comment TYPE datetime DEFAULT time::now();
	DEFINE FIELD user ON comment TYPE record<user>;
	DEFINE FIELD post ON comment TYPE record<post>;
	DEFINE INDEX comment_post ON comment FIELDS post`,

	`DEFINE TABLE like SCHEMAFULL;
	DEFINE FIELD user ON like TYPE record<user>;
	DEFINE FIELD post ON like TYPE record<post>;
	DEFINE INDEX like_user_post_unique ON like FIELDS user, post UNIQUE`,

	`DEFINE TABLE event SCHEMAFULL;
	DEFINE FIELD title ON event TYPE string;
	DEFINE FIELD description ON event TYPE string;
	DEFINE FIELD date ON event TYPE string;
	DEFINE FIELD ticket_price ON event TYPE float DEFAULT 0.0;
	DEFINE FIELD user ON event TYPE record<user>;
	DEFINE INDEX event_user ON event FIELDS user`,

	`DEFINE TABLE attending SCHEMAFULL;
	DEFINE FIELD seat_number ON attending TYPE string;
	DEFINE FIELD total_tickets ON attending TYPE int DEFAULT 1;
	DEFINE FIELD date ON attending TYPE datetime DEFAULT time::now();
	DEFINE FIELD event ON attending TYPE record<event>;
	DEFINE FIELD user ON attending TYPE record<user>;
	DEFINE INDEX attending_event ON attending FIELDS event`,

	`DEFINE TABLE invoice SCHEMAFULL;
	DEFINE FIELD total_cost ON invoice TYPE float;
	DEFINE FIELD date ON invoice TYPE datetime DEFAULT time::now();
	DEFINE FIELD event ON invoice TYPE record<event>;
	DEFINE FIELD user ON invoice TYPE record<user>;
	DEFINE INDEX invoice_event ON invoice FIELDS event`,
}

// DefineSchema creates all tables, fields, and indexes.
// Statements use OVERWRITE-free definitions so re-running against an
// existing schema is a no-op at worst; drop first for a clean slate.
func DefineSchema(ctx context.Context, db Database) error {
	for _, stmt := range schemaStatements {
		if err := db.Execute(ctx, stmt, nil); err != nil {
			return fmt.Errorf("define schema: %w", err)
		}
	}
	return nil
}

// DropSchema removes all tables and their records.
func DropSchema(ctx context.Context, db Database) error {
	for i := len(tableNames) - 1; i >= 0; i-- {
		stmt := fmt.Sprintf("REMOVE TABLE IF EXISTS %s", tableNames[i])
		if err := db.Execute(ctx, stmt, nil); err != nil {
			return fmt.Errorf("drop schema: %w", err)
		}
	}
	return nil
}
