/*
Package ddb implements kvstore.Store on AWS DynamoDB.

Records use a single-table layout so several stores can share one table:

	PK        = "KV#<namespace>"
	SK        = <key>
	Value     = <opaque blob>
	UpdatedAt = <RFC3339 timestamp>

A Store is scoped to one namespace at construction time:

	store, err := ddb.New(accessKey, secretKey, region, tableName, "user")
	...
	err = store.Set(ctx, "1000", blob)
	blob, err = store.Get(ctx, "1000")

Keys and Stream page through the namespace partition with a Query, optionally
narrowed by key prefix via begins_with. Stream retries transient query errors
with configurable backoff (kvstore.StreamOption).

Integration tests for this package require AWS credentials and a table name
in the environment (see ddbstore_integration_test.go) and are gated behind
the integration build tag.
*/
package ddb
