//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/joho/godotenv"

	"github.com/suparena/modelstore/codec"
	"github.com/suparena/modelstore/errors"
	"github.com/suparena/modelstore/testmodels"
)

func getUserStore(t *testing.T) *Store {
	t.Helper()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	awsAccessKey := os.Getenv("AWS_ACCESS_KEY")
	awsSecretKey := os.Getenv("AWS_SECRET_KEY")
	awsDDBTableName := os.Getenv("AWS_DDB_TABLE")
	region := os.Getenv("AWS_REGION")

	if awsDDBTableName == "" {
		t.Skip("AWS_DDB_TABLE not set, skipping integration test")
	}

	store, err := New(awsAccessKey, awsSecretKey, region, awsDDBTableName, "modelstore-test")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

func TestDDBSetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := getUserStore(t)

	ct := strfmt.DateTime(time.Now())
	user := &testmodels.User{
		ID:        1000,
		Name:      "Clay",
		Email:     "clay@mail.com",
		CreatedAt: &ct,
	}

	blob, err := codec.EncodeBlob(user)
	if err != nil {
		t.Fatalf("EncodeBlob failed: %v", err)
	}

	if err := store.Set(ctx, "user#1000", blob); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := store.Get(ctx, "user#1000")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	decoded, err := codec.DecodeBlob[testmodels.User](got)
	if err != nil {
		t.Fatalf("DecodeBlob failed: %v", err)
	}
	if decoded.ID != 1000 || decoded.Name != "Clay" || decoded.Email != "clay@mail.com" {
		t.Fatalf("Round trip mismatch: %+v", decoded)
	}

	if err := store.Delete(ctx, "user#1000"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "user#1000"); !errors.IsNotFound(err) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestDDBKeysAndStream(t *testing.T) {
	ctx := context.Background()
	store := getUserStore(t)

	for _, key := range []string{"stream#1", "stream#2", "stream#3"} {
		if err := store.Set(ctx, key, []byte(key)); err != nil {
			t.Fatalf("Set %s failed: %v", key, err)
		}
	}
	defer func() {
		for _, key := range []string{"stream#1", "stream#2", "stream#3"} {
			store.Delete(ctx, key)
		}
	}()

	keys, err := store.Keys(ctx, "stream#")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 3 {
		t.Fatalf("Expected 3 keys, got %v", keys)
	}

	var streamed []string
	for result := range store.Stream(ctx, "stream#") {
		if result.Error != nil {
			t.Fatalf("Stream error: %v", result.Error)
		}
		streamed = append(streamed, result.Key)
	}
	if len(streamed) != 3 || streamed[0] != "stream#1" {
		t.Fatalf("Expected ordered stream, got %v", streamed)
	}
}
