/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package modelstore

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for model store events.
var (
	SignalSaveStart      = capitan.NewSignal("modelstore.save.start", "Save operation beginning")
	SignalSaveComplete   = capitan.NewSignal("modelstore.save.complete", "Save operation finished")
	SignalLoadStart      = capitan.NewSignal("modelstore.load.start", "Load operation beginning")
	SignalLoadComplete   = capitan.NewSignal("modelstore.load.complete", "Load operation finished")
	SignalDeleteComplete = capitan.NewSignal("modelstore.delete.complete", "Delete operation finished")
)

// Keys for typed event data.
var (
	KeyModel    = capitan.NewStringKey("model")
	KeyStoreKey = capitan.NewStringKey("key")
	KeySize     = capitan.NewIntKey("size")
	KeyDuration = capitan.NewDurationKey("duration")
	KeyError    = capitan.NewErrorKey("error")
)

// emitSaveStart emits an event when a save begins.
func emitSaveStart(ctx context.Context, model, key string) {
	capitan.Emit(ctx, SignalSaveStart,
		KeyModel.Field(model),
		KeyStoreKey.Field(key),
	)
}

// emitSaveComplete emits an event when a save finishes.
func emitSaveComplete(ctx context.Context, model, key string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyModel.Field(model),
		KeyStoreKey.Field(key),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSaveComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSaveComplete, fields...)
	}
}

// emitLoadStart emits an event when a load begins.
func emitLoadStart(ctx context.Context, model, key string) {
	capitan.Emit(ctx, SignalLoadStart,
		KeyModel.Field(model),
		KeyStoreKey.Field(key),
	)
}

// emitLoadComplete emits an event when a load finishes.
func emitLoadComplete(ctx context.Context, model, key string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyModel.Field(model),
		KeyStoreKey.Field(key),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalLoadComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalLoadComplete, fields...)
	}
}

// emitDeleteComplete emits an event when a delete finishes.
func emitDeleteComplete(ctx context.Context, model, key string, err error) {
	fields := []capitan.Field{
		KeyModel.Field(model),
		KeyStoreKey.Field(key),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDeleteComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDeleteComplete, fields...)
	}
}
