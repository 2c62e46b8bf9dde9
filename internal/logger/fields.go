package logger

import (
	"go.uber.org/zap"
)

func IntentID(id string) zap.Field  { return zap.String("intent_id", id) }
func Address(a string) zap.Field    { return zap.String("address", a) }
func State(s string) zap.Field      { return zap.String("state", s) }
func Outcome(o string) zap.Field    { return zap.String("outcome", o) }
func Component(c string) zap.Field  { return zap.String("component", c) }
func RequestID(id string) zap.Field { return zap.String("request_id", id) }
func Err(err error) zap.Field       { return zap.Error(err) }
