// Package logging provides structured logging for asnber tools.
//
// The Logger interface is backed by go.uber.org/zap. Entries carry
// key-value pairs and can be rendered as JSON or as console text.
//
// # Creating a Logger
//
//	logger := logging.New(logging.Config{
//	    Level:  "debug",
//	    Format: "json",
//	    Output: "stderr",
//	})
//
// For tests and library callers, use a no-op logger:
//
//	logger := logging.NewNop()
//
// # Log Levels
//
// Four log levels are supported. Unknown level names fall back to info:
//
//	logger.Debug("detailed debugging info", "key", "value")
//	logger.Info("informational message", "key", "value")
//	logger.Warn("warning message", "key", "value")
//	logger.Error("error message", "key", "value")
//
// # Run IDs
//
// Each command invocation tags its entries with a run ID so that the lines
// of one batch can be correlated:
//
//	log := logger.WithRunID(logging.GenerateRunID())
package logging
