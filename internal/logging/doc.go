// Package logging provides structured logging for obaquery.
//
// # Overview
//
// Logger is a small key/value logging interface backed by zap. It
// supports four levels, text or JSON output and contextual fields.
//
// # Creating a Logger
//
//	logger, err := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	    Output: "stderr",
//	})
//
// Output is "stdout", "stderr" or a file path. For tests, use
// NewNop or NewWithWriter:
//
//	var buf bytes.Buffer
//	logger := logging.NewWithWriter(logging.LevelDebug, logging.FormatJSON, &buf)
//
// # Context
//
// WithFields and WithRequestID return child loggers; the parent is
// unchanged:
//
//	reqLogger := logger.WithRequestID(logging.GenerateRequestID())
//	reqLogger.Info("filter built", "filter", b.Query())
package logging
