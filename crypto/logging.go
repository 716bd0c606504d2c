package crypto

import "github.com/sirupsen/logrus"

// LoggerHelper attaches standardized fields to every log line emitted by
// the crypto package's key-generation path.
type LoggerHelper struct {
	fields logrus.Fields
}

// NewLogger creates a new logger helper with standardized fields.
func NewLogger(function string) *LoggerHelper {
	return &LoggerHelper{
		fields: logrus.Fields{
			"function": function,
			"package":  "crypto",
		},
	}
}

// WithError adds error information to the logger.
func (l *LoggerHelper) WithError(err error, errorType, operation string) *LoggerHelper {
	fields := make(logrus.Fields, len(l.fields)+3)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields["error"] = err.Error()
	fields["error_type"] = errorType
	fields["operation"] = operation
	return &LoggerHelper{fields: fields}
}

// Debug logs a debug message.
func (l *LoggerHelper) Debug(message string) { logrus.WithFields(l.fields).Debug(message) }

// Error logs an error message.
func (l *LoggerHelper) Error(message string) { logrus.WithFields(l.fields).Error(message) }
