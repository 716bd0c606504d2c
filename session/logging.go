package session

import "github.com/sirupsen/logrus"

// sessionLogger attaches standardized fields to every log line emitted by
// the session core, in the style of the crypto package's LoggerHelper. It
// never receives key material, shared secrets, or plaintext as a field
// value — only state names, directions, and nonce kinds.
type sessionLogger struct {
	fields logrus.Fields
}

func newLogger(function string) *sessionLogger {
	return &sessionLogger{
		fields: logrus.Fields{
			"function": function,
			"package":  "session",
		},
	}
}

func (l *sessionLogger) withField(key string, value interface{}) *sessionLogger {
	fields := make(logrus.Fields, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value
	return &sessionLogger{fields: fields}
}

func (l *sessionLogger) debug(message string) { logrus.WithFields(l.fields).Debug(message) }
func (l *sessionLogger) info(message string)  { logrus.WithFields(l.fields).Info(message) }
func (l *sessionLogger) warn(message string)  { logrus.WithFields(l.fields).Warn(message) }
