package gamenet

import "github.com/sirupsen/logrus"

// procLogger mirrors the session package's logger shape for gamenet's own
// components. It never receives key material, shared secrets, or
// plaintext as a field value.
type procLogger struct {
	fields logrus.Fields
}

func newProcLogger(function string) *procLogger {
	return &procLogger{
		fields: logrus.Fields{
			"function": function,
			"package":  "gamenet",
		},
	}
}

func (l *procLogger) withField(key string, value interface{}) *procLogger {
	fields := make(logrus.Fields, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value
	return &procLogger{fields: fields}
}

func (l *procLogger) debug(message string) { logrus.WithFields(l.fields).Debug(message) }
func (l *procLogger) info(message string)  { logrus.WithFields(l.fields).Info(message) }
func (l *procLogger) warn(message string)  { logrus.WithFields(l.fields).Warn(message) }
