package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

type RecoverMiddleware struct {
	log     *logrus.Logger
	onPanic http.Handler
}

// NewRecoverMiddleware serves onPanic (the 500 page) when a handler panics.
func NewRecoverMiddleware(log *logrus.Logger, onPanic http.Handler) *RecoverMiddleware {
	return &RecoverMiddleware{log: log, onPanic: onPanic}
}

func (m *RecoverMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				m.log.WithFields(logrus.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"panic":  rec,
				}).Errorf("Recovered from panic: %s", debug.Stack())
				m.onPanic.ServeHTTP(w, r)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
