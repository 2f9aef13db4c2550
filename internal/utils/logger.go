package utils

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// NovoLogger constrói o logger da aplicação. LOG_DEV=true troca para o
// formato legível de desenvolvimento.
func NovoLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// MiddlewareLogs regista cada pedido HTTP com método, rota, status e duração.
func MiddlewareLogs(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inicio := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.Info("pedido",
				zap.String("metodo", r.Method),
				zap.String("rota", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duracao", time.Since(inicio)),
			)
		})
	}
}
