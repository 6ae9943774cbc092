package httphandlers

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fwgate/internal/service"
	"fwgate/internal/types"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"net/http"
	"strconv"
	"time"
)

type (
	ApiHandler struct {
		control   service.Control
		accessKey string
		logger    *zap.Logger
	}

	ctxKey struct{}
)

func NewApiHandler(control service.Control, accessKey string, l *zap.Logger) *ApiHandler {
	if l == nil {
		l = zap.NewNop()
	}
	return &ApiHandler{control: control, accessKey: accessKey, logger: l.Named("http")}
}

func (handler *ApiHandler) BlockIP(w http.ResponseWriter, r *http.Request) {
	handler.intent(w, r, handler.control.BlockIP)
}

func (handler *ApiHandler) AllowIP(w http.ResponseWriter, r *http.Request) {
	handler.intent(w, r, handler.control.AllowIP)
}

func (handler *ApiHandler) BlockPort(w http.ResponseWriter, r *http.Request) {
	handler.intent(w, r, handler.control.BlockPort)
}

func (handler *ApiHandler) AllowPort(w http.ResponseWriter, r *http.Request) {
	handler.intent(w, r, handler.control.AllowPort)
}

func (handler *ApiHandler) intent(w http.ResponseWriter, r *http.Request, call func(context.Context, types.ControlRequest) types.Outcome) {
	var params types.ControlRequest
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		o := types.Outcome{
			Status:  types.StatusValidationError,
			Message: errors.Wrap(err, "invalid request body").Error(),
		}
		outcome(w, o, o)
		return
	}

	o := call(r.Context(), params)
	outcome(w, o, o)
}

func (handler *ApiHandler) ListRules(w http.ResponseWriter, r *http.Request) {
	reply := handler.control.ListRules(r.Context())
	outcome(w, reply.Outcome, reply)
}

func (handler *ApiHandler) PortStatus(w http.ResponseWriter, r *http.Request) {
	port, err := strconv.Atoi(chi.URLParam(r, "port"))
	if err != nil {
		reply := types.PortStatusReply{Outcome: types.Outcome{
			Status:  types.StatusValidationError,
			Message: errors.Wrap(err, "invalid port").Error(),
		}}
		outcome(w, reply.Outcome, reply)
		return
	}

	reply := handler.control.PortStatus(r.Context(), types.PortStatusRequest{Port: port})
	outcome(w, reply.Outcome, reply)
}

// Authenticate rejects requests that do not carry the access key. An empty
// key disables the check.
func (handler *ApiHandler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler.accessKey != "" {
			key := r.Header.Get(authorizationHeader)
			if subtle.ConstantTimeCompare([]byte(key), []byte(handler.accessKey)) != 1 {
				unauthorized(w, errors.New("invalid access key"))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequestLogger tags every request with an id and logs its completion.
func (handler *ApiHandler) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rw, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))

		handler.logger.Info("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rw.status),
			zap.Duration("took", time.Since(start)))
	})
}

// RequestID returns the id RequestLogger attached to ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
