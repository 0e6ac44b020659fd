// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"

	"github.com/guichet-ga/guichet/internal/app/store/audit"
	"github.com/guichet-ga/guichet/internal/app/system/session"
	"github.com/guichet-ga/guichet/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Mode controls where auth audit events go.
// Values: "all" (MongoDB + zap), "db" (MongoDB only), "log" (zap only),
// "off" (disabled).
type Mode = string

const (
	ModeAll = "all"
	ModeDB  = "db"
	ModeLog = "log"
	ModeOff = "off"
)

// requestInfo carries the client ip and user agent from the HTTP layer
// down to wherever the audit entry is written.
type requestInfo struct {
	IP        string
	UserAgent string
}

type ctxKey string

const requestInfoKey ctxKey = "auditRequestInfo"

// WithRequestInfo stashes the request's client ip and user agent in the
// context so deeper layers can audit without holding the *http.Request.
func WithRequestInfo(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, requestInfoKey, requestInfo{
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
	})
}

func infoFrom(ctx context.Context) requestInfo {
	info, _ := ctx.Value(requestInfoKey).(requestInfo)
	return info
}

// clientIP extracts the client IP, preferring reverse-proxy headers.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

// Recorder writes auth audit entries to MongoDB (via audit.Store) and
// structured logs (via zap), as selected by its mode.
type Recorder struct {
	store  *audit.Store
	zapLog *zap.Logger
	mode   Mode
}

// New creates a Recorder. An unrecognized mode behaves like "all".
func New(store *audit.Store, zapLog *zap.Logger, mode Mode) *Recorder {
	return &Recorder{
		store:  store,
		zapLog: zapLog,
		mode:   mode,
	}
}

func (l *Recorder) logToZap(entry audit.Entry) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("action", entry.Action),
		zap.Bool("success", entry.Success),
		zap.String("ip", entry.IP),
	}
	if entry.UserID != nil {
		fields = append(fields, zap.String("user_id", entry.UserID.Hex()))
	}
	if entry.UserEmail != "" {
		fields = append(fields, zap.String("user_email", entry.UserEmail))
	}
	if entry.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", entry.FailureReason))
	}
	for k, v := range entry.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if entry.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// record writes the entry per the configured mode. A nil Recorder is a
// no-op so tests can pass nil. Insert failures are logged, never
// propagated: auditing must not break the auth flow.
func (l *Recorder) record(ctx context.Context, entry audit.Entry) {
	if l == nil || l.mode == ModeOff {
		return
	}

	info := infoFrom(ctx)
	if entry.IP == "" {
		entry.IP = info.IP
	}
	if entry.UserAgent == "" {
		entry.UserAgent = info.UserAgent
	}

	if l.mode == ModeAll || l.mode == ModeLog {
		l.logToZap(entry)
	}
	if l.mode == ModeAll || l.mode == ModeDB {
		if err := l.store.Append(ctx, entry); err != nil {
			l.zapLog.Error("failed to store audit entry",
				zap.Error(err),
				zap.String("action", entry.Action),
			)
		}
	}
}

// LoginSucceeded records a LOGIN entry for the user.
func (l *Recorder) LoginSucceeded(ctx context.Context, user *models.User) {
	l.record(ctx, audit.Entry{
		Action:    audit.ActionLogin,
		UserID:    &user.ID,
		UserEmail: user.Email,
		Success:   true,
		Details: map[string]string{
			"method": "credentials",
			"role":   string(user.Role),
		},
	})
}

// LoginFailed records a LOGIN_FAILED entry. Only the attempted email
// is known; reason says which check failed.
func (l *Recorder) LoginFailed(ctx context.Context, email, reason string) {
	l.record(ctx, audit.Entry{
		Action:        audit.ActionLoginFailed,
		UserEmail:     email,
		Success:       false,
		FailureReason: reason,
	})
}

// LoggedOut records a LOGOUT entry from session claims.
func (l *Recorder) LoggedOut(ctx context.Context, claims *session.Claims) {
	var userID *primitive.ObjectID
	if oid, err := primitive.ObjectIDFromHex(claims.UserID); err == nil {
		userID = &oid
	}
	l.record(ctx, audit.Entry{
		Action:    audit.ActionLogout,
		UserID:    userID,
		UserEmail: claims.Email,
		Success:   true,
	})
}
