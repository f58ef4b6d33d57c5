package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AuditEventType names a decision-session event in the audit log.
type AuditEventType string

const (
	AuditSessionStart AuditEventType = "session_start"
	AuditSessionEnd   AuditEventType = "session_end"
	AuditRound        AuditEventType = "round"
	AuditSelection    AuditEventType = "selection"
	AuditCommand      AuditEventType = "command"
)

// AuditEvent is one JSON line in the audit log.
type AuditEvent struct {
	EventType AuditEventType
	SessionID string
	Method    string
	Round     int
	Remaining int
	Input     string
	Solution  string
	Message   string
}

var (
	auditFile *os.File
	auditCore *zap.Logger
	auditMu   sync.Mutex
)

// InitAudit opens <dir>/<date>_audit.log. It does nothing outside debug mode.
func InitAudit() error {
	if !IsDebugMode() {
		return nil
	}

	auditMu.Lock()
	defer auditMu.Unlock()
	if auditFile != nil {
		return nil
	}

	optionsMu.RLock()
	dir := options.Dir
	optionsMu.RUnlock()

	date := time.Now().Format("2006-01-02")
	auditPath := filepath.Join(dir, fmt.Sprintf("%s_audit.log", date))
	file, err := os.OpenFile(auditPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	auditFile = file

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.EpochMillisTimeEncoder
	encCfg.TimeKey = "ts"
	encCfg.MessageKey = "event"
	auditCore = zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(file), zapcore.InfoLevel))
	return nil
}

// CloseAudit closes the audit log file
func CloseAudit() {
	auditMu.Lock()
	defer auditMu.Unlock()

	if auditCore != nil {
		_ = auditCore.Sync()
		auditCore = nil
	}
	if auditFile != nil {
		auditFile.Close()
		auditFile = nil
	}
}

// AuditLogger writes audit events scoped to one session.
type AuditLogger struct {
	sessionID string
	method    string
}

// AuditWithSession returns an audit logger for a session and method.
func AuditWithSession(sessionID, method string) *AuditLogger {
	return &AuditLogger{sessionID: sessionID, method: method}
}

// Log writes an audit event
func (a *AuditLogger) Log(event AuditEvent) {
	auditMu.Lock()
	defer auditMu.Unlock()
	if auditCore == nil {
		return
	}

	if event.SessionID == "" {
		event.SessionID = a.sessionID
	}
	if event.Method == "" {
		event.Method = a.method
	}

	fields := []zap.Field{
		zap.String("session", event.SessionID),
		zap.String("method", event.Method),
		zap.Int("round", event.Round),
		zap.Int("remaining", event.Remaining),
	}
	if event.Input != "" {
		fields = append(fields, zap.String("input", event.Input))
	}
	if event.Solution != "" {
		fields = append(fields, zap.String("solution", event.Solution))
	}
	if event.Message != "" {
		fields = append(fields, zap.String("msg", event.Message))
	}
	auditCore.Info(string(event.EventType), fields...)
}

func (a *AuditLogger) SessionStart() {
	a.Log(AuditEvent{EventType: AuditSessionStart})
}

func (a *AuditLogger) SessionEnd(rounds, remaining int, solution string) {
	a.Log(AuditEvent{EventType: AuditSessionEnd, Round: rounds, Remaining: remaining, Solution: solution})
}

func (a *AuditLogger) Round(round, remaining int, input, solution string) {
	a.Log(AuditEvent{EventType: AuditRound, Round: round, Remaining: remaining, Input: input, Solution: solution})
}

func (a *AuditLogger) Selection(round, remaining int, index, point string) {
	a.Log(AuditEvent{EventType: AuditSelection, Round: round, Remaining: remaining, Input: index, Solution: point})
}

func (a *AuditLogger) Command(round, remaining int, token string) {
	a.Log(AuditEvent{EventType: AuditCommand, Round: round, Remaining: remaining, Input: token})
}
