package entities

import "time"

// LogEntry is one line of an entity's audit trail. Logs are append-only and
// never pruned; insertion order is chronological order. Consumers may sort
// descending by timestamp for display, storage order is never rewritten.

type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	User      string    `json:"user"`
}

// UsuarioDesconhecido is the attribution fallback when the caller has neither
// a display name nor an email.
const UsuarioDesconhecido = "Usuário desconhecido"

// Usuario identifies who performed an operation. It is always passed
// explicitly into usecases; there is no ambient session state.
type Usuario struct {
	Nome  string
	Email string
}

// Atribuicao resolves the log attribution: display name, then email, then
// the unknown-user literal.
func (u Usuario) Atribuicao() string {
	if u.Nome != "" {
		return u.Nome
	}
	if u.Email != "" {
		return u.Email
	}
	return UsuarioDesconhecido
}

// NovaEntradaLog stamps a log entry with the current server time.
func NovaEntradaLog(message string, usuario Usuario) LogEntry {
	return LogEntry{
		Timestamp: time.Now().UTC(),
		Message:   message,
		User:      usuario.Atribuicao(),
	}
}

// AppendLog returns a new slice with the entries appended. The input slice is
// never mutated; a nil log is treated as empty. Entries are not deduplicated.
func AppendLog(log []LogEntry, entries ...LogEntry) []LogEntry {
	out := make([]LogEntry, 0, len(log)+len(entries))
	out = append(out, log...)
	out = append(out, entries...)
	return out
}
