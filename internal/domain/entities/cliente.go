package entities

import "time"

// Cliente is a client-role account. Checks are scoped to a cliente through
// Cheque.ClienteID; listing for client callers must filter at the query
// level, never after the fetch.
//
// Senha is stored as argon2id hash + salt, never in clear text.

type Cliente struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	SenhaHash string    `json:"-"`
	SenhaSalt string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
