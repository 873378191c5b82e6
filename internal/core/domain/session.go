package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// SessionState is the connection lifecycle of the operator session.
type SessionState string

const (
	SessionDisconnected SessionState = "DISCONNECTED"
	SessionConnecting   SessionState = "CONNECTING"
	SessionConnected    SessionState = "CONNECTED"
)

// Session holds the locally bound account/network context for the current
// operator. The admin flag is deliberately absent: admin rights are re-read
// from the ledger on every precondition check, never cached here.
type Session struct {
	State       SessionState   `json:"state"`
	Account     common.Address `json:"account"`
	ChainID     int64          `json:"chain_id"`
	ConnectedAt time.Time      `json:"connected_at"`
}

// NetworkMatches reports whether the session is on the target chain. A
// mismatch is representable state, not an error; it only gates write
// availability until corrected.
func (s *Session) NetworkMatches(target int64) bool {
	return s.State == SessionConnected && s.ChainID == target
}
