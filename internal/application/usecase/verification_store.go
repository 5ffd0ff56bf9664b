package usecase

import (
	"sync"
	"time"
)

// VerificationStore guarda, por transferencia, los códigos que el operador ya
// confirmó físicamente. Es estado efímero de la sesión de recepción: crece de
// forma monótona, se limpia al validar y expira por TTL si la sesión se
// abandona. Protegido con mutex porque Fiber atiende peticiones concurrentes.
type VerificationStore struct {
	mu       sync.Mutex
	sessions map[int64]*verificationSession
	ttl      time.Duration
	now      func() time.Time
}

type verificationSession struct {
	verified map[string]bool
	touched  time.Time
}

// NewVerificationStore construye el store. ttl <= 0 desactiva la expiración.
func NewVerificationStore(ttl time.Duration) *VerificationStore {
	return &VerificationStore{
		sessions: make(map[int64]*verificationSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Mark registra un código verificado. Devuelve false si ya estaba.
func (s *VerificationStore) Mark(transferID int64, barcode string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()

	session := s.sessions[transferID]
	if session == nil {
		session = &verificationSession{verified: make(map[string]bool)}
		s.sessions[transferID] = session
	}
	session.touched = s.now()
	if session.verified[barcode] {
		return false
	}
	session.verified[barcode] = true
	return true
}

// Verified devuelve una copia del conjunto verificado de la transferencia.
func (s *VerificationStore) Verified(transferID int64) map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()

	session := s.sessions[transferID]
	if session == nil {
		return map[string]bool{}
	}
	session.touched = s.now()
	out := make(map[string]bool, len(session.verified))
	for code := range session.verified {
		out[code] = true
	}
	return out
}

// Clear descarta la sesión de la transferencia (tras validar con éxito).
func (s *VerificationStore) Clear(transferID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, transferID)
}

// purgeLocked expira sesiones abandonadas. Llamar con el mutex tomado.
func (s *VerificationStore) purgeLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for id, session := range s.sessions {
		if session.touched.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
