package session

import (
	"go.uber.org/zap"

	"petcare-client/internal/model"
)

// Storage keys, kept byte-for-byte compatible with the mobile app so a
// session file survives either direction.
const (
	KeyUserID    = "userId"
	KeyUserName  = "userName"
	KeyUserEmail = "userEmail"
	KeyUserType  = "userType"
)

// Session is the locally persisted identity, handed to every controller
// instead of being read ambiently. It is replaced wholesale on login and
// destroyed on logout; there is no partial mutation.
//
// Storage failures are logged and swallowed: a screen that cannot read
// the session proceeds as anonymous.
type Session struct {
	store Store
	log   *zap.Logger
}

func New(store Store, log *zap.Logger) *Session {
	return &Session{store: store, log: log}
}

// Begin records a successful login or registration.
func (s *Session) Begin(id model.UserID, name, email string, role model.Role) {
	err := s.store.SetAll(map[string]string{
		KeyUserID:    id.String(),
		KeyUserName:  name,
		KeyUserEmail: email,
		KeyUserType:  role.StorageValue(),
	})
	if err != nil {
		s.log.Error("session write failed", zap.Error(err))
	}
}

// End clears every session key. The next Role call answers anonymous.
func (s *Session) End() {
	if err := s.store.Clear(); err != nil {
		s.log.Error("session clear failed", zap.Error(err))
	}
}

func (s *Session) get(key string) (string, bool) {
	v, ok, err := s.store.Get(key)
	if err != nil {
		s.log.Error("session read failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return v, ok
}

func (s *Session) UserID() (model.UserID, bool) {
	raw, ok := s.get(KeyUserID)
	if !ok {
		return 0, false
	}
	id, err := model.ParseUserID(raw)
	if err != nil {
		s.log.Error("stored userId is not a number", zap.String("userId", raw))
		return 0, false
	}
	return id, true
}

func (s *Session) UserName() (string, bool) { return s.get(KeyUserName) }

func (s *Session) UserEmail() (string, bool) { return s.get(KeyUserEmail) }

// Role returns nil for an anonymous (or unreadable) session.
func (s *Session) Role() *model.Role {
	raw, ok := s.get(KeyUserType)
	if !ok {
		return nil
	}
	role, err := model.ParseRole(raw)
	if err != nil {
		s.log.Error("stored userType is invalid", zap.String("userType", raw))
		return nil
	}
	return &role
}
