package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/idilsaglam/homework/internal/store"
)

// Backend persists the Store between runs.
type Backend interface {
	Load() (*store.Store, error)
	Save(*store.Store) error
}

// PersistError wraps a Backend failure. It is fatal to the loop, unlike the
// input and Store errors a user can correct.
type PersistError struct{ Err error }

func (e *PersistError) Error() string { return "save: " + e.Err.Error() }
func (e *PersistError) Unwrap() error { return e.Err }

// Session binds a loaded Store to the Backend it came from.
type Session struct {
	Store   *store.Store
	backend Backend
	log     *zap.Logger
}

// Open loads the Store from b. A nil logger is replaced with a no-op one.
func Open(b Backend, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	st, err := b.Load()
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	log.Info("store loaded", zap.Int("classes", st.Len()))
	if dups := st.DuplicateTags(); len(dups) > 0 {
		log.Warn("data file repeats class tags; tag commands resolve to the first match until renamed with cc",
			zap.Strings("tags", dups))
	}
	return &Session{Store: st, backend: b, log: log}, nil
}

// Execute parses and runs one line. Successful mutations are saved before
// Execute returns; failed ones leave both the Store and the file untouched.
func (s *Session) Execute(line string) (Command, error) {
	cmd, err := Parse(line)
	if err != nil {
		s.log.Debug("command rejected", zap.String("line", line), zap.Error(err))
		return cmd, err
	}
	if err := s.Run(cmd); err != nil {
		return cmd, err
	}
	return cmd, nil
}

// Run applies a parsed command to the Store and persists it.
func (s *Session) Run(cmd Command) error {
	if !cmd.Mutates() {
		return nil
	}
	if err := s.apply(cmd); err != nil {
		s.log.Debug("command failed", zap.String("cmd", cmd.Token), zap.Strings("args", cmd.Args), zap.Error(err))
		return err
	}
	s.log.Info("command applied", zap.String("cmd", cmd.Token), zap.Strings("args", cmd.Args))
	if err := s.backend.Save(s.Store); err != nil {
		s.log.Error("save failed", zap.Error(err))
		return &PersistError{Err: err}
	}
	s.log.Debug("store saved", zap.Int("classes", s.Store.Len()))
	return nil
}

func (s *Session) apply(cmd Command) error {
	a := cmd.Args
	switch cmd.Op {
	case OpAddClass:
		if s.Store.HasName(a[0]) && !s.Store.TagExists(a[1]) {
			s.log.Warn("class name already present, replacing its record", zap.String("name", a[0]))
		}
		return s.Store.AddClass(a[0], a[1])
	case OpRemoveClass:
		return s.Store.RemoveClass(a[0])
	case OpChangeTag:
		return s.Store.RenameTag(a[0], a[1])
	case OpMoveClass:
		return s.Store.MoveClass(a[0], store.ParseDirection(a[1]))
	case OpAddAssignment:
		return s.Store.AddAssignment(a[0], a[1])
	case OpRemoveAssignment:
		return s.Store.RemoveAssignment(a[0], cmd.Index)
	case OpClearAssignments:
		return s.Store.ClearAssignments(a[0])
	}
	return nil
}
