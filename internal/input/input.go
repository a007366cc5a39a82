package input

import "sync"

// Direction — одно из шести направлений непрерывного намерения движения
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down

	directionCount
)

// Button — идентификатор кнопки дискретного действия
type Button int

const (
	ButtonPrimary   Button = iota // Основное действие: удалить блок
	ButtonSecondary               // Вторичное действие: покормить / поставить блок
)

// Action — дискретное событие действия
type Action struct {
	Button Button
}

// State — общее изменяемое состояние ввода. Входной коллаборатор
// асинхронно записывает сюда события (флаги движения, дельту взгляда,
// клики); игровой цикл забирает снимок в начале каждого тика.
// Все события, пришедшие до границы тика, отражаются в этом тике;
// порядок событий внутри одного тика не гарантируется.
type State struct {
	mu      sync.Mutex
	move    [directionCount]bool
	lookDX  float64
	lookDY  float64
	actions []Action
	locked  bool
	closed  bool
}

// NewState создаёт пустое состояние ввода
func NewState() *State {
	return &State{}
}

// SetMove записывает намерение движения в указанном направлении
func (s *State) SetMove(d Direction, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.move[d] = active
}

// Look накапливает дельту взгляда. Вне режима захвата указателя
// дельты игнорируются.
func (s *State) Look(dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.locked {
		return
	}
	s.lookDX += dx
	s.lookDY += dy
}

// Press записывает дискретное событие действия
func (s *State) Press(b Button) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.actions = append(s.actions, Action{Button: b})
}

// SetLocked обрабатывает уведомление о смене режима захвата указателя.
// При выходе из захвата намерения движения сбрасываются.
func (s *State) SetLocked(locked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.locked = locked
	if !locked {
		s.move = [directionCount]bool{}
	}
}

// Snapshot — ввод одного тика: флаги движения, дельта взгляда и
// очередь дискретных действий.
type Snapshot struct {
	Move    [directionCount]bool
	LookDX  float64
	LookDY  float64
	Actions []Action
	Locked  bool
}

// Moving сообщает, активно ли хотя бы одно направление
func (sn Snapshot) Moving() bool {
	for _, active := range sn.Move {
		if active {
			return true
		}
	}
	return false
}

// Snapshot забирает накопленный ввод: дельта взгляда и очередь
// действий очищаются, флаги движения сохраняются — это непрерывное
// намерение, а не события.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Move:    s.move,
		LookDX:  s.lookDX,
		LookDY:  s.lookDY,
		Actions: s.actions,
		Locked:  s.locked,
	}
	s.lookDX = 0
	s.lookDY = 0
	s.actions = nil
	return snap
}

// Close отписывает состояние от входных событий: все последующие
// вызовы записи игнорируются. Вызывается при демонтаже мира после
// освобождения ресурсов рендерера.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.move = [directionCount]bool{}
	s.lookDX = 0
	s.lookDY = 0
	s.actions = nil
}
