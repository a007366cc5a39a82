package input

import "testing"

func TestSnapshotClearsDeltas(t *testing.T) {
	s := NewState()
	s.SetLocked(true)
	s.Look(10, -5)
	s.Press(ButtonPrimary)
	s.Press(ButtonSecondary)

	snap := s.Snapshot()
	if snap.LookDX != 10 || snap.LookDY != -5 {
		t.Errorf("Дельта взгляда не накоплена: %+v", snap)
	}
	if len(snap.Actions) != 2 {
		t.Fatalf("Ожидалось 2 действия, получено %d", len(snap.Actions))
	}
	if snap.Actions[0].Button != ButtonPrimary || snap.Actions[1].Button != ButtonSecondary {
		t.Errorf("Нарушен порядок действий: %+v", snap.Actions)
	}

	// Следующий снимок пуст
	next := s.Snapshot()
	if next.LookDX != 0 || next.LookDY != 0 || len(next.Actions) != 0 {
		t.Errorf("Снимок должен очищать дельты и действия: %+v", next)
	}
}

func TestSnapshotKeepsMoveFlags(t *testing.T) {
	s := NewState()
	s.SetMove(Forward, true)
	s.SetMove(Left, true)

	_ = s.Snapshot()
	snap := s.Snapshot()

	// Флаги движения — непрерывное намерение, не события
	if !snap.Move[Forward] || !snap.Move[Left] {
		t.Errorf("Флаги движения не должны сбрасываться снимком: %+v", snap.Move)
	}
	if !snap.Moving() {
		t.Error("Moving должно быть истинно при активных флагах")
	}
}

func TestLookIgnoredWhenUnlocked(t *testing.T) {
	s := NewState()
	s.Look(100, 100)

	snap := s.Snapshot()
	if snap.LookDX != 0 || snap.LookDY != 0 {
		t.Errorf("Дельта взгляда вне режима захвата должна игнорироваться: %+v", snap)
	}
}

func TestUnlockClearsMovement(t *testing.T) {
	s := NewState()
	s.SetLocked(true)
	s.SetMove(Forward, true)
	s.SetLocked(false)

	snap := s.Snapshot()
	if snap.Moving() {
		t.Error("Выход из захвата указателя должен сбрасывать намерения движения")
	}
}

func TestClosedStateIgnoresEvents(t *testing.T) {
	s := NewState()
	s.SetLocked(true)
	s.Close()

	s.SetMove(Forward, true)
	s.Look(10, 10)
	s.Press(ButtonPrimary)

	snap := s.Snapshot()
	if snap.Moving() || snap.LookDX != 0 || len(snap.Actions) != 0 {
		t.Errorf("Закрытое состояние не должно принимать события: %+v", snap)
	}
}
