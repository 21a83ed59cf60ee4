package games

import "testing"

func TestNew(t *testing.T) {
	for _, name := range Names {
		var rules, err = New(name, 0)
		if err != nil {
			t.Fatal(err)
		}
		if rules.Name() != name {
			t.Error("wrong rules", name, rules.Name())
		}
	}
	if rules, err := New("pente", 9); err != nil || rules.NewBoard().Rows() != 9 {
		t.Error("pente size not applied", err)
	}
	if _, err := New("pente", 40); err == nil {
		t.Error("expected size error")
	}
	if _, err := New("chess", 0); err == nil {
		t.Error("expected unknown game error")
	}
}
