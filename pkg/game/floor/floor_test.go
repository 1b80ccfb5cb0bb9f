package floor

import (
	"testing"

	"cryptforge/pkg/game/generator"
)

func TestCorridorCountFor_Escalates(t *testing.T) {
	for n := 0; n < 10; n++ {
		want := InitialCorridorCount + CorridorCountStep*n
		if got := CorridorCountFor(First + n); got != want {
			t.Errorf("CorridorCountFor(%d) = %d, want %d", First+n, got, want)
		}
	}
}

func TestCorridorCountFor_ClampsBelowFirst(t *testing.T) {
	if got := CorridorCountFor(0); got != InitialCorridorCount {
		t.Errorf("CorridorCountFor(0) = %d, want %d", got, InitialCorridorCount)
	}
}

func TestParametersFor_KeepsOtherFields(t *testing.T) {
	base := generator.DefaultParameters()
	got := ParametersFor(base, 3)
	if got.CorridorCount != InitialCorridorCount+2*CorridorCountStep {
		t.Errorf("CorridorCount = %d, want %d", got.CorridorCount, InitialCorridorCount+2*CorridorCountStep)
	}
	if got.CorridorLength != base.CorridorLength || got.BossSize != base.BossSize || got.RoomFraction != base.RoomFraction {
		t.Errorf("ParametersFor changed fields other than corridor count: %+v", got)
	}
}

func TestThemeFor_Cycles(t *testing.T) {
	if ThemeFor(1) != Crypt {
		t.Errorf("ThemeFor(1) = %v, want Crypt", ThemeFor(1))
	}
	if ThemeFor(1+themeCount) != Crypt {
		t.Errorf("ThemeFor(%d) = %v, want Crypt", 1+themeCount, ThemeFor(1+themeCount))
	}
	if ThemeFor(5) != Abyss {
		t.Errorf("ThemeFor(5) = %v, want Abyss", ThemeFor(5))
	}
}

func TestFlavourText_NonEmpty(t *testing.T) {
	for _, n := range []int{1, 4, 7, 12} {
		if FlavourText(n) == "" {
			t.Errorf("FlavourText(%d) is empty", n)
		}
	}
}
