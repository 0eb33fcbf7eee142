package physics

import "testing"

var (
	player   = NewLayers(LayerPlayer, LayerWorld, LayerTeleport)
	hazard   = NewLayers(LayerWorld, LayerPlayer)
	teleport = NewLayers(LayerTeleport, LayerPlayer)
	mixed    = NewLayers(LayerPlayer|LayerWorld, LayerPlayer)
)

func TestClassificationIsCommutative(t *testing.T) {
	tests := []struct {
		name         string
		a, b         Layers
		world, telep bool
	}{
		{"player/hazard", player, hazard, true, false},
		{"player/teleport", player, teleport, false, true},
		{"hazard/teleport", hazard, teleport, false, false},
		{"player/player", player, player, false, false},
		{"mixed/hazard", mixed, hazard, false, false},
		{"player/mixed", player, mixed, false, false},
		{"empty", Layers{}, Layers{}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, order := range [][2]Layers{{tt.a, tt.b}, {tt.b, tt.a}} {
				if got := IsPlayerWorld(order[0], order[1]); got != tt.world {
					t.Errorf("IsPlayerWorld(%v, %v) = %v, want %v", order[0], order[1], got, tt.world)
				}
				if got := IsPlayerTeleport(order[0], order[1]); got != tt.telep {
					t.Errorf("IsPlayerTeleport(%v, %v) = %v, want %v", order[0], order[1], got, tt.telep)
				}
			}
		})
	}
}

func TestEventOtherSide(t *testing.T) {
	e := CollisionEvent{Bodies: [2]BodyID{7, 3}, Layers: [2]Layers{hazard, player}}
	if id, ok := e.PlayerWorld(); !ok || id != 7 {
		t.Errorf("PlayerWorld() = %d, %v; want 7, true", id, ok)
	}
	if _, ok := e.PlayerTeleport(); ok {
		t.Error("PlayerTeleport() matched a world event")
	}

	e = CollisionEvent{Bodies: [2]BodyID{1, 2}, Layers: [2]Layers{player, teleport}}
	if id, ok := e.PlayerTeleport(); !ok || id != 2 {
		t.Errorf("PlayerTeleport() = %d, %v; want 2, true", id, ok)
	}
}

func TestInteracts(t *testing.T) {
	if !player.Interacts(hazard) || !hazard.Interacts(player) {
		t.Error("player and hazard should interact")
	}
	if hazard.Interacts(teleport) {
		t.Error("hazard and teleport should not interact")
	}
	if got := LayerTeleport.String(); got != "teleport" {
		t.Errorf("String() = %q", got)
	}
}
