package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
// Lifecycle calls are appended to the shared calls slice in order.
type MockScene struct {
	name  string
	calls *[]string

	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

func (m *MockScene) record(method string) {
	if m.calls != nil {
		*m.calls = append(*m.calls, m.name+"."+method)
	}
}

func (m *MockScene) Load() { m.record("Load") }
func (m *MockScene) Init() { m.record("Init") }

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
	m.record("Update")
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
	m.record("Draw")
}

func (m *MockScene) Free()   { m.record("Free") }
func (m *MockScene) Unload() { m.record("Unload") }

func assertCalls(t *testing.T, got []string, expected []string) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("lifecycle calls mismatch: got %v, expected %v", got, expected)
	}
	for i, want := range expected {
		if got[i] != want {
			t.Fatalf("call %d: got %s, expected %s (all: %v)", i, got[i], want, got)
		}
	}
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active
// scene and drives the full Free → Unload → Load → Init transition.
func TestSceneManagerSwitchTo(t *testing.T) {
	var calls []string
	sm := NewSceneManager()
	scene1 := &MockScene{name: "a", calls: &calls}
	scene2 := &MockScene{name: "b", calls: &calls}

	sm.SwitchTo(scene1)
	sm.SwitchTo(scene2)

	assertCalls(t, calls, []string{"a.Load", "a.Init", "a.Free", "a.Unload", "b.Load", "b.Init"})
	if sm.GetCurrentScene() != scene2 {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

// TestSceneManagerRestart verifies that Restart re-initializes the current
// scene without reloading its static resources.
func TestSceneManagerRestart(t *testing.T) {
	var calls []string
	sm := NewSceneManager()

	// Restart with no active scene should be a no-op.
	sm.Restart()
	if len(calls) != 0 {
		t.Fatalf("Restart without a scene produced calls: %v", calls)
	}

	scene := &MockScene{name: "a", calls: &calls}
	sm.SwitchTo(scene)
	calls = calls[:0]

	sm.Restart()
	assertCalls(t, calls, []string{"a.Free", "a.Init"})
}

// TestSceneManagerShutdown verifies that Shutdown exits the current scene and
// leaves the manager with no active scene.
func TestSceneManagerShutdown(t *testing.T) {
	var calls []string
	sm := NewSceneManager()
	scene := &MockScene{name: "a", calls: &calls}
	sm.SwitchTo(scene)
	calls = calls[:0]

	sm.Shutdown()
	assertCalls(t, calls, []string{"a.Free", "a.Unload"})
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no active scene after Shutdown")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerUpdateNoScene verifies that Update handles nil scene gracefully.
func TestSceneManagerUpdateNoScene(t *testing.T) {
	sm := NewSceneManager()
	// Don't set any scene, currentScene should be nil
	sm.Update(0.016) // Should not panic
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Draw(nil)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerDrawNoScene verifies that Draw handles nil scene gracefully.
func TestSceneManagerDrawNoScene(t *testing.T) {
	sm := NewSceneManager()
	// Don't set any scene, currentScene should be nil
	sm.Draw(nil) // Should not panic
}
