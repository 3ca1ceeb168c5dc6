package telegram

import (
	"encoding/json"
	"testing"
)

func TestHapticNotification(t *testing.T) {
	notifications := []Haptic{HapticSuccess, HapticWarning, HapticError}
	impacts := []Haptic{HapticLight, HapticMedium, HapticHeavy, HapticSoft, HapticRigid}

	for _, h := range notifications {
		if !h.Notification() {
			t.Errorf("%s: expected notification category", h)
		}
	}
	for _, h := range impacts {
		if h.Notification() {
			t.Errorf("%s: expected impact category", h)
		}
	}
}

func TestDirectivesJSON(t *testing.T) {
	d := NewDirectives()
	d.Ready()
	d.ShowBackButton("/")
	d.Feedback(HapticError)

	var got struct {
		Ready      bool     `json:"ready"`
		ShowBack   bool     `json:"show_back"`
		BackTarget string   `json:"back_target"`
		Haptics    []Haptic `json:"haptics"`
	}
	if err := json.Unmarshal([]byte(d.JSON()), &got); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if !got.Ready || !got.ShowBack || got.BackTarget != "/" {
		t.Errorf("unexpected payload: %+v", got)
	}
	if len(got.Haptics) != 1 || got.Haptics[0] != HapticError {
		t.Errorf("haptics: expected [error], got %v", got.Haptics)
	}
}

func TestDirectivesHideBackButton(t *testing.T) {
	d := NewDirectives()
	d.ShowBackButton("/lobby/ABC123")
	d.HideBackButton()

	if d.JSON() != "{}" {
		t.Errorf("expected empty payload after hide, got %s", d.JSON())
	}
}
