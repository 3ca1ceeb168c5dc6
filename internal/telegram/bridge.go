package telegram

import "encoding/json"

// Haptic is one of the fixed feedback categories the WebApp bridge accepts.
type Haptic string

const (
	HapticLight   Haptic = "light"
	HapticMedium  Haptic = "medium"
	HapticHeavy   Haptic = "heavy"
	HapticSoft    Haptic = "soft"
	HapticRigid   Haptic = "rigid"
	HapticSuccess Haptic = "success"
	HapticWarning Haptic = "warning"
	HapticError   Haptic = "error"
)

// Notification reports whether the category maps to notificationOccurred on
// the host bridge rather than impactOccurred.
func (h Haptic) Notification() bool {
	return h == HapticSuccess || h == HapticWarning || h == HapticError
}

// Bridge is the host-provided Mini App chrome. Every operation is a no-op,
// never an error, when the host is absent; callers do not check for
// presence themselves.
type Bridge interface {
	Ready()
	Close()
	ShowBackButton(target string)
	HideBackButton()
	Feedback(h Haptic)
}

// NoopBridge is the null-object fallback used when no host is attached.
type NoopBridge struct{}

func (NoopBridge) Ready()                 {}
func (NoopBridge) Close()                 {}
func (NoopBridge) ShowBackButton(string)  {}
func (NoopBridge) HideBackButton()        {}
func (NoopBridge) Feedback(Haptic)        {}

// Directives collects bridge calls made while building one response so the
// page shim can replay them through window.Telegram.WebApp. When that object
// is missing the shim does nothing, which keeps the no-op contract.
type Directives struct {
	ready    bool
	closeApp bool
	showBack bool
	back     string
	haptics  []Haptic
}

// NewDirectives returns an empty per-response recorder.
func NewDirectives() *Directives { return &Directives{} }

func (d *Directives) Ready() { d.ready = true }

func (d *Directives) Close() { d.closeApp = true }

func (d *Directives) ShowBackButton(target string) {
	d.showBack = true
	d.back = target
}

func (d *Directives) HideBackButton() {
	d.showBack = false
	d.back = ""
}

func (d *Directives) Feedback(h Haptic) {
	d.haptics = append(d.haptics, h)
}

type directivePayload struct {
	Ready      bool     `json:"ready,omitempty"`
	Close      bool     `json:"close,omitempty"`
	ShowBack   bool     `json:"show_back,omitempty"`
	BackTarget string   `json:"back_target,omitempty"`
	Haptics    []Haptic `json:"haptics,omitempty"`
}

// JSON encodes the collected directives for embedding into the rendered
// page.
func (d *Directives) JSON() string {
	b, err := json.Marshal(directivePayload{
		Ready:      d.ready,
		Close:      d.closeApp,
		ShowBack:   d.showBack,
		BackTarget: d.back,
		Haptics:    d.haptics,
	})
	if err != nil {
		return "{}"
	}
	return string(b)
}

var (
	_ Bridge = NoopBridge{}
	_ Bridge = (*Directives)(nil)
)
