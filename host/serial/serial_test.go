package serial

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyACM0")

	if cfg.Device != "/dev/ttyACM0" {
		t.Errorf("expected device path preserved, got %q", cfg.Device)
	}
	if cfg.Baud != 115200 {
		t.Errorf("expected 115200 baud, got %d", cfg.Baud)
	}
	if cfg.ReadTimeout <= 0 {
		t.Error("default config must set a read timeout so replies terminate")
	}
}

func TestOpenNilConfig(t *testing.T) {
	port, err := Open(nil)
	if err == nil {
		t.Fatal("expected an error for a nil config")
	}
	if port != nil {
		t.Errorf("expected no port on error, got %v", port)
	}
}
