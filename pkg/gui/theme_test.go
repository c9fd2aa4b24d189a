package gui

import "testing"

func TestImportThemesPrefersOverride(t *testing.T) {
	override := ThemeBasic
	override.Name = "custom"
	themes := []ThemeHex{override.Hex()}

	got, err := ImportThemes("custom", themes)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "custom" {
		t.Fatalf("got theme %q", got.Name)
	}
}

func TestImportThemesFallsBackToBuiltin(t *testing.T) {
	got, err := ImportThemes("green", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "green" {
		t.Fatalf("got theme %q", got.Name)
	}
}

func TestImportThemesUnknownName(t *testing.T) {
	if _, err := ImportThemes("nope", nil); err == nil {
		t.Fatal("expected an error for an unknown theme")
	}
}

func TestPickTheme(t *testing.T) {
	cfg := Config{Theme: "green"}

	got, err := PickTheme(cfg, "")
	if err != nil || got.Name != "green" {
		t.Fatalf("config theme: %q %v", got.Name, err)
	}

	got, err = PickTheme(cfg, "basic")
	if err != nil || got.Name != "basic" {
		t.Fatalf("override theme: %q %v", got.Name, err)
	}

	got, err = PickTheme(Config{}, "")
	if err != nil || got.Name != ThemeBasic.Name {
		t.Fatalf("default theme: %q %v", got.Name, err)
	}
}

func TestThemeHexRoundTrip(t *testing.T) {
	got := ThemeBasic.Hex().Theme()
	if got.SquareDark != ThemeBasic.SquareDark || got.Msg != ThemeBasic.Msg {
		t.Fatalf("hex round trip changed colors: %+v", got)
	}
}
