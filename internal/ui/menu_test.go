package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-streams/internal/config"
)

func TestBuildMainMenu(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	loc := NewLocalization()

	bare := buildMainMenu(loc, &Services{}, w, func(string) {})
	if len(bare.Items) != 2 {
		t.Fatalf("Expected 2 menus, got %d", len(bare.Items))
	}
	if len(bare.Items[0].Items) != 0 {
		t.Errorf("Expected empty File menu without settings and history, got %d items", len(bare.Items[0].Items))
	}

	full := buildMainMenu(loc, &Services{Settings: config.NewSettings(app), History: &fakeHistory{}}, w, func(string) {})
	if len(full.Items[0].Items) != 2 {
		t.Errorf("Expected Settings and History items, got %d", len(full.Items[0].Items))
	}

	languages := full.Items[1]
	if len(languages.Items) != len(loc.GetAvailableLanguages()) {
		t.Errorf("Expected %d languages, got %d", len(loc.GetAvailableLanguages()), len(languages.Items))
	}
	checked := 0
	for _, item := range languages.Items {
		if item.Checked {
			checked++
			if item.Label != "English" {
				t.Errorf("Expected English to be checked, got %s", item.Label)
			}
		}
	}
	if checked != 1 {
		t.Errorf("Expected 1 checked language, got %d", checked)
	}
}

func TestBuildMainMenu_LanguageAction(t *testing.T) {
	test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	var chosen string
	menu := buildMainMenu(NewLocalization(), &Services{}, w, func(code string) { chosen = code })

	for _, item := range menu.Items[1].Items {
		if item.Label == "Русский" {
			item.Action()
		}
	}
	if chosen != "ru" {
		t.Errorf("Expected ru to be chosen, got %q", chosen)
	}
}
