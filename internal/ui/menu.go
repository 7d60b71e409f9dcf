package ui

import (
	"maps"
	"slices"

	"fyne.io/fyne/v2"
)

// buildMainMenu creates the File and Language menus shared by both windows
func buildMainMenu(localization *Localization, services *Services, window fyne.Window, onLanguageChange func(string)) *fyne.MainMenu {
	fileItems := []*fyne.MenuItem{}

	if services.Settings != nil {
		fileItems = append(fileItems, fyne.NewMenuItem(localization.GetText(KeySettings), func() {
			NewSettingsDialog(services, window, localization).Show()
		}))
	}

	if services.History != nil {
		fileItems = append(fileItems, fyne.NewMenuItem(localization.GetText(KeyHistory), func() {
			NewHistoryDialog(services.History, window, localization, services.logger()).Show()
		}))
	}

	// Language submenu
	languageMenu := fyne.NewMenu(localization.GetText(KeyLanguage))

	availableLanguages := localization.GetAvailableLanguages()
	for _, code := range slices.Sorted(maps.Keys(availableLanguages)) {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			onLanguageChange(langCode)
		})

		// Mark current language
		if localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	return fyne.NewMainMenu(
		fyne.NewMenu(localization.GetText(KeyFile), fileItems...),
		languageMenu,
	)
}
