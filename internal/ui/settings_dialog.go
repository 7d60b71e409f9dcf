package ui

import (
	"maps"
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-streams/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	onSaved      func()
	dialog       *dialog.ConfirmDialog

	// Language display name to code
	languageCodes map[string]string

	// UI components
	saveDirEntry     *widget.Entry
	maxParallelEntry *widget.Entry
	languageSelect   *widget.Select
	convertCheck     *widget.Check
	autoRevealCheck  *widget.Check
	historyCheck     *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(services *Services, window fyne.Window, localization *Localization) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      services.Settings,
		window:        window,
		localization:  localization,
		onSaved:       services.OnSettingsSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	loc := sd.localization

	sd.saveDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(loc.GetText(KeyBrowse), sd.onBrowseDirectory)
	saveDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.saveDirEntry)

	sd.maxParallelEntry = widget.NewEntry()
	sd.maxParallelEntry.SetPlaceHolder("1-" + strconv.Itoa(config.MaxParallelLimit))

	languageLabels := sd.settings.GetLanguageOptions()
	languageOptions := []string{}
	for _, code := range slices.Sorted(maps.Keys(languageLabels)) {
		name := languageLabels[code]
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.convertCheck = widget.NewCheck(loc.GetText(KeyConvertToMP3), nil)
	sd.autoRevealCheck = widget.NewCheck(loc.GetText(KeyAutoReveal), nil)
	sd.historyCheck = widget.NewCheck(loc.GetText(KeyHistoryEnabled), nil)

	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeySaveDirectory)+":"),
		saveDirRow,

		widget.NewLabel(loc.GetText(KeyMaxParallel)+":"),
		sd.maxParallelEntry,

		widget.NewLabel(loc.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewSeparator(),
		sd.convertCheck,
		sd.autoRevealCheck,
		sd.historyCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.saveDirEntry.SetText(sd.settings.GetSaveDirectory())
	sd.maxParallelEntry.SetText(strconv.Itoa(sd.settings.GetMaxParallelDownloads()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.convertCheck.SetChecked(sd.settings.GetConvertToMP3())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
	sd.historyCheck.SetChecked(sd.settings.GetHistoryEnabled())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.saveDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply writes the form values into the preferences
func (sd *SettingsDialog) apply() {
	if dir := sd.saveDirEntry.Text; dir != "" {
		sd.settings.SetSaveDirectory(dir)
	}

	if maxParallel, err := strconv.Atoi(sd.maxParallelEntry.Text); err == nil {
		sd.settings.SetMaxParallelDownloads(maxParallel)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	sd.settings.SetConvertToMP3(sd.convertCheck.Checked)
	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)
	sd.settings.SetHistoryEnabled(sd.historyCheck.Checked)
}
