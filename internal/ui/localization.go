package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyMusicTitle         = "music_title"
	KeyEnterURLLabel      = "enter_url_label"
	KeyEnterURL           = "enter_url"
	KeySearch             = "search"
	KeyDownload           = "download"
	KeyStop               = "stop"
	KeyVideoOnly          = "video_only"
	KeyAudioOnly          = "audio_only"
	KeyVideoAudio         = "video_audio"
	KeySettings           = "settings"
	KeyHistory            = "history"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeySaveDirectory      = "save_directory"
	KeyMaxParallel        = "max_parallel"
	KeyConvertToMP3       = "convert_to_mp3"
	KeyAutoReveal         = "auto_reveal"
	KeyHistoryEnabled     = "history_enabled"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeyClear              = "clear"
	KeyClose              = "close"
	KeySaveFileAs         = "save_file_as"
	KeySettingsSaved      = "settings_saved"
	KeyError              = "error"
	KeySuccess            = "success"
	KeyPleaseEnterURL     = "please_enter_url"
	KeyFailedToLoad       = "failed_to_load"
	KeyDownloadFailed     = "download_failed"
	KeyDownloadCompleted  = "download_completed"
	KeySelectOneStream    = "select_one_stream"
	KeyNoAudioStreams     = "no_audio_streams"
	KeyThumbnailMissing   = "thumbnail_missing"
	KeySearching          = "searching"
	KeyConverting         = "converting"
	KeyStopped            = "stopped"
	KeyPlaylistTitle      = "playlist_title"
	KeyPlaylistPick       = "playlist_pick"
	KeyLoadingPlaylist    = "loading_playlist"
	KeyHistoryEmpty       = "history_empty"
	KeyErrorOpeningFile   = "error_opening_file"
	KeyAlreadyDownloading = "already_downloading"
	KeyOpen               = "open"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "YouTube Downloader",
		KeyMusicTitle:         "Youtwub Music",
		KeyEnterURLLabel:      "Enter YouTube URL",
		KeyEnterURL:           "https://www.youtube.com/watch?v=...",
		KeySearch:             "Search",
		KeyDownload:           "Download",
		KeyStop:               "Stop",
		KeyVideoOnly:          "Video Only",
		KeyAudioOnly:          "Audio Only",
		KeyVideoAudio:         "Video + Audio",
		KeySettings:           "Settings",
		KeyHistory:            "History",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeySaveDirectory:      "Default Save Directory",
		KeyMaxParallel:        "Max Parallel Downloads",
		KeyConvertToMP3:       "Convert audio to MP3 (needs ffmpeg)",
		KeyAutoReveal:         "Show file when download completes",
		KeyHistoryEnabled:     "Keep download history",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeyClear:              "Clear",
		KeyClose:              "Close",
		KeySaveFileAs:         "Save File As",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyError:              "Error",
		KeySuccess:            "Success",
		KeyPleaseEnterURL:     "Please enter a YouTube URL",
		KeyFailedToLoad:       "Failed to load video",
		KeyDownloadFailed:     "Download failed",
		KeyDownloadCompleted:  "Download completed successfully!",
		KeySelectOneStream:    "Please select only one stream from one of the lists",
		KeyNoAudioStreams:     "No audio streams available for this video",
		KeyThumbnailMissing:   "Thumbnail not available",
		KeySearching:          "Searching...",
		KeyConverting:         "Converting",
		KeyStopped:            "Download stopped",
		KeyPlaylistTitle:      "Playlist",
		KeyPlaylistPick:       "This link is a playlist. Pick a video:",
		KeyLoadingPlaylist:    "Loading playlist...",
		KeyHistoryEmpty:       "No downloads yet",
		KeyErrorOpeningFile:   "Error opening file",
		KeyAlreadyDownloading: "This file is already being downloaded",
		KeyOpen:               "Open",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "YouTube Загрузчик",
		KeyEnterURLLabel:      "Введите URL YouTube",
		KeySearch:             "Найти",
		KeyDownload:           "Скачать",
		KeyStop:               "Стоп",
		KeyVideoOnly:          "Только видео",
		KeyAudioOnly:          "Только аудио",
		KeyVideoAudio:         "Видео + аудио",
		KeySettings:           "Настройки",
		KeyHistory:            "История",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeySaveDirectory:      "Папка сохранения",
		KeyMaxParallel:        "Макс. параллельных",
		KeyConvertToMP3:       "Конвертировать аудио в MP3 (нужен ffmpeg)",
		KeyAutoReveal:         "Показывать файл после загрузки",
		KeyHistoryEnabled:     "Вести историю загрузок",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeyClear:              "Очистить",
		KeyClose:              "Закрыть",
		KeySaveFileAs:         "Сохранить как",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyError:              "Ошибка",
		KeySuccess:            "Готово",
		KeyPleaseEnterURL:     "Пожалуйста, введите URL YouTube",
		KeyFailedToLoad:       "Не удалось загрузить видео",
		KeyDownloadFailed:     "Ошибка загрузки",
		KeyDownloadCompleted:  "Загрузка успешно завершена!",
		KeySelectOneStream:    "Выберите только один поток в одном из списков",
		KeyNoAudioStreams:     "У этого видео нет аудиопотоков",
		KeyThumbnailMissing:   "Миниатюра недоступна",
		KeySearching:          "Поиск...",
		KeyConverting:         "Конвертация",
		KeyStopped:            "Загрузка остановлена",
		KeyPlaylistTitle:      "Плейлист",
		KeyPlaylistPick:       "Это ссылка на плейлист. Выберите видео:",
		KeyLoadingPlaylist:    "Загрузка плейлиста...",
		KeyHistoryEmpty:       "Загрузок пока нет",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
		KeyAlreadyDownloading: "Этот файл уже загружается",
		KeyOpen:               "Открыть",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyEnterURLLabel:      "Digite a URL do YouTube",
		KeySearch:             "Buscar",
		KeyDownload:           "Baixar",
		KeyStop:               "Parar",
		KeyVideoOnly:          "Só vídeo",
		KeyAudioOnly:          "Só áudio",
		KeyVideoAudio:         "Vídeo + áudio",
		KeySettings:           "Configurações",
		KeyHistory:            "Histórico",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeySaveDirectory:      "Diretório padrão",
		KeyMaxParallel:        "Max Downloads Paralelos",
		KeyConvertToMP3:       "Converter áudio para MP3 (requer ffmpeg)",
		KeyAutoReveal:         "Mostrar arquivo ao concluir",
		KeyHistoryEnabled:     "Manter histórico de downloads",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeyClear:              "Limpar",
		KeyClose:              "Fechar",
		KeySaveFileAs:         "Salvar como",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyError:              "Erro",
		KeySuccess:            "Sucesso",
		KeyPleaseEnterURL:     "Por favor, digite uma URL do YouTube",
		KeyFailedToLoad:       "Falha ao carregar o vídeo",
		KeyDownloadFailed:     "Falha no download",
		KeyDownloadCompleted:  "Download concluído com sucesso!",
		KeySelectOneStream:    "Selecione apenas um stream de uma das listas",
		KeyNoAudioStreams:     "Nenhum stream de áudio disponível",
		KeyThumbnailMissing:   "Miniatura indisponível",
		KeySearching:          "Buscando...",
		KeyConverting:         "Convertendo",
		KeyStopped:            "Download interrompido",
		KeyPlaylistTitle:      "Playlist",
		KeyPlaylistPick:       "Este link é uma playlist. Escolha um vídeo:",
		KeyLoadingPlaylist:    "Carregando playlist...",
		KeyHistoryEmpty:       "Nenhum download ainda",
		KeyErrorOpeningFile:   "Erro ao abrir arquivo",
		KeyAlreadyDownloading: "Este arquivo já está sendo baixado",
		KeyOpen:               "Abrir",
	}
}
