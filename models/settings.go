package models

// Keys of the key/value settings table.
const (
	SettingSelectedCharacter = "selected_character"
)
