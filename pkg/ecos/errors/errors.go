package errors

import "errors"

var (
	// Project errors 📦
	ErrProjectNotFound = errors.New("❌ Not an ECOS project directory.\n" +
		"Please run this command in a directory with an ECOS project Cargo.toml\n" +
		"or use 'ecos init <name>' to create a new project.")
	ErrManifestUnreadable = errors.New("❌ Cargo.toml could not be parsed")

	// Environment errors 🌲
	ErrSDKHomeUnset   = errors.New("❌ ECOS_SDK_HOME is not set")
	ErrSDKHomeMissing = errors.New("❌ ECOS_SDK_HOME points at a missing directory")
	ErrToolMissing    = errors.New("❌ required tool not found on PATH")

	// Configuration errors ⚙️
	ErrConfigMissing     = errors.New("❌ project is not configured")
	ErrKconfigToolsBuild = errors.New("❌ kconfig tools could not be built")
	ErrConfigSyncFailed  = errors.New("❌ configuration sync failed")

	// Build errors 🔨
	ErrBuildFailed     = errors.New("❌ firmware build failed")
	ErrArtifactMissing = errors.New("❌ firmware image not found")
	ErrImageConvert    = errors.New("❌ image conversion failed")

	// Flash errors ⚡
	ErrSafeModeNoImage  = errors.New("❌ safe mode requires an existing firmware image")
	ErrFlashDestUnset   = errors.New("❌ flash destination is not configured")
	ErrFlashDestInvalid = errors.New("❌ flash destination is not usable")
	ErrVerifyMismatch   = errors.New("❌ flashed image does not match the source image")
)
