// Package configs manages where the enigma configuration string comes from.
//
// # Sources
//
// ResolveConfiguration picks the first of:
//
//   - the --config flag
//   - the ENIGMA_CONFIGURATION environment variable
//   - the machine config file, config.toml in the settings directory
//   - the engine default
//
// # Machine Configuration
//
// The machine config is a TOML file written by `enigma config init`:
//
//	[machine]
//	configuration = "A12,E43,B27,FC,cS,yW,kA,iJ"
//	key_id = "2f0d6c2e-..."
//	disks_file = "/home/me/.config/enigma/disks.toml"
//	created_at = 2026-01-02T15:04:05Z
//
// The key id is a random UUID that names the configuration in audit entries
// without revealing it. Fingerprint derives a stable digest of the string
// itself so two machines can compare configurations.
//
// # Custom Disks
//
// A disks file adds disks to the built-in A through E:
//
//	[[disk]]
//	name = "F"
//	pairs = "0a1b..."
//
// # Settings
//
// EnigmaSettings holds the directory and file paths. It defaults to
// os.UserConfigDir()/enigma and honours ENIGMA_CONFIG_DIR.
package configs
