package config

// HammerConfig is implemented by the options of every hammer type.
type HammerConfig interface {
	HammerType() string
}
