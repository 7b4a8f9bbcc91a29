package types

// AppVersion is embedded into every webhook response. Overridden at
// build time via -ldflags "-X .../pkg/domain/types.AppVersion=...".
var AppVersion = "0.5.0"
