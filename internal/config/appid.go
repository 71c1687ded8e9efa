package config

const (
	// AppID is the fixed identifier used for config and log file names.
	AppID = "schemabuilder"
)
