package app_info

// NAME the application name used for config paths and cli output
const NAME = "netsweep"

// VERSION the current application version
const VERSION = "v0.1.0"
