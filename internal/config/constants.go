package config

import "time"

// Base application details
const AppName = "lazyhex"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"
const DefaultScriptFileName = "config.lua"
const DefaultLogFileName = "lazyhex.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Editor defaults
const DefaultPage = 256
const DefaultEndian = "big"
const DefaultOnDelete = "reload"
const DefaultScrollOff = 3
const SystemClipboard = true
