package coreutils

// Version is the current version of the go-coreutils library
const Version = "1.0.0"
